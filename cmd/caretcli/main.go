/*
Command caretcli lays out text and answers questions about cursor
positions and selections interactively.

Usage:

	caretcli [-font name] [-size 12pt] [-width 200px] [-mono] [-trace Info]

Enter "help" at the prompt for a list of commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/textcaret/core"
	"github.com/npillmayer/textcaret/core/font/fontregistry"
	"github.com/npillmayer/textcaret/core/parameters"
	"github.com/npillmayer/textcaret/engine/glyphing"
	"github.com/npillmayer/textcaret/engine/glyphing/harfbuzz"
	"github.com/npillmayer/textcaret/engine/glyphing/monospace"
	"github.com/npillmayer/textcaret/engine/text/cursor"
	"github.com/npillmayer/textcaret/engine/text/layout"
	"github.com/npillmayer/textcaret/engine/text/model"
	"github.com/pterm/pterm"
)

// tracer traces with key 'textcaret.core'
func tracer() tracing.Trace {
	return tracing.Select("textcaret.core")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "System font to use")
	fontsize := flag.String("size", "12pt", "Font size")
	width := flag.String("width", "0", "Wrap width, 0 for no wrapping")
	mono := flag.Bool("mono", false, "Use monospace shaping")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.textcaret.core":   *tlevel,
		"trace.textcaret.fonts":  *tlevel,
		"trace.textcaret.glyphs": *tlevel,
		"trace.textcaret.layout": *tlevel,
		"trace.textcaret.cursor": *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the text caret CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp := &Intp{regs: parameters.NewTypesettingRegisters()}
	if err := intp.configure(*fontname, *fontsize, *width, *mono); err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	//
	// set up REPL
	repl, err := readline.New("caret > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	regs   *parameters.TypesettingRegisters
	shaper glyphing.Shaper
	text   string
	lm     *model.LogicalModel
	vm     *model.VisualModel
}

const fontLoadTimeout = 10 * time.Second

func (intp *Intp) configure(fontname, fontsize, width string, mono bool) error {
	if err := intp.regs.PushDimen(parameters.P_FONTSIZE, fontsize); err != nil {
		return err
	}
	if err := intp.regs.PushDimen(parameters.P_WRAPWIDTH, width); err != nil {
		return err
	}
	size := intp.regs.Px(parameters.P_FONTSIZE)
	promise := fontregistry.GlobalRegistry().ResolveTypeCase(fontname, size)
	if mono {
		intp.shaper = monospace.Shaper(size/2, nil)
	} else {
		intp.shaper = harfbuzz.Shaper()
	}
	ctx, cancel := context.WithTimeout(context.Background(), fontLoadTimeout)
	defer cancel()
	typecase, err := promise.Await(ctx)
	if err != nil {
		return err
	}
	if fontname != "" {
		intp.regs.Push(parameters.P_FONT, fontregistry.SystemFontKey(fontname))
	}
	pterm.Info.Printfln("using font %s at %.1fpt", typecase.ScalableFontParent().Fontname, typecase.PtSize())
	return intp.layout()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

const (
	QUIT int = iota
	HELP
	TEXT
	DIR
	WIDTH
	ALIGN
	TAP
	SCROLL
	CURSOR
	SELECT
	LINES
)

// Command is a parsed input line.
type Command struct {
	code int
	arg  string
	x, y float32
}

var escapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t")

func parseCommand(line string) (*Command, error) {
	verb, arg, _ := strings.Cut(line, " ")
	verb, arg = strings.ToLower(verb), strings.TrimSpace(arg)
	cmd := &Command{arg: arg}
	tracer().Debugf("parse command = %s %q", verb, arg)
	switch verb {
	case "quit", "exit":
		cmd.code = QUIT
	case "text":
		cmd.code = TEXT
		cmd.arg = escapes.Replace(arg)
	case "dir":
		cmd.code = DIR
	case "width":
		cmd.code = WIDTH
	case "align":
		cmd.code = ALIGN
	case "tap", "scroll", "select":
		switch verb {
		case "tap":
			cmd.code = TAP
		case "scroll":
			cmd.code = SCROLL
		default:
			cmd.code = SELECT
		}
		coords := strings.Fields(arg)
		if len(coords) != 2 {
			return nil, fmt.Errorf("%s needs coordinates x y", verb)
		}
		x, errx := strconv.ParseFloat(coords[0], 32)
		y, erry := strconv.ParseFloat(coords[1], 32)
		if errx != nil || erry != nil {
			return nil, fmt.Errorf("coordinates not numeric: %s", arg)
		}
		cmd.x, cmd.y = float32(x), float32(y)
	case "cursor":
		cmd.code = CURSOR
	case "lines":
		cmd.code = LINES
	default:
		cmd.code = HELP
	}
	return cmd, nil
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case TEXT:
		intp.text = cmd.arg
		return false, intp.layout()
	case DIR:
		d, err := parameters.ParseDirection(cmd.arg)
		if err != nil {
			return false, err
		}
		intp.regs.Push(parameters.P_TEXTDIRECTION, d)
		return false, intp.layout()
	case WIDTH:
		if err := intp.regs.PushDimen(parameters.P_WRAPWIDTH, cmd.arg); err != nil {
			return false, err
		}
		return false, intp.layout()
	case ALIGN:
		a, err := parameters.ParseAlignment(cmd.arg)
		if err != nil {
			return false, err
		}
		intp.regs.Push(parameters.P_ALIGNMENT, a)
		return false, intp.layout()
	case TAP, SCROLL:
		mode := cursor.Tap
		if cmd.code == SCROLL {
			mode = cursor.Scroll
		}
		index, hit := cursor.ClosestCursorIndex(intp.vm, intp.lm, cmd.x, cmd.y, mode)
		pterm.Printfln("%s at (%.2f,%.2f): cursor index %d, hit = %v", mode, cmd.x, cmd.y, index, hit)
	case CURSOR:
		index, err := strconv.Atoi(cmd.arg)
		if err != nil {
			return false, errors.New("cursor needs a character index")
		}
		info := cursor.CursorPosition(intp.vm, intp.lm, model.CharacterIndex(index))
		pterm.Println(info.String())
	case SELECT:
		sel := cursor.FindSelectionIndices(intp.vm, intp.lm, cmd.x, cmd.y)
		if sel.Found {
			pterm.Printfln("%s = %q", sel, string(intp.lm.Text[sel.Start:sel.End]))
		} else {
			pterm.Println(sel.String())
		}
	case LINES:
		return false, intp.showLines()
	}
	return false, nil
}

func (intp *Intp) layout() (err error) {
	intp.lm, intp.vm, err = layout.Layout(intp.text, intp.shaper, intp.regs)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("%d characters in %d lines, size %.2f x %.2f", intp.lm.NumberOfCharacters(),
		intp.vm.NumberOfLines(), intp.vm.ControlSize.Width, intp.vm.ControlSize.Height)
	return nil
}

func (intp *Intp) showLines() error {
	data := pterm.TableData{{"#", "characters", "glyphs", "dir", "width", "height", "offset", "text"}}
	for i, line := range intp.vm.Lines {
		run := line.CharacterRun
		data = append(data, []string{
			strconv.Itoa(i),
			fmt.Sprintf("%d+%d", run.CharacterIndex, run.NumberOfCharacters),
			fmt.Sprintf("%d+%d", line.GlyphRun.GlyphIndex, line.GlyphRun.NumberOfGlyphs),
			line.Direction.String(),
			fmt.Sprintf("%.2f", line.Width),
			fmt.Sprintf("%.2f", line.Height(i == len(intp.vm.Lines)-1)),
			fmt.Sprintf("%.2f", line.AlignmentOffset),
			fmt.Sprintf("%q", string(intp.lm.Text[run.CharacterIndex:run.End()])),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	text <string>         lay out a text, \n starts a new paragraph
	dir ltr|rtl|auto      set the paragraph direction
	width <dimen>         set the wrap width, e.g. 200px; 0 for no wrapping
	align begin|center|end
	tap <x> <y>           closest cursor index for a tap
	scroll <x> <y>        closest cursor index, clamped to the lines
	cursor <index>        cursor position for a character index
	select <x> <y>        word or white space at a point
	lines                 list the lines of the layout
	quit
	`)
}
