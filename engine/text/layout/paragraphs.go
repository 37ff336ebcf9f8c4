package layout

import (
	"unicode"

	"github.com/npillmayer/textcaret/core"
	"github.com/npillmayer/textcaret/core/parameters"
	"github.com/npillmayer/textcaret/engine/text/model"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// paragraph is a range of characters ending with a paragraph separator,
// or with the end of the text.
type paragraph struct {
	start, end model.CharacterIndex
	body       model.CharacterIndex // end of the paragraph without separators
	level      int8                 // paragraph embedding level, 0 or 1
	bidi       bool                 // paragraph is right-to-left or contains right-to-left text
}

func (p paragraph) direction() model.Direction {
	return model.Direction(p.level == 1)
}

// splitParagraphs splits text after every paragraph separator. CR LF is
// treated as a single separator.
func splitParagraphs(text []rune) []paragraph {
	var paras []paragraph
	start := 0
	for i := 0; i < len(text); i++ {
		if !model.IsNewParagraph(text[i]) {
			continue
		}
		body := i
		if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
			i++
		}
		paras = append(paras, paragraph{
			start: model.CharacterIndex(start),
			end:   model.CharacterIndex(i + 1),
			body:  model.CharacterIndex(body),
		})
		start = i + 1
	}
	if start < len(text) {
		paras = append(paras, paragraph{
			start: model.CharacterIndex(start),
			end:   model.CharacterIndex(len(text)),
			body:  model.CharacterIndex(len(text)),
		})
	}
	return paras
}

// paragraphLevel returns the embedding level of a paragraph. Without an
// explicit text direction it is taken from the first strong character
// (rules P2 and P3).
func paragraphLevel(runes []rune, dir bidi.Direction) int8 {
	switch dir {
	case bidi.RightToLeft:
		return 1
	case bidi.LeftToRight:
		return 0
	}
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return 0
		case bidi.R, bidi.AL:
			return 1
		}
	}
	return 0
}

func hasRightToLeft(runes []rune) bool {
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL, bidi.AN, bidi.RLE, bidi.RLO, bidi.RLI:
			return true
		}
	}
	return false
}

// resolveLevels sets the embedding level of every character of a
// paragraph. Levels are derived from the directions of the runs x/text/bidi
// produces; a run against the paragraph direction is one level deeper.
func (b *builder) resolveLevels(p *paragraph) error {
	runes := b.lm.Text[p.start:p.end]
	levels := b.levels[p.start:p.end]
	p.level = paragraphLevel(runes, b.regs.Direction())
	for i := range levels {
		levels[i] = p.level
	}
	if p.level == 0 && !hasRightToLeft(runes) {
		return nil
	}
	p.bidi = true
	s, shift := string(runes), 0
	opt := bidi.DefaultDirection(bidi.RightToLeft)
	if p.level == 0 {
		// a leading LRM makes the paragraph left-to-right
		s, shift = "\u200e"+s, 1
		opt = bidi.DefaultDirection(bidi.LeftToRight)
	}
	var para bidi.Paragraph
	if _, err := para.SetString(s, opt); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot prepare bidi paragraph at %d", p.start)
	}
	ordering, err := para.Order()
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot resolve bidi levels of paragraph at %d", p.start)
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		from, to := run.Pos() // rune positions, end inclusive
		level := p.level
		if (run.Direction() == bidi.RightToLeft) != (p.level == 1) {
			level++
		}
		for j := from; j <= to; j++ {
			if k := j - shift; k >= 0 && k < len(levels) {
				levels[k] = level
			}
		}
	}
	tracer().Debugf("paragraph [%d,%d) has level %d", p.start, p.end, p.level)
	return nil
}

// --- Scripts ---------------------------------------------------------------

var scriptTables = []struct {
	table  *unicode.RangeTable
	script language.Script
}{
	{unicode.Latin, language.MustParseScript("Latn")},
	{unicode.Arabic, language.MustParseScript("Arab")},
	{unicode.Hebrew, language.MustParseScript("Hebr")},
	{unicode.Greek, language.MustParseScript("Grek")},
	{unicode.Cyrillic, language.MustParseScript("Cyrl")},
	{unicode.Han, language.MustParseScript("Hani")},
}

var scriptCommon = language.MustParseScript("Zyyy")

func scriptOf(r rune) language.Script {
	for _, t := range scriptTables {
		if unicode.Is(t.table, r) {
			return t.script
		}
	}
	return scriptCommon
}

// scriptRuns assigns a script to every character. Common and inherited
// characters take the script of the character before them; at the start
// of the text they take the first script following.
func scriptRuns(text []rune) []model.ScriptRun {
	scripts := make([]language.Script, len(text))
	last := scriptCommon
	for i, r := range text {
		s := scriptOf(r)
		if s == scriptCommon {
			s = last
		}
		scripts[i], last = s, s
	}
	last = scriptCommon
	for i := len(scripts) - 1; i >= 0; i-- {
		if scripts[i] != scriptCommon {
			last = scripts[i]
		} else {
			scripts[i] = last
		}
	}
	var runs []model.ScriptRun
	for i, s := range scripts {
		if n := len(runs); n > 0 && runs[n-1].Script == s {
			runs[n-1].CharacterRun.NumberOfCharacters++
			continue
		}
		runs = append(runs, model.ScriptRun{
			CharacterRun: model.CharacterRun{CharacterIndex: model.CharacterIndex(i), NumberOfCharacters: 1},
			Script:       s,
		})
	}
	return runs
}

func language4Regs(regs *parameters.TypesettingRegisters) language.Tag {
	tag, err := language.Parse(regs.S(parameters.P_LANGUAGE))
	if err != nil {
		tracer().Debugf("cannot parse language %q: %v", regs.S(parameters.P_LANGUAGE), err)
	}
	return tag
}
