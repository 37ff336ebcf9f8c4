package layout

import (
	"github.com/npillmayer/textcaret/core"
	"github.com/npillmayer/textcaret/core/font"
	"github.com/npillmayer/textcaret/core/font/fontregistry"
	"github.com/npillmayer/textcaret/core/parameters"
	"github.com/npillmayer/textcaret/engine/glyphing"
	"github.com/npillmayer/textcaret/engine/text/model"
	"github.com/npillmayer/uax/segment"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

type builder struct {
	regs          *parameters.TypesettingRegisters
	shaper        glyphing.Shaper
	typecase      *font.TypeCase
	lang          language.Tag
	metrics       model.FontMetrics
	lm            *model.LogicalModel
	vm            *model.VisualModel
	levels        []int8    // embedding level per character
	advances      []float32 // advance of a cluster, held by its first character
	buf           []glyphing.ShapedGlyph
	wordSegmenter *segment.Segmenter
}

// Layout lays out text with a shaper. Font, size, direction, wrap width,
// alignment and line spacing are read from regs; if regs is nil, defaults
// are used. The font is taken from the global font registry; an unknown
// font is replaced by the fallback font.
func Layout(text string, shaper glyphing.Shaper, regs *parameters.TypesettingRegisters) (
	*model.LogicalModel, *model.VisualModel, error) {
	//
	if shaper == nil {
		return nil, nil, core.Invalid("layout needs a shaper")
	}
	if regs == nil {
		regs = parameters.NewTypesettingRegisters()
	}
	typecase, err := fontregistry.GlobalRegistry().TypeCase(regs.S(parameters.P_FONT), regs.Px(parameters.P_FONTSIZE))
	if typecase == nil {
		return nil, nil, err
	}
	if err != nil {
		tracer().Errorf("layout continues with fallback font: %v", err)
	}
	runes := []rune(norm.NFC.String(text))
	n := len(runes)
	b := &builder{
		regs:     regs,
		shaper:   shaper,
		typecase: typecase,
		lang:     language4Regs(regs),
		lm: &model.LogicalModel{
			Text:    runes,
			Scripts: scriptRuns(runes),
		},
		vm: &model.VisualModel{
			CharactersToGlyph:  make([]model.GlyphIndex, n),
			GlyphsPerCharacter: make([]model.Length, n),
		},
		levels:   make([]int8, n),
		advances: make([]float32, n),
	}
	if err = b.fontMetrics(); err != nil {
		return nil, nil, err
	}
	b.vm.Metrics = model.FontMetricsTable{textFont: b.metrics}
	if err = b.layout(); err != nil {
		return nil, nil, err
	}
	if err = b.lm.Validate(); err != nil {
		return nil, nil, err
	}
	if err = b.vm.Validate(b.lm.NumberOfCharacters()); err != nil {
		return nil, nil, err
	}
	return b.lm, b.vm, nil
}

// fontMetrics asks the shaper for the vertical metrics of the font by
// shaping a single space. Shapers which do not report metrics get the
// metrics of the type case.
func (b *builder) fontMetrics() error {
	seq, err := b.shaper.Shape(glyphing.NewRuneReader([]rune{' '}), nil, nil, glyphing.Params{
		Font:     b.typecase,
		Language: b.lang,
	})
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot shape with font %s", b.typecase.ScalableFontParent().Fontname)
	}
	if _, h, d := seq.BoundingBox(); h+d > 0 {
		b.metrics = model.FontMetrics{Ascender: h, Descender: -d, Height: h + d}
	} else {
		m := b.typecase.Metrics()
		b.metrics = model.FontMetrics{Ascender: m.Ascender, Descender: m.Descender, Height: m.Height}
	}
	tracer().Debugf("font metrics: asc=%.2f desc=%.2f", b.metrics.Ascender, b.metrics.Descender)
	return nil
}

func (b *builder) layout() error {
	paras := splitParagraphs(b.lm.Text)
	for i := range paras {
		if err := b.resolveLevels(&paras[i]); err != nil {
			return err
		}
		if paras[i].bidi && b.lm.CharacterDirections == nil {
			b.lm.CharacterDirections = make([]model.Direction, len(b.lm.Text))
		}
	}
	for _, p := range paras {
		if err := b.shapeParagraph(p); err != nil {
			return err
		}
	}
	var contentLeft []float32
	for _, p := range paras {
		for _, line := range b.breakLines(p) {
			trailing := b.placeLine(line, p)
			if p.level == 1 {
				contentLeft = append(contentLeft, trailing)
			} else {
				contentLeft = append(contentLeft, 0)
			}
		}
	}
	n := len(b.lm.Text)
	if n == 0 || model.IsNewParagraph(b.lm.Text[n-1]) {
		dir := model.Direction(paragraphLevel(nil, b.regs.Direction()) == 1)
		if len(paras) > 0 {
			dir = paras[len(paras)-1].direction()
		}
		b.emptyLine(dir)
		contentLeft = append(contentLeft, 0)
	}
	vm := b.vm
	vm.ControlSize.Width = b.regs.Px(parameters.P_CONTROLWIDTH)
	if vm.ControlSize.Width <= 0 {
		for _, line := range vm.Lines {
			vm.ControlSize.Width = max(vm.ControlSize.Width, line.Width)
		}
	}
	align := b.regs.Alignment()
	for i := range vm.Lines {
		line := &vm.Lines[i]
		if line.CharacterRun.NumberOfCharacters > 0 {
			line.AlignmentOffset = alignmentOffset(*line, contentLeft[i], vm.ControlSize.Width, align)
		}
		vm.ControlSize.Height += line.Height(i == len(vm.Lines)-1)
	}
	tracer().Infof("laid out %d characters in %d lines, size %.2f x %.2f",
		n, len(vm.Lines), vm.ControlSize.Width, vm.ControlSize.Height)
	return nil
}
