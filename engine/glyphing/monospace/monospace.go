package monospace

import (
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/textcaret/engine/glyphing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
)

type msshape struct {
	em               float32
	graphemeSplitter *segment.Segmenter
	context          *uax11.Context
}

// Shaper creates a shaper for monospace typesetting.
// An em-dimension in pixels may be given which will then be used for shaping text.
// If is is zero, it will be set to 10px.
//
// A cell is one em wide. Its ascender is 1.5 em and its descender 0.5 em.
func Shaper(em float32, context *uax11.Context) glyphing.Shaper {
	if em <= 0 {
		em = 10
	}
	sh := &msshape{
		em:      em,
		context: context,
	}
	if context == nil {
		sh.context = uax11.LatinContext
	}
	grapheme.SetupGraphemeClasses()
	onGraphemes := grapheme.NewBreaker(1)
	sh.graphemeSplitter = segment.NewSegmenter(onGraphemes)
	return sh
}

// Shape creates a glyph sequence from a text. For right-to-left text the
// glyphs are returned in visual order, i.e. reversed.
func (ms *msshape) Shape(text io.RuneReader, buf []glyphing.ShapedGlyph, ctx [][]rune, p glyphing.Params) (glyphing.GlyphSequence, error) {
	seq := glyphing.GlyphSequence{
		H: 1.5 * ms.em,
		D: 0.5 * ms.em,
	}
	if text == nil {
		return seq, nil
	}
	seq.Glyphs = buf[:0]
	if seq.Glyphs == nil {
		seq.Glyphs = make([]glyphing.ShapedGlyph, 0, 64)
	}
	ms.graphemeSplitter.Init(text)
	pos := 0
	for ms.graphemeSplitter.Next() {
		grphm := ms.graphemeSplitter.Bytes()
		codepoint, _ := utf8.DecodeRune(grphm)
		var adv float32
		if !unicode.IsControl(codepoint) {
			adv = float32(uax11.Width(grphm, ms.context)) * ms.em
		}
		g := glyphing.ShapedGlyph{
			ClusterID: pos,
			XAdvance:  adv,
			Width:     adv,
			Height:    2 * ms.em,
			YBearing:  1.5 * ms.em,
			GID:       uint32(codepoint),
			CodePoint: codepoint,
		}
		seq.Glyphs = append(seq.Glyphs, g)
		seq.W += g.XAdvance
		pos += utf8.RuneCount(grphm)
	}
	if p.Direction == glyphing.RightToLeft {
		for i, j := 0, len(seq.Glyphs)-1; i < j; i, j = i+1, j-1 {
			seq.Glyphs[i], seq.Glyphs[j] = seq.Glyphs[j], seq.Glyphs[i]
		}
	}
	tracer().Debugf("monospace shaper produced %d glyphs, width %.2f", len(seq.Glyphs), seq.W)
	return seq, nil
}
