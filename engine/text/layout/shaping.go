package layout

import (
	"github.com/npillmayer/textcaret/core"
	"github.com/npillmayer/textcaret/engine/glyphing"
	"github.com/npillmayer/textcaret/engine/text/model"
)

// textFont is the font ID of the single font of a layout.
const textFont model.FontID = 1

// shapeParagraph shapes the characters of a paragraph in segments of equal
// script and direction. Paragraph separators are not shaped but get an
// empty glyph each.
func (b *builder) shapeParagraph(p paragraph) error {
	for from := p.start; from < p.body; {
		to := from + 1
		script, level := b.lm.Script(from), b.levels[from]%2
		for to < p.body && b.lm.Script(to) == script && b.levels[to]%2 == level {
			to++
		}
		if err := b.shapeSegment(p, from, to); err != nil {
			return err
		}
		from = to
	}
	for c := p.body; c < p.end; c++ {
		b.appendCluster(c, c+1, nil, false)
	}
	return nil
}

func (b *builder) shapeSegment(p paragraph, from, to model.CharacterIndex) error {
	rtl := b.levels[from]%2 == 1
	params := glyphing.Params{
		Font:      b.typecase,
		Direction: glyphing.LeftToRight,
		Script:    b.lm.Script(from),
		Language:  b.lang,
	}
	if rtl {
		params.Direction = glyphing.RightToLeft
	}
	context := [][]rune{b.lm.Text[p.start:from], b.lm.Text[to:p.body]}
	seq, err := b.shaper.Shape(glyphing.NewRuneReader(b.lm.Text[from:to]), b.buf, context, params)
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot shape characters [%d,%d)", from, to)
	}
	glyphs := seq.Glyphs
	b.buf = glyphs[:0]
	tracer().Debugf("segment [%d,%d) %s shaped into %d glyphs", from, to, params.Direction, len(glyphs))
	if rtl { // to logical order
		for i, j := 0, len(glyphs)-1; i < j; i, j = i+1, j-1 {
			glyphs[i], glyphs[j] = glyphs[j], glyphs[i]
		}
	}
	if len(glyphs) == 0 {
		b.appendCluster(from, to, nil, rtl)
		return nil
	}
	n := int(to - from)
	start := 0
	for i := 0; i < len(glyphs); {
		// characters without glyphs join the following cluster, clusters
		// out of order join the current one
		id := max(glyphs[i].ClusterID, start)
		j := i + 1
		for j < len(glyphs) && glyphs[j].ClusterID <= id {
			j++
		}
		end := n
		if j < len(glyphs) {
			if glyphs[j].ClusterID < n {
				end = glyphs[j].ClusterID
			} else {
				j = len(glyphs)
			}
		}
		b.appendCluster(from+model.CharacterIndex(start), from+model.CharacterIndex(end), glyphs[i:j], rtl)
		start, i = end, j
	}
	return nil
}

// appendCluster appends the glyphs of a cluster of characters [from,to) to
// the visual model and fills the cluster tables. Glyphs of right-to-left
// clusters come in reverse visual order and are stored in visual order.
// A cluster without glyphs gets an empty glyph.
func (b *builder) appendCluster(from, to model.CharacterIndex, glyphs []glyphing.ShapedGlyph, rtl bool) {
	vm := b.vm
	g0 := model.GlyphIndex(len(vm.Glyphs))
	if len(glyphs) == 0 {
		glyphs = []glyphing.ShapedGlyph{{
			Height:   b.metrics.Height,
			YBearing: b.metrics.Ascender,
		}}
	}
	var advance float32
	for k := range glyphs {
		g := glyphs[k]
		if rtl {
			g = glyphs[len(glyphs)-1-k]
		}
		vm.Glyphs = append(vm.Glyphs, model.GlyphInfo{
			FontID:   textFont,
			GID:      g.GID,
			Width:    g.Width,
			Height:   g.Height,
			XBearing: g.XBearing,
			YBearing: g.YBearing,
			Advance:  g.XAdvance,
		})
		vm.GlyphPositions = append(vm.GlyphPositions, model.Position{})
		vm.CharactersPerGlyph = append(vm.CharactersPerGlyph, 0)
		vm.GlyphsToCharacters = append(vm.GlyphsToCharacters, from)
		advance += g.XAdvance
	}
	vm.CharactersPerGlyph[g0] = model.Length(to - from)
	for c := from; c < to; c++ {
		vm.CharactersToGlyph[c] = g0
	}
	vm.GlyphsPerCharacter[to-1] = model.Length(len(glyphs))
	b.advances[from] = advance
}

// isClusterStart is true if character c is the first one of its cluster.
func (b *builder) isClusterStart(c model.CharacterIndex) bool {
	return b.vm.GlyphsToCharacters[b.vm.CharactersToGlyph[c]] == c
}
