package layout

import (
	"github.com/npillmayer/textcaret/core/parameters"
	"github.com/npillmayer/textcaret/engine/text/model"
)

// visualOrder reorders a line by rule L2 of the bidi algorithm: from the
// highest level down to the lowest odd level, every run of characters at
// that level or higher is reversed. The result maps visual to logical
// positions, relative to the line start.
func visualOrder(levels []int8) []model.CharacterIndex {
	order := make([]model.CharacterIndex, len(levels))
	for i := range order {
		order[i] = model.CharacterIndex(i)
	}
	var highest, lowestOdd int8 = 0, 127
	for _, l := range levels {
		if l > highest {
			highest = l
		}
		if l%2 == 1 && l < lowestOdd {
			lowestOdd = l
		}
	}
	for level := highest; level >= lowestOdd && level > 0; level-- {
		for i := 0; i < len(order); {
			if levels[order[i]] < level {
				i++
				continue
			}
			j := i
			for j < len(order) && levels[order[j]] >= level {
				j++
			}
			for l, r := i, j-1; l < r; l, r = l+1, r-1 {
				order[l], order[r] = order[r], order[l]
			}
			i = j
		}
	}
	return order
}

// placeLine places the glyphs of a line in visual order and appends the line
// to the visual model. It returns the width of the trailing white space,
// which for right-to-left paragraphs lies left of the line's content.
func (b *builder) placeLine(s span, p paragraph) float32 {
	levels := make([]int8, s.end-s.start)
	copy(levels, b.levels[s.start:s.end])
	trailing := s.end // L1: trailing white space at paragraph level
	for trailing > s.start && model.IsWhiteSpace(b.lm.Text[trailing-1]) {
		trailing--
		levels[trailing-s.start] = p.level
	}
	order := visualOrder(levels)
	if p.bidi {
		for i, l := range levels {
			b.lm.CharacterDirections[s.start+model.CharacterIndex(i)] = l%2 == 1
		}
		inverse := make([]model.CharacterIndex, len(order))
		for v, l := range order {
			inverse[l] = model.CharacterIndex(v)
		}
		b.lm.BidiLines = append(b.lm.BidiLines, model.BidiLineRun{
			CharacterRun:    model.CharacterRun{CharacterIndex: s.start, NumberOfCharacters: model.Length(s.end - s.start)},
			VisualToLogical: order,
			LogicalToVisual: inverse,
			Direction:       p.direction(),
		})
	}
	vm := b.vm
	var penX float32
	var glyphs model.Length
	for _, l := range order {
		c := s.start + l
		m := vm.GlyphsPerCharacter[c]
		g0 := vm.CharactersToGlyph[c]
		for g := g0; g < g0+model.GlyphIndex(m); g++ {
			glyph := vm.Glyphs[g]
			vm.GlyphPositions[g] = model.Position{
				X: penX + glyph.XBearing,
				Y: b.metrics.Ascender - glyph.YBearing,
			}
			penX += glyph.Advance
		}
		glyphs += m
	}
	var trailingWidth float32
	for c := trailing; c < s.end; c++ {
		trailingWidth += b.advances[c]
	}
	vm.Lines = append(vm.Lines, model.LineRun{
		GlyphRun: model.GlyphRun{
			GlyphIndex:     vm.CharactersToGlyph[s.start],
			NumberOfGlyphs: glyphs,
		},
		CharacterRun: model.CharacterRun{CharacterIndex: s.start, NumberOfCharacters: model.Length(s.end - s.start)},
		Width:        penX - trailingWidth,
		Ascender:     b.metrics.Ascender,
		Descender:    b.metrics.Descender,
		LineSpacing:  b.regs.Px(parameters.P_LINESPACING),
		Direction:    p.direction(),
	})
	tracer().Debugf("%s", vm.Lines[len(vm.Lines)-1])
	return trailingWidth
}

// emptyLine appends a line without characters at the end of the text.
func (b *builder) emptyLine(dir model.Direction) {
	vm := b.vm
	total := model.CharacterIndex(len(b.lm.Text))
	vm.Lines = append(vm.Lines, model.LineRun{
		GlyphRun:     model.GlyphRun{GlyphIndex: model.GlyphIndex(len(vm.Glyphs))},
		CharacterRun: model.CharacterRun{CharacterIndex: total},
		Ascender:     b.metrics.Ascender,
		Descender:    b.metrics.Descender,
		LineSpacing:  b.regs.Px(parameters.P_LINESPACING),
		Direction:    dir,
	})
}

// alignmentOffset moves a line within the control. contentLeft is the
// distance of the line's content from the line's left edge. Alignment
// begin is the left edge for left-to-right paragraphs and the right edge
// for right-to-left ones.
func alignmentOffset(line model.LineRun, contentLeft, controlWidth float32, align parameters.Alignment) float32 {
	free := controlWidth - line.Width
	switch {
	case align == parameters.AlignCenter:
		return free/2 - contentLeft
	case (align == parameters.AlignBegin) == (line.Direction == model.LeftToRight):
		return -contentLeft
	}
	return free - contentLeft
}
