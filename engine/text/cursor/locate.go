package cursor

import "github.com/npillmayer/textcaret/engine/text/model"

// HitTestMode tells how to treat positions above or below the text.
type HitTestMode int

const (
	// Tap returns the start or the end of the text for positions above or
	// below all lines.
	Tap HitTestMode = iota
	// Scroll uses the closest line for positions above or below all lines.
	Scroll
)

func (m HitTestMode) String() string {
	if m == Scroll {
		return "scroll"
	}
	return "tap"
}

// ClosestCursorIndex finds the logical cursor position closest to a point.
// The result is in [0, number of characters]. The boolean result is true
// if the point hit a character of a line.
//
// Glyphs of the closest line are visited in visual order. A point left of
// the middle of a glyph places the cursor before the glyph's characters.
// Ligatures of scripts which allow it are split into equal parts, one per
// character.
func ClosestCursorIndex(vm *model.VisualModel, lm *model.LogicalModel, visualX, visualY float32,
	mode HitTestMode) (model.CharacterIndex, bool) {
	//
	tracer().Debugf("closest cursor index for %s at (%.2f,%.2f)", mode, visualX, visualY)
	totalGlyphs := len(vm.Glyphs)
	if totalGlyphs == 0 || len(vm.Lines) == 0 {
		return 0, false
	}
	total := model.CharacterIndex(lm.NumberOfCharacters())
	lineIndex, lineHit := ClosestLine(vm.Lines, visualY)
	if !lineHit && mode == Tap {
		if visualY < 0 {
			return 0, false
		}
		return total, false
	}
	line := vm.Lines[lineIndex]
	isLastLine := int(lineIndex) == len(vm.Lines)-1
	visualX -= line.AlignmentOffset // to line coordinates
	start, end := line.CharacterRun.CharacterIndex, line.CharacterRun.End()
	order := lm.LineOrder(start)
	//
	matched, beforeFirstGlyph := false, false
	visualIndex := start
	var numberOfVisualCharacters model.Length
	for ; visualIndex < end; visualIndex++ {
		logical := order.LogicalCharacterIndex(visualIndex)
		numberOfGlyphs := vm.GlyphsPerCharacter[logical]
		numberOfVisualCharacters++
		if numberOfGlyphs == 0 {
			continue // part of a cluster, glyphs are held by another character
		}
		firstVisual := visualIndex + 1 - model.CharacterIndex(numberOfVisualCharacters)
		firstGlyph := vm.CharactersToGlyph[order.LogicalCharacterIndex(firstVisual)]
		metrics := vm.GlyphMetrics(firstGlyph, numberOfGlyphs)
		position := vm.GlyphPositions[firstGlyph]
		if firstVisual == start && visualX < -metrics.XBearing+position.X {
			beforeFirstGlyph = true
			break
		}
		numberOfCharacters := vm.CharactersPerGlyph[firstGlyph]
		if order.Direction(logical) == model.RightToLeft {
			// In visual order the character holding the cluster's glyphs comes
			// first for right-to-left clusters; skip the remaining characters.
			if numberOfCharacters == 0 {
				for g := int(firstGlyph) + 1; numberOfCharacters == 0 && g < totalGlyphs; g++ {
					numberOfCharacters = vm.CharactersPerGlyph[g]
				}
				if numberOfCharacters < 2 {
					continue
				}
				numberOfCharacters--
			}
			visualIndex += model.CharacterIndex(numberOfCharacters) - 1
		}
		blocks := model.Length(1)
		if numberOfCharacters > numberOfGlyphs && model.HasLigatureMustBreak(lm.Script(logical)) {
			blocks = numberOfCharacters
		}
		advance := metrics.Advance / float32(blocks)
		var block model.Length
		for ; block < blocks; block++ {
			center := -metrics.XBearing + position.X + (float32(block)+0.5)*advance
			if visualX < center {
				matched = true
				break
			}
		}
		if matched {
			visualIndex = firstVisual + model.CharacterIndex(block)
			break
		}
		numberOfVisualCharacters = 0
	}
	if !matched {
		if beforeFirstGlyph {
			visualIndex = start
		} else {
			visualIndex = end
		}
	}
	if visualIndex != total {
		if line.Direction == model.LeftToRight {
			if visualIndex == end && end > start {
				// before the paragraph separator or the wrap point
				visualIndex--
			}
		} else if !isLastLine && visualIndex == start {
			visualIndex++
		}
	} else if !isLastLine && visualIndex > 0 && model.IsNewParagraph(lm.Text[visualIndex-1]) {
		// the empty line after a final separator is not the closest line
		visualIndex--
	}
	logical := order.LogicalCursorIndex(visualIndex)
	if logical < 0 {
		logical = 0
	} else if logical > total {
		logical = total
	}
	tracer().Debugf("closest visual index %d, logical index %d, hit = %v", visualIndex, logical, matched)
	return logical, matched
}
