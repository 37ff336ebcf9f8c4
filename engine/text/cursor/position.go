package cursor

import (
	"fmt"

	"github.com/npillmayer/textcaret/engine/text/model"
)

// Info describes where to draw the cursor for a logical position.
// Positions are the top of the cursor, in text-local pixels.
type Info struct {
	PrimaryPosition       model.Position
	SecondaryPosition     model.Position
	LineOffset            float32 // sum of the heights of the lines above
	LineHeight            float32 // ascender - descender of the cursor's line
	PrimaryCursorHeight   float32
	SecondaryCursorHeight float32
	IsSecondaryCursor     bool // at a direction boundary the cursor has two positions
}

func (info Info) String() string {
	s := fmt.Sprintf("cursor at %s h=%.2f (line offset %.2f, height %.2f)", info.PrimaryPosition,
		info.PrimaryCursorHeight, info.LineOffset, info.LineHeight)
	if info.IsSecondaryCursor {
		s += fmt.Sprintf(", secondary at %s h=%.2f", info.SecondaryPosition, info.SecondaryCursorHeight)
	}
	return s
}

// primaryAdvance tells whether a glyph's advance is added to the primary
// cursor position, indexed by F<<3|L<<2|C<<1|P with
//
//   F: cursor is at the first position of the line
//   L: cursor is at the last position of the line
//   C: the current character is right-to-left
//   P: the paragraph is right-to-left
//
// F and L are both set only for lines without characters; these rows are
// never consulted.
var primaryAdvance = [16]bool{
	true, true, false, false, // 00CP
	true, false, true, false, // 01CP
	false, true, false, true, // 10CP
	true, true, true, true, // 11CP
}

// secondaryAdvance tells whether a glyph's advance is added to the
// secondary cursor position, indexed by F<<2|C<<1|P. Rows 001, 100 and 111
// do not occur together with a secondary cursor.
var secondaryAdvance = [8]bool{
	true, true, false, false, // 0CP
	true, false, true, false, // 1CP
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// CursorPosition calculates the position and height of the cursor placed
// before character logical. Positions past the text are clamped to its end.
//
// If the cursor sits at a boundary between runs of different direction, the
// primary position is the one continuing the paragraph's direction and a
// secondary position is calculated for the other run. Both then are drawn
// with half the height of the font.
func CursorPosition(vm *model.VisualModel, lm *model.LogicalModel, logical model.CharacterIndex) Info {
	var info Info
	if len(vm.Lines) == 0 {
		return info
	}
	total := model.CharacterIndex(lm.NumberOfCharacters())
	if logical < 0 {
		logical = 0
	} else if logical > total {
		logical = total
	}
	tracer().Debugf("cursor position for logical index %d", logical)
	if total == 0 {
		return emptyLineCursor(vm, 0, vm.Lines[0].Direction)
	}
	isLastPosition := logical == total
	characterOfLine := logical
	if isLastPosition {
		characterOfLine = logical - 1
	}
	lineIndex := vm.LineOfCharacter(characterOfLine)
	line := vm.Lines[lineIndex]
	if isLastPosition && model.IsNewParagraph(lm.Text[characterOfLine]) {
		return emptyLineCursor(vm, lineIndex+1, line.Direction)
	}
	order := lm.LineOrder(line.CharacterRun.CharacterIndex)
	//
	isFirstPositionOfLine := line.CharacterRun.CharacterIndex == logical
	isLastPositionOfLine := line.CharacterRun.End() == logical
	characterIndex := logical - 1
	if isFirstPositionOfLine {
		characterIndex = logical
	}
	nextCharacterIndex := logical
	if isLastPositionOfLine {
		nextCharacterIndex = characterIndex
	}
	isCurrentRightToLeft := order.Direction(characterIndex) == model.RightToLeft
	isNextRightToLeft := order.Direction(nextCharacterIndex) == model.RightToLeft
	isRightToLeftParagraph := line.Direction == model.RightToLeft
	info.IsSecondaryCursor = (!isLastPositionOfLine && isCurrentRightToLeft != isNextRightToLeft) ||
		(isLastPositionOfLine && isRightToLeftParagraph != isCurrentRightToLeft) ||
		(isFirstPositionOfLine && isRightToLeftParagraph != isCurrentRightToLeft)
	info.LineOffset = LineOffset(vm.Lines, lineIndex)
	info.LineHeight = line.Ascender - line.Descender
	//
	// primary cursor
	index := characterIndex
	if info.IsSecondaryCursor {
		lastOfLine := line.CharacterRun.End() - 1
		switch {
		case isLastPositionOfLine:
			// first character after the last one in paragraph direction
			if isRightToLeftParagraph {
				index = order.LogicalCharacterIndex(line.CharacterRun.CharacterIndex)
			} else {
				index = order.LogicalCharacterIndex(lastOfLine)
			}
		case isFirstPositionOfLine:
			if isRightToLeftParagraph {
				index = order.LogicalCharacterIndex(lastOfLine)
			} else {
				index = order.LogicalCharacterIndex(line.CharacterRun.CharacterIndex)
			}
		case isRightToLeftParagraph != isCurrentRightToLeft:
			index = nextCharacterIndex
		}
	}
	primaryGlyph := vm.CharactersToGlyph[index]
	primaryNumberOfCharacters := vm.CharactersPerGlyph[primaryGlyph]
	metrics := vm.GlyphMetrics(primaryGlyph, vm.GlyphsPerCharacter[index])
	row := bit(isFirstPositionOfLine)<<3 | bit(isLastPositionOfLine)<<2 |
		bit(isCurrentRightToLeft)<<1 | bit(isRightToLeftParagraph)
	var advance float32
	if primaryAdvance[row] {
		advance = metrics.Advance
	}
	if !isLastPositionOfLine && primaryNumberOfCharacters > 1 {
		// inside a ligature: advance by the characters already passed
		firstIndex := vm.GlyphsToCharacters[primaryGlyph]
		n := model.Length(characterIndex-firstIndex) + model.Length(1-bit(isFirstPositionOfLine))
		if order.Direction(index) == model.RightToLeft {
			n = primaryNumberOfCharacters - n
		}
		if n < 0 {
			n = 0
		} else if n > primaryNumberOfCharacters {
			n = primaryNumberOfCharacters
		}
		advance = float32(n) * metrics.Advance / float32(primaryNumberOfCharacters)
	}
	position := vm.GlyphPositions[primaryGlyph]
	info.PrimaryCursorHeight = metrics.FontHeight
	if info.IsSecondaryCursor {
		info.PrimaryCursorHeight = 0.5 * metrics.FontHeight
	}
	info.PrimaryPosition.X = -metrics.XBearing + position.X + advance + line.AlignmentOffset
	info.PrimaryPosition.Y = info.LineOffset + line.Ascender - metrics.Ascender
	//
	// secondary cursor
	if info.IsSecondaryCursor {
		info.SecondaryCursorHeight = 0.5 * metrics.FontHeight
		index := characterIndex
		if !isLastPositionOfLine && isRightToLeftParagraph == isCurrentRightToLeft {
			index = nextCharacterIndex
		}
		secondaryGlyph := vm.CharactersToGlyph[index]
		metrics := vm.GlyphMetrics(secondaryGlyph, vm.GlyphsPerCharacter[index])
		row := bit(isFirstPositionOfLine)<<2 | bit(isCurrentRightToLeft)<<1 | bit(isRightToLeftParagraph)
		var advance float32
		if secondaryAdvance[row] {
			advance = metrics.Advance
		}
		position := vm.GlyphPositions[secondaryGlyph]
		info.SecondaryPosition.X = -metrics.XBearing + position.X + advance + line.AlignmentOffset
		info.SecondaryPosition.Y = info.LineOffset + info.LineHeight - info.SecondaryCursorHeight
	}
	tracer().Debugf("%s", info)
	return info
}

// emptyLineCursor places the cursor on a line without characters, either
// the empty line after a final paragraph separator or the only line of an
// empty text. The cursor goes to the left edge of the control, or to its
// right edge for right-to-left paragraphs.
func emptyLineCursor(vm *model.VisualModel, lineIndex model.LineIndex, dir model.Direction) Info {
	var info Info
	var line model.LineRun
	if int(lineIndex) < len(vm.Lines) {
		line = vm.Lines[lineIndex]
	} else {
		line = vm.Lines[len(vm.Lines)-1]
	}
	info.LineOffset = LineOffset(vm.Lines, lineIndex)
	info.LineHeight = line.Ascender - line.Descender
	info.PrimaryCursorHeight = info.LineHeight
	info.PrimaryPosition.Y = info.LineOffset
	if dir == model.RightToLeft {
		info.PrimaryPosition.X = vm.ControlSize.Width
	}
	tracer().Debugf("%s", info)
	return info
}
