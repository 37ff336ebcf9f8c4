package model

import (
	"sort"

	"github.com/npillmayer/textcaret/core"
	"golang.org/x/text/language"
)

// ScriptRun is a run of characters of the same script.
type ScriptRun struct {
	CharacterRun CharacterRun
	Script       language.Script
}

// BidiLineRun holds the reordering of a bidirectional line.
// Map entries are relative to the start of the line.
type BidiLineRun struct {
	CharacterRun    CharacterRun
	VisualToLogical []CharacterIndex
	LogicalToVisual []CharacterIndex
	Direction       Direction // paragraph direction
}

// LogicalModel holds the logical representation of laid-out text.
type LogicalModel struct {
	Text                []rune
	Scripts             []ScriptRun   // ordered, contiguous
	CharacterDirections []Direction   // nil if the text is left-to-right only
	BidiLines           []BidiLineRun // ordered by start character
}

// NumberOfCharacters returns the length of the text.
func (lm *LogicalModel) NumberOfCharacters() Length {
	return Length(len(lm.Text))
}

// Script returns the script of a character. Characters not covered by a
// script run are of script "Zyyy" (common).
func (lm *LogicalModel) Script(index CharacterIndex) language.Script {
	i := sort.Search(len(lm.Scripts), func(i int) bool {
		return lm.Scripts[i].CharacterRun.End() > index
	})
	if i < len(lm.Scripts) && lm.Scripts[i].CharacterRun.Contains(index) {
		return lm.Scripts[i].Script
	}
	return scriptCommon
}

// Direction returns the direction of a character. Without a directions
// table every character is left-to-right.
func (lm *LogicalModel) Direction(index CharacterIndex) Direction {
	if lm.CharacterDirections == nil || index < 0 || int(index) >= len(lm.CharacterDirections) {
		return LeftToRight
	}
	return lm.CharacterDirections[index]
}

// LineOrder returns the reordering of the line starting at character
// startCharacter. If the line is not bidirectional, the identity order is
// returned.
func (lm *LogicalModel) LineOrder(startCharacter CharacterIndex) LineOrder {
	i := sort.Search(len(lm.BidiLines), func(i int) bool {
		return lm.BidiLines[i].CharacterRun.CharacterIndex >= startCharacter
	})
	if i < len(lm.BidiLines) && lm.BidiLines[i].CharacterRun.CharacterIndex == startCharacter {
		return LineOrder{model: lm, run: &lm.BidiLines[i]}
	}
	return LineOrder{model: lm}
}

// Validate checks the consistency of a logical model.
func (lm *LogicalModel) Validate() error {
	n := len(lm.Text)
	if lm.CharacterDirections != nil && len(lm.CharacterDirections) != n {
		return core.Error(core.EINVALID, "directions table has %d entries for %d characters",
			len(lm.CharacterDirections), n)
	}
	var next CharacterIndex
	for _, run := range lm.Scripts {
		if run.CharacterRun.CharacterIndex != next {
			return core.Error(core.EINVALID, "script runs are not contiguous at %d", next)
		}
		next = run.CharacterRun.End()
	}
	if len(lm.Scripts) > 0 && int(next) != n {
		return core.Error(core.EINVALID, "script runs cover %d of %d characters", next, n)
	}
	for _, bl := range lm.BidiLines {
		l := int(bl.CharacterRun.NumberOfCharacters)
		if int(bl.CharacterRun.End()) > n {
			return core.Error(core.EINVALID, "bidi line at %d exceeds text", bl.CharacterRun.CharacterIndex)
		}
		if len(bl.VisualToLogical) != l || len(bl.LogicalToVisual) != l {
			return core.Error(core.EINVALID, "bidi line at %d has maps of wrong size", bl.CharacterRun.CharacterIndex)
		}
		for v, lg := range bl.VisualToLogical {
			if lg < 0 || int(lg) >= l || bl.LogicalToVisual[lg] != CharacterIndex(v) {
				return core.Error(core.EINVALID, "bidi line at %d: maps are not inverse", bl.CharacterRun.CharacterIndex)
			}
		}
	}
	if len(lm.BidiLines) > 0 && lm.CharacterDirections == nil {
		return core.Error(core.EINVALID, "bidi lines without character directions")
	}
	return nil
}

var scriptCommon = language.MustParseScript("Zyyy")

// --- Line order ------------------------------------------------------------

// LineOrder is a view on the reordering of a single line. The zero value
// of the run denotes a line which is not bidirectional, where visual and
// logical order are identical.
type LineOrder struct {
	model *LogicalModel
	run   *BidiLineRun
}

// IsBidirectional is true if the line has been reordered.
func (o LineOrder) IsBidirectional() bool {
	return o.run != nil
}

// LogicalCharacterIndex converts the visual index of a character of the line
// to its logical index.
func (o LineOrder) LogicalCharacterIndex(visual CharacterIndex) CharacterIndex {
	if o.run == nil {
		return visual
	}
	start := o.run.CharacterRun.CharacterIndex
	rel := visual - start
	if rel < 0 || int(rel) >= len(o.run.VisualToLogical) {
		return visual
	}
	return start + o.run.VisualToLogical[rel]
}

// VisualCharacterIndex converts the logical index of a character of the line
// to its visual index.
func (o LineOrder) VisualCharacterIndex(logical CharacterIndex) CharacterIndex {
	if o.run == nil {
		return logical
	}
	start := o.run.CharacterRun.CharacterIndex
	rel := logical - start
	if rel < 0 || int(rel) >= len(o.run.LogicalToVisual) {
		return logical
	}
	return start + o.run.LogicalToVisual[rel]
}

// Direction returns the direction of a character. Characters of lines which
// are not bidirectional are left-to-right.
func (o LineOrder) Direction(logical CharacterIndex) Direction {
	if o.run == nil || o.model == nil {
		return LeftToRight
	}
	return o.model.Direction(logical)
}

// LogicalCursorIndex converts a visual cursor position of the line, i.e. a
// position between two visual characters, to a logical cursor position.
//
// At the visual edges of the line the cursor goes to the logical start or
// end, depending on the paragraph direction. Between two characters of the
// same direction it goes between them. At a direction change it sticks to
// the character continuing the paragraph direction.
func (o LineOrder) LogicalCursorIndex(visualCursor CharacterIndex) CharacterIndex {
	if o.run == nil {
		return visualCursor
	}
	start := o.run.CharacterRun.CharacterIndex
	end := o.run.CharacterRun.End()
	rtlParagraph := o.run.Direction == RightToLeft
	switch {
	case visualCursor <= start:
		if rtlParagraph {
			return end
		}
		return start
	case visualCursor >= end:
		if rtlParagraph {
			return start
		}
		return end
	}
	previous := o.LogicalCharacterIndex(visualCursor - 1)
	current := o.LogicalCharacterIndex(visualCursor)
	prevDir, currDir := o.Direction(previous), o.Direction(current)
	if prevDir == currDir {
		if prevDir == RightToLeft {
			return previous
		}
		return current
	}
	if rtlParagraph {
		if currDir == RightToLeft {
			return current + 1
		}
		return previous
	}
	if prevDir == RightToLeft {
		return current
	}
	return previous + 1
}
