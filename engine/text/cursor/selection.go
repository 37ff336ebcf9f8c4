package cursor

import (
	"fmt"

	"github.com/npillmayer/textcaret/engine/text/model"
)

// Selection is the result of a selection gesture.
type Selection struct {
	Found bool                 // the gesture hit a character
	Start model.CharacterIndex // first character of the selection
	End   model.CharacterIndex // index past the selection
	NoHit model.CharacterIndex // closest cursor position if the gesture did not hit a character, else -1
}

func (sel Selection) String() string {
	if !sel.Found {
		return fmt.Sprintf("no selection (closest position %d)", sel.NoHit)
	}
	return fmt.Sprintf("selection [%d,%d)", sel.Start, sel.End)
}

// FindSelectionIndices finds the word or run of white space at a point.
//
// A hit on a paragraph separator selects the word or white space before it.
// A single white space character is merged with the word before it, or with
// the word after it if it starts the text or a paragraph.
func FindSelectionIndices(vm *model.VisualModel, lm *model.LogicalModel, visualX, visualY float32) Selection {
	sel := Selection{NoHit: -1}
	total := model.CharacterIndex(lm.NumberOfCharacters())
	if total == 0 {
		sel.NoHit = 0
		return sel
	}
	hit, matched := ClosestCursorIndex(vm, lm, visualX, visualY, Tap)
	if !matched {
		sel.NoHit = hit
		tracer().Debugf("%s", sel)
		return sel
	}
	if hit >= total {
		hit = total - 1
	}
	text := lm.Text
	isNewParagraph := model.IsNewParagraph(text[hit])
	isWhiteSpace := model.IsWhiteSpace(text[hit]) && !isNewParagraph
	w := wordFinder{text: text, hit: hit, isWhiteSpace: isWhiteSpace, isNewParagraph: isNewParagraph}
	if isNewParagraph {
		end := hit
		if hit > 0 {
			for end = hit - 1; end > 0; end-- {
				if !model.IsNewParagraph(text[end]) {
					break
				}
			}
		}
		w.hit = end
		w.isNewParagraph = false
		w.isWhiteSpace = model.IsWhiteSpace(text[end])
	}
	sel.Start = w.startOfWord()
	sel.End = w.endOfWord()
	if sel.End-sel.Start == 1 && isWhiteSpace {
		// a single space: select the adjacent word instead, never
		// crossing a paragraph separator
		w.isWhiteSpace = false
		if hit == 0 || model.IsNewParagraph(text[hit-1]) {
			sel.End = w.endOfWord()
		} else {
			w.hit = hit - 1
			sel.Start = w.startOfWord()
			sel.End--
		}
	}
	sel.Found = true
	tracer().Debugf("%s", sel)
	return sel
}

// wordFinder searches the boundaries of the word or white space run
// containing character hit.
type wordFinder struct {
	text           []rune
	hit            model.CharacterIndex
	isWhiteSpace   bool // hit is white space but not a paragraph separator
	isNewParagraph bool // hit is a paragraph separator
}

// classify tells if a character belongs to the class of white space and
// paragraph separators, as seen from the hit character: for a white space
// hit paragraph separators do not count, for a separator hit white space
// does not count.
func (w wordFinder) classify(r rune) bool {
	if w.isWhiteSpace || w.isNewParagraph {
		if w.isWhiteSpace {
			return model.IsWhiteSpace(r) && !model.IsNewParagraph(r)
		}
		return model.IsNewParagraph(r)
	}
	return model.IsWhiteSpace(r)
}

func (w wordFinder) startOfWord() model.CharacterIndex {
	class := w.isWhiteSpace || w.isNewParagraph
	i := w.hit
	for ; i > 0; i-- {
		if w.classify(w.text[i-1]) != class {
			break
		}
	}
	return i
}

func (w wordFinder) endOfWord() model.CharacterIndex {
	class := w.isWhiteSpace || w.isNewParagraph
	i := w.hit + 1
	for ; int(i) < len(w.text); i++ {
		if w.classify(w.text[i]) != class {
			break
		}
	}
	return i
}
