package cursor

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textcaret/engine/text/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeParagraphs = "Hello world\nשלום עולם\ndifferent الأربعاء\n"

func TestTapOutsideText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	vm, lm := cells(threeParagraphs, model.LeftToRight, "")
	index, hit := ClosestCursorIndex(vm, lm, -100, -100, Tap)
	assert.Equal(t, model.CharacterIndex(0), index)
	assert.False(t, hit)
	index, hit = ClosestCursorIndex(vm, lm, 10, 1000, Tap)
	assert.Equal(t, model.CharacterIndex(lm.NumberOfCharacters()), index)
	assert.False(t, hit)
}

func TestTapInsideWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	vm, lm := cells(threeParagraphs, model.LeftToRight, "")
	index, hit := ClosestCursorIndex(vm, lm, 40, 12, Tap)
	assert.Equal(t, model.CharacterIndex(5), index)
	assert.True(t, hit)
}

func TestTapPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	vm, lm := cells("ab\ncd\n", model.LeftToRight, "")
	for _, c := range []struct {
		x, y  float32
		index model.CharacterIndex
		hit   bool
	}{
		{-5, 8, 0, false},   // left of the first glyph
		{3, 8, 0, true},     // left half of 'a'
		{5, 8, 1, true},     // right half of 'a'
		{100, 8, 2, false},  // right of line 0: before the separator
		{100, 24, 5, false}, // right of line 1
		{9, 24, 4, true},    // left half of 'd'
		{0, 40, 6, false},   // empty last line
		{3, 60, 6, false},   // below the text
	} {
		index, hit := ClosestCursorIndex(vm, lm, c.x, c.y, Tap)
		assert.Equal(t, c.index, index, "tap at (%.0f,%.0f)", c.x, c.y)
		assert.Equal(t, c.hit, hit, "tap at (%.0f,%.0f)", c.x, c.y)
	}
}

func TestTapAtEndOfTextWithSeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	vm, lm := cells("ab\n", model.LeftToRight, "")
	index, _ := ClosestCursorIndex(vm, lm, 100, 8, Tap)
	assert.Equal(t, model.CharacterIndex(2), index, "cursor goes before the final separator")
	index, _ = ClosestCursorIndex(vm, lm, 100, 20, Tap)
	assert.Equal(t, model.CharacterIndex(3), index)
}

func TestScrollMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	vm, lm := cells("ab\ncd", model.LeftToRight, "")
	index, _ := ClosestCursorIndex(vm, lm, 2, -50, Scroll)
	assert.Equal(t, model.CharacterIndex(0), index)
	index, _ = ClosestCursorIndex(vm, lm, 10, 500, Scroll)
	assert.Equal(t, model.CharacterIndex(4), index, "closest line is the last one")
	index, _ = ClosestCursorIndex(vm, lm, 10, 500, Tap)
	assert.Equal(t, model.CharacterIndex(5), index)
}

func TestAlignmentOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	vm, lm := cells("abc", model.LeftToRight, "")
	vm.Lines[0].AlignmentOffset = 100
	index, hit := ClosestCursorIndex(vm, lm, 50, 8, Tap)
	assert.Equal(t, model.CharacterIndex(0), index)
	assert.False(t, hit)
	index, hit = ClosestCursorIndex(vm, lm, 110, 8, Tap)
	assert.Equal(t, model.CharacterIndex(1), index)
	assert.True(t, hit)
}

func TestLigatureSplitting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	vm, lm := ligature()
	for _, c := range []struct {
		x     float32
		index model.CharacterIndex
	}{
		{3, 0}, {6, 1}, {11, 1}, {13, 2}, {19, 2}, {21, 3},
	} {
		index, _ := ClosestCursorIndex(vm, lm, c.x, 8, Tap)
		assert.Equal(t, c.index, index, "tap at x = %.0f", c.x)
	}
}

func TestTapLeftOfLineStartingWithCluster(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	vm, lm := ligature()
	index, hit := ClosestCursorIndex(vm, lm, -50, 8, Tap)
	assert.Equal(t, model.CharacterIndex(0), index)
	assert.False(t, hit, "left margin is not a hit on the ligature")
	index, hit = ClosestCursorIndex(vm, lm, 3, 8, Tap)
	assert.Equal(t, model.CharacterIndex(0), index)
	assert.True(t, hit)
	sel := FindSelectionIndices(vm, lm, -50, 8)
	assert.False(t, sel.Found)
	assert.Equal(t, model.CharacterIndex(0), sel.NoHit)
}

func TestTapRTLLineBeforeSeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	// "אב\nגד", visual order of line 0: separator ב א
	vm, lm := cells("אב\nגד", model.RightToLeft, "RRRRR",
		[]model.CharacterIndex{2, 1, 0}, []model.CharacterIndex{1, 0})
	require.Len(t, vm.Lines, 2)
	index, hit := ClosestCursorIndex(vm, lm, -10, 8, Tap)
	assert.Equal(t, model.CharacterIndex(2), index, "cursor stays before the separator")
	assert.False(t, hit)
	index, _ = ClosestCursorIndex(vm, lm, -10, 24, Tap)
	assert.Equal(t, model.CharacterIndex(5), index, "left edge of the last line is its end")
}

func TestTapRightOfWrappedLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	vm, lm := wrapped()
	index, hit := ClosestCursorIndex(vm, lm, 100, 8, Tap)
	assert.Equal(t, model.CharacterIndex(2), index, "cursor goes before the wrap point")
	assert.False(t, hit)
	index, hit = ClosestCursorIndex(vm, lm, 100, 24, Tap)
	assert.Equal(t, model.CharacterIndex(5), index)
	assert.False(t, hit)
	index, hit = ClosestCursorIndex(vm, lm, 3, 24, Tap)
	assert.Equal(t, model.CharacterIndex(3), index)
	assert.True(t, hit)
}

func TestNoGlyphs(t *testing.T) {
	vm, lm := cells("", model.LeftToRight, "")
	index, hit := ClosestCursorIndex(vm, lm, 3, 3, Tap)
	assert.Equal(t, model.CharacterIndex(0), index)
	assert.False(t, hit)
}

func TestTapBidiLTRParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	vm, lm := mixedLTR() // visual: a b ג ב א
	for _, c := range []struct {
		x     float32
		index model.CharacterIndex
		hit   bool
	}{
		{2, 0, true},
		{10, 1, true},
		{18, 2, true},  // left half of ג: after b
		{22, 4, true},  // right half of ג: between ב and ג
		{30, 3, true},  // right half of ב
		{34, 3, true},  // left half of א
		{38, 5, false}, // right half of א: right edge of the line
		{100, 5, false},
	} {
		index, hit := ClosestCursorIndex(vm, lm, c.x, 8, Tap)
		assert.Equal(t, c.index, index, "tap at x = %.0f", c.x)
		assert.Equal(t, c.hit, hit, "tap at x = %.0f", c.x)
	}
}

func TestTapBidiRTLParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	vm, lm := mixedRTL() // visual: a b ב א
	for _, c := range []struct {
		x     float32
		index model.CharacterIndex
		hit   bool
	}{
		{2, 4, true},    // left edge of an RTL paragraph is its end
		{10, 3, true},   // between a and b
		{14, 2, true},   // between b and ב
		{22, 1, true},   // between ב and א
		{30, 0, false},  // right half of א: right edge
		{-10, 4, false}, // left of the line
	} {
		index, hit := ClosestCursorIndex(vm, lm, c.x, 8, Tap)
		assert.Equal(t, c.index, index, "tap at x = %.0f", c.x)
		assert.Equal(t, c.hit, hit, "tap at x = %.0f", c.x)
	}
}

func TestCursorIndexIsInRange(t *testing.T) {
	for _, f := range []func() (*model.VisualModel, *model.LogicalModel){
		mixedLTR, mixedRTL, latinFirstRTL, hebrewFirstLTR, hebrewOnly, ligature,
		func() (*model.VisualModel, *model.LogicalModel) {
			return cells(threeParagraphs, model.LeftToRight, "")
		},
	} {
		vm, lm := f()
		total := model.CharacterIndex(lm.NumberOfCharacters())
		for y := float32(-20); y < 100; y += 4 {
			for x := float32(-20); x < 200; x += 1.5 {
				for _, mode := range []HitTestMode{Tap, Scroll} {
					index, _ := ClosestCursorIndex(vm, lm, x, y, mode)
					assert.True(t, index >= 0 && index <= total,
						"index %d out of range for (%.1f,%.1f) in %q", index, x, y, string(lm.Text))
				}
			}
		}
	}
}

func TestCursorIndexIsMonotonic(t *testing.T) {
	vm, lm := cells("The quick brown fox", model.LeftToRight, "")
	last := model.CharacterIndex(0)
	for x := float32(-10); x < 200; x += 0.5 {
		index, _ := ClosestCursorIndex(vm, lm, x, 8, Tap)
		assert.GreaterOrEqual(t, index, last, "x = %.1f", x)
		last = index
	}
	assert.Equal(t, model.CharacterIndex(19), last)
}

func TestRoundTrip(t *testing.T) {
	vm, lm := cells("roundtrip", model.LeftToRight, "")
	for i := 0; i < 9; i++ {
		mid := float32(i*cell) + cell/2
		index, _ := ClosestCursorIndex(vm, lm, mid, 8, Tap)
		assert.True(t, index == model.CharacterIndex(i) || index == model.CharacterIndex(i+1),
			"character %d at midpoint yields %d", i, index)
		info := CursorPosition(vm, lm, index)
		assert.InDelta(t, mid, info.PrimaryPosition.X, cell/2+0.001)
	}
}
