package cursor

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textcaret/engine/text/model"
	"github.com/stretchr/testify/assert"
)

func TestClosestLineEmptyText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	vm, _ := cells("", model.LeftToRight, "")
	line, hit := ClosestLine(vm.Lines, 1000)
	assert.Equal(t, model.LineIndex(0), line)
	assert.False(t, hit)
	line, hit = ClosestLine(nil, 1000)
	assert.Equal(t, model.LineIndex(0), line)
	assert.False(t, hit)
}

func TestClosestLineSingleLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	vm, _ := cells("hello world", model.LeftToRight, "")
	line, hit := ClosestLine(vm.Lines, 3)
	assert.Equal(t, model.LineIndex(0), line)
	assert.True(t, hit)
	line, hit = ClosestLine(vm.Lines, 1000)
	assert.Equal(t, model.LineIndex(0), line)
	assert.False(t, hit)
	line, hit = ClosestLine(vm.Lines, -1)
	assert.Equal(t, model.LineIndex(0), line)
	assert.False(t, hit)
}

func TestClosestLineMultiLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.cursor")
	defer teardown()
	//
	vm, _ := cells("ab\ncd\nef", model.LeftToRight, "")
	for _, c := range []struct {
		y    float32
		line model.LineIndex
		hit  bool
	}{
		{0, 0, true}, {15.9, 0, true}, {16, 1, true}, {31, 1, true},
		{32, 2, true}, {47.9, 2, true}, {48, 2, false}, {-0.1, 0, false},
	} {
		line, hit := ClosestLine(vm.Lines, c.y)
		assert.Equal(t, c.line, line, "y = %.1f", c.y)
		assert.Equal(t, c.hit, hit, "y = %.1f", c.y)
	}
}

func TestClosestLineWithSpacing(t *testing.T) {
	lines := []model.LineRun{
		{Ascender: 12, Descender: -4, LineSpacing: 4},
		{Ascender: 12, Descender: -4, LineSpacing: -4},
	}
	line, hit := ClosestLine(lines, 19)
	assert.Equal(t, model.LineIndex(0), line)
	assert.True(t, hit)
	line, hit = ClosestLine(lines, 35)
	assert.Equal(t, model.LineIndex(1), line)
	assert.True(t, hit, "negative spacing of the last line is ignored")
	assert.Equal(t, float32(0), LineOffset(lines, 0))
	assert.Equal(t, float32(20), LineOffset(lines, 1))
	assert.Equal(t, float32(36), LineOffset(lines, 2))
	assert.Equal(t, float32(36), LineOffset(lines, 5))
}

func TestClosestLineIsInRange(t *testing.T) {
	vm, _ := cells("a\nb\nc\n", model.LeftToRight, "")
	n := model.LineIndex(len(vm.Lines))
	for y := float32(-50); y < 150; y += 0.5 {
		line, _ := ClosestLine(vm.Lines, y)
		assert.True(t, line >= 0 && line < n, "line %d for y = %.1f", line, y)
	}
}
