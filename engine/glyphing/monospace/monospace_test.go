package monospace

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textcaret/engine/glyphing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonospaceCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.glyphs")
	defer teardown()
	//
	shaper := Shaper(8, nil)
	seq, err := shaper.Shape(strings.NewReader("Hello"), nil, nil, glyphing.Params{})
	require.NoError(t, err)
	require.Len(t, seq.Glyphs, 5)
	assert.Equal(t, float32(40), seq.W)
	assert.Equal(t, float32(12), seq.H)
	assert.Equal(t, float32(4), seq.D)
	for i, g := range seq.Glyphs {
		assert.Equal(t, i, g.ClusterID)
		assert.Equal(t, float32(8), g.XAdvance)
	}
}

func TestMonospaceClusters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.glyphs")
	defer teardown()
	//
	shaper := Shaper(8, nil)
	seq, err := shaper.Shape(strings.NewReader("e\u0301x\n"), nil, nil, glyphing.Params{})
	require.NoError(t, err)
	require.Len(t, seq.Glyphs, 3)
	assert.Equal(t, 0, seq.Glyphs[0].ClusterID)
	assert.Equal(t, 2, seq.Glyphs[1].ClusterID)
	assert.Equal(t, 3, seq.Glyphs[2].ClusterID)
	assert.Equal(t, float32(0), seq.Glyphs[2].XAdvance, "control characters take no space")
	assert.Equal(t, float32(16), seq.W)
}

func TestMonospaceRightToLeft(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.glyphs")
	defer teardown()
	//
	shaper := Shaper(0, nil)
	params := glyphing.Params{Direction: glyphing.RightToLeft}
	seq, err := shaper.Shape(glyphing.NewRuneReader([]rune("שלום")), nil, nil, params)
	require.NoError(t, err)
	require.Len(t, seq.Glyphs, 4)
	assert.Equal(t, 3, seq.Glyphs[0].ClusterID, "glyphs are in visual order")
	assert.Equal(t, 'ם', seq.Glyphs[0].CodePoint)
	assert.Equal(t, float32(40), seq.W)
}
