package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textcaret/core"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*BP {
		t.Errorf("(1) expected d to be 12bp (%d), is %d", 12*BP, d)
	}
	//
	d, _, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	_, ispcnt, err := ParseDimen("20%")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if ispcnt != true {
		t.Errorf("(3) expected percentage-marker to be true, is %v", ispcnt)
	}
	//
	d, _, err = ParseDimen("1.5bp")
	assert.NoError(t, err)
	assert.Equal(t, BP+BP/2, d)
}

func TestParseDimenErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.core")
	defer teardown()
	//
	_, _, err := ParseDimen("12xy")
	assert.True(t, core.IsInvalid(err))
	_, _, err = ParseDimen("px")
	assert.True(t, core.IsInvalid(err))
}

func TestPixels(t *testing.T) {
	assert.Equal(t, float32(12), (12 * PX).Pixels())
	assert.Equal(t, float32(2.5), Fixed(fixed.Int26_6(160)))
	assert.Equal(t, 3*PX, MustParse("3px"))
}
