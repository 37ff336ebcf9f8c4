package fontregistry

import (
	"context"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textcaret/core"
	"github.com/npillmayer/textcaret/core/font"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackTypeCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	tc, err := fr.TypeCase("", 12)
	require.NoError(t, err)
	require.NotNil(t, tc)
	assert.Equal(t, "Go Sans", tc.ScalableFontParent().Fontname)
	//
	tc2, err := fr.TypeCase("no-such-font", 12)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Same(t, tc, tc2, "fallback type case is cached")
}

func TestStoredFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	fr.StoreFont("gosans", font.FallbackFont())
	tc, err := fr.TypeCase("gosans", 14)
	require.NoError(t, err)
	assert.Equal(t, 14.0, tc.PtSize())
	again, err := fr.TypeCase("gosans", 14)
	require.NoError(t, err)
	assert.Same(t, tc, again)
	fr.LogFontList()
}

func TestLoadSystemFontMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	fr.find = func(string) (string, error) { return "", errors.New("not installed") }
	name, err := fr.LoadSystemFont("Clarendon-bold")
	assert.Equal(t, "clarendon-bold", name)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestSystemFontKey(t *testing.T) {
	for k, v := range map[string]string{
		"Clarendon-bold":               "clarendon-bold",
		"Clarendon-Bold.ttf":           "clarendon-bold",
		"Gill Sans MT Bold Italic.ttf": "gill_sans_mt-italic-bold",
		"Go Sans Regular":              "go_sans",
		"Go Sans":                      "go_sans",
	} {
		assert.Equal(t, v, SystemFontKey(k), "key of %q", k)
	}
}

func TestLoadSystemFontKnown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	fr.StoreFont(Normalize("Go Sans"), font.FallbackFont())
	fr.find = func(string) (string, error) { t.Fatal("must not search known fonts"); return "", nil }
	name, err := fr.LoadSystemFont("Go Sans")
	assert.NoError(t, err)
	assert.Equal(t, "go_sans", name)
}

func TestResolveTypeCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	tc, err := fr.ResolveTypeCase("", 11).TypeCase()
	require.NoError(t, err)
	assert.Equal(t, 11.0, tc.PtSize())
	//
	fr.find = func(string) (string, error) { return "", errors.New("not installed") }
	tc, err = fr.ResolveTypeCase("Clarendon", 11).TypeCase()
	assert.Equal(t, core.EMISSING, core.Code(err))
	require.NotNil(t, tc)
	assert.Equal(t, "Go Sans", tc.ScalableFontParent().Fontname)
}

func TestResolveTypeCaseCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textcaret.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	block := make(chan struct{})
	defer close(block)
	fr.find = func(string) (string, error) { <-block; return "", errors.New("not installed") }
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := fr.ResolveTypeCase("Clarendon", 11).Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
