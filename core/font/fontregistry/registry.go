package fontregistry

import (
	"fmt"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textcaret/core"
	"github.com/npillmayer/textcaret/core/font"
	xfont "golang.org/x/image/font"
)

// Registry is a type for holding information about loaded fonts for a
// text layout.
type Registry struct {
	sync.Mutex
	fonts     map[string]*font.ScalableFont
	typecases map[string]*font.TypeCase
	find      func(string) (string, error) // locates system fonts
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts and typecases.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string]*font.ScalableFont),
		typecases: make(map[string]*font.TypeCase),
		find:      findfont.Find,
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(normalizedName string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, normalizedName)
		fr.fonts[normalizedName] = f
	}
}

// LoadSystemFont locates a font by name among the fonts installed on the
// system and stores it in the registry. It returns the normalized name the
// font is registered with.
func (fr *Registry) LoadSystemFont(name string) (string, error) {
	normalized := SystemFontKey(name)
	fr.Lock()
	_, known := fr.fonts[normalized]
	fr.Unlock()
	if known {
		return normalized, nil
	}
	fpath, err := fr.find(name)
	if err != nil || fpath == "" {
		tracer().Infof("system font %s not found", name)
		return normalized, core.Missing("font", name)
	}
	tracer().Debugf("%s is a system font at %s", name, fpath)
	f, err := font.LoadOpenTypeFont(fpath)
	if err != nil {
		return normalized, err
	}
	fr.StoreFont(normalized, f)
	return normalized, nil
}

// TypeCase returns a concrete typecase with a given font and size.
// If a suitable typecase has already been cached, TypeCase will return the cached
// typecase. If a suitable font has previously been stored under key
// `normalizedName`, a typecase will be derived from this font.
//
// If no typecase can be produced, TypeCase will derive one from a system-wide
// fallback font and return it, together with an error message.
// An empty name selects the fallback font without error.
//
func (fr *Registry) TypeCase(normalizedName string, size float32) (*font.TypeCase, error) {
	//
	tracer().Debugf("registry searches for font %s at %.2f", normalizedName, size)
	tname := appendSize(normalizedName, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		tracer().Debugf("registry found font %s", tname)
		return t, nil
	}
	if f, ok := fr.fonts[normalizedName]; ok {
		t, err := f.PrepareCase(float64(size))
		if err != nil {
			return nil, err
		}
		tracer().Infof("font registry has font %s, caches at %.2f", normalizedName, size)
		fr.typecases[tname] = t
		return t, nil
	}
	var err error
	if normalizedName != "" {
		tracer().Infof("registry does not contain font %s", normalizedName)
		err = core.Missing("font", normalizedName)
	}
	//
	// store typecase from fallback font, if not present yet, and return it
	fname := "fallback"
	tname = appendSize(fname, size)
	if t, ok := fr.typecases[tname]; ok {
		return t, err
	}
	f := font.FallbackFont()
	t, e := f.PrepareCase(float64(size))
	if e != nil {
		return nil, e
	}
	tracer().Infof("font registry caches fallback font %s at %.2f", fname, size)
	fr.fonts[fname] = f
	fr.typecases[tname] = t
	return t, err
}

// LogFontList is a helper function to dump the list of known fonts and typecases
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for k, v := range fr.fonts {
		tracer().Infof("font [%s] = %v", k, v.Fontname)
	}
	for k, v := range fr.typecases {
		tracer().Infof("typecase [%s] = %v", k, v.ScalableFontParent().Fontname)
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

func appendSize(fname string, size float32) string {
	fname = fmt.Sprintf("%s-%.2f", fname, size)
	return fname
}

// SystemFontKey returns the key a system font is registered with, with
// style and weight guessed from the name.
func SystemFontKey(name string) string {
	style, weight := font.GuessStyleAndWeight(name)
	return font.NormalizeFontname(font.BaseFontname(name), style, weight)
}

// Normalize is a shortcut for normalizing a font name without explicit
// style and weight.
func Normalize(name string) string {
	return font.NormalizeFontname(name, xfont.StyleNormal, xfont.WeightNormal)
}
