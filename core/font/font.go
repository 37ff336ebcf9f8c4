/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Helvetica".
This corresponds to a TrueType "collection" (*.ttc).

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

* A "typecase" is a scaled font, i.e. a font in a certain size for
a certain script and language. The name is reminiscend on the wooden
boxes of typesetters in the aera of metal type.
An example is "Helvetica regular 11pt, Latin, en_US".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Type cases are prepared at 72 DPI, making one point equal to one pixel.
All metrics reported by this package are float pixels with y growing
upwards, i.e. descenders are negative.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"os"
	"path"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textcaret/core"
	"github.com/npillmayer/textcaret/core/dimen"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'textcaret.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("textcaret.fonts")
}

type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

type TypeCase struct {
	scalableFontParent *ScalableFont
	font               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
}

// Metrics are the vertical metrics of a type case in pixels.
type Metrics struct {
	Ascender  float32 // distance from baseline to top, positive
	Descender float32 // distance from baseline to bottom, negative
	Height    float32 // Ascender - Descender
}

func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse OpenType font")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase creates a type case for a font at a given size in points.
func (sf *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	typecase := &TypeCase{}
	typecase.scalableFontParent = sf
	if fontsize < 5.0 || fontsize > 500.0 {
		tracer().Errorf("font size must be 5pt < size < 500pt, is %g (set to 12pt)", fontsize)
		fontsize = 12.0
	}
	options := &opentype.FaceOptions{
		Size:    fontsize,
		DPI:     72,
		Hinting: xfont.HintingNone,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot create face for %s", sf.Fontname)
	}
	typecase.font = f
	typecase.size = fontsize
	return typecase, nil
}

func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// Face returns the x/image font face of a type case.
func (tc *TypeCase) Face() xfont.Face {
	return tc.font
}

// Metrics returns the vertical metrics of a type case.
func (tc *TypeCase) Metrics() Metrics {
	if tc.font == nil {
		return Metrics{}
	}
	m := tc.font.Metrics()
	asc, desc := dimen.Fixed(m.Ascent), dimen.Fixed(m.Descent)
	return Metrics{
		Ascender:  asc,
		Descender: -desc,
		Height:    asc + desc,
	}
}

// GlyphAdvance returns the advance and the left side bearing of the glyph
// for r in pixels. ok is false if the font does not contain a glyph for r.
func (tc *TypeCase) GlyphAdvance(r rune) (advance float32, xBearing float32, ok bool) {
	if tc.font == nil {
		return 0, 0, false
	}
	bounds, adv, ok := tc.font.GlyphBounds(r)
	if !ok {
		return 0, 0, false
	}
	return dimen.Fixed(adv), dimen.Fixed(bounds.Min.X), true
}

// UnitsPerEm returns the design units per em of the underlying font,
// or 0 if the type case has no font.
func (tc *TypeCase) UnitsPerEm() float32 {
	if tc.scalableFontParent == nil || tc.scalableFontParent.SFNT == nil {
		return 0
	}
	return float32(tc.scalableFontParent.SFNT.UnitsPerEm())
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
// Currently we use Go Sans.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}

// --- Names -----------------------------------------------------------------

// NormalizeFontname creates a registry key from a font name, a style and
// a weight.
func NormalizeFontname(fname string, style xfont.Style, weight xfont.Weight) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	switch style {
	case xfont.StyleItalic, xfont.StyleOblique:
		fname += "-italic"
	}
	switch weight {
	case xfont.WeightLight, xfont.WeightExtraLight:
		fname += "-light"
	case xfont.WeightBold, xfont.WeightExtraBold, xfont.WeightSemiBold:
		fname += "-bold"
	}
	return fname
}

// BaseFontname strips the directory, the extension and trailing style or
// weight words from a font name, e.g. "fonts/Clarendon-Bold.ttf" yields
// "Clarendon". Combined with GuessStyleAndWeight it avoids style and weight
// appearing twice in a normalized name.
func BaseFontname(fname string) string {
	fname = path.Base(strings.TrimSpace(fname))
	fname = strings.TrimSuffix(fname, path.Ext(fname))
	for {
		i := strings.LastIndexAny(fname, "-_ ")
		if i <= 0 {
			break
		}
		word := strings.ToLower(fname[i+1:])
		if !styleWords[word] && !(fname[i] == '-' && (word == "r" || word == "b")) {
			break
		}
		fname = strings.TrimRight(fname[:i], "-_ ")
	}
	return fname
}

var styleWords = map[string]bool{
	"light": true, "xlight": true, "normal": true, "medium": true, "regular": true,
	"bold": true, "xbold": true, "black": true, "italic": true, "oblique": true,
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") {
		style = xfont.StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}
