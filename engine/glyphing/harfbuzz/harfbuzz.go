/*
Package harfbuzz uses HarfBuzz to convert text to sequences of glyphs.

Glyph positions are reported in pixels for the type case given in the
shaping parameters.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package harfbuzz

import (
	"bytes"
	"encoding/binary"
	"io"
	"sync"
	"unicode"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	hblang "github.com/benoitkugler/textlayout/language"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textcaret/core"
	"github.com/npillmayer/textcaret/core/font"
	"github.com/npillmayer/textcaret/engine/glyphing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
)

// tracer traces with key 'textcaret.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("textcaret.glyphs")
}

// --- Type conversion -------------------------------------------------------

// Lang4HB returns a language tag as a HarfBuzz language.
func Lang4HB(l language.Tag) hblang.Language {
	return hblang.NewLanguage(l.String())
}

// Script4HB returns a script as a HarfBuzz script.
func Script4HB(s language.Script) hblang.Script {
	b := []byte(s.String())
	b[0] = byte(unicode.ToLower(rune(b[0])))
	h := binary.BigEndian.Uint32(b)
	return hblang.Script(h)
}

// Direction4HB translates a direction to a HarfBuzz direction.
func Direction4HB(d glyphing.Direction) hb.Direction {
	if d == glyphing.RightToLeft {
		return hb.RightToLeft
	}
	return hb.LeftToRight
}

// --- Shape -----------------------------------------------------------------

type hbshaper struct {
	sync.Mutex
	fonts map[*font.ScalableFont]*hb.Font
}

// Shaper creates a HarfBuzz shaper. HarfBuzz fonts are created once per
// scalable font and cached.
func Shaper() glyphing.Shaper {
	return &hbshaper{
		fonts: make(map[*font.ScalableFont]*hb.Font),
	}
}

func (sh *hbshaper) hbFont(sf *font.ScalableFont) (*hb.Font, error) {
	sh.Lock()
	defer sh.Unlock()
	if f, ok := sh.fonts[sf]; ok {
		return f, nil
	}
	hbFace, err := hbtt.Parse(bytes.NewReader(sf.Binary), true)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "HarfBuzz cannot parse font %s", sf.Fontname)
	}
	f := hb.NewFont(hbFace)
	sh.fonts[sf] = f
	return f, nil
}

// Shape calls the HarfBuzz shaper.
//
// Shape shapes a sequence of code-points (runes), turning its Unicode characters to
// positioned glyphs. It will select a shape plan based on params, including the
// selected font, and the properties of the input text.
//
// params.Font must be set, otherwise no output is created.
//
// Clients may provide `buf` to avoid allocating memory by Shape. Shape will wrap it
// into the GlyphSequence returned.
//
func (sh *hbshaper) Shape(text io.RuneReader, buf []glyphing.ShapedGlyph, context [][]rune,
	params glyphing.Params) (glyphing.GlyphSequence, error) {
	//
	if text == nil || params.Font == nil {
		return glyphing.GlyphSequence{}, nil
	}
	sfont := params.Font.ScalableFontParent()
	hbFont, err := sh.hbFont(sfont)
	if err != nil {
		return glyphing.GlyphSequence{}, err
	}
	sh.Lock()
	defer sh.Unlock()
	hbFont.Ptem = float32(params.Font.PtSize())
	// Prepare HarfBuzz buffer
	hbBuf := hb.NewBuffer()
	convertParams(&hbBuf.Props, params)
	runes, offset, length := bufferText(text, context)
	hbBuf.AddRunes(runes, offset, length)
	hbBuf.Shape(hbFont, nil)
	// Prepare shaped output
	if cap(buf) < len(hbBuf.Info) {
		buf = make([]glyphing.ShapedGlyph, len(hbBuf.Info))
	}
	buf = buf[:len(hbBuf.Info)]
	m := params.Font.Metrics()
	seq := glyphing.GlyphSequence{
		Glyphs: buf,
		H:      m.Ascender,
		D:      -m.Descender,
	}
	// HarfBuzz works in font units, we report pixels
	upem := float32(sfont.SFNT.UnitsPerEm())
	scale := float32(params.Font.PtSize()) / upem
	var sfntBuf sfnt.Buffer
	for i, ginfo := range hbBuf.Info {
		gpos := &hbBuf.Pos[i]
		g := &buf[i]
		*g = glyphing.ShapedGlyph{}
		g.ClusterID = ginfo.Cluster - offset
		g.GID = uint32(ginfo.Glyph)
		g.XAdvance = float32(gpos.XAdvance) * scale
		g.YAdvance = float32(gpos.YAdvance) * scale
		g.XOffset = float32(gpos.XOffset) * scale
		g.YOffset = float32(gpos.YOffset) * scale
		g.CodePoint = runes[ginfo.Cluster]
		bounds, _, err := sfont.SFNT.GlyphBounds(&sfntBuf, sfnt.GlyphIndex(g.GID),
			fixed.Int26_6(sfont.SFNT.UnitsPerEm()), xfont.HintingNone)
		if err == nil { // bounds are in font units, y pointing down
			g.XBearing = float32(bounds.Min.X) * scale
			g.YBearing = float32(-bounds.Min.Y) * scale
			g.Width = float32(bounds.Max.X-bounds.Min.X) * scale
			g.Height = float32(bounds.Max.Y-bounds.Min.Y) * scale
		}
		seq.W += g.XAdvance
		tracer().Debugf("[%3d] %s", i, g)
	}
	return seq, nil
}

// convertParams is a helper function to convert glyphing parameters to
// HarfBuzz's format.
func convertParams(props *hb.SegmentProperties, params glyphing.Params) {
	if params.Language != language.Und {
		props.Language = Lang4HB(params.Language)
	}
	var none language.Script
	if params.Script != none {
		props.Script = Script4HB(params.Script)
	}
	props.Direction = Direction4HB(params.Direction)
}

// bufferText buffers the input text of a call to Shape(…) as a slice of runes.
// To conform to HarfBuzz's API, context is pre-/appended to the input runes.
//
// bufferText returns the start position of the input within the returned buffer,
// together with the input's length (= rune count).
func bufferText(text io.RuneReader, context [][]rune) (runes []rune, off int, length int) {
	if len(context) > 0 {
		runes = append(runes, context[0]...)
		off = len(context[0])
	}
	for {
		r, sz, err := text.ReadRune()
		if sz == 0 || err != nil {
			break
		}
		length++
		runes = append(runes, r)
	}
	if len(context) > 1 {
		runes = append(runes, context[1]...)
	}
	return runes, off, length
}
