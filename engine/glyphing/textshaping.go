package glyphing

import (
	"fmt"
	"io"

	"github.com/npillmayer/textcaret/core/font"
	"golang.org/x/text/language"
)

// Direction is the direction to typeset text in.
type Direction int

// Direction to typeset text in.
const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "RightToLeft"
	}
	return "LeftToRight"
}

// A ShapedGlyph is a positioned glyph as produced by a shaper. All dimensions
// are float pixels, y growing upwards.
type ShapedGlyph struct {
	ClusterID int     // position of first code-point for this glyph in the input, in runes
	XAdvance  float32 // advance after glyph has been set
	YAdvance  float32 //
	XOffset   float32 // position of anchor dot for glyph
	YOffset   float32 //
	XBearing  float32 // left side bearing
	YBearing  float32 // top of the glyph's bounding box
	Width     float32 // width of the glyph's bounding box
	Height    float32 // height of the glyph's bounding box
	GID       uint32  // glyph index within font
	CodePoint rune    // code-point of first rune to produce this glyph
}

func (g ShapedGlyph) String() string {
	return fmt.Sprintf("(GID=%d, cluster=%d, advance=%.2f)", g.GID, g.ClusterID, g.XAdvance)
}

// A Shaper creates a sequence of glyphs from a sequence of
// Unicode code-points. Glyphs are taken from a font, given in a specific point-size.
//
// Clients may provide additional information in Params, as well as
// textual context ([2][]rune).
//
// Glyphs are returned in visual order. Cluster IDs are rune positions
// relative to the start of the input.
//
type Shaper interface {
	Shape(io.RuneReader, []ShapedGlyph, [][]rune, Params) (GlyphSequence, error)
}

// Params collects shaping parameters.
type Params struct {
	Font      *font.TypeCase  // use a font at a given point-size
	Direction Direction       // writing direction
	Script    language.Script // 4-letter ISO 15924 script identifier
	Language  language.Tag    // BCP 47 language tag
}

// GlyphSequence contains a sequence of shaped glyphs.
type GlyphSequence struct {
	Glyphs  []ShapedGlyph // resulting sequence of glyphs
	W, H, D float32       // width, height (ascender), depth (positive descender) of bounding box
}

func (seq GlyphSequence) BoundingBox() (w float32, h float32, d float32) {
	return seq.W, seq.H, seq.D
}

// RuneReader wraps a slice of runes into an io.RuneReader.
type RuneReader struct {
	runes []rune
	pos   int
}

// NewRuneReader creates a rune reader for a slice of runes.
func NewRuneReader(runes []rune) *RuneReader {
	return &RuneReader{runes: runes}
}

func (rr *RuneReader) ReadRune() (rune, int, error) {
	if rr.pos >= len(rr.runes) {
		return 0, 0, io.EOF
	}
	r := rr.runes[rr.pos]
	rr.pos++
	return r, 1, nil
}
