package model

import "fmt"

// CharacterIndex is the position of a character in logical order.
type CharacterIndex int

// GlyphIndex is the position of a glyph in the glyph table.
type GlyphIndex int

// LineIndex is the position of a line, counting from the top.
type LineIndex int

// Length is a count of characters or glyphs.
type Length int

// FontID identifies a font of a layout. FontID 0 is reserved for embedded
// images.
type FontID int

// Direction is the direction of a character or a paragraph.
type Direction bool

// Characters and paragraphs are either left-to-right or right-to-left.
const (
	LeftToRight Direction = false
	RightToLeft Direction = true
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "RTL"
	}
	return "LTR"
}

// Position is a point in pixels, x growing to the right and y growing
// downwards.
type Position struct {
	X, Y float32
}

func (p Position) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

// Size is an extent in pixels.
type Size struct {
	Width, Height float32
}

// CharacterRun is a range of characters [CharacterIndex, CharacterIndex+NumberOfCharacters).
type CharacterRun struct {
	CharacterIndex     CharacterIndex
	NumberOfCharacters Length
}

// End is the index just past the run.
func (r CharacterRun) End() CharacterIndex {
	return r.CharacterIndex + CharacterIndex(r.NumberOfCharacters)
}

// Contains is true if index lies within the run.
func (r CharacterRun) Contains(index CharacterIndex) bool {
	return index >= r.CharacterIndex && index < r.End()
}

// GlyphRun is a range of glyphs [GlyphIndex, GlyphIndex+NumberOfGlyphs).
type GlyphRun struct {
	GlyphIndex     GlyphIndex
	NumberOfGlyphs Length
}

// End is the index just past the run.
func (r GlyphRun) End() GlyphIndex {
	return r.GlyphIndex + GlyphIndex(r.NumberOfGlyphs)
}
