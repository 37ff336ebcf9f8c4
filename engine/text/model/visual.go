package model

import (
	"fmt"

	"github.com/npillmayer/textcaret/core"
)

// LineRun is one laid-out line.
type LineRun struct {
	GlyphRun        GlyphRun
	CharacterRun    CharacterRun
	Width           float32   // width of the line, without trailing white space
	Ascender        float32   // positive
	Descender       float32   // negative
	LineSpacing     float32   // extra space below the line, may be negative
	AlignmentOffset float32   // horizontal offset of the line within the control
	Direction       Direction // direction of the line's paragraph
}

// Height returns the height the line occupies.
// A negative line spacing is ignored for the last line.
func (l LineRun) Height(isLastLine bool) float32 {
	h := l.Ascender - l.Descender
	if !isLastLine || l.LineSpacing > 0 {
		h += l.LineSpacing
	}
	return h
}

func (l LineRun) String() string {
	return fmt.Sprintf("line[%d+%d, glyphs %d+%d, %s, asc=%.2f desc=%.2f off=%.2f]",
		l.CharacterRun.CharacterIndex, l.CharacterRun.NumberOfCharacters,
		l.GlyphRun.GlyphIndex, l.GlyphRun.NumberOfGlyphs,
		l.Direction, l.Ascender, l.Descender, l.AlignmentOffset)
}

// GlyphInfo is one shaped glyph.
type GlyphInfo struct {
	FontID   FontID
	GID      uint32 // glyph index within the font
	Width    float32
	Height   float32
	XBearing float32
	YBearing float32
	Advance  float32
}

// FontMetrics are the vertical metrics of a font in pixels.
type FontMetrics struct {
	Ascender  float32 // positive
	Descender float32 // negative
	Height    float32
}

// Metrics looks up font metrics by font ID.
type Metrics interface {
	FontMetrics(FontID) (FontMetrics, bool)
}

// FontMetricsTable is a Metrics implementation backed by a map.
type FontMetricsTable map[FontID]FontMetrics

// FontMetrics returns the metrics for a font, if known.
func (t FontMetricsTable) FontMetrics(id FontID) (FontMetrics, bool) {
	m, ok := t[id]
	return m, ok
}

// GlyphMetrics are the aggregated metrics of a group of glyphs.
type GlyphMetrics struct {
	FontID     FontID
	FontHeight float32 // height of the font, or of an embedded image
	Ascender   float32 // ascender of the font, or height of an embedded image
	Width      float32 // sum of the glyph widths
	Advance    float32 // sum of the glyph advances
	XBearing   float32 // x bearing of the first glyph
}

// VisualModel holds the visual representation of laid-out text.
// All tables indexed by character are parallel to the logical model's text.
type VisualModel struct {
	Lines              []LineRun
	Glyphs             []GlyphInfo
	GlyphPositions     []Position       // pen position of each glyph plus its x bearing, line-local
	CharactersToGlyph  []GlyphIndex     // first glyph of the character's cluster
	GlyphsPerCharacter []Length         // glyphs of the cluster, held by its last character
	CharactersPerGlyph []Length         // characters of the cluster, held by its first glyph
	GlyphsToCharacters []CharacterIndex // first character of the glyph's cluster
	ControlSize        Size
	Metrics            Metrics // may be nil
}

// NumberOfGlyphs returns the number of glyphs of the model.
func (vm *VisualModel) NumberOfGlyphs() Length {
	return Length(len(vm.Glyphs))
}

// NumberOfLines returns the number of lines of the model.
func (vm *VisualModel) NumberOfLines() Length {
	return Length(len(vm.Lines))
}

// LineOfCharacter returns the index of the line containing a character.
// Characters past all lines are attributed to the last line.
func (vm *VisualModel) LineOfCharacter(index CharacterIndex) LineIndex {
	if len(vm.Lines) == 0 {
		return 0
	}
	for i, line := range vm.Lines {
		if line.CharacterRun.Contains(index) {
			return LineIndex(i)
		}
	}
	return LineIndex(len(vm.Lines) - 1)
}

// GlyphMetrics aggregates the metrics of numberOfGlyphs glyphs starting
// at glyph index first.
//
// For glyphs with a font ID the vertical metrics are taken from the model's
// Metrics; if these are missing or do not know the font, they are derived
// from the glyph itself. A glyph with font ID 0 and a glyph index != 0 is an
// embedded image: its height serves as font height and ascender.
func (vm *VisualModel) GlyphMetrics(first GlyphIndex, numberOfGlyphs Length) GlyphMetrics {
	var gm GlyphMetrics
	if int(first) >= len(vm.Glyphs) {
		return gm
	}
	g := vm.Glyphs[first]
	if g.FontID != 0 {
		fm, ok := FontMetrics{}, false
		if vm.Metrics != nil {
			fm, ok = vm.Metrics.FontMetrics(g.FontID)
		}
		if !ok {
			fm = FontMetrics{Ascender: g.YBearing, Height: g.Height}
		}
		gm.FontHeight = fm.Height
		gm.Ascender = fm.Ascender
	} else if g.GID != 0 {
		gm.FontHeight = g.Height
		gm.Ascender = g.Height
	} else {
		return gm
	}
	gm.FontID = g.FontID
	gm.Width = g.Width
	gm.Advance = g.Advance
	gm.XBearing = g.XBearing
	last := int(first) + int(numberOfGlyphs)
	if last > len(vm.Glyphs) {
		last = len(vm.Glyphs)
	}
	for i := int(first) + 1; i < last; i++ {
		gm.Width += vm.Glyphs[i].Width
		gm.Advance += vm.Glyphs[i].Advance
	}
	return gm
}

// Validate checks the consistency of a visual model against the number of
// characters of its text.
func (vm *VisualModel) Validate(numberOfCharacters Length) error {
	n := int(numberOfCharacters)
	if len(vm.CharactersToGlyph) != n || len(vm.GlyphsPerCharacter) != n {
		return core.Error(core.EINVALID, "character tables have %d/%d entries for %d characters",
			len(vm.CharactersToGlyph), len(vm.GlyphsPerCharacter), n)
	}
	g := len(vm.Glyphs)
	if len(vm.GlyphPositions) != g || len(vm.CharactersPerGlyph) != g || len(vm.GlyphsToCharacters) != g {
		return core.Error(core.EINVALID, "glyph tables are not parallel to %d glyphs", g)
	}
	var next CharacterIndex
	var glyphs Length
	for i, line := range vm.Lines {
		if line.CharacterRun.CharacterIndex != next {
			return core.Error(core.EINVALID, "line %d starts at character %d, expected %d",
				i, line.CharacterRun.CharacterIndex, next)
		}
		if int(line.CharacterRun.End()) > n {
			return core.Error(core.EINVALID, "line %d ends past character %d", i, n)
		}
		if line.Ascender-line.Descender < 0 {
			return core.Error(core.EINVALID, "line %d has negative height", i)
		}
		var sum Length
		for c := line.CharacterRun.CharacterIndex; c < line.CharacterRun.End(); c++ {
			sum += vm.GlyphsPerCharacter[c]
		}
		if sum != line.GlyphRun.NumberOfGlyphs {
			return core.Error(core.EINVALID, "line %d has %d glyphs, characters claim %d",
				i, line.GlyphRun.NumberOfGlyphs, sum)
		}
		next = line.CharacterRun.End()
		glyphs += line.GlyphRun.NumberOfGlyphs
	}
	if int(next) != n {
		return core.Error(core.EINVALID, "lines cover %d of %d characters", next, n)
	}
	if int(glyphs) != g {
		return core.Error(core.EINVALID, "lines cover %d of %d glyphs", glyphs, g)
	}
	for c, gi := range vm.CharactersToGlyph {
		if gi < 0 || int(gi) >= g {
			return core.Error(core.EINVALID, "character %d maps to glyph %d out of range", c, gi)
		}
	}
	for gi, c := range vm.GlyphsToCharacters {
		if c < 0 || int(c) >= n {
			return core.Error(core.EINVALID, "glyph %d maps to character %d out of range", gi, c)
		}
	}
	return nil
}
