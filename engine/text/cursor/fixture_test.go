package cursor

import (
	"unicode"

	"github.com/npillmayer/textcaret/engine/text/model"
	"golang.org/x/text/language"
)

// Fixtures lay out text in cells of 8 x 16 pixels: ascender 12, descender -4.
const cell = 8

var cellMetrics = model.FontMetricsTable{
	1: {Ascender: 12, Descender: -4, Height: 16},
}

func scriptOf(r rune) language.Script {
	switch {
	case unicode.Is(unicode.Hebrew, r):
		return language.MustParseScript("Hebr")
	case unicode.Is(unicode.Arabic, r):
		return language.MustParseScript("Arab")
	case unicode.Is(unicode.Latin, r):
		return language.MustParseScript("Latn")
	}
	return language.MustParseScript("Zyyy")
}

// cells lays out text with one line per paragraph, one glyph per character.
// Paragraph separators take no space. If dirs is not empty, it holds the
// direction of every character ('L' or 'R'). visual optionally holds the
// visual order of a line (relative to the line's start); lines with a
// visual order become bidirectional lines.
func cells(text string, paragraph model.Direction, dirs string, visual ...[]model.CharacterIndex) (*model.VisualModel, *model.LogicalModel) {
	runes := []rune(text)
	n := len(runes)
	vm := &model.VisualModel{
		Glyphs:             make([]model.GlyphInfo, n),
		GlyphPositions:     make([]model.Position, n),
		CharactersToGlyph:  make([]model.GlyphIndex, n),
		GlyphsPerCharacter: make([]model.Length, n),
		CharactersPerGlyph: make([]model.Length, n),
		GlyphsToCharacters: make([]model.CharacterIndex, n),
		Metrics:            cellMetrics,
	}
	lm := &model.LogicalModel{Text: runes}
	if dirs != "" {
		lm.CharacterDirections = make([]model.Direction, n)
		for i, d := range dirs {
			lm.CharacterDirections[i] = model.Direction(d == 'R')
		}
	}
	for i, r := range runes {
		var adv float32 = cell
		if model.IsNewParagraph(r) {
			adv = 0
		}
		vm.Glyphs[i] = model.GlyphInfo{FontID: 1, GID: uint32(r), Width: adv, Height: 16, YBearing: 12, Advance: adv}
		vm.CharactersToGlyph[i] = model.GlyphIndex(i)
		vm.GlyphsPerCharacter[i] = 1
		vm.CharactersPerGlyph[i] = 1
		vm.GlyphsToCharacters[i] = model.CharacterIndex(i)
		lm.Scripts = append(lm.Scripts, model.ScriptRun{
			CharacterRun: model.CharacterRun{CharacterIndex: model.CharacterIndex(i), NumberOfCharacters: 1},
			Script:       scriptOf(r),
		})
	}
	start := 0
	addLine := func(end int) {
		l := len(vm.Lines)
		order := make([]model.CharacterIndex, end-start)
		for i := range order {
			order[i] = model.CharacterIndex(i)
		}
		if l < len(visual) && visual[l] != nil {
			order = visual[l]
			inverse := make([]model.CharacterIndex, len(order))
			for v, lg := range order {
				inverse[lg] = model.CharacterIndex(v)
			}
			lm.BidiLines = append(lm.BidiLines, model.BidiLineRun{
				CharacterRun:    model.CharacterRun{CharacterIndex: model.CharacterIndex(start), NumberOfCharacters: model.Length(end - start)},
				VisualToLogical: order,
				LogicalToVisual: inverse,
				Direction:       paragraph,
			})
		}
		var penX float32
		for _, lg := range order {
			i := start + int(lg)
			vm.GlyphPositions[i] = model.Position{X: penX}
			penX += vm.Glyphs[i].Advance
		}
		vm.Lines = append(vm.Lines, model.LineRun{
			GlyphRun:     model.GlyphRun{GlyphIndex: model.GlyphIndex(start), NumberOfGlyphs: model.Length(end - start)},
			CharacterRun: model.CharacterRun{CharacterIndex: model.CharacterIndex(start), NumberOfCharacters: model.Length(end - start)},
			Width:        penX,
			Ascender:     12,
			Descender:    -4,
			Direction:    paragraph,
		})
		if penX > vm.ControlSize.Width {
			vm.ControlSize.Width = penX
		}
		vm.ControlSize.Height += 16
		start = end
	}
	for i, r := range runes {
		if model.IsNewParagraph(r) {
			addLine(i + 1)
		}
	}
	if start < n || n == 0 || model.IsNewParagraph(runes[n-1]) {
		addLine(n)
	}
	return vm, lm
}

// ligature lays out "fix" with an "fi" ligature of 16 pixels.
func ligature() (*model.VisualModel, *model.LogicalModel) {
	vm := &model.VisualModel{
		Lines: []model.LineRun{{
			GlyphRun:     model.GlyphRun{GlyphIndex: 0, NumberOfGlyphs: 2},
			CharacterRun: model.CharacterRun{CharacterIndex: 0, NumberOfCharacters: 3},
			Width:        24, Ascender: 12, Descender: -4,
		}},
		Glyphs: []model.GlyphInfo{
			{FontID: 1, GID: 100, Width: 16, Height: 16, YBearing: 12, Advance: 16},
			{FontID: 1, GID: 'x', Width: 8, Height: 16, YBearing: 12, Advance: 8},
		},
		GlyphPositions:     []model.Position{{X: 0}, {X: 16}},
		CharactersToGlyph:  []model.GlyphIndex{0, 0, 1},
		GlyphsPerCharacter: []model.Length{0, 1, 1},
		CharactersPerGlyph: []model.Length{2, 1},
		GlyphsToCharacters: []model.CharacterIndex{0, 2},
		ControlSize:        model.Size{Width: 24, Height: 16},
		Metrics:            cellMetrics,
	}
	lm := &model.LogicalModel{
		Text: []rune("fix"),
		Scripts: []model.ScriptRun{{
			CharacterRun: model.CharacterRun{CharacterIndex: 0, NumberOfCharacters: 3},
			Script:       language.MustParseScript("Latn"),
		}},
	}
	return vm, lm
}

// wrapped lays out "ab cd" in two lines, wrapped after the space.
func wrapped() (*model.VisualModel, *model.LogicalModel) {
	vm, lm := cells("ab cd", model.LeftToRight, "")
	line := vm.Lines[0]
	vm.Lines = []model.LineRun{line, line}
	vm.Lines[0].GlyphRun.NumberOfGlyphs = 3
	vm.Lines[0].CharacterRun.NumberOfCharacters = 3
	vm.Lines[0].Width = 2 * cell
	vm.Lines[1].GlyphRun = model.GlyphRun{GlyphIndex: 3, NumberOfGlyphs: 2}
	vm.Lines[1].CharacterRun = model.CharacterRun{CharacterIndex: 3, NumberOfCharacters: 2}
	vm.Lines[1].Width = 2 * cell
	vm.GlyphPositions[3].X, vm.GlyphPositions[4].X = 0, cell
	vm.ControlSize = model.Size{Width: 3 * cell, Height: 32}
	return vm, lm
}

// Bidirectional single-line fixtures. Letters a, b, c are left-to-right,
// Hebrew letters right-to-left.

// mixedLTR is "abאבג" in a left-to-right paragraph, visual order a b ג ב א.
func mixedLTR() (*model.VisualModel, *model.LogicalModel) {
	return cells("abאבג", model.LeftToRight, "LLRRR", []model.CharacterIndex{0, 1, 4, 3, 2})
}

// mixedRTL is "אבab" in a right-to-left paragraph, visual order a b ב א.
func mixedRTL() (*model.VisualModel, *model.LogicalModel) {
	return cells("אבab", model.RightToLeft, "RRLL", []model.CharacterIndex{2, 3, 1, 0})
}

// latinFirstRTL is "abא" in a right-to-left paragraph, visual order א a b.
func latinFirstRTL() (*model.VisualModel, *model.LogicalModel) {
	return cells("abא", model.RightToLeft, "LLR", []model.CharacterIndex{2, 0, 1})
}

// hebrewFirstLTR is "אבc" in a left-to-right paragraph, visual order ב א c.
func hebrewFirstLTR() (*model.VisualModel, *model.LogicalModel) {
	return cells("אבc", model.LeftToRight, "RRL", []model.CharacterIndex{1, 0, 2})
}

// hebrewOnly is "אב" in a right-to-left paragraph, visual order ב א.
func hebrewOnly() (*model.VisualModel, *model.LogicalModel) {
	return cells("אב", model.RightToLeft, "RR", []model.CharacterIndex{1, 0})
}
