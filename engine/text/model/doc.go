/*
Package model holds the logical and the visual model of laid-out text.

The logical model stores characters in reading order, together with their
scripts, directions and the reordering of bidirectional lines. The visual
model stores lines, glyphs, glyph positions and the tables relating
characters and glyphs.

Both models are produced by a layout pass and are read-only afterwards.
Clients must not keep derived positions across layout passes.

Clusters

For a cluster of N characters shaped into M glyphs, the last character of
the cluster holds GlyphsPerCharacter = M (the others hold 0) and the first
glyph holds CharactersPerGlyph = N (the others hold 0). Every character of
the cluster maps to the cluster's first glyph, and every glyph of the
cluster maps back to the cluster's first character.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package model

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textcaret.layout'.
func tracer() tracing.Trace {
	return tracing.Select("textcaret.layout")
}
