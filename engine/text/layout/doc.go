/*
Package layout lays out plain text into the models the cursor engine works
on.

A layout pass normalizes the text to NFC, splits it into paragraphs,
resolves bidi embedding levels and scripts, shapes runs of equal script
and direction, breaks paragraphs into lines and finally places the glyphs
of every line in visual order. The result is a pair of a
model.LogicalModel and a model.VisualModel, both validated.

All text is set in a single font, which is registered with font ID 1.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textcaret.layout'.
func tracer() tracing.Trace {
	return tracing.Select("textcaret.layout")
}
