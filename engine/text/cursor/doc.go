/*
Package cursor maps between pixel coordinates and character positions of
laid-out text.

Text may mix left-to-right and right-to-left runs. At a direction boundary
one logical position corresponds to two visual positions, so a cursor may
have a secondary position in addition to its primary one.

All functions are pure functions over a logical and a visual model (see
package model). They neither retain nor modify the models.

    idx, hit := cursor.ClosestCursorIndex(vm, lm, x, y, cursor.Tap)
    info := cursor.CursorPosition(vm, lm, idx)
    sel := cursor.FindSelectionIndices(vm, lm, x, y)

Coordinates are text-local pixels, with the origin at the top left corner
of the first line and y growing downwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cursor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textcaret.cursor'.
func tracer() tracing.Trace {
	return tracing.Select("textcaret.cursor")
}
