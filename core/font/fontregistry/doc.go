/*
Package fontregistry manages a registry for loaded fonts.

Fonts are stored under a normalized name and turned into type cases on
demand. Fonts may be located among the fonts installed on the system.
If a font cannot be found, the registry hands out a type case of the
fallback font, together with an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'textcaret.fonts'
func tracer() tracing.Trace {
	return tracing.Select("textcaret.fonts")
}
