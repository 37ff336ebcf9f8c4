/*
Package glyphing defines the interface between text and shapers.

A shaper turns a run of code-points, all of one script and direction, into
positioned glyphs of a type case. Implementations live in sub-packages:
a monospace shaper for cell-based output and a HarfBuzz shaper for
OpenType fonts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphing
