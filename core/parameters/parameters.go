/*
Package parameters holds layout parameters in registers.

Registers may be grouped: values pushed after Begingroup are visible
until the matching Endgroup, after which the outer values are in effect
again. This is the TeX way of scoping typesetting parameters, and the
layout builder as well as the command line interface read their
configuration from it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"strings"

	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/textcaret/core"
	"github.com/npillmayer/textcaret/core/dimen"
)

type TypesettingParameter int

//go:generate stringer -type=TypesettingParameter
const (
	none TypesettingParameter = iota
	P_LANGUAGE
	P_SCRIPT
	P_TEXTDIRECTION
	P_FONT
	P_FONTSIZE
	P_LINESPACING
	P_WRAPWIDTH
	P_CONTROLWIDTH
	P_ALIGNMENT
	P_STOPPER
)

// Alignment is the horizontal alignment of lines.
type Alignment int

// Begin and End are relative to the paragraph direction: Begin is the
// left edge for left-to-right paragraphs and the right edge for
// right-to-left paragraphs.
const (
	AlignBegin Alignment = iota
	AlignCenter
	AlignEnd
)

// ParseAlignment reads an alignment from its name.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "begin", "start", "":
		return AlignBegin, nil
	case "center", "centre":
		return AlignCenter, nil
	case "end":
		return AlignEnd, nil
	}
	return AlignBegin, core.Invalid("unknown alignment %q", s)
}

// ParseDirection reads a paragraph direction from its name.
// "auto" yields bidi.Neutral, i.e. detection from the first strong character.
func ParseDirection(s string) (bidi.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr":
		return bidi.LeftToRight, nil
	case "rtl":
		return bidi.RightToLeft, nil
	case "auto", "":
		return bidi.Neutral, nil
	}
	return bidi.Neutral, core.Invalid("unknown text direction %q", s)
}

type ParameterGroup struct {
	params map[TypesettingParameter]interface{}
	level  int
	next   *ParameterGroup
}

type TypesettingRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

func NewTypesettingRegisters() *TypesettingRegisters {
	regs := &TypesettingRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_LANGUAGE] = "en_EN"           // a string
	p[P_SCRIPT] = "Latin"             // a string
	p[P_TEXTDIRECTION] = bidi.Neutral // auto-detect
	p[P_FONT] = ""                    // font name, empty for the fallback font
	p[P_FONTSIZE] = 12 * dimen.BP     // dimension
	p[P_LINESPACING] = dimen.Zero     // dimension, may be negative
	p[P_WRAPWIDTH] = dimen.Zero       // dimension, 0 = do not wrap lines
	p[P_CONTROLWIDTH] = dimen.Zero    // dimension, 0 = width of widest line
	p[P_ALIGNMENT] = AlignBegin       // an Alignment
}

func (regs *TypesettingRegisters) Begingroup() {
	regs.grouplevel++
}

func (regs *TypesettingRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

func (regs *TypesettingRegisters) Push(key TypesettingParameter, value interface{}) {
	if key <= 0 || key >= P_STOPPER {
		panic("parameter key outside range of typesetting parameters")
	}
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[TypesettingParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

func (regs *TypesettingRegisters) Get(key TypesettingParameter) interface{} {
	if key <= 0 || key >= P_STOPPER {
		panic("parameter key outside range of typesetting parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

func (regs *TypesettingRegisters) S(key TypesettingParameter) string {
	return regs.Get(key).(string)
}

func (regs *TypesettingRegisters) N(key TypesettingParameter) int {
	return regs.Get(key).(int)
}

func (regs *TypesettingRegisters) D(key TypesettingParameter) dimen.Dimen {
	return regs.Get(key).(dimen.Dimen)
}

// Px returns a dimension parameter in float pixels.
func (regs *TypesettingRegisters) Px(key TypesettingParameter) float32 {
	return regs.D(key).Pixels()
}

func (regs *TypesettingRegisters) Direction() bidi.Direction {
	return regs.Get(P_TEXTDIRECTION).(bidi.Direction)
}

func (regs *TypesettingRegisters) Alignment() Alignment {
	return regs.Get(P_ALIGNMENT).(Alignment)
}

// PushDimen parses a dimension given in CSS units and pushes it.
// Percentages are rejected.
func (regs *TypesettingRegisters) PushDimen(key TypesettingParameter, s string) error {
	d, ispcnt, err := dimen.ParseDimen(s)
	if err != nil {
		return err
	}
	if ispcnt {
		return core.Invalid("percentage not allowed for parameter %d", key)
	}
	regs.Push(key, d)
	return nil
}
