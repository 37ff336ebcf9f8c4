package model

import (
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// IsNewParagraph is true for paragraph separators, i.e. characters of
// bidi class B (LF, CR, NEL, PS, …).
func IsNewParagraph(r rune) bool {
	props, _ := bidi.LookupRune(r)
	return props.Class() == bidi.B
}

// IsWhiteSpace is true for characters with Unicode property White_Space.
// Paragraph separators are white space as well.
func IsWhiteSpace(r rune) bool {
	return unicode.IsSpace(r)
}

var (
	scriptLatin  = language.MustParseScript("Latn")
	scriptArabic = language.MustParseScript("Arab")
)

// HasLigatureMustBreak is true for scripts where the cursor may be placed
// inside a ligature, e.g. between 'f' and 'i' of the Latin "fi" ligature.
func HasLigatureMustBreak(script language.Script) bool {
	return script == scriptLatin || script == scriptArabic
}
