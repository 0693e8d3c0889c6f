package services

import (
	"strings"
	"time"
	"unicode"
)

// TitleCase lowercases the whole string and then upper-cases the first letter
// of each whitespace-separated token: "MANCHESTER UNITED" -> "Manchester United".
//
// Deliberately naive: apostrophes and acronyms are not special-cased, so
// "o'neill fc" becomes "O'neill Fc". Imported names are editable in the
// preview step, which is where oddities like that get corrected.
func TitleCase(s string) string {
	lowered := strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(lowered))

	startOfToken := true
	for _, r := range lowered {
		if unicode.IsSpace(r) {
			startOfToken = true
			b.WriteRune(r)
			continue
		}
		if startOfToken {
			b.WriteRune(unicode.ToUpper(r))
			startOfToken = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatRole turns a role enum value into its display form:
// "assistant_manager" -> "Assistant Manager".
func FormatRole(role string) string {
	return TitleCase(strings.ReplaceAll(role, "_", " "))
}

// FormatKickOff renders a fixture's match date for lists and emails,
// e.g. "Sunday, 2 Mar 2025 at 14:00".
func FormatKickOff(t time.Time) string {
	return t.Format("Monday, 2 Jan 2006 at 15:04")
}
