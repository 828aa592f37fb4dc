// Package ident holds the identifier rules shared by the catalog loader, the
// identity verifier and the grievance validator.
package ident

import (
	"strings"
)

// CodeLength is the number of letters in a grievance identifier code.
const CodeLength = 6

// Normalize trims s, upper-cases it and drops every rune that is not an ASCII
// letter or digit. Registry keys are built with it at load time and submitted
// credentials go through it before lookup, so both sides always agree.
func Normalize(s string) string {
	return strip(strings.ToUpper(s))
}

// CleanCode drops spaces, punctuation and any other rune that is not an
// ASCII letter or digit from s. Unlike Normalize it keeps the case.
func CleanCode(s string) string {
	return strip(s)
}

// IsCode reports whether s, after CleanCode, is exactly CodeLength uppercase
// ASCII letters. "ABC-DEF" is a code; "abcdef" is not.
func IsCode(s string) bool {
	s = CleanCode(s)
	if len(s) != CodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
