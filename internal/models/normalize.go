package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the comparison key for free text: NFC normalised, trimmed,
// internal whitespace collapsed to single spaces and case folded.
func Normalize(s string) string {
	return cases.Fold().String(collapse(norm.NFC.String(s)))
}

// collapse trims s and replaces every run of whitespace with one space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
