// Package interpreter parses kmak scripts and runs their tasks.
package interpreter

import (
	"iter"
	"strings"
)

// Line is a non-empty physical line of a script.
type Line struct {
	// Number is the 1-based line number in the source text.
	Number int
	Text   string
}

// Lines yields the non-empty lines of text in order. Lines are separated by
// LF, CR or CRLF; a CRLF pair counts as a single line break.
func Lines(text string) iter.Seq[Line] {
	text = strings.TrimPrefix(text, "\ufeff")

	return func(yield func(Line) bool) {
		number := 1
		start := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c != '\n' && c != '\r' {
				continue
			}
			if i > start && !yield(Line{Number: number, Text: text[start:i]}) {
				return
			}
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			number++
			start = i + 1
		}
		if start < len(text) {
			yield(Line{Number: number, Text: text[start:]})
		}
	}
}
