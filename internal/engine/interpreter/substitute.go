package interpreter

import (
	"strings"

	"go.trai.ch/kmak/internal/core/domain"
)

// LookupFunc resolves a variable name to its value.
type LookupFunc func(name string) (string, bool)

// Substitute replaces every $(name) reference in line with its value.
//
// Expansion is a single left-to-right pass: inserted values are never
// scanned again. On error no partial output is returned.
func Substitute(line string, lookup LookupFunc) (string, error) {
	start := strings.Index(line, "$(")
	if start < 0 {
		return line, nil
	}

	var b strings.Builder
	b.Grow(len(line))

	rest := line
	column := 0
	for start >= 0 {
		b.WriteString(rest[:start])
		column += start

		body := rest[start+2:]
		end := strings.IndexByte(body, ')')
		if end < 0 {
			return "", domain.Tag(domain.ErrUnterminatedReference, "column", column+1)
		}

		name := body[:end]
		if len(name) > domain.MaxVariableNameLen {
			return "", domain.Tag(domain.ErrVariableNameTooLong, "column", column+1, "limit", domain.MaxVariableNameLen)
		}

		value, ok := lookup(name)
		if !ok {
			return "", domain.Tag(domain.ErrUndefinedVariable, "variable", name)
		}
		b.WriteString(value)

		consumed := start + 2 + end + 1
		column += consumed - start
		rest = rest[consumed:]
		start = strings.Index(rest, "$(")
	}
	b.WriteString(rest)

	return b.String(), nil
}
