package interpreter

import (
	"strings"

	"go.trai.ch/kmak/internal/core/domain"
)

// parseDefinition splits a "name = value" line on its first '='.
//
// It reports ok=false when the line has no '='. Any non-empty left side is a
// name, spaces included. A line whose left side is empty is malformed and
// returns ErrMissingVariableName.
func parseDefinition(line string) (domain.Variable, bool, error) {
	name, value, found := strings.Cut(line, "=")
	if !found {
		return domain.Variable{}, false, nil
	}

	name = strings.Trim(name, " \t")
	if name == "" {
		return domain.Variable{}, false, domain.ErrMissingVariableName
	}

	return domain.Variable{Name: name, Value: trimLeft(value)}, true, nil
}

// ParseOverride parses a NAME=VALUE pair given on the command line.
func ParseOverride(s string) (domain.Variable, error) {
	v, ok, err := parseDefinition(s)
	if err != nil || !ok {
		return domain.Variable{}, domain.Tag(domain.ErrInvalidDefine, "define", s)
	}
	return v, nil
}
