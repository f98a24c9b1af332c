package interpreter

import "strings"

func trimLeft(s string) string {
	return strings.TrimLeft(s, " \t")
}

func isBlank(s string) bool {
	return strings.Trim(s, " \t") == ""
}

func isIndented(s string) bool {
	return s != "" && (s[0] == ' ' || s[0] == '\t')
}

// cutKeyword reports whether line starts with keyword as a whole word and
// returns the left-trimmed remainder.
func cutKeyword(line, keyword string) (string, bool) {
	rest, ok := strings.CutPrefix(line, keyword)
	if !ok {
		return "", false
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return trimLeft(rest), true
}
