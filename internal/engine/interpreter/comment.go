package interpreter

import "strings"

// StripComment removes everything from the first unescaped '#'.
//
// A run of n backslashes directly before '#' is reduced to n/2 backslashes.
// If n is odd the '#' is kept as a literal character, otherwise it starts
// the comment. Backslashes elsewhere are left alone. Trailing blanks before a
// removed comment are dropped.
func StripComment(line string) string {
	if strings.IndexByte(line, '#') < 0 {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '#':
			return strings.TrimRight(b.String(), " \t")
		case '\\':
			j := i
			for j < len(line) && line[j] == '\\' {
				j++
			}
			n := j - i
			if j == len(line) || line[j] != '#' {
				b.WriteString(line[i:j])
				i = j - 1
				continue
			}
			b.WriteString(strings.Repeat(`\`, n/2))
			if n%2 == 0 {
				return strings.TrimRight(b.String(), " \t")
			}
			b.WriteByte('#')
			i = j
		default:
			b.WriteByte(line[i])
		}
	}
	return b.String()
}
