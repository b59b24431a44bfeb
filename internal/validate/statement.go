package validate

import "strings"

// hasTrailingStatement reports whether query holds more than one statement.
// Whitespace, extra semicolons and comments after the first statement do not
// count. Semicolons inside string literals, quoted identifiers and comments
// are skipped.
func hasTrailingStatement(query string) bool {
	end := firstStatementEnd(query)
	if end < 0 {
		return false
	}
	return !onlyTrivia(query[end+1:])
}

// firstStatementEnd returns the offset of the first top-level ';', or -1.
func firstStatementEnd(s string) int {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\'' || c == '"' || c == '`':
			i = skipPast(s, i+1, string(c))
		case c == '[':
			i = skipPast(s, i+1, "]")
		case strings.HasPrefix(s[i:], "--"):
			i = skipPast(s, i+2, "\n")
		case strings.HasPrefix(s[i:], "/*"):
			i = skipPast(s, i+2, "*/")
		case c == ';':
			return i
		}
	}
	return -1
}

// skipPast returns the offset of the last byte of the first closer found at or
// after from, or the end of s when it is unterminated. A doubled quote ends
// one literal and starts the next, which the caller handles as a new literal.
func skipPast(s string, from int, closer string) int {
	if from >= len(s) {
		return len(s)
	}
	j := strings.Index(s[from:], closer)
	if j < 0 {
		return len(s)
	}
	return from + j + len(closer) - 1
}

func onlyTrivia(s string) bool {
	for {
		s = strings.TrimLeft(s, " \t\r\n\f\v;")
		switch {
		case s == "":
			return true
		case strings.HasPrefix(s, "--"):
			j := strings.IndexByte(s, '\n')
			if j < 0 {
				return true
			}
			s = s[j+1:]
		case strings.HasPrefix(s, "/*"):
			j := strings.Index(s[2:], "*/")
			if j < 0 {
				return true
			}
			s = s[2+j+2:]
		default:
			return false
		}
	}
}
