package imapwire

import (
	"strconv"
	"strings"
)

func toUpper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// HasPrefixFold reports whether line starts with prefix, ignoring ASCII case.
func HasPrefixFold(line, prefix string) bool {
	if len(line) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if toUpper(line[i]) != toUpper(prefix[i]) {
			return false
		}
	}
	return true
}

// Between returns the text between the first occurrence of open and the
// first occurrence of close after it. The empty string is returned if either
// delimiter is missing.
func Between(line string, open, close byte) string {
	start := strings.IndexByte(line, open)
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(line[start+1:], close)
	if end < 0 {
		return ""
	}
	return line[start+1 : start+1+end]
}

// List returns the parenthesised list starting at the first '(' in line,
// including the matching ')'. Nesting is counted; if the list is never
// closed, the text from '(' to the end of line is returned.
func List(line string) string {
	start := strings.IndexByte(line, listStart)
	if start < 0 {
		return ""
	}
	depth := 0
	for i := start; i < len(line); i++ {
		switch line[i] {
		case listStart:
			depth++
		case listEnd:
			depth--
		}
		if depth == 0 {
			return line[start : i+1]
		}
	}
	return line[start:]
}

// UntaggedNumber returns the number of an untagged "* <number> <name>" line.
func UntaggedNumber(line string) string {
	if !strings.HasPrefix(line, Untagged) {
		return ""
	}
	rest := strings.TrimLeft(line[len(Untagged):], " ")
	if i := strings.IndexByte(rest, sp); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// Tag returns the first space-delimited token of line.
func Tag(line string) string {
	if i := strings.IndexByte(line, sp); i >= 0 {
		return line[:i]
	}
	return line
}

// CommandName returns the upper-cased command name of a command line. The
// "UID" prefix of UID FETCH, UID STORE and friends is skipped.
func CommandName(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ""
	}
	name := strings.ToUpper(fields[1])
	if name == "UID" && len(fields) > 2 {
		name = strings.ToUpper(fields[2])
	}
	return name
}

// IsUID reports whether a command line uses the "UID" prefix.
func IsUID(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 2 && strings.EqualFold(fields[1], "UID")
}

// IsUntagged reports whether line is an untagged response.
func IsUntagged(line string) bool {
	return strings.HasPrefix(line, Untagged+" ")
}

// UntaggedName returns the upper-cased name that follows the number of a
// "* <number> <name> ..." line, or the empty string if line doesn't have
// this shape.
func UntaggedName(line string) string {
	if !IsUntagged(line) {
		return ""
	}
	fields := strings.Fields(line)
	if len(fields) < 3 || !isDigits(fields[1]) {
		return ""
	}
	return strings.ToUpper(fields[2])
}

// Digits returns the leading run of decimal digits of s.
func Digits(s string) string {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i]
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isDigits(s string) bool {
	return s != "" && len(Digits(s)) == len(s)
}

// ScanList returns the length of the balanced list at the start of s. Unlike
// List, parentheses inside quoted strings are ignored. It returns false if s
// doesn't start with '(' or the list isn't closed.
func ScanList(s string) (int, bool) {
	if !strings.HasPrefix(s, string(listStart)) {
		return 0, false
	}
	depth := 0
	quoted := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quoted {
			switch c {
			case '\\':
				i++
			case dquote:
				quoted = false
			}
			continue
		}
		switch c {
		case dquote:
			quoted = true
		case listStart:
			depth++
		case listEnd:
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// Quoted reads the quoted string at the start of s. It returns the unescaped
// value and the number of bytes consumed, including both quotes. ok is false
// if s doesn't start with a quote or the string isn't terminated, in which
// case value holds what was read so far.
func Quoted(s string) (value string, n int, ok bool) {
	if len(s) == 0 || s[0] != dquote {
		return "", 0, false
	}
	var sb strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) {
				i++
				sb.WriteByte(s[i])
			}
		case dquote:
			return sb.String(), i + 1, true
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String(), len(s), false
}

// Quote returns s as a quoted string.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte(dquote)
	for i := 0; i < len(s); i++ {
		if s[i] == dquote || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte(dquote)
	return sb.String()
}

// LiteralSize parses the "{N}" literal marker at the end of line. The
// non-synchronizing "{N+}" and binary "~{N}" forms are accepted. It returns
// the literal size and the offset of the marker in line, or ok = false if
// line doesn't end with a marker.
func LiteralSize(line string) (size, offset int, ok bool) {
	if !strings.HasSuffix(line, string(literalEnd)) {
		return 0, 0, false
	}
	start := strings.LastIndexByte(line, literalStart)
	if start < 0 {
		return 0, 0, false
	}
	digits := strings.TrimSuffix(line[start+1:len(line)-1], "+")
	if !isDigits(digits) {
		return 0, 0, false
	}
	size, err := strconv.Atoi(digits)
	if err != nil {
		return 0, 0, false
	}
	if start > 0 && line[start-1] == '~' {
		start--
	}
	return size, start, true
}
