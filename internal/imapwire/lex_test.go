package imapwire

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPrefixFold(t *testing.T) {
	tests := []struct {
		line, prefix string
		want         bool
	}{
		{"A001 OK done", "a001 ok", true},
		{"* bye server", "* BYE", true},
		{"* BY", "* BYE", false},
		{"", "", true},
		{"abc", "", true},
		{"A001 NO", "A001 OK", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, HasPrefixFold(tc.line, tc.prefix), "HasPrefixFold(%q, %q)", tc.line, tc.prefix)
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		line        string
		open, close byte
		want        string
	}{
		{`* LIST () "/" INBOX`, '"', '"', "/"},
		{"A1 OK [READ-WRITE] done", '[', ']', "READ-WRITE"},
		{"* OK [UIDNEXT 4392] next", ' ', ']', "OK [UIDNEXT 4392"},
		{"no delimiters", '[', ']', ""},
		{"open only [", '[', ']', ""},
		{"] close first [x]", '[', ']', "x"},
		{"{14}", '{', '}', "14"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Between(tc.line, tc.open, tc.close), "Between(%q)", tc.line)
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		line, want string
	}{
		{`* LIST (\HasNoChildren) "/" INBOX`, `(\HasNoChildren)`},
		{"FLAGS (\\Seen (nested) x) UID 4", "(\\Seen (nested) x)"},
		{"(unterminated (list)", "(unterminated (list)"},
		{"no list", ""},
		{"()", "()"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, List(tc.line), "List(%q)", tc.line)
	}
}

func isBalanced(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

func TestListShortestBalancedPrefix(t *testing.T) {
	const alphabet = "() ab\"\\"
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 2000; n++ {
		b := make([]byte, r.Intn(24))
		for i := range b {
			b[i] = alphabet[r.Intn(len(alphabet))]
		}
		s := string(b)

		start := strings.IndexByte(s, '(')
		if start < 0 {
			assert.Empty(t, List(s), "List(%q)", s)
			continue
		}

		want := s[start:]
		for end := start + 1; end <= len(s); end++ {
			if isBalanced(s[start:end]) {
				want = s[start:end]
				break
			}
		}
		assert.Equal(t, want, List(s), "List(%q)", s)
	}
}

func TestUntaggedNumber(t *testing.T) {
	assert.Equal(t, "172", UntaggedNumber("* 172 EXISTS"))
	assert.Equal(t, "12", UntaggedNumber("* 12 FETCH (UID 99)"))
	assert.Equal(t, "", UntaggedNumber("A1 OK"))
}

func TestTagAndCommandName(t *testing.T) {
	tests := []struct {
		line, tag, name string
		uid             bool
	}{
		{"A001 NOOP", "A001", "NOOP", false},
		{`a2 select "INBOX"`, "a2", "SELECT", false},
		{"A3 uid fetch 1:* (FLAGS)", "A3", "FETCH", true},
		{"A4 UID STORE 1 +FLAGS (\\Seen)", "A4", "STORE", true},
		{"A5", "A5", "", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.tag, Tag(tc.line), "Tag(%q)", tc.line)
		assert.Equal(t, tc.name, CommandName(tc.line), "CommandName(%q)", tc.line)
		assert.Equal(t, tc.uid, IsUID(tc.line), "IsUID(%q)", tc.line)
	}
}

func TestUntaggedName(t *testing.T) {
	assert.Equal(t, "EXPUNGE", UntaggedName("* 3 expunge"))
	assert.Equal(t, "FETCH", UntaggedName("* 12 FETCH (FLAGS ())"))
	assert.Equal(t, "", UntaggedName("* SEARCH 1 2"))
	assert.Equal(t, "", UntaggedName("A1 3 EXISTS"))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "1152", Digits("1152 23)"))
	assert.Equal(t, "", Digits("NIL"))
}

func TestScanList(t *testing.T) {
	tests := []struct {
		s  string
		n  int
		ok bool
	}{
		{"() rest", 2, true},
		{`("a (b" c) d`, 10, true},
		{`("a \" )" c)`, 12, true},
		{"((x) (y)) z", 9, true},
		{"(open", 0, false},
		{"x (y)", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		n, ok := ScanList(tc.s)
		assert.Equal(t, tc.ok, ok, "ScanList(%q)", tc.s)
		assert.Equal(t, tc.n, n, "ScanList(%q)", tc.s)
	}
}

func TestQuoted(t *testing.T) {
	tests := []struct {
		s     string
		value string
		n     int
		ok    bool
	}{
		{`"INBOX" rest`, "INBOX", 7, true},
		{`"a \"b\" \\c"`, `a "b" \c`, 13, true},
		{`""`, "", 2, true},
		{`"open`, "open", 5, false},
		{`INBOX`, "", 0, false},
	}
	for _, tc := range tests {
		value, n, ok := Quoted(tc.s)
		assert.Equal(t, tc.value, value, "Quoted(%q)", tc.s)
		assert.Equal(t, tc.n, n, "Quoted(%q)", tc.s)
		assert.Equal(t, tc.ok, ok, "Quoted(%q)", tc.s)

		if ok {
			back, _, _ := Quoted(Quote(value))
			assert.Equal(t, value, back)
		}
	}
}

func TestLiteralSize(t *testing.T) {
	tests := []struct {
		line         string
		size, offset int
		ok           bool
	}{
		{"* 12 FETCH (RFC822.HEADER {14}", 14, 26, true},
		{"{0}", 0, 0, true},
		{"BINARY[1] ~{3}", 3, 10, true},
		{"A1 APPEND x {310+}", 310, 12, true},
		{"{abc}", 0, 0, false},
		{"{}", 0, 0, false},
		{"no literal", 0, 0, false},
		{"{12} trailing", 0, 0, false},
	}
	for _, tc := range tests {
		size, offset, ok := LiteralSize(tc.line)
		assert.Equal(t, tc.ok, ok, "LiteralSize(%q)", tc.line)
		assert.Equal(t, tc.size, size, "LiteralSize(%q)", tc.line)
		assert.Equal(t, tc.offset, offset, "LiteralSize(%q)", tc.line)
	}
}
