package imapwire

import (
	"strings"
)

// Stream reads a server response with line framing.
//
// Lines are terminated by LF; a trailing CR is stripped. Literal payloads are
// read with ReadN, which doesn't interpret line terminators.
type Stream struct {
	buf  string
	pos  int
	line string
}

// NewStream creates a new stream reading from s.
func NewStream(s string) *Stream {
	return &Stream{buf: s}
}

// ReadLine reads the next line. It returns false when the stream is
// exhausted. The final line doesn't need to be terminated.
func (s *Stream) ReadLine() (string, bool) {
	if s.pos >= len(s.buf) {
		return "", false
	}
	rest := s.buf[s.pos:]
	var line string
	if i := strings.IndexByte(rest, lf); i >= 0 {
		line = rest[:i]
		s.pos += i + 1
	} else {
		line = rest
		s.pos = len(s.buf)
	}
	line = strings.TrimSuffix(line, string(cr))
	s.line = line
	return line, true
}

// ReadN reads exactly n bytes. It returns false if fewer bytes are left, in
// which case nothing is consumed.
func (s *Stream) ReadN(n int) (string, bool) {
	if n < 0 || len(s.buf)-s.pos < n {
		return "", false
	}
	b := s.buf[s.pos : s.pos+n]
	s.pos += n
	return b, true
}

// Line returns the last line read by ReadLine.
func (s *Stream) Line() string {
	return s.line
}

// Len returns the number of unread bytes.
func (s *Stream) Len() int {
	return len(s.buf) - s.pos
}
