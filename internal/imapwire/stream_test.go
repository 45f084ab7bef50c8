package imapwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamReadLine(t *testing.T) {
	s := NewStream("* 1 EXISTS\r\nA1 OK done\r\n")

	line, ok := s.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "* 1 EXISTS", line)

	line, ok = s.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "A1 OK done", line)
	assert.Equal(t, "A1 OK done", s.Line())

	_, ok = s.ReadLine()
	assert.False(t, ok)
}

func TestStreamUnterminatedLine(t *testing.T) {
	s := NewStream("A1 OK")
	line, ok := s.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "A1 OK", line)
	assert.Equal(t, 0, s.Len())
}

func TestStreamReadN(t *testing.T) {
	s := NewStream("head {5}\r\na\r\n\x00b)\r\nA1 OK\r\n")

	line, _ := s.ReadLine()
	assert.Equal(t, "head {5}", line)

	b, ok := s.ReadN(5)
	require.True(t, ok)
	assert.Equal(t, "a\r\n\x00b", b)

	line, _ = s.ReadLine()
	assert.Equal(t, ")", line)

	_, ok = s.ReadN(100)
	assert.False(t, ok)

	line, _ = s.ReadLine()
	assert.Equal(t, "A1 OK", line)
}
