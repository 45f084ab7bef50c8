// Package imapwire implements the lexical layer of the IMAP response parser.
//
// The IMAP wire protocol is defined in RFC 3501 section 4. Responses are
// handled as text with line framing: most items are read a line at a time,
// literals are read as raw octets.
package imapwire

const (
	sp           = ' '
	cr           = '\r'
	lf           = '\n'
	dquote       = '"'
	listStart    = '('
	listEnd      = ')'
	literalStart = '{'
	literalEnd   = '}'
)

// Untagged is the marker that starts every untagged response line.
const Untagged = "*"

// Continuation is the marker that starts a continuation request line.
const Continuation = "+"
