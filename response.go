package imap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emersion/go-imapparse/internal/imapwire"
	"github.com/emersion/go-imapparse/utf7"
)

// Status is the completion status of a tagged command.
type Status string

const (
	StatusOK  Status = OK
	StatusNo  Status = NO
	StatusBad Status = BAD
)

// Response is the parsed response to a command.
//
// A Response is one of *GenericResponse, *ListResponse, *SelectResponse,
// *SearchResponse, *StatusResponse, *ExpungeResponse, *StoreResponse,
// *CapabilityResponse, *NoopResponse, *LogoutResponse or *FetchResponse.
type Response interface {
	// Header returns the fields shared by all responses.
	Header() *ResponseHeader

	response()
}

var (
	_ Response = (*GenericResponse)(nil)
	_ Response = (*ListResponse)(nil)
	_ Response = (*SelectResponse)(nil)
	_ Response = (*SearchResponse)(nil)
	_ Response = (*StatusResponse)(nil)
	_ Response = (*ExpungeResponse)(nil)
	_ Response = (*StoreResponse)(nil)
	_ Response = (*CapabilityResponse)(nil)
	_ Response = (*NoopResponse)(nil)
	_ Response = (*LogoutResponse)(nil)
	_ Response = (*FetchResponse)(nil)
)

// ResponseHeader contains the fields shared by all responses.
type ResponseHeader struct {
	Command Command
	// UID is set if the command was prefixed with "UID".
	UID    bool
	Status Status
	// Error is the tagged line of a NO or BAD completion, or the untagged BYE
	// line.
	Error string
	// Bye is set once an untagged BYE has been received. It is never
	// cleared.
	Bye bool
}

// Header implements Response.
func (h *ResponseHeader) Header() *ResponseHeader {
	return h
}

func (*ResponseHeader) response() {}

// Err returns an *Error if the command didn't complete with OK, or if the
// server said BYE. Otherwise it returns nil.
func (h *ResponseHeader) Err() error {
	switch {
	case h.Status == StatusNo || h.Status == StatusBad:
		return &Error{Type: h.Status, Text: h.Error}
	case h.Bye:
		return &Error{Type: BYE, Text: h.Error}
	case h.Status == "":
		return &Error{Text: "missing tagged completion"}
	}
	return nil
}

// GenericResponse is the response to a command which only returns a status.
type GenericResponse struct {
	ResponseHeader
}

// ListMailbox is a mailbox returned by LIST or LSUB.
type ListMailbox struct {
	// Attrs is the parenthesised attribute list, e.g. "(\HasNoChildren)".
	Attrs string
	// Delim is the hierarchy delimiter, zero if the server returned NIL.
	Delim rune
	// Name is the mailbox name as received. Quoted names keep their quotes.
	Name string
}

// HasAttr reports whether the mailbox has the given attribute.
func (mbox *ListMailbox) HasAttr(attr MailboxAttr) bool {
	for _, a := range strings.Fields(strings.Trim(mbox.Attrs, "()")) {
		if strings.EqualFold(a, string(attr)) {
			return true
		}
	}
	return false
}

// DecodedName returns the mailbox name with quotes removed and modified
// UTF-7 decoded.
func (mbox *ListMailbox) DecodedName() (string, error) {
	name := mbox.Name
	if strings.HasPrefix(name, `"`) {
		var ok bool
		name, _, ok = imapwire.Quoted(name)
		if !ok {
			return "", fmt.Errorf("imap: unterminated mailbox name %q", mbox.Name)
		}
	}
	return utf7.Encoding.NewDecoder().String(name)
}

// ListResponse is the response to LIST and LSUB.
type ListResponse struct {
	ResponseHeader
	Mailboxes []ListMailbox
}

// SelectResponse is the response to SELECT and EXAMINE.
type SelectResponse struct {
	ResponseHeader
	Mailbox string
	// Items maps FLAGS, PERMANENTFLAGS, UIDVALIDITY, UIDNEXT, HIGHESTMODSEQ,
	// UNSEEN, CAPABILITY, EXISTS and RECENT to their values.
	Items map[string]string
	// Access is READ-ONLY or READ-WRITE.
	Access string
}

// SearchResponse is the response to SEARCH.
type SearchResponse struct {
	ResponseHeader
	// Indexes contains message sequence numbers, or UIDs for UID SEARCH.
	Indexes []uint64
}

// StatusResponse is the response to STATUS.
type StatusResponse struct {
	ResponseHeader
	Mailbox string
	Items   map[string]string
}

// ExpungeResponse is the response to EXPUNGE.
type ExpungeResponse struct {
	ResponseHeader
	Expunged []uint64
	Exists   []uint64
	Recent   []uint64
}

// StoreMessage is the new flag list of a message after STORE.
type StoreMessage struct {
	Index uint64
	// Flags is the parenthesised flag list.
	Flags string
}

// HasFlag reports whether the message has the given flag.
func (msg *StoreMessage) HasFlag(flag Flag) bool {
	for _, f := range strings.Fields(strings.Trim(msg.Flags, "()")) {
		if strings.EqualFold(f, string(flag)) {
			return true
		}
	}
	return false
}

// StoreResponse is the response to STORE.
type StoreResponse struct {
	ResponseHeader
	Messages []StoreMessage
}

// CapabilityResponse is the response to CAPABILITY.
type CapabilityResponse struct {
	ResponseHeader
	Capabilities string
}

// Caps returns the capability names.
func (resp *CapabilityResponse) Caps() []string {
	return strings.Fields(resp.Capabilities)
}

// NoopResponse is the response to NOOP and IDLE. Untagged lines are kept
// verbatim.
type NoopResponse struct {
	ResponseHeader
	Raw []string
}

// LogoutResponse is the response to LOGOUT.
type LogoutResponse struct {
	ResponseHeader
	Raw []string
}

// FetchResponse is the response to FETCH.
type FetchResponse struct {
	ResponseHeader
	Messages []FetchMessage
}

// Error is an IMAP error caused by a status response.
type Error struct {
	Type Status
	Text string
}

var _ error = (*Error)(nil)

// Error implements the error interface.
func (err *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("imap:")
	if err.Type != "" {
		fmt.Fprintf(&sb, " %v", err.Type)
	}
	text := err.Text
	if text == "" {
		text = "<unknown>"
	}
	fmt.Fprintf(&sb, " %v", text)
	return sb.String()
}

// ParseError is returned when a server response can't be understood.
type ParseError struct {
	Message string
	// Line is the offending response line.
	Line string
}

// Error implements the error interface.
func (err *ParseError) Error() string {
	return fmt.Sprintf("imap: %v: %q", err.Message, err.Line)
}

// IsParseError returns true if the provided error is a parse error.
func IsParseError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr)
}
