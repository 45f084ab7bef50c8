package imap

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/emersion/go-message"
	"github.com/emersion/go-message/mail"
	"github.com/emersion/go-message/textproto"
)

// FetchMessage contains the items returned by FETCH for a single message.
type FetchMessage struct {
	// Index is the message sequence number.
	Index uint64
	// Items maps item names to their values, as received. Literal items are
	// keyed by the response line up to the literal, see Literal.
	Items map[string]string
}

// Item returns the value of a non-literal item, e.g. "UID" or "FLAGS". The
// name is matched case-insensitively.
func (msg *FetchMessage) Item(name string) (string, bool) {
	if v, ok := msg.Items[name]; ok {
		return v, true
	}
	for k, v := range msg.Items {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// UID returns the message UID, if fetched.
func (msg *FetchMessage) UID() (uint64, bool) {
	v, ok := msg.Item(UIDName)
	if !ok {
		return 0, false
	}
	uid, err := strconv.ParseUint(v, 10, 64)
	return uid, err == nil
}

// BodyStructure builds the tree of the message's BODYSTRUCTURE item.
func (msg *FetchMessage) BodyStructure() (*BodyNode, error) {
	v, ok := msg.Item(BodyStructureName)
	if !ok {
		return nil, fmt.Errorf("imap: message %v has no %v item", msg.Index, BodyStructureName)
	}
	return ParseBodyStructure(v)
}

// Literal returns the value of a literal item. The item is the name that
// immediately precedes the literal in the response, e.g. "RFC822.HEADER" or
// "BODY[1.2]". It is matched case-insensitively.
func (msg *FetchMessage) Literal(item string) (string, bool) {
	keys := make([]string, 0, len(msg.Items))
	for k := range msg.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if len(k) < len(item) || !strings.EqualFold(k[len(k)-len(item):], item) {
			continue
		}
		if rest := k[:len(k)-len(item)]; rest != "" && !strings.HasSuffix(rest, " ") && !strings.HasSuffix(rest, "(") {
			continue
		}
		return msg.Items[k], true
	}
	return "", false
}

// BodySection returns the contents of a BODY[section] literal, e.g. "1.2",
// "HEADER" or "" for the whole message.
func (msg *FetchMessage) BodySection(section string) (string, bool) {
	if v, ok := msg.Literal(BodyName + "[" + section + "]"); ok {
		return v, true
	}
	return msg.Literal(BodyName + ".PEEK[" + section + "]")
}

// Header parses the message header returned by RFC822.HEADER or
// BODY[HEADER].
func (msg *FetchMessage) Header() (*mail.Header, error) {
	raw, ok := msg.Literal(RFC822HeaderName)
	if !ok {
		raw, ok = msg.BodySection("HEADER")
	}
	if !ok {
		raw, ok = msg.Literal(RFC822Name)
	}
	if !ok {
		return nil, fmt.Errorf("imap: message %v has no header item", msg.Index)
	}

	// Servers may omit the empty line terminating the header
	if !strings.Contains(raw, "\r\n\r\n") && !strings.Contains(raw, "\n\n") {
		raw += "\r\n"
	}

	h, err := textproto.ReadHeader(bufio.NewReader(strings.NewReader(raw)))
	if err != nil {
		return nil, fmt.Errorf("imap: failed to read header of message %v: %w", msg.Index, err)
	}
	return &mail.Header{Header: message.Header{Header: h}}, nil
}
