package imapresp

import (
	"strconv"
	"strings"

	imap "github.com/emersion/go-imapparse"
	"github.com/emersion/go-imapparse/internal/imapwire"
)

type fetchItemKind int

const (
	fetchItemList fetchItemKind = iota
	fetchItemQuoted
	fetchItemNumber
	fetchItemOctets
)

type fetchItem struct {
	name string
	kind fetchItemKind
	// section is true if the name is followed by "[section]" and an optional
	// "<origin>" partial specifier.
	section bool
}

var fetchItems = []fetchItem{
	{name: imap.BodyStructureName, kind: fetchItemList},
	{name: imap.EnvelopeName, kind: fetchItemList},
	{name: imap.FlagsName, kind: fetchItemList},
	{name: imap.BodyName, kind: fetchItemOctets, section: true},
	{name: imap.BodyName, kind: fetchItemList},
	{name: "BODY.PEEK", kind: fetchItemOctets, section: true},
	{name: "BINARY", kind: fetchItemOctets, section: true},
	{name: "BINARY.SIZE", kind: fetchItemNumber, section: true},
	{name: imap.InternalDateName, kind: fetchItemQuoted},
	{name: imap.RFC822SizeName, kind: fetchItemNumber},
	{name: imap.RFC822HeaderName, kind: fetchItemOctets},
	{name: "RFC822.TEXT", kind: fetchItemOctets},
	{name: imap.RFC822Name, kind: fetchItemOctets},
	{name: imap.UIDName, kind: fetchItemNumber},
	{name: "MODSEQ", kind: fetchItemList},
	{name: "X-GM-MSGID", kind: fetchItemNumber},
	{name: "X-GM-THRID", kind: fetchItemNumber},
	{name: "X-GM-LABELS", kind: fetchItemList},
}

// matchFetchItem returns the item s starts with. An item name must be
// followed by a space, or by '[' for section items.
func matchFetchItem(s string) (*fetchItem, bool) {
	for i := range fetchItems {
		item := &fetchItems[i]
		if !imapwire.HasPrefixFold(s, item.name) || len(s) == len(item.name) {
			continue
		}
		next := s[len(item.name)]
		if (item.section && next == '[') || (!item.section && next == ' ') {
			return item, true
		}
	}
	return nil, false
}

func parseFetch(pc *parseContext) (imap.Response, error) {
	resp := &imap.FetchResponse{ResponseHeader: pc.header}
	err := pc.lines(func(line string) error {
		if imapwire.UntaggedName(line) != imap.FetchName {
			return pc.resolveStatus(line, &resp.ResponseHeader)
		}
		msg, err := pc.readFetchMessage(line)
		if err != nil {
			return err
		}
		resp.Messages = append(resp.Messages, *msg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// fetchReader reads the items of a FETCH response, which may span several
// physical lines when literals are involved. rest is always a suffix of line.
type fetchReader struct {
	pc   *parseContext
	line string
	rest string
}

func (r *fetchReader) nextLine() bool {
	line, ok := r.pc.stream.ReadLine()
	if ok {
		r.line, r.rest = line, line
	}
	return ok
}

func (r *fetchReader) errorf(msg string) error {
	return &imap.ParseError{Message: msg, Line: r.line}
}

func (pc *parseContext) readFetchMessage(line string) (*imap.FetchMessage, error) {
	index, err := strconv.ParseUint(imapwire.UntaggedNumber(line), 10, 64)
	if err != nil {
		return nil, &imap.ParseError{Message: "invalid message number", Line: line}
	}
	start := strings.IndexByte(line, '(')
	if start < 0 {
		return nil, &imap.ParseError{Message: "FETCH response without item list", Line: line}
	}

	msg := &imap.FetchMessage{Index: index, Items: make(map[string]string)}
	r := &fetchReader{pc: pc, line: line, rest: line[start+1:]}
	for {
		r.rest = strings.TrimLeft(r.rest, " ")
		if r.rest == "" {
			if !r.nextLine() {
				return nil, r.errorf("unterminated FETCH response")
			}
			continue
		}
		if r.rest[0] == ')' {
			return msg, nil
		}

		item, ok := matchFetchItem(r.rest)
		if !ok {
			return nil, r.errorf("unknown FETCH item")
		}
		if err := r.readItem(item, msg.Items); err != nil {
			return nil, err
		}
	}
}

func (r *fetchReader) readItem(item *fetchItem, items map[string]string) error {
	key := r.rest[:len(item.name)]
	r.rest = r.rest[len(item.name):]
	if item.section {
		end := strings.IndexByte(r.rest, ']')
		if end < 0 {
			return r.errorf("unterminated FETCH section")
		}
		end++
		if strings.HasPrefix(r.rest[end:], "<") {
			if i := strings.IndexByte(r.rest[end:], '>'); i >= 0 {
				end += i + 1
			}
		}
		key += r.rest[:end]
		r.rest = r.rest[end:]
	}
	r.rest = strings.TrimLeft(r.rest, " ")

	switch item.kind {
	case fetchItemList:
		v, err := r.readList()
		if err != nil {
			return err
		}
		items[key] = v
	case fetchItemQuoted:
		_, n, ok := imapwire.Quoted(r.rest)
		if !ok {
			return r.errorf("expected quoted string after " + key)
		}
		items[key] = r.rest[:n]
		r.rest = r.rest[n:]
	case fetchItemNumber:
		d := imapwire.Digits(r.rest)
		if d == "" {
			return r.errorf("expected number after " + key)
		}
		items[key] = d
		r.rest = r.rest[len(d):]
	case fetchItemOctets:
		return r.readOctets(key, items)
	}
	return nil
}

// readList reads a parenthesised list. Literals inside the list, as found in
// ENVELOPE, are replaced with quoted strings.
func (r *fetchReader) readList() (string, error) {
	if imapwire.HasPrefixFold(r.rest, imap.NIL) {
		r.rest = r.rest[len(imap.NIL):]
		return imap.NIL, nil
	}
	if !strings.HasPrefix(r.rest, "(") {
		return "", r.errorf("expected list")
	}

	buf := r.rest
	for {
		if n, ok := imapwire.ScanList(buf); ok {
			r.rest = buf[n:]
			return buf[:n], nil
		}

		size, offset, ok := imapwire.LiteralSize(buf)
		if !ok {
			return "", r.errorf("unterminated list")
		}
		data, ok := r.pc.stream.ReadN(size)
		if !ok {
			return "", r.errorf("literal exceeds response")
		}
		buf = buf[:offset] + imapwire.Quote(data)
		if !r.nextLine() {
			return "", r.errorf("unterminated list")
		}
		buf += r.line
	}
}

// readOctets reads a literal, quoted or NIL value. It is stored under the
// response line up to the value, so that several sections of the same
// message can be told apart.
func (r *fetchReader) readOctets(item string, items map[string]string) error {
	key := strings.TrimSpace(r.line[:len(r.line)-len(r.rest)])

	switch {
	case strings.HasPrefix(r.rest, "\""):
		v, n, ok := imapwire.Quoted(r.rest)
		if !ok {
			return r.errorf("unterminated quoted string")
		}
		items[key] = v
		r.rest = r.rest[n:]
	case imapwire.HasPrefixFold(r.rest, imap.NIL):
		items[key] = ""
		r.rest = r.rest[len(imap.NIL):]
	default:
		size, offset, ok := imapwire.LiteralSize(r.rest)
		if !ok || offset != 0 {
			return r.errorf("expected literal after " + item)
		}
		data, ok := r.pc.stream.ReadN(size)
		if !ok {
			return r.errorf("literal exceeds response")
		}
		items[key] = data
		if !r.nextLine() {
			return r.errorf("unterminated FETCH response")
		}
	}
	return nil
}
