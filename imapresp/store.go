package imapresp

import (
	"strconv"
	"strings"

	imap "github.com/emersion/go-imapparse"
	"github.com/emersion/go-imapparse/internal/imapwire"
)

func parseStore(pc *parseContext) (imap.Response, error) {
	resp := &imap.StoreResponse{ResponseHeader: pc.header}
	err := pc.lines(func(line string) error {
		if imapwire.UntaggedName(line) != imap.FetchName {
			return pc.resolveStatus(line, &resp.ResponseHeader)
		}

		index, err := strconv.ParseUint(imapwire.UntaggedNumber(line), 10, 64)
		if err != nil {
			return &imap.ParseError{Message: "invalid message number", Line: line}
		}
		start := strings.IndexByte(line, '(')
		if start < 0 {
			return &imap.ParseError{Message: "FETCH response without item list", Line: line}
		}
		n, ok := imapwire.ScanList(line[start:])
		if !ok {
			return &imap.ParseError{Message: "unterminated FETCH item list", Line: line}
		}
		flags, ok := storeFlags(line[start+1 : start+n-1])
		if !ok {
			return &imap.ParseError{Message: "FETCH response without FLAGS", Line: line}
		}
		resp.Messages = append(resp.Messages, imap.StoreMessage{Index: index, Flags: flags})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// storeFlags returns the list following the FLAGS item among the
// space-separated items of a FETCH response, e.g. `MODSEQ (12) FLAGS (\Seen)`.
func storeFlags(items string) (string, bool) {
	items = strings.TrimLeft(items, " ")
	for items != "" {
		name := imapwire.Tag(items)
		items = strings.TrimLeft(items[len(name):], " ")

		var value string
		switch {
		case strings.HasPrefix(items, "("):
			n, ok := imapwire.ScanList(items)
			if !ok {
				return "", false
			}
			value = items[:n]
		case strings.HasPrefix(items, `"`):
			_, n, ok := imapwire.Quoted(items)
			if !ok {
				return "", false
			}
			value = items[:n]
		default:
			value = imapwire.Tag(items)
		}
		items = strings.TrimLeft(items[len(value):], " ")

		if strings.EqualFold(name, imap.FlagsName) && strings.HasPrefix(value, "(") {
			return value, true
		}
	}
	return "", false
}
