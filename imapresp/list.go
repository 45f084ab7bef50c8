package imapresp

import (
	"strings"
	"unicode/utf8"

	imap "github.com/emersion/go-imapparse"
	"github.com/emersion/go-imapparse/internal/imapwire"
)

func parseList(pc *parseContext) (imap.Response, error) {
	resp := &imap.ListResponse{ResponseHeader: pc.header}
	err := pc.lines(func(line string) error {
		if imapwire.HasPrefixFold(line, imap.Untagged+" "+imap.ListName+" ") ||
			imapwire.HasPrefixFold(line, imap.Untagged+" "+imap.LsubName+" ") {
			mbox, err := pc.readListMailbox(line)
			if err != nil {
				return err
			}
			resp.Mailboxes = append(resp.Mailboxes, *mbox)
			return nil
		}
		return pc.resolveStatus(line, &resp.ResponseHeader)
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// readListMailbox reads a `* LIST (attrs) "delim" name` line. A name sent as
// a literal is read from the stream and stored as a quoted string.
func (pc *parseContext) readListMailbox(line string) (*imap.ListMailbox, error) {
	var mbox imap.ListMailbox

	mbox.Attrs = imapwire.List(line)
	if mbox.Attrs == "" || !strings.HasSuffix(mbox.Attrs, ")") {
		return nil, &imap.ParseError{Message: "LIST response without attribute list", Line: line}
	}
	rest := strings.TrimLeft(line[strings.Index(line, mbox.Attrs)+len(mbox.Attrs):], " ")

	if !imapwire.HasPrefixFold(rest, imap.NIL) {
		delim := imapwire.Between(rest, '"', '"')
		if strings.HasPrefix(delim, "\\") {
			delim = delim[1:]
		}
		mbox.Delim, _ = utf8.DecodeRuneInString(delim)
		if mbox.Delim == utf8.RuneError {
			mbox.Delim = 0
		}
	}

	if size, offset, ok := imapwire.LiteralSize(rest); ok && offset > 0 {
		name, ok := pc.stream.ReadN(size)
		if !ok {
			return nil, &imap.ParseError{Message: "literal exceeds response", Line: line}
		}
		if tail, _ := pc.stream.ReadLine(); strings.TrimSpace(tail) != "" {
			return nil, &imap.ParseError{Message: "unexpected data after LIST mailbox name", Line: tail}
		}
		mbox.Name = imapwire.Quote(name)
	} else if strings.HasSuffix(line, `"`) {
		trimmed := line[:len(line)-1]
		i := strings.LastIndexByte(trimmed, '"')
		for i > 0 && trimmed[i-1] == '\\' {
			i = strings.LastIndexByte(trimmed[:i-1], '"')
		}
		if i < 0 || i < len(line)-len(rest) {
			return nil, &imap.ParseError{Message: "LIST response with unterminated mailbox name", Line: line}
		}
		mbox.Name = line[i:]
	} else {
		mbox.Name = line[strings.LastIndexByte(line, ' ')+1:]
	}

	return &mbox, nil
}
