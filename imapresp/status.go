package imapresp

import (
	"strings"

	imap "github.com/emersion/go-imapparse"
	"github.com/emersion/go-imapparse/internal/imapwire"
)

func parseStatus(pc *parseContext) (imap.Response, error) {
	resp := &imap.StatusResponse{ResponseHeader: pc.header}
	prefix := imap.Untagged + " " + imap.StatusName + " "
	err := pc.lines(func(line string) error {
		if !imapwire.HasPrefixFold(line, prefix) {
			return pc.resolveStatus(line, &resp.ResponseHeader)
		}

		i := strings.LastIndexByte(line, '(')
		if i < len(prefix) {
			return &imap.ParseError{Message: "STATUS response without item list", Line: line}
		}
		resp.Mailbox = strings.TrimSpace(line[len(prefix):i])

		fields := strings.Fields(strings.TrimSuffix(imapwire.List(line[i:]), ")")[1:])
		if len(fields)%2 != 0 {
			return &imap.ParseError{Message: "STATUS item without value", Line: line}
		}
		if resp.Items == nil {
			resp.Items = make(map[string]string, len(fields)/2)
		}
		for j := 0; j < len(fields); j += 2 {
			resp.Items[fields[j]] = fields[j+1]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
