package imapresp

import (
	"strings"

	imap "github.com/emersion/go-imapparse"
	"github.com/emersion/go-imapparse/internal/imapwire"
)

// parseNoop handles NOOP and IDLE. Untagged data and continuation requests
// are kept as is. BYE is kept too, and also ends the session.
func parseNoop(pc *parseContext) (imap.Response, error) {
	resp := &imap.NoopResponse{ResponseHeader: pc.header, Raw: []string{}}
	err := pc.lines(func(line string) error {
		if !imapwire.IsUntagged(line) && !strings.HasPrefix(line, imapwire.Continuation) {
			return pc.resolveStatus(line, &resp.ResponseHeader)
		}
		resp.Raw = append(resp.Raw, line)
		if imapwire.HasPrefixFold(line, imap.Untagged+" "+imap.BYE) {
			return pc.resolveStatus(line, &resp.ResponseHeader)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func parseLogout(pc *parseContext) (imap.Response, error) {
	resp := &imap.LogoutResponse{ResponseHeader: pc.header}
	err := pc.lines(func(line string) error {
		if imapwire.HasPrefixFold(line, imap.Untagged+" "+imap.BYE) {
			resp.Raw = append(resp.Raw, line)
			resp.Bye = true
			return nil
		}
		return pc.resolveStatus(line, &resp.ResponseHeader)
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
