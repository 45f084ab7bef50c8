package imapresp

import (
	imap "github.com/emersion/go-imapparse"
	"github.com/emersion/go-imapparse/internal/imapwire"
)

func parseCapability(pc *parseContext) (imap.Response, error) {
	resp := &imap.CapabilityResponse{ResponseHeader: pc.header}
	prefix := imap.Untagged + " " + imap.CapabilityName + " "
	err := pc.lines(func(line string) error {
		if imapwire.HasPrefixFold(line, prefix) {
			resp.Capabilities = line[len(prefix):]
			return nil
		}
		return pc.resolveStatus(line, &resp.ResponseHeader)
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
