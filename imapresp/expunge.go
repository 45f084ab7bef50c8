package imapresp

import (
	"strconv"

	imap "github.com/emersion/go-imapparse"
	"github.com/emersion/go-imapparse/internal/imapwire"
)

func parseExpunge(pc *parseContext) (imap.Response, error) {
	resp := &imap.ExpungeResponse{ResponseHeader: pc.header}
	err := pc.lines(func(line string) error {
		var dst *[]uint64
		switch imapwire.UntaggedName(line) {
		case imap.ExpungeName:
			dst = &resp.Expunged
		case imap.ExistsName:
			dst = &resp.Exists
		case imap.RecentName:
			dst = &resp.Recent
		default:
			return pc.resolveStatus(line, &resp.ResponseHeader)
		}

		n, err := strconv.ParseUint(imapwire.UntaggedNumber(line), 10, 64)
		if err != nil {
			return &imap.ParseError{Message: "invalid message number", Line: line}
		}
		*dst = append(*dst, n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
