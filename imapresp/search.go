package imapresp

import (
	"strconv"
	"strings"

	imap "github.com/emersion/go-imapparse"
	"github.com/emersion/go-imapparse/internal/imapwire"
)

func parseSearch(pc *parseContext) (imap.Response, error) {
	resp := &imap.SearchResponse{ResponseHeader: pc.header}
	prefix := imap.Untagged + " " + imap.SearchName
	err := pc.lines(func(line string) error {
		if !imapwire.HasPrefixFold(line, prefix) || (len(line) > len(prefix) && line[len(prefix)] != ' ') {
			return pc.resolveStatus(line, &resp.ResponseHeader)
		}

		rest := line[len(prefix):]
		// CONDSTORE servers append "(MODSEQ <n>)"
		if i := strings.IndexByte(rest, '('); i >= 0 {
			rest = rest[:i]
		}
		for _, field := range strings.Fields(rest) {
			n, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				return &imap.ParseError{Message: "invalid SEARCH index", Line: line}
			}
			resp.Indexes = append(resp.Indexes, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
