package imapresp

import (
	"strings"

	imap "github.com/emersion/go-imapparse"
	"github.com/emersion/go-imapparse/internal/imapwire"
)

func parseSelect(pc *parseContext) (imap.Response, error) {
	resp := &imap.SelectResponse{
		ResponseHeader: pc.header,
		Mailbox:        commandMailbox(pc.commandLine),
		Items:          make(map[string]string),
	}

	err := pc.lines(func(line string) error {
		untagged := imap.Untagged + " "
		switch {
		case imapwire.HasPrefixFold(line, untagged+imap.OK+" ["):
			readSelectCode(resp, line[strings.IndexByte(line, '['):])
			return nil
		case imapwire.HasPrefixFold(line, untagged+imap.FlagsName+" "):
			resp.Items[imap.FlagsName] = imapwire.List(line)
			return nil
		case imapwire.HasPrefixFold(line, untagged+imap.CapabilityName+" "):
			resp.Items[imap.CapabilityName] = line[len(untagged+imap.CapabilityName+" "):]
			return nil
		}

		switch imapwire.UntaggedName(line) {
		case imap.ExistsName:
			resp.Items[imap.ExistsName] = imapwire.UntaggedNumber(line)
			return nil
		case imap.RecentName:
			resp.Items[imap.RecentName] = imapwire.UntaggedNumber(line)
			return nil
		}

		if err := pc.resolveStatus(line, &resp.ResponseHeader); err != nil {
			return err
		}
		if imapwire.HasPrefixFold(line, pc.tag+" "+imap.OK) {
			resp.Access = imapwire.Between(line, '[', ']')
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// readSelectCode stores the response code of an untagged OK line, e.g.
// "[UIDVALIDITY 3857529045] UIDs valid".
func readSelectCode(resp *imap.SelectResponse, code string) {
	end := strings.IndexByte(code, ']')
	if end < 0 {
		end = len(code)
	}
	name := imapwire.Tag(code[1:end])

	if strings.EqualFold(name, imap.PermanentFlagsName) {
		resp.Items[name] = imapwire.List(code)
	} else {
		// Codes without an argument such as [READ-WRITE] have an empty value
		resp.Items[name] = strings.TrimSpace(code[1+len(name) : end])
	}
}

// commandMailbox returns the mailbox argument of a SELECT or EXAMINE command
// line. Quoted names are unquoted.
func commandMailbox(command string) string {
	// Skip tag and command name
	rest := command
	for i := 0; i < 2; i++ {
		j := strings.IndexByte(rest, ' ')
		if j < 0 {
			return ""
		}
		rest = strings.TrimLeft(rest[j:], " ")
	}

	if strings.HasPrefix(rest, `"`) {
		name, _, _ := imapwire.Quoted(rest)
		return name
	}
	return imapwire.Tag(rest)
}
