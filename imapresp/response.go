package imapresp

import (
	imap "github.com/emersion/go-imapparse"
	"github.com/emersion/go-imapparse/internal/imapwire"
)

// resolveStatus handles a line which isn't part of a command's payload. The
// tagged completion and untagged BYE are recorded in hdr, untagged OK, NO and
// BAD are logged. Any other line is a parse error.
func (pc *parseContext) resolveStatus(line string, hdr *imap.ResponseHeader) error {
	tagged := pc.tag + " "
	untagged := imap.Untagged + " "

	switch {
	case imapwire.HasPrefixFold(line, tagged+imap.OK):
		hdr.Status = imap.StatusOK
	case imapwire.HasPrefixFold(line, tagged+imap.NO):
		hdr.Status = imap.StatusNo
		hdr.Error = line
	case imapwire.HasPrefixFold(line, tagged+imap.BAD):
		hdr.Status = imap.StatusBad
		hdr.Error = line
	case imapwire.HasPrefixFold(line, untagged+imap.BYE):
		hdr.Bye = true
		hdr.Error = line
	case imapwire.HasPrefixFold(line, untagged+imap.NO), imapwire.HasPrefixFold(line, untagged+imap.BAD):
		pc.logger.Printf("imapresp: server advisory: %v", line)
	case imapwire.HasPrefixFold(line, untagged+imap.OK):
		pc.logger.Printf("imapresp: server information: %v", line)
	default:
		return &imap.ParseError{Message: "error while parsing " + pc.name + " response", Line: line}
	}
	return nil
}
