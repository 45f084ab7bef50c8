package imap

import (
	"fmt"
	"strings"
	"time"
)

// Date and time layouts.
const (
	// Described in RFC 1730 on page 55.
	DateLayout = "2-Jan-2006"
	// Described in RFC 1730 on page 55.
	DateTimeLayout = "2-Jan-2006 15:04:05 -0700"
)

// ParseDateTime parses an IMAP date-time such as the value of INTERNALDATE.
// Surrounding quotes are removed. Days before the 10th may be padded with a
// space.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(strings.Trim(s, `"`))
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("imap: invalid date-time %q", s)
	}
	return t, nil
}

// ParseDate parses an IMAP date, as found in SEARCH criteria.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(strings.Trim(s, `"`))
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("imap: invalid date %q", s)
	}
	return t, nil
}

// InternalDate returns the INTERNALDATE of the message, if fetched.
func (msg *FetchMessage) InternalDate() (time.Time, error) {
	v, ok := msg.Item(InternalDateName)
	if !ok {
		return time.Time{}, fmt.Errorf("imap: message %v has no %v item", msg.Index, InternalDateName)
	}
	return ParseDateTime(v)
}
