package imap

import (
	"strconv"
	"strings"
)

// StatusItem is a data item returned by a STATUS command.
type StatusItem string

const (
	StatusItemNumMessages StatusItem = "MESSAGES"
	StatusItemNumRecent   StatusItem = "RECENT"
	StatusItemUIDNext     StatusItem = "UIDNEXT"
	StatusItemUIDValidity StatusItem = "UIDVALIDITY"
	StatusItemNumUnseen   StatusItem = "UNSEEN"
	StatusItemNumDeleted  StatusItem = "DELETED" // requires IMAP4rev2 or QUOTA
	StatusItemSize        StatusItem = "SIZE"    // requires IMAP4rev2 or STATUS=SIZE

	StatusItemHighestModSeq StatusItem = "HIGHESTMODSEQ" // requires CONDSTORE
)

// Number returns the numeric value of a STATUS item. Item names are matched
// case-insensitively.
func (resp *StatusResponse) Number(item StatusItem) (uint64, bool) {
	return lookupNumber(resp.Items, string(item))
}

// Number returns the numeric value of a SELECT item, e.g. EXISTS or
// UIDVALIDITY.
func (resp *SelectResponse) Number(name string) (uint64, bool) {
	return lookupNumber(resp.Items, name)
}

// ReadOnly reports whether the mailbox was opened read-only.
func (resp *SelectResponse) ReadOnly() bool {
	return strings.EqualFold(resp.Access, "READ-ONLY")
}

func lookupNumber(items map[string]string, name string) (uint64, bool) {
	v, ok := items[name]
	if !ok {
		for k, kv := range items {
			if strings.EqualFold(k, name) {
				v, ok = kv, true
				break
			}
		}
	}
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
