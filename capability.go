package imap

import (
	"strings"
)

// Cap represents an IMAP capability.
type Cap string

// Registered capabilities.
//
// See: https://www.iana.org/assignments/imap-capabilities/
const (
	CapIMAP4rev1 Cap = "IMAP4rev1" // RFC 3501
	CapIMAP4rev2 Cap = "IMAP4rev2" // RFC 9051

	CapStartTLS      Cap = "STARTTLS"
	CapLoginDisabled Cap = "LOGINDISABLED"

	// Folded in IMAP4rev2
	CapNamespace    Cap = "NAMESPACE"     // RFC 2342
	CapUnselect     Cap = "UNSELECT"      // RFC 3691
	CapUIDPlus      Cap = "UIDPLUS"       // RFC 4315
	CapESearch      Cap = "ESEARCH"       // RFC 4731
	CapSearchRes    Cap = "SEARCHRES"     // RFC 5182
	CapEnable       Cap = "ENABLE"        // RFC 5161
	CapIdle         Cap = "IDLE"          // RFC 2177
	CapSASLIR       Cap = "SASL-IR"       // RFC 4959
	CapListExtended Cap = "LIST-EXTENDED" // RFC 5258
	CapListStatus   Cap = "LIST-STATUS"   // RFC 5819
	CapMove         Cap = "MOVE"          // RFC 6851
	CapLiteralMinus Cap = "LITERAL-"      // RFC 7888
	CapStatusSize   Cap = "STATUS=SIZE"   // RFC 8438

	CapBinary      Cap = "BINARY"      // RFC 3516
	CapCondStore   Cap = "CONDSTORE"   // RFC 7162
	CapLiteralPlus Cap = "LITERAL+"    // RFC 7888
	CapQResync     Cap = "QRESYNC"     // RFC 7162
	CapSpecialUse  Cap = "SPECIAL-USE" // RFC 6154
	CapUTF8Accept  Cap = "UTF8=ACCEPT" // RFC 6855
	CapUTF8Only    Cap = "UTF8=ONLY"   // RFC 6855
	CapObjectID    Cap = "OBJECTID"    // RFC 8474
	CapGmailExt1   Cap = "X-GM-EXT-1"  // X-GM-MSGID, X-GM-THRID and X-GM-LABELS
)

var imap4rev2Caps = CapSet{
	CapNamespace:    {},
	CapUnselect:     {},
	CapUIDPlus:      {},
	CapESearch:      {},
	CapSearchRes:    {},
	CapEnable:       {},
	CapIdle:         {},
	CapSASLIR:       {},
	CapListExtended: {},
	CapListStatus:   {},
	CapMove:         {},
	CapLiteralMinus: {},
	CapStatusSize:   {},
}

// CapSet is a set of capabilities. Capability names are case-insensitive:
// use Has rather than indexing the map.
type CapSet map[Cap]struct{}

func (set CapSet) has(c Cap) bool {
	if _, ok := set[c]; ok {
		return true
	}
	for k := range set {
		if strings.EqualFold(string(k), string(c)) {
			return true
		}
	}
	return false
}

// Has checks whether a capability is supported.
//
// Some capabilities are implied by others, as such Has may return true even if
// the capability is not in the map.
func (set CapSet) Has(c Cap) bool {
	if set.has(c) {
		return true
	}

	if set.has(CapIMAP4rev2) && imap4rev2Caps.has(c) {
		return true
	}

	if strings.EqualFold(string(c), string(CapLiteralMinus)) && set.has(CapLiteralPlus) {
		return true
	}
	if strings.EqualFold(string(c), string(CapCondStore)) && set.has(CapQResync) {
		return true
	}
	if strings.EqualFold(string(c), string(CapUTF8Accept)) && set.has(CapUTF8Only) {
		return true
	}
	return false
}

// AuthMechanisms returns the list of supported SASL mechanisms for
// authentication.
func (set CapSet) AuthMechanisms() []string {
	var l []string
	for c := range set {
		if len(c) < len("AUTH=") || !strings.EqualFold(string(c[:len("AUTH=")]), "AUTH=") {
			continue
		}
		l = append(l, string(c[len("AUTH="):]))
	}
	return l
}

// CapSet returns the capabilities advertised by the server.
func (resp *CapabilityResponse) CapSet() CapSet {
	return newCapSet(resp.Capabilities)
}

// Has reports whether the server supports a capability, see CapSet.Has.
func (resp *CapabilityResponse) Has(c Cap) bool {
	return resp.CapSet().Has(c)
}

// CapSet returns the capabilities sent with the SELECT response, if any.
func (resp *SelectResponse) CapSet() CapSet {
	return newCapSet(resp.Items[CapabilityName])
}

func newCapSet(s string) CapSet {
	fields := strings.Fields(s)
	set := make(CapSet, len(fields))
	for _, f := range fields {
		set[Cap(f)] = struct{}{}
	}
	return set
}
