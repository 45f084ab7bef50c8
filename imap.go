// Package imap defines the results produced by the IMAP response parser.
//
// The parser itself lives in the imapresp package. This package contains the
// command keywords, the per-command response types and the BODYSTRUCTURE
// tree. IMAP4rev1 is defined in RFC 3501.
package imap

// Strings recognised in server responses. They are matched
// case-insensitively, and stored as received.
const (
	Untagged = "*"

	OK  = "OK"
	NO  = "NO"
	BAD = "BAD"
	BYE = "BYE"

	NIL = "NIL"

	FlagsName          = "FLAGS"
	PermanentFlagsName = "PERMANENTFLAGS"
	UIDValidityName    = "UIDVALIDITY"
	UIDNextName        = "UIDNEXT"
	HighestModSeqName  = "HIGHESTMODSEQ"
	CapabilityName     = "CAPABILITY"
	UnseenName         = "UNSEEN"
	ExistsName         = "EXISTS"
	RecentName         = "RECENT"
	SearchName         = "SEARCH"
	StatusName         = "STATUS"
	ListName           = "LIST"
	LsubName           = "LSUB"
	FetchName          = "FETCH"
	ExpungeName        = "EXPUNGE"
	BodyName           = "BODY"
	BodyStructureName  = "BODYSTRUCTURE"
	EnvelopeName       = "ENVELOPE"
	InternalDateName   = "INTERNALDATE"
	RFC822Name         = "RFC822"
	RFC822HeaderName   = "RFC822.HEADER"
	RFC822SizeName     = "RFC822.SIZE"
	UIDName            = "UID"
)

// MailboxAttr is a mailbox attribute.
//
// Mailbox attributes are defined in RFC 3501 section 7.2.2.
type MailboxAttr string

const (
	// Base attributes
	MailboxAttrNoInferiors   MailboxAttr = "\\Noinferiors"
	MailboxAttrNoSelect      MailboxAttr = "\\Noselect"
	MailboxAttrHasChildren   MailboxAttr = "\\HasChildren"
	MailboxAttrHasNoChildren MailboxAttr = "\\HasNoChildren"
	MailboxAttrMarked        MailboxAttr = "\\Marked"
	MailboxAttrUnmarked      MailboxAttr = "\\Unmarked"

	// Role (aka. "special-use") attributes
	MailboxAttrAll     MailboxAttr = "\\All"
	MailboxAttrArchive MailboxAttr = "\\Archive"
	MailboxAttrDrafts  MailboxAttr = "\\Drafts"
	MailboxAttrFlagged MailboxAttr = "\\Flagged"
	MailboxAttrJunk    MailboxAttr = "\\Junk"
	MailboxAttrSent    MailboxAttr = "\\Sent"
	MailboxAttrTrash   MailboxAttr = "\\Trash"
)

// Flag is a message flag.
//
// Message flags are defined in RFC 3501 section 2.3.2.
type Flag string

const (
	// System flags
	FlagSeen     Flag = "\\Seen"
	FlagAnswered Flag = "\\Answered"
	FlagFlagged  Flag = "\\Flagged"
	FlagDeleted  Flag = "\\Deleted"
	FlagDraft    Flag = "\\Draft"
	FlagRecent   Flag = "\\Recent"

	// Permanent flags
	FlagWildcard Flag = "\\*"
)
