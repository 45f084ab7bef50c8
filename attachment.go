package imap

import (
	"mime"
	"strings"

	"github.com/emersion/go-message/charset"
)

// Attachment describes a body part which can be downloaded with
// FETCH <Index> BODY[<PartNo>].
type Attachment struct {
	Index    uint64
	PartNo   string
	FileName string
	Encoding string
}

// AttachmentCollector gathers attachments while walking a body structure
// tree. Its Collect method is a BodyWalkFunc.
type AttachmentCollector struct {
	// Index is the sequence number of the message being walked.
	Index uint64
	// WordDecoder decodes RFC 2047 encoded file names. If nil, a decoder
	// supporting the charsets known to go-message is used.
	WordDecoder *mime.WordDecoder

	Attachments []Attachment
}

var defaultWordDecoder = &mime.WordDecoder{CharsetReader: charset.Reader}

// Collect appends part to the attachment list if its disposition is
// "attachment". The node and data arguments are unused.
func (c *AttachmentCollector) Collect(node *BodyNode, part *BodyPart, data interface{}) {
	if part.Parsed == nil {
		return
	}
	disposition, params := part.Parsed.DispositionValue()
	if disposition != "ATTACHMENT" {
		return
	}

	name := params["FILENAME"]
	if name == "" {
		// Note: using "name" in Content-Type is discouraged
		name = part.Parsed.ParamsMap()["NAME"]
	}
	if name == "" || name == NIL {
		return
	}

	dec := c.WordDecoder
	if dec == nil {
		dec = defaultWordDecoder
	}
	if decoded, err := dec.DecodeHeader(name); err == nil {
		name = decoded
	}

	c.Attachments = append(c.Attachments, Attachment{
		Index:    c.Index,
		PartNo:   part.PartNo,
		FileName: name,
		Encoding: strings.ToUpper(part.Parsed.Encoding),
	})
}

// Attachments returns the attachments of a message body structure.
func Attachments(index uint64, node *BodyNode) []Attachment {
	c := &AttachmentCollector{Index: index}
	node.Walk(func(node *BodyNode, part *BodyPart, data interface{}) {
		data.(*AttachmentCollector).Collect(node, part, nil)
	}, c)
	return c.Attachments
}
