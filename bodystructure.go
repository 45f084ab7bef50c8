package imap

import (
	"strconv"
	"strings"

	"github.com/emersion/go-imapparse/internal/imapwire"
)

// BodyPartParsed contains the fields of a single body part. Fields missing
// from the BODYSTRUCTURE value hold NIL. Quoted values are stored without
// their quotes, parenthesised values are stored as received.
type BodyPartParsed struct {
	Type        string
	Subtype     string
	Params      string
	ID          string
	Description string
	Encoding    string
	Size        string
	// TextLines is the number of lines of TEXT and MESSAGE/RFC822 parts.
	TextLines string
	// Envelope and Body are only set for MESSAGE/RFC822 parts.
	Envelope    string
	Body        string
	MD5         string
	Disposition string
	Language    string
	Location    string
	// Extended contains any extension data following the location.
	Extended string
}

// MediaType returns the lower-case MIME type of the part, e.g. "text/plain".
func (p *BodyPartParsed) MediaType() string {
	return strings.ToLower(p.Type) + "/" + strings.ToLower(p.Subtype)
}

// ParamsMap returns the body parameters with upper-cased names.
func (p *BodyPartParsed) ParamsMap() map[string]string {
	return parseParamList(p.Params)
}

// DispositionValue returns the disposition type (upper-cased, e.g.
// "ATTACHMENT") and its parameters.
func (p *BodyPartParsed) DispositionValue() (string, map[string]string) {
	if !strings.HasPrefix(p.Disposition, "(") {
		return "", nil
	}
	s := p.Disposition[1 : len(p.Disposition)-1]
	typ, rest, err := nextBodyValue(s)
	if err != nil || typ == NIL {
		return "", nil
	}
	var params map[string]string
	if list, _, err := nextBodyValue(rest); err == nil {
		params = parseParamList(list)
	}
	return strings.ToUpper(typ), params
}

// BodyPart is a part of a body structure tree.
type BodyPart struct {
	// PartNo is the dotted IMAP part number, e.g. "1" or "2.1.3".
	PartNo string
	// Raw is the parenthesised text of the part.
	Raw string
	// Parsed is set for single parts.
	Parsed *BodyPartParsed
	// Child is set for multipart parts.
	Child *BodyNode
}

// BodyNode is a level of a body structure tree.
type BodyNode struct {
	// Level is the part number of the multipart part owning the node, empty
	// for the root.
	Level string
	Parts []BodyPart
	// Extended contains the multipart subtype followed by any multipart
	// extension data.
	Extended string
}

// Subtype returns the multipart subtype of the node, e.g. "ALTERNATIVE".
func (node *BodyNode) Subtype() string {
	v, _, err := nextBodyValue(node.Extended)
	if err != nil || v == NIL {
		return ""
	}
	return v
}

// BodyWalkFunc is called for each single part visited by BodyNode.Walk. The
// node argument is the node containing the part; data is the value passed to
// Walk.
type BodyWalkFunc func(node *BodyNode, part *BodyPart, data interface{})

// Walk calls f for each single part of the tree, in depth-first pre-order.
//
// Walk must not be called concurrently on the same tree if f mutates data.
func (node *BodyNode) Walk(f BodyWalkFunc, data interface{}) {
	for i := range node.Parts {
		part := &node.Parts[i]
		if part.Child != nil {
			part.Child.Walk(f, data)
		} else {
			f(node, part, data)
		}
	}
}

// ParseBodyStructure builds the body structure tree of a BODYSTRUCTURE
// value, e.g. `(("TEXT" "PLAIN" NIL NIL NIL "7BIT" 12 1) "MIXED")`.
//
// A single part message yields a root node with a single part "1".
func ParseBodyStructure(value string) (*BodyNode, error) {
	value = strings.TrimSpace(value)
	n, ok := imapwire.ScanList(value)
	if !ok || n != len(value) {
		return nil, &ParseError{Message: "malformed body structure", Line: value}
	}

	root := &BodyNode{}
	if !isMultipartBody(value) {
		part, err := newBodyPart(root, value)
		if err != nil {
			return nil, err
		}
		root.Parts = append(root.Parts, part)
		return root, nil
	}
	if err := buildBodyNode(root, value); err != nil {
		return nil, err
	}
	return root, nil
}

func buildBodyNode(node *BodyNode, form string) error {
	rest := form[1 : len(form)-1]
	for {
		rest = strings.TrimLeft(rest, " ")
		if !strings.HasPrefix(rest, "(") {
			break
		}
		n, ok := imapwire.ScanList(rest)
		if !ok {
			return &ParseError{Message: "unbalanced body part", Line: rest}
		}
		part, err := newBodyPart(node, rest[:n])
		if err != nil {
			return err
		}
		node.Parts = append(node.Parts, part)
		rest = rest[n:]
	}
	if len(node.Parts) == 0 {
		return &ParseError{Message: "multipart body without parts", Line: form}
	}
	node.Extended = strings.TrimSpace(rest)
	return nil
}

func newBodyPart(node *BodyNode, raw string) (BodyPart, error) {
	part := BodyPart{
		PartNo: strconv.Itoa(len(node.Parts) + 1),
		Raw:    raw,
	}
	if node.Level != "" {
		part.PartNo = node.Level + "." + part.PartNo
	}

	if isMultipartBody(raw) {
		part.Child = &BodyNode{Level: part.PartNo}
		return part, buildBodyNode(part.Child, raw)
	}

	parsed, err := parseBodyPart(raw)
	if err != nil {
		return part, err
	}
	part.Parsed = parsed
	return part, nil
}

func isMultipartBody(form string) bool {
	return strings.HasPrefix(strings.TrimLeft(form[1:], " "), "(")
}

func parseBodyPart(raw string) (*BodyPartParsed, error) {
	p := &BodyPartParsed{
		Type: NIL, Subtype: NIL, Params: NIL, ID: NIL, Description: NIL,
		Encoding: NIL, Size: NIL, TextLines: NIL, Envelope: NIL, Body: NIL,
		MD5: NIL, Disposition: NIL, Language: NIL, Location: NIL,
	}

	s := raw[1 : len(raw)-1]
	next := func(field *string) error {
		v, rest, err := nextBodyValue(s)
		if err != nil {
			return &ParseError{Message: err.Error(), Line: raw}
		}
		*field, s = v, rest
		return nil
	}
	optional := func(fields ...*string) error {
		for _, field := range fields {
			if strings.TrimLeft(s, " ") == "" {
				return nil
			}
			if err := next(field); err != nil {
				return err
			}
		}
		return nil
	}

	for _, field := range []*string{&p.Type, &p.Subtype, &p.Params, &p.ID, &p.Description, &p.Encoding, &p.Size} {
		if err := next(field); err != nil {
			return nil, err
		}
	}

	switch {
	case strings.EqualFold(p.Type, "TEXT"):
		if err := optional(&p.TextLines); err != nil {
			return nil, err
		}
	case strings.EqualFold(p.Type, "MESSAGE") && (strings.EqualFold(p.Subtype, "RFC822") || strings.EqualFold(p.Subtype, "GLOBAL")):
		if err := optional(&p.Envelope, &p.Body, &p.TextLines); err != nil {
			return nil, err
		}
	}

	if err := optional(&p.MD5, &p.Disposition, &p.Language, &p.Location); err != nil {
		return nil, err
	}
	p.Extended = strings.TrimSpace(s)
	return p, nil
}

type bodyValueError string

func (err bodyValueError) Error() string {
	return string(err)
}

// nextBodyValue peels the first value from s: NIL, a quoted string, a
// parenthesised list, or an atom such as a number.
func nextBodyValue(s string) (value, rest string, err error) {
	s = strings.TrimLeft(s, " ")
	if s == "" {
		return "", "", bodyValueError("missing body field")
	}

	switch s[0] {
	case '"':
		v, n, ok := imapwire.Quoted(s)
		if !ok {
			return "", "", bodyValueError("unterminated quoted string")
		}
		return v, s[n:], nil
	case '(':
		n, ok := imapwire.ScanList(s)
		if !ok {
			return "", "", bodyValueError("unbalanced list")
		}
		return s[:n], s[n:], nil
	case ')':
		return "", "", bodyValueError("unexpected end of list")
	case '{':
		return "", "", bodyValueError("literals are not supported in body structures")
	}

	end := strings.IndexAny(s, " ()")
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return "", "", bodyValueError("empty body field")
	}
	value = s[:end]
	if strings.EqualFold(value, NIL) {
		value = NIL
	}
	return value, s[end:], nil
}

// parseParamList parses a `("NAME" "value" ...)` list. Names are
// upper-cased.
func parseParamList(list string) map[string]string {
	if !strings.HasPrefix(list, "(") || !strings.HasSuffix(list, ")") {
		return nil
	}
	params := make(map[string]string)
	s := list[1 : len(list)-1]
	for strings.TrimLeft(s, " ") != "" {
		name, rest, err := nextBodyValue(s)
		if err != nil {
			break
		}
		value, rest, err := nextBodyValue(rest)
		if err != nil {
			break
		}
		params[strings.ToUpper(name)] = value
		s = rest
	}
	return params
}
