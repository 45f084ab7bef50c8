// Package imapresp parses IMAP server responses.
//
// A response is the text received from the server after a tagged command was
// sent, up to and including the tagged completion line. The parser performs
// no I/O: the caller hands over the command line and the response text, and
// gets back a typed imap.Response.
//
// Tagged NO and BAD completions and untagged BYE responses are reported in
// the response header. Only responses which can't be understood produce an
// error, of type *imap.ParseError.
package imapresp

import (
	"io"
	"log"
	"strings"

	imap "github.com/emersion/go-imapparse"
	"github.com/emersion/go-imapparse/internal/imapwire"
)

// Logger receives server advisories such as untagged NO and BAD responses.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Options contains options for Parser.
type Options struct {
	// Logger receives server advisories. If nil, log.Default() is used.
	Logger Logger
	// Raw response text will be written to this writer, if any
	DebugWriter io.Writer
}

func (options *Options) logger() Logger {
	if options.Logger == nil {
		return log.Default()
	}
	return options.Logger
}

// Parser parses IMAP responses.
//
// A Parser holds no per-response state and is safe for concurrent use.
type Parser struct {
	options Options
}

// New creates a new parser.
//
// A nil options pointer is equivalent to a zero options value.
func New(options *Options) *Parser {
	if options == nil {
		options = &Options{}
	}
	return &Parser{options: *options}
}

var defaultParser = New(nil)

// Parse parses the response to a command with the default parser.
func Parse(command, response string) (imap.Response, error) {
	return defaultParser.Parse(command, response)
}

// ParseResponse parses a command line followed by its response with the
// default parser.
func ParseResponse(text string) (imap.Response, error) {
	return defaultParser.ParseResponse(text)
}

// Parse parses the response to a command. The command is the line sent to
// the server, without its CRLF, e.g. `A001 SELECT "INBOX"`.
func (p *Parser) Parse(command, response string) (imap.Response, error) {
	command = strings.TrimRight(command, "\r\n")
	if command == "" {
		return nil, &imap.ParseError{Message: "empty command line"}
	}

	if p.options.DebugWriter != nil {
		io.WriteString(p.options.DebugWriter, response)
	}

	name := imapwire.CommandName(command)
	cmd := imap.ParseCommand(name)
	pc := &parseContext{
		tag:         imapwire.Tag(command),
		name:        name,
		commandLine: command,
		stream:      imapwire.NewStream(response),
		logger:      p.options.logger(),
		header: imap.ResponseHeader{
			Command: cmd,
			UID:     imapwire.IsUID(command),
		},
	}
	resp, err := parserFor(cmd)(pc)
	if err != nil {
		return nil, err
	}

	hdr := resp.Header()
	if hdr.Status == "" && !hdr.Bye {
		return nil, &imap.ParseError{Message: "missing tagged completion", Line: pc.stream.Line()}
	}
	return resp, nil
}

// ParseResponse parses a command line followed by its response. The first
// line of text is the command line.
func (p *Parser) ParseResponse(text string) (imap.Response, error) {
	command := text
	response := ""
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		command, response = text[:i], text[i+1:]
	}
	return p.Parse(command, response)
}

type parseFunc func(pc *parseContext) (imap.Response, error)

var parsers = map[imap.Command]parseFunc{
	imap.CommandList:       parseList,
	imap.CommandLsub:       parseList,
	imap.CommandSearch:     parseSearch,
	imap.CommandSelect:     parseSelect,
	imap.CommandExamine:    parseSelect,
	imap.CommandStatus:     parseStatus,
	imap.CommandExpunge:    parseExpunge,
	imap.CommandStore:      parseStore,
	imap.CommandCapability: parseCapability,
	imap.CommandFetch:      parseFetch,
	imap.CommandNoop:       parseNoop,
	imap.CommandIdle:       parseNoop,
	imap.CommandLogout:     parseLogout,
}

func parserFor(cmd imap.Command) parseFunc {
	if f, ok := parsers[cmd]; ok {
		return f
	}
	return parseGeneric
}

// parseContext holds the state of a single parse.
type parseContext struct {
	tag         string
	name        string
	commandLine string
	stream      *imapwire.Stream
	logger      Logger
	header      imap.ResponseHeader
}

// lines calls f for each response line. Empty lines are skipped.
func (pc *parseContext) lines(f func(line string) error) error {
	for {
		line, ok := pc.stream.ReadLine()
		if !ok {
			return nil
		}
		if line == "" {
			continue
		}
		if err := f(line); err != nil {
			return err
		}
	}
}

func parseGeneric(pc *parseContext) (imap.Response, error) {
	resp := &imap.GenericResponse{ResponseHeader: pc.header}
	err := pc.lines(func(line string) error {
		return pc.resolveStatus(line, &resp.ResponseHeader)
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
