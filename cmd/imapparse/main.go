package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	imap "github.com/emersion/go-imapparse"
	"github.com/emersion/go-imapparse/imapresp"
)

var (
	command  string
	response string
	debug    bool
)

func main() {
	flag.StringVar(&command, "command", "", "Command line sent to the server (default: first line of the response)")
	flag.StringVar(&response, "response", "-", "File containing the server response, - for stdin")
	flag.BoolVar(&debug, "debug", false, "Print the raw response")
	flag.Parse()

	var r io.Reader = os.Stdin
	if response != "-" {
		f, err := os.Open(response)
		if err != nil {
			log.Fatalf("Failed to open response: %v", err)
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}

	var debugWriter io.Writer
	if debug {
		debugWriter = os.Stderr
	}
	parser := imapresp.New(&imapresp.Options{DebugWriter: debugWriter})

	var resp imap.Response
	if command != "" {
		resp, err = parser.Parse(command, string(b))
	} else {
		resp, err = parser.ParseResponse(string(b))
	}
	if err != nil {
		log.Fatalf("Failed to parse response: %v", err)
	}

	printResponse(os.Stdout, resp)
	if err := resp.Header().Err(); err != nil {
		log.Fatal(err)
	}
}

func printResponse(w io.Writer, resp imap.Response) {
	hdr := resp.Header()
	fmt.Fprintf(w, "%v: status=%v bye=%v\n", hdr.Command, hdr.Status, hdr.Bye)

	switch resp := resp.(type) {
	case *imap.ListResponse:
		for _, mbox := range resp.Mailboxes {
			name, err := mbox.DecodedName()
			if err != nil {
				name = mbox.Name
			}
			fmt.Fprintf(w, "mailbox %q delim=%q attrs=%v\n", name, mbox.Delim, mbox.Attrs)
		}
	case *imap.SelectResponse:
		fmt.Fprintf(w, "mailbox %q access=%v\n", resp.Mailbox, resp.Access)
		printItems(w, resp.Items)
	case *imap.SearchResponse:
		fmt.Fprintf(w, "indexes %v\n", resp.Indexes)
	case *imap.StatusResponse:
		fmt.Fprintf(w, "mailbox %v\n", resp.Mailbox)
		printItems(w, resp.Items)
	case *imap.ExpungeResponse:
		fmt.Fprintf(w, "expunged %v exists %v recent %v\n", resp.Expunged, resp.Exists, resp.Recent)
	case *imap.StoreResponse:
		for _, msg := range resp.Messages {
			fmt.Fprintf(w, "message %v flags %v\n", msg.Index, msg.Flags)
		}
	case *imap.CapabilityResponse:
		fmt.Fprintf(w, "capabilities %v\n", resp.Caps())
	case *imap.NoopResponse:
		for _, line := range resp.Raw {
			fmt.Fprintln(w, line)
		}
	case *imap.LogoutResponse:
		for _, line := range resp.Raw {
			fmt.Fprintln(w, line)
		}
	case *imap.FetchResponse:
		for i := range resp.Messages {
			printFetchMessage(w, &resp.Messages[i])
		}
	}
}

func printFetchMessage(w io.Writer, msg *imap.FetchMessage) {
	fmt.Fprintf(w, "message %v\n", msg.Index)
	printItems(w, msg.Items)

	if h, err := msg.Header(); err == nil {
		if subject, err := h.Subject(); err == nil {
			fmt.Fprintf(w, "  subject: %v\n", subject)
		}
	}

	if _, ok := msg.Item(imap.BodyStructureName); !ok {
		return
	}
	node, err := msg.BodyStructure()
	if err != nil {
		log.Printf("Invalid body structure of message %v: %v", msg.Index, err)
		return
	}
	node.Walk(func(node *imap.BodyNode, part *imap.BodyPart, data interface{}) {
		fmt.Fprintf(w, "  part %v: %v\n", part.PartNo, part.Parsed.MediaType())
	}, nil)
	for _, att := range imap.Attachments(msg.Index, node) {
		fmt.Fprintf(w, "  attachment %v: %q (%v)\n", att.PartNo, att.FileName, att.Encoding)
	}
}

func printItems(w io.Writer, items map[string]string) {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %v: %q\n", k, items[k])
	}
}
