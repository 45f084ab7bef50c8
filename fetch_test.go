package imap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	imap "github.com/emersion/go-imapparse"
)

func TestFetchMessage_Literal(t *testing.T) {
	msg := &imap.FetchMessage{
		Index: 3,
		Items: map[string]string{
			"UID":                                "4",
			"* 3 FETCH (UID 4 BODY[1]":           "one",
			"BODY[1.2]":                          "one-two",
			"* 3 FETCH (UID 4 body.peek[HEADER]": "header",
		},
	}

	tests := []struct {
		item string
		want string
		ok   bool
	}{
		{"BODY[1]", "one", true},
		{"BODY[1.2]", "one-two", true},
		{"body[1.2]", "one-two", true},
		{"BODY.PEEK[HEADER]", "header", true},
		{"[1]", "", false},
		{"BODY[2]", "", false},
	}
	for _, tc := range tests {
		v, ok := msg.Literal(tc.item)
		assert.Equal(t, tc.ok, ok, tc.item)
		assert.Equal(t, tc.want, v, tc.item)
	}

	v, ok := msg.BodySection("HEADER")
	assert.True(t, ok)
	assert.Equal(t, "header", v)
}

func TestFetchMessage_Item(t *testing.T) {
	msg := &imap.FetchMessage{Items: map[string]string{"Flags": `(\Seen)`, "UID": "x"}}

	v, ok := msg.Item("FLAGS")
	assert.True(t, ok)
	assert.Equal(t, `(\Seen)`, v)

	_, ok = msg.UID()
	assert.False(t, ok)

	_, err := msg.BodyStructure()
	assert.Error(t, err)
}

func TestFetchMessage_Header(t *testing.T) {
	raw := "From: Jane <jane@example.org>\r\n" +
		"Subject: =?UTF-8?Q?caf=C3=A9?=\r\n" +
		"Message-Id: <abc@example.org>\r\n" +
		"\r\n"
	msg := &imap.FetchMessage{
		Index: 9,
		Items: map[string]string{"* 9 FETCH (BODY[HEADER]": raw},
	}

	h, err := msg.Header()
	require.NoError(t, err)

	subject, err := h.Subject()
	require.NoError(t, err)
	assert.Equal(t, "café", subject)

	from, err := h.AddressList("From")
	require.NoError(t, err)
	require.Len(t, from, 1)
	assert.Equal(t, "jane@example.org", from[0].Address)

	id, err := h.MessageID()
	require.NoError(t, err)
	assert.Equal(t, "abc@example.org", id)

	_, err = (&imap.FetchMessage{}).Header()
	assert.Error(t, err)
}
