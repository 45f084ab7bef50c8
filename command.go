package imap

import (
	"strings"
)

// Command is an IMAP command keyword.
type Command int

const (
	CommandUnknown Command = iota
	CommandStartTLS
	CommandAuthenticate
	CommandLogin
	CommandCapability
	CommandSelect
	CommandExamine
	CommandCreate
	CommandDelete
	CommandRename
	CommandSubscribe
	CommandUnsubscribe
	CommandList
	CommandLsub
	CommandStatus
	CommandAppend
	CommandCheck
	CommandClose
	CommandExpunge
	CommandSearch
	CommandFetch
	CommandStore
	CommandCopy
	CommandUID
	CommandNoop
	CommandLogout
	CommandIdle
)

var commandNames = [...]string{
	CommandUnknown:      "",
	CommandStartTLS:     "STARTTLS",
	CommandAuthenticate: "AUTHENTICATE",
	CommandLogin:        "LOGIN",
	CommandCapability:   "CAPABILITY",
	CommandSelect:       "SELECT",
	CommandExamine:      "EXAMINE",
	CommandCreate:       "CREATE",
	CommandDelete:       "DELETE",
	CommandRename:       "RENAME",
	CommandSubscribe:    "SUBSCRIBE",
	CommandUnsubscribe:  "UNSUBSCRIBE",
	CommandList:         "LIST",
	CommandLsub:         "LSUB",
	CommandStatus:       "STATUS",
	CommandAppend:       "APPEND",
	CommandCheck:        "CHECK",
	CommandClose:        "CLOSE",
	CommandExpunge:      "EXPUNGE",
	CommandSearch:       "SEARCH",
	CommandFetch:        "FETCH",
	CommandStore:        "STORE",
	CommandCopy:         "COPY",
	CommandUID:          "UID",
	CommandNoop:         "NOOP",
	CommandLogout:       "LOGOUT",
	CommandIdle:         "IDLE",
}

var commandsByName = func() map[string]Command {
	m := make(map[string]Command, len(commandNames))
	for cmd, name := range commandNames {
		if name != "" {
			m[name] = Command(cmd)
		}
	}
	return m
}()

// ParseCommand returns the command with the given keyword. The keyword is
// matched case-insensitively. CommandUnknown is returned for keywords outside
// of the supported set.
func ParseCommand(name string) Command {
	return commandsByName[strings.ToUpper(name)]
}

// String returns the upper-case command keyword.
func (cmd Command) String() string {
	if cmd < 0 || int(cmd) >= len(commandNames) {
		return ""
	}
	return commandNames[cmd]
}
