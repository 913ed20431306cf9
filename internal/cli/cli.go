// Package cli parses interactive command lines for the minicask REPL.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ErrEmptyLine is returned for input containing no command.
var ErrEmptyLine = errors.New("empty command line")

// SplitCommandLine splits an interactive input line into a command name,
// key and value. Shell-style quoting is honored, so keys and values may
// contain spaces:
//
//	insert greeting "hello world"
//
// The command name is lower-cased; the expected argument count per command
// is validated here so the caller only deals with well-formed commands.
func SplitCommandLine(line string) (cmd, key, value string, err error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", "", "", fmt.Errorf("parse command line: %w", err)
	}
	if len(words) == 0 {
		return "", "", "", ErrEmptyLine
	}

	cmd = strings.ToLower(words[0])
	args := words[1:]

	switch cmd {
	case "insert", "update":
		if len(args) != 2 {
			return "", "", "", fmt.Errorf("%s expects a key and a value", cmd)
		}
		return cmd, args[0], args[1], nil
	case "get", "delete", "has":
		if len(args) != 1 {
			return "", "", "", fmt.Errorf("%s expects exactly one key", cmd)
		}
		return cmd, args[0], "", nil
	case "keys", "count", "help", "exit":
		if len(args) != 0 {
			return "", "", "", fmt.Errorf("%s takes no arguments", cmd)
		}
		return cmd, "", "", nil
	default:
		return "", "", "", fmt.Errorf("unknown command %q", cmd)
	}
}
