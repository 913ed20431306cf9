package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCommandLine(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		cmd   string
		key   string
		value string
	}{
		{"insert", `insert a 1`, "insert", "a", "1"},
		{"quoted value", `insert greeting "hello world"`, "insert", "greeting", "hello world"},
		{"quoted key", `get "my key"`, "get", "my key", ""},
		{"update", `update a 2`, "update", "a", "2"},
		{"delete", `delete a`, "delete", "a", ""},
		{"has", `has a`, "has", "a", ""},
		{"keys", `keys`, "keys", "", ""},
		{"count", `count`, "count", "", ""},
		{"uppercase command", `GET a`, "get", "a", ""},
		{"exit", `exit`, "exit", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, key, value, err := SplitCommandLine(tc.line)
			assert.Nil(t, err)
			assert.Equal(t, tc.cmd, cmd)
			assert.Equal(t, tc.key, key)
			assert.Equal(t, tc.value, value)
		})
	}
}

func TestSplitCommandLineErrors(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"unknown command", `frobnicate a`},
		{"get missing key", `get`},
		{"get extra args", `get a b`},
		{"insert missing value", `insert a`},
		{"insert extra args", `insert a 1 2`},
		{"keys with args", `keys a`},
		{"unterminated quote", `insert a "oops`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := SplitCommandLine(tc.line)
			assert.NotNil(t, err)
		})
	}
}

func TestSplitCommandLineEmpty(t *testing.T) {
	_, _, _, err := SplitCommandLine("")
	assert.ErrorIs(t, err, ErrEmptyLine)

	_, _, _, err = SplitCommandLine("   ")
	assert.ErrorIs(t, err, ErrEmptyLine)
}
