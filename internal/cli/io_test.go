package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalReadInputTrims(t *testing.T) {
	var out strings.Builder
	terminal := New(strings.NewReader("  admin  \n"), &out)

	got, err := terminal.ReadInput("Username: ")
	require.NoError(t, err)
	assert.Equal(t, "admin", got)
	assert.Equal(t, "Username: ", out.String())
}

func TestTerminalReadInputKeepsBufferedLines(t *testing.T) {
	var out strings.Builder
	terminal := New(strings.NewReader("first\nsecond\n"), &out)

	first, err := terminal.ReadInput("> ")
	require.NoError(t, err)
	second, err := terminal.ReadInput("> ")
	require.NoError(t, err)

	assert.Equal(t, "first", first)
	assert.Equal(t, "second", second)
}

func TestTerminalReadInputUnterminatedLastLine(t *testing.T) {
	var out strings.Builder
	terminal := New(strings.NewReader("admin"), &out)

	got, err := terminal.ReadInput("> ")
	require.NoError(t, err)
	assert.Equal(t, "admin", got)
}
