package main

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/charmbracelet/fang"
	"github.com/maelvls/dungeonname/errutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func withoutANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

func Test_withoutANSI(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"\x1b[1;34mHello\x1b[0m", "Hello"},
		{"\x1b[1;34mHello\x1b[0m \x1b[1;34mWorld\x1b[0m", "Hello World"},
		{"\x1b[38;5;1m", ""},
		{"\x1b[90m", ""},
		{"\x1b[38;5;34m foobar \x1b[0m", " foobar "},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result := withoutANSI(test.input)
			if result != test.expected {
				t.Errorf("Expected %q but got %q", test.expected, result)
			}
		})
	}
}

func Test_userAgent(t *testing.T) {
	assert.Equal(t, "dungeonname/dev", userAgent())

	old := version
	version = "v1.2.3"
	defer func() { version = old }()
	assert.Equal(t, "dungeonname/v1.2.3", userAgent())
}

func TestErrorHandler(t *testing.T) {
	t.Run("fixable error gets a hint", func(t *testing.T) {
		var buf bytes.Buffer
		errorHandler(&buf, fang.Styles{}, errutil.Fixable(fmt.Errorf("while loading vocabulary: %w", errors.New("bad file"))))

		out := withoutANSI(buf.String())
		assert.Contains(t, out, "while loading vocabulary: bad file")
		assert.Contains(t, out, "Fix the input mentioned above")
	})

	t.Run("other errors get no hint", func(t *testing.T) {
		var buf bytes.Buffer
		errorHandler(&buf, fang.Styles{}, errors.New("HTTP 500"))

		out := withoutANSI(buf.String())
		assert.Contains(t, out, "HTTP 500")
		assert.NotContains(t, out, "Fix the input")
	})
}

func TestRootCmd(t *testing.T) {
	cmd := rootCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"gen", "ui", "vocab", "serve", "api"} {
		assert.Contains(t, names, want)
	}

	require.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("vocab"))

	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Generate names for dungeons")
}
