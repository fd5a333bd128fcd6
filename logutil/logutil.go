// Package logutil prints leveled messages to stderr. Debug messages are only
// shown when EnableDebug is set, e.g. with --debug.
package logutil

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var EnableDebug bool

var (
	mu  sync.Mutex
	out io.Writer = colorable.NewColorableStderr()

	debugTag = color.New(color.FgHiBlack).SprintFunc()
	infoTag  = color.New(color.FgBlue, color.Bold).SprintFunc()
	errorTag = color.New(color.FgRed, color.Bold).SprintFunc()
)

func init() {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
}

// SetOutput redirects all messages to w and returns a function that restores
// the previous writer. Mostly useful in tests.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return func() {
		mu.Lock()
		defer mu.Unlock()
		out = prev
	}
}

func Debugf(format string, args ...any) {
	if !EnableDebug {
		return
	}
	printf(debugTag("debug"), format, args...)
}

func Infof(format string, args ...any) {
	printf(infoTag("info"), format, args...)
}

func Errorf(format string, args ...any) {
	printf(errorTag("error"), format, args...)
}

func printf(tag, format string, args ...any) {
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s: %s\n", tag, msg)
}
