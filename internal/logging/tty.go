package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fdWriter is satisfied by os.File and by writers wrapping one while
// exposing the underlying descriptor.
type fdWriter interface {
	Fd() uintptr
}

// IsTTY reports whether w writes to an interactive terminal. The log
// handler uses this to decide between colorized and plain output when
// stderr is piped or captured.
func IsTTY(w io.Writer) bool {
	f, ok := w.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI escape sequences are safe to emit
// on w. Color requires a terminal and is disabled when NO_COLOR is set
// (https://no-color.org) or TERM is "dumb".
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	if !isTTY {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
