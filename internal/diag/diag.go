// Package diag writes bring-up diagnostics to the serial console and, once a
// display is up, to an on-screen status buffer as well.
//
// Diagnostics are plain text. Nothing reads them back.
package diag

import (
	"fmt"
	"io"
)

// Console is an on-screen text sink. *textbuf.Buffer satisfies it.
type Console interface {
	Print(s string) error
	Println(s string) error
}

type Logger struct {
	out io.Writer
	con Console
}

// New returns a Logger writing to out. A nil out discards serial output.
func New(out io.Writer) *Logger {
	if out == nil {
		out = io.Discard
	}
	return &Logger{out: out}
}

// Attach mirrors subsequent output onto con.
func (l *Logger) Attach(con Console) {
	l.con = con
}

// Detach stops mirroring to the screen, so the display belongs to the caller again.
func (l *Logger) Detach() {
	l.con = nil
}

func (l *Logger) Print(s string) {
	_, _ = io.WriteString(l.out, s)
	if l.con != nil {
		_ = l.con.Print(s)
	}
}

func (l *Logger) Println(s string) {
	_, _ = io.WriteString(l.out, s+"\r\n")
	if l.con != nil {
		_ = l.con.Println(s)
	}
}

func (l *Logger) Printf(format string, args ...any) {
	l.Print(fmt.Sprintf(format, args...))
}
