package diag

import (
	"bytes"
	"strings"
	"testing"
)

type console struct {
	lines []string
	cur   strings.Builder
}

func (c *console) Print(s string) error {
	c.cur.WriteString(s)
	return nil
}

func (c *console) Println(s string) error {
	c.cur.WriteString(s)
	c.lines = append(c.lines, c.cur.String())
	c.cur.Reset()
	return nil
}

func TestLoggerSerialOnly(t *testing.T) {
	var out bytes.Buffer
	l := New(&out)
	l.Print("Connecting to Wi-Fi")
	l.Print(".")
	l.Println("")
	l.Printf("IP: %s\r\n", "10.0.0.2")

	want := "Connecting to Wi-Fi.\r\nIP: 10.0.0.2\r\n"
	if out.String() != want {
		t.Fatalf("serial = %q, want %q", out.String(), want)
	}
}

func TestLoggerMirrorsWhileAttached(t *testing.T) {
	var out bytes.Buffer
	con := &console{}
	l := New(&out)

	l.Println("before")
	l.Attach(con)
	l.Print("RTC ")
	l.Println("ok")
	l.Detach()
	l.Println("after")

	if len(con.lines) != 1 || con.lines[0] != "RTC ok" {
		t.Fatalf("console lines = %q", con.lines)
	}
	if !strings.Contains(out.String(), "before") || !strings.Contains(out.String(), "after") {
		t.Fatalf("serial missing lines: %q", out.String())
	}
}

func TestLoggerNilWriter(t *testing.T) {
	l := New(nil)
	l.Println("dropped")
}
