package lexer

import (
	"testing"

	"stencil/internal/source"
)

func newTestFile(input string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("cursor.tmpl", []byte(input))
	return fs.Get(id)
}

func TestCursorBasics(t *testing.T) {
	c := NewCursor(newTestFile("ab"))

	if c.EOF() {
		t.Fatal("fresh cursor reports EOF")
	}
	if got := c.Peek(); got != 'a' {
		t.Errorf("Peek() = %q, want 'a'", got)
	}

	b0, b1, ok := c.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("Peek2() = %q %q %v", b0, b1, ok)
	}

	c.Advance(2)
	if !c.EOF() {
		t.Error("cursor not at EOF after consuming everything")
	}
	if got := c.Peek(); got != 0 {
		t.Errorf("Peek() at EOF = %q, want 0", got)
	}
	if _, _, ok := c.Peek2(); ok {
		t.Error("Peek2() at EOF reports ok")
	}
}

func TestCursorPeek2AtLastByte(t *testing.T) {
	c := NewCursor(newTestFile("x"))
	if _, _, ok := c.Peek2(); ok {
		t.Error("Peek2() with one byte left reports ok")
	}
}

func TestCursorAdvanceClampsToLimit(t *testing.T) {
	c := NewCursor(newTestFile("abc"))
	c.Advance(10)
	if c.Off != 3 {
		t.Errorf("Off = %d after over-advance, want 3", c.Off)
	}
	if got := len(c.Rest()); got != 0 {
		t.Errorf("Rest() has %d bytes at EOF", got)
	}
}

func TestCursorSpanFrom(t *testing.T) {
	f := newTestFile("hello")
	c := NewCursor(f)

	m := c.Mark()
	c.Advance(3)
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 3 || sp.File != f.ID {
		t.Errorf("SpanFrom = %v, want 0:0-3", sp)
	}
	if got := string(sp.Bytes(f.Content)); got != "hel" {
		t.Errorf("span bytes = %q, want \"hel\"", got)
	}

	c.Reset(m)
	if c.Off != 0 {
		t.Errorf("Off = %d after Reset, want 0", c.Off)
	}
}

func TestCursorRest(t *testing.T) {
	c := NewCursor(newTestFile("abcdef"))
	c.Advance(2)
	if got := string(c.Rest()); got != "cdef" {
		t.Errorf("Rest() = %q, want \"cdef\"", got)
	}
}
