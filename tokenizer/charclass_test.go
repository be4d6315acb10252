package tokenizer

import "testing"

func TestIsWhitespace(t *testing.T) {
	for _, b := range []byte{0, '\t', '\n', '\f', '\r', ' '} {
		if !IsWhitespace(b) {
			t.Errorf("IsWhitespace(%q) = false, want true", b)
		}
	}
	if IsWhitespace('a') {
		t.Errorf("IsWhitespace('a') = true, want false")
	}
}

func TestIsDelimiter(t *testing.T) {
	for _, b := range []byte("()<>[]{}/%") {
		if !IsDelimiter(b) {
			t.Errorf("IsDelimiter(%q) = false, want true", b)
		}
	}
	if IsDelimiter('a') {
		t.Errorf("IsDelimiter('a') = true, want false")
	}
}

func TestCursorBounds(t *testing.T) {
	c := NewCursor([]byte("ab"))
	b, ok := c.Advance()
	if !ok || b != 'a' {
		t.Fatalf("Advance() = %q, %v, want 'a', true", b, ok)
	}
	c.Rewind(1)
	if c.Pos() != 0 {
		t.Fatalf("Pos() after Rewind = %d, want 0", c.Pos())
	}
	c.SetPos(2)
	if _, ok := c.Peek(); ok {
		t.Fatalf("Peek() at end: ok = true, want false")
	}
	if c.InBounds() {
		t.Fatalf("InBounds() at end: true, want false")
	}
}
