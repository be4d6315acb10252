// Package tokenizer implements the lowest level of processing of a PDF
// content stream: a bounds-checked byte cursor and the PDF character
// classes that the token scanner in package parser is built on.
//
// Code ported from the teacher's own standalone tokenizer
// (pdftokenizer/prtokenizer.go in the pack) - BK 2020.
package tokenizer

// Cursor is a bounded, read-only view over a borrowed byte buffer.
// It never mutates the buffer and never retains it past its own
// lifetime. Every higher-level read goes through it; running off the
// end is a first-class terminal condition, never a panic.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps data for bounds-checked reading, starting at position 0.
func NewCursor(data []byte) Cursor {
	return Cursor{data: data}
}

// Len returns the total length of the underlying buffer.
func (c Cursor) Len() int { return len(c.data) }

// Pos returns the current byte offset, 0 <= Pos() <= Len().
func (c Cursor) Pos() int { return c.pos }

// SetPos repositions the cursor. Used by callers that need to rewind
// (skip_path_object backtracking, inline-image EI re-scan).
func (c *Cursor) SetPos(p int) {
	if p < 0 {
		p = 0
	}
	if p > len(c.data) {
		p = len(c.data)
	}
	c.pos = p
}

// InBounds reports whether a byte is available at the current position.
func (c Cursor) InBounds() bool {
	return c.pos < len(c.data)
}

// Peek returns the byte at the current position without advancing.
// ok is false at EOF.
func (c Cursor) Peek() (b byte, ok bool) {
	if !c.InBounds() {
		return 0, false
	}
	return c.data[c.pos], true
}

// PeekAt returns the byte at pos without moving the cursor.
func (c Cursor) PeekAt(pos int) (b byte, ok bool) {
	if pos < 0 || pos >= len(c.data) {
		return 0, false
	}
	return c.data[pos], true
}

// Advance consumes and returns the current byte. ok is false at EOF,
// in which case the cursor does not move.
func (c *Cursor) Advance() (b byte, ok bool) {
	if !c.InBounds() {
		return 0, false
	}
	b = c.data[c.pos]
	c.pos++
	return b, true
}

// Rewind moves the cursor back by n bytes (never past 0).
func (c *Cursor) Rewind(n int) {
	c.SetPos(c.pos - n)
}

// Remaining returns the number of unread bytes.
func (c Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Bytes returns the unread suffix of the buffer, without copying.
func (c Cursor) Bytes() []byte {
	if c.pos >= len(c.data) {
		return nil
	}
	return c.data[c.pos:]
}

// Slice returns data[from:to], clamped to the buffer bounds.
func (c Cursor) Slice(from, to int) []byte {
	if from < 0 {
		from = 0
	}
	if to > len(c.data) {
		to = len(c.data)
	}
	if from >= to {
		return nil
	}
	return c.data[from:to]
}

// SkipN advances n bytes (clamped to the remaining length) and
// returns the skipped span, without copying.
func (c *Cursor) SkipN(n int) []byte {
	if n < 0 {
		n = 0
	}
	target := c.pos + n
	if target > len(c.data) {
		target = len(c.data)
	}
	out := c.data[c.pos:target]
	c.pos = target
	return out
}
