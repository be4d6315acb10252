package filters

import (
	"bytes"
	"io"
)

// reacher wraps a byte slice and reports, once a fixed pattern has
// been seen, how many bytes were read to reach the end of that
// pattern - mirroring the teacher's reacher (reader/parser/filters,
// exercised by reacher_test.go's TestReacher): reading stops right
// after the pattern match, not at the end of the underlying buffer.
type reacher struct {
	data    []byte
	pattern []byte
}

func newReacher(data []byte, pattern []byte) *reacher {
	return &reacher{data: data, pattern: pattern}
}

// consumed returns the number of bytes up to and including the first
// occurrence of the pattern, or -1 if the pattern never appears.
func (r *reacher) consumed() int {
	idx := bytes.Index(r.data, r.pattern)
	if idx < 0 {
		return -1
	}
	return idx + len(r.pattern)
}

// countReader wraps an io.Reader and records how many bytes have been
// read through it so far, letting a codec report its consumed length
// even when the underlying decoder does not do so itself. Decoders
// that accept an io.ByteReader (zlib/flate, LZW) read through
// ReadByte and so take only the bytes they decode; a decoder that
// buffers its input ahead is counted for those read-ahead bytes too.
type countReader struct {
	r io.Reader
	n int
}

func (c *countReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}

func (c *countReader) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(c.r, b[:]); err != nil {
		return 0, err
	}
	c.n++
	return b[0], nil
}
