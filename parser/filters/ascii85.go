package filters

import (
	"encoding/ascii85"
	"errors"

	"github.com/benkirche/pdfcs/objects"
)

var errAscii85Unterminated = errors.New("ascii85: missing ~> end-of-data marker")

type ascii85Codec struct{}

func (ascii85Codec) Skip(data []byte) (int, error) {
	r := newReacher(data, []byte("~>"))
	n := r.consumed()
	if n < 0 {
		return 0, errAscii85Unterminated
	}
	return n, nil
}

func (c ascii85Codec) Decode(data []byte, _ objects.Dict) ([]byte, int, error) {
	n, err := c.Skip(data)
	if err != nil {
		return nil, 0, err
	}
	src := data[:n-2] // strip the "~>" terminator stdlib does not expect
	dst := make([]byte, len(src))
	ndst, _, err := ascii85.Decode(dst, src, true)
	if err != nil {
		return nil, 0, err
	}
	return dst[:ndst], n, nil
}
