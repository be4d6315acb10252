package filters

import (
	"errors"

	"github.com/benkirche/pdfcs/objects"
)

var errAsciiHexUnterminated = errors.New("asciihex: missing > end-of-data marker")

type asciiHexCodec struct{}

func (asciiHexCodec) Skip(data []byte) (int, error) {
	r := newReacher(data, []byte(">"))
	n := r.consumed()
	if n < 0 {
		return 0, errAsciiHexUnterminated
	}
	return n, nil
}

func (c asciiHexCodec) Decode(data []byte, _ objects.Dict) ([]byte, int, error) {
	n, err := c.Skip(data)
	if err != nil {
		return nil, 0, err
	}
	span := data[:n-1]
	out := make([]byte, 0, len(span)/2+1)
	var hi byte
	haveHi := false
	for _, b := range span {
		v, ok := hexDigit(b)
		if !ok {
			continue
		}
		if !haveHi {
			hi = v
			haveHi = true
			continue
		}
		out = append(out, hi<<4|v)
		haveHi = false
	}
	if haveHi {
		out = append(out, hi<<4)
	}
	return out, n, nil
}

func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
