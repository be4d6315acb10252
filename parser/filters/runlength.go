package filters

import (
	"errors"

	"github.com/benkirche/pdfcs/objects"
)

var errRunLengthUnterminated = errors.New("runlength: missing 0x80 end-of-data byte")

type runLengthCodec struct{}

// Skip and decode share one walk: RunLengthDecode is self-terminating
// on the 0x80 length byte, so both need the same scan.
func (runLengthCodec) scan(data []byte, collect bool) (out []byte, consumed int, err error) {
	i := 0
	for i < len(data) {
		length := data[i]
		i++
		switch {
		case length == 128:
			return out, i, nil
		case length < 128:
			n := int(length) + 1
			if i+n > len(data) {
				return out, 0, errRunLengthUnterminated
			}
			if collect {
				out = append(out, data[i:i+n]...)
			}
			i += n
		default: // 129-255
			if i >= len(data) {
				return out, 0, errRunLengthUnterminated
			}
			b := data[i]
			i++
			if collect {
				count := 257 - int(length)
				for k := 0; k < count; k++ {
					out = append(out, b)
				}
			}
		}
	}
	return out, 0, errRunLengthUnterminated
}

func (c runLengthCodec) Skip(data []byte) (int, error) {
	_, n, err := c.scan(data, false)
	return n, err
}

func (c runLengthCodec) Decode(data []byte, _ objects.Dict) ([]byte, int, error) {
	out, n, err := c.scan(data, true)
	return out, n, err
}
