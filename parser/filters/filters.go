// Package filters implements FilterDispatch: the bridge between an
// inline image's filter name(s) and the external, low-level stream
// codecs. It mirrors the teacher's reader/parser/filters package
// (Skipper interface, SkipperFromFilter dispatch switch) generalized
// to also return decoded bytes when the caller asks for them, since
// the teacher's own Skipper only ever needs the consumed-byte count.
package filters

import (
	"errors"

	"github.com/benkirche/pdfcs/objects"
)

// Filter name constants, as they appear in a PDF content stream's
// inline image dictionary (either directly or abbreviated).
const (
	ASCII85   = "ASCII85Decode"
	ASCIIHex  = "ASCIIHexDecode"
	RunLength = "RunLengthDecode"
	LZW       = "LZWDecode"
	Flate     = "FlateDecode"
	DCT       = "DCTDecode"
	CCITTFax  = "CCITTFaxDecode"
)

var abbreviations = map[objects.Name]string{
	"AHx": ASCIIHex,
	"A85": ASCII85,
	"LZW": LZW,
	"Fl":  Flate,
	"RL":  RunLength,
	"CCF": CCITTFax,
	"DCT": DCT,
}

// CanonicalName resolves an inline image's abbreviated filter name
// (e.g. /Fl) to its full form (FlateDecode); full names pass through
// unchanged.
func CanonicalName(n objects.Name) string {
	if full, ok := abbreviations[n]; ok {
		return full
	}
	return string(n)
}

// ErrUnsupportedFilter means FilterDispatch was asked for a filter
// name it does not recognize.
var ErrUnsupportedFilter = errors.New("filters: unsupported filter name")

// ErrCodecFailure wraps any error a concrete codec returned while
// skipping or decoding - a CodecFailure in the spec's error taxonomy.
type ErrCodecFailure struct {
	Filter string
	Err    error
}

func (e *ErrCodecFailure) Error() string {
	return "filters: " + e.Filter + ": " + e.Err.Error()
}

func (e *ErrCodecFailure) Unwrap() error { return e.Err }

// skipper determines, for an already-filtered byte span, how many
// input bytes the codec would consume before hitting its own
// end-of-data marker - used when the inline-image reader only needs
// to find EI without materializing decoded pixels.
type skipper interface {
	Skip(data []byte) (consumed int, err error)
}

// decoder fully decodes an already-filtered byte span, also reporting
// how many input bytes it consumed (some codecs, like Flate, can decode
// without knowing the consumed length in advance and report it as a
// side effect).
type decoder interface {
	Decode(data []byte, parms objects.Dict) (decoded []byte, consumed int, err error)
}

type codec interface {
	skipper
	decoder
}

func codecFor(name string, parms objects.Dict) (codec, error) {
	switch name {
	case ASCII85:
		return ascii85Codec{}, nil
	case ASCIIHex:
		return asciiHexCodec{}, nil
	case RunLength:
		return runLengthCodec{}, nil
	case LZW:
		return lzwCodec{earlyChange: earlyChangeParam(parms)}, nil
	case Flate:
		return flateCodec{parms: parms}, nil
	case CCITTFax:
		return ccittCodec{parms: processCCITTParams(parms)}, nil
	case DCT:
		return dctCodec{}, nil
	default:
		return nil, ErrUnsupportedFilter
	}
}

func earlyChangeParam(parms objects.Dict) bool {
	if parms == nil {
		return true
	}
	if v, ok := parms["EarlyChange"].(objects.Number); ok {
		return v != 0
	}
	return true
}

// Dispatch resolves name (canonicalized) against the supported codec
// table and either skips or decodes data accordingly. When decode is
// false it returns only the consumed byte count, matching the
// teacher's Skipper contract; when true it also returns the decoded
// bytes.
func Dispatch(name objects.Name, parms objects.Dict, data []byte, decode bool) (consumed int, decoded []byte, err error) {
	c, err := codecFor(CanonicalName(name), parms)
	if err != nil {
		return 0, nil, err
	}
	if !decode {
		n, err := c.Skip(data)
		if err != nil {
			return 0, nil, &ErrCodecFailure{Filter: CanonicalName(name), Err: err}
		}
		return n, nil, nil
	}
	out, n, err := c.Decode(data, parms)
	if err != nil {
		return 0, nil, &ErrCodecFailure{Filter: CanonicalName(name), Err: err}
	}
	return n, out, nil
}
