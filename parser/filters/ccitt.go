package filters

import (
	"bytes"
	"io"

	"golang.org/x/image/ccitt"

	"github.com/benkirche/pdfcs/objects"
)

// ccittParams mirrors the teacher's processCCITTFaxParams
// (reader/parser/parser.go) defaulting rules, adapted from the CCITT
// decoder's own CCITTParams onto golang.org/x/image/ccitt's Mode/Order
// and per-call dimensions.
type ccittParams struct {
	mode    ccitt.Mode
	columns int
	rows    int
	opts    ccitt.Options
}

func processCCITTParams(parms objects.Dict) ccittParams {
	columns := intParam(parms, "Columns", 1728)
	rows := intParam(parms, "Rows", 0)
	k := intParam(parms, "K", 0)

	mode := ccitt.Group4
	if k >= 0 {
		mode = ccitt.Group3
	}

	blackIs1 := false
	byteAlign := false
	if parms != nil {
		if v, ok := parms["BlackIs1"].(objects.Boolean); ok {
			blackIs1 = bool(v)
		}
		if v, ok := parms["EncodedByteAlign"].(objects.Boolean); ok {
			byteAlign = bool(v)
		}
	}

	return ccittParams{
		mode:    mode,
		columns: columns,
		rows:    rows,
		opts: ccitt.Options{
			Invert: !blackIs1,
			Align:  byteAlign,
		},
	}
}

type ccittCodec struct {
	parms ccittParams
}

func (c ccittCodec) newReader(cr io.Reader) io.ReadCloser {
	p := c.parms
	return ccitt.NewReader(cr, ccitt.MSB, p.mode, p.columns, p.rows, &p.opts)
}

func (c ccittCodec) Decode(data []byte, _ objects.Dict) ([]byte, int, error) {
	cr := &countReader{r: bytes.NewReader(data)}
	rc := c.newReader(cr)
	defer rc.Close()
	out, err := io.ReadAll(rc)
	if err != nil {
		return nil, 0, err
	}
	return out, cr.n, nil
}

func (c ccittCodec) Skip(data []byte) (int, error) {
	cr := &countReader{r: bytes.NewReader(data)}
	rc := c.newReader(cr)
	defer rc.Close()
	if _, err := io.Copy(io.Discard, rc); err != nil {
		return 0, err
	}
	return cr.n, nil
}
