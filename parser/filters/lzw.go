package filters

import (
	"bytes"
	"io"

	hlzw "github.com/hhrutter/lzw"

	"github.com/benkirche/pdfcs/objects"
)

// lzwCodec decodes PDF's LZWDecode filter via hhrutter/lzw, the fork
// of compress/lzw that implements the PDF/TIFF "early change" code
// width bump stdlib's GIF-oriented compress/lzw does not support.
type lzwCodec struct {
	earlyChange bool
}

func (c lzwCodec) reader(data []byte) io.ReadCloser {
	return hlzw.NewReader(bytes.NewReader(data), c.earlyChange)
}

func (c lzwCodec) Decode(data []byte, parms objects.Dict) ([]byte, int, error) {
	cr := &countReader{r: bytes.NewReader(data)}
	rc := hlzw.NewReader(cr, c.earlyChange)
	defer rc.Close()
	out, err := io.ReadAll(rc)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, 0, err
	}
	out = applyPredictor(out, parms)
	return out, cr.n, nil
}

func (c lzwCodec) Skip(data []byte) (int, error) {
	cr := &countReader{r: bytes.NewReader(data)}
	rc := hlzw.NewReader(cr, c.earlyChange)
	defer rc.Close()
	if _, err := io.Copy(io.Discard, rc); err != nil && err != io.ErrUnexpectedEOF {
		return 0, err
	}
	return cr.n, nil
}
