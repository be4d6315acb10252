package filters

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/benkirche/pdfcs/objects"
)

// flateCodec decodes PDF's FlateDecode filter via stdlib compress/zlib,
// matching the teacher's own choice (reader/parser/filters/flateDecode.go
// also reaches for zlib rather than a third-party deflate package), then
// applies the PNG/TIFF predictor post-process the teacher's
// decodePostProcess implements when DecodeParms names one.
type flateCodec struct {
	parms objects.Dict
}

func (c flateCodec) Decode(data []byte, parms objects.Dict) ([]byte, int, error) {
	cr := &countReader{r: bytes.NewReader(data)}
	zr, err := zlib.NewReader(cr)
	if err != nil {
		return nil, 0, err
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, 0, err
	}
	out = applyPredictor(out, parms)
	return out, cr.n, nil
}

func (c flateCodec) Skip(data []byte) (int, error) {
	cr := &countReader{r: bytes.NewReader(data)}
	zr, err := zlib.NewReader(cr)
	if err != nil {
		return 0, err
	}
	defer zr.Close()
	if _, err := io.Copy(io.Discard, zr); err != nil {
		return 0, err
	}
	return cr.n, nil
}

func intParam(parms objects.Dict, key string, def int) int {
	if parms == nil {
		return def
	}
	if v, ok := parms[objects.Name(key)].(objects.Number); ok {
		return int(v)
	}
	return def
}

// applyPredictor reverses the PNG (predictor >= 10) or TIFF (predictor
// == 2) byte-differencing filter DecodeParms may name, following the
// same rowSize/processRow/filterPaeth shape as the teacher's
// flateDecode.go. Predictor 1 (the default, no predictor) is a no-op.
func applyPredictor(data []byte, parms objects.Dict) []byte {
	predictor := intParam(parms, "Predictor", 1)
	if predictor <= 1 {
		return data
	}
	colors := intParam(parms, "Colors", 1)
	bpc := intParam(parms, "BitsPerComponent", 8)
	columns := intParam(parms, "Columns", 1)

	bytesPerPixel := (colors*bpc + 7) / 8
	rowSize := (colors*bpc*columns + 7) / 8

	if predictor == 2 {
		return applyTIFFPredictor(data, rowSize, bytesPerPixel, bpc, colors, columns)
	}
	return applyPNGPredictor(data, rowSize, bytesPerPixel)
}

func applyTIFFPredictor(data []byte, rowSize, bytesPerPixel, bpc, colors, columns int) []byte {
	if bpc != 8 {
		// sub-byte TIFF prediction is rare in content streams; left
		// undone rather than risk a wrong bit-level reconstruction.
		return data
	}
	out := make([]byte, len(data))
	copy(out, data)
	for r := 0; r+rowSize <= len(out); r += rowSize {
		row := out[r : r+rowSize]
		for i := bytesPerPixel; i < len(row); i++ {
			row[i] += row[i-bytesPerPixel]
		}
	}
	return out
}

func applyPNGPredictor(data []byte, rowSize, bpp int) []byte {
	stride := rowSize + 1
	rows := len(data) / stride
	out := make([]byte, 0, rows*rowSize)
	prev := make([]byte, rowSize)
	for r := 0; r < rows; r++ {
		row := data[r*stride+1 : r*stride+stride]
		filterType := data[r*stride]
		cur := make([]byte, rowSize)
		copy(cur, row)
		for i := range cur {
			var a, b, c byte
			if i >= bpp {
				a = cur[i-bpp]
				c = prev[i-bpp]
			}
			b = prev[i]
			switch filterType {
			case 1: // Sub
				cur[i] += a
			case 2: // Up
				cur[i] += b
			case 3: // Average
				cur[i] += byte((int(a) + int(b)) / 2)
			case 4: // Paeth
				cur[i] += paeth(a, b, c)
			}
		}
		out = append(out, cur...)
		prev = cur
	}
	return out
}

func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	switch {
	case pa <= pb && pa <= pc:
		return a
	case pb <= pc:
		return b
	default:
		return c
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
