package parser

import (
	"errors"
	"math"

	"github.com/benkirche/pdfcs/objects"
	"github.com/benkirche/pdfcs/parser/filters"
	"github.com/benkirche/pdfcs/tokenizer"
	"github.com/pdfcpu/pdfcpu/pkg/log"
)

var (
	errInlineDictCorrupt    = errors.New("parser: inline image dictionary key is not a name")
	errInlineDataUnreadable = errors.New("parser: inline image data missing ID")
	errInlineNotTerminated  = errors.New("parser: inline image missing EI")
	// ErrOverflowedGeometry is returned when an inline image's
	// Width/Height/BitsPerComponent/component-count bound overflows a
	// 32-bit signed integer while computing the original (undecoded)
	// payload size.
	ErrOverflowedGeometry = errors.New("parser: inline image geometry overflows")
)

// ReadInlineStream reads a BI ... ID ... EI inline image, the "BI"
// keyword already consumed. It reads the key/value dictionary up to
// "ID", resolves the Filter/DecodeParms (or their abbreviated /F, /DP
// spellings), computes the undecoded payload's geometry bound
// (OrigSize, from Width/Height/BitsPerComponent/color-space component
// count), and finds the payload span: an unfiltered payload spans the
// bound, cut to the bytes left in the buffer; a filtered one spans
// what the first filter's codec consumes, extended by tokenizing
// forward to the real "EI" when decodePayload is false, and falls back
// to the bound when the codec fails. Length is always written back to
// the returned dictionary as the raw span's length. decodePayload
// controls whether the returned Content is a copy of the still-encoded
// span (false) or the fully decoded bytes (true).
func (p *Parser) ReadInlineStream(decodePayload bool) (objects.Stream, error) {
	dict := objects.Dict{}
	for {
		tok := p.NextToken()
		if tok.IsKeyword("ID") {
			break
		}
		if tok.Kind == TokEndOfData {
			log.Parse.Printf("parser: %v\n", errInlineDataUnreadable)
			return objects.Stream{}, errInlineDataUnreadable
		}
		key := p.objectFromToken(tok)
		name, ok := key.(objects.Name)
		if !ok {
			log.Parse.Printf("parser: %v\n", errInlineDictCorrupt)
			return objects.Stream{}, errInlineDictCorrupt
		}
		value := p.ReadObject(true, false)
		if value != nil {
			dict[name] = value
		}
	}

	// exactly one whitespace byte separates "ID" from the raw payload.
	if b, ok := p.cursor.Peek(); ok && tokenizer.IsWhitespace(b) {
		p.cursor.Advance()
	}
	payloadStart := p.cursor.Pos()

	filterNames := resolveFilterNames(dict)
	decodeParms := resolveDecodeParms(dict, len(filterNames))

	origSize, ok := computeOrigSize(dict)
	if !ok {
		log.Parse.Printf("parser: %v\n", ErrOverflowedGeometry)
		return objects.Stream{}, ErrOverflowedGeometry
	}

	var consumed int
	var content []byte

	switch {
	case len(filterNames) == 0:
		remaining := p.cursor.Len() - payloadStart
		n := origSize
		if n > remaining {
			n = remaining
		}
		consumed = n
		content = append([]byte(nil), p.cursor.Slice(payloadStart, payloadStart+n)...)
		p.cursor.SetPos(payloadStart + n)
	default:
		n, decoded, err := p.runFilter(filterNames[0], decodeParms[0], payloadStart, origSize, decodePayload)
		if err != nil {
			log.Parse.Printf("parser: inline image filter dispatch: %v\n", err)
			remaining := p.cursor.Len() - payloadStart
			n = origSize
			if n > remaining {
				n = remaining
			}
			decoded = nil
		}
		consumed = n
		if decodePayload && decoded != nil {
			content = decoded
		} else {
			content = append([]byte(nil), p.cursor.Slice(payloadStart, payloadStart+consumed)...)
		}
		p.cursor.SetPos(payloadStart + consumed)
	}

	dict["Length"] = objects.Number(consumed)

	p.skipWhitespaceAndComments()
	tok := p.NextToken()
	if !tok.IsKeyword("EI") {
		log.Parse.Printf("parser: %v\n", errInlineNotTerminated)
	}

	return objects.Stream{Dict: dict, Content: content}, nil
}

// objectFromToken builds the Object a token already implies without
// re-scanning the buffer - Name/Number tokens decode directly from
// their raw word, Other tokens already carry LastObject.
func (p *Parser) objectFromToken(tok Token) objects.Object {
	switch tok.Kind {
	case TokName:
		return decodeName(tok.Word[1:])
	case TokNumber:
		return parseNumber(tok.Word)
	case TokOther:
		return p.LastObject()
	default:
		return nil
	}
}

func resolveFilterNames(dict objects.Dict) []objects.Name {
	key := objects.Name("Filter")
	v, ok := dict[key]
	if !ok {
		v, ok = dict["F"]
		if !ok {
			return nil
		}
	}
	switch t := v.(type) {
	case objects.Name:
		return []objects.Name{t}
	case objects.Array:
		var names []objects.Name
		for _, el := range t {
			if n, ok := el.(objects.Name); ok {
				names = append(names, n)
			}
		}
		return names
	default:
		return nil
	}
}

func resolveDecodeParms(dict objects.Dict, n int) []objects.Dict {
	v, ok := dict["DecodeParms"]
	if !ok {
		v, ok = dict["DP"]
		if !ok {
			return make([]objects.Dict, n)
		}
	}
	out := make([]objects.Dict, n)
	switch t := v.(type) {
	case objects.Dict:
		if n > 0 {
			out[0] = t
		}
	case objects.Array:
		for i := 0; i < n && i < len(t); i++ {
			if d, ok := t[i].(objects.Dict); ok {
				out[i] = d
			}
		}
	}
	return out
}

func dictInt(dict objects.Dict, keys ...string) (int, bool) {
	for _, k := range keys {
		if v, ok := dict[objects.Name(k)].(objects.Number); ok {
			return int(v), true
		}
	}
	return 0, false
}

// computeOrigSize computes the inline image's undecoded payload size
// bound from Width/Height/BitsPerComponent and the color space's
// component count, in an overflow-checked domain mirroring the
// original source's 32-bit signed-int arithmetic exactly
// (fpdf_page_parser_old.cpp ReadInlineStream): pitch = ceil(width *
// bpc * nComponents / 8), OrigSize = pitch * height. When a
// ColorSpace/CS entry is present its component count cannot be
// resolved here - color space loading is out of this core's scope -
// so it defaults to 3, matching the original's own fallback when
// CPDF_Document::LoadColorSpace fails; with no ColorSpace entry at
// all, the image is an implicit 1-bit-per-pixel mask and OrigSize is
// simply ceil(width / 8) * height. ok is false on any overflow.
func computeOrigSize(dict objects.Dict) (origSize int, ok bool) {
	const maxInt = math.MaxInt32

	width, _ := dictInt(dict, "Width", "W")
	height, _ := dictInt(dict, "Height", "H")
	_, hasColorSpace := dict["ColorSpace"]
	if !hasColorSpace {
		_, hasColorSpace = dict["CS"]
	}

	var pitch int
	if hasColorSpace {
		bpc, _ := dictInt(dict, "BitsPerComponent", "BPC")
		nComponents := 3 // color space present but unresolved by this core

		pitch = width
		if bpc != 0 && pitch > maxInt/bpc {
			return 0, false
		}
		pitch *= bpc
		if nComponents != 0 && pitch > maxInt/nComponents {
			return 0, false
		}
		pitch *= nComponents
		if pitch > maxInt-7 {
			return 0, false
		}
		pitch += 7
		pitch /= 8
	} else {
		if width > maxInt-7 {
			return 0, false
		}
		pitch = (width + 7) / 8
	}

	if height != 0 && pitch > maxInt/height {
		return 0, false
	}
	return pitch * height, true
}

// runFilter finds how many raw bytes the inline image's filter
// consumes from the content stream and, when decodePayload is set,
// decodes it. Only the first filter is used when Filter is an array,
// matching the original source (it reads only GetStringAt(0) and
// never chains further entries for an inline image). guess is the
// geometry bound computed by computeOrigSize; it is not passed to the
// codec, which works out the consumed length on its own.
func (p *Parser) runFilter(name objects.Name, parms objects.Dict, payloadStart, guess int, decodePayload bool) (consumed int, decoded []byte, err error) {
	raw := p.cursor.Slice(payloadStart, p.cursor.Len())

	if decodePayload {
		n, out, derr := filters.Dispatch(name, parms, raw, true)
		if derr != nil {
			return 0, nil, derr
		}
		return n, out, nil
	}

	n, _, derr := filters.Dispatch(name, parms, raw, false)
	if derr != nil {
		return 0, nil, derr
	}
	return p.extendToEI(raw, n), nil, nil
}

// extendToEI treats a dispatcher's consumed-byte count as a starting
// guess and tokenizes forward from there: any non-"EI"-keyword token
// extends the payload by its own span, and an "EI" keyword rewinds to
// just before it and stops - mirroring the original source's
// ParseNextElement loop (fpdf_page_parser_old.cpp, the decode=false,
// filtered branch) rather than trusting the codec's consumed count
// verbatim.
func (p *Parser) extendToEI(payload []byte, guess int) int {
	tmp := New(payload)
	tmp.SetPos(guess)
	consumed := guess
	for {
		prevPos := tmp.Pos()
		tok := tmp.NextToken()
		if tok.Kind == TokEndOfData {
			break
		}
		if tok.Kind == TokKeyword && string(tok.Word) == "EI" {
			break
		}
		consumed += tmp.Pos() - prevPos
	}
	return consumed
}
