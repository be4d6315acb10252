package parser

import (
	"github.com/benkirche/pdfcs/objects"
	"github.com/pdfcpu/pdfcpu/pkg/log"
)

// literal string escape states, ported from the teacher's
// pdftokenizer/prtokenizer.go readString state machine.
const (
	stNormal = iota
	stEscape
	stOctal1
	stOctal2
	stCRLF
)

// ReadString reads a literal string object, the opening '(' already
// consumed. Nested, unescaped parentheses are tracked by depth; '\\'
// introduces an escape (named escapes, up to three octal digits, or a
// line-continuation that swallows a following CRLF/CR/LF). The result
// is capped at MaxStringLen bytes - the scanner keeps consuming input
// up to the matching ')' but stops appending once the cap is hit.
func (p *Parser) ReadString() objects.String {
	var out []byte
	depth := 1
	state := stNormal
	var octal byte

	for {
		b, ok := p.cursor.Advance()
		if !ok {
			log.Parse.Printf("parser: %v\n", errStringNotTerminated)
			return objects.String(out)
		}

		switch state {
		case stNormal:
			switch b {
			case '\\':
				state = stEscape
			case '(':
				depth++
				out = appendCapped(out, b)
			case ')':
				depth--
				if depth == 0 {
					return objects.String(out)
				}
				out = appendCapped(out, b)
			default:
				out = appendCapped(out, b)
			}
		case stEscape:
			switch b {
			case 'n':
				out = appendCapped(out, '\n')
				state = stNormal
			case 'r':
				out = appendCapped(out, '\r')
				state = stNormal
			case 't':
				out = appendCapped(out, '\t')
				state = stNormal
			case 'b':
				out = appendCapped(out, '\b')
				state = stNormal
			case 'f':
				out = appendCapped(out, '\f')
				state = stNormal
			case '(', ')', '\\':
				out = appendCapped(out, b)
				state = stNormal
			case '\r':
				state = stCRLF
			case '\n':
				state = stNormal
			default:
				if b >= '0' && b <= '7' {
					octal = b - '0'
					state = stOctal1
				} else {
					// unknown escape: the backslash is dropped and the
					// byte is taken literally, per the tolerant reader.
					out = appendCapped(out, b)
					state = stNormal
				}
			}
		case stOctal1:
			if b >= '0' && b <= '7' {
				octal = octal<<3 | (b - '0')
				state = stOctal2
			} else {
				out = appendCapped(out, octal)
				state = stNormal
				p.cursor.Rewind(1)
			}
		case stOctal2:
			if b >= '0' && b <= '7' {
				octal = octal<<3 | (b - '0')
				out = appendCapped(out, octal)
			} else {
				out = appendCapped(out, octal)
				p.cursor.Rewind(1)
			}
			state = stNormal
		case stCRLF:
			// a backslash-CRLF line continuation swallows one LF
			// following the CR; a lone CR already ended it.
			if b != '\n' {
				p.cursor.Rewind(1)
			}
			state = stNormal
		}
	}
}

func appendCapped(buf []byte, b byte) []byte {
	if len(buf) >= MaxStringLen {
		return buf
	}
	return append(buf, b)
}

// ReadHexString reads a hex string object, the opening '<' already
// consumed. Whitespace and any non-hex-digit byte inside the span is
// skipped; a trailing odd digit is treated as a high nibble with an
// implied zero low nibble. Capped at MaxStringLen decoded bytes.
func (p *Parser) ReadHexString() objects.String {
	var out []byte
	var highNibble byte
	haveHigh := false

	for {
		b, ok := p.cursor.Advance()
		if !ok {
			log.Parse.Printf("parser: %v\n", errStringNotTerminated)
			break
		}
		if b == '>' {
			break
		}
		if !isHexByte(b) {
			continue
		}
		v := hexByte(b)
		if !haveHigh {
			highNibble = v
			haveHigh = true
			continue
		}
		out = appendCapped(out, highNibble<<4|v)
		haveHigh = false
	}
	if haveHigh {
		out = appendCapped(out, highNibble<<4)
	}
	return objects.String(out)
}
