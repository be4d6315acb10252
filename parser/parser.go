// Package parser implements the StreamParser component: the token
// scanner and composite-object reader over a PDF content stream byte
// buffer. It is grounded on the teacher's `parser`/`reader/parser`
// object parser (ParseObject/parseArray/parseDict in parser/parser.go)
// generalized to the stricter, bounds-capped semantics a content
// stream scanner needs (bounded word buffer, bounded string length,
// inline image assembly), and logs through the same
// github.com/pdfcpu/pdfcpu/pkg/log categories the teacher uses.
package parser

import (
	"errors"
	"strconv"

	"github.com/benkirche/pdfcs/objects"
	"github.com/benkirche/pdfcs/tokenizer"
	"github.com/pdfcpu/pdfcpu/pkg/log"
)

// Bounds the spec requires: an overlong word or string is truncated,
// not rejected, but every input byte is still consumed.
const (
	MaxWordLen   = 256
	MaxStringLen = 32767
)

var (
	errDictionaryCorrupt       = errors.New("parser: dictionary key is not a name")
	errDictionaryNotTerminated = errors.New("parser: dictionary missing closing >>")
	errArrayNotTerminated      = errors.New("parser: array missing closing ]")
	errStringNotTerminated     = errors.New("parser: string missing closing delimiter")
)

// TokenKind classifies a single scan step's result.
type TokenKind uint8

const (
	TokNumber TokenKind = iota
	TokName
	TokKeyword
	TokOther
	TokEndOfData
)

// Token is what NextToken returns. Word carries the raw (undecoded)
// spelling for Number and Keyword kinds, bounded to MaxWordLen bytes;
// for Other, the parsed value is available from Parser.LastObject.
type Token struct {
	Kind TokenKind
	Word []byte
}

// IsKeyword reports whether the token is the keyword with the given
// spelling - the common case for recognizing an operator or BI/ID/EI.
func (t Token) IsKeyword(s string) bool {
	return t.Kind == TokKeyword && string(t.Word) == s
}

// Parser is a StreamParser: a bounds-checked scanner and object reader
// over a single borrowed byte buffer. The buffer outlives the Parser
// and is never mutated or retained past the Parser's own lifetime.
type Parser struct {
	cursor     tokenizer.Cursor
	lastObject objects.Object
}

// New wraps data for scanning, starting at position 0.
func New(data []byte) *Parser {
	return &Parser{cursor: tokenizer.NewCursor(data)}
}

// Pos returns the current byte offset.
func (p *Parser) Pos() int { return p.cursor.Pos() }

// SetPos repositions the scanner (used for skip_path_object rewind and
// inline-image EI re-scan).
func (p *Parser) SetPos(pos int) { p.cursor.SetPos(pos) }

// Len returns the length of the underlying buffer.
func (p *Parser) Len() int { return p.cursor.Len() }

// AtEnd reports whether the scanner has consumed the whole buffer.
func (p *Parser) AtEnd() bool { return !p.cursor.InBounds() }

// LastObject returns the composite object built by the most recent
// TokOther token (nil otherwise). It is released - set back to nil -
// at the start of the next NextToken call, matching the teacher's
// retained-last-object discipline.
func (p *Parser) LastObject() objects.Object { return p.lastObject }

// Bytes returns the unread suffix of the buffer, without copying.
func (p *Parser) Bytes() []byte { return p.cursor.Bytes() }

func (p *Parser) skipWhitespaceAndComments() {
	for {
		b, ok := p.cursor.Peek()
		if !ok {
			return
		}
		if tokenizer.IsWhitespace(b) {
			p.cursor.Advance()
			continue
		}
		if b == '%' {
			p.cursor.Advance()
			for {
				nb, ok := p.cursor.Peek()
				if !ok || tokenizer.IsLineEnding(nb) {
					break
				}
				p.cursor.Advance()
			}
			continue
		}
		return
	}
}

// scanWord accumulates bytes into a word until the next delimiter or
// whitespace, bounded to MaxWordLen (excess bytes are still consumed
// from input, just not retained - per the spec's truncation rule).
// allNumeric tracks, with a single boolean turned false on the first
// non-numeric byte, whether the whole word is numeric-class; this
// happens during accumulation so the scanner never re-scans the word.
func (p *Parser) scanWord() (word []byte, allNumeric bool) {
	allNumeric = true
	// a name's leading '/' is itself a delimiter byte: take it as the
	// first byte of the word, then scan the name's characters after it.
	if b, ok := p.cursor.Peek(); ok && b == '/' {
		p.cursor.Advance()
		word = append(word, b)
		allNumeric = false
	}
	for {
		b, ok := p.cursor.Peek()
		if !ok || tokenizer.IsWhitespace(b) || tokenizer.IsDelimiter(b) {
			break
		}
		p.cursor.Advance()
		if len(word) < MaxWordLen {
			word = append(word, b)
		}
		if !tokenizer.IsNumeric(b) {
			allNumeric = false
		}
	}
	return word, allNumeric
}

// classifyLiteral recognizes the fixed keywords true/false/null; it is
// shared between NextToken (Other kind) and ReadObject (direct object).
func classifyLiteral(word []byte) (objects.Object, bool) {
	switch string(word) {
	case "true":
		return objects.Boolean(true), true
	case "false":
		return objects.Boolean(false), true
	case "null":
		return objects.Null{}, true
	default:
		return nil, false
	}
}

// NextToken implements next_token: it releases any retained last
// object, skips whitespace and comments, and returns one token,
// leaving the position just past it.
func (p *Parser) NextToken() Token {
	p.lastObject = nil
	p.skipWhitespaceAndComments()

	b, ok := p.cursor.Peek()
	if !ok {
		return Token{Kind: TokEndOfData}
	}

	if tokenizer.IsDelimiter(b) && b != '/' {
		start := p.cursor.Pos()
		obj := p.ReadObject(true, false)
		if obj == nil && p.cursor.Pos() == start {
			// a stray closing delimiter starts no object: step over it.
			p.cursor.Advance()
		}
		p.lastObject = obj
		return Token{Kind: TokOther}
	}

	word, allNumeric := p.scanWord()
	if lit, ok := classifyLiteral(word); ok {
		p.lastObject = lit
		return Token{Kind: TokOther}
	}
	switch {
	case len(word) > 0 && word[0] == '/':
		return Token{Kind: TokName, Word: word}
	case allNumeric && len(word) > 0:
		return Token{Kind: TokNumber, Word: word}
	default:
		return Token{Kind: TokKeyword, Word: word}
	}
}

// decodeName resolves #HH hex escapes in a name's raw spelling
// (the leading '/' already stripped). A malformed escape - '#' not
// followed by two hex digits - is left in the output as-is.
func decodeName(raw []byte) objects.Name {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '#' && i+2 < len(raw) && isHexByte(raw[i+1]) && isHexByte(raw[i+2]) {
			out = append(out, hexByte(raw[i+1])<<4|hexByte(raw[i+2]))
			i += 2
			continue
		}
		out = append(out, c)
	}
	return objects.Name(out)
}

func isHexByte(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexByte(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// ParseNumber parses a Number token's raw word (as returned by
// NextToken) into its numeric value, tolerating malformed input by
// reading it as 0 rather than failing.
func ParseNumber(word []byte) objects.Number { return parseNumber(word) }

// DecodeName resolves a Name token's raw word (as returned by
// NextToken, leading '/' included) into its decoded value.
func DecodeName(word []byte) objects.Name {
	if len(word) > 0 && word[0] == '/' {
		word = word[1:]
	}
	return decodeName(word)
}

func parseNumber(word []byte) objects.Number {
	f, err := strconv.ParseFloat(string(word), 64)
	if err != nil {
		log.Parse.Printf("parser: malformed number %q, reading as 0\n", word)
		return 0
	}
	return objects.Number(f)
}

// ReadObject parses one complete object starting at the current
// position, dispatching on the first significant byte. allowNestedArray
// and inArray control whether a '[' found while already reading array
// elements is itself parsed as a nested array (see the spec's array
// rule). Errors are never raised, only propagated as an absent object:
// a dictionary with a non-name key or without its closing ">>" yields
// nil, its partial entries discarded, and an array stops at the first
// element it cannot read (or at end of data) and is returned with the
// elements read before it.
func (p *Parser) ReadObject(allowNestedArray, inArray bool) objects.Object {
	p.skipWhitespaceAndComments()
	b, ok := p.cursor.Peek()
	if !ok {
		return nil
	}

	switch b {
	case '(':
		p.cursor.Advance()
		return p.ReadString()
	case '<':
		// distinguish '<<' (dict) from '<' (hex string)
		if nb, ok := p.cursor.PeekAt(p.cursor.Pos() + 1); ok && nb == '<' {
			p.cursor.Advance()
			p.cursor.Advance()
			return p.readDict()
		}
		p.cursor.Advance()
		return p.ReadHexString()
	case '[':
		if inArray && !allowNestedArray {
			p.cursor.Advance()
			p.skipBalancedArray()
			return nil
		}
		p.cursor.Advance()
		return p.readArray(allowNestedArray)
	case ']', '>', ')', '}', '{':
		// unexpected closing/opening delimiter where an object was
		// expected: signals the caller (array/dict loop) that there is
		// nothing more to read here.
		return nil
	}

	word, allNumeric := p.scanWord()
	if lit, ok := classifyLiteral(word); ok {
		return lit
	}
	switch {
	case len(word) > 0 && word[0] == '/':
		return decodeName(word[1:])
	case allNumeric && len(word) > 0:
		return parseNumber(word)
	default:
		return nil
	}
}

// skipBalancedArray consumes tokens up to the matching ']' without
// building any objects, used when a nested array is disallowed.
func (p *Parser) skipBalancedArray() {
	depth := 1
	for depth > 0 {
		p.skipWhitespaceAndComments()
		b, ok := p.cursor.Peek()
		if !ok {
			return
		}
		switch b {
		case '[':
			depth++
			p.cursor.Advance()
		case ']':
			depth--
			p.cursor.Advance()
		case '(':
			p.cursor.Advance()
			p.ReadString()
		case '<':
			if nb, ok := p.cursor.PeekAt(p.cursor.Pos() + 1); ok && nb == '<' {
				p.cursor.Advance()
				p.cursor.Advance()
				p.readDict()
			} else {
				p.cursor.Advance()
				p.ReadHexString()
			}
		default:
			p.scanWord()
		}
	}
}

func (p *Parser) readArray(allowNestedArray bool) objects.Array {
	arr := objects.Array{}
	for {
		p.skipWhitespaceAndComments()
		b, ok := p.cursor.Peek()
		if !ok {
			log.Parse.Printf("parser: %v\n", errArrayNotTerminated)
			return arr
		}
		if b == ']' {
			p.cursor.Advance()
			return arr
		}
		obj := p.ReadObject(allowNestedArray, true)
		if obj == nil {
			// either a malformed element or a stray delimiter: stop
			// rather than loop forever: advance past it if it is not
			// the array terminator, which was already handled above.
			if _, ok := p.cursor.Peek(); !ok {
				return arr
			}
			b2, _ := p.cursor.Peek()
			if b2 == ']' {
				continue
			}
			// truly malformed: bail out with what we have.
			log.Parse.Printf("parser: %v\n", errArrayNotTerminated)
			return arr
		}
		arr = append(arr, obj)
	}
}

func (p *Parser) readDict() objects.Object {
	d := objects.Dict{}
	for {
		p.skipWhitespaceAndComments()
		b, ok := p.cursor.Peek()
		if !ok {
			log.Parse.Printf("parser: %v\n", errDictionaryNotTerminated)
			return nil
		}
		if b == '>' {
			p.cursor.Advance()
			if nb, ok := p.cursor.Advance(); !ok || nb != '>' {
				log.Parse.Printf("parser: %v\n", errDictionaryNotTerminated)
				return nil
			}
			return d
		}
		keyObj := p.ReadObject(true, false)
		name, isName := keyObj.(objects.Name)
		if !isName {
			log.Parse.Printf("parser: %v\n", errDictionaryCorrupt)
			return nil
		}
		value := p.ReadObject(true, false)
		if _, isNull := value.(objects.Null); value == nil || isNull {
			// null value <=> omitted entry; an empty key is also
			// discarded silently.
			continue
		}
		if name == "" {
			continue
		}
		d[name] = value // last write wins: plain map assignment
	}
}
