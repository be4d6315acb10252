package parser

// pathOperators are the PDF path-construction operators: a run of
// numeric operands immediately followed by one of these keywords is a
// single path-construction command that SkipPathObject can skip as a
// unit instead of returning each operand to the caller individually.
var pathOperators = map[string]bool{
	"m": true, "l": true, "c": true, "v": true, "y": true, "h": true, "re": true,
}

// SkipPathObject recognizes a run of one or more Number tokens
// immediately followed by a path-construction operator keyword,
// consuming the whole run and returning the operator spelling. If the
// pattern does not match - a non-numeric token appears first, the
// numeric run is not followed by a path operator, or end of data is
// reached - the scanner position is fully restored to where it stood
// before the first operand token was consumed, so the caller's
// ordinary NextToken path re-scans it from scratch.
func (p *Parser) SkipPathObject() (operator string, ok bool) {
	start := p.Pos()
	sawNumber := false
	for {
		tok := p.NextToken()
		switch tok.Kind {
		case TokNumber:
			sawNumber = true
			continue
		case TokKeyword:
			if sawNumber && pathOperators[string(tok.Word)] {
				return string(tok.Word), true
			}
			p.SetPos(start)
			return "", false
		default:
			p.SetPos(start)
			return "", false
		}
	}
}
