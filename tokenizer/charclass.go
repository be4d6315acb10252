package tokenizer

// Character classes follow PDF 1.7 7.2, Table 1 and Table 2.

// IsWhitespace reports whether ch is one of the six PDF white-space bytes.
func IsWhitespace(ch byte) bool {
	switch ch {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	default:
		return false
	}
}

// IsLineEnding reports whether ch terminates a line (and a comment).
func IsLineEnding(ch byte) bool {
	return ch == '\r' || ch == '\n'
}

// IsDelimiter reports whether ch is one of the ten PDF delimiter bytes.
func IsDelimiter(ch byte) bool {
	switch ch {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	default:
		return false
	}
}

// IsNumeric reports whether ch may appear in a number token. This is a
// context-free per-byte test; the full number-vs-keyword decision is
// made by the scanner while accumulating a word.
func IsNumeric(ch byte) bool {
	return (ch >= '0' && ch <= '9') || ch == '+' || ch == '-' || ch == '.'
}

// IsRegular reports whether ch is a "regular" character: any byte that
// is neither whitespace nor a delimiter, control bytes included.
func IsRegular(ch byte) bool {
	return !IsWhitespace(ch) && !IsDelimiter(ch)
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func hexValue(ch byte) byte {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0'
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10
	}
	return 0
}
