package scanner

import "unicode"

// Character-class predicates, grounded on the teacher's isWhiteSpaceChar /
// isDigitChar / isHexLetter / isX family (asm/lexer.go), extended to the
// Unicode identifier categories the source language requires (spec.md
// §4.4: "identifier-start-char is any Unicode letter or '_'; continue
// chars additionally allow decimal digits, connector punctuation,
// combining marks, and the format category").

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

func isBinDigit(c rune) bool {
	return c == '0' || c == '1'
}

func isIdentifierStart(c rune) bool {
	if c == '_' {
		return true
	}
	return unicode.IsLetter(c) || unicode.Is(unicode.Nl, c)
}

func isIdentifierContinue(c rune) bool {
	if isIdentifierStart(c) {
		return true
	}
	switch {
	case isDigit(c):
		return true
	case unicode.Is(unicode.Mn, c), unicode.Is(unicode.Mc, c):
		return true
	case unicode.Is(unicode.Pc, c):
		return true
	case unicode.Is(unicode.Cf, c):
		return true
	}
	return false
}

func hexDigitValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
