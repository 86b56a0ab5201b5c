package scanner

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/gmofishsauce/csfront/internal/diag"
	"github.com/gmofishsauce/csfront/internal/position"
	"github.com/gmofishsauce/csfront/internal/token"
)

// scanNumber recognizes integer and real literals (spec.md §4.4): hex
// (0x...), binary (0b...), and decimal integers; decimal reals with a
// fractional part and/or exponent; and the u/U, l/L, f/F, d/D, m/M
// suffix combinations that pick the narrowest fitting Value kind.
func (s *Scanner) scanNumber() token.Token {
	start := s.reader.CurrentPosition()
	c := s.reader.CurrentChar()

	if c == '0' && (s.peekRune() == 'x' || s.peekRune() == 'X') {
		return s.scanHexOrBinary(start, 16)
	}
	if c == '0' && (s.peekRune() == 'b' || s.peekRune() == 'B') {
		return s.scanHexOrBinary(start, 2)
	}
	return s.scanDecimalNumber(start)
}

// scanHexOrBinary handles "0x"/"0X" and "0b"/"0B" integer literals,
// followed by the usual u/U/l/L integer suffixes.
func (s *Scanner) scanHexOrBinary(start position.Position, base int) token.Token {
	s.reader.Advance() // consume 'x'/'X'/'b'/'B'
	var sb strings.Builder
	valid := func(c rune) bool {
		if base == 16 {
			return isHexDigit(c) || c == '_'
		}
		return isBinDigit(c) || c == '_'
	}
	c := s.reader.Advance()
	for valid(c) {
		if c != '_' {
			sb.WriteRune(c)
		}
		c = s.reader.Advance()
	}
	end := s.reader.LastPosition()

	digits := sb.String()
	if digits == "" {
		s.report(diag.CodeInvalidNumber, start)
		return s.emit(token.Literal, start, end, token.Int32Value(0))
	}

	n := new(big.Int)
	if _, ok := n.SetString(digits, base); !ok {
		s.report(diag.CodeInvalidNumber, start)
		return s.emit(token.Literal, start, end, token.Int32Value(0))
	}

	isUnsigned, isLong := s.scanIntegerSuffix()
	end = s.reader.LastPosition()
	return s.emitIntegerValue(start, end, n, isUnsigned, isLong)
}

// scanDecimalNumber handles decimal integers and reals, including a
// leading '.' (spec.md §4.4 dispatches here whenever the '.' is
// followed by a digit).
func (s *Scanner) scanDecimalNumber(start position.Position) token.Token {
	var intPart, fracPart, expPart strings.Builder
	isReal := false

	c := s.reader.CurrentChar()
	for isDigit(c) || c == '_' {
		if c != '_' {
			intPart.WriteRune(c)
		}
		c = s.reader.Advance()
	}

	if c == '.' && isDigit(s.peekRune()) {
		isReal = true
		c = s.reader.Advance() // consume '.'
		for isDigit(c) || c == '_' {
			if c != '_' {
				fracPart.WriteRune(c)
			}
			c = s.reader.Advance()
		}
	}

	if c == 'e' || c == 'E' {
		s.reader.SaveState()
		peekC := s.reader.Advance()
		sign := ""
		if peekC == '+' || peekC == '-' {
			sign = string(peekC)
			peekC = s.reader.Advance()
		}
		if isDigit(peekC) {
			s.reader.RestoreState()
			isReal = true
			c = s.reader.Advance() // consume 'e'/'E'
			if c == '+' || c == '-' {
				expPart.WriteRune(c)
				c = s.reader.Advance()
			}
			_ = sign
			for isDigit(c) || c == '_' {
				if c != '_' {
					expPart.WriteRune(c)
				}
				c = s.reader.Advance()
			}
		} else {
			s.reader.RestoreState()
		}
	}

	end := s.reader.LastPosition()

	if isReal || isRealSuffix(s.reader.CurrentChar()) {
		return s.scanRealSuffixAndEmit(start, end, intPart.String(), fracPart.String(), expPart.String())
	}

	digits := intPart.String()
	if digits == "" {
		digits = "0"
	}
	n := new(big.Int)
	n.SetString(digits, 10)

	isUnsigned, isLong := s.scanIntegerSuffix()
	end = s.reader.LastPosition()
	return s.emitIntegerValue(start, end, n, isUnsigned, isLong)
}

func isRealSuffix(c rune) bool {
	return c == 'f' || c == 'F' || c == 'd' || c == 'D' || c == 'm' || c == 'M'
}

// scanIntegerSuffix consumes any combination of u/U and l/L (in either
// order), reporting CodeUseUppercaseL for a bare lowercase 'l' (spec.md
// §6, CodeUseUppercaseL: "easily confused with the digit 1").
func (s *Scanner) scanIntegerSuffix() (unsigned, long bool) {
	for i := 0; i < 2; i++ {
		c := s.reader.CurrentChar()
		switch c {
		case 'u', 'U':
			unsigned = true
			s.reader.Advance()
		case 'L':
			long = true
			s.reader.Advance()
		case 'l':
			long = true
			s.report(diag.CodeUseUppercaseL, s.reader.CurrentPosition())
			s.reader.Advance()
		default:
			return
		}
	}
	return
}

// emitIntegerValue picks the narrowest Value kind that holds n, honoring
// explicit u/l suffixes, and reports CodeIntegralConstantTooLarge when
// even the widest type can't (spec.md §4.4, §6).
func (s *Scanner) emitIntegerValue(start, end position.Position, n *big.Int, unsigned, long bool) token.Token {
	if unsigned && !long {
		if fitsUint32(n) {
			return s.emit(token.Literal, start, end, token.Uint32Value(uint32(n.Uint64())))
		}
		if n.IsUint64() {
			return s.emit(token.Literal, start, end, token.Uint64Value(n.Uint64()))
		}
	}
	if unsigned && long {
		if !n.IsUint64() {
			s.report(diag.CodeIntegralConstantTooLarge, start)
			return s.emit(token.Literal, start, end, token.Uint64Value(0))
		}
		return s.emit(token.Literal, start, end, token.Uint64Value(n.Uint64()))
	}
	if !unsigned && long {
		if !n.IsInt64() {
			s.report(diag.CodeIntegralConstantTooLarge, start)
			return s.emit(token.Literal, start, end, token.Int64Value(0))
		}
		return s.emit(token.Literal, start, end, token.Int64Value(n.Int64()))
	}
	// No suffix: pick the narrowest signed/unsigned type that fits,
	// widening from int32 to uint32 to int64 to uint64 (spec.md §4.4).
	if fitsInt32(n) {
		return s.emit(token.Literal, start, end, token.Int32Value(int32(n.Int64())))
	}
	if fitsUint32(n) {
		return s.emit(token.Literal, start, end, token.Uint32Value(uint32(n.Uint64())))
	}
	if n.IsInt64() {
		return s.emit(token.Literal, start, end, token.Int64Value(n.Int64()))
	}
	if n.IsUint64() {
		return s.emit(token.Literal, start, end, token.Uint64Value(n.Uint64()))
	}
	s.report(diag.CodeIntegralConstantTooLarge, start)
	return s.emit(token.Literal, start, end, token.Uint64Value(0))
}

func fitsInt32(n *big.Int) bool {
	return n.IsInt64() && n.Int64() >= int64(-1<<31) && n.Int64() <= int64(1<<31-1)
}

func fitsUint32(n *big.Int) bool {
	return n.IsUint64() && n.Uint64() <= uint64(^uint32(0))
}

// scanRealSuffixAndEmit applies the f/F, d/D, m/M real-literal suffixes
// (default is double, spec.md §4.4) and parses the accumulated digits
// into the chosen Go numeric type, reporting CodeRealConstantTooLarge on
// overflow to infinity.
func (s *Scanner) scanRealSuffixAndEmit(start, end position.Position, intPart, fracPart, expPart string) token.Token {
	lit := intPart
	if lit == "" {
		lit = "0"
	}
	if fracPart != "" {
		lit += "." + fracPart
	}
	if expPart != "" {
		lit += "e" + expPart
	}

	suffix := s.reader.CurrentChar()
	switch suffix {
	case 'f', 'F':
		s.reader.Advance()
		end = s.reader.LastPosition()
		v, err := strconv.ParseFloat(lit, 32)
		if err != nil {
			s.report(diag.CodeRealConstantTooLarge, start, "float")
		}
		return s.emit(token.Literal, start, end, token.Float32Value(float32(v)))
	case 'm', 'M':
		s.reader.Advance()
		end = s.reader.LastPosition()
		dec, ok := parseDecimal(intPart, fracPart)
		if !ok {
			s.report(diag.CodeRealConstantTooLarge, start, "decimal")
		}
		return s.emit(token.Literal, start, end, token.DecimalValue(dec))
	case 'd', 'D':
		s.reader.Advance()
		end = s.reader.LastPosition()
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		s.report(diag.CodeRealConstantTooLarge, start, "double")
	}
	return s.emit(token.Literal, start, end, token.Float64Value(v))
}

// parseDecimal builds a token.Decimal (unscaled big.Int, base-10 scale)
// directly from the integer and fractional digit strings, avoiding a
// lossy float round-trip for the language's 128-bit decimal literal.
func parseDecimal(intPart, fracPart string) (token.Decimal, bool) {
	digits := intPart + fracPart
	if digits == "" {
		digits = "0"
	}
	n := new(big.Int)
	_, ok := n.SetString(digits, 10)
	if !ok {
		return token.Decimal{}, false
	}
	return token.Decimal{Unscaled: n, Scale: int32(len(fracPart))}, true
}
