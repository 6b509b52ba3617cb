package lexer

import (
	"strconv"
	"strings"

	"github.com/nedbat/stilted/lang/object"
)

// scanNumberOrName scans a full run of non-delimiter bytes (as any name
// would) and classifies it: real, integer, radix#digits integer, or — if
// none of those patterns match — falls back to an ordinary name, since
// PostScript's lexical classes all share the same "run of non-delimiter
// bytes" shape and only differ in how that run parses.
func (l *Lexer) scanNumberOrName() (object.Object, bool, error) {
	start := l.off
	for !isDelimiter(l.cur) {
		l.advance()
	}
	text := string(l.src[start:l.off])

	if n, ok := parseRadixInt(text); ok {
		return object.Int(n), true, nil
	}
	if n, ok := parseInt(text); ok {
		return object.Int(n), true, nil
	}
	if f, ok := parseReal(text); ok {
		return object.Real(f), true, nil
	}
	// Not a well-formed number: it's an ordinary (possibly literal) name.
	literal := false
	if strings.HasPrefix(text, "/") {
		literal = true
		text = text[1:]
	}
	if text == "" {
		return object.Object{}, false, l.syntaxErr("empty name")
	}
	return object.Name(literal, text), true, nil
}

// parseInt accepts an optional sign followed by one or more decimal digits.
func parseInt(s string) (int32, bool) {
	t := s
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		t = t[1:]
	}
	if t == "" {
		return 0, false
	}
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// parseRadixInt accepts "radix#digits" where radix is 2..36 (decimal,
// unsigned) and digits uses 0-9A-Z (case-insensitive) valid for that radix.
func parseRadixInt(s string) (int32, bool) {
	hash := strings.IndexByte(s, '#')
	if hash <= 0 || hash == len(s)-1 {
		return 0, false
	}
	radixPart, digits := s[:hash], s[hash+1:]
	for i := 0; i < len(radixPart); i++ {
		if radixPart[i] < '0' || radixPart[i] > '9' {
			return 0, false
		}
	}
	radix, err := strconv.Atoi(radixPart)
	if err != nil || radix < 2 || radix > 36 {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.ToUpper(digits), radix, 64)
	if err != nil {
		return 0, false
	}
	return int32(uint32(n)), true
}

// parseReal accepts:
//   - a decimal with leading and/or trailing digits and an optional exponent
//     ("1.5", ".5", "5.", "1.5e3")
//   - an integer with an exponent ("5e3")
func parseReal(s string) (float64, bool) {
	t := s
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		t = t[1:]
	}
	if t == "" {
		return 0, false
	}

	hasDot := strings.ContainsRune(t, '.')
	hasExp := strings.ContainsAny(t, "eE")
	if !hasDot && !hasExp {
		return 0, false // plain integers are handled by parseInt
	}

	mantissa, exp, hasExpPart := t, "", false
	if hasExp {
		idx := strings.IndexAny(t, "eE")
		mantissa, exp = t[:idx], t[idx+1:]
		hasExpPart = true
	}
	if hasExpPart {
		e := exp
		if len(e) > 0 && (e[0] == '+' || e[0] == '-') {
			e = e[1:]
		}
		if e == "" || !allDigits(e) {
			return 0, false
		}
	}
	intPart, fracPart, gotDot := mantissa, "", false
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart, fracPart = mantissa[:i], mantissa[i+1:]
		gotDot = true
	}
	if hasDot && !gotDot {
		return 0, false
	}
	if gotDot && intPart == "" && fracPart == "" {
		return 0, false // a lone "." is not a number
	}
	if intPart != "" && !allDigits(intPart) {
		return 0, false
	}
	if fracPart != "" && !allDigits(fracPart) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
