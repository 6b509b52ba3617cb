package lexer

import "github.com/nedbat/stilted/lang/object"

// scanString scans a parenthesized string literal. l.cur is '(' on entry.
// Supports nested (unescaped) parens, the escapes \n \t \r \\ \( \), octal
// \NNN (1-3 digits), \<newline> (elided), and any other \c which yields c
// literally.
func (l *Lexer) scanString() (*object.StringVal, error) {
	l.advance() // consume '('
	var buf []byte
	depth := 1
	for {
		switch l.cur {
		case -1:
			return nil, l.syntaxErr("unterminated string")
		case '(':
			depth++
			buf = append(buf, '(')
			l.advance()
		case ')':
			depth--
			l.advance()
			if depth == 0 {
				return object.NewString(buf), nil
			}
			buf = append(buf, ')')
		case '\\':
			l.advance()
			b, ok, err := l.scanStringEscape()
			if err != nil {
				return nil, err
			}
			if ok {
				buf = append(buf, b)
			}
		default:
			buf = append(buf, byte(l.cur))
			l.advance()
		}
	}
}

// scanStringEscape scans the character(s) following a backslash already
// consumed by the caller. Returns (byte, true, nil) for an escape that
// yields one byte, (0, false, nil) for the line-continuation escape (which
// yields nothing), or an error.
func (l *Lexer) scanStringEscape() (byte, bool, error) {
	switch l.cur {
	case -1:
		return 0, false, l.syntaxErr("unterminated string after '\\'")
	case 'n':
		l.advance()
		return '\n', true, nil
	case 't':
		l.advance()
		return '\t', true, nil
	case 'r':
		l.advance()
		return '\r', true, nil
	case '\\', '(', ')':
		b := byte(l.cur)
		l.advance()
		return b, true, nil
	case '\n':
		l.advance()
		return 0, false, nil
	case '0', '1', '2', '3', '4', '5', '6', '7':
		n := 0
		for i := 0; i < 3 && l.cur >= '0' && l.cur <= '7'; i++ {
			n = n*8 + int(l.cur-'0')
			l.advance()
		}
		return byte(n), true, nil
	default:
		b := byte(l.cur)
		l.advance()
		return b, true, nil
	}
}

// scanHexString scans a hex string literal "<...>". l.cur is '<' on entry.
// Whitespace inside is ignored; an odd number of hex digits is padded with
// a trailing '0'.
func (l *Lexer) scanHexString() (*object.StringVal, error) {
	l.advance() // consume '<'
	var digits []byte
	for l.cur != '>' {
		switch {
		case l.cur == -1:
			return nil, l.syntaxErr("unterminated hex string")
		case isWhitespace(l.cur):
			l.advance()
		case isHexDigit(l.cur):
			digits = append(digits, byte(l.cur))
			l.advance()
		default:
			return nil, l.syntaxErr("invalid hex string digit")
		}
	}
	l.advance() // consume '>'
	if len(digits)%2 != 0 {
		digits = append(digits, '0')
	}
	buf := make([]byte, len(digits)/2)
	for i := range buf {
		buf[i] = hexVal(digits[2*i])<<4 | hexVal(digits[2*i+1])
	}
	return object.NewString(buf), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}
