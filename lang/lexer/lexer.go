// Package lexer implements the Stilted tokenizer: a streaming scanner over
// ISO-8859-1 source bytes that produces a lazy sequence of object.Object
// values, each already tagged literal or executable.
//
// The scanner's shape — a rune-at-a-time cursor with advance/peek, splitting
// number/string lexing into their own files — follows PostScript's token
// classes directly rather than a general-purpose tokenizer.
package lexer

import (
	"fmt"

	"github.com/nedbat/stilted/lang/object"
	"github.com/nedbat/stilted/lang/token"
)

// Lexer tokenizes a single source file for the parser (or the engine's
// deferred-string-execution path) to consume.
type Lexer struct {
	file *token.File
	src  []byte // ISO-8859-1: one byte is one character

	cur rune // current byte, widened to rune; -1 at EOF
	off int  // byte offset of cur
	roff int // offset of the next unread byte
}

// Init prepares l to scan src, which must be exactly file.Size() bytes long.
func (l *Lexer) Init(file *token.File, src []byte) {
	l.file = file
	l.src = src
	l.off = 0
	l.roff = 0
	l.cur = 0
	l.advance()
}

func (l *Lexer) peek() byte {
	if l.roff < len(l.src) {
		return l.src[l.roff]
	}
	return 0
}

func (l *Lexer) advance() {
	if l.roff >= len(l.src) {
		l.off = len(l.src)
		if l.cur == '\n' {
			l.file.AddLine(l.off)
		}
		l.cur = -1
		return
	}
	l.off = l.roff
	if l.cur == '\n' {
		l.file.AddLine(l.off)
	}
	l.cur = rune(l.src[l.roff]) // ISO-8859-1: every byte is its own rune
	l.roff++
}

func (l *Lexer) advanceIf(b byte) bool {
	if l.cur == rune(b) {
		l.advance()
		return true
	}
	return false
}

func (l *Lexer) pos() token.Pos { return l.file.Pos(l.off) }

// Offset returns the byte offset of the next unconsumed byte, i.e. the
// position immediately following whatever token Next last returned. Used by
// the `token` operator to split its string operand into the consumed token
// and the remainder.
func (l *Lexer) Offset() int { return l.off }

// syntaxErr builds the syntaxerror the lexer signals for any byte it cannot
// consume as part of a well-formed token.
func (l *Lexer) syntaxErr(msg string) error {
	return object.NewTilted(object.ErrSyntax, fmt.Sprintf("%s at %s", msg, l.file.Position(l.pos())))
}

// isDelimiter reports whether r properly ends a token: whitespace, '%', or
// one of the structural characters "(){}[]<>/" .
func isDelimiter(r rune) bool {
	switch r {
	case -1, ' ', '\t', '\n', '\r', '\f':
		return true
	case '%', '(', ')', '{', '}', '[', ']', '<', '>', '/':
		return true
	}
	return false
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == 0
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isRadixDigit(r rune) bool {
	return isDigit(r) || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// skipWhitespaceAndComments advances past runs of whitespace and
// '%'-to-end-of-line comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for isWhitespace(l.cur) {
			l.advance()
		}
		if l.cur == '%' {
			for l.cur != '\n' && l.cur != -1 {
				l.advance()
			}
			continue
		}
		break
	}
}

// Next scans and returns the next Object in the source, or (zero, false,
// nil) at end of input. A malformed token yields (zero, false, err) with err
// a *object.Tilted{Name: syntaxerror}.
func (l *Lexer) Next() (object.Object, bool, error) {
	l.skipWhitespaceAndComments()
	if l.cur == -1 {
		return object.Object{}, false, nil
	}

	switch {
	case l.cur == '(':
		s, err := l.scanString()
		if err != nil {
			return object.Object{}, false, err
		}
		return object.Object{Tag: object.TagString, Literal: true, Str: s}, true, nil

	case l.cur == '<':
		// '<<' '>>' dict-construction sugar is not part of Level-1; a second
		// '<' is simply an invalid hex digit, surfaced as syntaxerror below.
		s, err := l.scanHexString()
		if err != nil {
			return object.Object{}, false, err
		}
		return object.Object{Tag: object.TagString, Literal: true, Str: s}, true, nil

	case isDigit(l.cur) || ((l.cur == '+' || l.cur == '-') && isDigit(rune(l.peek()))) ||
		(l.cur == '.' && isDigit(rune(l.peek()))):
		return l.scanNumberOrName()

	default:
		return l.scanName()
	}
}

// scanName scans a name token: a run of non-delimiter bytes, optionally
// preceded by '/' marking it literal. A bare structural character ('[', ']',
// '{', '}') is a one-byte executable name by itself.
func (l *Lexer) scanName() (object.Object, bool, error) {
	literal := false
	if l.cur == '/' {
		literal = true
		l.advance()
	}

	switch l.cur {
	case '[', ']', '{', '}':
		ch := l.cur
		l.advance()
		return object.Name(literal, string(ch)), true, nil
	case -1:
		return object.Object{}, false, l.syntaxErr("unexpected end of input after '/'")
	}

	start := l.off
	for !isDelimiter(l.cur) {
		l.advance()
	}
	if l.off == start {
		// cur is itself a delimiter character we don't otherwise handle, e.g. a
		// stray ')' or '>' — not consumable as any token.
		ch := l.cur
		l.advance()
		return object.Object{}, false, l.syntaxErr(fmt.Sprintf("unexpected character %q", ch))
	}
	return object.Name(literal, string(l.src[start:l.off])), true, nil
}
