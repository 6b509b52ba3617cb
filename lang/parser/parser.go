// Package parser assembles the token stream produced by lang/lexer into the
// objects the engine actually executes: everything between a matching pair
// of "{" "}" names becomes a single executable array (a procedure), read
// recursively so nested procedures nest correctly. Every other token passes
// through unchanged.
//
// The reader is a thin struct wrapping the lexer, advancing one token at a
// time and reporting errors through a single helper, but the grammar itself
// has nothing in common with a full expression/statement parser: PostScript's
// reader only ever groups on braces.
package parser

import (
	"github.com/nedbat/stilted/lang/lexer"
	"github.com/nedbat/stilted/lang/object"
)

// Parser turns a token stream into a stream of fully-assembled objects,
// folding brace-delimited procedure bodies into executable arrays.
type Parser struct {
	lex   *lexer.Lexer
	saves *object.SaveStack
}

// New creates a Parser reading from lex. saves supplies the save record that
// owns any procedure array the parser allocates, so that a procedure read
// after a `save` counts as allocated after it, like any other array, for the
// matching `restore`'s invalidrestore check.
func New(lex *lexer.Lexer, saves *object.SaveStack) *Parser {
	return &Parser{lex: lex, saves: saves}
}

// Next reads and returns the next fully-assembled object, or (zero, false,
// nil) at end of input. A brace mismatch (stray "}" or an unterminated "{")
// yields a *object.Tilted{Name: syntaxerror}.
func (p *Parser) Next() (object.Object, bool, error) {
	o, ok, err := p.lex.Next()
	if err != nil || !ok {
		return object.Object{}, ok, err
	}
	if isOpenBrace(o) {
		return p.readProcedure()
	}
	if isCloseBrace(o) {
		return object.Object{}, false, object.NewTilted(object.ErrSyntax, "unmatched '}'")
	}
	return o, true, nil
}

// readProcedure assembles the body of a procedure whose opening "{" has
// already been consumed, recursing into readProcedure again for any nested
// "{". It stops at the matching "}", or signals syntaxerror at EOF.
func (p *Parser) readProcedure() (object.Object, bool, error) {
	var elems []object.Object
	for {
		o, ok, err := p.lex.Next()
		if err != nil {
			return object.Object{}, false, err
		}
		if !ok {
			return object.Object{}, false, object.NewTilted(object.ErrSyntax, "unterminated procedure: missing '}'")
		}
		switch {
		case isCloseBrace(o):
			arr := object.NewArray(elems, p.saves.Current())
			return object.Object{Tag: object.TagArray, Literal: false, Arr: arr}, true, nil
		case isOpenBrace(o):
			sub, _, err := p.readProcedure()
			if err != nil {
				return object.Object{}, false, err
			}
			elems = append(elems, sub)
		default:
			elems = append(elems, o)
		}
	}
}

func isOpenBrace(o object.Object) bool {
	return o.Tag == object.TagName && !o.Literal && o.NameV == "{"
}

func isCloseBrace(o object.Object) bool {
	return o.Tag == object.TagName && !o.Literal && o.NameV == "}"
}

// ScanAll drains p, returning every top-level object it produces.
func ScanAll(p *Parser) ([]object.Object, error) {
	var out []object.Object
	for {
		o, ok, err := p.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, o)
	}
}
