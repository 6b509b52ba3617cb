package lexer

import (
	"os"

	"github.com/nedbat/stilted/lang/object"
	"github.com/nedbat/stilted/lang/token"
)

// FromBytes creates a Lexer over src, registering it as a new file named
// name in fs.
func FromBytes(fs *token.FileSet, name string, src []byte) *Lexer {
	f := fs.AddFile(name, -1, len(src))
	l := &Lexer{}
	l.Init(f, src)
	return l
}

// FromFile reads path and returns a Lexer over its content.
func FromFile(fs *token.FileSet, path string) (*Lexer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromBytes(fs, path, b), nil
}

// ScanAll drains l, returning every Object it produces. Used by tests; the
// engine itself drives Lexer one
// token at a time instead, since the execution stack interleaves lexing
// with execution for deferred string execution.
func ScanAll(l *Lexer) ([]object.Object, error) {
	var out []object.Object
	for {
		o, ok, err := l.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, o)
	}
}
