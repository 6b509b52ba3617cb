package engine

import (
	"github.com/nedbat/stilted/lang/lexer"
	"github.com/nedbat/stilted/lang/object"
)

// tokenizeOne scans a single object off the front of s using the same
// lexer the source reader uses, for the `token` operator. It does not go
// through the parser, so a "{" or "}" comes back as a bare executable name
// rather than as a nested procedure; `token` operates string-at-a-time and
// has no use for procedure literals in its result.
func (e *Engine) tokenizeOne(s *object.StringVal) (object.Object, *object.StringVal, bool, error) {
	l := lexer.FromBytes(e.files, "-token-", s.Bytes())
	o, ok, err := l.Next()
	if err != nil {
		return object.Object{}, nil, false, err
	}
	if !ok {
		return object.Object{}, nil, false, nil
	}
	return o, s.Sub(l.Offset(), s.Len()-l.Offset()), true, nil
}
