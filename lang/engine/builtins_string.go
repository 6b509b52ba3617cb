package engine

import (
	"bytes"

	"github.com/nedbat/stilted/lang/object"
)

// length, get, put, getinterval, putinterval, copy, and forall are shared
// with arrays and dicts; only the constructor, the substring search
// operators and token are genuinely string-specific.
func registerString(d *object.DictVal) {
	reg(d, "string", opStringCtor)
	reg(d, "anchorsearch", opAnchorSearch)
	reg(d, "search", opSearch)
	reg(d, "token", opToken)
}

func opStringCtor(e *Engine) error {
	n, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagInt), n); err != nil {
		return err
	}
	if n.Int < 0 {
		return object.NewTilted(object.ErrRangeCheck, "")
	}
	e.Push(object.Object{Tag: object.TagString, Literal: true, Str: object.NewStringOfLength(int(n.Int))})
	return nil
}

// opAnchorSearch implements "string seek anchorsearch post match true" or
// "string false" when seek is not a prefix of string.
func opAnchorSearch(e *Engine) error {
	seek, err := e.Pop()
	if err != nil {
		return err
	}
	s, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagString), seek, s); err != nil {
		return err
	}
	sb, kb := s.Str.Bytes(), seek.Str.Bytes()
	if !bytes.HasPrefix(sb, kb) {
		e.Push(s)
		e.Push(object.Bool(false))
		return nil
	}
	e.Push(object.Object{Tag: object.TagString, Literal: s.Literal, Str: s.Str.Sub(len(kb), len(sb)-len(kb))})
	e.Push(object.Object{Tag: object.TagString, Literal: s.Literal, Str: s.Str.Sub(0, len(kb))})
	e.Push(object.Bool(true))
	return nil
}

// opSearch implements "string seek search post match pre true" or
// "string false" when seek does not occur in string.
func opSearch(e *Engine) error {
	seek, err := e.Pop()
	if err != nil {
		return err
	}
	s, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagString), seek, s); err != nil {
		return err
	}
	sb, kb := s.Str.Bytes(), seek.Str.Bytes()
	idx := bytes.Index(sb, kb)
	if idx < 0 {
		e.Push(s)
		e.Push(object.Bool(false))
		return nil
	}
	pre := object.Object{Tag: object.TagString, Literal: s.Literal, Str: s.Str.Sub(0, idx)}
	match := object.Object{Tag: object.TagString, Literal: s.Literal, Str: s.Str.Sub(idx, len(kb))}
	post := object.Object{Tag: object.TagString, Literal: s.Literal, Str: s.Str.Sub(idx+len(kb), len(sb)-idx-len(kb))}
	e.Push(post)
	e.Push(match)
	e.Push(pre)
	e.Push(object.Bool(true))
	return nil
}

// opToken implements "string token post any true" or just "false" when
// string holds nothing but whitespace, reading one PostScript object off
// the front of string using the same lexical rules as the source reader.
func opToken(e *Engine) error {
	s, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagString), s); err != nil {
		return err
	}
	obj, rest, ok, err := e.tokenizeOne(s.Str)
	if err != nil {
		return err
	}
	if !ok {
		e.Push(object.Bool(false))
		return nil
	}
	e.Push(object.Object{Tag: object.TagString, Literal: s.Literal, Str: rest})
	e.Push(obj)
	e.Push(object.Bool(true))
	return nil
}
