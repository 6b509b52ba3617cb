package engine

import (
	"bytes"

	"github.com/nedbat/stilted/lang/object"
)

func registerRelational(d *object.DictVal) {
	reg(d, "eq", opEq)
	reg(d, "ne", opNe)
	reg(d, "ge", opGe)
	reg(d, "gt", opGt)
	reg(d, "le", opLe)
	reg(d, "lt", opLt)
	reg(d, "and", opAnd)
	reg(d, "or", opOr)
	reg(d, "xor", opXor)
	reg(d, "not", opNot)
}

func opEq(e *Engine) error {
	b, err := e.Pop()
	if err != nil {
		return err
	}
	a, err := e.Pop()
	if err != nil {
		return err
	}
	e.Push(object.Bool(object.Equal(a, b)))
	return nil
}

func opNe(e *Engine) error {
	b, err := e.Pop()
	if err != nil {
		return err
	}
	a, err := e.Pop()
	if err != nil {
		return err
	}
	e.Push(object.Bool(!object.Equal(a, b)))
	return nil
}

// compare orders two numbers or two strings/names, returning -1, 0, 1. It
// fails typecheck for any other combination of types.
func compare(a, b object.Object) (int, error) {
	switch {
	case a.Tag.Number() && b.Tag.Number():
		x, y := a.NumberValue(), b.NumberValue()
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}
	case a.Tag.Stringy() && b.Tag.Stringy():
		return bytes.Compare(stringyBytesOf(a), stringyBytesOf(b)), nil
	}
	return 0, object.NewTilted(object.ErrTypeCheck, "")
}

func stringyBytesOf(o object.Object) []byte {
	if o.Tag == object.TagName {
		return []byte(o.NameV)
	}
	return o.Str.Bytes()
}

func relOp(e *Engine, ok func(int) bool) error {
	b, err := e.Pop()
	if err != nil {
		return err
	}
	a, err := e.Pop()
	if err != nil {
		return err
	}
	c, err := compare(a, b)
	if err != nil {
		return err
	}
	e.Push(object.Bool(ok(c)))
	return nil
}

func opGe(e *Engine) error { return relOp(e, func(c int) bool { return c >= 0 }) }
func opGt(e *Engine) error { return relOp(e, func(c int) bool { return c > 0 }) }
func opLe(e *Engine) error { return relOp(e, func(c int) bool { return c <= 0 }) }
func opLt(e *Engine) error { return relOp(e, func(c int) bool { return c < 0 }) }

func opAnd(e *Engine) error {
	b, err := e.Pop()
	if err != nil {
		return err
	}
	a, err := e.Pop()
	if err != nil {
		return err
	}
	switch {
	case a.Tag == object.TagBool && b.Tag == object.TagBool:
		e.Push(object.Bool(a.Bool && b.Bool))
	case a.Tag == object.TagInt && b.Tag == object.TagInt:
		e.Push(object.Int(a.Int & b.Int))
	default:
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	return nil
}

func opOr(e *Engine) error {
	b, err := e.Pop()
	if err != nil {
		return err
	}
	a, err := e.Pop()
	if err != nil {
		return err
	}
	switch {
	case a.Tag == object.TagBool && b.Tag == object.TagBool:
		e.Push(object.Bool(a.Bool || b.Bool))
	case a.Tag == object.TagInt && b.Tag == object.TagInt:
		e.Push(object.Int(a.Int | b.Int))
	default:
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	return nil
}

func opXor(e *Engine) error {
	b, err := e.Pop()
	if err != nil {
		return err
	}
	a, err := e.Pop()
	if err != nil {
		return err
	}
	switch {
	case a.Tag == object.TagBool && b.Tag == object.TagBool:
		e.Push(object.Bool(a.Bool != b.Bool))
	case a.Tag == object.TagInt && b.Tag == object.TagInt:
		e.Push(object.Int(a.Int ^ b.Int))
	default:
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	return nil
}

func opNot(e *Engine) error {
	a, err := e.Pop()
	if err != nil {
		return err
	}
	switch a.Tag {
	case object.TagBool:
		e.Push(object.Bool(!a.Bool))
	case object.TagInt:
		e.Push(object.Int(^a.Int))
	default:
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	return nil
}
