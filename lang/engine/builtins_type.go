package engine

import (
	"strconv"

	"github.com/nedbat/stilted/lang/lexer"
	"github.com/nedbat/stilted/lang/object"
	"github.com/nedbat/stilted/lang/token"
)

func registerType(d *object.DictVal) {
	reg(d, "type", opType)
	reg(d, "cvi", opCvi)
	reg(d, "cvr", opCvr)
	reg(d, "cvn", opCvn)
	reg(d, "cvs", opCvs)
	reg(d, "cvrs", opCvrs)
	reg(d, "cvlit", opCvlit)
	reg(d, "cvx", opCvx)
	reg(d, "xcheck", opXcheck)
}

func opType(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	e.Push(object.Name(false, v.Type()+"type"))
	return nil
}

// numberFromString parses the leading PostScript number syntax out of s,
// as cvi/cvr do for a string operand: the first token is lexed with the
// source reader's rules and must be a number, else typecheck.
func numberFromString(s string) (object.Object, error) {
	l := lexer.FromBytes(token.NewFileSet(), "-cvi-", []byte(s))
	o, ok, err := l.Next()
	if err != nil || !ok || !o.Tag.Number() {
		return object.Object{}, object.NewTilted(object.ErrTypeCheck, "")
	}
	return o, nil
}

func opCvi(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	switch v.Tag {
	case object.TagInt:
		e.Push(v)
	case object.TagReal:
		e.Push(object.Int(int32(v.Real)))
	case object.TagString:
		n, err := numberFromString(string(v.Str.Bytes()))
		if err != nil {
			return err
		}
		if n.Tag == object.TagReal {
			n = object.Int(int32(n.Real))
		}
		e.Push(n)
	default:
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	return nil
}

func opCvr(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	switch v.Tag {
	case object.TagInt:
		e.Push(object.Real(float64(v.Int)))
	case object.TagReal:
		e.Push(v)
	case object.TagString:
		n, err := numberFromString(string(v.Str.Bytes()))
		if err != nil {
			return object.NewTilted(object.ErrUndefinedResult, "")
		}
		e.Push(object.Real(n.NumberValue()))
	default:
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	return nil
}

func opCvn(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.IsStringy, v); err != nil {
		return err
	}
	if v.Tag == object.TagName {
		e.Push(v)
		return nil
	}
	e.Push(object.Name(v.Literal, string(v.Str.Bytes())))
	return nil
}

func opCvs(e *Engine) error {
	dst, err := e.Pop()
	if err != nil {
		return err
	}
	v, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagString), dst); err != nil {
		return err
	}
	text := object.Display(v)
	if len(text) > dst.Str.Len() {
		return object.NewTilted(object.ErrRangeCheck, "")
	}
	for i := 0; i < len(text); i++ {
		dst.Str.SetAt(i, text[i])
	}
	e.Push(object.Object{Tag: object.TagString, Literal: dst.Literal, Str: dst.Str.Sub(0, len(text))})
	return nil
}

func opCvrs(e *Engine) error {
	dst, err := e.Pop()
	if err != nil {
		return err
	}
	radix, err := e.Pop()
	if err != nil {
		return err
	}
	num, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagInt), radix); err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagInt), num); err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagString), dst); err != nil {
		return err
	}
	if radix.Int < 2 || radix.Int > 36 {
		return object.NewTilted(object.ErrRangeCheck, "")
	}
	var text string
	if radix.Int == 10 {
		text = strconv.FormatInt(int64(num.Int), 10)
	} else {
		text = formatUint32Radix(uint32(num.Int), int(radix.Int))
	}
	if len(text) > dst.Str.Len() {
		return object.NewTilted(object.ErrRangeCheck, "")
	}
	for i := 0; i < len(text); i++ {
		dst.Str.SetAt(i, text[i])
	}
	e.Push(object.Object{Tag: object.TagString, Literal: dst.Literal, Str: dst.Str.Sub(0, len(text))})
	return nil
}

// formatUint32Radix renders v in the given radix using 0-9A-Z digits. The
// value is wrapped modulo 2^32 by the uint32 conversion at the call site,
// so a negative int comes out as its two's-complement digit string rather
// than a "-"-prefixed one.
func formatUint32Radix(v uint32, radix int) string {
	if v == 0 {
		return "0"
	}
	const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	var buf [32]byte
	i := len(buf)
	r := uint32(radix)
	for v > 0 {
		i--
		buf[i] = digits[v%r]
		v /= r
	}
	return string(buf[i:])
}

func opCvlit(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	v.Literal = true
	e.Push(v)
	return nil
}

func opCvx(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	v.Literal = false
	e.Push(v)
	return nil
}

func opXcheck(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	e.Push(object.Bool(!v.Literal))
	return nil
}
