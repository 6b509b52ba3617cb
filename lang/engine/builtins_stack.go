package engine

import (
	"golang.org/x/exp/slices"

	"github.com/nedbat/stilted/lang/object"
)

func registerStack(d *object.DictVal) {
	reg(d, "pop", opPop)
	reg(d, "dup", opDup)
	reg(d, "exch", opExch)
	reg(d, "copy", opCopy)
	reg(d, "index", opIndex)
	reg(d, "roll", opRoll)
	reg(d, "clear", opClear)
	reg(d, "cleartomark", opClearToMark)
	reg(d, "count", opCount)
	reg(d, "counttomark", opCountToMark)
	reg(d, "mark", opMark)
	reg(d, "[", opMark)
	reg(d, "]", opArrayEnd)
}

func opPop(e *Engine) error {
	_, err := e.Pop()
	return err
}

func opDup(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	e.Push(v)
	e.Push(v)
	return nil
}

func opExch(e *Engine) error {
	b, err := e.Pop()
	if err != nil {
		return err
	}
	a, err := e.Pop()
	if err != nil {
		return err
	}
	e.Push(b)
	e.Push(a)
	return nil
}

// opCopy implements the two PostScript operators that share the name
// "copy": the stack form (n copy, duplicating the top n operands) when the
// top of stack is an integer, and the composite form (src dst copy,
// copying src's contents into dst and returning dst truncated to src's
// length) for array/string/dict destinations.
func opCopy(e *Engine) error {
	top, err := e.Pop()
	if err != nil {
		return err
	}
	switch top.Tag {
	case object.TagInt:
		count := int(top.Int)
		if count < 0 {
			return object.NewTilted(object.ErrRangeCheck, "")
		}
		if count > e.Depth() {
			return object.NewTilted(object.ErrStackUnderflow, "")
		}
		base := e.Depth() - count
		for i := 0; i < count; i++ {
			e.Push(e.Ops[base+i])
		}
		return nil
	case object.TagArray, object.TagString, object.TagDict:
		src, err := e.Pop()
		if err != nil {
			return err
		}
		return copyComposite(e, src, top)
	default:
		return object.NewTilted(object.ErrTypeCheck, "")
	}
}

func copyComposite(e *Engine, src, dst object.Object) error {
	if src.Tag != dst.Tag {
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	switch src.Tag {
	case object.TagArray:
		if src.Arr.Len() > dst.Arr.Len() {
			return object.NewTilted(object.ErrRangeCheck, "")
		}
		e.Saves.PrepForChange(dst.Arr)
		for i := 0; i < src.Arr.Len(); i++ {
			dst.Arr.SetAt(i, src.Arr.At(i))
		}
		e.Push(object.Object{Tag: object.TagArray, Literal: dst.Literal, Arr: dst.Arr.Sub(0, src.Arr.Len())})
	case object.TagString:
		if src.Str.Len() > dst.Str.Len() {
			return object.NewTilted(object.ErrRangeCheck, "")
		}
		for i := 0; i < src.Str.Len(); i++ {
			dst.Str.SetAt(i, src.Str.At(i))
		}
		e.Push(object.Object{Tag: object.TagString, Literal: dst.Literal, Str: dst.Str.Sub(0, src.Str.Len())})
	case object.TagDict:
		if src.Dict.Len() > dst.Dict.MaxLen() && dst.Dict.MaxLen() > 0 {
			return object.NewTilted(object.ErrRangeCheck, "")
		}
		e.Saves.PrepForChange(dst.Dict)
		src.Dict.ForEach(func(k string, v object.Object) bool {
			dst.Dict.Put(k, v)
			return false
		})
		e.Push(dst)
	default:
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	return nil
}

func opIndex(e *Engine) error {
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
	v, err := e.Peek(int(n.Int))
	if err != nil {
		return object.NewTilted(object.ErrStackUnderflow, "")
	}
	e.Push(v)
	return nil
}

func opRoll(e *Engine) error {
	j, err := e.Pop()
	if err != nil {
		return err
	}
	n, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagInt), n, j); err != nil {
		return err
	}
	count := int(n.Int)
	if count < 0 {
		return object.NewTilted(object.ErrRangeCheck, "")
	}
	if count > e.Depth() {
		return object.NewTilted(object.ErrStackUnderflow, "")
	}
	if count == 0 {
		return nil
	}
	shift := int(j.Int) % count
	if shift < 0 {
		shift += count
	}
	// right-rotate by shift via the reverse-reverse-reverse trick: reverse
	// the whole window, then reverse each of the two halves back.
	window := e.Ops[e.Depth()-count:]
	slices.Reverse(window)
	slices.Reverse(window[:shift])
	slices.Reverse(window[shift:])
	return nil
}

func opClear(e *Engine) error {
	e.Ops = e.Ops[:0]
	return nil
}

// markIndex returns the stack index (0-based from bottom) of the topmost
// mark object, or -1 if there is none.
func markIndex(e *Engine) int {
	for i := len(e.Ops) - 1; i >= 0; i-- {
		if e.Ops[i].Tag == object.TagMark {
			return i
		}
	}
	return -1
}

func opClearToMark(e *Engine) error {
	idx := markIndex(e)
	if idx < 0 {
		return object.NewTilted(object.ErrUnmatchedMark, "")
	}
	e.Ops = e.Ops[:idx]
	return nil
}

func opCount(e *Engine) error {
	e.Push(object.Int(int32(e.Depth())))
	return nil
}

func opCountToMark(e *Engine) error {
	idx := markIndex(e)
	if idx < 0 {
		return object.NewTilted(object.ErrUnmatchedMark, "")
	}
	e.Push(object.Int(int32(e.Depth() - idx - 1)))
	return nil
}

func opMark(e *Engine) error {
	e.Push(object.Mark())
	return nil
}

func opArrayEnd(e *Engine) error {
	idx := markIndex(e)
	if idx < 0 {
		return object.NewTilted(object.ErrUnmatchedMark, "")
	}
	elems := append([]object.Object(nil), e.Ops[idx+1:]...)
	e.Ops = e.Ops[:idx]
	arr := object.NewArray(elems, e.Saves.Current())
	e.Push(object.Object{Tag: object.TagArray, Literal: true, Arr: arr})
	return nil
}
