package engine

import "github.com/nedbat/stilted/lang/object"

func registerArray(d *object.DictVal) {
	reg(d, "array", opArray)
	reg(d, "aload", opAload)
	reg(d, "astore", opAstore)
}

func opArray(e *Engine) error {
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
	elems := make([]object.Object, n.Int)
	for i := range elems {
		elems[i] = object.Null()
	}
	arr := object.NewArray(elems, e.Saves.Current())
	e.Push(object.Object{Tag: object.TagArray, Literal: true, Arr: arr})
	return nil
}

func opAload(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagArray), v); err != nil {
		return err
	}
	for _, el := range v.Arr.Elems() {
		e.Push(el)
	}
	e.Push(v)
	return nil
}

func opAstore(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagArray), v); err != nil {
		return err
	}
	vals, err := e.PopN(v.Arr.Len())
	if err != nil {
		return err
	}
	e.Saves.PrepForChange(v.Arr)
	for i, val := range vals {
		v.Arr.SetAt(i, val)
	}
	e.Push(v)
	return nil
}
