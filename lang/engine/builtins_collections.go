package engine

import "github.com/nedbat/stilted/lang/object"

// length, get, put, getinterval, and putinterval are each one PostScript
// operator shared across the array/dict/string groups; they dispatch on
// the tag of their composite operand rather than being separate operators
// per type.
func registerCollectionOps(d *object.DictVal) {
	reg(d, "length", opLength)
	reg(d, "get", opGet)
	reg(d, "put", opPut)
	reg(d, "getinterval", opGetInterval)
	reg(d, "putinterval", opPutInterval)
}

func opLength(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	switch v.Tag {
	case object.TagArray:
		e.Push(object.Int(int32(v.Arr.Len())))
	case object.TagString:
		e.Push(object.Int(int32(v.Str.Len())))
	case object.TagDict:
		e.Push(object.Int(int32(v.Dict.Len())))
	default:
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	return nil
}

func opGet(e *Engine) error {
	key, err := e.Pop()
	if err != nil {
		return err
	}
	coll, err := e.Pop()
	if err != nil {
		return err
	}
	switch coll.Tag {
	case object.TagArray:
		if err := object.TypeCheck(object.Is(object.TagInt), key); err != nil {
			return err
		}
		if key.Int < 0 || int(key.Int) >= coll.Arr.Len() {
			return object.NewTilted(object.ErrRangeCheck, "")
		}
		e.Push(coll.Arr.At(int(key.Int)))
	case object.TagString:
		if err := object.TypeCheck(object.Is(object.TagInt), key); err != nil {
			return err
		}
		if key.Int < 0 || int(key.Int) >= coll.Str.Len() {
			return object.NewTilted(object.ErrRangeCheck, "")
		}
		e.Push(object.Int(int32(coll.Str.At(int(key.Int)))))
	case object.TagDict:
		if err := object.TypeCheck(object.IsStringy, key); err != nil {
			return err
		}
		v, ok := coll.Dict.Get(dictKey(key))
		if !ok {
			return object.NewTilted(object.ErrUndefined, dictKey(key))
		}
		e.Push(v)
	default:
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	return nil
}

func opPut(e *Engine) error {
	val, err := e.Pop()
	if err != nil {
		return err
	}
	key, err := e.Pop()
	if err != nil {
		return err
	}
	coll, err := e.Pop()
	if err != nil {
		return err
	}
	switch coll.Tag {
	case object.TagArray:
		if err := object.TypeCheck(object.Is(object.TagInt), key); err != nil {
			return err
		}
		if key.Int < 0 || int(key.Int) >= coll.Arr.Len() {
			return object.NewTilted(object.ErrRangeCheck, "")
		}
		e.Saves.PrepForChange(coll.Arr)
		coll.Arr.SetAt(int(key.Int), val)
	case object.TagString:
		if err := object.TypeCheck(object.Is(object.TagInt), key); err != nil {
			return err
		}
		if err := object.TypeCheck(object.Is(object.TagInt), val); err != nil {
			return err
		}
		if key.Int < 0 || int(key.Int) >= coll.Str.Len() {
			return object.NewTilted(object.ErrRangeCheck, "")
		}
		coll.Str.SetAt(int(key.Int), byte(val.Int))
	case object.TagDict:
		if err := object.TypeCheck(object.IsStringy, key); err != nil {
			return err
		}
		if coll.Dict.MaxLen() > 0 && coll.Dict.Len() >= coll.Dict.MaxLen() {
			if _, exists := coll.Dict.Get(dictKey(key)); !exists {
				return object.NewTilted(object.ErrDictFull, "")
			}
		}
		e.Saves.PrepForChange(coll.Dict)
		coll.Dict.Put(dictKey(key), val)
	default:
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	return nil
}

func dictKey(o object.Object) string {
	if o.Tag == object.TagName {
		return o.NameV
	}
	return string(o.Str.Bytes())
}

func opGetInterval(e *Engine) error {
	count, err := e.Pop()
	if err != nil {
		return err
	}
	start, err := e.Pop()
	if err != nil {
		return err
	}
	coll, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagInt), start, count); err != nil {
		return err
	}
	switch coll.Tag {
	case object.TagArray:
		if !coll.Arr.InBounds(int(start.Int), int(count.Int)) {
			return object.NewTilted(object.ErrRangeCheck, "")
		}
		e.Push(object.Object{Tag: object.TagArray, Literal: coll.Literal, Arr: coll.Arr.Sub(int(start.Int), int(count.Int))})
	case object.TagString:
		if !coll.Str.InBounds(int(start.Int), int(count.Int)) {
			return object.NewTilted(object.ErrRangeCheck, "")
		}
		e.Push(object.Object{Tag: object.TagString, Literal: coll.Literal, Str: coll.Str.Sub(int(start.Int), int(count.Int))})
	default:
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	return nil
}

func opPutInterval(e *Engine) error {
	src, err := e.Pop()
	if err != nil {
		return err
	}
	start, err := e.Pop()
	if err != nil {
		return err
	}
	dst, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagInt), start); err != nil {
		return err
	}
	if dst.Tag != src.Tag {
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	switch dst.Tag {
	case object.TagArray:
		if !dst.Arr.InBounds(int(start.Int), src.Arr.Len()) {
			return object.NewTilted(object.ErrRangeCheck, "")
		}
		e.Saves.PrepForChange(dst.Arr)
		for i := 0; i < src.Arr.Len(); i++ {
			dst.Arr.SetAt(int(start.Int)+i, src.Arr.At(i))
		}
	case object.TagString:
		if !dst.Str.InBounds(int(start.Int), src.Str.Len()) {
			return object.NewTilted(object.ErrRangeCheck, "")
		}
		for i := 0; i < src.Str.Len(); i++ {
			dst.Str.SetAt(int(start.Int)+i, src.Str.At(i))
		}
	default:
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	return nil
}
