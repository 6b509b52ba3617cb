package engine

import "github.com/nedbat/stilted/lang/object"

func registerDict(d *object.DictVal) {
	reg(d, "dict", opDictCtor)
	reg(d, "begin", opBegin)
	reg(d, "end", opEnd)
	reg(d, "def", opDef)
	reg(d, "load", opLoad)
	reg(d, "store", opStore)
	reg(d, "known", opKnown)
	reg(d, "where", opWhere)
	reg(d, "undef", opUndef)
	reg(d, "currentdict", opCurrentDict)
	reg(d, "countdictstack", opCountDictStack)
	reg(d, "cleardictstack", opClearDictStack)
	reg(d, "maxlength", opMaxLength)
}

func opDictCtor(e *Engine) error {
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
	dv := object.NewDict(int(n.Int), e.Saves.Current())
	e.Push(object.Object{Tag: object.TagDict, Literal: true, Dict: dv})
	return nil
}

func opBegin(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagDict), v); err != nil {
		return err
	}
	e.Dicts = append(e.Dicts, v.Dict)
	return nil
}

func opEnd(e *Engine) error {
	if len(e.Dicts) <= 2 {
		return object.NewTilted(object.ErrDictStackUnderflow, "")
	}
	e.Dicts = e.Dicts[:len(e.Dicts)-1]
	return nil
}

func opDef(e *Engine) error {
	val, err := e.Pop()
	if err != nil {
		return err
	}
	key, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.IsStringy, key); err != nil {
		return err
	}
	cur := e.CurrentDict()
	e.Saves.PrepForChange(cur)
	cur.Put(dictKey(key), val)
	return nil
}

func opLoad(e *Engine) error {
	key, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.IsStringy, key); err != nil {
		return err
	}
	v, lookupErr := e.Lookup(dictKey(key))
	if lookupErr != nil {
		return lookupErr
	}
	e.Push(v)
	return nil
}

func opStore(e *Engine) error {
	val, err := e.Pop()
	if err != nil {
		return err
	}
	key, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.IsStringy, key); err != nil {
		return err
	}
	k := dictKey(key)
	for i := len(e.Dicts) - 1; i >= 0; i-- {
		if _, ok := e.Dicts[i].Get(k); ok {
			e.Saves.PrepForChange(e.Dicts[i])
			e.Dicts[i].Put(k, val)
			return nil
		}
	}
	cur := e.CurrentDict()
	e.Saves.PrepForChange(cur)
	cur.Put(k, val)
	return nil
}

func opKnown(e *Engine) error {
	key, err := e.Pop()
	if err != nil {
		return err
	}
	d, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagDict), d); err != nil {
		return err
	}
	if err := object.TypeCheck(object.IsStringy, key); err != nil {
		return err
	}
	_, ok := d.Dict.Get(dictKey(key))
	e.Push(object.Bool(ok))
	return nil
}

func opWhere(e *Engine) error {
	key, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.IsStringy, key); err != nil {
		return err
	}
	k := dictKey(key)
	for i := len(e.Dicts) - 1; i >= 0; i-- {
		if _, ok := e.Dicts[i].Get(k); ok {
			e.Push(object.Object{Tag: object.TagDict, Literal: true, Dict: e.Dicts[i]})
			e.Push(object.Bool(true))
			return nil
		}
	}
	e.Push(object.Bool(false))
	return nil
}

func opUndef(e *Engine) error {
	key, err := e.Pop()
	if err != nil {
		return err
	}
	d, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagDict), d); err != nil {
		return err
	}
	if err := object.TypeCheck(object.IsStringy, key); err != nil {
		return err
	}
	e.Saves.PrepForChange(d.Dict)
	d.Dict.Delete(dictKey(key))
	return nil
}

func opCurrentDict(e *Engine) error {
	e.Push(object.Object{Tag: object.TagDict, Literal: true, Dict: e.CurrentDict()})
	return nil
}

func opCountDictStack(e *Engine) error {
	e.Push(object.Int(int32(len(e.Dicts))))
	return nil
}

func opClearDictStack(e *Engine) error {
	e.Dicts = e.Dicts[:2]
	return nil
}

func opMaxLength(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagDict), v); err != nil {
		return err
	}
	e.Push(object.Int(int32(v.Dict.MaxLen())))
	return nil
}
