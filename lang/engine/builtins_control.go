package engine

import "github.com/nedbat/stilted/lang/object"

func registerControl(d *object.DictVal) {
	reg(d, "if", opIf)
	reg(d, "ifelse", opIfelse)
	reg(d, "for", opFor)
	reg(d, "forall", opForall)
	reg(d, "repeat", opRepeat)
	reg(d, "loop", opLoop)
	reg(d, "exit", opExit)
	reg(d, "stop", opStop)
	reg(d, "stopped", opStopped)
	reg(d, "quit", opQuit)
	reg(d, "exec", opExec)
}

func opIf(e *Engine) error {
	proc, err := e.Pop()
	if err != nil {
		return err
	}
	cond, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagBool), cond); err != nil {
		return err
	}
	if !cond.Bool {
		return nil
	}
	return e.PushProc(proc)
}

func opIfelse(e *Engine) error {
	procF, err := e.Pop()
	if err != nil {
		return err
	}
	procT, err := e.Pop()
	if err != nil {
		return err
	}
	cond, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagBool), cond); err != nil {
		return err
	}
	if cond.Bool {
		return e.PushProc(procT)
	}
	return e.PushProc(procF)
}

func opFor(e *Engine) error {
	proc, err := e.Pop()
	if err != nil {
		return err
	}
	limit, err := e.Pop()
	if err != nil {
		return err
	}
	incr, err := e.Pop()
	if err != nil {
		return err
	}
	initial, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.IsNumber, initial, incr, limit); err != nil {
		return err
	}
	if err := object.TypeCheckProcedure(proc); err != nil {
		return err
	}
	isInt := initial.Tag == object.TagInt && incr.Tag == object.TagInt && limit.Tag == object.TagInt
	f := &forFrame{
		control: initial.NumberValue(),
		incr:    incr.NumberValue(),
		limit:   limit.NumberValue(),
		isInt:   isInt,
		proc:    proc,
	}
	e.Exec = append(e.Exec, f)
	return nil
}

func opRepeat(e *Engine) error {
	proc, err := e.Pop()
	if err != nil {
		return err
	}
	n, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagInt), n); err != nil {
		return err
	}
	if err := object.TypeCheckProcedure(proc); err != nil {
		return err
	}
	e.Exec = append(e.Exec, &repeatFrame{count: int64(n.Int), proc: proc})
	return nil
}

func opLoop(e *Engine) error {
	proc, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheckProcedure(proc); err != nil {
		return err
	}
	e.Exec = append(e.Exec, &loopFrame{proc: proc})
	return nil
}

func opForall(e *Engine) error {
	proc, err := e.Pop()
	if err != nil {
		return err
	}
	coll, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheckProcedure(proc); err != nil {
		return err
	}
	f := &forallFrame{proc: proc}
	switch coll.Tag {
	case object.TagArray:
		f.arr = coll.Arr
	case object.TagString:
		f.str = coll.Str
	case object.TagDict:
		f.dictVal = coll.Dict
		keys := make([]string, 0, coll.Dict.Len())
		coll.Dict.ForEach(func(k string, _ object.Object) bool {
			keys = append(keys, k)
			return false
		})
		f.dictKeys = keys
	default:
		return object.NewTilted(object.ErrTypeCheck, "")
	}
	e.Exec = append(e.Exec, f)
	return nil
}

func opExit(e *Engine) error {
	for len(e.Exec) > 0 {
		f := e.Exec[len(e.Exec)-1]
		e.Exec = e.Exec[:len(e.Exec)-1]
		if ef, ok := f.(exitableFrame); ok && ef.Exitable() {
			return nil
		}
	}
	return &object.FatalTilt{Reason: "exit with no enclosing loop"}
}

func opStop(e *Engine) error {
	for len(e.Exec) > 0 {
		f := e.Exec[len(e.Exec)-1]
		e.Exec = e.Exec[:len(e.Exec)-1]
		if sf, ok := f.(stoppableFrame); ok && sf.Stoppable() {
			e.Push(object.Bool(true))
			return nil
		}
	}
	return &object.FatalTilt{Reason: "stop with no enclosing stopped"}
}

func opStopped(e *Engine) error {
	proc, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheckProcedure(proc); err != nil {
		return err
	}
	e.Exec = append(e.Exec, &stoppedFrame{})
	return e.PushProc(proc)
}

func opQuit(e *Engine) error {
	return &object.FatalTilt{Reason: ""}
}

func opExec(e *Engine) error {
	obj, err := e.Pop()
	if err != nil {
		return err
	}
	if obj.Tag == object.TagNull {
		return nil
	}
	return e.exec(obj, false)
}
