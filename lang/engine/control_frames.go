package engine

import "github.com/nedbat/stilted/lang/object"

// These are the native continuation ExecFrame kinds: each carries the
// minimum state needed to make one step of progress and reschedules itself
// (pushing the loop body ahead of itself, so the body runs before the next
// step check) when more work remains. All but stoppedFrame are exitable;
// stoppedFrame alone is stoppable.

type forFrame struct {
	control, incr, limit float64
	isInt                bool
	proc                 object.Object
}

func (f *forFrame) Exitable() bool { return true }

func (f *forFrame) Step(e *Engine) (object.Object, bool, error) {
	done := f.incr > 0 && f.control > f.limit || f.incr < 0 && f.control < f.limit
	if done {
		return object.Object{}, false, nil
	}
	var v object.Object
	if f.isInt {
		v = object.Int(int32(f.control))
	} else {
		v = object.Real(f.control)
	}
	f.control += f.incr
	e.Push(v)
	e.Exec = append(e.Exec, f)
	if err := e.PushProc(f.proc); err != nil {
		return object.Object{}, false, err
	}
	return object.Object{}, false, nil
}

type repeatFrame struct {
	count int64
	proc  object.Object
}

func (f *repeatFrame) Exitable() bool { return true }

func (f *repeatFrame) Step(e *Engine) (object.Object, bool, error) {
	if f.count <= 0 {
		return object.Object{}, false, nil
	}
	f.count--
	e.Exec = append(e.Exec, f)
	if err := e.PushProc(f.proc); err != nil {
		return object.Object{}, false, err
	}
	return object.Object{}, false, nil
}

type loopFrame struct {
	proc object.Object
}

func (f *loopFrame) Exitable() bool { return true }

func (f *loopFrame) Step(e *Engine) (object.Object, bool, error) {
	e.Exec = append(e.Exec, f)
	if err := e.PushProc(f.proc); err != nil {
		return object.Object{}, false, err
	}
	return object.Object{}, false, nil
}

// forallFrame drives `forall` over an array, a string (pushes one-byte
// integers), or a dict (pushes key then value per entry, as a name and its
// value).
type forallFrame struct {
	proc object.Object

	arr      *object.ArrayVal
	str      *object.StringVal
	dictKeys []string
	dictVal  *object.DictVal

	idx int
}

func (f *forallFrame) Exitable() bool { return true }

func (f *forallFrame) Step(e *Engine) (object.Object, bool, error) {
	switch {
	case f.arr != nil:
		if f.idx >= f.arr.Len() {
			return object.Object{}, false, nil
		}
		e.Push(f.arr.At(f.idx))
		f.idx++
	case f.str != nil:
		if f.idx >= f.str.Len() {
			return object.Object{}, false, nil
		}
		e.Push(object.Int(int32(f.str.At(f.idx))))
		f.idx++
	default:
		if f.idx >= len(f.dictKeys) {
			return object.Object{}, false, nil
		}
		key := f.dictKeys[f.idx]
		f.idx++
		val, ok := f.dictVal.Get(key)
		if !ok {
			// key was removed mid-iteration by the procedure body; skip it.
			e.Exec = append(e.Exec, f)
			return object.Object{}, false, nil
		}
		e.Push(object.Name(true, key))
		e.Push(val)
	}
	e.Exec = append(e.Exec, f)
	if err := e.PushProc(f.proc); err != nil {
		return object.Object{}, false, err
	}
	return object.Object{}, false, nil
}

// stoppedFrame is the sentinel `stopped` pushes: under normal completion of
// the guarded procedure the main loop pops it once the body's iterFrame is
// exhausted and calls Step, which pushes `false`. `stop` instead finds it
// directly by unwinding the execution stack and consumes it, pushing `true`
// without ever calling Step.
type stoppedFrame struct{}

func (f *stoppedFrame) Stoppable() bool { return true }

func (f *stoppedFrame) Step(e *Engine) (object.Object, bool, error) {
	e.Push(object.Bool(false))
	return object.Object{}, false, nil
}

// pathforallFrame is the exitable frame `pathforall` pushes once a
// GraphicsContext with a current point is wired in (without one, the
// operator itself signals nocurrentpoint). The Context interface exposes no
// path segments, so Step calls none of the four procedures: it marks the
// frame done and finishes.
type pathforallFrame struct {
	moveProc, lineProc, curveProc, closeProc object.Object
	done                                     bool
}

func (f *pathforallFrame) Exitable() bool { return true }

func (f *pathforallFrame) Step(e *Engine) (object.Object, bool, error) {
	f.done = true
	return object.Object{}, false, nil
}
