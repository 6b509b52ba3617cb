// Package engine implements the Stilted execution engine: the four stacks
// (operand, dictionary, execution, save), the main dispatch loop, name
// lookup, and the error funnel that routes a failing operator's error
// through errordict. The built-in operator tables live alongside it, split
// one file per PostScript operator category.
package engine

import (
	"fmt"
	"io"

	"github.com/nedbat/stilted/lang/graphics"
	"github.com/nedbat/stilted/lang/lexer"
	"github.com/nedbat/stilted/lang/object"
	"github.com/nedbat/stilted/lang/parser"
	"github.com/nedbat/stilted/lang/token"
)

// OperatorFunc is the concrete type behind every object.Operator.Fn value.
// Keeping it out of the object package (where Fn is declared as `any`)
// avoids a lang/object <-> lang/engine import cycle: object never needs to
// know the engine's shape, only that operators carry *something* callable.
type OperatorFunc func(e *Engine) error

// Frame is one entry on the execution stack. Step performs one unit of
// main-loop work: an array iterator fetches and returns its next element; a
// native continuation (for/repeat/loop/forall/stopped/a parser-driven source
// reader) does its bookkeeping, possibly rescheduling itself or pushing
// further frames, and returns ok=false when it has nothing to execute
// directly on this step.
type Frame interface {
	Step(e *Engine) (obj object.Object, ok bool, err error)
}

// exitableFrame is implemented by frames that are valid `exit` targets.
type exitableFrame interface {
	Exitable() bool
}

// stoppableFrame is implemented by frames that are valid `stop` targets.
type stoppableFrame interface {
	Stoppable() bool
}

// Engine is one fully self-contained PostScript interpreter instance: its
// own stacks, its own systemdict/userdict/errordict, its own save history.
// Nothing is shared across Engine values.
type Engine struct {
	Ops   []object.Object  // operand stack
	Dicts []*object.DictVal // dictionary stack, deepest (systemdict) first
	Exec  []Frame          // execution stack, top-of-stack last
	Saves *object.SaveStack

	SystemDict *object.DictVal
	UserDict   *object.DictVal
	ErrorDict  *object.DictVal

	Stdout   io.Writer
	Graphics graphics.Context

	files *token.FileSet

	popped        []object.Object // operands popped during the in-flight operator/exec call
	lastErrorName object.ErrorName

	gmarks map[*object.SaveRecord]graphics.SaveMark // graphics mark captured by each live save record

	rng      *randState
	quitCode int
	quit     bool
}

// New creates a fully initialized Engine: systemdict populated with every
// built-in operator, errordict populated with the default handler for every
// name in the closed error set, userdict pushed on top, one save point, and
// stdout wired to w.
func New(w io.Writer) *Engine {
	e := &Engine{
		Saves:  object.NewStack(),
		Stdout: w,
		files:  token.NewFileSet(),
		rng:    newRandState(0),
		gmarks: make(map[*object.SaveRecord]graphics.SaveMark),
	}
	owner := e.Saves.Current()
	e.markGraphics(owner)
	e.SystemDict = object.NewDict(0, owner)
	e.ErrorDict = object.NewDict(0, owner)
	e.UserDict = object.NewDict(0, owner)

	registerAll(e)
	installErrorDict(e)

	e.SystemDict.Put("systemdict", object.Object{Tag: object.TagDict, Literal: true, Dict: e.SystemDict})
	e.SystemDict.Put("errordict", object.Object{Tag: object.TagDict, Literal: true, Dict: e.ErrorDict})
	e.SystemDict.Put("userdict", object.Object{Tag: object.TagDict, Literal: true, Dict: e.UserDict})
	e.SystemDict.Put("$error", object.Object{Tag: object.TagDict, Literal: true, Dict: object.NewDict(0, owner)})

	e.Dicts = []*object.DictVal{e.SystemDict, e.UserDict}
	return e
}

// SeedRand reseeds the engine's rand/srand/rrand source, for a host that
// wants a reproducible run (e.g. from a -config file) without going through
// the `srand` operator from PostScript code.
func (e *Engine) SeedRand(seed int64) { e.rng.reseed(seed) }

// Push pushes o onto the operand stack.
func (e *Engine) Push(o object.Object) { e.Ops = append(e.Ops, o) }

// Pop pops and returns the top of the operand stack, recording it on the
// in-flight popped list so a failing operator's consumed operands can be
// restored by the error funnel.
func (e *Engine) Pop() (object.Object, error) {
	if len(e.Ops) == 0 {
		return object.Object{}, object.NewTilted(object.ErrStackUnderflow, "")
	}
	n := len(e.Ops) - 1
	o := e.Ops[n]
	e.Ops = e.Ops[:n]
	e.popped = append(e.popped, o)
	return o, nil
}

// PopN pops and returns the top n operands, deepest first (i.e. in the
// order they were originally pushed), or stackunderflow if fewer than n are
// present.
func (e *Engine) PopN(n int) ([]object.Object, error) {
	if len(e.Ops) < n {
		return nil, object.NewTilted(object.ErrStackUnderflow, "")
	}
	out := make([]object.Object, n)
	for i := n - 1; i >= 0; i-- {
		o, err := e.Pop()
		if err != nil {
			return nil, err
		}
		out[i] = o
	}
	return out, nil
}

// Peek returns the operand at depth i from the top (0 = top) without
// popping it.
func (e *Engine) Peek(i int) (object.Object, error) {
	idx := len(e.Ops) - 1 - i
	if idx < 0 {
		return object.Object{}, object.NewTilted(object.ErrStackUnderflow, "")
	}
	return e.Ops[idx], nil
}

// Depth returns the current operand stack depth.
func (e *Engine) Depth() int { return len(e.Ops) }

// PushSource tokenizes and parses src under name, pushing the resulting
// object stream as a new execution frame. This is how the top-level driver
// feeds a file or -c string to the engine, and how deferred string
// execution (executing a string object) re-enters the reader.
func (e *Engine) PushSource(name string, src []byte) {
	l := lexer.FromBytes(e.files, name, src)
	p := parser.New(l, e.Saves)
	e.Exec = append(e.Exec, &parserFrame{p: p})
}

// Run drives the main loop until the execution stack empties or a
// FatalTilt (quit, or stop/exit with no enclosing frame, or an error with
// no registered handler) ends the program.
func (e *Engine) Run() error {
	for len(e.Exec) > 0 {
		if e.quit {
			return nil
		}
		top := e.Exec[len(e.Exec)-1]
		e.Exec = e.Exec[:len(e.Exec)-1]

		obj, ok, err := top.Step(e)
		if err != nil {
			if ferr := e.handleError(object.Null(), err); ferr != nil {
				return ferr
			}
			continue
		}
		if !ok {
			continue
		}

		e.popped = nil
		if err := e.exec(obj, true); err != nil {
			if ferr := e.handleError(obj, err); ferr != nil {
				return ferr
			}
		}
	}
	return nil
}

// exec implements the dispatch table of the object execution rules: a
// literal object of any kind is simply pushed; an executable object is
// looked up (name), invoked (operator), deferred (string), iterated
// (array, unless direct), or is a no-op (null).
func (e *Engine) exec(obj object.Object, direct bool) error {
	if obj.Literal {
		e.Push(obj)
		return nil
	}
	switch obj.Tag {
	case object.TagInt, object.TagReal, object.TagBool, object.TagMark:
		e.Push(obj)
		return nil
	case object.TagNull:
		return nil
	case object.TagName:
		val, err := e.Lookup(obj.NameV)
		if err != nil {
			return err
		}
		return e.exec(val, false)
	case object.TagString:
		e.PushSource("-string-", obj.Str.Bytes())
		return nil
	case object.TagArray:
		if direct {
			e.Push(obj)
			return nil
		}
		e.Exec = append(e.Exec, &iterFrame{arr: obj.Arr})
		return nil
	case object.TagOperator:
		fn, ok := obj.Op.Fn.(OperatorFunc)
		if !ok {
			return object.NewTilted(object.ErrUnregistered, obj.Op.Name)
		}
		return fn(e)
	default:
		e.Push(obj)
		return nil
	}
}

// Exec runs obj exactly as the main loop would if it had just been read
// directly from source (direct=true), so an executable array is pushed as a
// value rather than run. Operators that take a procedure operand (if,
// ifelse, the control-structure family) schedule it with PushProc instead.
func (e *Engine) Exec(obj object.Object) error { return e.exec(obj, true) }

// PushProc schedules proc (which must be an executable array) to run on the
// execution stack, for control operators that must not recurse in the host
// language (for/repeat/loop/forall and friends).
func (e *Engine) PushProc(proc object.Object) error {
	if err := object.TypeCheckProcedure(proc); err != nil {
		return err
	}
	e.Exec = append(e.Exec, &iterFrame{arr: proc.Arr})
	return nil
}

// Lookup scans the dictionary stack from the top (most recently pushed, the
// narrowest scope) down to systemdict at the bottom, returning the first
// binding found.
func (e *Engine) Lookup(name string) (object.Object, error) {
	for i := len(e.Dicts) - 1; i >= 0; i-- {
		if v, ok := e.Dicts[i].Get(name); ok {
			return v, nil
		}
	}
	return object.Object{}, object.NewTilted(object.ErrUndefined, name)
}

// CurrentDict returns the dict on top of the dictionary stack (`def`,
// `currentdict` and friends operate on it).
func (e *Engine) CurrentDict() *object.DictVal { return e.Dicts[len(e.Dicts)-1] }

// markGraphics records the graphics state captured at the moment rec was
// pushed by `save`, a no-op when no GraphicsContext is wired in.
func (e *Engine) markGraphics(rec *object.SaveRecord) {
	if e.Graphics == nil {
		return
	}
	e.gmarks[rec] = e.Graphics.Save()
}

// restoreGraphics unwinds the graphics state back to the mark captured for
// rec, a no-op when no GraphicsContext is wired in.
func (e *Engine) restoreGraphics(rec *object.SaveRecord) {
	if e.Graphics == nil {
		return
	}
	if mark, ok := e.gmarks[rec]; ok {
		e.Graphics.RestoreAll(mark)
		delete(e.gmarks, rec)
	}
}

// handleError is the error funnel: it rolls back the operands popped during
// the failing call, pushes the offending object, and dispatches to
// errordict[name]. A FatalTilt returned from the handler (typically via
// `stop` finding no enclosing `stopped` frame) ends Run.
func (e *Engine) handleError(obj object.Object, err error) error {
	if fatal, ok := err.(*object.FatalTilt); ok {
		return fatal
	}
	tilted, ok := err.(*object.Tilted)
	if !ok {
		tilted = object.NewTilted(object.ErrUnregistered, err.Error())
	}

	for i := len(e.popped) - 1; i >= 0; i-- {
		e.Push(e.popped[i])
	}
	e.popped = nil
	e.Push(obj)

	handler, found := e.ErrorDict.Get(string(tilted.Name))
	if !found {
		return &object.FatalTilt{Reason: fmt.Sprintf("no handler registered for %s", tilted.Name)}
	}
	e.lastErrorName = tilted.Name
	return e.exec(handler, false)
}

// parserFrame pulls one object at a time from a parser and reschedules
// itself, the same shape as iterFrame but backed by a live token reader
// instead of a finished array. Used both for top-level source and for
// deferred string execution.
type parserFrame struct {
	p *parser.Parser
}

func (f *parserFrame) Step(e *Engine) (object.Object, bool, error) {
	o, ok, err := f.p.Next()
	if err != nil {
		return object.Object{}, false, err
	}
	if !ok {
		return object.Object{}, false, nil
	}
	e.Exec = append(e.Exec, f)
	return o, true, nil
}

// iterFrame walks the elements of an executable array, the "array
// iterator" ExecFrame kind.
type iterFrame struct {
	arr *object.ArrayVal
	idx int
}

func (f *iterFrame) Step(e *Engine) (object.Object, bool, error) {
	if f.idx >= f.arr.Len() {
		return object.Object{}, false, nil
	}
	o := f.arr.At(f.idx)
	f.idx++
	e.Exec = append(e.Exec, f)
	return o, true, nil
}
