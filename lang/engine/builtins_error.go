package engine

import (
	"fmt"

	"github.com/nedbat/stilted/lang/object"
)

// registerError installs the two error operators: `.error`, which lets
// PostScript code raise a named error directly
// (used by test fixtures and by code that wants to re-signal an error after
// inspecting it), and `handleerror`, the shared diagnostic procedure every
// default errordict entry invokes.
func registerError(d *object.DictVal) {
	reg(d, ".error", opDotError)
	reg(d, "handleerror", opHandleError)
}

func opDotError(e *Engine) error {
	name, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.IsStringy, name); err != nil {
		return err
	}
	return object.NewTilted(object.ErrorName(dictKey(name)), "")
}

// opHandleError is the default action for every name in errordict: report
// the error and the current operand stack, then unwind like `stop`. At the
// top level (no enclosing `stopped`) this escalates to a FatalTilt, which is
// exactly how an uncaught PostScript error ends a program: a diagnostic on
// stdout followed by termination.
func opHandleError(e *Engine) error {
	obj, err := e.Pop()
	if err != nil {
		return err
	}
	errDict, _ := e.SystemDict.Get("$error")
	if errDict.Tag == object.TagDict {
		e.Saves.PrepForChange(errDict.Dict)
		errDict.Dict.Put("newerror", object.Bool(true))
		errDict.Dict.Put("errorname", object.Name(true, string(e.lastErrorName)))
		errDict.Dict.Put("command", obj)
	}
	fmt.Fprintf(e.Stdout, "Error: %s in %s\n", e.lastErrorName, object.Syntax(obj))
	fmt.Fprintf(e.Stdout, "Operand stack (%d):\n", len(e.Ops))
	for i := len(e.Ops) - 1; i >= 0; i-- {
		fmt.Fprintln(e.Stdout, object.Syntax(e.Ops[i]))
	}
	return opStop(e)
}
