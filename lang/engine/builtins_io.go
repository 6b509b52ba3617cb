package engine

import (
	"fmt"

	"github.com/nedbat/stilted/lang/object"
)

func registerIO(d *object.DictVal) {
	reg(d, "=", opEquals)
	reg(d, "==", opEqualsEquals)
	reg(d, "print", opPrint)
	reg(d, "pstack", opPstack)
	reg(d, "stack", opStack)
}

func opEquals(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintln(e.Stdout, object.Display(v))
	return nil
}

func opEqualsEquals(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintln(e.Stdout, object.Syntax(v))
	return nil
}

func opPrint(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagString), v); err != nil {
		return err
	}
	e.Stdout.Write(v.Str.Bytes())
	return nil
}

func opPstack(e *Engine) error {
	for i := len(e.Ops) - 1; i >= 0; i-- {
		fmt.Fprintln(e.Stdout, object.Syntax(e.Ops[i]))
	}
	return nil
}

func opStack(e *Engine) error {
	for i := len(e.Ops) - 1; i >= 0; i-- {
		fmt.Fprintln(e.Stdout, object.Display(e.Ops[i]))
	}
	return nil
}
