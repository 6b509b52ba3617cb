package engine

import "github.com/nedbat/stilted/lang/object"

func registerVM(d *object.DictVal) {
	reg(d, "save", opSave)
	reg(d, "restore", opRestore)
}

func opSave(e *Engine) error {
	rec := e.Saves.Push()
	e.markGraphics(rec)
	e.Push(object.Object{Tag: object.TagSave, Literal: true, SaveV: rec})
	return nil
}

// opRestore validates the target save point and every composite directly on
// the operand and dictionary stacks before mutating anything: a composite
// allocated at or after the target save point fails the whole operation
// with invalidrestore, leaving the VM untouched.
func opRestore(e *Engine) error {
	v, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheck(object.Is(object.TagSave), v); err != nil {
		return err
	}
	target := v.SaveV
	if !target.Valid || !e.Saves.Contains(target) {
		return object.NewTilted(object.ErrInvalidRestore, "")
	}
	for _, o := range e.Ops {
		if object.CreatedAfter(o, target) {
			return object.NewTilted(object.ErrInvalidRestore, "")
		}
	}
	for _, dv := range e.Dicts {
		if object.CreatedAfter(object.Object{Tag: object.TagDict, Dict: dv}, target) {
			return object.NewTilted(object.ErrInvalidRestore, "")
		}
	}
	e.Saves.Pop(target)
	e.restoreGraphics(target)
	return nil
}
