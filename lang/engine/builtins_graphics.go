package engine

import "github.com/nedbat/stilted/lang/object"

// registerGraphics installs the named interface to the graphics boundary:
// Stilted's engine core doesn't implement path geometry, painting, or the
// current transformation matrix, but `gsave`/`grestore` still participate
// in the save/restore protocol a real document relies on, and `pathforall`
// still needs a concrete, exitable continuation frame to push.
func registerGraphics(d *object.DictVal) {
	reg(d, "gsave", opGsave)
	reg(d, "grestore", opGrestore)
	reg(d, "pathforall", opPathforall)
}

func opGsave(e *Engine) error {
	if e.Graphics != nil {
		e.Graphics.GSave()
	}
	return nil
}

func opGrestore(e *Engine) error {
	if e.Graphics != nil {
		e.Graphics.GRestore()
	}
	return nil
}

func opPathforall(e *Engine) error {
	closeProc, err := e.Pop()
	if err != nil {
		return err
	}
	curveProc, err := e.Pop()
	if err != nil {
		return err
	}
	lineProc, err := e.Pop()
	if err != nil {
		return err
	}
	moveProc, err := e.Pop()
	if err != nil {
		return err
	}
	if err := object.TypeCheckProcedure(moveProc, lineProc, curveProc, closeProc); err != nil {
		return err
	}
	if e.Graphics == nil || !e.Graphics.HasCurrentPoint() {
		return object.NewTilted(object.ErrNoCurrentPoint, "")
	}
	e.Exec = append(e.Exec, &pathforallFrame{
		moveProc: moveProc, lineProc: lineProc, curveProc: curveProc, closeProc: closeProc,
	})
	return nil
}
