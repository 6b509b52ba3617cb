// Package graphics defines the boundary interface the engine calls into for
// `gsave`/`grestore` and the graphics-state half of `save`/`restore`. It
// intentionally carries no path geometry, transformation matrix, or paint
// state of its own: Stilted's interpreter core is complete without a
// concrete graphics backend, and a host embedding it supplies one.
package graphics

// SaveMark identifies a point in a Context's graphics state stack, returned
// by Save and consumed by RestoreAll — the graphics-side counterpart of a
// PostScript VM save point.
type SaveMark int

// Context is the thin boundary lang/engine's save/restore and
// gsave/grestore operators call into.
type Context interface {
	// GSave pushes a copy of the current graphics state, as `gsave` does.
	GSave()
	// GRestore pops the most recently pushed graphics state, as `grestore`
	// does. It is a no-op if nothing has been pushed.
	GRestore()
	// Save returns a mark identifying the current graphics state stack
	// depth, called by the engine's `save` operator in lockstep with the VM
	// save point it creates.
	Save() SaveMark
	// RestoreAll pops graphics states back to mark, called by the engine's
	// `restore` operator in lockstep with the VM save point it pops to.
	RestoreAll(mark SaveMark)
	// HasCurrentPoint reports whether the current path has a current
	// point, for operators that must signal nocurrentpoint when absent.
	HasCurrentPoint() bool
}
