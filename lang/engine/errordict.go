package engine

import "github.com/nedbat/stilted/lang/object"

// allErrorNames is the closed set errordict must have an entry for, so that
// the error funnel's lookup in handleError never itself fails with
// "no handler registered".
var allErrorNames = []object.ErrorName{
	object.ErrVM,
	object.ErrConfiguration,
	object.ErrDictFull,
	object.ErrDictStackOverflow,
	object.ErrDictStackUnderflow,
	object.ErrExecStackOverflow,
	object.ErrHandleError,
	object.ErrInterrupt,
	object.ErrInvalidAccess,
	object.ErrInvalidContext,
	object.ErrInvalidExit,
	object.ErrInvalidFileAccess,
	object.ErrInvalidFont,
	object.ErrInvalidRestore,
	object.ErrIO,
	object.ErrLimitCheck,
	object.ErrNoCurrentPoint,
	object.ErrRangeCheck,
	object.ErrStackOverflow,
	object.ErrStackUnderflow,
	object.ErrSyntax,
	object.ErrTimeout,
	object.ErrTypeCheck,
	object.ErrUndefined,
	object.ErrUndefinedFilename,
	object.ErrUndefinedResource,
	object.ErrUndefinedResult,
	object.ErrUnmatchedMark,
	object.ErrUnregistered,
}

// installErrorDict gives every name in the closed error set a default
// handler: all of them share the same body (opHandleError), matching how a
// fresh PostScript VM has every errordict entry call the common
// `handleerror` procedure until user code overrides one.
func installErrorDict(e *Engine) {
	for _, name := range allErrorNames {
		e.ErrorDict.Put(string(name), object.NewOperator(string(name), OperatorFunc(opHandleError)))
	}
}
