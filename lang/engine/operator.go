package engine

import "github.com/nedbat/stilted/lang/object"

// reg installs fn into dict under name as a systemdict-style operator
// object: executable, identified by its PostScript display name (which
// need not be a valid Go identifier, e.g. "[" or "==").
func reg(dict *object.DictVal, name string, fn OperatorFunc) {
	dict.Put(name, object.NewOperator(name, fn))
}

// registerAll installs every built-in operator into e.SystemDict, one
// function per operator category.
func registerAll(e *Engine) {
	registerStack(e.SystemDict)
	registerMath(e.SystemDict)
	registerRelational(e.SystemDict)
	registerControl(e.SystemDict)
	registerCollectionOps(e.SystemDict)
	registerArray(e.SystemDict)
	registerDict(e.SystemDict)
	registerString(e.SystemDict)
	registerType(e.SystemDict)
	registerVM(e.SystemDict)
	registerIO(e.SystemDict)
	registerGraphics(e.SystemDict)
	registerError(e.SystemDict)
}
