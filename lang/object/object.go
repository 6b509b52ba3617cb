// Package object implements the Stilted object model: the tagged runtime
// value (Object), the save-point–scoped copy-on-write storage backing
// arrays and dicts, and the printing rules used by `=` and `==`.
//
// Objects form a closed tagged variant: operators switch on the tag rather
// than dispatching through an interface-per-type hierarchy, since the set of
// PostScript value kinds is fixed and never extended by user code.
package object

// Object is every runtime value Stilted operators see: a tag, a literal
// attribute, and a payload that depends on the tag. Only one of the payload
// fields is meaningful for a given Tag.
type Object struct {
	Tag     Tag
	Literal bool // true = literal, false = executable

	Int    int32
	Real   float64
	Bool   bool
	NameV  string // interned name text, for TagName
	Str    *StringVal
	Arr    *ArrayVal
	Dict   *DictVal
	Op     *Operator
	SaveV  *SaveRecord
	FileV  *FileVal
}

// Operator is the payload of a TagOperator object: the identity of a
// built-in, plus the name under which it is displayed (which may differ
// from any Go identifier, e.g. the operator named "[" or "==").
//
// Fn is opaque here (an `any` holding an engine.OperatorFunc) so that the
// object package, which the engine package imports, never needs to import
// the engine package back. The engine's dispatcher is the only code that
// type-asserts it.
type Operator struct {
	Name string
	Fn   any
}

// FileVal is the (minimal) payload of a TagFile object. Stilted's core only
// ever needs stdout, so this is a thin tag rather than a full file
// abstraction; CLI/host code may extend it.
type FileVal struct {
	Name   string
	Writer interface{ Write([]byte) (int, error) }
}

// Null is the single null object, literal like any other. The engine's
// `exec` operator does nothing when given a null; met in source or a
// procedure body, a null is pushed like any other literal.
func Null() Object { return Object{Tag: TagNull, Literal: true} }

// Mark is the single mark sentinel, always executable-attribute false
// (literal), as produced by the `mark`/`[` operators.
func Mark() Object { return Object{Tag: TagMark, Literal: true} }

// Bool constructs a boolean object.
func Bool(v bool) Object { return Object{Tag: TagBool, Literal: true, Bool: v} }

// Int constructs an integer object.
func Int(v int32) Object { return Object{Tag: TagInt, Literal: true, Int: v} }

// Real constructs a real object.
func Real(v float64) Object { return Object{Tag: TagReal, Literal: true, Real: v} }

// Name constructs a name object; literal is true for "/foo", false for the
// bare executable name "foo".
func Name(literal bool, v string) Object {
	return Object{Tag: TagName, Literal: literal, NameV: intern(v)}
}

// Operator constructs an operator object for a built-in. Operator objects
// are always executable by default (literal=false) since that's how they
// live in systemdict, but cvlit/cvx may flip the attribute like any other
// object.
func NewOperator(name string, fn any) Object {
	return Object{Tag: TagOperator, Literal: false, Op: &Operator{Name: name, Fn: fn}}
}

// IsNumber reports whether o is an integer or real.
func (o Object) IsNumber() bool { return o.Tag.Number() }

// NumberValue returns o's numeric value widened to float64, for operators
// that don't care about the int/real distinction. Callers must check
// IsNumber first.
func (o Object) NumberValue() float64 {
	if o.Tag == TagInt {
		return float64(o.Int)
	}
	return o.Real
}

// Type returns the PostScript type name, as used by the `type` operator
// (without the "type" suffix it appends).
func (o Object) Type() string { return o.Tag.String() }
