package object

// Class is a predicate over Tags, used by TypeCheck to express the "number"
// and "stringy" (string/name) classes alongside single-tag checks.
type Class func(Tag) bool

// Is returns a Class matching exactly the given tag.
func Is(t Tag) Class { return func(tt Tag) bool { return tt == t } }

// IsNumber matches integer or real.
func IsNumber(t Tag) bool { return t.Number() }

// IsStringy matches name or string.
func IsStringy(t Tag) bool { return t.Stringy() }

// TypeCheck fails with typecheck if any of vals doesn't match the class.
func TypeCheck(class Class, vals ...Object) error {
	for _, v := range vals {
		if !class(v.Tag) {
			return NewTilted(ErrTypeCheck, "")
		}
	}
	return nil
}

// TypeCheckProcedure fails with typecheck unless every val is an executable
// array (a "procedure" in PostScript terms).
func TypeCheckProcedure(vals ...Object) error {
	for _, v := range vals {
		if v.Tag != TagArray || v.Literal {
			return NewTilted(ErrTypeCheck, "")
		}
	}
	return nil
}

// RangeCheck fails with rangecheck unless lo <= v <= hi (both bounds
// inclusive).
func RangeCheck(lo, v, hi int) error {
	if v < lo || v > hi {
		return NewTilted(ErrRangeCheck, "")
	}
	return nil
}
