package object

// Equal implements PostScript `eq`: numbers compare by numeric value across
// integer/real, strings and names compare by byte content, composites
// (array, dict) and everything else compare by identity of storage/payload.
func Equal(a, b Object) bool {
	switch {
	case a.Tag.Number() && b.Tag.Number():
		return a.NumberValue() == b.NumberValue()
	case a.Tag.Stringy() && b.Tag.Stringy():
		return stringyBytes(a) != nil && stringyBytes(b) != nil && bytesEqual(stringyBytes(a), stringyBytes(b))
	case a.Tag != b.Tag:
		return false
	}
	switch a.Tag {
	case TagBool:
		return a.Bool == b.Bool
	case TagNull:
		return true
	case TagMark:
		return true
	case TagArray:
		return a.Arr.storage == b.Arr.storage && a.Arr.start == b.Arr.start && a.Arr.length == b.Arr.length
	case TagDict:
		return a.Dict.storage == b.Dict.storage
	case TagString:
		return a.Str == b.Str
	case TagOperator:
		return a.Op == b.Op
	case TagSave:
		return a.SaveV == b.SaveV
	case TagFile:
		return a.FileV == b.FileV
	}
	return false
}

// stringyBytes returns the byte content of a name or string object, or nil
// if o is neither.
func stringyBytes(o Object) []byte {
	switch o.Tag {
	case TagName:
		return []byte(o.NameV)
	case TagString:
		return o.Str.Bytes()
	}
	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
