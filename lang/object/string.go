package object

// stringBuffer is the mutable byte storage shared by a string object and
// every substring taken from it. Unlike arrays and dicts, strings are not
// versioned by save/restore: mutations to a string's bytes persist across a
// restore that unwinds the save point during which they were made.
type stringBuffer struct {
	data []byte
}

// StringVal is the payload of a TagString object: a window (start, length)
// into a shared mutable buffer. Substrings share the buffer by construction,
// not by reference-counted slicing, so the parent buffer is kept alive as
// long as any child holds a handle to it (ordinary Go GC does this for
// free since StringVal points at the buffer directly).
type StringVal struct {
	buf         *stringBuffer
	start, length int
}

// NewString allocates a fresh string of the given byte content.
func NewString(b []byte) *StringVal {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &StringVal{buf: &stringBuffer{data: cp}, start: 0, length: len(cp)}
}

// NewStringOfLength allocates a fresh zero-filled string, as `string`
// (the operator) does.
func NewStringOfLength(n int) *StringVal {
	return &StringVal{buf: &stringBuffer{data: make([]byte, n)}, start: 0, length: n}
}

// Len returns the string's length in bytes.
func (s *StringVal) Len() int { return s.length }

// Bytes returns the string's current content as a slice sharing the
// underlying buffer; callers must not retain it past a mutation.
func (s *StringVal) Bytes() []byte { return s.buf.data[s.start : s.start+s.length] }

// At returns the byte at index i (0 <= i < Len()).
func (s *StringVal) At(i int) byte { return s.buf.data[s.start+i] }

// SetAt sets the byte at index i (0 <= i < Len()).
func (s *StringVal) SetAt(i int, b byte) { s.buf.data[s.start+i] = b }

// Sub returns a new StringVal sharing the same buffer, covering
// [start, start+length) of the receiver's own window. The caller must have
// already range-checked start/length against Len().
func (s *StringVal) Sub(start, length int) *StringVal {
	return &StringVal{buf: s.buf, start: s.start + start, length: length}
}

// InBounds reports whether [start, start+length) is a valid sub-window of s.
func (s *StringVal) InBounds(start, length int) bool {
	return start >= 0 && length >= 0 && start+length <= s.length
}
