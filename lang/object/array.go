package object

// arrayVersion is one version of an array's backing storage, tagged with
// the save point active when it was pushed.
type arrayVersion struct {
	save  *SaveRecord
	elems []Object
}

// arrayStorage is the saveable storage shared by an array and every
// subarray taken from it: a stack of versions, the top one current.
type arrayStorage struct {
	versions []arrayVersion
}

// ArrayVal is the payload of a TagArray object: a window (start, length)
// into shared, saveable storage.
type ArrayVal struct {
	storage       *arrayStorage
	start, length int
}

var _ Composite = (*ArrayVal)(nil)

// NewArray allocates a fresh array containing the given elements, tagged
// with save point owner (the save point active at allocation time).
func NewArray(elems []Object, owner *SaveRecord) *ArrayVal {
	cp := make([]Object, len(elems))
	copy(cp, elems)
	return &ArrayVal{
		storage: &arrayStorage{versions: []arrayVersion{{save: owner, elems: cp}}},
		start:   0,
		length:  len(cp),
	}
}

func (a *ArrayVal) top() []Object {
	v := a.storage.versions[len(a.storage.versions)-1]
	return v.elems[a.start : a.start+a.length]
}

// Len returns the array's length.
func (a *ArrayVal) Len() int { return a.length }

// At returns the element at index i (0 <= i < Len()).
func (a *ArrayVal) At(i int) Object { return a.top()[i] }

// Elems returns a copy of the array's current elements, e.g. for aload.
func (a *ArrayVal) Elems() []Object {
	cur := a.top()
	cp := make([]Object, len(cur))
	copy(cp, cur)
	return cp
}

// SetAt sets the element at index i (0 <= i < Len()). The caller must call
// SaveStack.PrepForChange(a) first, per the copy-on-write protocol.
func (a *ArrayVal) SetAt(i int, v Object) { a.top()[i] = v }

// Sub returns a new ArrayVal sharing the same storage, covering
// [start, start+length) of the receiver's own window.
func (a *ArrayVal) Sub(start, length int) *ArrayVal {
	return &ArrayVal{storage: a.storage, start: a.start + start, length: length}
}

// InBounds reports whether [start, start+length) is a valid sub-window.
func (a *ArrayVal) InBounds(start, length int) bool {
	return start >= 0 && length >= 0 && start+length <= a.length
}

// SameStorage reports whether a and other are windows into the same backing
// storage (used by e.g. putinterval overlap checks, if ever needed).
func (a *ArrayVal) SameStorage(other *ArrayVal) bool { return a.storage == other.storage }

func (a *ArrayVal) prepForChange(cur *SaveRecord) {
	top := &a.storage.versions[len(a.storage.versions)-1]
	if top.save == cur {
		return
	}
	cp := make([]Object, len(top.elems))
	copy(cp, top.elems)
	a.storage.versions = append(a.storage.versions, arrayVersion{save: cur, elems: cp})
	cur.touch(a)
}

func (a *ArrayVal) popIfMatches(rec *SaveRecord) {
	n := len(a.storage.versions)
	if n > 0 && a.storage.versions[n-1].save == rec {
		a.storage.versions = a.storage.versions[:n-1]
	}
}

func (a *ArrayVal) oldestSerial() int64 {
	return a.storage.versions[0].save.Serial
}
