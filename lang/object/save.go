package object

// Composite is implemented by the storage backing arrays and dicts: the two
// saveable collection kinds. A save point's touched set holds Composites so
// that restore can pop exactly the versions it pushed.
type Composite interface {
	// popIfMatches pops the top version if its save tag is exactly rec,
	// restoring the composite to the version beneath it. Called once per
	// touched composite, per save point popped, from the newest popped save
	// point to the oldest.
	popIfMatches(rec *SaveRecord)

	// oldestSerial returns the serial of the save point the bottom (oldest)
	// version was tagged with — the save point active when the composite was
	// first created. Used by restore's invalidrestore pre-check: a composite
	// whose oldest version is younger than the save point being restored must
	// not still be reachable.
	oldestSerial() int64
}

// SaveRecord is a single entry on the save stack, as pushed by `save`. It
// carries a strictly increasing serial number (used to detect composites
// allocated after it) and the set of composites it caused to be
// copy-on-write duplicated.
type SaveRecord struct {
	Serial  int64
	Valid   bool
	Touched []Composite
}

// touch records that storage was copied-on-write under this save point. It
// is idempotent in the sense that prepForChange only calls it the first time
// a given composite is modified under the current save point (the version's
// save tag already matching short-circuits the caller before this runs
// again).
func (r *SaveRecord) touch(c Composite) {
	r.Touched = append(r.Touched, c)
}

// SaveStack is the engine's `s` stack: a stack of save points used to scope
// copy-on-write rollback for arrays and dicts. The zero value is a stack
// with no save points; engines always push one at startup (see NewStack).
type SaveStack struct {
	records    []*SaveRecord
	nextSerial int64
}

// NewStack returns a SaveStack with one save point already pushed, matching
// the engine's initial state ("Initial state: one save point; ...").
func NewStack() *SaveStack {
	s := &SaveStack{}
	s.Push()
	return s
}

// Push creates and pushes a fresh save point, returning it. This is the
// engine-level counterpart of `save`'s operand: new_save().
func (s *SaveStack) Push() *SaveRecord {
	s.nextSerial++
	rec := &SaveRecord{Serial: s.nextSerial, Valid: true}
	s.records = append(s.records, rec)
	return rec
}

// Current returns the save point presently in effect (the top of the
// stack), the one prepForChange tags new composite versions with.
func (s *SaveStack) Current() *SaveRecord {
	return s.records[len(s.records)-1]
}

// Depth returns the number of save points currently on the stack.
func (s *SaveStack) Depth() int { return len(s.records) }

// Contains reports whether rec is still an active save point on this stack
// (as opposed to one already popped by an earlier restore).
func (s *SaveStack) Contains(rec *SaveRecord) bool {
	for _, r := range s.records {
		if r == rec {
			return true
		}
	}
	return false
}

// Pop pops save points down to and including target, running the
// touched-set rollback for each one popped (newest first). The caller
// (the engine's `restore` operator) is responsible for validating target
// and pre-checking the operand/dictionary stacks for post-target composites
// *before* calling Pop, since Pop itself performs no validation and always
// mutates state.
func (s *SaveStack) Pop(target *SaveRecord) {
	idx := -1
	for i, r := range s.records {
		if r == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	popped := s.records[idx:]
	s.records = s.records[:idx]
	for i := len(popped) - 1; i >= 0; i-- {
		rec := popped[i]
		for _, c := range rec.Touched {
			c.popIfMatches(rec)
		}
		rec.Valid = false
	}
}

// CreatedAfter reports whether o wraps a composite (array or dict) whose
// storage was first allocated under rec itself or a more recent save point,
// i.e. after rec was taken. The restore operator scans the operand and
// dictionary stacks for this before popping rec and fails with
// invalidrestore if it finds one.
func CreatedAfter(o Object, rec *SaveRecord) bool {
	switch o.Tag {
	case TagArray:
		return o.Arr.oldestSerial() >= rec.Serial
	case TagDict:
		return o.Dict.oldestSerial() >= rec.Serial
	}
	return false
}

// PrepForChange implements the copy-on-write hook: before any
// mutation of a saveable composite, if its top version isn't tagged with
// the current save point, push a shallow copy tagged with it and record the
// composite as touched by the current save point.
func (s *SaveStack) PrepForChange(c Composite) {
	cur := s.Current()
	switch v := c.(type) {
	case *ArrayVal:
		v.prepForChange(cur)
	case *DictVal:
		v.prepForChange(cur)
	}
}
