package object

import "github.com/dolthub/swiss"

// dictVersion is one version of a dict's backing storage, tagged with the
// save point active when it was pushed.
type dictVersion struct {
	save *SaveRecord
	m    *swiss.Map[string, Object]
}

// dictStorage is the saveable storage behind a dict: a stack of versions,
// the top one current. Keyed by name/string content (name and string keys
// compare by byte content, so both are normalized to plain Go strings here).
type dictStorage struct {
	versions []dictVersion
	maxLen   int // 0 means unbounded (userdict, systemdict, ...)
}

// DictVal is the payload of a TagDict object.
type DictVal struct {
	storage *dictStorage
}

var _ Composite = (*DictVal)(nil)

// NewDict allocates a fresh, empty dict with capacity for at least size
// entries (as `dict` takes a capacity hint), owned by owner.
func NewDict(size int, owner *SaveRecord) *DictVal {
	if size < 0 {
		size = 0
	}
	return &DictVal{
		storage: &dictStorage{
			versions: []dictVersion{{save: owner, m: swiss.NewMap[string, Object](uint32(size))}},
			maxLen:   size,
		},
	}
}

func (d *DictVal) top() *swiss.Map[string, Object] {
	return d.storage.versions[len(d.storage.versions)-1].m
}

// Get looks up key, returning (value, true) if present.
func (d *DictVal) Get(key string) (Object, bool) {
	return d.top().Get(key)
}

// Len returns the number of entries currently in the dict.
func (d *DictVal) Len() int { return d.top().Count() }

// MaxLen returns the capacity hint the dict was created with (0 = no
// enforced limit), used by maxlength and the dictfull check.
func (d *DictVal) MaxLen() int { return d.storage.maxLen }

// Put inserts or overwrites key -> val. The caller must call
// SaveStack.PrepForChange(d) first.
func (d *DictVal) Put(key string, val Object) {
	d.top().Put(key, val)
}

// Delete removes key, if present. The caller must call
// SaveStack.PrepForChange(d) first.
func (d *DictVal) Delete(key string) {
	d.top().Delete(key)
}

// ForEach calls fn for every key/value pair, in unspecified order, as
// `forall` on a dict does. Iteration order need not be stable across calls.
func (d *DictVal) ForEach(fn func(key string, val Object) bool) {
	d.top().Iter(fn)
}

func (d *DictVal) prepForChange(cur *SaveRecord) {
	top := &d.storage.versions[len(d.storage.versions)-1]
	if top.save == cur {
		return
	}
	cp := swiss.NewMap[string, Object](uint32(top.m.Count()))
	top.m.Iter(func(k string, v Object) bool {
		cp.Put(k, v)
		return false
	})
	d.storage.versions = append(d.storage.versions, dictVersion{save: cur, m: cp})
	cur.touch(d)
}

func (d *DictVal) popIfMatches(rec *SaveRecord) {
	n := len(d.storage.versions)
	if n > 0 && d.storage.versions[n-1].save == rec {
		d.storage.versions = d.storage.versions[:n-1]
	}
}

func (d *DictVal) oldestSerial() int64 {
	return d.storage.versions[0].save.Serial
}
