package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveRestoreArrayRollback(t *testing.T) {
	stack := NewStack()
	a := NewArray([]Object{Int(1), Int(2), Int(3)}, stack.Current())

	s1 := stack.Push()
	stack.PrepForChange(a)
	a.SetAt(1, Int(99))
	require.Equal(t, int32(99), a.At(1).Int)

	stack.Pop(s1)
	require.Equal(t, int32(2), a.At(1).Int, "restore must roll the array back")
	require.False(t, s1.Valid)
}

func TestSaveRestoreDictRollback(t *testing.T) {
	stack := NewStack()
	d := NewDict(4, stack.Current())
	d.Put("foo", Int(17))

	s1 := stack.Push()
	stack.PrepForChange(d)
	d.Put("foo", Int(23))
	v, ok := d.Get("foo")
	require.True(t, ok)
	require.Equal(t, int32(23), v.Int)

	stack.Pop(s1)
	v, ok = d.Get("foo")
	require.True(t, ok)
	require.Equal(t, int32(17), v.Int, "restore must roll the dict back")
}

func TestSaveNestedSavePointsPopTogether(t *testing.T) {
	stack := NewStack()
	a := NewArray([]Object{Int(1)}, stack.Current())

	s1 := stack.Push()
	stack.PrepForChange(a)
	a.SetAt(0, Int(2))

	s2 := stack.Push()
	stack.PrepForChange(a)
	a.SetAt(0, Int(3))

	require.Equal(t, int32(3), a.At(0).Int)
	stack.Pop(s1) // pops both s2 and s1
	require.Equal(t, int32(1), a.At(0).Int)
	require.False(t, stack.Contains(s1))
	require.False(t, stack.Contains(s2))
}

func TestOldestSerialDetectsPostSaveComposite(t *testing.T) {
	stack := NewStack()
	s1 := stack.Push()
	a := NewArray([]Object{Int(1)}, stack.Current())
	require.Equal(t, s1.Serial, a.oldestSerial())

	s2 := stack.Push()
	require.True(t, a.oldestSerial() < s2.Serial, "array allocated before s2 is older than s2")
}
