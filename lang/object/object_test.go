package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualNumbers(t *testing.T) {
	require.True(t, Equal(Int(3), Real(3.0)))
	require.False(t, Equal(Int(3), Real(3.5)))
}

func TestEqualStringyCrossTag(t *testing.T) {
	s := Object{Tag: TagString, Literal: true, Str: NewString([]byte("abc"))}
	n := Name(true, "abc")
	require.True(t, Equal(s, n))
	require.False(t, Equal(s, Name(true, "abd")))
}

func TestEqualCompositeIdentity(t *testing.T) {
	stack := NewStack()
	a1 := NewArray([]Object{Int(1)}, stack.Current())
	a2 := NewArray([]Object{Int(1)}, stack.Current())
	av1 := Object{Tag: TagArray, Literal: true, Arr: a1}
	av2 := Object{Tag: TagArray, Literal: true, Arr: a2}
	require.False(t, Equal(av1, av2), "distinct storage must not be equal")
	require.True(t, Equal(av1, av1))
}

func TestArraySubShares(t *testing.T) {
	stack := NewStack()
	a := NewArray([]Object{Int(1), Int(2), Int(3), Int(4)}, stack.Current())
	sub := a.Sub(1, 2)
	require.Equal(t, 2, sub.Len())
	stack.PrepForChange(sub)
	sub.SetAt(0, Int(99))
	require.Equal(t, int32(99), a.At(1).Int, "mutation through subarray is visible in parent")
}

func TestStringSubShares(t *testing.T) {
	s := NewString([]byte("hello world"))
	sub := s.Sub(6, 5)
	require.Equal(t, "world", string(sub.Bytes()))
	sub.SetAt(0, 'W')
	require.Equal(t, "World", string(sub.Bytes()))
	require.Equal(t, "hello World", string(s.Bytes()))
}

func TestDisplayAndSyntax(t *testing.T) {
	require.Equal(t, "50.0", Syntax(Real(50)))
	require.Equal(t, "3", Syntax(Int(3)))
	require.Equal(t, "/foo", Syntax(Name(true, "foo")))
	require.Equal(t, "foo", Syntax(Name(false, "foo")))
	require.Equal(t, "foo", Display(Name(true, "foo")))

	str := Object{Tag: TagString, Literal: true, Str: NewString([]byte("a(b)\\c\n"))}
	require.Equal(t, `(a\(b\)\\c\n)`, Syntax(str))
	require.Equal(t, "a(b)\\c\n", Display(str))
}
