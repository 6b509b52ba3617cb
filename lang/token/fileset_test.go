package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilePosition(t *testing.T) {
	fset := NewFileSet()
	f := fset.AddFile("test.ps", -1, 10)
	// content: "ab\ncd\nefgh" (indices 0..9), newlines at 2 and 5
	f.AddLine(3)
	f.AddLine(6)

	cases := []struct {
		offset     int
		line, col  int
		wantInLine bool
	}{
		{0, 1, 1, true},
		{1, 1, 2, true},
		{3, 2, 1, true},
		{4, 2, 2, true},
		{6, 3, 1, true},
		{9, 3, 4, true},
	}
	for _, c := range cases {
		pos := f.Pos(c.offset)
		got := f.Position(pos)
		require.Equal(t, c.line, got.Line, "offset %d", c.offset)
		require.Equal(t, c.col, got.Column, "offset %d", c.offset)
		require.Equal(t, "test.ps", got.Filename)
	}
}

func TestFileSetDisjointBases(t *testing.T) {
	fset := NewFileSet()
	f1 := fset.AddFile("a.ps", -1, 5)
	f2 := fset.AddFile("b.ps", -1, 5)

	p1 := f1.Pos(2)
	p2 := f2.Pos(2)
	require.NotEqual(t, p1, p2)

	require.Equal(t, "a.ps", fset.Position(p1).Filename)
	require.Equal(t, "b.ps", fset.Position(p2).Filename)
}

func TestPositionString(t *testing.T) {
	require.Equal(t, "-", Position{}.String())
	require.Equal(t, "foo.ps", Position{Filename: "foo.ps"}.String())
	require.Equal(t, "foo.ps:3:4", Position{Filename: "foo.ps", Line: 3, Column: 4}.String())
}
