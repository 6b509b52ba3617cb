package parser_test

import (
	"testing"

	"github.com/nedbat/stilted/lang/lexer"
	"github.com/nedbat/stilted/lang/object"
	"github.com/nedbat/stilted/lang/parser"
	"github.com/nedbat/stilted/lang/token"
	"github.com/stretchr/testify/require"
)

func parseAll(t *testing.T, src string) []object.Object {
	t.Helper()
	fs := token.NewFileSet()
	l := lexer.FromBytes(fs, "test.ps", []byte(src))
	saves := object.NewStack()
	toks, err := parser.ScanAll(parser.New(l, saves))
	require.NoError(t, err)
	return toks
}

func TestFlatObjectsPassThrough(t *testing.T) {
	toks := parseAll(t, "1 2 add")
	require.Len(t, toks, 3)
	require.Equal(t, object.TagInt, toks[0].Tag)
	require.Equal(t, object.TagInt, toks[1].Tag)
	require.Equal(t, object.TagName, toks[2].Tag)
	require.Equal(t, "add", toks[2].NameV)
}

func TestSimpleProcedure(t *testing.T) {
	toks := parseAll(t, "{ 1 2 add }")
	require.Len(t, toks, 1)
	proc := toks[0]
	require.Equal(t, object.TagArray, proc.Tag)
	require.False(t, proc.Literal)
	require.Equal(t, 3, proc.Arr.Len())
	require.Equal(t, object.TagInt, proc.Arr.At(0).Tag)
	require.Equal(t, object.TagName, proc.Arr.At(2).Tag)
}

func TestNestedProcedure(t *testing.T) {
	toks := parseAll(t, "{ { dup } if }")
	require.Len(t, toks, 1)
	outer := toks[0]
	require.Equal(t, object.TagArray, outer.Tag)
	require.Equal(t, 2, outer.Arr.Len())

	inner := outer.Arr.At(0)
	require.Equal(t, object.TagArray, inner.Tag)
	require.Equal(t, 1, inner.Arr.Len())
	require.Equal(t, "dup", inner.Arr.At(0).NameV)

	require.Equal(t, "if", outer.Arr.At(1).NameV)
}

func TestEmptyProcedure(t *testing.T) {
	toks := parseAll(t, "{}")
	require.Len(t, toks, 1)
	require.Equal(t, 0, toks[0].Arr.Len())
}

func TestUnmatchedCloseBrace(t *testing.T) {
	fs := token.NewFileSet()
	l := lexer.FromBytes(fs, "test.ps", []byte("1 }"))
	saves := object.NewStack()
	_, err := parser.ScanAll(parser.New(l, saves))
	require.Error(t, err)
	tilted, ok := err.(*object.Tilted)
	require.True(t, ok)
	require.Equal(t, object.ErrSyntax, tilted.Name)
}

func TestUnterminatedProcedure(t *testing.T) {
	fs := token.NewFileSet()
	l := lexer.FromBytes(fs, "test.ps", []byte("{ 1 2"))
	saves := object.NewStack()
	_, err := parser.ScanAll(parser.New(l, saves))
	require.Error(t, err)
	tilted, ok := err.(*object.Tilted)
	require.True(t, ok)
	require.Equal(t, object.ErrSyntax, tilted.Name)
}
