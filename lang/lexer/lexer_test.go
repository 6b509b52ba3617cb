package lexer_test

import (
	"testing"

	"github.com/nedbat/stilted/lang/lexer"
	"github.com/nedbat/stilted/lang/object"
	"github.com/nedbat/stilted/lang/token"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, src string) []object.Object {
	t.Helper()
	fs := token.NewFileSet()
	l := lexer.FromBytes(fs, "test.ps", []byte(src))
	toks, err := lexer.ScanAll(l)
	require.NoError(t, err)
	return toks
}

func TestScanNumbers(t *testing.T) {
	toks := scan(t, "1 -2 +3 3.14 -0.5 .5 5. 1e3 1.5e-2 2#1010 16#FF")
	require.Len(t, toks, 11)
	require.Equal(t, object.TagInt, toks[0].Tag)
	require.Equal(t, int32(1), toks[0].Int)
	require.Equal(t, int32(-2), toks[1].Int)
	require.Equal(t, int32(3), toks[2].Int)
	require.Equal(t, object.TagReal, toks[3].Tag)
	require.InDelta(t, 3.14, toks[3].Real, 1e-9)
	require.InDelta(t, -0.5, toks[4].Real, 1e-9)
	require.InDelta(t, 0.5, toks[5].Real, 1e-9)
	require.InDelta(t, 5.0, toks[6].Real, 1e-9)
	require.InDelta(t, 1000.0, toks[7].Real, 1e-9)
	require.InDelta(t, 0.015, toks[8].Real, 1e-9)
	require.Equal(t, object.TagInt, toks[9].Tag)
	require.Equal(t, int32(10), toks[9].Int)
	require.Equal(t, int32(255), toks[10].Int)
}

func TestScanNames(t *testing.T) {
	toks := scan(t, "/foo bar { } [ ] /Courier-Bold")
	require.Len(t, toks, 7)
	require.Equal(t, object.TagName, toks[0].Tag)
	require.True(t, toks[0].Literal)
	require.Equal(t, "foo", toks[0].NameV)

	require.Equal(t, object.TagName, toks[1].Tag)
	require.False(t, toks[1].Literal)
	require.Equal(t, "bar", toks[1].NameV)

	require.Equal(t, "{", toks[2].NameV)
	require.False(t, toks[2].Literal)
	require.Equal(t, "}", toks[3].NameV)
	require.Equal(t, "[", toks[4].NameV)
	require.Equal(t, "]", toks[5].NameV)
	require.Equal(t, "Courier-Bold", toks[6].NameV)
}

func TestScanString(t *testing.T) {
	toks := scan(t, `(hello \(world\)\n\052 end)`)
	require.Len(t, toks, 1)
	require.Equal(t, object.TagString, toks[0].Tag)
	require.Equal(t, "hello (world)\n* end", string(toks[0].Str.Bytes()))
}

func TestScanNestedParens(t *testing.T) {
	toks := scan(t, `(a (nested) b)`)
	require.Len(t, toks, 1)
	require.Equal(t, "a (nested) b", string(toks[0].Str.Bytes()))
}

func TestScanHexString(t *testing.T) {
	toks := scan(t, "<68 656c6c6f> <ABC>")
	require.Len(t, toks, 2)
	require.Equal(t, "hello", string(toks[0].Str.Bytes()))
	require.Equal(t, []byte{0xAB, 0xC0}, toks[1].Str.Bytes())
}

func TestScanComments(t *testing.T) {
	toks := scan(t, "1 % this is a comment\n2")
	require.Len(t, toks, 2)
	require.Equal(t, int32(1), toks[0].Int)
	require.Equal(t, int32(2), toks[1].Int)
}

func TestScanSyntaxErrorUnterminatedString(t *testing.T) {
	fs := token.NewFileSet()
	l := lexer.FromBytes(fs, "test.ps", []byte("(unterminated"))
	_, err := lexer.ScanAll(l)
	require.Error(t, err)
	tilted, ok := err.(*object.Tilted)
	require.True(t, ok)
	require.Equal(t, object.ErrSyntax, tilted.Name)
}

func TestRoundTripSyntax(t *testing.T) {
	// Round-trip property: parsing the `==` output of o yields an object
	// equal to o, with the same literal attribute.
	cases := []object.Object{
		object.Int(42),
		object.Int(-7),
		object.Real(3.5),
		object.Name(true, "foo"),
		object.Name(false, "bar"),
	}
	for _, o := range cases {
		text := object.Syntax(o)
		toks := scan(t, text)
		require.Len(t, toks, 1, "round-trip of %q", text)
		require.Equal(t, o.Tag, toks[0].Tag)
		require.Equal(t, o.Literal, toks[0].Literal)
	}
}
