package engine_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nedbat/stilted/lang/engine"
	"github.com/nedbat/stilted/lang/object"
)

func TestDictKnown(t *testing.T) {
	e, _ := run(t, "/d 4 dict def d begin /x 10 def end d /x known")
	require.Equal(t, 1, e.Depth())
	require.Equal(t, true, e.Ops[0].Bool)
}

func TestDictLoad(t *testing.T) {
	e, _ := run(t, "/x 99 def /x load")
	require.Equal(t, 1, e.Depth())
	require.Equal(t, int32(99), e.Ops[0].Int)
}

func TestDictUndef(t *testing.T) {
	e, _ := run(t, "/d 4 dict def d begin /x 10 def end d /x undef d /x known")
	require.Equal(t, 1, e.Depth())
	require.Equal(t, false, e.Ops[0].Bool, "undef must remove the binding")
}

func TestDictStoreSearchesUpTheStack(t *testing.T) {
	e, _ := run(t, "/x 1 def 2 dict begin /x 2 store end x")
	require.Equal(t, 1, e.Depth())
	require.Equal(t, int32(2), e.Ops[0].Int, "store must update the existing binding in userdict, not shadow it")
}

func TestDictStackUnderflowOnEnd(t *testing.T) {
	var out = captureOut(t, "end")
	require.Contains(t, out, "dictstackunderflow")
}

func TestCountDictStack(t *testing.T) {
	e, _ := run(t, "1 dict begin 1 dict begin countdictstack")
	require.Equal(t, int32(4), e.Ops[0].Int)
}

func TestTypeOperator(t *testing.T) {
	e, _ := run(t, "42 type 3.14 type (s) type /n type [1] type")
	require.Equal(t, 5, e.Depth())
	require.Equal(t, "integertype", e.Ops[0].NameV)
	require.Equal(t, "realtype", e.Ops[1].NameV)
	require.Equal(t, "stringtype", e.Ops[2].NameV)
	require.Equal(t, "nametype", e.Ops[3].NameV)
	require.Equal(t, "arraytype", e.Ops[4].NameV)
}

func TestCvsWritesIntoBuffer(t *testing.T) {
	e, _ := run(t, "42 10 string cvs")
	require.Equal(t, 1, e.Depth())
	require.Equal(t, "42", string(e.Ops[0].Str.Bytes()))
}

func TestCvsRangeCheckTooSmall(t *testing.T) {
	out := captureOut(t, "123456 1 string cvs")
	require.Contains(t, out, "rangecheck")
}

func TestCvrsUppercaseRadix(t *testing.T) {
	e, _ := run(t, "255 16 10 string cvrs")
	require.Equal(t, 1, e.Depth())
	require.Equal(t, "FF", string(e.Ops[0].Str.Bytes()))
}

func TestCvrsNegativeRadixTwosComplement(t *testing.T) {
	e, _ := run(t, "-1 16 10 string cvrs")
	require.Equal(t, 1, e.Depth())
	require.Equal(t, "FFFFFFFF", string(e.Ops[0].Str.Bytes()))
}

func TestCvrUnparsableStringSignalsUndefinedResult(t *testing.T) {
	out := captureOut(t, "(abc) cvr")
	require.Contains(t, out, "undefinedresult")
}

func TestCvxXcheck(t *testing.T) {
	e, _ := run(t, "/foo cvx xcheck")
	require.Equal(t, 1, e.Depth())
	require.Equal(t, true, e.Ops[0].Bool)
}

func TestSaveRestoreProducesSaveTag(t *testing.T) {
	e, _ := run(t, "save")
	require.Equal(t, 1, e.Depth())
	require.Equal(t, object.TagSave, e.Ops[0].Tag)
}

func TestAnchorSearchMatch(t *testing.T) {
	e, _ := run(t, "(hello world) (hello) anchorsearch")
	require.Equal(t, 3, e.Depth())
	require.Equal(t, " world", string(e.Ops[0].Str.Bytes()))
	require.Equal(t, "hello", string(e.Ops[1].Str.Bytes()))
	require.Equal(t, true, e.Ops[2].Bool)
}

func TestAnchorSearchNoMatch(t *testing.T) {
	e, _ := run(t, "(hello world) (world) anchorsearch")
	require.Equal(t, 2, e.Depth())
	require.Equal(t, "hello world", string(e.Ops[0].Str.Bytes()))
	require.Equal(t, false, e.Ops[1].Bool)
}

func TestSearchFindsSubstring(t *testing.T) {
	e, _ := run(t, "(hello world) (wor) search")
	require.Equal(t, 4, e.Depth())
	require.Equal(t, "ld", string(e.Ops[0].Str.Bytes()))
	require.Equal(t, "wor", string(e.Ops[1].Str.Bytes()))
	require.Equal(t, "hello ", string(e.Ops[2].Str.Bytes()))
	require.Equal(t, true, e.Ops[3].Bool)
}

func TestTokenReadsOneObjectOffFront(t *testing.T) {
	e, _ := run(t, "(42 rest) token")
	require.Equal(t, 3, e.Depth())
	require.Equal(t, " rest", string(e.Ops[0].Str.Bytes()))
	require.Equal(t, int32(42), e.Ops[1].Int)
	require.Equal(t, true, e.Ops[2].Bool)
}

func TestTokenOnEmptyStringFails(t *testing.T) {
	e, _ := run(t, "() token")
	require.Equal(t, 1, e.Depth())
	require.Equal(t, false, e.Ops[0].Bool)
}

func TestPathforallWithNoGraphicsSignalsNoCurrentPoint(t *testing.T) {
	out := captureOut(t, "{}{}{}{} pathforall")
	require.Contains(t, out, "nocurrentpoint")
}

func TestGsaveGrestoreAreNoopsWithoutGraphics(t *testing.T) {
	_, out := run(t, "gsave grestore")
	require.Empty(t, out.String())
}

func TestDotErrorRaisesNamedError(t *testing.T) {
	out := captureOut(t, "/rangecheck .error")
	require.Contains(t, out, "rangecheck")
}

// captureOut runs src and returns whatever it wrote to stdout, tolerating a
// FatalTilt (an uncaught error's diagnostic is the very thing under test).
func captureOut(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer
	e := engine.New(&out)
	e.PushSource("test", []byte(src))
	_ = e.Run()
	return out.String()
}
