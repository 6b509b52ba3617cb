package engine_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nedbat/stilted/lang/engine"
	"github.com/nedbat/stilted/lang/object"
)

func run(t *testing.T, src string) (*engine.Engine, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	e := engine.New(&out)
	e.PushSource("test", []byte(src))
	require.NoError(t, e.Run())
	return e, &out
}

func TestForAccumulates(t *testing.T) {
	e, _ := run(t, "0 1 1 4 {add} for")
	require.Equal(t, 1, e.Depth())
	require.Equal(t, int32(10), e.Ops[0].Int)
}

func TestUserProcedureAverage(t *testing.T) {
	e, _ := run(t, "/average {add 2 div} def 40 60 average")
	require.Equal(t, 1, e.Depth())
	require.Equal(t, object.TagReal, e.Ops[0].Tag)
	require.InDelta(t, 50.0, e.Ops[0].Real, 1e-9)
}

func TestRollNegative(t *testing.T) {
	e, _ := run(t, "(a)(b)(c) 3 -1 roll")
	require.Equal(t, 3, e.Depth())
	require.Equal(t, "b", string(e.Ops[0].Str.Bytes()))
	require.Equal(t, "c", string(e.Ops[1].Str.Bytes()))
	require.Equal(t, "a", string(e.Ops[2].Str.Bytes()))
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	e, _ := run(t, "/foo 17 def save /foo 23 def foo exch restore foo")
	require.Equal(t, 2, e.Depth())
	require.Equal(t, int32(23), e.Ops[0].Int)
	require.Equal(t, int32(17), e.Ops[1].Int)
}

func TestPutOnArrayThenForall(t *testing.T) {
	e, _ := run(t, "[1 2 3] dup 1 99 put {} forall")
	require.Equal(t, 3, e.Depth())
	require.Equal(t, int32(1), e.Ops[0].Int)
	require.Equal(t, int32(99), e.Ops[1].Int)
	require.Equal(t, int32(3), e.Ops[2].Int)
}

func TestErrordictOverride(t *testing.T) {
	e, out := run(t, "errordict /undefined { (HELLO) } put xyzzy")
	require.Equal(t, 2, e.Depth())
	require.Equal(t, object.TagName, e.Ops[0].Tag)
	require.False(t, e.Ops[0].Literal, "the funnel pushes the offending object, an executable /xyzzy")
	require.Equal(t, "xyzzy", e.Ops[0].NameV)
	require.Equal(t, "HELLO", string(e.Ops[1].Str.Bytes()))
	require.Empty(t, out.String(), "a user override of errordict must preempt the default diagnostic")
}

func TestStoppedCatchesStop(t *testing.T) {
	e, _ := run(t, "{ 1 2 add stop } stopped 99")
	require.Equal(t, 3, e.Depth())
	require.Equal(t, int32(3), e.Ops[0].Int)
	require.Equal(t, true, e.Ops[1].Bool)
	require.Equal(t, int32(99), e.Ops[2].Int)
}

func TestExitLeavesLoopEarly(t *testing.T) {
	e, _ := run(t, "1 1 10 { dup 3 gt {exit} if } for")
	require.Equal(t, 4, e.Depth())
	require.Equal(t, int32(1), e.Ops[0].Int)
	require.Equal(t, int32(2), e.Ops[1].Int)
	require.Equal(t, int32(3), e.Ops[2].Int)
	require.Equal(t, int32(4), e.Ops[3].Int)
}

func TestRestoreOnInvalidatedSave(t *testing.T) {
	e, _ := run(t, "save dup restore")
	e.PushSource("test2", []byte("restore"))
	err := e.Run()
	require.Error(t, err)
	fatal, ok := err.(*object.FatalTilt)
	require.True(t, ok, "an uncaught error at top level escalates to stop's own fatal exit")
	require.Contains(t, fatal.Reason, "stop")
}

func TestRestoreWithPostSaveCompositeOnStackFails(t *testing.T) {
	var out bytes.Buffer
	e := engine.New(&out)
	e.PushSource("test", []byte("save [1 2 3] exch restore"))
	err := e.Run()
	require.Error(t, err)
	require.Contains(t, out.String(), "invalidrestore")
	// the operands restore consumed (the array, the save mark) are rolled
	// back by the error funnel, and the save mark itself is left valid: a
	// failed restore touches no VM state.
	require.Equal(t, object.TagArray, e.Ops[0].Tag)
	require.Equal(t, object.TagSave, e.Ops[1].Tag)
	require.True(t, e.Ops[1].SaveV.Valid, "a failed restore must not invalidate the target save point")
}

func TestExitWithNoEnclosingFrameIsFatal(t *testing.T) {
	var out bytes.Buffer
	e := engine.New(&out)
	e.PushSource("test", []byte("exit"))
	err := e.Run()
	require.Error(t, err)
	_, ok := err.(*object.FatalTilt)
	require.True(t, ok)
}

func TestClearToMarkWithNoMarkSignalsUnmatchedMark(t *testing.T) {
	var out bytes.Buffer
	e := engine.New(&out)
	e.PushSource("test", []byte("1 2 3 cleartomark"))
	err := e.Run()
	require.Error(t, err, "an uncaught error escalates through stop with no enclosing stopped frame")
	require.Contains(t, out.String(), "unmatchedmark")
}
