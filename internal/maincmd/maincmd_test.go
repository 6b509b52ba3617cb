package maincmd_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/nedbat/stilted/internal/maincmd"
)

func runCmd(t *testing.T, args ...string) (mainer.ExitCode, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := maincmd.Cmd{}
	code := c.Main(append([]string{"stilted"}, args...), mainer.Stdio{
		Stdout: &out,
		Stderr: &errOut,
		Stdin:  strings.NewReader(""),
	})
	return code, out.String(), errOut.String()
}

func TestRunCodeFlag(t *testing.T) {
	code, out, _ := runCmd(t, "-c", "40 60 add =")
	require.Equal(t, mainer.Success, code)
	require.Equal(t, "100\n", out)
}

func TestVersionFlag(t *testing.T) {
	code, out, _ := runCmd(t, "-v")
	require.Equal(t, mainer.Success, code)
	require.Contains(t, out, "stilted")
}

func TestHelpFlag(t *testing.T) {
	code, out, _ := runCmd(t, "-h")
	require.Equal(t, mainer.Success, code)
	require.Contains(t, out, "usage:")
}

func TestQuitExitsCleanly(t *testing.T) {
	code, _, _ := runCmd(t, "-c", "quit")
	require.Equal(t, mainer.Success, code)
}

func TestUncaughtErrorIsFailure(t *testing.T) {
	code, _, errOut := runCmd(t, "-c", "1 0 dict undef")
	require.Equal(t, mainer.Failure, code)
	require.NotEmpty(t, errOut)
}
