package lexer_test

import (
	"bytes"
	"flag"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/nedbat/stilted/internal/filetest"
	"github.com/nedbat/stilted/lang/lexer"
	"github.com/nedbat/stilted/lang/object"
	"github.com/nedbat/stilted/lang/token"
)

var testUpdateLexerTests = flag.Bool("test.update-lexer-tests", false, "If set, replace expected lexer golden results with actual results.")

// TestScanGolden drives the lexer over every testdata/in/*.ps fixture and
// diffs the syntax-form dump of its token stream against testdata/out.
func TestScanGolden(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".ps") {
		t.Run(fi.Name(), func(t *testing.T) {
			fs := token.NewFileSet()
			l, err := lexer.FromFile(fs, filepath.Join(srcDir, fi.Name()))
			var buf bytes.Buffer
			if err != nil {
				fmt.Fprintf(&buf, "error: %s\n", err)
			} else {
				toks, scanErr := lexer.ScanAll(l)
				if scanErr != nil {
					fmt.Fprintf(&buf, "error: %s\n", scanErr)
				}
				for _, tok := range toks {
					fmt.Fprintln(&buf, object.Syntax(tok))
				}
			}
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateLexerTests)
		})
	}
}
