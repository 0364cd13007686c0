package maincmd

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipp22/ippvm/internal/filetest"
	"github.com/ipp22/ippvm/internal/ippvm"
)

var testUpdateE2ETests = flag.Bool("test.update-e2e-tests", false, "If set, replace expected end-to-end test results with actual results.")

// wantCodes records each scenario's expected process exit code, the one
// outcome the golden-diff harness below has no notion of (it only compares
// stdout/stderr text).
var wantCodes = map[string]int{
	"arithmetic.xml": ippvm.Success,
	"frames.xml":     ippvm.MissingValueErr,
	"labels.xml":     ippvm.Success,
	"nilcompare.xml": ippvm.OperandTypeErr,
	"readfail.xml":   ippvm.Success,
	"exitvalue.xml":  2,
}

// TestEndToEndScenarios drives the six whole-program scenarios named in the
// specification through Cmd.Main exactly as the compiled binary would run
// them, diffing captured stdout/stderr against golden files and asserting
// on the resulting exit code.
func TestEndToEndScenarios(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".xml") {
		t.Run(fi.Name(), func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			c := &Cmd{}

			args := []string{"ippvm", "--source=" + filepath.Join(srcDir, fi.Name())}
			if inFile := filepath.Join(srcDir, strings.TrimSuffix(fi.Name(), ".xml")+".in"); fileExists(inFile) {
				args = append(args, "--input="+inFile)
			}

			code := c.Main(args, mainer.Stdio{Stdout: &stdout, Stderr: &stderr})

			wantCode, ok := wantCodes[fi.Name()]
			require.True(t, ok, "no expected exit code recorded for %s", fi.Name())
			assert.Equal(t, wantCode, int(code))

			filetest.DiffOutput(t, fi, stdout.String(), resultDir, testUpdateE2ETests)
			filetest.DiffErrors(t, fi, stderr.String(), resultDir, testUpdateE2ETests)
		})
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// TestExitValueReportsStatistics checks the sixth scenario's statistics
// requirement: the --stats output must include insts, with EXIT counted.
func TestExitValueReportsStatistics(t *testing.T) {
	statsPath := filepath.Join(t.TempDir(), "stats.txt")
	var stdout, stderr bytes.Buffer

	c := &Cmd{}
	args := []string{
		"ippvm",
		"--source=testdata/in/exitvalue.xml",
		"--insts",
		"--stats=" + statsPath,
	}
	code := c.Main(args, mainer.Stdio{Stdout: &stdout, Stderr: &stderr})
	require.Equal(t, 2, int(code))
	require.Empty(t, stderr.String())

	got, err := os.ReadFile(statsPath)
	require.NoError(t, err)
	assert.Equal(t, "3\n", string(got))
}
