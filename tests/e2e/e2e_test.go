package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillcheck/skillcheck/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "skillcheck-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "skillcheck")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/skillcheck")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	// Child processes record history under the temp dir, not the real home.
	os.Setenv("SKILLCHECK_HOME", filepath.Join(dir, "home"))

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/skills", name))
	return abs
}

// run executes the binary and returns its stdout and exit code. Error
// output goes to stderr and never mixes into the captured stream.
func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.Output()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Validate Tests ---

func TestE2E_Validate(t *testing.T) {
	out, code := run(t, "validate", fixturePath("pdf-processing"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "pdf-processing")
	assert.Contains(t, out, "VALID")
	assert.NotContains(t, out, "INVALID")
	assert.Contains(t, out, "All checks passed.")
}

func TestE2E_ValidateJSON(t *testing.T) {
	out, code := run(t, "validate", fixturePath("pdf-processing"), "--json")
	assert.Equal(t, 0, code)

	var report domain.Report
	err := json.Unmarshal([]byte(out), &report)
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Equal(t, "pdf-processing", report.SkillName)
	assert.Len(t, report.Checks, 16, "should run the full battery")
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
}

func TestE2E_ValidateInvalid(t *testing.T) {
	out, code := run(t, "validate", fixturePath("broken-skill"))
	assert.Equal(t, 1, code, "should exit 1 on blocking errors")
	assert.Contains(t, out, "INVALID")
}

func TestE2E_ValidateInvalidJSON(t *testing.T) {
	out, code := run(t, "validate", fixturePath("broken-skill"), "--json")
	assert.Equal(t, 1, code)

	var report domain.Report
	err := json.Unmarshal([]byte(out), &report)
	require.NoError(t, err)
	assert.False(t, report.Valid)
	assert.Len(t, report.Errors, 2)
	assert.Len(t, report.Warnings, 3)
}

func TestE2E_ValidateMissingSkillFile(t *testing.T) {
	out, code := run(t, "validate", fixturePath("empty-skill"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "skill_file")
}

func TestE2E_ValidateNonexistentPath(t *testing.T) {
	_, code := run(t, "validate", fixturePath("no-such-skill"))
	assert.Equal(t, 1, code)
}

// --- List Tests ---

func TestE2E_List(t *testing.T) {
	out, code := run(t, "list", fixturePath(""))
	assert.Equal(t, 1, code, "an invalid skill should fail the run")
	assert.Contains(t, out, "Skills (3)")
	assert.Contains(t, out, "broken-skill")
}

func TestE2E_ListJSON(t *testing.T) {
	out, code := run(t, "list", fixturePath(""), "--json")
	assert.Equal(t, 1, code)

	var reports []*domain.Report
	err := json.Unmarshal([]byte(out), &reports)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "broken-skill", reports[0].SkillName)
	assert.Equal(t, "pdf-processing", reports[1].SkillName)
	assert.Equal(t, "tuned-skill", reports[2].SkillName)
}

// --- History Tests ---

func TestE2E_HistoryRoundTrip(t *testing.T) {
	_, code := run(t, "validate", fixturePath("pdf-processing"))
	require.Equal(t, 0, code)

	out, code := run(t, "history", fixturePath("pdf-processing"), "--json")
	assert.Equal(t, 0, code)

	var entries []domain.RunEntry
	err := json.Unmarshal([]byte(out), &entries)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.True(t, entries[len(entries)-1].Valid)
	assert.NotEmpty(t, entries[0].Timestamp)
}

// --- Version Test ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "skillcheck")
}
