package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/encalc/internal/bench/report"
)

const repoSuite = "../../../configs/bench/encalc_v1.yaml"

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{
			name:     "arguments",
			args:     []string{"eval", "3a2c4", "3ae4c66fb32", "3c4d2aee2a4c41fc4f"},
			expected: "20\n235\n990\n",
		},
		{
			name:     "stdin",
			stdin:    "1a2\n7d2\r\n",
			args:     []string{"eval"},
			expected: "3\n3\n",
		},
		{
			name:     "with postfix",
			args:     []string{"eval", "--postfix", "3a2c4"},
			expected: "20\t3 2 + 4 *\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestEval_ReportsFailuresAndContinues(t *testing.T) {
	stdout, stderr, err := execute(t, "", "eval", "1d0", "2a2", "1a2f")

	require.Error(t, err)
	assert.Equal(t, "2 of 3 expressions failed", err.Error())
	assert.Equal(t, "4\n", stdout)
	assert.Contains(t, stderr, "1d0: division by zero")
	assert.Contains(t, stderr, "1a2f: missing left parenthesis")
}

func TestRPN(t *testing.T) {
	stdout, _, err := execute(t, "", "rpn", "3a2c4")
	require.NoError(t, err)
	assert.Equal(t, "3 2 + 4 *\n", stdout)

	stdout, _, err = execute(t, "", "rpn", "--encoded", "3a2c4")
	require.NoError(t, err)
	assert.Equal(t, "3 2 a 4 c\n", stdout)

	_, _, err = execute(t, "", "rpn", "ee1f")
	assert.Error(t, err)

	_, _, err = execute(t, "", "rpn")
	assert.Error(t, err)
}

func TestTokens(t *testing.T) {
	stdout, _, err := execute(t, "", "tokens", "12ae3f")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"POS", "TYPE", "VALUE", "OPERATOR"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "NUMBER", "12", "-"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "OPERATOR", "a", "ADD"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"5", "OPERATOR", "f", "RIGHT_PAREN"}, strings.Fields(lines[5]))
}

func TestTokens_InvalidCharacter(t *testing.T) {
	stdout, _, err := execute(t, "", "tokens", "1x")

	require.Error(t, err)
	assert.Contains(t, stdout, "NUMBER")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "encalc v"+Version)
	assert.Contains(t, stdout, "Go Version:")
}

func TestLogLevel_Invalid(t *testing.T) {
	_, _, err := execute(t, "", "--log-level", "loud", "version")
	assert.Error(t, err)
}

func TestBench_RequiresSpecOrSuite(t *testing.T) {
	_, _, err := execute(t, "", "bench")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--spec or --suite")
}

func TestBench_QuickNativeSuite(t *testing.T) {
	stdout, _, err := execute(t, "", "bench", "--suite", repoSuite, "--runs", "2")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Job: quick")
	assert.Contains(t, stdout, "All cases passed")
}

func TestBench_JSONWithTagFilter(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")

	stdout, _, err := execute(t, "", "bench", "--suite", repoSuite, "--tag", "grouping", "--json", "-o", out)
	require.NoError(t, err)

	var printed report.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &printed))
	require.Len(t, printed.Jobs, 1)
	assert.True(t, printed.AllPassed())
	for _, e := range printed.Jobs[0].PerCase {
		assert.Equal(t, "native", e.EngineName)
	}

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var written report.Report
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, printed.Meta.RunID, written.Meta.RunID)
}

func TestBench_FailingSuiteExitsWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: wrong
cases:
  - id: bad-sum
    expression: 1a1
    expect:
      result: 3
`), 0o644))

	stdout, _, err := execute(t, "", "bench", "--suite", path)

	assert.ErrorIs(t, err, errBenchFailed)
	assert.Contains(t, stdout, "bad-sum")
}

func TestSchema(t *testing.T) {
	stdout, _, err := execute(t, "", "schema", "suite")
	require.NoError(t, err)

	var doc struct {
		Title      string                     `json:"title"`
		Required   []string                   `json:"required"`
		Properties map[string]json.RawMessage `json:"properties"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "TestSuite", doc.Title)
	assert.ElementsMatch(t, []string{"name", "cases"}, doc.Required)
	assert.Contains(t, string(doc.Properties["cases"]), "division_by_zero")

	out := filepath.Join(t.TempDir(), "spec.schema.json")
	stdout, _, err = execute(t, "", "schema", "spec", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"BenchSpec"`)
	assert.NotContains(t, string(data), `"dir"`)

	_, _, err = execute(t, "", "schema", "report")
	assert.Error(t, err)
}
