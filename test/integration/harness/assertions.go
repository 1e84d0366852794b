package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess verifies the command exited with code 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Zero(tb, result.ExitCode,
		"Expected exit 0, got %d.\nStdout: %s\nStderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure verifies the command exited non-zero.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode,
		"Expected a failing exit code.\nStdout: %s", result.Stdout)
}

// AssertStdoutContains verifies stdout contains every expected fragment.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected ...string) {
	tb.Helper()
	for _, e := range expected {
		assert.Contains(tb, result.Stdout, e, "Stdout is missing %q", e)
	}
}

// AssertStderrContains verifies stderr contains the expected fragment.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "Stderr is missing %q", expected)
}

// AssertValidJSON decodes stdout into target and fails the test on malformed output.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target),
		"Stdout is not valid JSON: %s", result.Stdout)
}

// AssertCategories verifies stdout is an export object holding exactly the given top-level keys.
func AssertCategories(tb testing.TB, result CommandResult, expected ...string) map[string]json.RawMessage {
	tb.Helper()
	var export map[string]json.RawMessage
	AssertValidJSON(tb, result, &export)

	keys := make([]string, 0, len(export))
	for k := range export {
		keys = append(keys, k)
	}
	assert.ElementsMatch(tb, expected, keys)
	return export
}
