package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowstate/test/integration/harness"
)

const sampleExport = `{
  "focusSessions": [
    {"date": "2026-03-10T09:00:00Z", "duration": 25, "completed": true},
    {"date": "2026-03-10T10:00:00Z", "duration": 25, "completed": true}
  ],
  "breakHistory": [{"timestamp": 1773136800000, "type": "Walk"}],
  "userProfile": {"name": "Ada", "studyGoal": 60},
  "unknownThing": 42
}`

func TestDataImportExportRoundTrip(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	importFile := env.WriteFile("import.json", sampleExport)

	result := harness.RunCommand(t, env, "data", "import", importFile)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Imported 3 categories: breakHistory, focusSessions, userProfile")
	harness.AssertStdoutContains(t, result, "Ignored unknown keys: unknownThing")

	result = harness.RunCommand(t, env, "data", "export")
	harness.AssertSuccess(t, result)

	exported := harness.AssertCategories(t, result, "breakHistory", "focusSessions", "userProfile")

	var sessions []map[string]any
	require.NoError(t, json.Unmarshal(exported["focusSessions"], &sessions))
	assert.Len(t, sessions, 2)
}

func TestDataImportFromStdin(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommandWithStdin(t, env, `{"timerSettings":{"focusDuration":45,"shortBreakDuration":5,"longBreakDuration":15,"sessionsUntilLongBreak":4}}`,
		"data", "import", "-")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Imported 1 categories: timerSettings")

	result = harness.RunCommand(t, env, "settings", "show")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "45 min")
}

func TestDataImportRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "hello"},
		{name: "array", payload: "[1,2,3]"},
		{name: "truncated object", payload: `{"focusSessions": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			harness.AssertSuccess(t, harness.RunCommand(t, env, "breaks", "add", "Walk"))

			result := harness.RunCommandWithStdin(t, env, tt.payload, "data", "import", "-")
			harness.AssertFailure(t, result)
			harness.AssertStderrContains(t, result, "invalid import payload")

			// Existing data survives a rejected import
			result = harness.RunCommand(t, env, "breaks", "list")
			harness.AssertSuccess(t, result)
			harness.AssertStdoutContains(t, result, "Walk")
		})
	}
}

func TestDataExportToFile(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{name: "json", format: "json", expected: `"userProfile"`},
		{name: "yaml", format: "yaml", expected: "userProfile:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			harness.AssertSuccess(t, harness.RunCommand(t, env, "settings", "profile", "--name", "Ada"))

			out := filepath.Join(env.Home, "export."+tt.format)
			result := harness.RunCommand(t, env, "data", "export", "--format", tt.format, "-o", out)
			harness.AssertSuccess(t, result)
			harness.AssertStderrContains(t, result, "Exported to")

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.expected)
			assert.Contains(t, string(data), "Ada")
		})
	}
}

func TestDataClear(t *testing.T) {
	t.Run("force clears everything", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		harness.AssertSuccess(t, harness.RunCommand(t, env, "breaks", "add", "Walk"))

		result := harness.RunCommand(t, env, "data", "clear", "--force")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "All FlowState data cleared.")

		result = harness.RunCommand(t, env, "data", "export")
		harness.AssertSuccess(t, result)
		harness.AssertCategories(t, result)
	})

	t.Run("declined prompt keeps data", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		harness.AssertSuccess(t, harness.RunCommand(t, env, "breaks", "add", "Walk"))

		result := harness.RunCommandWithStdin(t, env, "n\n", "data", "clear")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Cancelled")

		result = harness.RunCommand(t, env, "breaks", "list")
		harness.AssertStdoutContains(t, result, "Walk")
	})

	t.Run("confirmed prompt clears", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		harness.AssertSuccess(t, harness.RunCommand(t, env, "breaks", "add", "Walk"))

		result := harness.RunCommandWithStdin(t, env, "y\n", "data", "clear")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "All FlowState data cleared.")
	})
}
