package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flowstate/test/integration/harness"
)

func TestBreaksAddAndList(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "breaks")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Breaks today: 0")
	harness.AssertStdoutContains(t, result, "No breaks recorded yet.")

	result = harness.RunCommand(t, env, "breaks", "add", "Stretch")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, `Recorded "Stretch"`)
	harness.AssertStdoutContains(t, result, "(1 today)")

	result = harness.RunCommand(t, env, "breaks", "add")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "(2 today)")

	result = harness.RunCommand(t, env, "breaks", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Breaks today: 2")
	harness.AssertStdoutContains(t, result, "Stretch")

	result = harness.RunCommand(t, env, "breaks", "list", "--format", "json", "-n", "1")
	harness.AssertSuccess(t, result)

	var breaks []struct {
		Timestamp int64  `json:"timestamp"`
		Type      string `json:"type"`
	}
	harness.AssertValidJSON(t, result, &breaks)
	assert.Len(t, breaks, 1)
	assert.Positive(t, breaks[0].Timestamp)
}
