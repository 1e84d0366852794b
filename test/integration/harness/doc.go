// Package harness provides utilities for integration testing the flowstate CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - FLOWSTATE_HOME: Isolated per test (temp directory)
//   - FLOWSTATE_DEBUG: Disabled to reduce noise
//   - FLOWSTATE_OTEL_ENDPOINT: Cleared so no metrics leave the test
package harness
