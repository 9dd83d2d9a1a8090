// Package testutil provides common utility functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/loan-simulator/internal/simulation"
)

// FindOutcome finds a simulation outcome by name.
// Returns a pointer to the outcome if found, nil otherwise.
func FindOutcome(outcomes []simulation.Outcome, name string) *simulation.Outcome {
	for i := range outcomes {
		if outcomes[i].Name == name {
			return &outcomes[i]
		}
	}
	return nil
}

// WriteFile writes contents to name inside a per-test temporary directory and
// returns the full path.
func WriteFile(t testing.TB, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
