package integration

import (
	"os"
	"path/filepath"
	"testing"
)

// TestTempDir creates a temporary directory for integration tests
func TestTempDir(t *testing.T) string {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "navkit-integration-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		os.RemoveAll(tempDir)
	})

	return tempDir
}

// SetupTestEnvironment creates an isolated data directory and returns it
func SetupTestEnvironment(t *testing.T) string {
	t.Helper()

	dataDir := filepath.Join(TestTempDir(t), ".navkit")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatalf("Failed to create data dir: %v", err)
	}

	return dataDir
}

// WriteMenuFile writes raw menu content into the data directory
func WriteMenuFile(t *testing.T, dataDir, content string) string {
	t.Helper()

	menuPath := filepath.Join(dataDir, "menu.yaml")
	if err := os.WriteFile(menuPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write menu file: %v", err)
	}

	return menuPath
}
