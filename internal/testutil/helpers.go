// Package testutil provides reusable test utilities for taskmgr tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv provides access to isolated test directories
type TestEnv struct {
	Home       string // Mocked HOME directory
	ProjectDir string // Test project directory (the working directory)
	GlobalDir  string // ~/.taskmgr equivalent
	ProjectCfg string // .taskmgr in project
	t          *testing.T
}

// SetupTestEnv creates an isolated test environment with mocked HOME and
// changes into the project directory. Both are restored after the test.
// Tests using it cannot run in parallel.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	tmpProject := t.TempDir()

	env := &TestEnv{
		Home:       tmpHome,
		ProjectDir: tmpProject,
		GlobalDir:  filepath.Join(tmpHome, ".taskmgr"),
		ProjectCfg: filepath.Join(tmpProject, ".taskmgr"),
		t:          t,
	}

	// Set HOME to temp directory (auto-restored after test)
	t.Setenv("HOME", tmpHome)
	for _, key := range []string{"TASKMGR_STORE_PATH", "TASKMGR_STORE_FORMAT", "TASKMGR_LOG_LEVEL", "TASKMGR_LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpProject); err != nil {
		t.Fatalf("Failed to change to project directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})

	return env
}

// CreateFile creates a file with the given content. Relative paths are
// resolved against the project directory.
func (e *TestEnv) CreateFile(path, content string) string {
	e.t.Helper()

	fullPath := e.abs(path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
	return fullPath
}

// CreateProjectConfig writes .taskmgr/config.yaml in the project directory.
func (e *TestEnv) CreateProjectConfig(content string) string {
	e.t.Helper()
	return e.CreateFile(filepath.Join(e.ProjectCfg, "config.yaml"), content)
}

// CreateGlobalConfig writes ~/.taskmgr/config.yaml.
func (e *TestEnv) CreateGlobalConfig(content string) string {
	e.t.Helper()
	return e.CreateFile(filepath.Join(e.GlobalDir, "config.yaml"), content)
}

// ReadFile reads a file from the test environment.
func (e *TestEnv) ReadFile(path string) string {
	e.t.Helper()

	data, err := os.ReadFile(e.abs(path))
	if err != nil {
		e.t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// FileExists checks if a file exists in the test environment.
func (e *TestEnv) FileExists(path string) bool {
	e.t.Helper()
	_, err := os.Stat(e.abs(path))
	return err == nil
}

func (e *TestEnv) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.ProjectDir, path)
}
