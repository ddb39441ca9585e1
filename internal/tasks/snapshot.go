package tasks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Snapshot is the task list file on disk
type Snapshot struct {
	path   string
	format Format
}

// NewSnapshot returns a snapshot at path. An empty format is inferred from
// the file extension.
func NewSnapshot(path string, format Format) *Snapshot {
	if format == "" {
		format = FormatFromPath(path)
	}
	return &Snapshot{path: path, format: format}
}

// Path returns the snapshot file path
func (s *Snapshot) Path() string {
	return s.path
}

// Format returns the snapshot encoding
func (s *Snapshot) Format() Format {
	return s.format
}

// Load reads all tasks from disk in their stored order.
// Returns an empty list if the file doesn't exist.
func (s *Snapshot) Load() ([]Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Task{}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", s.path, err)
	}

	tasks, err := decode(s.format, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptData, s.path, err)
	}
	for _, t := range tasks {
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorruptData, s.path, err)
		}
	}

	return tasks, nil
}

// Save replaces the snapshot with tasks
func (s *Snapshot) Save(tasks []Task) error {
	data, err := encode(s.format, tasks)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal tasks: %v", ErrStorageWrite, err)
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create snapshot directory: %v", ErrStorageWrite, err)
		}
	}

	// Write atomically via temp file
	tmpPath := fmt.Sprintf("%s.%s.tmp", s.path, uuid.NewString())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to rename snapshot: %v", ErrStorageWrite, err)
	}

	return nil
}
