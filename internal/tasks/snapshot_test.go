package tasks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() []Task {
	return []Task{
		{ID: 1, Description: "Buy milk", Complete: true, DateAdded: Date{Year: 2024, Month: time.January, Day: 5}},
		{ID: 2, Description: "Write report", DateAdded: Date{Year: 2024, Month: time.February, Day: 29}},
		{ID: 3, Description: `Quote "this", and: that`, DateAdded: Date{Year: 2025, Month: time.October, Day: 10}},
	}
}

func TestSnapshotLoadMissingFile(t *testing.T) {
	s := NewSnapshot(filepath.Join(t.TempDir(), "tasks.json"), "")

	tasks, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestSnapshotRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name   string
		file   string
		format Format
	}{
		{"json", "tasks.json", FormatJSON},
		{"yaml", "tasks.yaml", FormatYAML},
		{"yml", "tasks.yml", FormatYAML},
		{"toml", "tasks.toml", FormatTOML},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnapshot(filepath.Join(t.TempDir(), tc.file), "")
			require.Equal(t, tc.format, s.Format())

			require.NoError(t, s.Save(sampleTasks()))

			loaded, err := s.Load()
			require.NoError(t, err)
			assert.Equal(t, sampleTasks(), loaded)
		})
	}
}

func TestSnapshotRoundTripEmpty(t *testing.T) {
	for _, file := range []string{"tasks.json", "tasks.yaml", "tasks.toml"} {
		t.Run(file, func(t *testing.T) {
			s := NewSnapshot(filepath.Join(t.TempDir(), file), "")
			require.NoError(t, s.Save(nil))

			loaded, err := s.Load()
			require.NoError(t, err)
			assert.Empty(t, loaded)
		})
	}
}

func TestSnapshotJSONLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	s := NewSnapshot(path, "")
	require.NoError(t, s.Save(sampleTasks()[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := `[
  {
    "id": 1,
    "description": "Buy milk",
    "complete": true,
    "date_added": "January 05, 2024"
  }
]
`
	assert.Equal(t, expected, string(data))
}

func TestSnapshotLoadsOriginalFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	content := `[
  {"id": 1, "description": "Buy milk", "complete": false, "date_added": "January 05, 2024"},
  {"id": 2, "description": "Call mom", "complete": true, "date_added": "December 31, 2023"}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	loaded, err := NewSnapshot(path, "").Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Call mom", loaded[1].Description)
	assert.True(t, loaded[1].Complete)
	assert.Equal(t, Date{Year: 2023, Month: time.December, Day: 31}, loaded[1].DateAdded)
}

func TestSnapshotLoadCorrupt(t *testing.T) {
	for _, tc := range []struct {
		name    string
		file    string
		content string
	}{
		{"invalid json", "tasks.json", `[{"id": 1,`},
		{"wrong shape", "tasks.json", `{"id": 1}`},
		{"bad date", "tasks.json", `[{"id": 1, "description": "x", "complete": false, "date_added": "2024-01-05"}]`},
		{"missing date", "tasks.json", `[{"id": 1, "description": "x", "complete": false}]`},
		{"zero id", "tasks.json", `[{"id": 0, "description": "x", "complete": false, "date_added": "January 05, 2024"}]`},
		{"blank description", "tasks.json", `[{"id": 1, "description": "  ", "complete": false, "date_added": "January 05, 2024"}]`},
		{"invalid yaml", "tasks.yaml", "- id: [1\n"},
		{"invalid toml", "tasks.toml", "[[tasks]\nid = 1\n"},
		{"misnamed toml table", "tasks.toml", "[[task]]\nid = 1\ndescription = \"x\"\ncomplete = false\ndate_added = \"January 05, 2024\"\n"},
		{"unknown toml field", "tasks.toml", "[[tasks]]\nid = 1\ndescription = \"x\"\ncomplete = false\ndate_added = \"January 05, 2024\"\npriority = 2\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))

			_, err := NewSnapshot(path, "").Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorruptData)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestSnapshotLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0644))

	loaded, err := NewSnapshot(path, "").Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSnapshotLoadUnreadable(t *testing.T) {
	// A directory in place of the file is a read error, not corrupt data
	dir := t.TempDir()

	_, err := NewSnapshot(dir, FormatJSON).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCorruptData)
}

func TestSnapshotSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.json")
	s := NewSnapshot(path, "")

	require.NoError(t, s.Save(sampleTasks()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSnapshotSaveOverwritesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	s := NewSnapshot(path, "")

	require.NoError(t, s.Save(sampleTasks()))
	require.NoError(t, s.Save(sampleTasks()[:1]))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, loaded, 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file %s", e.Name())
	}
}

func TestSnapshotSaveFailure(t *testing.T) {
	// Parent path is a regular file, so the directory can't be created
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	s := NewSnapshot(filepath.Join(blocker, "tasks.json"), "")
	err := s.Save(sampleTasks())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageWrite)
}

func TestSnapshotExplicitFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	s := NewSnapshot(path, FormatYAML)
	require.NoError(t, s.Save(sampleTasks()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "January 05, 2024")

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleTasks(), loaded)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":      "",
		"json":  FormatJSON,
		"JSON":  FormatJSON,
		"yaml":  FormatYAML,
		"yml":   FormatYAML,
		" toml": FormatTOML,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("tasks.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("tasks"))
	assert.Equal(t, FormatYAML, FormatFromPath("/a/b/tasks.YAML"))
	assert.Equal(t, FormatTOML, FormatFromPath("tasks.toml"))
}
