package tasks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a snapshot encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat parses a format name. The empty string yields "" so callers
// can fall back to FormatFromPath.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported snapshot format: %s (supported: json, yaml, toml)", name)
	}
}

// FormatFromPath infers the format from the file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// tomlDocument wraps the task list since TOML has no top-level arrays
type tomlDocument struct {
	Tasks []Task `toml:"tasks"`
}

func encode(format Format, tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(tasks)
	case FormatTOML:
		buf := new(bytes.Buffer)
		if err := toml.NewEncoder(buf).Encode(tomlDocument{Tasks: tasks}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported snapshot format: %s", format)
	}
}

func decode(format Format, data []byte) ([]Task, error) {
	tasks := []Task{}
	if len(bytes.TrimSpace(data)) == 0 {
		return tasks, nil
	}

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &tasks); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			return nil, err
		}
	case FormatTOML:
		var doc tomlDocument
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unexpected key %q", undecoded[0].String())
		}
		tasks = doc.Tasks
	default:
		return nil, fmt.Errorf("unsupported snapshot format: %s", format)
	}

	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}
