package leveldata

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed levels/*.yaml
var shippedFS embed.FS

// ParseYAML decodes and validates a single level. Unknown fields are rejected
// so typos in dimension names surface as errors instead of missing dimensions.
func ParseYAML(data []byte) (*Level, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var level Level
	if err := dec.Decode(&level); err != nil {
		return nil, fmt.Errorf("parse level YAML: %w", err)
	}
	if err := Validate(&level); err != nil {
		return nil, err
	}
	return &level, nil
}

// LoadYAML reads a level file from disk.
func LoadYAML(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	level, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if level.Name == "" {
		level.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return level, nil
}

// LoadAllYAML loads every .yaml level in dir within fsys, ordered by file name.
func LoadAllYAML(fsys fs.FS, dir string) ([]Level, error) {
	pattern := dir + "/*.yaml"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .yaml levels found in %s", dir)
	}

	levels := make([]Level, 0, len(matches))
	for _, path := range matches {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		level, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		if level.Name == "" {
			level.Name = strings.TrimSuffix(filepath.Base(path), ".yaml")
		}
		levels = append(levels, *level)
	}
	return levels, nil
}

// LoadShipped returns the levels bundled with the binary.
func LoadShipped() ([]Level, error) {
	return LoadAllYAML(shippedFS, "levels")
}
