// Package assets resolves the level set a game session plays: the levels
// bundled with the binary, or a user supplied file or directory.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/slingshot/shared/leveldata"
)

// LoadLevels returns the bundled levels when path is empty. A .yaml or .tmx
// path loads that single level; a directory loads every level in it, YAML and
// TMX together, ordered by file name.
func LoadLevels(path string) ([]leveldata.Level, error) {
	if path == "" {
		return leveldata.LoadShipped()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("levels %s: %w", path, err)
	}
	if !info.IsDir() {
		level, err := loadFile(filepath.Dir(path), filepath.Base(path))
		if err != nil {
			return nil, err
		}
		return []leveldata.Level{*level}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("levels %s: %w", path, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".tmx":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("levels %s: no .yaml or .tmx files", path)
	}

	levels := make([]leveldata.Level, 0, len(names))
	for _, name := range names {
		level, err := loadFile(path, name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, *level)
	}
	return levels, nil
}

func loadFile(dir, name string) (*leveldata.Level, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tmx":
		return leveldata.LoadTMX(os.DirFS(dir), name)
	case ".yaml", ".yml":
		return leveldata.LoadYAML(filepath.Join(dir, name))
	default:
		return nil, fmt.Errorf("level %s: unsupported file type", name)
	}
}
