package assets

import (
	"os"
	"path/filepath"
	"testing"
)

const pitTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="50" height="40" tilewidth="20" tileheight="20" infinite="0" nextlayerid="2" nextobjectid="2">
 <properties>
  <property name="birds" type="int" value="2"/>
 </properties>
 <objectgroup id="1" name="Structure">
  <object id="1" x="480" y="640" width="40" height="40">
   <properties>
    <property name="kind" value="pig"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const hillYAML = `name: Hill
birds: 3
objects:
  - {kind: block, x: 0.5, width: 60, height: 40}
  - {kind: pig, x: 0.5, radius: 15}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func TestLoadLevels(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "02_pit.tmx"), pitTMX)
	writeFile(t, filepath.Join(dir, "01_hill.yaml"), hillYAML)
	writeFile(t, filepath.Join(dir, "README.txt"), "not a level")
	if err := os.Mkdir(filepath.Join(dir, "drafts"), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	t.Run("directory", func(t *testing.T) {
		levels, err := LoadLevels(dir)
		if err != nil {
			t.Fatalf("LoadLevels() failed: %v", err)
		}
		if len(levels) != 2 {
			t.Fatalf("got %d levels, want 2", len(levels))
		}
		if levels[0].Name != "Hill" || levels[1].Name != "02_pit" {
			t.Errorf("levels = %q, %q; want Hill, 02_pit", levels[0].Name, levels[1].Name)
		}
		if levels[1].Birds != 2 || len(levels[1].Objects) != 1 {
			t.Errorf("pit = %+v", levels[1])
		}
	})

	t.Run("single file", func(t *testing.T) {
		levels, err := LoadLevels(filepath.Join(dir, "02_pit.tmx"))
		if err != nil {
			t.Fatalf("LoadLevels() failed: %v", err)
		}
		if len(levels) != 1 || levels[0].Objects[0].X != 0.5 {
			t.Errorf("levels = %+v", levels)
		}
	})

	t.Run("bundled", func(t *testing.T) {
		levels, err := LoadLevels("")
		if err != nil {
			t.Fatalf("LoadLevels() failed: %v", err)
		}
		if len(levels) != 5 {
			t.Errorf("got %d bundled levels, want 5", len(levels))
		}
	})

	t.Run("errors", func(t *testing.T) {
		if _, err := LoadLevels(filepath.Join(dir, "missing")); err == nil {
			t.Error("expected an error for a missing path")
		}
		if _, err := LoadLevels(filepath.Join(dir, "drafts")); err == nil {
			t.Error("expected an error for a directory without levels")
		}
		if _, err := LoadLevels(filepath.Join(dir, "README.txt")); err == nil {
			t.Error("expected an error for an unsupported file")
		}
	})
}
