package leveldata

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateObjects(t *testing.T) {
	tests := []struct {
		name      string
		obj       ObjectDescriptor
		wantField string
	}{
		{"pillar ok", ObjectDescriptor{X: 0.5, Kind: KindPillar, Height: 80}, ""},
		{"pillar without height", ObjectDescriptor{X: 0.5, Kind: KindPillar}, "height"},
		{"beam ok", ObjectDescriptor{X: 0.5, Kind: KindBeam, Width: 120}, ""},
		{"beam without width", ObjectDescriptor{X: 0.5, Kind: KindBeam, Height: 40}, "width"},
		{"block ok", ObjectDescriptor{X: 0.5, Kind: KindBlock, Width: 40, Height: 40, Material: MaterialStone}, ""},
		{"block without width", ObjectDescriptor{X: 0.5, Kind: KindBlock, Height: 40}, "width"},
		{"block without height", ObjectDescriptor{X: 0.5, Kind: KindBlock, Width: 40}, "height"},
		{"pig ok", ObjectDescriptor{X: 0.5, Kind: KindPig, Radius: 20}, ""},
		{"pig without radius", ObjectDescriptor{X: 0.5, Kind: KindPig, Width: 20}, "radius"},
		{"negative radius", ObjectDescriptor{X: 0.5, Kind: KindPig, Radius: -3}, "radius"},
		{"missing kind", ObjectDescriptor{X: 0.5, Width: 10, Height: 10}, "kind"},
		{"x above range", ObjectDescriptor{X: 1.2, Kind: KindPig, Radius: 20}, "x"},
		{"x below range", ObjectDescriptor{X: -0.1, Kind: KindPig, Radius: 20}, "x"},
		{"bad material", ObjectDescriptor{X: 0.5, Kind: KindBlock, Width: 10, Height: 10, Material: Material(7)}, "material"},
		{"NaN x", ObjectDescriptor{X: math.NaN(), Kind: KindPig, Radius: 20}, "x"},
		{"NaN radius", ObjectDescriptor{X: 0.5, Kind: KindPig, Radius: math.NaN()}, "radius"},
		{"infinite radius", ObjectDescriptor{X: 0.5, Kind: KindPig, Radius: math.Inf(1)}, "radius"},
		{"NaN pillar height", ObjectDescriptor{X: 0.5, Kind: KindPillar, Height: math.NaN()}, "height"},
		{"infinite beam width", ObjectDescriptor{X: 0.5, Kind: KindBeam, Width: math.Inf(1)}, "width"},
		{"infinite block height", ObjectDescriptor{X: 0.5, Kind: KindBlock, Width: 10, Height: math.Inf(1)}, "height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateObjects([]ObjectDescriptor{{X: 0.1, Kind: KindPig, Radius: 10}, tt.obj})
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateObjects() unexpected error: %v", err)
				}
				return
			}

			var ce *ConfigurationError
			if !errors.As(err, &ce) {
				t.Fatalf("expected *ConfigurationError, got %v", err)
			}
			if ce.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ce.Field, tt.wantField)
			}
			if ce.Index != 1 {
				t.Errorf("Index = %d, want 1", ce.Index)
			}
		})
	}
}

func TestValidateLevel(t *testing.T) {
	pig := ObjectDescriptor{X: 0.8, Kind: KindPig, Radius: 20}
	beam := ObjectDescriptor{X: 0.5, Kind: KindBeam, Width: 100}

	t.Run("no birds", func(t *testing.T) {
		err := Validate(&Level{Name: "empty", Birds: 0, Objects: []ObjectDescriptor{pig}})
		var ce *ConfigurationError
		if !errors.As(err, &ce) || ce.Field != "birds" {
			t.Fatalf("expected birds error, got %v", err)
		}
	})

	t.Run("no pigs", func(t *testing.T) {
		err := Validate(&Level{Name: "pigless", Birds: 3, Objects: []ObjectDescriptor{beam}})
		var ce *ConfigurationError
		if !errors.As(err, &ce) || ce.Field != "objects" {
			t.Fatalf("expected objects error, got %v", err)
		}
	})

	t.Run("object error carries level name", func(t *testing.T) {
		err := Validate(&Level{Name: "broken", Birds: 3, Objects: []ObjectDescriptor{pig, {X: 0.5, Kind: KindBeam}}})
		var ce *ConfigurationError
		if !errors.As(err, &ce) {
			t.Fatalf("expected *ConfigurationError, got %v", err)
		}
		if ce.Level != "broken" {
			t.Errorf("Level = %q, want broken", ce.Level)
		}
		if !strings.Contains(err.Error(), "object 1 (beam)") {
			t.Errorf("error message %q does not name the object", err.Error())
		}
	})
}

func TestParseYAML(t *testing.T) {
	t.Run("valid level", func(t *testing.T) {
		data := []byte(`name: Test
birds: 2
objects:
  - {kind: pillar, x: 0.4, height: 60}
  - {kind: Beam, x: 0.45, width: 90, material: stone}
  - {kind: pig, x: 0.45, radius: 15}
`)
		level, err := ParseYAML(data)
		if err != nil {
			t.Fatalf("ParseYAML() failed: %v", err)
		}
		if level.Birds != 2 {
			t.Errorf("Birds = %d, want 2", level.Birds)
		}
		if len(level.Objects) != 3 {
			t.Fatalf("expected 3 objects, got %d", len(level.Objects))
		}
		if level.Objects[1].Kind != KindBeam || level.Objects[1].Material != MaterialStone {
			t.Errorf("object 1 = %+v, want stone beam", level.Objects[1])
		}
		if level.Objects[0].Material != MaterialWood {
			t.Errorf("default material = %v, want wood", level.Objects[0].Material)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := ParseYAML([]byte("birds: 1\nobjects:\n  - {kind: cannon, x: 0.5}\n"))
		if !errors.Is(err, ErrUnknownKind) {
			t.Fatalf("expected ErrUnknownKind, got %v", err)
		}
	})

	t.Run("unknown material", func(t *testing.T) {
		_, err := ParseYAML([]byte("birds: 1\nobjects:\n  - {kind: block, x: 0.5, width: 5, height: 5, material: glass}\n"))
		if !errors.Is(err, ErrUnknownMaterial) {
			t.Fatalf("expected ErrUnknownMaterial, got %v", err)
		}
	})

	t.Run("misspelled field", func(t *testing.T) {
		_, err := ParseYAML([]byte("birds: 1\nobjects:\n  - {kind: pig, x: 0.5, raduis: 10}\n"))
		if err == nil {
			t.Fatal("expected an error for an unknown field")
		}
	})

	t.Run("non-finite values", func(t *testing.T) {
		tests := []struct {
			name      string
			object    string
			wantField string
		}{
			{"nan x", "{kind: pig, x: .nan, radius: 10}", "x"},
			{"nan radius", "{kind: pig, x: 0.5, radius: .nan}", "radius"},
			{"inf width", "{kind: beam, x: 0.5, width: .inf}", "width"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				data := "birds: 1\nobjects:\n  - {kind: pig, x: 0.9, radius: 10}\n  - " + tt.object + "\n"
				_, err := ParseYAML([]byte(data))
				var ce *ConfigurationError
				if !errors.As(err, &ce) {
					t.Fatalf("expected *ConfigurationError, got %v", err)
				}
				if ce.Field != tt.wantField || ce.Index != 1 {
					t.Errorf("error = %+v, want object 1 %s", ce, tt.wantField)
				}
			})
		}
	})

	t.Run("missing dimension", func(t *testing.T) {
		_, err := ParseYAML([]byte("birds: 1\nobjects:\n  - {kind: pig, x: 0.5}\n"))
		var ce *ConfigurationError
		if !errors.As(err, &ce) || ce.Field != "radius" {
			t.Fatalf("expected radius error, got %v", err)
		}
	})
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "07_ridge.yaml")
	if err := os.WriteFile(path, []byte("birds: 3\nobjects:\n  - {kind: pig, x: 0.7, radius: 18}\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	level, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML() failed: %v", err)
	}
	if level.Name != "07_ridge" {
		t.Errorf("Name = %q, want file stem", level.Name)
	}

	if _, err := LoadYAML(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestLoadShipped(t *testing.T) {
	levels, err := LoadShipped()
	if err != nil {
		t.Fatalf("LoadShipped() failed: %v", err)
	}
	if len(levels) != 5 {
		t.Fatalf("expected 5 shipped levels, got %d", len(levels))
	}
	if levels[0].Name != "First Flight" {
		t.Errorf("first level = %q, want First Flight", levels[0].Name)
	}
	for _, l := range levels {
		if err := Validate(&l); err != nil {
			t.Errorf("shipped level %q invalid: %v", l.Name, err)
		}
	}
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="50" height="40" tilewidth="20" tileheight="20" infinite="0" nextlayerid="3" nextobjectid="5">
 <properties>
  <property name="birds" type="int" value="4"/>
  <property name="name" value="Tiled Ridge"/>
 </properties>
 <objectgroup id="1" name="Decoration">
  <object id="1" x="10" y="10" width="30" height="30"/>
 </objectgroup>
 <objectgroup id="2" name="Structure">
  <object id="2" x="490" y="600" width="20" height="80">
   <properties>
    <property name="kind" value="pillar"/>
   </properties>
  </object>
  <object id="3" x="400" y="585" width="200" height="15">
   <properties>
    <property name="kind" value="beam"/>
    <property name="material" value="stone"/>
   </properties>
  </object>
  <object id="4" x="580" y="540" width="40" height="40">
   <properties>
    <property name="kind" value="pig"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ridge.tmx"), []byte(testTMX), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	level, err := LoadTMX(os.DirFS(dir), "ridge.tmx")
	if err != nil {
		t.Fatalf("LoadTMX() failed: %v", err)
	}
	if level.Name != "Tiled Ridge" {
		t.Errorf("Name = %q, want Tiled Ridge", level.Name)
	}
	if level.Birds != 4 {
		t.Errorf("Birds = %d, want 4", level.Birds)
	}

	want := []ObjectDescriptor{
		{X: 0.5, Kind: KindPillar, Height: 80},
		{X: 0.5, Kind: KindBeam, Material: MaterialStone, Width: 200},
		{X: 0.6, Kind: KindPig, Radius: 20},
	}
	if len(level.Objects) != len(want) {
		t.Fatalf("expected %d objects, got %d", len(want), len(level.Objects))
	}
	for i, w := range want {
		if level.Objects[i] != w {
			t.Errorf("object %d = %+v, want %+v", i, level.Objects[i], w)
		}
	}
}
