package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// StructureGroup is the Tiled object group holding placeable objects.
const StructureGroup = "Structure"

// LoadTMX parses a level authored in Tiled. Objects of the "Structure" group
// are read in document order; each carries a "kind" property and optionally a
// "material" property. Horizontal centers are normalized against the map
// width, vertical positions are ignored since placement decides them. The map
// property "birds" sets the ammunition count. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	mapWidth := float64(levelMap.Width * levelMap.TileWidth)
	if mapWidth <= 0 {
		return nil, fmt.Errorf("load TMX %s: map has no width", tmxPath)
	}

	level := &Level{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
	}
	if levelMap.Properties != nil {
		level.Birds = levelMap.Properties.GetInt("birds")
		if name := levelMap.Properties.GetString("name"); name != "" {
			level.Name = name
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != StructureGroup {
			continue
		}
		for i, o := range og.Objects {
			var kindName, materialName string
			if o.Properties != nil {
				kindName = o.Properties.GetString("kind")
				materialName = o.Properties.GetString("material")
			}

			kind, err := ParseKind(kindName)
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: object %d: %w", tmxPath, i, err)
			}
			material, err := ParseMaterial(materialName)
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: object %d: %w", tmxPath, i, err)
			}

			desc := ObjectDescriptor{
				X:        (o.X + o.Width/2) / mapWidth,
				Kind:     kind,
				Material: material,
			}
			switch kind {
			case KindPig:
				desc.Radius = min(o.Width, o.Height) / 2
			case KindPillar:
				desc.Height = o.Height
			case KindBeam:
				desc.Width = o.Width
			case KindBlock:
				desc.Width = o.Width
				desc.Height = o.Height
			}
			level.Objects = append(level.Objects, desc)
		}
		break
	}

	if err := Validate(level); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return level, nil
}
