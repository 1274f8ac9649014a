// Package leveldata describes slingshot levels as ordered lists of object
// descriptors and loads them from YAML or Tiled TMX files. It has no
// dependencies on ebitengine, donburi or resolv.
package leveldata

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind     = errors.New("unknown object kind")
	ErrUnknownMaterial = errors.New("unknown material")
)

// Kind is the closed set of object shapes a level may place.
type Kind int

const (
	KindInvalid Kind = iota
	KindPillar
	KindBeam
	KindBlock
	KindPig
)

var kindNames = map[Kind]string{
	KindPillar: "pillar",
	KindBeam:   "beam",
	KindBlock:  "block",
	KindPig:    "pig",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a case-insensitive name to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Material decides the starting health of a block. The zero value is wood.
type Material int

const (
	MaterialWood Material = iota
	MaterialStone
)

func (m Material) String() string {
	switch m {
	case MaterialWood:
		return "wood"
	case MaterialStone:
		return "stone"
	default:
		return fmt.Sprintf("Material(%d)", int(m))
	}
}

// ParseMaterial maps a case-insensitive name to a Material. An empty name is wood.
func ParseMaterial(s string) (Material, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wood":
		return MaterialWood, nil
	case "stone":
		return MaterialStone, nil
	default:
		return MaterialWood, fmt.Errorf("%w: %q", ErrUnknownMaterial, s)
	}
}

func (m *Material) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMaterial(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*m = parsed
	return nil
}

func (m Material) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// ObjectDescriptor is one author-defined object. Its position in Level.Objects
// is its placement order.
type ObjectDescriptor struct {
	X        float64  `yaml:"x"` // horizontal center, normalized to [0,1] of the canvas width
	Kind     Kind     `yaml:"kind"`
	Material Material `yaml:"material,omitempty"`
	Width    float64  `yaml:"width,omitempty"`
	Height   float64  `yaml:"height,omitempty"`
	Radius   float64  `yaml:"radius,omitempty"`
}

// Level is a complete level description.
type Level struct {
	Name    string             `yaml:"name"`
	Birds   int                `yaml:"birds"`
	Objects []ObjectDescriptor `yaml:"objects"`
}
