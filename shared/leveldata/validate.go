package leveldata

import (
	"errors"
	"fmt"
	"math"
)

// ConfigurationError reports a malformed level. Index is the offending
// object's position in Level.Objects, or -1 for level-wide problems.
type ConfigurationError struct {
	Level  string
	Index  int
	Kind   Kind
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	name := e.Level
	if name == "" {
		name = "<unnamed>"
	}
	if e.Index < 0 {
		return fmt.Sprintf("level %s: %s: %s", name, e.Field, e.Reason)
	}
	return fmt.Sprintf("level %s: object %d (%s): %s: %s", name, e.Index, e.Kind, e.Field, e.Reason)
}

// Validate checks the level-wide fields and every object descriptor.
func Validate(l *Level) error {
	if l.Birds < 1 {
		return &ConfigurationError{Level: l.Name, Index: -1, Field: "birds", Reason: "at least one bird is required"}
	}
	if len(l.Objects) == 0 {
		return &ConfigurationError{Level: l.Name, Index: -1, Field: "objects", Reason: "level has no objects"}
	}
	hasPig := false
	for _, o := range l.Objects {
		if o.Kind == KindPig {
			hasPig = true
			break
		}
	}
	if !hasPig {
		return &ConfigurationError{Level: l.Name, Index: -1, Field: "objects", Reason: "level has no pigs"}
	}
	if err := ValidateObjects(l.Objects); err != nil {
		var ce *ConfigurationError
		if errors.As(err, &ce) {
			ce.Level = l.Name
		}
		return err
	}
	return nil
}

// ValidateObjects checks that every descriptor carries the dimensions its kind
// requires. It stops at the first malformed descriptor.
func ValidateObjects(objects []ObjectDescriptor) error {
	for i, o := range objects {
		if err := validateObject(i, o); err != nil {
			return err
		}
	}
	return nil
}

func validateObject(i int, o ObjectDescriptor) error {
	fail := func(field, reason string) error {
		return &ConfigurationError{Index: i, Kind: o.Kind, Field: field, Reason: reason}
	}

	if !(o.X >= 0 && o.X <= 1) {
		return fail("x", fmt.Sprintf("%v is outside [0,1]", o.X))
	}
	if o.Material != MaterialWood && o.Material != MaterialStone {
		return fail("material", o.Material.String()+" is not a material")
	}

	switch o.Kind {
	case KindPillar:
		if !positive(o.Height) {
			return fail("height", "pillar requires a positive finite height")
		}
	case KindBeam:
		if !positive(o.Width) {
			return fail("width", "beam requires a positive finite width")
		}
	case KindBlock:
		if !positive(o.Width) {
			return fail("width", "block requires a positive finite width")
		}
		if !positive(o.Height) {
			return fail("height", "block requires a positive finite height")
		}
	case KindPig:
		if !positive(o.Radius) {
			return fail("radius", "pig requires a positive finite radius")
		}
	default:
		return fail("kind", "missing or unknown kind")
	}
	return nil
}

// positive rejects zero, negative, NaN and infinite dimensions.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
