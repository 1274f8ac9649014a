package components

import "github.com/yohamta/donburi"

// StructureData keeps the live pigs and blocks in placement order. Collision
// passes walk these slices so iteration order survives removals.
type StructureData struct {
	Pigs   []*donburi.Entry
	Blocks []*donburi.Entry
}

var Structure = donburi.NewComponentType[StructureData]()

// RemovePig drops e from the pig list, keeping the order of the others.
func (s *StructureData) RemovePig(e *donburi.Entry) {
	s.Pigs = removeEntry(s.Pigs, e)
}

// RemoveBlock drops e from the block list, keeping the order of the others.
func (s *StructureData) RemoveBlock(e *donburi.Entry) {
	s.Blocks = removeEntry(s.Blocks, e)
}

func removeEntry(entries []*donburi.Entry, e *donburi.Entry) []*donburi.Entry {
	for i, x := range entries {
		if x == e {
			return append(entries[:i], entries[i+1:]...)
		}
	}
	return entries
}
