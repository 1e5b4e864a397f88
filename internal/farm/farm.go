package farm

import (
	"errors"
	"fmt"
)

// Enclosure is the indoor area of a structure: placed objects plus resident animals.
type Enclosure struct {
	ID      string
	Name    string
	Objects *ObjectLayer
	Animals []*Animal
}

// NewEnclosure creates an enclosure with an empty object layer and no animals.
func NewEnclosure(id, name string) *Enclosure {
	return &Enclosure{
		ID:      id,
		Name:    name,
		Objects: NewObjectLayer(),
	}
}

// Structure is a building on the farm. Type is the building type string, e.g. "Big Coop".
type Structure struct {
	ID      string
	Type    string
	Indoors *Enclosure
}

// Farm holds every structure and resolves the owner of an enclosure.
type Farm struct {
	structures []*Structure
	// owners maps an enclosure to the registration position of its first owner.
	owners map[*Enclosure]int
}

// NewFarm creates an empty farm.
func NewFarm() *Farm {
	return &Farm{owners: make(map[*Enclosure]int)}
}

// AddStructure registers s.
//
// Precondition: s is non-nil.
// Postcondition: returns an error if a structure with s.ID is already registered.
func (f *Farm) AddStructure(s *Structure) error {
	if s == nil {
		return errors.New("farm: cannot add nil structure")
	}
	for _, existing := range f.structures {
		if existing.ID == s.ID {
			return fmt.Errorf("farm: structure %q already registered", s.ID)
		}
	}
	f.structures = append(f.structures, s)
	if s.Indoors != nil {
		if _, taken := f.owners[s.Indoors]; !taken {
			f.owners[s.Indoors] = len(f.structures) - 1
		}
	}
	return nil
}

// Structures returns all structures in registration order.
//
// Postcondition: returned slice is a copy.
func (f *Farm) Structures() []*Structure {
	out := make([]*Structure, len(f.structures))
	copy(out, f.structures)
	return out
}

// Enclosures returns the indoor areas of all structures in registration order.
func (f *Farm) Enclosures() []*Enclosure {
	var out []*Enclosure
	for _, s := range f.structures {
		if s.Indoors != nil {
			out = append(out, s.Indoors)
		}
	}
	return out
}

// OwnerOf returns the first registered structure whose indoor area is enc.
//
// An index entry is trusted only while its structure still points at enc and no
// structure registered before it has since been pointed at enc. Otherwise the
// structures are scanned in registration order and the index is refreshed.
// Postcondition: ok is false when no structure owns enc.
func (f *Farm) OwnerOf(enc *Enclosure) (*Structure, bool) {
	if enc == nil {
		return nil, false
	}
	limit := len(f.structures)
	if i, ok := f.owners[enc]; ok && i < limit && f.structures[i].Indoors == enc {
		limit = i + 1
	}
	for i, s := range f.structures[:limit] {
		if s.Indoors == enc {
			f.owners[enc] = i
			return s, true
		}
	}
	delete(f.owners, enc)
	return nil, false
}
