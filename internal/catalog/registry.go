package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cory-johannsen/autocollect/internal/farm"
)

// ErrUnknownItem is returned when an id does not resolve to a registered item.
var ErrUnknownItem = errors.New("catalog: unknown item")

// Registry holds item definitions indexed by qualified id.
type Registry struct {
	items map[string]*ItemDef
}

// NewRegistry returns an empty Registry.
//
// Postcondition: internal map is initialised.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*ItemDef)}
}

// NewRegistryFrom registers every def in order.
//
// Postcondition: returns the first registration error, if any.
func NewRegistryFrom(defs []*ItemDef) (*Registry, error) {
	r := NewRegistry()
	for _, d := range defs {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds d to the registry under its qualified id.
//
// Precondition:  d must not be nil.
// Postcondition: Item(d.ID) returns (d, true); returns error if the id is already registered.
func (r *Registry) Register(d *ItemDef) error {
	key := QualifiedID(d.ID)
	if _, exists := r.items[key]; exists {
		return fmt.Errorf("catalog: Registry.Register: item ID %q already registered", key)
	}
	r.items[key] = d
	return nil
}

// Item returns the ItemDef for id and whether it was found. Bare and qualified
// forms of the same id resolve to the same definition.
//
// Postcondition: ok is true iff the id is registered.
func (r *Registry) Item(id string) (*ItemDef, bool) {
	d, ok := r.items[QualifiedID(id)]
	return d, ok
}

// IDs returns every registered qualified id in sorted order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.items))
	for id := range r.items {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	return len(r.items)
}

// Create builds a new item instance for id with stack 1 and lowest quality.
//
// Postcondition: on success the item carries the qualified id, display name and category
// from the definition; returns an error wrapping ErrUnknownItem otherwise.
func (r *Registry) Create(id string) (*farm.Item, error) {
	d, ok := r.Item(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return farm.NewItem(QualifiedID(d.ID), d.Name, d.Category, farm.QualityLow, 1), nil
}
