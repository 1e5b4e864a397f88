// Package farm models the simulation state the auto-collector reads and mutates:
// items, chests, placed objects, animals, enclosures and the structures that own them.
package farm

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// objectQualifier prefixes qualified ids of ordinary objects, e.g. "(O)176".
const objectQualifier = "(O)"

// QualifiedID returns id with the object qualifier, e.g. "176" becomes "(O)176".
// Ids that already carry a qualifier are returned unchanged.
func QualifiedID(id string) string {
	if strings.HasPrefix(id, "(") {
		return id
	}
	return objectQualifier + id
}

// Object is anything that can be placed on a tile of an enclosure.
// It is implemented by *Item and *Chest.
type Object interface {
	ObjectName() string
}

// Item is a concrete item instance: a catalog identity, a quality and a stack count.
type Item struct {
	InstanceID string
	ID         string
	Name       string
	Category   string
	Quality    Quality
	Stack      int
}

// NewItem creates an item instance with a fresh instance id.
//
// Precondition: id is non-empty; stack > 0.
func NewItem(id, name, category string, quality Quality, stack int) *Item {
	return &Item{
		InstanceID: uuid.New().String(),
		ID:         id,
		Name:       name,
		Category:   category,
		Quality:    quality,
		Stack:      stack,
	}
}

// ObjectName returns the display name of the item.
func (i *Item) ObjectName() string { return i.DisplayName() }

// DisplayName returns Name, falling back to the catalog id.
func (i *Item) DisplayName() string {
	if i.Name == "" {
		return i.ID
	}
	return i.Name
}

// StackableWith reports whether i and o share identity and quality. "176" and
// "(O)176" name the same item.
//
// Postcondition: returns false if either item is nil.
func (i *Item) StackableWith(o *Item) bool {
	if i == nil || o == nil {
		return false
	}
	return QualifiedID(i.ID) == QualifiedID(o.ID) && i.Quality == o.Quality
}

// Copy returns an independent instance with the same identity, quality and stack
// but a fresh instance id.
func (i *Item) Copy() *Item {
	c := *i
	c.InstanceID = uuid.New().String()
	return &c
}

// String implements fmt.Stringer.
func (i *Item) String() string {
	return fmt.Sprintf("%s[%s] x%d (%s)", i.DisplayName(), i.ID, i.Stack, i.Quality)
}
