package collect

import (
	"github.com/cory-johannsen/autocollect/internal/catalog"
	"github.com/cory-johannsen/autocollect/internal/farm"
)

// Classifier decides whether a placed object or product may be auto-collected.
//
// Coop enclosures accept only ids listed in the coop table. Barn enclosures accept
// ids listed in the barn table and any item tagged with the animal product category.
type Classifier struct {
	coop        map[string]struct{}
	barn        map[string]struct{}
	categoryTag string
}

// NewClassifier builds a classifier from rule tables.
func NewClassifier(rules catalog.Rules) *Classifier {
	return &Classifier{
		coop:        rules.CoopIDs(),
		barn:        rules.BarnIDs(),
		categoryTag: rules.AnimalProductCategory,
	}
}

// IsCollectible reports whether obj may be collected in an enclosure of the given kind.
//
// Postcondition: returns false for nil objects, non-item objects, items with a
// non-positive stack and unknown kinds. Never panics and has no side effects.
func (c *Classifier) IsCollectible(obj farm.Object, kind Kind) bool {
	item, ok := obj.(*farm.Item)
	if !ok || item == nil || item.ID == "" || item.Stack <= 0 {
		return false
	}
	switch kind {
	case KindCoop:
		_, listed := c.coop[item.ID]
		return listed
	case KindBarn:
		if _, listed := c.barn[item.ID]; listed {
			return true
		}
		return c.categoryTag != "" && item.Category == c.categoryTag
	default:
		return false
	}
}
