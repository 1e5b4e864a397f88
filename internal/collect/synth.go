package collect

import (
	"fmt"

	"github.com/cory-johannsen/autocollect/internal/farm"
)

// ItemFactory creates item instances from catalog ids.
type ItemFactory interface {
	Create(id string) (*farm.Item, error)
}

// Mutation is the animal state change to apply once its product has been stored.
type Mutation struct {
	ClearDoubleYield bool
}

// Apply clears the pending product, resets the production counter and, when
// requested, consumes the one-shot yield-doubling flag.
func (m Mutation) Apply(a *farm.Animal) {
	a.CurrentProduce = ""
	a.DaysSinceLastProduce = 0
	if m.ClearDoubleYield {
		a.DoubleYield = false
	}
}

// Product is an item synthesized from an animal's pending produce together with
// the mutation that settles the animal once the item is stored.
type Product struct {
	Item     *farm.Item
	Mutation Mutation
}

// Synthesizer turns pending animal produce into concrete items.
type Synthesizer struct {
	factory ItemFactory
}

// NewSynthesizer creates a Synthesizer backed by factory.
//
// Precondition: factory is non-nil.
func NewSynthesizer(factory ItemFactory) *Synthesizer {
	return &Synthesizer{factory: factory}
}

// Extract builds the item an animal currently holds without mutating the animal.
//
// Postcondition: ok is false when the animal has no pending product or is not mature.
// On ok the item has stack 1 (2 when the yield-doubling flag is set) and quality mapped
// from the animal's produce tier. err is non-nil only when the product id cannot be created.
func (s *Synthesizer) Extract(a *farm.Animal) (p Product, ok bool, err error) {
	if a == nil || !a.HasProduce() || !a.Mature() {
		return Product{}, false, nil
	}
	item, err := s.factory.Create(a.CurrentProduce)
	if err != nil {
		return Product{}, false, fmt.Errorf("creating produce %q for %s: %w", a.CurrentProduce, a.DisplayName(), err)
	}
	item.Quality = farm.QualityFromTier(a.ProduceQuality)
	item.Stack = 1
	if a.DoubleYield {
		item.Stack *= 2
	}
	return Product{Item: item, Mutation: Mutation{ClearDoubleYield: a.DoubleYield}}, true, nil
}
