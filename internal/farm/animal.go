package farm

// Animal is a resident of a barn-type enclosure that periodically carries a pending product.
type Animal struct {
	ID           string
	Name         string
	Type         string
	Age          int
	DaysToMature int
	// CurrentProduce is the catalog id of the pending product; empty when none.
	CurrentProduce string
	// ProduceQuality is the quality tier (0, 1, 2 or 4) of the pending product.
	ProduceQuality int
	// DoubleYield doubles the next product's stack once, then must be cleared.
	DoubleYield          bool
	DaysSinceLastProduce int
}

// Mature reports whether the animal is old enough to produce.
func (a *Animal) Mature() bool {
	return a.Age > a.DaysToMature
}

// HasProduce reports whether a pending product descriptor is set.
func (a *Animal) HasProduce() bool {
	return a.CurrentProduce != ""
}

// DisplayName returns Name, falling back to Type and then ID.
func (a *Animal) DisplayName() string {
	switch {
	case a.Name != "":
		return a.Name
	case a.Type != "":
		return a.Type
	default:
		return a.ID
	}
}
