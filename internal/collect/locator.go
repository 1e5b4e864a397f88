package collect

import "github.com/cory-johannsen/autocollect/internal/farm"

// FindContainers returns every chest placed in enc, in placement order.
//
// Postcondition: returns an empty slice when enc is nil or holds no chests.
func FindContainers(enc *farm.Enclosure) []*farm.Chest {
	var chests []*farm.Chest
	if enc == nil || enc.Objects == nil {
		return chests
	}
	enc.Objects.Range(func(_ farm.Position, obj farm.Object) bool {
		if chest, ok := obj.(*farm.Chest); ok && chest != nil {
			chests = append(chests, chest)
		}
		return true
	})
	return chests
}
