// Package collect implements the auto-collection engine: once per enclosure per
// simulated day it moves eligible animal products into the enclosure's chests.
package collect

import "strings"

// Kind is the enclosure category that selects the collection rules.
type Kind int

const (
	KindUnknown Kind = iota
	KindCoop
	KindBarn
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCoop:
		return "coop"
	case KindBarn:
		return "barn"
	default:
		return "unknown"
	}
}

// KindOf derives the enclosure category from a structure type string by token match,
// e.g. "Big Coop" is KindCoop and "Deluxe Barn" is KindBarn. A type naming both
// tokens is treated as a barn; the collector still requires both toggles for it.
func KindOf(structureType string) Kind {
	switch {
	case strings.Contains(structureType, "Barn"):
		return KindBarn
	case strings.Contains(structureType, "Coop"):
		return KindCoop
	default:
		return KindUnknown
	}
}
