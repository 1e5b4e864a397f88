package collect

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/autocollect/internal/farm"
)

// Outcome is the result of a Deposit.
type Outcome int

const (
	// NotDeposited means no chest accepted the item; the source is untouched.
	NotDeposited Outcome = iota
	// Merged means the item's stack was added to an existing compatible slot.
	Merged
	// Appended means a copy of the item was placed in a new slot.
	Appended
)

// OK reports whether the item was stored.
func (o Outcome) OK() bool {
	return o == Merged || o == Appended
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Merged:
		return "merged"
	case Appended:
		return "appended"
	default:
		return "not_deposited"
	}
}

// Deposit stores item in the first chest, in the given order, that has a free slot:
// it merges into the first stack-compatible slot of that chest, or else appends a copy.
// Full chests are skipped. A chest that fails (malformed or panicking) is skipped too,
// and its failure is reported through err alongside the outcome.
//
// Precondition: item is not retained; the stored slot never aliases it.
// Postcondition: on NotDeposited no chest changed. On Merged or Appended exactly one
// chest gained item.Stack units, and no chest exceeds its capacity.
func Deposit(item *farm.Item, chests []*farm.Chest) (Outcome, error) {
	if item == nil || item.Stack <= 0 {
		return NotDeposited, errors.New("collect: cannot deposit empty item")
	}
	var errs []error
	for i, chest := range chests {
		outcome, skipped, err := depositInto(item, chest)
		if err != nil {
			errs = append(errs, fmt.Errorf("chest %d: %w", i, err))
			continue
		}
		if skipped {
			continue
		}
		return outcome, errors.Join(errs...)
	}
	return NotDeposited, errors.Join(errs...)
}

func depositInto(item *farm.Item, chest *farm.Chest) (outcome Outcome, skipped bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome, skipped, err = NotDeposited, true, fmt.Errorf("%w: panic: %v", farm.ErrMalformedChest, r)
		}
	}()
	if chest == nil {
		return NotDeposited, true, fmt.Errorf("%w: nil chest", farm.ErrMalformedChest)
	}
	if chest.Full() {
		return NotDeposited, true, nil
	}
	cp := item.Copy()
	merged, err := chest.Merge(cp)
	if err != nil {
		return NotDeposited, true, err
	}
	if merged {
		return Merged, false, nil
	}
	if err := chest.Append(cp); err != nil {
		return NotDeposited, true, err
	}
	return Appended, false, nil
}
