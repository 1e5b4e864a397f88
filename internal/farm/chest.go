package farm

import (
	"errors"
	"fmt"
)

var (
	// ErrChestFull is returned when a chest has no free slot.
	ErrChestFull = errors.New("farm: chest is full")
	// ErrMalformedChest is returned when a chest cannot accept items at all.
	ErrMalformedChest = errors.New("farm: malformed chest")
)

// Chest is a storage container: an ordered sequence of item slots with a fixed capacity.
//
// Invariant: Len() never exceeds Capacity as a result of Append.
type Chest struct {
	Capacity int
	items    []*Item
}

// NewChest creates a chest with the given capacity holding items in order.
//
// Precondition: capacity >= 1; len(items) <= capacity.
func NewChest(capacity int, items ...*Item) *Chest {
	c := &Chest{Capacity: capacity}
	c.items = append(c.items, items...)
	return c
}

// ObjectName implements Object.
func (c *Chest) ObjectName() string { return "Chest" }

// Len returns the number of occupied slots.
func (c *Chest) Len() int {
	return len(c.items)
}

// Full reports whether the chest has no room for another slot.
func (c *Chest) Full() bool {
	return len(c.items) >= c.Capacity
}

// Items returns a snapshot copy of every slot in order.
//
// Postcondition: mutations of the returned values do not affect the chest.
func (c *Chest) Items() []Item {
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		if it != nil {
			out = append(out, *it)
		}
	}
	return out
}

// TotalQuantity returns the sum of stack counts across all slots.
func (c *Chest) TotalQuantity() int {
	total := 0
	for _, it := range c.items {
		if it != nil {
			total += it.Stack
		}
	}
	return total
}

func (c *Chest) check() error {
	if c == nil {
		return fmt.Errorf("%w: nil chest", ErrMalformedChest)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("%w: capacity %d", ErrMalformedChest, c.Capacity)
	}
	return nil
}

// Merge adds item's stack onto the first slot that is stack-compatible with it.
// Empty (nil) slots are skipped.
//
// Precondition: item is non-nil with Stack > 0.
// Postcondition: on (true, nil) exactly one slot grew by item.Stack; otherwise the chest is unchanged.
func (c *Chest) Merge(item *Item) (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	for _, slot := range c.items {
		if slot.StackableWith(item) {
			slot.Stack += item.Stack
			return true, nil
		}
	}
	return false, nil
}

// Append places item in a new slot.
//
// Precondition: item is non-nil.
// Postcondition: on nil error Len() grew by one; on error the chest is unchanged.
func (c *Chest) Append(item *Item) error {
	if err := c.check(); err != nil {
		return err
	}
	if item == nil {
		return errors.New("farm: cannot append nil item")
	}
	if c.Full() {
		return ErrChestFull
	}
	c.items = append(c.items, item)
	return nil
}
