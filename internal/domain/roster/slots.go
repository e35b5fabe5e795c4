package roster

import "fmt"

const (
	MinStarterSlots = 1
	MaxStarterSlots = 50
)

// SlotPolicy holds the coach-adjustable starting lineup capacity.
type SlotPolicy struct {
	capacity int
}

func NewSlotPolicy(capacity int) (*SlotPolicy, error) {
	if !ValidCapacity(capacity) {
		return nil, fmt.Errorf("%w: %d is not within %d..%d", ErrInvalidCapacity, capacity, MinStarterSlots, MaxStarterSlots)
	}

	return &SlotPolicy{capacity: capacity}, nil
}

func ValidCapacity(n int) bool {
	return n >= MinStarterSlots && n <= MaxStarterSlots
}

func (p *SlotPolicy) Capacity() int {
	return p.capacity
}

// SetCapacity accepts any value in 1..50. It never touches the starters
// list: shrinking below the current lineup size is legal and only blocks
// the next save.
func (p *SlotPolicy) SetCapacity(n int) error {
	if !ValidCapacity(n) {
		return fmt.Errorf("%w: %d is not within %d..%d", ErrInvalidCapacity, n, MinStarterSlots, MaxStarterSlots)
	}

	p.capacity = n
	return nil
}

// ValidateForSave checks the lineup fits the capacity. Callers must abort
// the save, before any gateway call, when it fails.
func (p *SlotPolicy) ValidateForSave(starterCount int) error {
	if starterCount > p.capacity {
		return fmt.Errorf("%w: %d starters with capacity %d", ErrTooManyStarters, starterCount, p.capacity)
	}

	return nil
}
