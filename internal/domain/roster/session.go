package roster

import (
	"fmt"

	"github.com/dugout-hq/dugout/internal/domain/player"
)

// Session is one in-memory roster editing session: a partition, its
// position overrides and the slot policy, owned together and discarded
// when the editor closes. Durable state exists only in a SavedRoster
// written explicitly through Snapshot. Sessions are not safe for
// concurrent use; one editor owns one session.
type Session struct {
	partition Partition
	overrides *Overrides
	policy    *SlotPolicy
}

func NewSession(capacity int) (*Session, error) {
	policy, err := NewSlotPolicy(capacity)
	if err != nil {
		return nil, err
	}

	return &Session{
		overrides: NewOverrides(),
		policy:    policy,
	}, nil
}

// AddStarter appends the player to the end of the starting lineup.
func (s *Session) AddStarter(p player.Player) error {
	if s.partition.Assigned(p.ID) {
		return fmt.Errorf("%w: %s", ErrAlreadyAssigned, p.ID)
	}
	if s.partition.StarterCount() >= s.policy.Capacity() {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, s.policy.Capacity())
	}

	s.partition.appendStarter(p)
	return nil
}

// AddSubstitute appends the player to the end of the bench. The bench is
// unbounded.
func (s *Session) AddSubstitute(p player.Player) error {
	if s.partition.Assigned(p.ID) {
		return fmt.Errorf("%w: %s", ErrAlreadyAssigned, p.ID)
	}

	s.partition.appendSubstitute(p)
	return nil
}

func (s *Session) RemoveStarter(playerID string) error {
	if _, ok := s.partition.removeStarter(playerID); !ok {
		return fmt.Errorf("%w: %s", ErrNotAssigned, playerID)
	}

	return nil
}

func (s *Session) RemoveSubstitute(playerID string) error {
	if _, ok := s.partition.removeSubstitute(playerID); !ok {
		return fmt.Errorf("%w: %s", ErrNotAssigned, playerID)
	}

	return nil
}

// Promote moves a substitute into the starting lineup. When the lineup is
// full the bench is left untouched.
func (s *Session) Promote(playerID string) error {
	if indexOf(s.partition.substitutes, playerID) < 0 {
		return fmt.Errorf("%w: %s", ErrNotAssigned, playerID)
	}
	if s.partition.StarterCount() >= s.policy.Capacity() {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, s.policy.Capacity())
	}

	p, _ := s.partition.removeSubstitute(playerID)
	s.partition.appendStarter(p)

	return nil
}

// Demote moves a starter to the end of the bench. It always succeeds for
// an assigned starter.
func (s *Session) Demote(playerID string) error {
	p, ok := s.partition.removeStarter(playerID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotAssigned, playerID)
	}

	s.partition.appendSubstitute(p)
	return nil
}

// Reorder moves the element at from to position to within one list,
// shifting the elements in between.
func (s *Session) Reorder(side Side, from, to int) error {
	return s.partition.reorder(side, from, to)
}

// ClearAll empties both lists and the override store together. Every
// directory player becomes available again.
func (s *Session) ClearAll() {
	s.partition.clear()
	s.overrides.reset()
}

func (s *Session) SetCapacity(n int) error {
	return s.policy.SetCapacity(n)
}

func (s *Session) Capacity() int {
	return s.policy.Capacity()
}

// ValidateForSave gates persistence on the partition fitting the policy.
func (s *Session) ValidateForSave() error {
	return s.policy.ValidateForSave(s.partition.StarterCount())
}

func (s *Session) Starters() []player.Player {
	return s.partition.Starters()
}

func (s *Session) Substitutes() []player.Player {
	return s.partition.Substitutes()
}

func (s *Session) Available(directory []player.Player) []player.Player {
	return s.partition.Available(directory)
}

func (s *Session) Assigned(playerID string) bool {
	return s.partition.Assigned(playerID)
}

func (s *Session) Overrides() *Overrides {
	return s.overrides
}
