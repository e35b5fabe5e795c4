package memory

import (
	"context"
	"sync"

	"github.com/dugout-hq/dugout/internal/domain/roster"
)

type RosterRepository struct {
	mu    sync.RWMutex
	items map[string]roster.SavedRoster
}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{items: make(map[string]roster.SavedRoster)}
}

func (r *RosterRepository) GetByID(_ context.Context, rosterID string) (roster.SavedRoster, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[rosterID]
	if !ok {
		return roster.SavedRoster{}, false, nil
	}

	return cloneRoster(item), true, nil
}

func (r *RosterRepository) ListByTeam(_ context.Context, teamID string) ([]roster.SavedRoster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.SavedRoster, 0, len(r.items))
	for _, item := range r.items {
		if item.TeamID != teamID {
			continue
		}
		out = append(out, cloneRoster(item))
	}

	return out, nil
}

func (r *RosterRepository) Create(_ context.Context, item roster.SavedRoster) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneRoster(item)
	return nil
}

// Save replaces the stored record wholesale.
func (r *RosterRepository) Save(_ context.Context, item roster.SavedRoster) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneRoster(item)
	return nil
}

func (r *RosterRepository) Delete(_ context.Context, rosterID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, rosterID)
	return nil
}

func cloneRoster(item roster.SavedRoster) roster.SavedRoster {
	copied := item
	copied.Starters = append([]roster.SlotEntry(nil), item.Starters...)
	copied.Substitutes = append([]roster.SlotEntry(nil), item.Substitutes...)
	if item.GameDate != nil {
		gameDate := *item.GameDate
		copied.GameDate = &gameDate
	}
	return copied
}
