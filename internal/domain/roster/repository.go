package roster

import "context"

// Repository is the persistence gateway for saved rosters. Save replaces
// the whole record; the last writer wins, with no concurrency token.
type Repository interface {
	GetByID(ctx context.Context, rosterID string) (SavedRoster, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]SavedRoster, error)
	Create(ctx context.Context, item SavedRoster) error
	Save(ctx context.Context, item SavedRoster) error
	Delete(ctx context.Context, rosterID string) error
}
