package player

import "context"

// Repository describes player directory persistence needs from use cases.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetByIDs(ctx context.Context, teamID string, playerIDs []string) ([]Player, error)
	Upsert(ctx context.Context, item Player) error
	Delete(ctx context.Context, teamID, playerID string) error
}
