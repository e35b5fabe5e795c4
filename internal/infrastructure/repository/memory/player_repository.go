package memory

import (
	"context"
	"sync"

	"github.com/dugout-hq/dugout/internal/domain/player"
)

type PlayerRepository struct {
	mu            sync.RWMutex
	playersByTeam map[string][]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	playersByTeam := make(map[string][]player.Player)
	for _, p := range players {
		playersByTeam[p.TeamID] = append(playersByTeam[p.TeamID], p)
	}

	return &PlayerRepository{playersByTeam: playersByTeam}
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := r.playersByTeam[teamID]
	out := make([]player.Player, 0, len(players))
	out = append(out, players...)

	return out, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, teamID string, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := r.playersByTeam[teamID]
	index := make(map[string]player.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := index[id]
		if !ok {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *PlayerRepository) Upsert(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	players := r.playersByTeam[item.TeamID]
	for idx := range players {
		if players[idx].ID == item.ID {
			players[idx] = item
			return nil
		}
	}

	r.playersByTeam[item.TeamID] = append(players, item)
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, teamID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	players := r.playersByTeam[teamID]
	for idx := range players {
		if players[idx].ID == playerID {
			r.playersByTeam[teamID] = append(players[:idx:idx], players[idx+1:]...)
			return nil
		}
	}

	return nil
}
