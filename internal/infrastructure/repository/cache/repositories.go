package cache

import (
	"context"
	"sort"
	"strings"

	"github.com/dugout-hq/dugout/internal/domain/player"
	"github.com/dugout-hq/dugout/internal/domain/team"
	basecache "github.com/dugout-hq/dugout/internal/platform/cache"
)

// TeamRepository caches team reads over the wrapped repository and drops
// the affected keys on writes.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}

	r.cache.Delete(ctx, "team:list")
	r.cache.Delete(ctx, "team:id:"+item.ID)
	return nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

// PlayerRepository caches directory reads per team. Writes invalidate the
// whole team's player keys so roster restores never see a stale directory.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	key := "player:list:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, teamID string, playerIDs []string) ([]player.Player, error) {
	ids := append([]string(nil), playerIDs...)
	sort.Strings(ids)
	key := "player:ids:" + teamID + ":" + strings.Join(ids, ",")
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.GetByIDs(ctx, teamID, playerIDs)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}

	r.invalidateTeam(ctx, item.TeamID)
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, teamID, playerID string) error {
	if err := r.next.Delete(ctx, teamID, playerID); err != nil {
		return err
	}

	r.invalidateTeam(ctx, teamID)
	return nil
}

func (r *PlayerRepository) invalidateTeam(ctx context.Context, teamID string) {
	r.cache.Delete(ctx, "player:list:"+teamID)
	r.cache.DeletePrefix(ctx, "player:ids:"+teamID+":")
}
