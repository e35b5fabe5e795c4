package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/dugout-hq/dugout/internal/domain/player"
	"github.com/dugout-hq/dugout/internal/domain/roster"
	"github.com/dugout-hq/dugout/internal/domain/team"
	"github.com/dugout-hq/dugout/internal/platform/id"
)

type CreateRosterInput struct {
	TeamID       string
	Title        string
	GameDate     *time.Time
	StarterSlots int
}

type SaveSlotInput struct {
	PlayerID         string
	PositionOverride string
}

type SaveRosterInput struct {
	RosterID     string
	Title        string
	GameDate     *time.Time
	StarterSlots int
	Starters     []SaveSlotInput
	Substitutes  []SaveSlotInput
}

// RosterPlayer pairs a directory player with the position the roster
// shows for them: the per-roster override when set, otherwise the
// directory default, otherwise nothing.
type RosterPlayer struct {
	Player             player.Player
	Position           string
	PositionSet        bool
	PositionOverridden bool
}

// RosterView is a saved roster reconstructed against the current player
// directory. DroppedPlayerIDs lists references whose players have left
// the directory since the save; they are reported, never an error.
type RosterView struct {
	Roster           roster.SavedRoster
	Team             team.Team
	StarterSlots     int
	Starters         []RosterPlayer
	Substitutes      []RosterPlayer
	Available        []RosterPlayer
	DroppedPlayerIDs []string
}

type RosterService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	rosterRepo roster.Repository
	ids        id.Generator

	defaultStarterSlots int
	now                 func() time.Time
}

func NewRosterService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	ids id.Generator,
	defaultStarterSlots int,
) *RosterService {
	if !roster.ValidCapacity(defaultStarterSlots) {
		defaultStarterSlots = roster.MaxStarterSlots
	}

	return &RosterService{
		teamRepo:            teamRepo,
		playerRepo:          playerRepo,
		rosterRepo:          rosterRepo,
		ids:                 ids,
		defaultStarterSlots: defaultStarterSlots,
		now:                 time.Now,
	}
}

// Create stores a new empty roster for the team. A zero StarterSlots
// takes the service default.
func (s *RosterService) Create(ctx context.Context, input CreateRosterInput) (roster.SavedRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Create")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.Title = strings.TrimSpace(input.Title)
	if input.TeamID == "" {
		return roster.SavedRoster{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}
	if input.Title == "" {
		return roster.SavedRoster{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if input.StarterSlots == 0 {
		input.StarterSlots = s.defaultStarterSlots
	}
	if !roster.ValidCapacity(input.StarterSlots) {
		return roster.SavedRoster{}, fmt.Errorf("%w: starter_slots must be between %d and %d", roster.ErrInvalidCapacity, roster.MinStarterSlots, roster.MaxStarterSlots)
	}

	if err := s.requireTeam(ctx, input.TeamID); err != nil {
		return roster.SavedRoster{}, err
	}

	rosterID, err := s.ids.NewID()
	if err != nil {
		return roster.SavedRoster{}, fmt.Errorf("generate roster id: %w", err)
	}

	item := roster.SavedRoster{
		ID:           rosterID,
		TeamID:       input.TeamID,
		Title:        input.Title,
		GameDate:     input.GameDate,
		StarterSlots: input.StarterSlots,
		Starters:     []roster.SlotEntry{},
		Substitutes:  []roster.SlotEntry{},
		UpdatedAt:    s.now().UTC(),
	}

	if err := s.rosterRepo.Create(ctx, item); err != nil {
		return roster.SavedRoster{}, fmt.Errorf("create roster: %w", err)
	}

	return item, nil
}

// Get loads the record, fetches the owning team and its player directory
// concurrently, and restores the roster against the directory.
func (s *RosterService) Get(ctx context.Context, rosterID string) (RosterView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Get")
	defer span.End()

	rosterID = strings.TrimSpace(rosterID)
	if rosterID == "" {
		return RosterView{}, fmt.Errorf("%w: roster id is required", ErrInvalidInput)
	}

	rec, exists, err := s.rosterRepo.GetByID(ctx, rosterID)
	if err != nil {
		return RosterView{}, fmt.Errorf("get roster by id: %w", err)
	}
	if !exists {
		return RosterView{}, fmt.Errorf("%w: roster=%s", ErrNotFound, rosterID)
	}

	var (
		teamItem  team.Team
		directory []player.Player
	)

	group := pool.New().WithContext(ctx)
	group.Go(func(ctx context.Context) error {
		item, exists, err := s.teamRepo.GetByID(ctx, rec.TeamID)
		if err != nil {
			return fmt.Errorf("get team by id: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%s", ErrNotFound, rec.TeamID)
		}
		teamItem = item
		return nil
	})
	group.Go(func(ctx context.Context) error {
		items, err := s.playerRepo.ListByTeam(ctx, rec.TeamID)
		if err != nil {
			return fmt.Errorf("list players by team: %w", err)
		}
		directory = items
		return nil
	})
	if err := group.Wait(); err != nil {
		return RosterView{}, err
	}

	restored, err := roster.Restore(rec, directory, s.defaultStarterSlots)
	if err != nil {
		return RosterView{}, fmt.Errorf("restore roster %s: %w", rosterID, err)
	}

	session := restored.Session
	return RosterView{
		Roster:           rec,
		Team:             teamItem,
		StarterSlots:     session.Capacity(),
		Starters:         viewPlayers(session.Starters(), session.Overrides()),
		Substitutes:      viewPlayers(session.Substitutes(), session.Overrides()),
		Available:        viewPlayers(session.Available(directory), session.Overrides()),
		DroppedPlayerIDs: restored.DroppedPlayerIDs,
	}, nil
}

// Save replaces the whole record with the submitted assignment state.
// The submitted lists are replayed through a fresh session, so duplicate
// assignments, unknown players and capacity overflow surface as domain
// errors before anything reaches the repository.
func (s *RosterService) Save(ctx context.Context, input SaveRosterInput) (roster.SavedRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Save")
	defer span.End()

	input.RosterID = strings.TrimSpace(input.RosterID)
	input.Title = strings.TrimSpace(input.Title)
	if input.RosterID == "" {
		return roster.SavedRoster{}, fmt.Errorf("%w: roster id is required", ErrInvalidInput)
	}
	if input.Title == "" {
		return roster.SavedRoster{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	existing, exists, err := s.rosterRepo.GetByID(ctx, input.RosterID)
	if err != nil {
		return roster.SavedRoster{}, fmt.Errorf("get roster by id: %w", err)
	}
	if !exists {
		return roster.SavedRoster{}, fmt.Errorf("%w: roster=%s", ErrNotFound, input.RosterID)
	}

	if input.StarterSlots == 0 {
		input.StarterSlots = existing.StarterSlots
	}

	directory, err := s.playerRepo.ListByTeam(ctx, existing.TeamID)
	if err != nil {
		return roster.SavedRoster{}, fmt.Errorf("list players by team: %w", err)
	}
	byID := make(map[string]player.Player, len(directory))
	for _, p := range directory {
		byID[p.ID] = p
	}

	session, err := roster.NewSession(input.StarterSlots)
	if err != nil {
		return roster.SavedRoster{}, err
	}

	for _, slot := range input.Starters {
		p, err := resolveSlotPlayer(slot, byID)
		if err != nil {
			return roster.SavedRoster{}, err
		}
		if err := session.AddStarter(p); err != nil {
			return roster.SavedRoster{}, err
		}
		session.Overrides().Set(p.ID, slot.PositionOverride)
	}
	for _, slot := range input.Substitutes {
		p, err := resolveSlotPlayer(slot, byID)
		if err != nil {
			return roster.SavedRoster{}, err
		}
		if err := session.AddSubstitute(p); err != nil {
			return roster.SavedRoster{}, err
		}
		session.Overrides().Set(p.ID, slot.PositionOverride)
	}

	if err := session.ValidateForSave(); err != nil {
		return roster.SavedRoster{}, err
	}

	item := roster.Snapshot(session, roster.RecordMeta{
		ID:       existing.ID,
		TeamID:   existing.TeamID,
		Title:    input.Title,
		GameDate: input.GameDate,
	})
	item.UpdatedAt = s.now().UTC()

	if err := s.rosterRepo.Save(ctx, item); err != nil {
		return roster.SavedRoster{}, fmt.Errorf("save roster: %w", err)
	}

	return item, nil
}

func (s *RosterService) ListByTeam(ctx context.Context, teamID string) ([]roster.SavedRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.rosterRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list rosters by team: %w", err)
	}

	return items, nil
}

func (s *RosterService) Delete(ctx context.Context, rosterID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Delete")
	defer span.End()

	rosterID = strings.TrimSpace(rosterID)
	if rosterID == "" {
		return fmt.Errorf("%w: roster id is required", ErrInvalidInput)
	}

	_, exists, err := s.rosterRepo.GetByID(ctx, rosterID)
	if err != nil {
		return fmt.Errorf("get roster by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: roster=%s", ErrNotFound, rosterID)
	}

	if err := s.rosterRepo.Delete(ctx, rosterID); err != nil {
		return fmt.Errorf("delete roster: %w", err)
	}

	return nil
}

func (s *RosterService) requireTeam(ctx context.Context, teamID string) error {
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return nil
}

func resolveSlotPlayer(slot SaveSlotInput, byID map[string]player.Player) (player.Player, error) {
	playerID := strings.TrimSpace(slot.PlayerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id cannot be empty", ErrInvalidInput)
	}

	p, ok := byID[playerID]
	if !ok {
		return player.Player{}, fmt.Errorf("%w: player %s is not in the team directory", ErrInvalidInput, playerID)
	}

	return p, nil
}

func viewPlayers(list []player.Player, overrides *roster.Overrides) []RosterPlayer {
	out := make([]RosterPlayer, 0, len(list))
	for _, p := range list {
		position, ok := overrides.Effective(p)
		_, overridden := overrides.Get(p.ID)
		out = append(out, RosterPlayer{
			Player:             p,
			Position:           position,
			PositionSet:        ok,
			PositionOverridden: overridden,
		})
	}

	return out
}
