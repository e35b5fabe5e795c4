package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/dugout-hq/dugout/internal/domain/player"
	"github.com/dugout-hq/dugout/internal/domain/team"
	"github.com/dugout-hq/dugout/internal/platform/id"
)

type CreatePlayerInput struct {
	TeamID       string
	Name         string
	Position     string
	JerseyNumber string
	Nickname     string
}

type UpdatePlayerInput struct {
	TeamID       string
	PlayerID     string
	Name         string
	Position     string
	JerseyNumber string
	Nickname     string
}

type PlayerService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	ids        id.Generator
}

func NewPlayerService(teamRepo team.Repository, playerRepo player.Repository, ids id.Generator) *PlayerService {
	return &PlayerService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		ids:        ids,
	}
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if err := s.requireTeam(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return items, nil
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.Name = strings.TrimSpace(input.Name)
	if input.TeamID == "" {
		return player.Player{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return player.Player{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := s.requireTeam(ctx, input.TeamID); err != nil {
		return player.Player{}, err
	}

	playerID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	item := player.Player{
		ID:           playerID,
		TeamID:       input.TeamID,
		Name:         input.Name,
		Position:     strings.TrimSpace(input.Position),
		JerseyNumber: strings.TrimSpace(input.JerseyNumber),
		Nickname:     strings.TrimSpace(input.Nickname),
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Upsert(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) Update(ctx context.Context, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	input.Name = strings.TrimSpace(input.Name)
	if input.TeamID == "" || input.PlayerID == "" {
		return player.Player{}, fmt.Errorf("%w: team id and player id are required", ErrInvalidInput)
	}
	if input.Name == "" {
		return player.Player{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	existing, err := s.getTeamPlayer(ctx, input.TeamID, input.PlayerID)
	if err != nil {
		return player.Player{}, err
	}

	item := player.Player{
		ID:           existing.ID,
		TeamID:       existing.TeamID,
		Name:         input.Name,
		Position:     strings.TrimSpace(input.Position),
		JerseyNumber: strings.TrimSpace(input.JerseyNumber),
		Nickname:     strings.TrimSpace(input.Nickname),
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Upsert(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return item, nil
}

// Delete removes the player from the directory. Saved rosters that still
// reference the player are untouched; their stale entries drop out on the
// next read or an explicit reconcile sweep.
func (s *PlayerService) Delete(ctx context.Context, teamID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	playerID = strings.TrimSpace(playerID)
	if teamID == "" || playerID == "" {
		return fmt.Errorf("%w: team id and player id are required", ErrInvalidInput)
	}

	if _, err := s.getTeamPlayer(ctx, teamID, playerID); err != nil {
		return err
	}

	if err := s.playerRepo.Delete(ctx, teamID, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}

func (s *PlayerService) requireTeam(ctx context.Context, teamID string) error {
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return nil
}

func (s *PlayerService) getTeamPlayer(ctx context.Context, teamID, playerID string) (player.Player, error) {
	if err := s.requireTeam(ctx, teamID); err != nil {
		return player.Player{}, err
	}

	items, err := s.playerRepo.GetByIDs(ctx, teamID, []string{playerID})
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if len(items) == 0 {
		return player.Player{}, fmt.Errorf("%w: player=%s team=%s", ErrNotFound, playerID, teamID)
	}

	return items[0], nil
}
