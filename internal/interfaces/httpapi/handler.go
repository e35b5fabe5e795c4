package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/dugout-hq/dugout/internal/domain/player"
	"github.com/dugout-hq/dugout/internal/domain/roster"
	"github.com/dugout-hq/dugout/internal/domain/team"
	"github.com/dugout-hq/dugout/internal/platform/logging"
	"github.com/dugout-hq/dugout/internal/usecase"
)

type Handler struct {
	teamService      *usecase.TeamService
	playerService    *usecase.PlayerService
	rosterService    *usecase.RosterService
	reconcileService *usecase.ReconcileService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	rosterService *usecase.RosterService,
	reconcileService *usecase.ReconcileService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		teamService:      teamService,
		playerService:    playerService,
		rosterService:    rosterService,
		reconcileService: reconcileService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) decodeRequest(r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// parseGameDate accepts a calendar date or a full timestamp; an empty value
// means the roster has no game date yet.
func parseGameDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.DateOnly, value); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("%w: gameDate must be YYYY-MM-DD or RFC3339: %v", usecase.ErrInvalidInput, err)
	}

	return &parsed, nil
}

func formatGameDate(value *time.Time) string {
	if value == nil {
		return ""
	}

	return value.UTC().Format(time.DateOnly)
}

type teamDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Sport  string `json:"sport"`
	Season string `json:"season"`
}

type playerDTO struct {
	ID           string `json:"id"`
	TeamID       string `json:"teamId"`
	Name         string `json:"name"`
	Position     string `json:"position,omitempty"`
	JerseyNumber string `json:"jerseyNumber,omitempty"`
	Nickname     string `json:"nickname,omitempty"`
}

type rosterSummaryDTO struct {
	ID              string `json:"id"`
	TeamID          string `json:"teamId"`
	Title           string `json:"title"`
	GameDate        string `json:"gameDate,omitempty"`
	StarterSlots    int    `json:"starterSlots"`
	StarterCount    int    `json:"starterCount"`
	SubstituteCount int    `json:"substituteCount"`
	UpdatedAt       string `json:"updatedAt"`
}

type rosterSlotDTO struct {
	SlotNumber         int    `json:"slotNumber"`
	PlayerID           string `json:"playerId"`
	Name               string `json:"name"`
	Position           string `json:"position,omitempty"`
	PositionOverridden bool   `json:"positionOverridden,omitempty"`
}

type rosterPlayerDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position,omitempty"`
	JerseyNumber string `json:"jerseyNumber,omitempty"`
	Nickname     string `json:"nickname,omitempty"`
}

type rosterViewDTO struct {
	ID               string            `json:"id"`
	TeamID           string            `json:"teamId"`
	Title            string            `json:"title"`
	GameDate         string            `json:"gameDate,omitempty"`
	StarterSlots     int               `json:"starterSlots"`
	Starters         []rosterSlotDTO   `json:"starters"`
	Substitutes      []rosterSlotDTO   `json:"substitutes"`
	Available        []rosterPlayerDTO `json:"available"`
	DroppedPlayerIDs []string          `json:"droppedPlayerIds,omitempty"`
	UpdatedAt        string            `json:"updatedAt"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:     v.ID,
		Name:   v.Name,
		Sport:  v.Sport,
		Season: v.Season,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:           v.ID,
		TeamID:       v.TeamID,
		Name:         v.Name,
		Position:     v.Position,
		JerseyNumber: v.JerseyNumber,
		Nickname:     v.Nickname,
	}
}

func rosterToSummaryDTO(v roster.SavedRoster) rosterSummaryDTO {
	return rosterSummaryDTO{
		ID:              v.ID,
		TeamID:          v.TeamID,
		Title:           v.Title,
		GameDate:        formatGameDate(v.GameDate),
		StarterSlots:    v.StarterSlots,
		StarterCount:    len(v.Starters),
		SubstituteCount: len(v.Substitutes),
		UpdatedAt:       v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func rosterViewToDTO(v usecase.RosterView) rosterViewDTO {
	return rosterViewDTO{
		ID:               v.Roster.ID,
		TeamID:           v.Roster.TeamID,
		Title:            v.Roster.Title,
		GameDate:         formatGameDate(v.Roster.GameDate),
		StarterSlots:     v.StarterSlots,
		Starters:         slotListToDTO(v.Starters),
		Substitutes:      slotListToDTO(v.Substitutes),
		Available:        availableToDTO(v.Available),
		DroppedPlayerIDs: v.DroppedPlayerIDs,
		UpdatedAt:        v.Roster.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func slotListToDTO(list []usecase.RosterPlayer) []rosterSlotDTO {
	items := make([]rosterSlotDTO, 0, len(list))
	for i, entry := range list {
		items = append(items, rosterSlotDTO{
			SlotNumber:         i + 1,
			PlayerID:           entry.Player.ID,
			Name:               entry.Player.Name,
			Position:           entry.Position,
			PositionOverridden: entry.PositionOverridden,
		})
	}

	return items
}

func availableToDTO(list []usecase.RosterPlayer) []rosterPlayerDTO {
	items := make([]rosterPlayerDTO, 0, len(list))
	for _, entry := range list {
		items = append(items, rosterPlayerDTO{
			ID:           entry.Player.ID,
			Name:         entry.Player.Name,
			Position:     entry.Position,
			JerseyNumber: entry.Player.JerseyNumber,
			Nickname:     entry.Player.Nickname,
		})
	}

	return items
}
