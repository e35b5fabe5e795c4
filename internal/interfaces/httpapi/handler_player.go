package httpapi

import (
	"net/http"
	"strings"

	"github.com/dugout-hq/dugout/internal/usecase"
)

type upsertPlayerRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Position     string `json:"position" validate:"max=40"`
	JerseyNumber string `json:"jerseyNumber" validate:"max=10"`
	Nickname     string `json:"nickname" validate:"max=60"`
}

func (h *Handler) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	players, err := h.playerService.ListByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	var req upsertPlayerRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, usecase.CreatePlayerInput{
		TeamID:       teamID,
		Name:         req.Name,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		Nickname:     req.Nickname,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	var req upsertPlayerRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.Update(ctx, usecase.UpdatePlayerInput{
		TeamID:       teamID,
		PlayerID:     playerID,
		Name:         req.Name,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		Nickname:     req.Nickname,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "team_id", teamID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.playerService.Delete(ctx, teamID, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "team_id", teamID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
