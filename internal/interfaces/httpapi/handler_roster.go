package httpapi

import (
	"net/http"
	"strings"

	"github.com/dugout-hq/dugout/internal/usecase"
)

type createRosterRequest struct {
	Title        string `json:"title" validate:"required,max=120"`
	GameDate     string `json:"gameDate"`
	StarterSlots int    `json:"starterSlots" validate:"min=0,max=50"`
}

type saveRosterRequest struct {
	Title        string              `json:"title" validate:"required,max=120"`
	GameDate     string              `json:"gameDate"`
	StarterSlots int                 `json:"starterSlots" validate:"min=0,max=50"`
	Starters     []rosterSlotRequest `json:"starters" validate:"dive"`
	Substitutes  []rosterSlotRequest `json:"substitutes" validate:"dive"`
}

type rosterSlotRequest struct {
	PlayerID         string `json:"playerId" validate:"required"`
	PositionOverride string `json:"positionOverride" validate:"max=40"`
}

type reconcileRequest struct {
	MaxWorkers int  `json:"maxWorkers" validate:"min=0,max=16"`
	DryRun     bool `json:"dryRun"`
}

func (h *Handler) ListRostersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRostersByTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	rosters, err := h.rosterService.ListByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list rosters failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rosterSummaryDTO, 0, len(rosters))
	for _, item := range rosters {
		items = append(items, rosterToSummaryDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateRoster")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	var req createRosterRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	gameDate, err := parseGameDate(strings.TrimSpace(req.GameDate))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.rosterService.Create(ctx, usecase.CreateRosterInput{
		TeamID:       teamID,
		Title:        req.Title,
		GameDate:     gameDate,
		StarterSlots: req.StarterSlots,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create roster failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, rosterToSummaryDTO(created))
}

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoster")
	defer span.End()

	rosterID := strings.TrimSpace(r.PathValue("rosterID"))
	view, err := h.rosterService.Get(ctx, rosterID)
	if err != nil {
		h.logger.WarnContext(ctx, "get roster failed", "roster_id", rosterID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterViewToDTO(view))
}

func (h *Handler) SaveRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveRoster")
	defer span.End()

	rosterID := strings.TrimSpace(r.PathValue("rosterID"))
	var req saveRosterRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	gameDate, err := parseGameDate(strings.TrimSpace(req.GameDate))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.rosterService.Save(ctx, usecase.SaveRosterInput{
		RosterID:     rosterID,
		Title:        req.Title,
		GameDate:     gameDate,
		StarterSlots: req.StarterSlots,
		Starters:     slotRequestsToInput(req.Starters),
		Substitutes:  slotRequestsToInput(req.Substitutes),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save roster failed", "roster_id", rosterID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterToSummaryDTO(saved))
}

func (h *Handler) DeleteRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteRoster")
	defer span.End()

	rosterID := strings.TrimSpace(r.PathValue("rosterID"))
	if err := h.rosterService.Delete(ctx, rosterID); err != nil {
		h.logger.WarnContext(ctx, "delete roster failed", "roster_id", rosterID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) ReconcileRosters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReconcileRosters")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	req := reconcileRequest{}
	if r.ContentLength != 0 {
		if err := h.decodeRequest(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
		if err := h.validateRequest(ctx, req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	result, err := h.reconcileService.Reconcile(ctx, usecase.ReconcileInput{
		TeamID:     teamID,
		MaxWorkers: req.MaxWorkers,
		DryRun:     req.DryRun,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "reconcile rosters failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func slotRequestsToInput(slots []rosterSlotRequest) []usecase.SaveSlotInput {
	items := make([]usecase.SaveSlotInput, 0, len(slots))
	for _, slot := range slots {
		items = append(items, usecase.SaveSlotInput{
			PlayerID:         slot.PlayerID,
			PositionOverride: slot.PositionOverride,
		})
	}

	return items
}
