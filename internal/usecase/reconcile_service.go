package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/dugout-hq/dugout/internal/domain/player"
	"github.com/dugout-hq/dugout/internal/domain/roster"
	"github.com/dugout-hq/dugout/internal/domain/team"
)

const (
	reconcileStatusClean    = "clean"
	reconcileStatusRepaired = "repaired"
	reconcileStatusFailed   = "failed"

	reconcileMaxWorkers = 4
)

type ReconcileInput struct {
	TeamID     string
	MaxWorkers int
	// DryRun reports stale references without rewriting records.
	DryRun bool
}

type ReconcileResult struct {
	TeamID        string               `json:"team_id"`
	RosterCount   int                  `json:"roster_count"`
	CleanCount    int                  `json:"clean_count"`
	RepairedCount int                  `json:"repaired_count"`
	FailedCount   int                  `json:"failed_count"`
	WorkerCount   int                  `json:"worker_count"`
	Rosters       []ReconcileRosterRow `json:"rosters"`
}

type ReconcileRosterRow struct {
	RosterID         string   `json:"roster_id"`
	Title            string   `json:"title"`
	Status           string   `json:"status"`
	DroppedPlayerIDs []string `json:"dropped_player_ids,omitempty"`
	Message          string   `json:"message,omitempty"`
}

// ReconcileService sweeps a team's saved rosters after directory changes:
// each record is restored against the current directory and rewritten
// when it references players that no longer exist. Reads tolerate stale
// references anyway; the sweep just stops reporting the same dropped IDs
// on every load.
type ReconcileService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	rosterRepo roster.Repository

	defaultStarterSlots int
	now                 func() time.Time
}

func NewReconcileService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	defaultStarterSlots int,
) *ReconcileService {
	if !roster.ValidCapacity(defaultStarterSlots) {
		defaultStarterSlots = roster.MaxStarterSlots
	}

	return &ReconcileService{
		teamRepo:            teamRepo,
		playerRepo:          playerRepo,
		rosterRepo:          rosterRepo,
		defaultStarterSlots: defaultStarterSlots,
		now:                 time.Now,
	}
}

func (s *ReconcileService) Reconcile(ctx context.Context, input ReconcileInput) (ReconcileResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReconcileService.Reconcile")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.TeamID == "" {
		return ReconcileResult{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return ReconcileResult{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	records, err := s.rosterRepo.ListByTeam(ctx, input.TeamID)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("list rosters by team: %w", err)
	}

	directory, err := s.playerRepo.ListByTeam(ctx, input.TeamID)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("list players by team: %w", err)
	}

	workerCount := normalizeReconcileWorkerCount(input.MaxWorkers, len(records))
	result := ReconcileResult{
		TeamID:      input.TeamID,
		RosterCount: len(records),
		WorkerCount: workerCount,
		Rosters:     make([]ReconcileRosterRow, 0, len(records)),
	}
	if len(records) == 0 {
		return result, nil
	}

	rows := make(chan ReconcileRosterRow, len(records))

	var cleanCount atomic.Int32
	var repairedCount atomic.Int32
	var failedCount atomic.Int32

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for _, rec := range records {
		rec := rec
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			row := s.reconcileRoster(ctx, rec, directory, input.DryRun)
			switch row.Status {
			case reconcileStatusClean:
				cleanCount.Add(1)
			case reconcileStatusRepaired:
				repairedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			rows <- row
		}); err != nil {
			workers.Done()
			return ReconcileResult{}, fmt.Errorf("submit roster to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Rosters = append(result.Rosters, row)
	}

	sort.SliceStable(result.Rosters, func(i, j int) bool {
		return result.Rosters[i].RosterID < result.Rosters[j].RosterID
	})

	result.CleanCount = int(cleanCount.Load())
	result.RepairedCount = int(repairedCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func (s *ReconcileService) reconcileRoster(
	ctx context.Context,
	rec roster.SavedRoster,
	directory []player.Player,
	dryRun bool,
) ReconcileRosterRow {
	row := ReconcileRosterRow{
		RosterID: rec.ID,
		Title:    rec.Title,
	}

	restored, err := roster.Restore(rec, directory, s.defaultStarterSlots)
	if err != nil {
		row.Status = reconcileStatusFailed
		row.Message = err.Error()
		return row
	}
	if len(restored.DroppedPlayerIDs) == 0 {
		row.Status = reconcileStatusClean
		return row
	}

	row.DroppedPlayerIDs = restored.DroppedPlayerIDs
	if dryRun {
		row.Status = reconcileStatusRepaired
		row.Message = "dry run, record not rewritten"
		return row
	}

	repaired := roster.Snapshot(restored.Session, roster.RecordMeta{
		ID:       rec.ID,
		TeamID:   rec.TeamID,
		Title:    rec.Title,
		GameDate: rec.GameDate,
	})
	repaired.UpdatedAt = s.now().UTC()

	if err := s.rosterRepo.Save(ctx, repaired); err != nil {
		row.Status = reconcileStatusFailed
		row.Message = fmt.Sprintf("save repaired roster: %v", err)
		return row
	}

	row.Status = reconcileStatusRepaired
	return row
}

func normalizeReconcileWorkerCount(value int, rosterCount int) int {
	if rosterCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > reconcileMaxWorkers {
		value = reconcileMaxWorkers
	}
	if value > rosterCount {
		value = rosterCount
	}
	return value
}
