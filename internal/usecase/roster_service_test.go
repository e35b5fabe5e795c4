package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dugout-hq/dugout/internal/domain/roster"
	"github.com/dugout-hq/dugout/internal/infrastructure/repository/memory"
)

type sequenceIDs struct {
	next int
}

func (g *sequenceIDs) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("test-id-%02d", g.next), nil
}

func newRosterFixture() (*RosterService, *memory.PlayerRepository, *memory.RosterRepository) {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	rosterRepo := memory.NewRosterRepository()
	svc := NewRosterService(teamRepo, playerRepo, rosterRepo, &sequenceIDs{}, 9)
	return svc, playerRepo, rosterRepo
}

func TestRosterService_CreateThenGet_EmptyRoster(t *testing.T) {
	svc, _, _ := newRosterFixture()

	created, err := svc.Create(t.Context(), CreateRosterInput{
		TeamID: memory.TeamIDRiverhawks,
		Title:  "vs Harbor Cats",
	})
	if err != nil {
		t.Fatalf("create roster failed: %v", err)
	}
	if created.StarterSlots != 9 {
		t.Fatalf("expected default starter slots 9, got %d", created.StarterSlots)
	}

	view, err := svc.Get(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get roster failed: %v", err)
	}
	if len(view.Starters) != 0 || len(view.Substitutes) != 0 {
		t.Fatalf("expected empty roster, got %d starters %d substitutes", len(view.Starters), len(view.Substitutes))
	}
	if len(view.Available) != 12 {
		t.Fatalf("expected full directory available, got %d", len(view.Available))
	}
	if view.Team.ID != memory.TeamIDRiverhawks {
		t.Fatalf("unexpected team: %s", view.Team.ID)
	}
}

func TestRosterService_Create_InvalidStarterSlots(t *testing.T) {
	svc, _, _ := newRosterFixture()

	_, err := svc.Create(t.Context(), CreateRosterInput{
		TeamID:       memory.TeamIDRiverhawks,
		Title:        "vs Harbor Cats",
		StarterSlots: 51,
	})
	if !errors.Is(err, roster.ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity, got %v", err)
	}
}

func TestRosterService_Create_UnknownTeam(t *testing.T) {
	svc, _, _ := newRosterFixture()

	_, err := svc.Create(t.Context(), CreateRosterInput{
		TeamID: "no-such-team",
		Title:  "vs Harbor Cats",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRosterService_Save_RoundTrip(t *testing.T) {
	svc, _, _ := newRosterFixture()

	created, err := svc.Create(t.Context(), CreateRosterInput{
		TeamID: memory.TeamIDRiverhawks,
		Title:  "vs Harbor Cats",
	})
	if err != nil {
		t.Fatalf("create roster failed: %v", err)
	}

	saved, err := svc.Save(t.Context(), SaveRosterInput{
		RosterID:     created.ID,
		Title:        "vs Harbor Cats",
		StarterSlots: 9,
		Starters: []SaveSlotInput{
			{PlayerID: "rvh-02"},
			{PlayerID: "rvh-01", PositionOverride: "Closer"},
		},
		Substitutes: []SaveSlotInput{
			{PlayerID: "rvh-10"},
		},
	})
	if err != nil {
		t.Fatalf("save roster failed: %v", err)
	}
	if len(saved.Starters) != 2 || saved.Starters[0].PlayerID != "rvh-02" || saved.Starters[0].SlotNumber != 1 {
		t.Fatalf("unexpected starter entries: %+v", saved.Starters)
	}
	if saved.Starters[1].PositionOverride != "Closer" {
		t.Fatalf("expected override persisted, got %+v", saved.Starters[1])
	}

	view, err := svc.Get(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get roster failed: %v", err)
	}
	if len(view.Starters) != 2 || view.Starters[0].Player.ID != "rvh-02" || view.Starters[1].Player.ID != "rvh-01" {
		t.Fatalf("starter order lost across save/load: %+v", view.Starters)
	}
	if view.Starters[1].Position != "Closer" || !view.Starters[1].PositionOverridden {
		t.Fatalf("expected effective position Closer, got %+v", view.Starters[1])
	}
	if len(view.DroppedPlayerIDs) != 0 {
		t.Fatalf("expected no dropped ids, got %v", view.DroppedPlayerIDs)
	}
	if len(view.Available) != 9 {
		t.Fatalf("expected 9 players still available, got %d", len(view.Available))
	}
}

func TestRosterService_Save_DuplicateAssignment(t *testing.T) {
	svc, _, _ := newRosterFixture()

	created, err := svc.Create(t.Context(), CreateRosterInput{
		TeamID: memory.TeamIDRiverhawks,
		Title:  "vs Harbor Cats",
	})
	if err != nil {
		t.Fatalf("create roster failed: %v", err)
	}

	_, err = svc.Save(t.Context(), SaveRosterInput{
		RosterID: created.ID,
		Title:    "vs Harbor Cats",
		Starters: []SaveSlotInput{
			{PlayerID: "rvh-01"},
		},
		Substitutes: []SaveSlotInput{
			{PlayerID: "rvh-01"},
		},
	})
	if !errors.Is(err, roster.ErrAlreadyAssigned) {
		t.Fatalf("expected ErrAlreadyAssigned, got %v", err)
	}
}

func TestRosterService_Save_CapacityOverflowLeavesRecordUntouched(t *testing.T) {
	svc, _, rosterRepo := newRosterFixture()

	created, err := svc.Create(t.Context(), CreateRosterInput{
		TeamID:       memory.TeamIDRiverhawks,
		Title:        "vs Harbor Cats",
		StarterSlots: 2,
	})
	if err != nil {
		t.Fatalf("create roster failed: %v", err)
	}

	_, err = svc.Save(t.Context(), SaveRosterInput{
		RosterID: created.ID,
		Title:    "vs Harbor Cats",
		Starters: []SaveSlotInput{
			{PlayerID: "rvh-01"},
			{PlayerID: "rvh-02"},
			{PlayerID: "rvh-03"},
		},
	})
	if !errors.Is(err, roster.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	stored, exists, err := rosterRepo.GetByID(t.Context(), created.ID)
	if err != nil || !exists {
		t.Fatalf("get stored roster: exists=%t err=%v", exists, err)
	}
	if len(stored.Starters) != 0 {
		t.Fatalf("rejected save must not reach the repository, got %+v", stored.Starters)
	}
}

func TestRosterService_Save_UnknownPlayer(t *testing.T) {
	svc, _, _ := newRosterFixture()

	created, err := svc.Create(t.Context(), CreateRosterInput{
		TeamID: memory.TeamIDRiverhawks,
		Title:  "vs Harbor Cats",
	})
	if err != nil {
		t.Fatalf("create roster failed: %v", err)
	}

	_, err = svc.Save(t.Context(), SaveRosterInput{
		RosterID: created.ID,
		Title:    "vs Harbor Cats",
		Starters: []SaveSlotInput{
			{PlayerID: "hbc-01"},
		},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for player outside the directory, got %v", err)
	}
}

func TestRosterService_Get_ReportsDroppedPlayers(t *testing.T) {
	svc, playerRepo, _ := newRosterFixture()

	created, err := svc.Create(t.Context(), CreateRosterInput{
		TeamID: memory.TeamIDRiverhawks,
		Title:  "vs Harbor Cats",
	})
	if err != nil {
		t.Fatalf("create roster failed: %v", err)
	}

	_, err = svc.Save(t.Context(), SaveRosterInput{
		RosterID: created.ID,
		Title:    "vs Harbor Cats",
		Starters: []SaveSlotInput{
			{PlayerID: "rvh-01"},
			{PlayerID: "rvh-02"},
		},
	})
	if err != nil {
		t.Fatalf("save roster failed: %v", err)
	}

	if err := playerRepo.Delete(t.Context(), memory.TeamIDRiverhawks, "rvh-01"); err != nil {
		t.Fatalf("delete player: %v", err)
	}

	view, err := svc.Get(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get after directory change failed: %v", err)
	}
	if len(view.Starters) != 1 || view.Starters[0].Player.ID != "rvh-02" {
		t.Fatalf("expected surviving starter rvh-02, got %+v", view.Starters)
	}
	if len(view.DroppedPlayerIDs) != 1 || view.DroppedPlayerIDs[0] != "rvh-01" {
		t.Fatalf("expected dropped id rvh-01, got %v", view.DroppedPlayerIDs)
	}
}

func TestRosterService_Delete(t *testing.T) {
	svc, _, _ := newRosterFixture()

	created, err := svc.Create(t.Context(), CreateRosterInput{
		TeamID: memory.TeamIDRiverhawks,
		Title:  "vs Harbor Cats",
	})
	if err != nil {
		t.Fatalf("create roster failed: %v", err)
	}

	if err := svc.Delete(t.Context(), created.ID); err != nil {
		t.Fatalf("delete roster failed: %v", err)
	}
	if err := svc.Delete(t.Context(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
