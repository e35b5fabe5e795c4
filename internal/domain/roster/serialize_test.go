package roster

import (
	"errors"
	"testing"

	"github.com/dugout-hq/dugout/internal/domain/player"
)

func TestSnapshot_NumbersSlotsFromListPosition(t *testing.T) {
	dir := testDirectory()
	s := mustSession(t, 9)

	if err := s.AddStarter(dir[0]); err != nil {
		t.Fatalf("add starter: %v", err)
	}
	if err := s.AddStarter(dir[1]); err != nil {
		t.Fatalf("add starter: %v", err)
	}
	if err := s.AddSubstitute(dir[2]); err != nil {
		t.Fatalf("add substitute: %v", err)
	}
	s.Overrides().Set("p1", "Catcher")

	rec := Snapshot(s, RecordMeta{ID: "r-1", TeamID: "team-1", Title: "Opening Day"})

	if rec.StarterSlots != 9 {
		t.Fatalf("expected starter slots 9, got %d", rec.StarterSlots)
	}
	want := []SlotEntry{
		{PlayerID: "p1", SlotNumber: 1, PositionOverride: "Catcher"},
		{PlayerID: "p2", SlotNumber: 2},
	}
	if len(rec.Starters) != len(want) {
		t.Fatalf("expected %d starter entries, got %d", len(want), len(rec.Starters))
	}
	for i := range want {
		if rec.Starters[i] != want[i] {
			t.Fatalf("starter entry %d: expected %+v, got %+v", i, want[i], rec.Starters[i])
		}
	}

	// Substitutes are numbered independently from 1.
	if len(rec.Substitutes) != 1 || rec.Substitutes[0].SlotNumber != 1 || rec.Substitutes[0].PlayerID != "p3" {
		t.Fatalf("unexpected substitute entries: %+v", rec.Substitutes)
	}
}

func TestRestore_RoundTripPreservesStateWhenDirectoryUnchanged(t *testing.T) {
	dir := testDirectory()
	s := mustSession(t, 4)

	if err := s.AddStarter(dir[1]); err != nil {
		t.Fatalf("add starter: %v", err)
	}
	if err := s.AddStarter(dir[0]); err != nil {
		t.Fatalf("add starter: %v", err)
	}
	if err := s.AddSubstitute(dir[3]); err != nil {
		t.Fatalf("add substitute: %v", err)
	}
	s.Overrides().Set("p2", "First Base")
	s.Overrides().Set("p4", "Left Field")

	rec := Snapshot(s, RecordMeta{ID: "r-1", TeamID: "team-1"})
	restored, err := Restore(rec, dir, 9)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if len(restored.DroppedPlayerIDs) != 0 {
		t.Fatalf("expected no drops, got %v", restored.DroppedPlayerIDs)
	}

	got := restored.Session
	assertIDs(t, starterIDs(got), "p2", "p1")
	assertIDs(t, playerIDs(got.Substitutes()), "p4")
	if got.Capacity() != 4 {
		t.Fatalf("expected restored capacity 4, got %d", got.Capacity())
	}
	if label, ok := got.Overrides().Get("p2"); !ok || label != "First Base" {
		t.Fatalf("expected starter override restored, got %q (present=%t)", label, ok)
	}
	if label, ok := got.Overrides().Get("p4"); !ok || label != "Left Field" {
		t.Fatalf("expected substitute override restored, got %q (present=%t)", label, ok)
	}
}

func TestRestore_DropsStaleReferencesSilently(t *testing.T) {
	rec := SavedRoster{
		StarterSlots: 9,
		Starters: []SlotEntry{
			{PlayerID: "deleted-x", SlotNumber: 1},
			{PlayerID: "p1", SlotNumber: 2, PositionOverride: "Catcher"},
		},
		Substitutes: []SlotEntry{
			{PlayerID: "deleted-y", SlotNumber: 1},
		},
	}
	dir := []player.Player{{ID: "p1", TeamID: "team-1", Name: "Ava Reyes"}}

	restored, err := Restore(rec, dir, 9)
	if err != nil {
		t.Fatalf("stale references must not fail the restore: %v", err)
	}

	assertIDs(t, starterIDs(restored.Session), "p1")
	if got := len(restored.Session.Substitutes()); got != 0 {
		t.Fatalf("expected empty bench, got %d", got)
	}
	assertIDs(t, restored.DroppedPlayerIDs, "deleted-x", "deleted-y")

	if label, ok := restored.Session.Overrides().Get("p1"); !ok || label != "Catcher" {
		t.Fatalf("expected override restored for surviving player, got %q (present=%t)", label, ok)
	}
}

func TestRestore_SlotNumberIsSortKeyNotIndex(t *testing.T) {
	rec := SavedRoster{
		StarterSlots: 9,
		Starters: []SlotEntry{
			{PlayerID: "p3", SlotNumber: 40},
			{PlayerID: "p1", SlotNumber: 2},
			{PlayerID: "p2", SlotNumber: 17},
		},
	}

	restored, err := Restore(rec, testDirectory(), 9)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	assertIDs(t, starterIDs(restored.Session), "p1", "p2", "p3")
}

func TestRestore_CapacityFallback(t *testing.T) {
	rec := SavedRoster{StarterSlots: 0}

	restored, err := Restore(rec, nil, 11)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Session.Capacity() != 11 {
		t.Fatalf("expected fallback capacity 11, got %d", restored.Session.Capacity())
	}

	rec.StarterSlots = 99
	restored, err = Restore(rec, nil, 11)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Session.Capacity() != 11 {
		t.Fatalf("expected fallback capacity for out-of-range record, got %d", restored.Session.Capacity())
	}
}

func TestRestore_OversizedLineupLoadsButBlocksSave(t *testing.T) {
	rec := SavedRoster{
		StarterSlots: 2,
		Starters: []SlotEntry{
			{PlayerID: "p1", SlotNumber: 1},
			{PlayerID: "p2", SlotNumber: 2},
			{PlayerID: "p3", SlotNumber: 3},
		},
	}

	restored, err := Restore(rec, testDirectory(), 9)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := len(restored.Session.Starters()); got != 3 {
		t.Fatalf("restore must not evict, got %d starters", got)
	}
	if err := restored.Session.ValidateForSave(); !errors.Is(err, ErrTooManyStarters) {
		t.Fatalf("expected ErrTooManyStarters, got %v", err)
	}
}

func TestRestore_MalformedEntries(t *testing.T) {
	rec := SavedRoster{
		StarterSlots: 9,
		Starters:     []SlotEntry{{PlayerID: "p1", SlotNumber: 0}},
	}
	if _, err := Restore(rec, testDirectory(), 9); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord for zero slot number, got %v", err)
	}

	rec = SavedRoster{
		StarterSlots: 9,
		Substitutes:  []SlotEntry{{SlotNumber: 1}},
	}
	if _, err := Restore(rec, testDirectory(), 9); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord for missing player id, got %v", err)
	}
}
