package roster

import (
	"errors"
	"testing"

	"github.com/dugout-hq/dugout/internal/domain/player"
)

func testDirectory() []player.Player {
	return []player.Player{
		{ID: "p1", TeamID: "team-1", Name: "Ava Reyes", Position: "Pitcher"},
		{ID: "p2", TeamID: "team-1", Name: "Noah Kim", Position: "Catcher"},
		{ID: "p3", TeamID: "team-1", Name: "Liam Ortiz"},
		{ID: "p4", TeamID: "team-1", Name: "Mia Chen", Position: "Shortstop"},
	}
}

func mustSession(t *testing.T, capacity int) *Session {
	t.Helper()

	s, err := NewSession(capacity)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func starterIDs(s *Session) []string {
	return playerIDs(s.Starters())
}

func playerIDs(list []player.Player) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []string, want ...string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, got)
		}
	}
}

func TestSession_CapacityEnforcedAtInsertion(t *testing.T) {
	dir := testDirectory()
	s := mustSession(t, 2)

	if err := s.AddStarter(dir[0]); err != nil {
		t.Fatalf("add first starter: %v", err)
	}
	if err := s.AddStarter(dir[1]); err != nil {
		t.Fatalf("add second starter: %v", err)
	}

	err := s.AddStarter(dir[2])
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	assertIDs(t, starterIDs(s), "p1", "p2")
	assertIDs(t, playerIDs(s.Available(dir)), "p3", "p4")
}

func TestSession_DuplicateAssignmentRejected(t *testing.T) {
	dir := testDirectory()
	s := mustSession(t, 9)

	if err := s.AddStarter(dir[0]); err != nil {
		t.Fatalf("add starter: %v", err)
	}

	if err := s.AddStarter(dir[0]); !errors.Is(err, ErrAlreadyAssigned) {
		t.Fatalf("expected ErrAlreadyAssigned for starters, got %v", err)
	}
	if err := s.AddSubstitute(dir[0]); !errors.Is(err, ErrAlreadyAssigned) {
		t.Fatalf("expected ErrAlreadyAssigned for substitutes, got %v", err)
	}
}

func TestSession_PartitionInvariantUnderMutation(t *testing.T) {
	dir := testDirectory()
	s := mustSession(t, 3)

	if err := s.AddStarter(dir[0]); err != nil {
		t.Fatalf("add starter: %v", err)
	}
	if err := s.AddSubstitute(dir[1]); err != nil {
		t.Fatalf("add substitute: %v", err)
	}
	if err := s.Promote("p2"); err != nil {
		t.Fatalf("promote: %v", err)
	}
	if err := s.Demote("p1"); err != nil {
		t.Fatalf("demote: %v", err)
	}

	seen := make(map[string]int)
	for _, id := range starterIDs(s) {
		seen[id]++
	}
	for _, id := range playerIDs(s.Substitutes()) {
		seen[id]++
	}
	for _, id := range playerIDs(s.Available(dir)) {
		seen[id]++
	}

	for _, p := range dir {
		if seen[p.ID] != 1 {
			t.Fatalf("player %s appears %d times across the partition", p.ID, seen[p.ID])
		}
	}
}

func TestSession_PromoteBlockedWhenFull(t *testing.T) {
	dir := testDirectory()
	s := mustSession(t, 1)

	if err := s.AddStarter(dir[0]); err != nil {
		t.Fatalf("add starter: %v", err)
	}
	if err := s.AddSubstitute(dir[1]); err != nil {
		t.Fatalf("add substitute: %v", err)
	}

	if err := s.Promote("p2"); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	assertIDs(t, starterIDs(s), "p1")
	assertIDs(t, playerIDs(s.Substitutes()), "p2")
}

func TestSession_DemoteAppendsToBench(t *testing.T) {
	dir := testDirectory()
	s := mustSession(t, 3)

	for _, p := range dir[:2] {
		if err := s.AddStarter(p); err != nil {
			t.Fatalf("add starter %s: %v", p.ID, err)
		}
	}
	if err := s.AddSubstitute(dir[2]); err != nil {
		t.Fatalf("add substitute: %v", err)
	}

	if err := s.Demote("p1"); err != nil {
		t.Fatalf("demote: %v", err)
	}

	assertIDs(t, starterIDs(s), "p2")
	assertIDs(t, playerIDs(s.Substitutes()), "p3", "p1")
}

func TestSession_Reorder(t *testing.T) {
	dir := testDirectory()
	s := mustSession(t, 5)

	for _, p := range dir[:3] {
		if err := s.AddStarter(p); err != nil {
			t.Fatalf("add starter %s: %v", p.ID, err)
		}
	}

	if err := s.Reorder(SideStarters, 0, 2); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	assertIDs(t, starterIDs(s), "p2", "p3", "p1")

	if err := s.Reorder(SideStarters, 2, 0); err != nil {
		t.Fatalf("reorder back: %v", err)
	}
	assertIDs(t, starterIDs(s), "p1", "p2", "p3")

	if err := s.Reorder(SideStarters, 0, 3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := s.Reorder(SideStarters, -1, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for negative index, got %v", err)
	}
}

func TestSession_RemoveMakesPlayerAvailable(t *testing.T) {
	dir := testDirectory()
	s := mustSession(t, 3)

	if err := s.AddStarter(dir[0]); err != nil {
		t.Fatalf("add starter: %v", err)
	}
	if err := s.RemoveStarter("p1"); err != nil {
		t.Fatalf("remove starter: %v", err)
	}
	if err := s.RemoveStarter("p1"); !errors.Is(err, ErrNotAssigned) {
		t.Fatalf("expected ErrNotAssigned on second removal, got %v", err)
	}

	assertIDs(t, playerIDs(s.Available(dir)), "p1", "p2", "p3", "p4")
}

func TestSession_ClearAllEmptiesPartitionAndOverrides(t *testing.T) {
	dir := testDirectory()
	s := mustSession(t, 3)

	if err := s.AddStarter(dir[0]); err != nil {
		t.Fatalf("add starter: %v", err)
	}
	if err := s.AddSubstitute(dir[1]); err != nil {
		t.Fatalf("add substitute: %v", err)
	}
	s.Overrides().Set("p1", "Closer")

	s.ClearAll()

	if s.partition.StarterCount() != 0 || s.partition.SubstituteCount() != 0 {
		t.Fatalf("expected empty partition after clear")
	}
	if s.Overrides().Len() != 0 {
		t.Fatalf("expected empty overrides after clear")
	}
	assertIDs(t, playerIDs(s.Available(dir)), "p1", "p2", "p3", "p4")
}

func TestSession_ShrinkingCapacityNeverEvicts(t *testing.T) {
	dir := testDirectory()
	s := mustSession(t, 3)

	for _, p := range dir[:3] {
		if err := s.AddStarter(p); err != nil {
			t.Fatalf("add starter %s: %v", p.ID, err)
		}
	}

	if err := s.SetCapacity(2); err != nil {
		t.Fatalf("set capacity: %v", err)
	}
	if got := len(s.Starters()); got != 3 {
		t.Fatalf("expected 3 starters after shrink, got %d", got)
	}

	if err := s.ValidateForSave(); !errors.Is(err, ErrTooManyStarters) {
		t.Fatalf("expected ErrTooManyStarters, got %v", err)
	}

	if err := s.RemoveStarter("p3"); err != nil {
		t.Fatalf("remove starter: %v", err)
	}
	if err := s.ValidateForSave(); err != nil {
		t.Fatalf("expected save to validate after resolving, got %v", err)
	}
}

func TestSlotPolicy_Bounds(t *testing.T) {
	if _, err := NewSlotPolicy(0); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity for 0, got %v", err)
	}
	if _, err := NewSlotPolicy(51); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity for 51, got %v", err)
	}

	policy, err := NewSlotPolicy(9)
	if err != nil {
		t.Fatalf("new slot policy: %v", err)
	}
	if err := policy.SetCapacity(50); err != nil {
		t.Fatalf("set capacity 50: %v", err)
	}
	if err := policy.SetCapacity(51); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity, got %v", err)
	}
	if policy.Capacity() != 50 {
		t.Fatalf("capacity must be unchanged after rejected set, got %d", policy.Capacity())
	}
}
