package roster

import (
	"sort"
	"time"

	"github.com/dugout-hq/dugout/internal/domain/player"
)

// RecordMeta carries the identity fields of a saved roster that are not
// part of the assignment state itself.
type RecordMeta struct {
	ID       string
	TeamID   string
	Title    string
	GameDate *time.Time
}

// Snapshot converts a session into its persistable record. Slot numbers
// are assigned from list position, 1-indexed and contiguous, for each list
// independently; overrides are attached where present. Validation is the
// caller's precondition: run ValidateForSave before snapshotting.
func Snapshot(s *Session, meta RecordMeta) SavedRoster {
	return SavedRoster{
		ID:           meta.ID,
		TeamID:       meta.TeamID,
		Title:        meta.Title,
		GameDate:     meta.GameDate,
		StarterSlots: s.Capacity(),
		Starters:     snapshotEntries(s.Starters(), s.overrides),
		Substitutes:  snapshotEntries(s.Substitutes(), s.overrides),
	}
}

func snapshotEntries(list []player.Player, overrides *Overrides) []SlotEntry {
	entries := make([]SlotEntry, 0, len(list))
	for i, p := range list {
		entry := SlotEntry{
			PlayerID:   p.ID,
			SlotNumber: i + 1,
		}
		if label, ok := overrides.Get(p.ID); ok {
			entry.PositionOverride = label
		}
		entries = append(entries, entry)
	}

	return entries
}

// RestoreResult is a reconstructed editing session plus the player IDs
// whose directory entries disappeared between save and load. Dropped
// references are not an error; callers may surface them to the coach.
type RestoreResult struct {
	Session          *Session
	DroppedPlayerIDs []string
}

// Restore rebuilds a session from a saved record against the current
// player directory. Entries are ordered by slot number; references to
// players no longer in the directory are silently dropped with the
// relative order of the survivors preserved. The record's capacity is
// used when it is in range, else defaultCapacity. A restored lineup may
// exceed the capacity; that blocks the next save, never the load.
func Restore(rec SavedRoster, directory []player.Player, defaultCapacity int) (RestoreResult, error) {
	if err := validateEntries(rec.Starters); err != nil {
		return RestoreResult{}, err
	}
	if err := validateEntries(rec.Substitutes); err != nil {
		return RestoreResult{}, err
	}

	capacity := rec.StarterSlots
	if !ValidCapacity(capacity) {
		capacity = defaultCapacity
	}

	session, err := NewSession(capacity)
	if err != nil {
		return RestoreResult{}, err
	}

	byID := make(map[string]player.Player, len(directory))
	for _, p := range directory {
		byID[p.ID] = p
	}

	var dropped []string
	starters, droppedStarters := resolveEntries(rec.Starters, byID)
	dropped = append(dropped, droppedStarters...)
	for _, resolved := range starters {
		session.partition.appendStarter(resolved.player)
		if resolved.override != "" {
			session.overrides.Set(resolved.player.ID, resolved.override)
		}
	}

	substitutes, droppedSubstitutes := resolveEntries(rec.Substitutes, byID)
	dropped = append(dropped, droppedSubstitutes...)
	for _, resolved := range substitutes {
		session.partition.appendSubstitute(resolved.player)
		if resolved.override != "" {
			session.overrides.Set(resolved.player.ID, resolved.override)
		}
	}

	return RestoreResult{
		Session:          session,
		DroppedPlayerIDs: dropped,
	}, nil
}

type resolvedEntry struct {
	player   player.Player
	override string
}

func resolveEntries(entries []SlotEntry, byID map[string]player.Player) ([]resolvedEntry, []string) {
	ordered := append([]SlotEntry(nil), entries...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SlotNumber < ordered[j].SlotNumber
	})

	resolved := make([]resolvedEntry, 0, len(ordered))
	var dropped []string
	for _, entry := range ordered {
		p, ok := byID[entry.PlayerID]
		if !ok {
			dropped = append(dropped, entry.PlayerID)
			continue
		}
		resolved = append(resolved, resolvedEntry{
			player:   p,
			override: entry.PositionOverride,
		})
	}

	return resolved, dropped
}
