package roster

import (
	"sort"
	"strings"

	"github.com/dugout-hq/dugout/internal/domain/player"
)

// Overrides maps player IDs to free-text per-game position labels. An
// override is a display annotation for one game roster: it survives moves
// between starters, substitutes and available, and is removed only by
// Clear or by clearing the whole session.
type Overrides struct {
	byPlayer map[string]string
}

func NewOverrides() *Overrides {
	return &Overrides{byPlayer: make(map[string]string)}
}

// Set stores the trimmed label for the player. A label that is empty after
// trimming clears any existing override instead.
func (o *Overrides) Set(playerID, label string) {
	label = strings.TrimSpace(label)
	if label == "" {
		o.Clear(playerID)
		return
	}

	o.byPlayer[playerID] = label
}

func (o *Overrides) Clear(playerID string) {
	delete(o.byPlayer, playerID)
}

func (o *Overrides) Get(playerID string) (string, bool) {
	label, ok := o.byPlayer[playerID]
	return label, ok
}

// Effective resolves the position to display for a player: the override if
// one exists, else the player's default position. The second return is
// false when neither is set; callers decide how to render "unset".
func (o *Overrides) Effective(p player.Player) (string, bool) {
	if label, ok := o.byPlayer[p.ID]; ok {
		return label, true
	}
	if p.Position != "" {
		return p.Position, true
	}

	return "", false
}

func (o *Overrides) Len() int {
	return len(o.byPlayer)
}

// PlayerIDs returns the IDs carrying an override, sorted for deterministic
// iteration.
func (o *Overrides) PlayerIDs() []string {
	ids := make([]string, 0, len(o.byPlayer))
	for id := range o.byPlayer {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func (o *Overrides) reset() {
	o.byPlayer = make(map[string]string)
}
