package roster

import "github.com/dugout-hq/dugout/internal/domain/player"

// Side names one of the two ordered lists of a partition.
type Side string

const (
	SideStarters    Side = "starters"
	SideSubstitutes Side = "substitutes"
)

// Partition is the three-way classification of a team's players. Starters
// and substitutes are owned, ordered lists; available is always derived
// from the directory and never stored.
type Partition struct {
	starters    []player.Player
	substitutes []player.Player
}

func (pt *Partition) Starters() []player.Player {
	return append([]player.Player(nil), pt.starters...)
}

func (pt *Partition) Substitutes() []player.Player {
	return append([]player.Player(nil), pt.substitutes...)
}

func (pt *Partition) StarterCount() int {
	return len(pt.starters)
}

func (pt *Partition) SubstituteCount() int {
	return len(pt.substitutes)
}

// Assigned reports whether the player is on either list.
func (pt *Partition) Assigned(playerID string) bool {
	return indexOf(pt.starters, playerID) >= 0 || indexOf(pt.substitutes, playerID) >= 0
}

// Available derives the unassigned remainder of the directory, preserving
// directory order.
func (pt *Partition) Available(directory []player.Player) []player.Player {
	out := make([]player.Player, 0, len(directory))
	for _, p := range directory {
		if pt.Assigned(p.ID) {
			continue
		}
		out = append(out, p)
	}

	return out
}

func (pt *Partition) appendStarter(p player.Player) {
	pt.starters = append(pt.starters, p)
}

func (pt *Partition) appendSubstitute(p player.Player) {
	pt.substitutes = append(pt.substitutes, p)
}

func (pt *Partition) removeStarter(playerID string) (player.Player, bool) {
	p, ok := removeByID(&pt.starters, playerID)
	return p, ok
}

func (pt *Partition) removeSubstitute(playerID string) (player.Player, bool) {
	p, ok := removeByID(&pt.substitutes, playerID)
	return p, ok
}

func (pt *Partition) reorder(side Side, from, to int) error {
	list := &pt.starters
	if side == SideSubstitutes {
		list = &pt.substitutes
	}

	if from < 0 || from >= len(*list) || to < 0 || to >= len(*list) {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}

	moved := (*list)[from]
	if from < to {
		copy((*list)[from:to], (*list)[from+1:to+1])
	} else {
		copy((*list)[to+1:from+1], (*list)[to:from])
	}
	(*list)[to] = moved

	return nil
}

func (pt *Partition) clear() {
	pt.starters = nil
	pt.substitutes = nil
}

func indexOf(list []player.Player, playerID string) int {
	for i, p := range list {
		if p.ID == playerID {
			return i
		}
	}

	return -1
}

func removeByID(list *[]player.Player, playerID string) (player.Player, bool) {
	i := indexOf(*list, playerID)
	if i < 0 {
		return player.Player{}, false
	}

	removed := (*list)[i]
	*list = append((*list)[:i], (*list)[i+1:]...)

	return removed, true
}
