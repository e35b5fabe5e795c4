package player

import "fmt"

// Player is one member of a team's player directory. The directory is the
// authoritative source for who can appear on a game roster; the roster core
// consumes players but never mutates them.
type Player struct {
	ID           string
	TeamID       string
	Name         string
	Position     string // default position, empty when unset
	JerseyNumber string
	Nickname     string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
