package team

import "fmt"

// Team owns a player directory and any number of saved game rosters.
type Team struct {
	ID     string
	Name   string
	Sport  string
	Season string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
