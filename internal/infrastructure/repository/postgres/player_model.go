package postgres

import "time"

type playerTableModel struct {
	ID           string     `db:"id"`
	TeamID       string     `db:"team_id"`
	Name         string     `db:"name"`
	Position     string     `db:"position"`
	JerseyNumber string     `db:"jersey_number"`
	Nickname     string     `db:"nickname"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type playerInsertModel struct {
	ID           string `db:"id"`
	TeamID       string `db:"team_id"`
	Name         string `db:"name"`
	Position     string `db:"position"`
	JerseyNumber string `db:"jersey_number"`
	Nickname     string `db:"nickname"`
}
