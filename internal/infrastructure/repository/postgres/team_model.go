package postgres

import "time"

type teamTableModel struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Sport     string     `db:"sport"`
	Season    string     `db:"season"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type teamInsertModel struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Sport  string `db:"sport"`
	Season string `db:"season"`
}
