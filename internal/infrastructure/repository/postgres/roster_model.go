package postgres

import (
	"time"

	"github.com/dugout-hq/dugout/internal/domain/roster"
)

type rosterTableModel struct {
	ID           string     `db:"id"`
	TeamID       string     `db:"team_id"`
	Title        string     `db:"title"`
	GameDate     *time.Time `db:"game_date"`
	StarterSlots int        `db:"starter_slots"`
	Starters     []byte     `db:"starters"`
	Substitutes  []byte     `db:"substitutes"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type rosterInsertModel struct {
	ID           string     `db:"id"`
	TeamID       string     `db:"team_id"`
	Title        string     `db:"title"`
	GameDate     *time.Time `db:"game_date"`
	StarterSlots int        `db:"starter_slots"`
	Starters     []byte     `db:"starters"`
	Substitutes  []byte     `db:"substitutes"`
}

func rosterFromRow(row rosterTableModel) (roster.SavedRoster, error) {
	starters, err := roster.DecodeEntries(row.Starters)
	if err != nil {
		return roster.SavedRoster{}, err
	}
	substitutes, err := roster.DecodeEntries(row.Substitutes)
	if err != nil {
		return roster.SavedRoster{}, err
	}

	return roster.SavedRoster{
		ID:           row.ID,
		TeamID:       row.TeamID,
		Title:        row.Title,
		GameDate:     row.GameDate,
		StarterSlots: row.StarterSlots,
		Starters:     starters,
		Substitutes:  substitutes,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

func rosterToInsertModel(item roster.SavedRoster) (rosterInsertModel, error) {
	starters, err := roster.EncodeEntries(item.Starters)
	if err != nil {
		return rosterInsertModel{}, err
	}
	substitutes, err := roster.EncodeEntries(item.Substitutes)
	if err != nil {
		return rosterInsertModel{}, err
	}

	return rosterInsertModel{
		ID:           item.ID,
		TeamID:       item.TeamID,
		Title:        item.Title,
		GameDate:     item.GameDate,
		StarterSlots: item.StarterSlots,
		Starters:     starters,
		Substitutes:  substitutes,
	}, nil
}
