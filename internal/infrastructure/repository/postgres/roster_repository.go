package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dugout-hq/dugout/internal/domain/roster"
	qb "github.com/dugout-hq/dugout/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) GetByID(ctx context.Context, rosterID string) (roster.SavedRoster, bool, error) {
	query, args, err := rosterBaseSelectBuilder().
		Where(
			qb.Eq("id", rosterID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return roster.SavedRoster{}, false, fmt.Errorf("build get roster query: %w", err)
	}

	var row rosterTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.SavedRoster{}, false, nil
		}
		return roster.SavedRoster{}, false, fmt.Errorf("get roster: %w", err)
	}

	item, err := rosterFromRow(row)
	if err != nil {
		return roster.SavedRoster{}, false, fmt.Errorf("decode roster %s: %w", rosterID, err)
	}

	return item, true, nil
}

func (r *RosterRepository) ListByTeam(ctx context.Context, teamID string) ([]roster.SavedRoster, error) {
	query, args, err := rosterBaseSelectBuilder().
		Where(
			qb.Eq("team_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("game_date NULLS LAST", "created_at").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list rosters by team query: %w", err)
	}

	var rows []rosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list rosters by team: %w", err)
	}

	out := make([]roster.SavedRoster, 0, len(rows))
	for _, row := range rows {
		item, err := rosterFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("decode roster %s: %w", row.ID, err)
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *RosterRepository) Create(ctx context.Context, item roster.SavedRoster) error {
	insertModel, err := rosterToInsertModel(item)
	if err != nil {
		return fmt.Errorf("encode roster %s: %w", item.ID, err)
	}

	query, args, err := qb.InsertModel("game_rosters", insertModel, "")
	if err != nil {
		return fmt.Errorf("build roster insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert roster: %w", err)
	}

	return nil
}

// Save replaces the stored assignment state wholesale. The last writer
// wins; there is no concurrency token on the record.
func (r *RosterRepository) Save(ctx context.Context, item roster.SavedRoster) error {
	insertModel, err := rosterToInsertModel(item)
	if err != nil {
		return fmt.Errorf("encode roster %s: %w", item.ID, err)
	}

	query, args, err := qb.Update("game_rosters").
		Set("title", insertModel.Title).
		Set("game_date", insertModel.GameDate).
		Set("starter_slots", insertModel.StarterSlots).
		Set("starters", insertModel.Starters).
		Set("substitutes", insertModel.Substitutes).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build roster save query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("save roster rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("save roster: no row updated for id=%s", item.ID)
	}

	return nil
}

func (r *RosterRepository) Delete(ctx context.Context, rosterID string) error {
	query, args, err := qb.Update("game_rosters").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", rosterID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build roster delete query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete roster: %w", err)
	}

	return nil
}

func rosterBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("game_rosters")
}
