package activities

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/dbx"
	"github.com/dmitrijs2005/ecotracker/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
// Insertion order is tracked by the autoincrement seq column; newest-first
// reads order by seq so same-timestamp entries keep a stable order.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, email string, a *models.Activity) error {
	email = models.NormalizeEmail(email)

	query := `INSERT INTO activities (id, email, action, label, icon, points, created_at)
			values (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, email, string(a.Action), a.Label, a.Icon, a.Points, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}

	return r.trim(ctx, email)
}

// trim evicts everything older than the HistoryLimit newest entries.
func (r *SQLiteRepository) trim(ctx context.Context, email string) error {
	query := `DELETE FROM activities WHERE email = ? AND seq NOT IN (
			SELECT seq FROM activities WHERE email = ? ORDER BY seq DESC LIMIT ?)`
	_, err := r.db.ExecContext(ctx, query, email, email, common.HistoryLimit)
	if err != nil {
		return fmt.Errorf("failed to trim activities: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context, email string) ([]models.Activity, error) {
	query := `SELECT id, action, label, icon, points, created_at
			FROM activities WHERE email = ? ORDER BY seq DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, models.NormalizeEmail(email), common.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to select activities: %w", err)
	}
	defer rows.Close()

	var result []models.Activity
	for rows.Next() {
		var item models.Activity
		var action string
		if err := rows.Scan(&item.ID, &action, &item.Label, &item.Icon, &item.Points, &item.CreatedAt); err != nil {
			return nil, err
		}
		item.Action = models.ActionType(action)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
