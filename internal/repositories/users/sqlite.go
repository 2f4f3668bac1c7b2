package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/dbx"
	"github.com/dmitrijs2005/ecotracker/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	email := models.NormalizeEmail(user.Email)

	exists, err := r.Exists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrorAlreadyExists
	}

	query := `INSERT INTO users (email, name, password_hash, salt, eco_points, created_at)
			values (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		email, user.Name, user.PasswordHash, user.Salt, user.EcoPoints, user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	saved := *user
	saved.Email = email
	return &saved, nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT email, name, password_hash, salt, eco_points, created_at
			FROM users WHERE email = ?`

	var u models.User
	err := r.db.QueryRowContext(ctx, query, models.NormalizeEmail(email)).
		Scan(&u.Email, &u.Name, &u.PasswordHash, &u.Salt, &u.EcoPoints, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return &u, nil
}

func (r *SQLiteRepository) Exists(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM users WHERE email = ?`, models.NormalizeEmail(email)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, user *models.User) error {
	query := `UPDATE users SET name = ?, password_hash = ?, salt = ?, eco_points = ?, created_at = ?
			WHERE email = ?`
	res, err := r.db.ExecContext(ctx, query,
		user.Name, user.PasswordHash, user.Salt, user.EcoPoints, user.CreatedAt,
		models.NormalizeEmail(user.Email))
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
