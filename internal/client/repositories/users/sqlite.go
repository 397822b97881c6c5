package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pocket/internal/client/models"
	"github.com/dmitrijs2005/pocket/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context) (*models.User, error) {
	u := &models.User{}
	query, args := u.ReadQuery(models.UserFilter{})
	err := u.ScanRow(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, u *models.User) error {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM "user" ORDER BY id LIMIT 1`).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, err := r.db.ExecContext(ctx, `INSERT INTO "user" (user_uuid, status) VALUES (?, ?)`, u.UUID, int64(u.Status))
		if err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}
		if u.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("failed to get user id: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to select user: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `UPDATE "user" SET user_uuid = ?, status = ? WHERE id = ?`, u.UUID, int64(u.Status), id); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	u.ID = id
	return nil
}
