package properties

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pocket/internal/client/models"
	"github.com/dmitrijs2005/pocket/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, userID int64, key string) (*models.Property, error) {
	p := &models.Property{}
	query, args := p.ReadQuery(models.PropertyFilter{UserID: userID, Key: key})
	err := p.ScanRow(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property[%s]: %w", key, err)
	}
	return p, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, userID int64, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO properties (user_id, key, value) VALUES (?, ?, ?)
		ON CONFLICT(user_id, key) DO UPDATE SET value = excluded.value
	`, userID, key, value)
	if err != nil {
		return fmt.Errorf("failed to set property[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, userID int64, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE user_id = ? AND key = ?`, userID, key)
	if err != nil {
		return fmt.Errorf("failed to delete property[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear properties: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, userID int64) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM properties WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate property rows: %w", err)
	}

	return result, nil
}
