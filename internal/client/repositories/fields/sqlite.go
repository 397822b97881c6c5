package fields

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pocket/internal/client/models"
	"github.com/dmitrijs2005/pocket/internal/common"
	"github.com/dmitrijs2005/pocket/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Persist inserts f when f.ID is zero and updates it otherwise. Either way
// the row is left unsynchronized.
func (r *SQLiteRepository) Persist(ctx context.Context, f *models.Field) error {
	if f.ID == 0 {
		res, err := r.db.ExecContext(ctx, `
			INSERT INTO fields (user_id, server_id, group_id, group_field_id, title, value, is_hidden, synchronized, deleted)
			VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?)`,
			f.UserID, f.ServerID, f.GroupID, f.GroupFieldID, f.Title, f.Value, f.IsHidden, f.Deleted)
		if err != nil {
			return fmt.Errorf("failed to insert field: %w", err)
		}
		if f.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("failed to get field id: %w", err)
		}
		f.Synchronized = false
		return nil
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE fields SET user_id = ?, server_id = ?, group_id = ?, group_field_id = ?, title = ?, value = ?,
			is_hidden = ?, synchronized = 0, deleted = ?
		WHERE id = ?`,
		f.UserID, f.ServerID, f.GroupID, f.GroupFieldID, f.Title, f.Value, f.IsHidden, f.Deleted, f.ID)
	if err != nil {
		return fmt.Errorf("failed to update field %d: %w", f.ID, err)
	}
	if err := dbx.ExpectRows(res); err != nil {
		return fmt.Errorf("update field %d: %w", f.ID, err)
	}
	f.Synchronized = false
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Field, error) {
	f := &models.Field{}
	query, args := f.ReadQuery(models.IDFilter{ID: id})
	err := f.ScanRow(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("field %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return f, nil
}

// ListByGroup lists the live fields of a group.
func (r *SQLiteRepository) ListByGroup(ctx context.Context, userID, groupID int64) ([]models.Field, error) {
	query := `SELECT ` + models.FieldColumns + ` FROM fields
		WHERE user_id = ? AND group_id = ? AND deleted = 0 ORDER BY id`
	return r.list(ctx, query, userID, groupID)
}

func (r *SQLiteRepository) MarkDeleted(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE fields SET deleted = 1, synchronized = 0 WHERE id = ? AND user_id = ? AND deleted = 0`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete field %d: %w", id, err)
	}
	if err := dbx.ExpectRows(res); err != nil {
		return fmt.Errorf("delete field %d: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) MarkGroupDeleted(ctx context.Context, userID, groupID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE fields SET deleted = 1, synchronized = 0 WHERE user_id = ? AND group_id = ? AND deleted = 0`, userID, groupID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete fields of group %d: %w", groupID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

// ListPending returns unsynchronized fields, tombstones included.
func (r *SQLiteRepository) ListPending(ctx context.Context, userID int64) ([]models.Field, error) {
	query := `SELECT ` + models.FieldColumns + ` FROM fields WHERE user_id = ? AND synchronized = 0 ORDER BY id`
	return r.list(ctx, query, userID)
}

func (r *SQLiteRepository) MarkSynchronized(ctx context.Context, id, serverID int64) error {
	if serverID <= 0 {
		return fmt.Errorf("%w: %d", common.ErrInvalidServerID, serverID)
	}
	res, err := r.db.ExecContext(ctx, `UPDATE fields SET server_id = ?, synchronized = 1 WHERE id = ?`, serverID, id)
	if err != nil {
		return fmt.Errorf("failed to mark field %d synchronized: %w", id, err)
	}
	if err := dbx.ExpectRows(res); err != nil {
		return fmt.Errorf("mark field %d synchronized: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.Field, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select fields: %w", err)
	}
	defer rows.Close()

	var result []models.Field
	for rows.Next() {
		var f models.Field
		if err := f.ScanRow(rows); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
