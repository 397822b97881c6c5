package groups

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pocket/internal/client/models"
	"github.com/dmitrijs2005/pocket/internal/common"
	"github.com/dmitrijs2005/pocket/internal/dbx"
)

// DefaultIcon is stored for groups without an icon.
const DefaultIcon = "UNUSED"

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Persist(ctx context.Context, g *models.Group) error {
	if g.Icon == "" {
		g.Icon = DefaultIcon
	}

	if g.ID == 0 {
		res, err := r.db.ExecContext(ctx, `
			INSERT INTO "groups" (user_id, server_id, group_id, server_group_id, title, icon, note, synchronized, deleted, shared)
			VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`,
			g.UserID, g.ServerID, g.GroupID, g.ServerGroupID, g.Title, g.Icon, g.Note, g.Deleted, g.Shared)
		if err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}
		if g.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("failed to get group id: %w", err)
		}
		g.Synchronized = false
		return nil
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE "groups" SET user_id = ?, server_id = ?, group_id = ?, server_group_id = ?, title = ?,
			icon = ?, note = ?, synchronized = 0, deleted = ?, shared = ?
		WHERE id = ?`,
		g.UserID, g.ServerID, g.GroupID, g.ServerGroupID, g.Title, g.Icon, g.Note, g.Deleted, g.Shared, g.ID)
	if err != nil {
		return fmt.Errorf("failed to update group %d: %w", g.ID, err)
	}
	if err := dbx.ExpectRows(res); err != nil {
		return fmt.Errorf("update group %d: %w", g.ID, err)
	}
	g.Synchronized = false
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	g := &models.Group{}
	query, args := g.ReadQuery(models.IDFilter{ID: id})
	err := g.ScanRow(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return g, nil
}

func (r *SQLiteRepository) ListByGroup(ctx context.Context, userID, groupID int64) ([]models.Group, error) {
	query := `SELECT ` + models.GroupColumns + ` FROM "groups"
		WHERE user_id = ? AND COALESCE(group_id, 0) = ? AND deleted = 0 ORDER BY title, id`
	return r.list(ctx, query, userID, groupID)
}

func (r *SQLiteRepository) MarkDeleted(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE "groups" SET deleted = 1, synchronized = 0 WHERE id = ? AND user_id = ? AND deleted = 0`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete group %d: %w", id, err)
	}
	if err := dbx.ExpectRows(res); err != nil {
		return fmt.Errorf("delete group %d: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) ListPending(ctx context.Context, userID int64) ([]models.Group, error) {
	query := `SELECT ` + models.GroupColumns + ` FROM "groups" WHERE user_id = ? AND synchronized = 0 ORDER BY id`
	return r.list(ctx, query, userID)
}

func (r *SQLiteRepository) MarkSynchronized(ctx context.Context, id, serverID int64) error {
	if serverID <= 0 {
		return fmt.Errorf("%w: %d", common.ErrInvalidServerID, serverID)
	}
	res, err := r.db.ExecContext(ctx, `UPDATE "groups" SET server_id = ?, synchronized = 1 WHERE id = ?`, serverID, id)
	if err != nil {
		return fmt.Errorf("failed to mark group %d synchronized: %w", id, err)
	}
	if err := dbx.ExpectRows(res); err != nil {
		return fmt.Errorf("mark group %d synchronized: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.Group, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select groups: %w", err)
	}
	defer rows.Close()

	var result []models.Group
	for rows.Next() {
		var g models.Group
		if err := g.ScanRow(rows); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
