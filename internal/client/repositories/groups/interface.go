// Package groups persists vault groups with their sync bookkeeping.
//
// Every local change clears the synchronized flag; only MarkSynchronized,
// called once the server has accepted a change, sets it again. Deleting a
// group leaves a tombstone row so the deletion can be pushed.
package groups

import (
	"context"

	"github.com/dmitrijs2005/pocket/internal/client/models"
)

// Repository describes group persistence.
type Repository interface {
	// Persist inserts g when g.ID is zero and updates it otherwise.
	Persist(ctx context.Context, g *models.Group) error

	// GetByID returns a group, tombstones included, or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Group, error)

	// ListByGroup returns the live children of a parent group; 0 lists the roots.
	ListByGroup(ctx context.Context, userID, groupID int64) ([]models.Group, error)

	// MarkDeleted turns a live group into a tombstone.
	MarkDeleted(ctx context.Context, userID, id int64) error

	// ListPending returns groups with local changes not yet synchronized.
	ListPending(ctx context.Context, userID int64) ([]models.Group, error)

	// MarkSynchronized records the server id and clears the pending state.
	MarkSynchronized(ctx context.Context, id, serverID int64) error
}
