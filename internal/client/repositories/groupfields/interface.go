// Package groupfields persists the field templates attached to groups.
package groupfields

import (
	"context"

	"github.com/dmitrijs2005/pocket/internal/client/models"
)

// Repository describes group field persistence. The sync bookkeeping rules
// are the same as for groups.
type Repository interface {
	Persist(ctx context.Context, f *models.GroupField) error
	GetByID(ctx context.Context, id int64) (*models.GroupField, error)
	ListByGroup(ctx context.Context, userID, groupID int64) ([]models.GroupField, error)
	MarkDeleted(ctx context.Context, userID, id int64) error
	ListPending(ctx context.Context, userID int64) ([]models.GroupField, error)
	MarkSynchronized(ctx context.Context, id, serverID int64) error

	// DeleteTemporary tombstones the temporary templates of a group.
	DeleteTemporary(ctx context.Context, userID, groupID int64) (int64, error)
}
