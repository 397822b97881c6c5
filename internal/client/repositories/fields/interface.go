// Package fields persists credential values.
package fields

import (
	"context"

	"github.com/dmitrijs2005/pocket/internal/client/models"
)

// Repository describes field persistence. Local changes clear the
// synchronized flag and deletions leave tombstones.
type Repository interface {
	Persist(ctx context.Context, f *models.Field) error
	GetByID(ctx context.Context, id int64) (*models.Field, error)
	ListByGroup(ctx context.Context, userID, groupID int64) ([]models.Field, error)
	MarkDeleted(ctx context.Context, userID, id int64) error
	ListPending(ctx context.Context, userID int64) ([]models.Field, error)
	MarkSynchronized(ctx context.Context, id, serverID int64) error

	// MarkGroupDeleted tombstones every live field of a group and returns
	// how many rows changed.
	MarkGroupDeleted(ctx context.Context, userID, groupID int64) (int64, error)
}
