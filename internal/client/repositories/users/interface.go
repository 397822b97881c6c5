// Package users persists the signed-in user of the local vault.
package users

import (
	"context"

	"github.com/dmitrijs2005/pocket/internal/client/models"
)

// Repository reads and writes the single user row.
type Repository interface {
	// Get returns the user, or (nil, nil) when nobody has signed in.
	Get(ctx context.Context) (*models.User, error)

	// Save inserts the user or overwrites the existing row and sets u.ID.
	Save(ctx context.Context, u *models.User) error
}
