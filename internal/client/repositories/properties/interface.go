// Package properties stores free-form key/value pairs per user. The session
// keeps the registered device's description here.
package properties

import (
	"context"

	"github.com/dmitrijs2005/pocket/internal/client/models"
)

type Repository interface {
	// Get returns (nil, nil) when the key is absent.
	Get(ctx context.Context, userID int64, key string) (*models.Property, error)
	Set(ctx context.Context, userID int64, key, value string) error
	Delete(ctx context.Context, userID int64, key string) error
	List(ctx context.Context, userID int64) (map[string]string, error)
	Clear(ctx context.Context, userID int64) error
}
