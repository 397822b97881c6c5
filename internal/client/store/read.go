package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pocket/internal/client/models"
	"github.com/dmitrijs2005/pocket/internal/common"
	"github.com/dmitrijs2005/pocket/internal/dbx"
)

// ReadStatus is the outcome of a successful Read.
type ReadStatus int

const (
	// ReadFound means a row was mapped into the destination.
	ReadFound ReadStatus = iota
	// ReadEmpty means the query matched no rows.
	ReadEmpty
)

func (s ReadStatus) String() string {
	if s == ReadFound {
		return "found"
	}
	return "empty"
}

// Readable is implemented by entities that can be loaded from the store.
type Readable[F any] interface {
	ReadQuery(filter F) (query string, args []any)
	ScanRow(row models.RowScanner) error
}

// Read runs dst's query for filter and maps the first row into dst.
// Failures, including a nil or closed store, wrap common.ErrQueryFailed.
func Read[F any](ctx context.Context, s *Store, dst Readable[F], filter F) (ReadStatus, error) {
	if s == nil || s.db == nil {
		return ReadEmpty, fmt.Errorf("%w: %w", common.ErrQueryFailed, dbx.ErrNoConnection)
	}

	query, args := dst.ReadQuery(filter)
	err := dst.ScanRow(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return ReadEmpty, nil
	}
	if err != nil {
		return ReadEmpty, fmt.Errorf("%w: %w", common.ErrQueryFailed, err)
	}
	return ReadFound, nil
}
