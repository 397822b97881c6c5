package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/pocket/internal/client/migrations"
	"github.com/dmitrijs2005/pocket/internal/common"
	"github.com/dmitrijs2005/pocket/internal/dbx"
	"github.com/dmitrijs2005/pocket/internal/logging"
)

const (
	driverName = "sqlite"

	// DefaultBusyTimeout is used when Options.BusyTimeout is zero.
	DefaultBusyTimeout = 5 * time.Second

	versionTable = "goose_db_version"
	probeQuery   = `SELECT 1 FROM "user" LIMIT 1`

	// legacyVersion is the schema that existed before version tracking.
	legacyVersion = 1
)

// Options configures Open.
type Options struct {
	BusyTimeout time.Duration
	Logger      logging.Logger
}

// Store is an open vault database.
type Store struct {
	db   *sql.DB
	path string
	log  logging.Logger
}

// goose keeps its configuration in package globals.
var gooseMu sync.Mutex

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func setupGoose(log logging.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetTableName(versionTable)
	goose.SetLogger(gooseLogger{log: log})
	return goose.SetDialect("sqlite3")
}

// uriEscaper encodes the characters SQLite treats as URI syntax in a
// filename.
var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

func dsn(path string, busyTimeout time.Duration) string {
	if busyTimeout <= 0 {
		busyTimeout = DefaultBusyTimeout
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", uriEscaper.Replace(path), busyTimeout.Milliseconds())
}

// Open opens or creates the database at path and makes sure its schema is
// current. Errors wrap common.ErrStoreOpenFailed or
// common.ErrSchemaCreateFailed. The connection is closed on any failure.
func Open(ctx context.Context, path string, opts Options) (*Store, error) {
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}
	log = log.With("path", path)

	db, err := sql.Open(driverName, dsn(path, opts.BusyTimeout))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStoreOpenFailed, err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path, log: log}
	if err := s.prepare(ctx); err != nil {
		_ = db.Close()
		log.Error(ctx, "store open failed", "error", err)
		return nil, err
	}

	log.Debug(ctx, "store opened")
	return s, nil
}

func (s *Store) prepare(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStoreOpenFailed, err)
	}

	exists, err := s.probe(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStoreOpenFailed, err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := setupGoose(s.log); err != nil {
		return fmt.Errorf("%w: %w", common.ErrSchemaCreateFailed, err)
	}

	if exists {
		if err := s.stampLegacy(ctx); err != nil {
			return fmt.Errorf("%w: %w", common.ErrSchemaCreateFailed, err)
		}
	}

	if err := gooseUpContext(ctx, s.db, "."); err != nil {
		return fmt.Errorf("%w: %w", common.ErrSchemaCreateFailed, err)
	}

	if !exists {
		s.log.Info(ctx, "schema created")
	}
	return nil
}

// probe reports whether the user relation exists.
func (s *Store) probe(ctx context.Context) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, probeQuery).Scan(&one)
	switch {
	case err == nil, errors.Is(err, sql.ErrNoRows):
		return true, nil
	case strings.Contains(err.Error(), "no such table"):
		return false, nil
	default:
		return false, err
	}
}

// stampLegacy records version 1 for a schema created before versions were
// tracked, so that its creation script is not replayed.
func (s *Store) stampLegacy(ctx context.Context) error {
	v, err := goose.EnsureDBVersionContext(ctx, s.db)
	if err != nil {
		return err
	}
	if v > 0 {
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO `+versionTable+` (version_id, is_applied) VALUES (?, ?)`, int64(legacyVersion), true)
	if err != nil {
		return fmt.Errorf("stamp legacy schema: %w", err)
	}
	s.log.Info(ctx, "legacy schema stamped", "version", legacyVersion)
	return nil
}

// Version reports the schema version recorded in the database.
func (s *Store) Version(ctx context.Context) (int64, error) {
	if s == nil || s.db == nil {
		return 0, fmt.Errorf("%w: %w", common.ErrQueryFailed, dbx.ErrNoConnection)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := setupGoose(s.log); err != nil {
		return 0, fmt.Errorf("%w: %w", common.ErrQueryFailed, err)
	}
	v, err := goose.GetDBVersionContext(ctx, s.db)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", common.ErrQueryFailed, err)
	}
	return v, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// DB returns the handle used by the repositories, or nil once closed.
func (s *Store) DB() dbx.DBTX {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db
}

// WithTx runs fn inside a transaction on the store connection.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if s == nil || s.db == nil {
		return dbx.ErrNoConnection
	}
	return dbx.WithTx(ctx, s.db, nil, fn)
}

// Close releases the connection. It is safe to call more than once and on
// a nil Store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.log.Debug(context.Background(), "store closed")
	return err
}
