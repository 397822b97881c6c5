package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pocket/internal/client/device"
	"github.com/dmitrijs2005/pocket/internal/client/location"
	"github.com/dmitrijs2005/pocket/internal/client/lock"
	"github.com/dmitrijs2005/pocket/internal/client/models"
	"github.com/dmitrijs2005/pocket/internal/client/repositories/properties"
	"github.com/dmitrijs2005/pocket/internal/client/store"
	"github.com/dmitrijs2005/pocket/internal/common"
	"github.com/dmitrijs2005/pocket/internal/dbx"
	"github.com/dmitrijs2005/pocket/internal/logging"
)

// Property keys under which RegisterDevice records the device.
const (
	PropDeviceUUID       = "device.uuid"
	PropDeviceUserUUID   = "device.user_uuid"
	PropDeviceHost       = "device.host"
	PropDeviceHostPubKey = "device.host_pub_key"
)

// Registrar announces a device to the remote service.
type Registrar interface {
	Register(ctx context.Context, d models.Device) error
}

// Session is the bootstrap state of one device on this machine.
type Session struct {
	state  State
	err    error
	device models.Device
	user   *models.User

	dir    string
	dbPath string

	lock  *lock.Lock
	store *store.Store

	log         logging.Logger
	busyTimeout time.Duration
}

// New validates the payload, resolves the storage directory under
// explicitPath (the home directory when empty) and locks the device. The
// returned session is in the DeviceParsed state.
//
// An empty payload fails with common.ErrConfigNotDefined and a payload that
// cannot be decoded fails before any directory is created.
func New(payload []byte, explicitPath string, opts ...Option) (*Session, error) {
	s := &Session{log: logging.NewNop()}
	for _, o := range opts {
		o(s)
	}

	ctx := context.Background()

	if len(payload) == 0 {
		return nil, s.fail(ctx, common.ErrConfigNotDefined)
	}
	s.state = ConfigResolved

	d, err := device.Parse(payload)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	dir, err := location.Resolve(explicitPath)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.device = d
	s.dir = dir
	s.dbPath = location.DatabasePath(dir, d.UUID)
	s.log = s.log.With("device", d.UUID)

	l, err := lock.Acquire(location.LockPath(dir, d.UUID))
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	s.lock = l
	s.state = DeviceParsed

	s.log.Debug(ctx, "lock acquired", "path", l.Path())
	return s, nil
}

// Open runs New and Init and closes the session if either fails.
func Open(ctx context.Context, payload []byte, explicitPath string, opts ...Option) (*Session, error) {
	s, err := New(payload, explicitPath, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := s.Init(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// Init opens the device database, creating its schema on first use, and
// loads the signed-in user. A nil user with a nil error means nobody has
// signed in on this device. On failure the session becomes Failed and its
// resources are released.
func (s *Session) Init(ctx context.Context) (*models.User, error) {
	if s == nil || s.state != DeviceParsed {
		return nil, common.ErrNotBootstrapped
	}

	st, err := store.Open(ctx, s.dbPath, store.Options{BusyTimeout: s.busyTimeout, Logger: s.log})
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	s.store = st
	s.state = StoreOpened

	var u models.User
	status, err := store.Read(ctx, st, &u, models.UserFilter{})
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	if status == store.ReadFound {
		s.user = &u
	}

	s.state = Ready
	s.log.Info(ctx, "session ready", "signed_in", s.user != nil)
	return s.user, nil
}

// RegisterDevice announces the device through registrar, when one is given,
// and records the device description in the local properties.
func (s *Session) RegisterDevice(ctx context.Context, registrar Registrar) error {
	if s == nil || s.state != Ready {
		return common.ErrNotBootstrapped
	}

	if registrar != nil {
		if err := registrar.Register(ctx, s.device); err != nil {
			return fmt.Errorf("register device: %w", err)
		}
	}

	var userID int64
	if s.user != nil {
		userID = s.user.ID
	}

	props := []struct{ key, value string }{
		{PropDeviceUUID, s.device.UUID},
		{PropDeviceUserUUID, s.device.UserUUID},
		{PropDeviceHost, s.device.Host},
		{PropDeviceHostPubKey, s.device.HostPubKey},
	}

	err := s.store.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := properties.NewSQLiteRepository(tx)
		for _, p := range props {
			if err := repo.Set(ctx, userID, p.key, p.value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save device properties: %w", err)
	}

	s.log.Info(ctx, "device registered", "host", s.device.Host)
	return nil
}

// Close releases the database connection and the device lock. It is safe to
// call more than once.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	err := s.release()
	if s.state != Failed {
		s.state = Closed
	}
	return err
}

func (s *Session) release() error {
	var errs []error
	if s.store != nil {
		errs = append(errs, s.store.Close())
		s.store = nil
	}
	if s.lock != nil {
		errs = append(errs, s.lock.Release())
		s.lock = nil
		s.log.Debug(context.Background(), "lock released")
	}
	return errors.Join(errs...)
}

func (s *Session) fail(ctx context.Context, err error) error {
	_ = s.release()
	s.err = err
	s.state = Failed
	s.log.Error(ctx, "session bootstrap failed", "error", err)
	return err
}

// State returns the current bootstrap state.
func (s *Session) State() State { return s.state }

// Err returns the reason the session failed.
func (s *Session) Err() error { return s.err }

// Device returns the registered device.
func (s *Session) Device() models.Device { return s.device }

// User returns the signed-in user or nil.
func (s *Session) User() *models.User { return s.user }

// Dir returns the storage directory.
func (s *Session) Dir() string { return s.dir }

// DatabasePath returns the device database file.
func (s *Session) DatabasePath() string { return s.dbPath }

// Store returns the open store of a Ready session and nil otherwise.
func (s *Session) Store() *store.Store {
	if s.state != Ready {
		return nil
	}
	return s.store
}
