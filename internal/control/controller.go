package control

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"tunedadm/internal/activeprofile"
	"tunedadm/internal/catalog"
	"tunedadm/internal/daemonctl"
	"tunedadm/internal/logging"
)

// Catalog is the read-only view of available profiles.
type Catalog interface {
	Entries() []catalog.Entry
	Exists(name string) bool
}

// RecordStore persists the active-profile record.
type RecordStore interface {
	Path() string
	Read() ([]string, bool)
	Write(names []string) error
	Snapshot() (activeprofile.Snapshot, error)
	Restore(activeprofile.Snapshot) error
}

// Daemon locates and signals the tuning daemon.
type Daemon interface {
	PIDPath() string
	Resolve() (int, bool)
	SignalReload() (daemonctl.Delivery, error)
	SignalStop() (daemonctl.Delivery, error)
}

// Options wires a Controller.
type Options struct {
	Catalog Catalog
	Store   RecordStore
	Daemon  Daemon
	// LockPath is the advisory lock held by mutating operations. Empty disables it.
	LockPath string
	// EUID reports the effective user id; defaults to unix.Geteuid.
	EUID   func() int
	Logger *slog.Logger
}

// Controller implements the tuned-adm operations.
type Controller struct {
	catalog  Catalog
	store    RecordStore
	daemon   Daemon
	lockPath string
	euid     func() int
	logger   *slog.Logger
}

// New constructs a controller from explicit collaborators.
func New(opts Options) *Controller {
	euid := opts.EUID
	if euid == nil {
		euid = unix.Geteuid
	}
	return &Controller{
		catalog:  opts.Catalog,
		store:    opts.Store,
		daemon:   opts.Daemon,
		lockPath: opts.LockPath,
		euid:     euid,
		logger:   logging.NewComponentLogger(opts.Logger, "control"),
	}
}

// ListResult is the catalog together with the current record.
type ListResult struct {
	Profiles  []string
	Entries   []catalog.Entry
	Active    []string
	HasActive bool
}

// List returns every available profile and the active record. It never fails.
func (c *Controller) List() ListResult {
	entries := c.catalog.Entries()
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	active, ok := c.store.Read()
	return ListResult{Profiles: names, Entries: entries, Active: active, HasActive: ok}
}

// ShowActive returns the active record; ok is false when there is none.
func (c *Controller) ShowActive() ([]string, bool) {
	return c.store.Read()
}

// ActivateResult describes a completed activation.
type ActivateResult struct {
	Profiles []string
	PID      int
}

// Activate validates names, persists them as the active record, and tells
// the daemon to reload. Nothing is written unless every name exists and a
// daemon pid is known; the previous record is restored if the reload signal
// cannot be delivered.
func (c *Controller) Activate(names []string) (ActivateResult, error) {
	if len(names) == 0 {
		return ActivateResult{}, ErrNoProfiles
	}
	if err := c.requireRoot("switch profiles"); err != nil {
		return ActivateResult{}, err
	}

	unlock, err := c.lock()
	if err != nil {
		return ActivateResult{}, err
	}
	defer unlock()

	for _, name := range names {
		if !c.catalog.Exists(name) {
			c.logger.Debug("requested profile not in catalog", logging.String(logging.FieldProfile, name))
			return ActivateResult{}, &UnknownProfileError{Name: name}
		}
	}

	pid, ok := c.daemon.Resolve()
	if !ok {
		return ActivateResult{}, fmt.Errorf("cannot read %s: %w", c.daemon.PIDPath(), daemonctl.ErrDaemonNotRunning)
	}

	previous, err := c.store.Snapshot()
	if err != nil {
		return ActivateResult{}, fmt.Errorf("snapshot active profile record: %w", err)
	}
	if err := c.store.Write(names); err != nil {
		return ActivateResult{}, err
	}

	if _, err := c.daemon.SignalReload(); err != nil {
		if restoreErr := c.store.Restore(previous); restoreErr != nil {
			c.logger.Error("failed to restore previous active profile record",
				logging.String(logging.FieldPath, c.store.Path()),
				logging.Error(restoreErr),
			)
			return ActivateResult{}, fmt.Errorf("%w; restore previous record: %v", err, restoreErr)
		}
		return ActivateResult{}, err
	}

	c.logger.Info("profiles activated", logging.Strings(logging.FieldProfiles, names), logging.Int(logging.FieldPID, pid))
	return ActivateResult{Profiles: append([]string(nil), names...), PID: pid}, nil
}

// Deactivate tells the daemon to stop tuning. The active record is left in
// place. Succeeds when no daemon is running.
func (c *Controller) Deactivate() (daemonctl.Delivery, error) {
	if err := c.requireRoot("switch off tuning"); err != nil {
		return daemonctl.DeliveryNoTarget, err
	}

	unlock, err := c.lock()
	if err != nil {
		return daemonctl.DeliveryNoTarget, err
	}
	defer unlock()

	return c.daemon.SignalStop()
}

func (c *Controller) requireRoot(op string) error {
	if euid := c.euid(); euid != 0 {
		return &PrivilegeError{Op: op, EUID: euid}
	}
	return nil
}

func (c *Controller) lock() (func(), error) {
	if c.lockPath == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	fileLock := flock.New(c.lockPath)
	ok, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", c.lockPath, err)
	}
	if !ok {
		return nil, ErrBusy
	}
	return func() {
		if err := fileLock.Unlock(); err != nil {
			c.logger.Warn("failed to release admin lock", logging.String(logging.FieldPath, c.lockPath), logging.Error(err))
		}
	}, nil
}
