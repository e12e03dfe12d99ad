package daemonctl

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"tunedadm/internal/logging"
)

// ErrDaemonNotRunning indicates no live daemon could be located.
var ErrDaemonNotRunning = errors.New("daemon not running")

const (
	// ReloadSignal asks the daemon to reread the active-profile record.
	ReloadSignal = unix.SIGHUP
	// StopSignal asks the daemon to stop tuning and exit.
	StopSignal = unix.SIGTERM
)

// Delivery classifies the outcome of a signal attempt.
type Delivery string

const (
	DeliveryDelivered Delivery = "delivered"
	DeliveryNoTarget  Delivery = "no_target"
	DeliveryFailed    Delivery = "failed"
)

// DeliveryError reports a signal that could not be delivered to a resolved pid.
type DeliveryError struct {
	PID    int
	Signal unix.Signal
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("send %s to daemon process %d: %v", unix.SignalName(e.Signal), e.PID, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Signaler delivers a signal to a process.
type Signaler interface {
	Signal(pid int, sig unix.Signal) error
}

type processSignaler struct{}

func (processSignaler) Signal(pid int, sig unix.Signal) error {
	return unix.Kill(pid, sig)
}

// Option customizes a Handle.
type Option func(*Handle)

// WithSignaler replaces the process signaler, typically with a test double.
func WithSignaler(s Signaler) Option {
	return func(h *Handle) {
		if s != nil {
			h.signaler = s
		}
	}
}

// WithLogger sets the logger used for delivery diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handle) {
		h.logger = logging.NewComponentLogger(logger, "daemonctl")
	}
}

// Handle resolves the daemon pid from a pid-file and signals it.
type Handle struct {
	pidPath  string
	signaler Signaler
	logger   *slog.Logger
}

// New returns a handle reading the daemon pid from pidPath.
func New(pidPath string, opts ...Option) *Handle {
	h := &Handle{
		pidPath:  pidPath,
		signaler: processSignaler{},
		logger:   logging.NewComponentLogger(nil, "daemonctl"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// PIDPath returns the pid-file location.
func (h *Handle) PIDPath() string {
	return h.pidPath
}

// Resolve returns the pid recorded in the pid-file. ok is false when the file
// is absent, unreadable, or does not hold a positive decimal integer. The pid
// is not checked for liveness.
func (h *Handle) Resolve() (pid int, ok bool) {
	data, err := os.ReadFile(h.pidPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.logger.Warn("daemon pid file unreadable", logging.String(logging.FieldPath, h.pidPath), logging.Error(err))
		}
		return 0, false
	}
	return ParsePID(string(data))
}

// ParsePID parses pid-file content: a decimal pid with optional surrounding
// whitespace.
func ParsePID(content string) (int, bool) {
	pidStr := strings.TrimSpace(content)
	if pidStr == "" {
		return 0, false
	}
	parsed, err := strconv.Atoi(pidStr)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

// SignalReload tells the daemon to reread the active-profile record. A
// missing or stale daemon yields ErrDaemonNotRunning.
func (h *Handle) SignalReload() (Delivery, error) {
	pid, ok := h.Resolve()
	if !ok {
		return DeliveryNoTarget, ErrDaemonNotRunning
	}
	err := h.send(pid, ReloadSignal)
	switch {
	case err == nil:
		return DeliveryDelivered, nil
	case errors.Is(err, unix.ESRCH):
		return DeliveryNoTarget, fmt.Errorf("%w (stale pid %d in %s)", ErrDaemonNotRunning, pid, h.pidPath)
	default:
		return DeliveryFailed, err
	}
}

// SignalStop tells the daemon to terminate. Stopping a daemon that is not
// running succeeds with DeliveryNoTarget.
func (h *Handle) SignalStop() (Delivery, error) {
	pid, ok := h.Resolve()
	if !ok {
		h.logger.Debug("no daemon to stop", logging.String(logging.FieldPath, h.pidPath))
		return DeliveryNoTarget, nil
	}
	err := h.send(pid, StopSignal)
	switch {
	case err == nil:
		return DeliveryDelivered, nil
	case errors.Is(err, unix.ESRCH):
		h.logger.Info("daemon pid is stale; nothing to stop", logging.Int(logging.FieldPID, pid))
		return DeliveryNoTarget, nil
	default:
		return DeliveryFailed, err
	}
}

func (h *Handle) send(pid int, sig unix.Signal) error {
	if pid == os.Getpid() {
		if _, isProcess := h.signaler.(processSignaler); isProcess {
			return &DeliveryError{PID: pid, Signal: sig, Err: errors.New("refusing to signal current process")}
		}
	}
	if err := h.signaler.Signal(pid, sig); err != nil {
		return &DeliveryError{PID: pid, Signal: sig, Err: err}
	}
	h.logger.Info("signal delivered", logging.Int(logging.FieldPID, pid), logging.String(logging.FieldSignal, unix.SignalName(sig)))
	return nil
}
