package testsupport

import (
	"strconv"
	"sync"
	"testing"

	"golang.org/x/sys/unix"

	"tunedadm/internal/config"
)

// WritePIDFile writes raw content to the configured daemon pid-file.
func WritePIDFile(t testing.TB, cfg *config.Config, content string) {
	t.Helper()
	WriteFile(t, cfg.Paths.PIDFile, content)
}

// WritePID writes pid as the daemon pid-file content.
func WritePID(t testing.TB, cfg *config.Config, pid int) {
	t.Helper()
	WritePIDFile(t, cfg, strconv.Itoa(pid)+"\n")
}

// SentSignal records one delivery attempt.
type SentSignal struct {
	PID    int
	Signal unix.Signal
}

// RecordingSignaler captures signal deliveries instead of sending them.
// Err, when set, is returned from every delivery after it is recorded.
type RecordingSignaler struct {
	mu   sync.Mutex
	sent []SentSignal
	Err  error
}

func (r *RecordingSignaler) Signal(pid int, sig unix.Signal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, SentSignal{PID: pid, Signal: sig})
	return r.Err
}

// Sent returns a copy of every recorded delivery.
func (r *RecordingSignaler) Sent() []SentSignal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]SentSignal(nil), r.sent...)
}
