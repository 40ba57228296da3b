package host

import (
	"context"
	"errors"
	"os/exec"
	"sync"
	"time"

	"github.com/NRJ900/Quest-Passer/internal/models"
)

// Status is the lifecycle state of a managed runner process.
type Status string

// Process statuses. Exited and Failed are terminal.
const (
	StatusRunning Status = "running"
	StatusExited  Status = "exited"
	StatusFailed  Status = "failed"
)

// ManagedProcess tracks one spawned runner.
type ManagedProcess struct {
	ID             string
	AppID          string
	Name           string
	PID            int
	ExecutableName string
	ExecutablePath string
	WorkDir        string
	StartedAt      time.Time

	mu       sync.RWMutex
	status   Status
	exitCode int
	reason   string
	endedAt  time.Time
	done     chan struct{}
	doneOnce sync.Once
}

func newManagedProcess(id string) *ManagedProcess {
	return &ManagedProcess{
		ID:        id,
		StartedAt: time.Now(),
		status:    StatusRunning,
		done:      make(chan struct{}),
	}
}

// Status returns the current status.
func (p *ManagedProcess) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// ExitCode returns the exit code once the process has exited.
func (p *ManagedProcess) ExitCode() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.exitCode
}

// Reason describes why the process failed, if it did.
func (p *ManagedProcess) Reason() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.reason
}

// EndedAt returns when the process reached a terminal status.
func (p *ManagedProcess) EndedAt() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.endedAt
}

// Done is closed when the process reaches a terminal status.
func (p *ManagedProcess) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the process ends or ctx is done.
func (p *ManagedProcess) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// finish records the result of cmd.Wait. Only the first call has any
// effect; it reports whether this call made the transition.
func (p *ManagedProcess) finish(err error) bool {
	finished := false
	p.doneOnce.Do(func() {
		p.mu.Lock()
		switch {
		case err == nil:
			p.status = StatusExited
		default:
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
				p.status = StatusExited
				p.exitCode = exitErr.ExitCode()
			} else {
				p.status = StatusFailed
				p.exitCode = -1
				p.reason = err.Error()
			}
		}
		p.endedAt = time.Now()
		p.mu.Unlock()
		close(p.done)
		finished = true
	})
	return finished
}

// Record returns the saved form of a finished process.
func (p *ManagedProcess) Record() *models.SessionRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &models.SessionRecord{
		SessionID:      p.ID,
		AppID:          p.AppID,
		Name:           p.Name,
		ExecutableName: p.ExecutableName,
		PID:            p.PID,
		Status:         string(p.status),
		ExitCode:       p.exitCode,
		Reason:         p.reason,
		StartedAt:      p.StartedAt,
		EndedAt:        p.endedAt,
	}
}
