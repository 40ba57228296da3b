// Package host provisions runner folders, spawns runner processes and
// supervises them until they exit.
package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/NRJ900/Quest-Passer/internal/runner"
)

var (
	// ErrRunnerMissing means the bundled runner binary does not exist.
	ErrRunnerMissing = errors.New("bundled runner not found")
	// ErrExecutableMissing means a title has not been provisioned.
	ErrExecutableMissing = errors.New("game executable not found")
)

// Layout locates the bundled runner and the provisioned game folders.
type Layout struct {
	GamesDir   string // <host_exe_dir>/games
	RunnerPath string // bundled runner binary
}

// TargetDir returns <games>/<appID>/<relPath>.
func (l Layout) TargetDir(appID, relPath string) string {
	return filepath.Join(l.GamesDir, appID, filepath.FromSlash(relPath))
}

// ExecutablePath returns the provisioned runner path for a title.
func (l Layout) ExecutablePath(appID, relPath, exeName string) string {
	return filepath.Join(l.TargetDir(appID, relPath), filepath.FromSlash(exeName))
}

// Abs resolves relative paths against the current working directory.
// Spawned runners get their own working directory, so relative paths would
// otherwise resolve differently for provisioning and launching.
func (l Layout) Abs() (Layout, error) {
	var err error
	if l.GamesDir != "" {
		if l.GamesDir, err = filepath.Abs(l.GamesDir); err != nil {
			return Layout{}, fmt.Errorf("failed to resolve games directory: %w", err)
		}
	}
	if l.RunnerPath != "" {
		if l.RunnerPath, err = filepath.Abs(l.RunnerPath); err != nil {
			return Layout{}, fmt.Errorf("failed to resolve runner path: %w", err)
		}
	}
	return l, nil
}

// Options configures a Supervisor.
type Options struct {
	Layout   Layout
	Notifier Notifier
	Logger   *log.Logger
}

// SpawnRequest describes a runner launch.
type SpawnRequest struct {
	AppID          string
	RelPath        string
	ExecutableName string
	Name           string // window title
	IconURL        string // optional
	StartHidden    bool
}

// Args returns the runner invocation arguments for the request.
func (r SpawnRequest) Args() []string {
	return runner.Config{
		Title:       r.Name,
		StartHidden: r.StartHidden,
		IconURL:     r.IconURL,
	}.Args()
}

// Supervisor owns the runner processes started by this host.
type Supervisor struct {
	layout   Layout
	notifier Notifier
	logger   *log.Logger

	mu        sync.RWMutex
	processes map[string]*ManagedProcess
}

// NewSupervisor creates a supervisor. Relative layout paths are resolved
// against the current working directory.
func NewSupervisor(opts Options) *Supervisor {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	layout := opts.Layout
	if abs, err := layout.Abs(); err == nil {
		layout = abs
	} else {
		logger.Printf("Using layout as given: %v", err)
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = LogNotifier{Logger: logger}
	}
	return &Supervisor{
		layout:    layout,
		notifier:  notifier,
		logger:    logger,
		processes: make(map[string]*ManagedProcess),
	}
}

// Layout returns the supervisor's filesystem layout.
func (s *Supervisor) Layout() Layout {
	return s.layout
}

// Provision copies the bundled runner to <target>/<exeName>, creating the
// target directory and the executable's own parent as needed.
func (s *Supervisor) Provision(appID, relPath, exeName string) (string, error) {
	if appID == "" || exeName == "" {
		return "", errors.New("app id and executable name are required")
	}
	if !fileExists(s.layout.RunnerPath) {
		return "", fmt.Errorf("%w at %s", ErrRunnerMissing, s.layout.RunnerPath)
	}

	target := s.layout.TargetDir(appID, relPath)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", target, err)
	}

	exePath := s.layout.ExecutablePath(appID, relPath, exeName)
	if err := os.MkdirAll(filepath.Dir(exePath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", filepath.Dir(exePath), err)
	}

	if err := copyFile(s.layout.RunnerPath, exePath); err != nil {
		return "", fmt.Errorf("failed to copy runner to %s: %w", exePath, err)
	}

	s.logger.Printf("Provisioned %s for app %s", exePath, appID)
	return fmt.Sprintf("Installed to %s", exePath), nil
}

// Spawn launches a provisioned runner and returns without waiting for it.
// A monitor goroutine owns the process until it exits, then emits exactly
// one EventGameExited.
func (s *Supervisor) Spawn(req SpawnRequest) (*ManagedProcess, string, error) {
	exePath := s.layout.ExecutablePath(req.AppID, req.RelPath, req.ExecutableName)
	if !fileExists(exePath) {
		return nil, "", fmt.Errorf("%w: %s", ErrExecutableMissing, exePath)
	}

	workDir := s.layout.TargetDir(req.AppID, req.RelPath)
	cmd := exec.Command(exePath, req.Args()...)
	cmd.Dir = workDir

	if err := cmd.Start(); err != nil {
		return nil, "", fmt.Errorf("failed to start %s: %w", exePath, err)
	}

	p := newManagedProcess(uuid.New().String())
	p.AppID = req.AppID
	p.Name = req.Name
	p.PID = cmd.Process.Pid
	p.ExecutableName = req.ExecutableName
	p.ExecutablePath = exePath
	p.WorkDir = workDir

	s.mu.Lock()
	s.processes[p.ID] = p
	s.mu.Unlock()

	s.logger.Printf("Started %s (pid %d, id %s)", exePath, p.PID, p.ID)

	go s.monitor(p, cmd)

	return p, fmt.Sprintf("Started %s (pid %d)", req.Name, p.PID), nil
}

// monitor is the only caller of cmd.Wait for p.
func (s *Supervisor) monitor(p *ManagedProcess, cmd *exec.Cmd) {
	err := cmd.Wait()
	if !p.finish(err) {
		return
	}

	switch p.Status() {
	case StatusFailed:
		s.logger.Printf("Runner %s (pid %d) failed: %s", p.ID, p.PID, p.Reason())
	default:
		s.logger.Printf("Runner %s (pid %d) exited with code %d", p.ID, p.PID, p.ExitCode())
	}

	s.notifier.Notify(EventGameExited)
}

// Terminate forcibly kills every process whose image name is exeName. It
// matches by name, so runners of other titles sharing the name end too.
func (s *Supervisor) Terminate(ctx context.Context, exeName string) error {
	name := filepath.Base(filepath.FromSlash(exeName))
	if name == "" || name == "." {
		return errors.New("executable name is required")
	}

	if err := killByName(ctx, name); err != nil {
		return fmt.Errorf("failed to terminate %s: %w", name, err)
	}

	s.logger.Printf("Terminated %s", name)
	return nil
}

// Processes returns all processes spawned by this supervisor, oldest first.
func (s *Supervisor) Processes() []*ManagedProcess {
	s.mu.RLock()
	out := make([]*ManagedProcess, 0, len(s.processes))
	for _, p := range s.processes {
		out = append(out, p)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chmod(dst, 0o755)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
