// Package runner executes one agent CLI invocation per turn: launch, feed the
// prompt on stdin, wait under a deadline, collect output, classify failure.
// Calls are synchronous and performed only from the orchestrator goroutine;
// cancellation reaches an in-flight call through the Slot, never through
// cooperative signaling, because the agent CLIs do not poll for it.
package runner

import (
	"bytes"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/Iron-Ham/roundtable/internal/agent"
	"github.com/Iron-Ham/roundtable/internal/errors"
	"github.com/Iron-Ham/roundtable/internal/logging"
)

// DefaultTimeout is the per-turn deadline when none is configured.
const DefaultTimeout = 5 * time.Minute

// Runner invokes agent CLIs. Safe to reuse across turns; it holds no
// per-invocation state.
type Runner struct {
	timeout time.Duration
	dir     string // working directory for agent processes
	logger  *logging.Logger
}

// New creates a Runner. A non-positive timeout falls back to DefaultTimeout;
// an empty dir runs agents in the current working directory.
func New(timeout time.Duration, dir string, logger *logging.Logger) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Runner{timeout: timeout, dir: dir, logger: logger}
}

// Invoke runs one turn for the given agent: the full prompt is written to the
// process's stdin and the call blocks until output is collected, the deadline
// expires, or the slot kills the process.
//
// The launched process is registered into slot before waiting and cleared
// when the call finishes on every path, so a killed process never leaves the
// slot populated.
//
// Classification:
//   - stripped stdout non-empty: success, trimmed stdout returned
//   - deadline expired: ErrTurnTimeout
//   - killed via slot: ErrCanceled
//   - stdout empty, stderr non-empty: TurnError carrying up to 600 chars of stderr
//   - both empty: ErrEmptyOutput
func (r *Runner) Invoke(a agent.Agent, promptText string, slot *Slot) (string, error) {
	name := a.DisplayName()
	log := r.logger.WithAgent(name)

	cmd := exec.Command(a.Command(), a.Args()...)
	cmd.Dir = r.dir
	cmd.Stdin = strings.NewReader(promptText)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	configureProcess(cmd)

	log.Debug("launching agent process", "command", a.Command(), "prompt_bytes", len(promptText))
	if err := cmd.Start(); err != nil {
		return "", errors.NewTurnError(name, errors.Wrap(err, "failed to launch"))
	}

	slot.register(cmd)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	var waitErr error
	select {
	case waitErr = <-done:
	case <-timer.C:
		terminateProcess(cmd)
		<-done // drain after kill so the process is fully reaped
		_ = slot.clear(cmd)
		log.Warn("agent turn timed out", "timeout", r.timeout)
		return "", errors.NewTurnError(name, errors.ErrTurnTimeout)
	}

	if killed := slot.clear(cmd); killed {
		log.Info("agent turn canceled")
		return "", errors.NewTurnError(name, errors.ErrCanceled)
	}

	out := strings.TrimSpace(ansi.Strip(stdout.String()))
	if out != "" {
		log.Debug("agent turn succeeded", "output_bytes", len(out))
		return out, nil
	}

	errText := strings.TrimSpace(ansi.Strip(stderr.String()))
	if errText != "" {
		log.Warn("agent wrote only to stderr", "wait_err", waitErr)
		return "", errors.NewTurnError(name, nil).WithStderr(errText)
	}

	log.Warn("agent returned empty output", "wait_err", waitErr)
	return "", errors.NewTurnError(name, errors.ErrEmptyOutput)
}

// Timeout returns the per-turn deadline this runner enforces.
func (r *Runner) Timeout() time.Duration {
	return r.timeout
}
