package pkgmgr

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"
)

// Capture bounds. captureLimit bounds what is read from the subprocess at
// all (some ops parse stdout); tailLimit bounds what a Result carries.
const (
	captureLimit = 512 * 1024
	tailLimit    = 2048
)

// waitDelay bounds how long Wait keeps reading output pipes after the
// deadline kill or the child's exit. Package managers fork helper
// processes (apt transport methods, sh -c children) that inherit the
// pipes and would otherwise keep Run blocked after the child is gone.
const waitDelay = 5 * time.Second

// boundedBuffer keeps at most limit bytes of a stream, discarding the
// oldest bytes once full.
type boundedBuffer struct {
	limit int
	buf   []byte
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if len(p) >= b.limit {
		b.buf = append(b.buf[:0], p[len(p)-b.limit:]...)
		return n, nil
	}
	if overflow := len(b.buf) + len(p) - b.limit; overflow > 0 {
		b.buf = append(b.buf[:0], b.buf[overflow:]...)
	}
	b.buf = append(b.buf, p...)
	return n, nil
}

func (b *boundedBuffer) String() string { return string(b.buf) }

// tail returns the final n bytes of s.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// execResult is the raw outcome of one subprocess invocation, before
// per-adapter classification.
type execResult struct {
	exitCode int
	stdout   string
	stderr   string
	timedOut bool
	startErr error
}

// commandRunner invokes one package-manager process synchronously. The
// production implementation is execRunner; tests substitute fakes.
type commandRunner interface {
	run(ctx context.Context, timeout time.Duration, env []string, name string, args ...string) execResult
}

// execRunner runs commands through os/exec with a hard deadline. On
// timeout the process is killed and the invocation reports timedOut; the
// run never returns with the subprocess still alive.
type execRunner struct{}

func (execRunner) run(ctx context.Context, timeout time.Duration, env []string, name string, args ...string) execResult {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, name, args...)
	cmd.WaitDelay = waitDelay
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	stdout := &boundedBuffer{limit: captureLimit}
	stderr := &boundedBuffer{limit: captureLimit}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	res := execResult{
		stdout: stdout.String(),
		stderr: stderr.String(),
	}
	if runCtx.Err() == context.DeadlineExceeded {
		res.timedOut = true
	}
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.Is(err, exec.ErrWaitDelay):
			// The child exited but an inherited pipe stayed open past the
			// grace period; report the child's own outcome.
			res.exitCode = cmd.ProcessState.ExitCode()
		case errors.As(err, &exitErr):
			res.exitCode = exitErr.ExitCode()
		default:
			res.exitCode = -1
			res.startErr = err
		}
	}
	return res
}
