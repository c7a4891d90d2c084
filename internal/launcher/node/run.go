package node

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

type execRunner struct {
	binary string
	grace  time.Duration
	stdout io.Writer
	stderr io.Writer
}

// NewNodeRunner create a Runner starting the release binary produced by
// the build step inside given checkout directory.
func NewNodeRunner(dir string, grace time.Duration) Runner {
	return &execRunner{
		binary: filepath.Join(dir, "target", "release", "graph-node"),
		grace:  grace,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

func (r *execRunner) Run(ctx context.Context, args []string) (ExitOutcome, error) {
	cmd := exec.Command(r.binary, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return ExitOutcome{}, &LaunchError{Cause: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return ExitOutcome{}, &LaunchError{Cause: err}
	}

	if err := cmd.Start(); err != nil {
		return ExitOutcome{}, &LaunchError{Cause: err}
	}

	log.Info().Int("pid", cmd.Process.Pid).Msg("graph-node started")

	// Both streams are drained concurrently so that a node writing
	// heavily to one of them can never block on the other. Both must
	// reach EOF before the outcome is reported.
	var wg sync.WaitGroup
	wg.Add(2)
	go forward(&wg, r.stdout, stdout)
	go forward(&wg, r.stderr, stderr)

	done := make(chan error, 1)
	go func() {
		wg.Wait()
		done <- cmd.Wait()
	}()

	var waitErr error
	select {
	case waitErr = <-done:
	case <-ctx.Done():
		log.Warn().Dur("grace", r.grace).Msg("Stopping graph-node")
		_ = cmd.Process.Signal(syscall.SIGTERM)

		select {
		case waitErr = <-done:
		case <-time.After(r.grace):
			log.Warn().Msg("graph-node did not stop in time, killing it")
			_ = cmd.Process.Kill()
			waitErr = <-done
		}
	}

	return outcomeFromWait(waitErr)
}

func forward(wg *sync.WaitGroup, dst io.Writer, src io.Reader) {
	defer wg.Done()
	_, _ = io.Copy(dst, src)
}

func outcomeFromWait(err error) (ExitOutcome, error) {
	if err == nil {
		return ExitOutcome{}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return ExitOutcome{Code: int(status.Signal()), Signaled: true}, nil
		}
		return ExitOutcome{Code: exitErr.ExitCode()}, nil
	}

	return ExitOutcome{}, &LaunchError{Cause: err}
}
