package node

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"
)

func writeNodeScript(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "graph-node")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+content), 0700); err != nil {
		t.Fatalf("unable to write script: %s", err)
	}

	return path
}

func TestExecRunnerForwardsStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := &execRunner{
		binary: writeNodeScript(t, "echo out\necho err >&2\n"),
		grace:  time.Second,
		stdout: &stdout,
		stderr: &stderr,
	}

	outcome, err := r.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if outcome.Code != 0 || outcome.Signaled {
		t.Errorf("wrong outcome: %+v", outcome)
	}
	if stdout.String() != "out\n" {
		t.Errorf("wrong stdout: %q", stdout.String())
	}
	if stderr.String() != "err\n" {
		t.Errorf("wrong stderr: %q", stderr.String())
	}
}

func TestExecRunnerPassesArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := &execRunner{
		binary: writeNodeScript(t, "echo \"$@\"\n"),
		grace:  time.Second,
		stdout: &stdout,
		stderr: &stderr,
	}

	args := []string{"--postgres-url", "postgresql://localhost/graph-node", "--ethereum-rpc", "base:https://base-rpc.publicnode.com"}
	if _, err := r.Run(context.Background(), args); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !strings.Contains(stdout.String(), "--ethereum-rpc base:https://base-rpc.publicnode.com") {
		t.Errorf("arguments not passed through: %q", stdout.String())
	}
}

func TestExecRunnerExitCode(t *testing.T) {
	r := &execRunner{
		binary: writeNodeScript(t, "exit 3\n"),
		grace:  time.Second,
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	outcome, err := r.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if outcome.Code != 3 || outcome.Signaled {
		t.Errorf("wrong outcome: %+v", outcome)
	}
}

func TestExecRunnerSignaled(t *testing.T) {
	r := &execRunner{
		binary: writeNodeScript(t, "kill -TERM $$\n"),
		grace:  time.Second,
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	outcome, err := r.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !outcome.Signaled {
		t.Fatalf("termination by signal not detected: %+v", outcome)
	}
	if outcome.Code != int(syscall.SIGTERM) {
		t.Errorf("wrong signal: %d", outcome.Code)
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := &execRunner{
		binary: filepath.Join(t.TempDir(), "target", "release", "graph-node"),
		grace:  time.Second,
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	_, err := r.Run(context.Background(), nil)

	var launchErr *LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("no LaunchError: %v", err)
	}
}

func TestExecRunnerGracefulStop(t *testing.T) {
	r := &execRunner{
		binary: writeNodeScript(t, "trap 'exit 0' TERM\nwhile true; do sleep 1; done\n"),
		grace:  10 * time.Second,
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(200 * time.Millisecond)
		cancel()
	}()

	outcome, err := r.Run(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if outcome.Code != 0 || outcome.Signaled {
		t.Errorf("node did not stop gracefully: %+v", outcome)
	}
}
