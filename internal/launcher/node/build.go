package node

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

type execBuilder struct {
	name  string
	args  []string
	dir   string
	relay io.Writer
}

// NewCargoBuilder create a Builder compiling graph-node in release mode
// inside given checkout directory.
func NewCargoBuilder(dir string) Builder {
	return &execBuilder{
		name:  "cargo",
		args:  []string{"build", "-p", "graph-node", "--release"},
		dir:   dir,
		relay: os.Stderr,
	}
}

func (b *execBuilder) Build(ctx context.Context) error {
	log.Info().Str("dir", b.dir).Str("cmd", b.name).Msg("Building graph-node")

	// Build output is relayed live and captured at the same time, so a
	// failure can be reported with the diagnostics that caused it.
	var captured bytes.Buffer
	output := io.MultiWriter(b.relay, &captured)

	cmd := exec.CommandContext(ctx, b.name, b.args...)
	cmd.Dir = b.dir
	cmd.Stdout = output
	cmd.Stderr = output

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &BuildError{Code: exitErr.ExitCode(), Output: captured.String()}
		}
		return &BuildError{Code: -1, Output: err.Error()}
	}

	return nil
}
