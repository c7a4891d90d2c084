package node

import (
	"fmt"
)

// The launcher reserves a distinct exit code per failure class, kept well
// clear of the exit codes graph-node itself may use: those are mirrored
// verbatim. 101 is taken by the configuration stage.
const (
	exitBuild    = 102
	exitLaunch   = 103
	exitSignaled = 104
)

// BuildError is returned when the build step exits non-zero
type BuildError struct {
	Code   int
	Output string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("cargo build failed with exit code %d", e.Code)
}

// ExitCode implements cli.ExitCoder
func (e *BuildError) ExitCode() int {
	return exitBuild
}

// LaunchError is returned when the node process could not be started
type LaunchError struct {
	Cause error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("unable to start graph-node: %s", e.Cause)
}

func (e *LaunchError) Unwrap() error {
	return e.Cause
}

// ExitCode implements cli.ExitCoder
func (e *LaunchError) ExitCode() int {
	return exitLaunch
}

// ExitError reflects a non-successful termination of the node process.
// It is not a launcher failure: it exists so that the node outcome can
// travel up to the CLI layer and become the launcher's own exit code.
type ExitError struct {
	Outcome ExitOutcome
}

func (e *ExitError) Error() string {
	if e.Outcome.Signaled {
		return fmt.Sprintf("graph-node terminated by signal %d", e.Outcome.Code)
	}
	return fmt.Sprintf("graph-node exited with code %d", e.Outcome.Code)
}

// ExitCode implements cli.ExitCoder
func (e *ExitError) ExitCode() int {
	if e.Outcome.Signaled {
		return exitSignaled
	}
	return e.Outcome.Code
}
