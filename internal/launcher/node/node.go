package node

//go:generate mockgen -destination=../node_mock/node_mock.go -package=node_mock . Builder,Runner

import (
	"context"
)

// ExitOutcome describe how the node process terminated
type ExitOutcome struct {
	Code     int
	Signaled bool
}

// Builder produces the graph-node binary before a launch
type Builder interface {
	// Build run the build step, blocking until it completes
	Build(ctx context.Context) error
}

// Runner starts the built graph-node binary and reflects its termination
type Runner interface {
	// Run start the node with given arguments, forward its output and
	// block until it terminates
	Run(ctx context.Context, args []string) (ExitOutcome, error)
}
