package launcher

import (
	"context"

	"github.com/lotaway/graph-node/internal/launcher/node"
	"github.com/lotaway/graph-node/internal/process"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// State represent the application state
type State struct {
	config  *Config
	builder node.Builder
	runner  node.Runner
}

// Name return the process name
func (state *State) Name() string {
	return "launcher"
}

// Description return the process description
func (state *State) Description() string {
	return "Build graph-node in release mode and run it against the configured backends."
}

// CustomFlags return process custom flags
func (state *State) CustomFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  PostgresURLFlag,
			Usage: "Connection string of the PostgreSQL database",
		},
		&cli.StringFlag{
			Name:  IPFSFlag,
			Usage: "host:port of the IPFS node",
		},
		&cli.StringSliceFlag{
			Name:  EthereumRPCFlag,
			Usage: "Chain endpoint as network:url (repeatable, tags must be unique)",
		},
		&cli.StringFlag{
			Name:  NodeDirFlag,
			Usage: "Path to the graph-node checkout to build and run",
		},
		&cli.StringFlag{
			Name:  ShutdownTimeoutFlag,
			Usage: "How long a signalled graph-node may take to stop before being killed",
		},
	}
}

// Initialize the process
func (state *State) Initialize(provider process.Provider) error {
	config, err := ResolveConfig(provider)
	if err != nil {
		return err
	}

	state.config = config
	state.builder = node.NewCargoBuilder(config.NodeDir)
	state.runner = node.NewNodeRunner(config.NodeDir, config.ShutdownGrace)

	return nil
}

// Run build graph-node and launch it, reflecting its outcome
func (state *State) Run(ctx context.Context) error {
	if err := state.builder.Build(ctx); err != nil {
		return err
	}

	args := RenderArgs(state.config)
	log.Debug().Strs("args", args).Msg("Rendered graph-node arguments")

	outcome, err := state.runner.Run(ctx, args)
	if err != nil {
		return err
	}

	if outcome.Signaled || outcome.Code != 0 {
		return &node.ExitError{Outcome: outcome}
	}

	log.Info().Msg("graph-node exited cleanly")

	return nil
}
