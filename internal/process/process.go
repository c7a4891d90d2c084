package process

//go:generate mockgen -destination=../process_mock/process_mock.go -package=process_mock . Provider

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const (
	version = "0.1.0"

	// LogLevelFlag is the common flag used to set the application log level
	LogLevelFlag = "log-level"
)

// Provider provides access to the process configuration values
type Provider interface {
	// GetStrValue return string value for given key
	GetStrValue(key string) string
	// GetStrValues return string slice for given key
	GetStrValues(key string) []string
}

type defaultProvider struct {
	ctx *cli.Context
}

// NewDefaultProvider create a brand new default provider using given cli.Context
func NewDefaultProvider(ctx *cli.Context) Provider {
	return &defaultProvider{ctx: ctx}
}

func (p *defaultProvider) GetStrValue(key string) string {
	return p.ctx.String(key)
}

func (p *defaultProvider) GetStrValues(key string) []string {
	return p.ctx.StringSlice(key)
}

// Process is a run-to-completion component of the launcher
type Process interface {
	Name() string
	Description() string
	CustomFlags() []cli.Flag
	Initialize(provider Provider) error
	Run(ctx context.Context) error
}

// MakeApp return cli.App corresponding for given Process
func MakeApp(process Process) *cli.App {
	app := &cli.App{
		Name:        fmt.Sprintf("graph-%s", process.Name()),
		Version:     version,
		Usage:       fmt.Sprintf("graph-node %s tool", process.Name()),
		Description: process.Description(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  LogLevelFlag,
				Usage: "Set the application log level",
				Value: "info",
			},
		},
		Action: execute(process),
	}

	// Add custom flags
	for _, flag := range process.CustomFlags() {
		app.Flags = append(app.Flags, flag)
	}

	return app
}

func execute(process Process) cli.ActionFunc {
	return func(c *cli.Context) error {
		provider := NewDefaultProvider(c)

		// Common setup
		configureLogger(c)

		// Custom setup
		if err := process.Initialize(provider); err != nil {
			log.Err(err).Msg("error while initializing app")
			return err
		}

		// The context is cancelled when the launcher receives a termination
		// signal, so components owning child processes can shut them down
		// instead of leaving orphans behind.
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(ch)

		go func() {
			<-ch
			cancel()
		}()

		log.Info().
			Str("ver", c.App.Version).
			Msg(fmt.Sprintf("Started %s", c.App.Name))

		return process.Run(ctx)
	}
}

func configureLogger(ctx *cli.Context) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Set application log level
	if lvl, err := zerolog.ParseLevel(ctx.String(LogLevelFlag)); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Debug().Stringer("lvl", zerolog.GlobalLevel()).Msg("Setting log level")
}
