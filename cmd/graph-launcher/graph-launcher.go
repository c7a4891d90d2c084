package main

import (
	"os"

	"github.com/lotaway/graph-node/internal/launcher"
	"github.com/lotaway/graph-node/internal/process"
)

func main() {
	app := process.MakeApp(&launcher.State{})
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
