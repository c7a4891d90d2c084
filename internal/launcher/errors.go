package launcher

import (
	"fmt"
)

// exitConfig is the exit code reserved for configuration failures, the
// remaining failure classes live with the node stages.
const exitConfig = 101

// ConfigError is returned when the launcher configuration is invalid
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// ExitCode implements cli.ExitCoder
func (e *ConfigError) ExitCode() int {
	return exitConfig
}
