package launcher

// RenderArgs translate given config into the graph-node argument vector.
// The ordering is fixed: datastore, IPFS, chain endpoints in declaration
// order, then the log level. URLs are passed through untouched.
func RenderArgs(config *Config) []string {
	args := []string{
		"--postgres-url", config.PostgresURL,
		"--ipfs", config.IPFSEndpoint,
	}

	for _, chain := range config.Chains {
		args = append(args, "--ethereum-rpc", chain.Network+":"+chain.URL)
	}

	args = append(args, "--log-level", config.LogLevel)

	return args
}
