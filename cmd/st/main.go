package main

import (
	"fmt"
	"os"

	"slimtimer/internal/cli"
	"slimtimer/internal/config"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	app := cli.NewApp(cfg)
	root := cli.NewRootCommand(app, cfg)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
