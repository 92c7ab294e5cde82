package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	cli "github.com/anshiakhileshmj/browserauto/cmd/browserauto"
	"github.com/anshiakhileshmj/browserauto/internal/autoconfig"
	"github.com/anshiakhileshmj/browserauto/internal/defaults"
	"github.com/anshiakhileshmj/browserauto/internal/locator"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	if _, err := defaults.EnsureDataDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize data directory: %v\n", err)
		os.Exit(1)
	}

	configPath, err := defaults.ConfigFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve configuration path: %v\n", err)
		os.Exit(1)
	}

	configurator := autoconfig.New(configPath, locator.New())

	if err := cli.SetupRootCmd(configurator).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
