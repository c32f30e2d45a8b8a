package main

import (
	"os"

	"github.com/AntonioJCosta/osla/internal/adapters/aliastable"
	"github.com/AntonioJCosta/osla/internal/adapters/output"
	"github.com/AntonioJCosta/osla/internal/adapters/placeholder"
	"github.com/AntonioJCosta/osla/internal/core/services/catalog"
	"github.com/AntonioJCosta/osla/internal/core/services/licensegen"
	"github.com/AntonioJCosta/osla/internal/handlers/cli"
	"github.com/AntonioJCosta/osla/internal/handlers/ui"
	"github.com/AntonioJCosta/osla/internal/logging"
	"github.com/AntonioJCosta/osla/internal/repositories/templatestore"
	"github.com/AntonioJCosta/osla/internal/repositories/userconfig"
)

// Version is set at build time
var Version = "dev"

// DataDir is the license database location, set at build time.
// OSLA_DATADIR overrides it at run time.
var DataDir = "/usr/local/share/osla"

func main() {
	logger := logging.New(os.Stderr)
	defer logger.Sync() //nolint:errcheck

	dataDir := DataDir
	if env := os.Getenv("OSLA_DATADIR"); env != "" {
		dataDir = env
	}

	aliases, err := aliastable.NewTable()
	if err != nil {
		fail(err)
	}

	store := templatestore.NewStore(dataDir, logger.Logger)
	generator := licensegen.NewService(aliases, store, placeholder.NewEngine(), logger.Logger)
	catalogSvc := catalog.NewService(aliases, store, logger.Logger)

	rootCmd := cli.NewRootCommand(Version, cli.Dependencies{
		Generator:  generator,
		Catalog:    catalogSvc,
		Config:     userconfig.NewFileConfigLoader("", logger.Logger),
		FileOutput: output.NewFileWriter("", logger.Logger),
		StdOutput:  output.NewStreamWriter(os.Stdout, "stdout"),
		Logger:     logger,
	})

	if err := rootCmd.Execute(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	ui.PrintError(os.Stderr, err)
	os.Exit(1)
}
