// Package cli implements the songbook command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/llehouerou/songbook/internal/catalog"
	"github.com/llehouerou/songbook/internal/config"
)

var version = "dev"

// CLI flags
var (
	dbPath    string
	verbosity int
)

// Execute builds the command tree and runs it.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:           "songbook",
		Short:         "Songbook - local song catalog",
		Long:          `Songbook keeps a small catalog of songs in a local SQLite database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "SQLite database path (default: XDG data dir, or set SONGBOOK_DB)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newAlbumsCmd(),
		newImportCmd(),
		newRenameCmd(),
		newDeleteCmd(),
	)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("songbook %s\n", version)
		},
	})

	return rootCmd.Execute()
}

// openCatalog loads the config, configures logging, and opens the
// catalog. Path priority: --db flag > SONGBOOK_DB env > config file >
// XDG default.
func openCatalog() (*catalog.Catalog, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	setupLogging(cfg)

	path := dbPath
	if path == "" {
		path = os.Getenv("SONGBOOK_DB")
	}
	if path == "" {
		path = cfg.DatabasePath
	}

	var cat *catalog.Catalog
	if path == "" {
		cat, err = catalog.Open()
	} else {
		cat, err = catalog.OpenPath(path)
	}
	if err != nil {
		return nil, err
	}

	log.Debug().Str("path", cat.Path()).Msg("catalog opened")
	return cat, nil
}

func setupLogging(cfg *config.Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		level = parsed
	}
	switch {
	case verbosity >= 2:
		level = zerolog.TraceLevel
	case verbosity == 1:
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}
