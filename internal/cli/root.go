// Package cli implements the registrar command, which loads a seed file into an
// in-memory registrar and inspects it without starting the HTTP server.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/courseregistry/internal/app/services"
	"github.com/yigit/courseregistry/internal/bootstrap"
	"github.com/yigit/courseregistry/internal/config"
	"github.com/yigit/courseregistry/internal/pkg/logger"
	"github.com/yigit/courseregistry/internal/seed"
)

var (
	version  = "dev"
	cfgFile  string
	seedFile string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "registrar",
	Short: "Inspect a course registry seed offline",
	Long: `Load a seed file into an in-memory registrar and inspect the result.

The registry capacities come from the same configuration file the API server uses.
Seed entries that fail to apply are reported and skipped.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", filepath.Join("configs", "config.yaml"),
		"config file holding the registry capacities")
	rootCmd.PersistentFlags().StringVarP(&seedFile, "seed", "s", "",
		"seed file to load (default: seed.path from the config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log seeding progress to stderr")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadRegistrar builds a registrar from the configuration and applies the seed.
func loadRegistrar(ctx context.Context) (services.RegistrarService, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}

	lgr := logger.Nop()
	if verbose {
		lgr = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	path := seedFile
	if path == "" {
		path = cfg.Seed.Path
	}
	if path == "" {
		return nil, fmt.Errorf("no seed file given")
	}

	data, err := seed.LoadFile(path)
	if err != nil {
		return nil, err
	}

	registrar := services.NewRegistrarService(bootstrap.Capacities(cfg), lgr)
	if err := seed.Apply(ctx, registrar, data, lgr); err != nil {
		fmt.Fprintf(os.Stderr, "warning: some seed entries were skipped:\n%v\n", err)
	}
	return registrar, nil
}

// withRegistrar loads the registrar, runs fn against it and closes it. A failed
// Close is reported along with any error from fn.
func withRegistrar(ctx context.Context, fn func(context.Context, services.RegistrarService) error) (err error) {
	registrar, err := loadRegistrar(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := registrar.Close(context.Background()); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing registrar: %w", cerr))
		}
	}()
	return fn(ctx, registrar)
}
