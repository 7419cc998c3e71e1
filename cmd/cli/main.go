// Package main provides the heroes-cli tool: ad-hoc lookups against the
// configured repository and SQL schema migration.
//
// Run with: go run ./cmd/cli find --name Wonder
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fleveque/heroes-service/internal/config"
	"github.com/fleveque/heroes-service/internal/service"
	"github.com/fleveque/heroes-service/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "heroes-cli",
		Short:        "Heroes service CLI tools",
		SilenceUsage: true,
	}

	root.AddCommand(findCmd(), migrateCmd())
	return root
}

func findCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Look heroes up by name, the same way GET /heroes/ does",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd.Context(), cmd.OutOrStdout(), name, cmd.Flags().Changed("name"))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name or name prefix; a trailing % is optional")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create and seed the heroes table for the sqlite or mysql driver",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func runFind(ctx context.Context, out io.Writer, name string, present bool) error {
	cfg, err := config.Load(os.Getenv("HEROES_CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	repo, closeRepo, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening %s storage: %w", cfg.Storage.Driver, err)
	}
	defer closeRepo()

	heroes, err := service.NewHeroService(repo, nil, logger).Find(ctx, name, present)
	if errors.Is(err, storage.ErrNotFound) {
		return errors.New("no hero matches")
	}
	if err != nil {
		return fmt.Errorf("finding heroes: %w", err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(heroes)
}

func runMigrate(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load(os.Getenv("HEROES_CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Storage.Driver == storage.DriverMemory {
		return errors.New("memory storage needs no migration; set storage.driver to sqlite or mysql")
	}

	// Open runs the migrations.
	_, closeRepo, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("migrating %s storage: %w", cfg.Storage.Driver, err)
	}
	defer closeRepo()

	_, err = fmt.Fprintf(out, "%s storage migrated\n", cfg.Storage.Driver)
	return err
}
