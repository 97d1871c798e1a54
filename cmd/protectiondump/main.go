package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/blocklock/internal/config"
	"github.com/udisondev/blocklock/internal/db"
	"github.com/udisondev/blocklock/internal/display"
	"github.com/udisondev/blocklock/internal/material"
	"github.com/udisondev/blocklock/internal/model"
)

const ConfigPath = "config/blocklock.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfgPath := ConfigPath
	if p := os.Getenv("BLOCKLOCK_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadStore(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.Info("config loaded", "path", cfgPath, "style", cfg.Style, "db_host", cfg.Database.Host)

	style, err := display.ByName(cfg.Style)
	if err != nil {
		return fmt.Errorf("selecting display style: %w", err)
	}
	materials, err := material.Load(cfg.Materials)
	if err != nil {
		return fmt.Errorf("loading materials: %w", err)
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	if err := db.MigratePool(ctx, database.Pool()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	return dump(ctx, os.Stdout, database.Protections(cfg.BcryptCost), style, materials, cfg.ListConcurrency)
}

// worldLister is the part of db.ProtectionRepository dump needs.
type worldLister interface {
	Worlds(ctx context.Context) ([]string, error)
	LoadByWorld(ctx context.Context, world string) ([]*model.Protection, error)
}

// dump loads every world concurrently and prints them in world order.
func dump(ctx context.Context, w io.Writer, repo worldLister, style model.Styler, materials model.MaterialResolver, limit int) error {
	worlds, err := repo.Worlds(ctx)
	if err != nil {
		return fmt.Errorf("listing worlds: %w", err)
	}

	perWorld := make([][]*model.Protection, len(worlds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, world := range worlds {
		g.Go(func() error {
			list, err := repo.LoadByWorld(gctx, world)
			if err != nil {
				return fmt.Errorf("loading world %s: %w", world, err)
			}
			perWorld[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := 0
	for i, world := range worlds {
		if _, err := fmt.Fprintf(w, "== %s (%d)\n", world, len(perWorld[i])); err != nil {
			return err
		}
		for _, p := range perWorld[i] {
			if _, err := fmt.Fprintln(w, p.Describe(style, materials)); err != nil {
				return err
			}
		}
		total += len(perWorld[i])
	}
	slog.Info("dump complete", "worlds", len(worlds), "protections", total)
	return nil
}
