// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed loads lookup tables, countries and the bootstrap admin from a
// YAML fixture. It runs migrations first and is safe to run repeatedly.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/gumruk/internal/core/geo"
	"github.com/taibuivan/gumruk/internal/core/lookup"
	"github.com/taibuivan/gumruk/internal/platform/migration"
	pgstore "github.com/taibuivan/gumruk/internal/platform/postgres"
	"github.com/taibuivan/gumruk/internal/seed"
	"github.com/taibuivan/gumruk/internal/users/auth"
)

type options struct {
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
	FixturePath   string `env:"SEED_FILE" envDefault:"./data/seed.yaml"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD"`
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", "gumruk-seed"))

	var opts options
	if err := env.Parse(&opts); err != nil {
		fail(log, err, "parse environment")
	}

	context, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	file, err := seed.Load(opts.FixturePath)
	if err != nil {
		fail(log, err, "load fixture")
	}

	if err := migration.RunUp(opts.DatabaseURL, opts.MigrationPath, log); err != nil {
		fail(log, err, "run migrations")
	}

	pool, err := pgstore.NewPool(context, opts.DatabaseURL, log)
	if err != nil {
		fail(log, err, "connect to postgres")
	}
	defer pool.Close()

	seeder := seed.NewSeeder(
		lookup.NewService(lookup.NewPostgresRepository(pool), nil, log),
		geo.NewService(geo.NewPostgresRepository(pool), log),
		auth.NewUserRepository(pool),
		log,
	)

	if _, err := seeder.Run(context, file, opts.AdminPassword); err != nil {
		pool.Close()
		fail(log, err, "seed")
	}
}

func fail(log *slog.Logger, err error, step string) {
	log.Error("seed_failed", slog.String("step", step), slog.Any("error", err))
	os.Exit(1)
}
