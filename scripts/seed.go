package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/shiftboard/internal/adapters/database"
	"github.com/zatekoja/shiftboard/internal/adapters/memory"
	"github.com/zatekoja/shiftboard/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/shiftboard/internal/infrastructure/observability"
	"github.com/zatekoja/shiftboard/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	observability.InitLogger("seed", cfg.Env)

	path := cfg.Store.FixturesPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	fixtures, err := memory.LoadFixtures(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load fixtures")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to DB")
	}
	defer pgClient.Close()

	ctx := context.Background()
	seeder := database.NewSeeder(pgClient)

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, truncating tables before seeding")
		if err := seeder.Reset(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to reset tables")
		}
	}

	if err := seeder.Seed(ctx, fixtures.Facilities, fixtures.Workers, fixtures.Shifts); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	log.Info().
		Str("fixtures", path).
		Int("facilities", len(fixtures.Facilities)).
		Int("workers", len(fixtures.Workers)).
		Int("shifts", len(fixtures.Shifts)).
		Msg("Seeding complete")
}
