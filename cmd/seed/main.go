// Command seed loads the demo operator and menu into the configured store.
// Useful against the Redis driver, where data persists between restarts.
package main

import (
	"context"
	"time"

	"estoquefacil/internal/config"
	"estoquefacil/internal/infra"
	"estoquefacil/internal/store"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	var kv store.KV
	switch cfg.StoreDriver {
	case "redis":
		rdb, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		kv = store.NewRedis(rdb)
	default:
		log.Warn().Msg("seeding the in-memory store has no lasting effect; set STORE_DRIVER=redis")
		kv = store.NewMemory()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := infra.SeedDemo(ctx, kv); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("seed complete")
}
