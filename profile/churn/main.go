// Profiling:
// go build ./profile/churn
// PROFILE_STORE=hash PROFILE_MODE=allocs ./churn
// go tool pprof -http=":8000" -nodefraction=0.001 ./churn mem.pprof

package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/edwinsyarief/sparseset/internal/profiling"
	"github.com/edwinsyarief/sparseset/log"
)

type comp1 struct {
	V int64
	W int64
}

func main() {
	cfg, err := profiling.Load(profiling.Config{
		Rounds:   50,
		Iters:    1000,
		Entities: 1000,
		Store:    profiling.StoreArray,
		Mode:     profiling.ModeAllocs,
		Path:     ".",
		LogLevel: "info",
	})
	logger := cfg.Logger()
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}
	logger.Info().
		Str("store", cfg.Store).
		Str("mode", cfg.Mode).
		Int("entities", cfg.Entities).
		Msg("profiling insert/remove churn")

	p := cfg.Start()
	run(cfg, &logger)
	p.Stop()
}

// run fills a set, updates every value through the dense slice, then
// removes every other entity and inserts the rest back as a batch.
func run(cfg profiling.Config, logger *zerolog.Logger) {
	for round := range cfg.Rounds {
		s := profiling.NewSet[comp1](cfg)
		ids := make([]uint32, 0, cfg.Entities)
		vals := make([]comp1, 0, cfg.Entities)

		for range cfg.Iters {
			for i := range cfg.Entities {
				s.Insert(uint32(i*3+1), comp1{V: int64(i)})
			}
			values := s.Values()
			for i := range values {
				values[i].W += values[i].V
			}
			ids, vals = ids[:0], vals[:0]
			for i := 0; i < cfg.Entities; i += 2 {
				id := uint32(i*3 + 1)
				v, _ := s.Remove(id)
				ids = append(ids, id)
				vals = append(vals, v)
			}
			if err := s.InsertBatch(ids, vals); err != nil {
				logger.Fatal().Err(err).Msg("batch insert failed")
			}
			s.Clear()
		}
		if round == 0 {
			log.Set(logger, "churn", s, zerolog.DebugLevel)
		}
	}
}
