// Profiling:
// go build ./profile/group
// PROFILE_MODE=cpu ./group
// go tool pprof -http=":8000" -nodefraction=0.001 ./group cpu.pprof

package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/edwinsyarief/sparseset"
	"github.com/edwinsyarief/sparseset/internal/profiling"
	"github.com/edwinsyarief/sparseset/log"
)

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

func main() {
	cfg, err := profiling.Load(profiling.Config{
		Rounds:   20,
		Iters:    1000,
		Entities: 100000,
		Store:    profiling.StoreArray,
		Mode:     profiling.ModeCPU,
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
		Msg("profiling grouped iteration")

	p := cfg.Start()
	run(cfg, &logger)
	p.Stop()
}

// run gives every entity a position and every third one a velocity, groups
// the two sets and integrates the group once per iteration.
func run(cfg profiling.Config, logger *zerolog.Logger) {
	for round := range cfg.Rounds {
		pos := profiling.NewSet[position](cfg)
		vel := profiling.NewSet[velocity](cfg)
		for i := range cfg.Entities {
			pos.Insert(uint32(i), position{})
			if i%3 == 0 {
				vel.Insert(uint32(i), velocity{DX: 1, DY: 0.5})
			}
		}

		g, err := sparseset.NewGroup(pos, vel, 0)
		if err != nil {
			logger.Fatal().Err(err).Msg("group build failed")
		}
		for range cfg.Iters {
			g.Each(func(_ uint32, p *position, v *velocity) bool {
				p.X += v.DX
				p.Y += v.DY
				return true
			})
		}
		if round == 0 {
			log.Group(logger, "position+velocity", g, zerolog.DebugLevel)
		}
	}
}
