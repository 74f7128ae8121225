// Package profiling holds the configuration shared by the profile commands.
package profiling

import (
	"os"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/edwinsyarief/sparseset"
)

// Config is loaded from the environment. Zero fields take the defaults
// below.
type Config struct {
	Rounds   int    `config:"PROFILE_ROUNDS"`
	Iters    int    `config:"PROFILE_ITERS"`
	Entities int    `config:"PROFILE_ENTITIES"`
	Store    string `config:"PROFILE_STORE"`
	Mode     string `config:"PROFILE_MODE"`
	Path     string `config:"PROFILE_PATH"`
	LogLevel string `config:"PROFILE_LOG_LEVEL"`
}

const (
	StoreHash    = "hash"
	StoreArray   = "array"
	StoreOrdered = "ordered"

	ModeCPU    = "cpu"
	ModeAllocs = "allocs"
)

// Load reads Config from the environment and fills in defaults.
func Load(defaults Config) (Config, error) {
	var c Config
	if err := jlconfig.FromEnv().To(&c); err != nil {
		return c, eris.Wrap(err, "failed to load profile config")
	}
	if c.Rounds <= 0 {
		c.Rounds = defaults.Rounds
	}
	if c.Iters <= 0 {
		c.Iters = defaults.Iters
	}
	if c.Entities <= 0 {
		c.Entities = defaults.Entities
	}
	if c.Store == "" {
		c.Store = defaults.Store
	}
	if c.Mode == "" {
		c.Mode = defaults.Mode
	}
	if c.Path == "" {
		c.Path = defaults.Path
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	return c, c.validate()
}

func (c Config) validate() error {
	switch c.Store {
	case StoreHash, StoreArray, StoreOrdered:
	default:
		return eris.Errorf("unknown store %q", c.Store)
	}
	switch c.Mode {
	case ModeCPU, ModeAllocs:
	default:
		return eris.Errorf("unknown profile mode %q", c.Mode)
	}
	return nil
}

// Start begins the profile selected by c.Mode. Call Stop on the result.
func (c Config) Start() interface{ Stop() } {
	mode := profile.CPUProfile
	if c.Mode == ModeAllocs {
		mode = profile.MemProfileAllocs
	}
	return profile.Start(mode, profile.ProfilePath(c.Path), profile.NoShutdownHook, profile.Quiet)
}

// NewSet creates a set keyed by uint32 backed by the configured store.
func NewSet[T any](c Config) *sparseset.SparseSet[uint32, T] {
	switch c.Store {
	case StoreHash:
		return sparseset.NewHashed[uint32, T](c.Entities)
	case StoreOrdered:
		return sparseset.NewOrdered[uint32, T](c.Entities)
	default:
		return sparseset.NewArrayed[uint32, T](c.Entities)
	}
}

// Logger returns a console logger at the configured level.
func (c Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
