// Package log emits structured descriptions of sparse sets and groups.
package log

import (
	"github.com/rs/zerolog"
)

// SetDescriber is satisfied by every sparseset.SparseSet.
type SetDescriber interface {
	Len() int
	StoreKind() string
	StoreLen() int
}

// GroupDescriber is satisfied by every sparseset.Group.
type GroupDescriber interface {
	Len() int
	Offset() int
}

func loadSetIntoEvent(zeroLoggerEvent *zerolog.Event, name string, target SetDescriber) *zerolog.Event {
	return zeroLoggerEvent.
		Str("set", name).
		Int("len", target.Len()).
		Str("store", target.StoreKind()).
		Int("store_len", target.StoreLen())
}

// Set logs the size and storage backend of a set.
func Set(logger *zerolog.Logger, name string, target SetDescriber, level zerolog.Level) {
	loadSetIntoEvent(logger.WithLevel(level), name, target).Send()
}

// Group logs a group's block position and size.
func Group(logger *zerolog.Logger, name string, target GroupDescriber, level zerolog.Level) {
	logger.WithLevel(level).
		Str("group", name).
		Int("offset", target.Offset()).
		Int("len", target.Len()).
		Send()
}

// Sets logs every named set as one array under "sets".
func Sets(logger *zerolog.Logger, targets map[string]SetDescriber, level zerolog.Level) {
	arrayLogger := zerolog.Arr()
	for name, target := range targets {
		dictLogger := zerolog.Dict().
			Str("set", name).
			Int("len", target.Len()).
			Str("store", target.StoreKind())
		arrayLogger = arrayLogger.Dict(dictLogger)
	}
	logger.WithLevel(level).Int("total_sets", len(targets)).Array("sets", arrayLogger).Send()
}

// CreateSetLogger creates a sub logger with the entry {"set": name}.
func CreateSetLogger(logger *zerolog.Logger, name string) *zerolog.Logger {
	newLogger := logger.With().Str("set", name).Logger()
	return &newLogger
}
