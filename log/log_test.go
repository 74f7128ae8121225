package log_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/sparseset"
	"github.com/edwinsyarief/sparseset/log"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	bufLogger := zerolog.New(&buf)

	s := sparseset.NewArrayed[uint32, string](4)
	s.Insert(3, "a")
	s.Insert(9, "b")

	log.Set(&bufLogger, "names", s, zerolog.InfoLevel)

	got := decode(t, &buf)
	assert.Equal(t, "names", got["set"])
	assert.Equal(t, "array", got["store"])
	assert.EqualValues(t, 2, got["len"])
	assert.EqualValues(t, 2, got["store_len"])
	assert.Equal(t, "info", got["level"])
}

func TestGroupLogger(t *testing.T) {
	var buf bytes.Buffer
	bufLogger := zerolog.New(&buf)

	a := sparseset.NewHashed[int, int](0)
	b := sparseset.NewHashed[int, int](0)
	for _, id := range []int{1, 2, 3, 4} {
		a.Insert(id, id)
	}
	for _, id := range []int{2, 4, 6} {
		b.Insert(id, id)
	}
	g, err := sparseset.NewGroup(a, b, 1)
	require.NoError(t, err)

	log.Group(&bufLogger, "a+b", g, zerolog.DebugLevel)

	got := decode(t, &buf)
	assert.Equal(t, "a+b", got["group"])
	assert.EqualValues(t, 1, got["offset"])
	assert.EqualValues(t, 2, got["len"])
}

func TestSetsLogger(t *testing.T) {
	var buf bytes.Buffer
	bufLogger := zerolog.New(&buf)

	pos := sparseset.NewEntitySet[float32](0)
	pos.Insert(sparseset.Entity{ID: 1, Version: 1}, 1.5)
	vel := sparseset.NewOrdered[string, int](0)

	log.Sets(&bufLogger, map[string]log.SetDescriber{"pos": pos, "vel": vel}, zerolog.InfoLevel)

	got := decode(t, &buf)
	assert.EqualValues(t, 2, got["total_sets"])
	sets, ok := got["sets"].([]any)
	require.True(t, ok)
	assert.Len(t, sets, 2)
}

func TestCreateSetLogger(t *testing.T) {
	var buf bytes.Buffer
	bufLogger := zerolog.New(&buf)

	sub := log.CreateSetLogger(&bufLogger, "health")
	sub.Info().Msg("rebuilt")

	got := decode(t, &buf)
	assert.Equal(t, "health", got["set"])
	assert.Equal(t, "rebuilt", got["message"])
}
