package config

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	store, err := Load(path)
	require.NoError(t, err)

	s := store.Settings()
	assert.True(t, s.ReachabilityFilter)
	assert.True(t, s.GroupExits)
	assert.Equal(t, 0.8, s.MasterVolume)
	assert.Equal(t, "assets", s.AssetDir)
	assert.Equal(t, "info", s.LogLevel)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")

	store, err := Load(path)
	require.NoError(t, err)
	store.SetReachabilityFilter(false)
	store.SetMasterVolume(0.25)
	store.SetAssetDir("sounds")
	require.NoError(t, store.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	s := reloaded.Settings()
	assert.False(t, s.ReachabilityFilter)
	assert.Equal(t, 0.25, s.MasterVolume)
	assert.Equal(t, "sounds", s.AssetDir)
	assert.True(t, s.GroupExits, "untouched keys keep their defaults")
}

func TestInMemoryStoreRefusesSave(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)
	assert.Error(t, store.Save())
}

func TestLoggerLevelFallback(t *testing.T) {
	var buf bytes.Buffer

	log := NewLogger("nonsense", &buf)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())

	log = NewLogger("debug", &buf)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())

	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}
