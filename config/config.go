// Package config persists user preferences and builds the process
// logger.
package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

// Keys in the preference file
const (
	keyReachability = "navigation.reachability_filter"
	keyGroupExits   = "navigation.group_exits"
	keyMasterVolume = "audio.master_volume"
	keyAssetDir     = "audio.asset_dir"
	keyLogLevel     = "log.level"
)

// Settings is a snapshot of every preference
type Settings struct {
	ReachabilityFilter bool
	GroupExits         bool
	MasterVolume       float64
	AssetDir           string
	LogLevel           string
}

// Store reads and writes preferences at a fixed path
// A missing file yields defaults; Save creates it
type Store struct {
	v    *viper.Viper
	path string
}

// Load opens the preference file at path, or returns a default-valued
// store when the file does not exist yet
// An empty path gives an in-memory store that cannot Save
func Load(path string) (*Store, error) {
	v := viper.New()
	v.SetDefault(keyReachability, true)
	v.SetDefault(keyGroupExits, true)
	v.SetDefault(keyMasterVolume, 0.8)
	v.SetDefault(keyAssetDir, "assets")
	v.SetDefault(keyLogLevel, "info")

	s := &Store{v: v, path: path}
	if path == "" {
		return s, nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	return s, nil
}

// Settings returns the current values
func (s *Store) Settings() Settings {
	return Settings{
		ReachabilityFilter: s.v.GetBool(keyReachability),
		GroupExits:         s.v.GetBool(keyGroupExits),
		MasterVolume:       s.v.GetFloat64(keyMasterVolume),
		AssetDir:           s.v.GetString(keyAssetDir),
		LogLevel:           s.v.GetString(keyLogLevel),
	}
}

func (s *Store) SetReachabilityFilter(on bool) { s.v.Set(keyReachability, on) }
func (s *Store) SetGroupExits(on bool)         { s.v.Set(keyGroupExits, on) }
func (s *Store) SetMasterVolume(vol float64)   { s.v.Set(keyMasterVolume, vol) }
func (s *Store) SetAssetDir(dir string)        { s.v.Set(keyAssetDir, dir) }

// Save writes the preference file, creating it when absent
func (s *Store) Save() error {
	if s.path == "" {
		return errors.New("config: no preference path configured")
	}
	return s.v.WriteConfigAs(s.path)
}
