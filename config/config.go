// Package config loads the engine's tunable options from an optional
// TOML file, falling back to engine.DefaultOptions for anything the
// file omits.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/corvidchess/corvid/engine"
)

// fileOptions mirrors engine.Options with every field optional, so a
// config file only needs to name the tunables it wants to override.
type fileOptions struct {
	MaxDepth            *int  `toml:"max_depth"`
	MoveTimeMS          *int  `toml:"move_time_ms"`
	UseAspirationWindow *bool `toml:"use_aspiration_window"`
	ShowSearchInfo      *bool `toml:"show_search_info"`
	PonderingEnabled    *bool `toml:"pondering_enabled"`
}

// Load reads path, if it exists, and applies any fields it sets on
// top of engine.DefaultOptions. A missing file is not an error -- the
// defaults are returned unchanged.
func Load(path string) (engine.Options, error) {
	opts := engine.DefaultOptions()
	if path == "" {
		return opts, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return opts, nil
	}

	var fo fileOptions
	if _, err := toml.DecodeFile(path, &fo); err != nil {
		return opts, err
	}

	if fo.MaxDepth != nil {
		opts.MaxDepth = *fo.MaxDepth
	}
	if fo.MoveTimeMS != nil {
		opts.MoveTimeMS = *fo.MoveTimeMS
	}
	if fo.UseAspirationWindow != nil {
		opts.UseAspirationWindow = *fo.UseAspirationWindow
	}
	if fo.ShowSearchInfo != nil {
		opts.ShowSearchInfo = *fo.ShowSearchInfo
	}
	if fo.PonderingEnabled != nil {
		opts.PonderingEnabled = *fo.PonderingEnabled
	}
	return opts, nil
}
