// Package config loads Subsystem configuration from a JSONC file, with
// CLI flags taking precedence over the file and the file taking
// precedence over defaults. Only one value: defaults, then an optional
// file, then explicit overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"github.com/astral-engine/astral/pkg/strintern"
)

// ErrFileNotFound is returned when an explicitly named config file exists
// but cannot be read. A path that does not exist at all is not an error:
// Load returns a zero File for it.
var ErrFileNotFound = errors.New("config: file not found")

// ErrInvalidMaxStrings is returned when max_strings is present and zero.
// A value that is not a non-negative integer fails JSON decoding instead.
var ErrInvalidMaxStrings = errors.New("config: max_strings must be a positive integer")

// File is the on-disk JSONC shape. Every field is optional; an absent
// field keeps whatever default or earlier-precedence value was already
// in effect.
type File struct {
	MaxStrings   *uint32 `json:"max_strings,omitempty"`
	TrackStrings *bool   `json:"track_strings,omitempty"`
}

// Load reads and parses a JSONC config file at path. A missing path is
// not an error: it simply yields a zero File, so callers fall back to
// defaults and CLI flags alone.
func Load(path string) (File, error) {
	if path == "" {
		return File{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return File{}, fmt.Errorf("config: invalid JSONC in %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(standardized, &f); err != nil {
		return File{}, fmt.Errorf("config: invalid JSON in %s: %w", path, err)
	}

	if f.MaxStrings != nil && *f.MaxStrings == 0 {
		return File{}, ErrInvalidMaxStrings
	}

	return f, nil
}

// Resolve merges defaults, the loaded file, and explicit CLI overrides
// into a strintern.Config, in that precedence order.
func Resolve(file File, cliMaxStrings uint32, cliTrackStrings, hasCLITrackStrings bool) strintern.Config {
	cfg := strintern.Config{
		MaxStrings:   strintern.DefaultMaxStrings,
		TrackStrings: false,
	}

	if file.MaxStrings != nil {
		cfg.MaxStrings = *file.MaxStrings
	}
	if file.TrackStrings != nil {
		cfg.TrackStrings = *file.TrackStrings
	}

	if cliMaxStrings != 0 {
		cfg.MaxStrings = cliMaxStrings
	}
	if hasCLITrackStrings {
		cfg.TrackStrings = cliTrackStrings
	}

	return cfg
}
