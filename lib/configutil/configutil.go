package configutil

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/titanous/json5"
)

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

// LocalPath returns the override file that sits next to name,
// "banks-etl.json5" -> "banks-etl.local.json5".
func LocalPath(name string) string {
	prefixname, ext := splitExt(filepath.Base(name))
	return filepath.Join(
		filepath.Dir(name),
		fmt.Sprintf("%s.local.%s", prefixname, ext),
	)
}

func readJson5[T any](path string, out *T) (bool, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(contents) == 0 {
		return false, nil
	}
	if err := json5.Unmarshal(contents, out); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

// readLayers decodes <name>.<ext> and then <name>.local.<ext> into out.
// Keys present in a file replace what out holds, absent keys are kept, so
// explicit zero values such as `[]` or `0` survive.
func readLayers[T any](name string, out *T) (bool, error) {
	foundDefault, err := readJson5(name, out)
	if err != nil {
		return false, err
	}

	localFilepath := LocalPath(name)
	foundLocal, err := readJson5(localFilepath, out)
	if err != nil {
		return false, err
	}
	if foundLocal {
		slog.Info("merging config with local overrides", "local", localFilepath)
	}
	return foundDefault || foundLocal, nil
}

// ReadConfig reads a json5 configuration file, `name` should come with a
// file extension. The following files are merged, where higher number is
// more prioritized.
// 1. <name>.<ext>
// 2. <name>.local.<ext>
//
// It returns os.ErrNotExist when neither file exists.
func ReadConfig[T any](name string) (T, error) {
	var out T
	found, err := readLayers(name, &out)
	if err != nil {
		return out, err
	}
	if !found {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadConfigWithDefaults is ReadConfig decoded over a copy of defaults,
// every key missing from both files keeps its default. Missing files are
// not an error and defaults is never modified.
func ReadConfigWithDefaults[T any](name string, defaults T) (T, error) {
	var out T
	seed, err := json.Marshal(defaults)
	if err != nil {
		return out, fmt.Errorf("encode defaults: %w", err)
	}
	if err := json5.Unmarshal(seed, &out); err != nil {
		return out, fmt.Errorf("copy defaults: %w", err)
	}

	found, err := readLayers(name, &out)
	if err != nil {
		return out, err
	}
	if !found {
		slog.Debug("no config file found, using defaults", "name", name)
	}
	return out, nil
}
