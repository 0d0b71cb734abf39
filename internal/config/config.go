// Package config persists Examine's settings as TOML and watches the file
// for external changes.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"

	"github.com/mscrnt/examine/internal/logging"
)

// CurrentVersion is bumped whenever the settings schema changes. A file with
// a different version is replaced by defaults on the next save.
const CurrentVersion = 1

// Config holds the persisted application settings.
type Config struct {
	Version          int    `toml:"version"`
	StartPage        string `toml:"start_page"`
	SidebarCollapsed bool   `toml:"sidebar_collapsed"`
	LogLevel         string `toml:"log_level"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Version:   CurrentVersion,
		StartPage: "distribution",
		LogLevel:  "info",
	}
}

// Paths returns the config directory and file locations.
func Paths() (dir, file string) {
	home, _ := os.UserHomeDir()
	dir = filepath.Join(home, ".config", "examine")
	file = filepath.Join(dir, "config.toml")
	return
}

// Load reads the config file, returning defaults when it is missing,
// unreadable, or from an incompatible schema version.
func Load() Config {
	_, file := Paths()
	return loadFrom(file)
}

func loadFrom(file string) Config {
	cfg := Default()
	if _, err := toml.DecodeFile(file, &cfg); err != nil {
		if !os.IsNotExist(err) {
			logging.Warnf("config load failed, using defaults: %v", err)
		}
		return Default()
	}
	if cfg.Version != CurrentVersion {
		logging.Warnf("config version %d unsupported, using defaults", cfg.Version)
		return Default()
	}
	return cfg
}

// Save writes the config file, creating the directory as needed.
func Save(cfg Config) error {
	dir, file := Paths()
	return saveTo(dir, file, cfg)
}

func saveTo(dir, file string, cfg Config) error {
	cfg.Version = CurrentVersion
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Watch delivers a fresh Config on the returned channel whenever the config
// file changes on disk. The returned stop function releases the watcher.
func Watch() (<-chan Config, func(), error) {
	dir, file := Paths()
	return watchPath(dir, file)
}

func watchPath(dir, file string) (<-chan Config, func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("config watcher: %w", err)
	}
	// Watch the directory: editors and Save both replace the file, which
	// drops a watch set on the file itself.
	if err := os.MkdirAll(dir, 0o755); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("watch config dir: %w", err)
	}

	updates := make(chan Config, 1)
	go func() {
		defer close(updates)
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != file {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				select {
				case updates <- loadFrom(file):
				default:
					// A pending update is already queued; the latest load
					// will be picked up on the next event.
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Warnf("config watcher error: %v", err)
			}
		}
	}()

	stop := func() { watcher.Close() }
	return updates, stop, nil
}
