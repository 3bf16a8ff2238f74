// Package config locates and loads the foldercat configuration file.
//
// Values are layered in order: built-in defaults, the configuration file,
// then FOLDERCAT_* environment variables. Files may be JSON, YAML or TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/taigrr/foldercat/internal/types"
)

const (
	// AppName names the XDG config directory.
	AppName = "foldercat"

	// DefaultWatchPath is watched when the file does not name a path.
	DefaultWatchPath = "./watch_target"

	envPrefix = "FOLDERCAT_"

	filePatternsKey   = "file_patterns"
	folderPatternsKey = "folder_patterns"
	sharedPatternsKey = "patterns"
)

// envKeys maps the supported FOLDERCAT_* suffixes to config keys.
var envKeys = map[string]string{
	"WATCH_PATH": "watch_path",
	"LOG_LEVEL":  "log.level",
	"COLOR":      "color",
}

// ErrConfigNotFound is returned when no configuration file can be located.
var ErrConfigNotFound = errors.New("configuration file not found")

// Candidates are the file names searched for, in order.
var Candidates = []string{"config.json", "config.yaml", "config.yml", "config.toml"}

func defaults() map[string]any {
	return map[string]any{
		"watch_path": DefaultWatchPath,
		"log.level":  "warn",
		"color":      types.ColorAuto,
	}
}

// Load reads the configuration from path, or from the first candidate file
// found in the working directory or the XDG config directories when path is
// empty.
func Load(path string) (*types.Config, error) {
	source, err := Locate(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if err := k.Load(file.Provider(source), parserFor(source)); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", source, err)
	}

	// 3. Env vars
	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return envKeys[strings.TrimPrefix(s, envPrefix)]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}
	cfg.Source = source

	return cfg, nil
}

// Locate resolves the configuration file to read.
func Locate(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return "", fmt.Errorf("failed to stat config %s: %w", path, err)
		}
		return path, nil
	}

	for _, name := range Candidates {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}

	for _, name := range Candidates {
		if found, err := xdg.SearchConfigFile(filepath.Join(AppName, name)); err == nil {
			return found, nil
		}
	}

	return "", fmt.Errorf("%w: looked for %s in the working directory and %s",
		ErrConfigNotFound, strings.Join(Candidates, ", "), filepath.Join(xdg.ConfigHome, AppName))
}

// parserFor picks a parser by extension; anything unrecognised is read as YAML.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Parser()
	case ".toml":
		return toml.Parser()
	}
	return yaml.Parser()
}

func decode(k *koanf.Koanf) (*types.Config, error) {
	var cfg types.Config
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf(&cfg)); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// A single "patterns" block stands in for whichever per-kind block is absent.
	if k.Exists(sharedPatternsKey) {
		var shared types.Rules
		if err := k.UnmarshalWithConf(sharedPatternsKey, &shared, unmarshalConf(&shared)); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", sharedPatternsKey, err)
		}
		if !k.Exists(filePatternsKey) {
			cfg.FilePatterns = shared
		}
		if !k.Exists(folderPatternsKey) {
			cfg.FolderPatterns = shared
		}
	}

	if cfg.WatchPath == "" {
		cfg.WatchPath = DefaultWatchPath
	}
	switch cfg.Color {
	case types.ColorAuto, types.ColorAlways, types.ColorNever:
	default:
		return nil, fmt.Errorf("invalid color mode %q: want %s, %s or %s",
			cfg.Color, types.ColorAuto, types.ColorAlways, types.ColorNever)
	}

	return &cfg, nil
}

func unmarshalConf(result any) koanf.UnmarshalConf {
	return koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           result,
			WeaklyTypedInput: true,
		},
	}
}
