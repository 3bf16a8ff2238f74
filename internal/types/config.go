package types

// Color modes accepted by Config.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type (
	// Config is the resolved foldercat configuration.
	Config struct {
		WatchPath      string    `json:"watch_path" yaml:"watch_path" koanf:"watch_path"`
		FilePatterns   Rules     `json:"file_patterns" yaml:"file_patterns" koanf:"file_patterns"`
		FolderPatterns Rules     `json:"folder_patterns" yaml:"folder_patterns" koanf:"folder_patterns"`
		Ignore         []string  `json:"ignore,omitempty" yaml:"ignore,omitempty" koanf:"ignore"`
		Log            LogConfig `json:"log" yaml:"log" koanf:"log"`
		Color          string    `json:"color" yaml:"color" koanf:"color"`

		// Source is the file the configuration was read from.
		Source string `json:"-" yaml:"-" koanf:"-"`
	}

	// LogConfig controls diagnostic logging.
	LogConfig struct {
		Level string `json:"level" yaml:"level" koanf:"level"`
	}
)
