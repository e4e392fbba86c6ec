package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/xolan/devjournal/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "devjournal"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DefaultJournalFile is the journal path used when nothing else is configured
	DefaultJournalFile = "journal.json"
	// MaxIDWidth is the widest zero-padding accepted for ids
	MaxIDWidth = 5
	// MaxBackups is the largest number of rotating backups accepted
	MaxBackups = 10
	// DefaultTheme is the browse theme used when none is configured
	DefaultTheme = "dracula"
)

// Environment variables that override the config file
const (
	EnvJournalFile = "JOURNAL_FILE"
	EnvLogLevel    = "JOURNAL_LOG_LEVEL"
)

// Accepted values for the enumerated settings
const (
	InsertAppend   = "append"
	InsertPrepend  = "prepend"
	LengthTruncate = "truncate"
	LengthReject   = "reject"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Config represents the application configuration
type Config struct {
	// JournalFile is the path of the JSON journal (relative paths resolve against the working directory)
	JournalFile string `toml:"journal_file"`
	// IDWidth zero-pads new ids to this many digits; 0 keeps them unpadded
	IDWidth int `toml:"id_width"`
	// InsertPosition places new entries at the end ("append") or the front ("prepend") of the file
	InsertPosition string `toml:"insert_position"`
	// LengthPolicy is "truncate" (cut overlong titles/content with a warning) or "reject"
	LengthPolicy string `toml:"length_policy"`
	// Backups is the number of rotating .bak.N copies kept before each save; 0 disables them
	Backups int `toml:"backups"`
	// LogLevel is the zap level for diagnostic logs on stderr
	LogLevel string `toml:"log_level"`
	// Theme is the color theme of the interactive browser
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with defaults matching the journal's documented behavior.
func DefaultConfig() Config {
	return Config{
		JournalFile:    DefaultJournalFile,
		IDWidth:        0,
		InsertPosition: InsertAppend,
		LengthPolicy:   LengthTruncate,
		Backups:        3,
		LogLevel:       "error",
		Theme:          DefaultTheme,
	}
}

// GetConfigPath returns the path to the config file.
// Uses the user config directory and creates the app directory if needed.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates the TOML config at path.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config at path, returning DefaultConfig when the file does not exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}

// LoadEnv loads variables from a .env file in the working directory, if present.
// Variables already set in the environment win.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}

// ApplyEnv returns cfg with JOURNAL_FILE and JOURNAL_LOG_LEVEL applied on top.
func (c Config) ApplyEnv() Config {
	if v, ok := osutil.Provider.LookupEnv(EnvJournalFile); ok && strings.TrimSpace(v) != "" {
		c.JournalFile = strings.TrimSpace(v)
	}
	if v, ok := osutil.Provider.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	return c
}

// Normalize lowercases enumerated values and fills blanks with defaults.
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	c.JournalFile = strings.TrimSpace(c.JournalFile)
	if c.JournalFile == "" {
		c.JournalFile = defaults.JournalFile
	}
	c.InsertPosition = strings.ToLower(strings.TrimSpace(c.InsertPosition))
	if c.InsertPosition == "" {
		c.InsertPosition = defaults.InsertPosition
	}
	c.LengthPolicy = strings.ToLower(strings.TrimSpace(c.LengthPolicy))
	if c.LengthPolicy == "" {
		c.LengthPolicy = defaults.LengthPolicy
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	c.Theme = strings.TrimSpace(c.Theme)
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// Validate checks every setting and reports the first invalid one.
func (c Config) Validate() error {
	if c.IDWidth < 0 || c.IDWidth > MaxIDWidth {
		return fmt.Errorf("invalid id_width %d: must be between 0 and %d", c.IDWidth, MaxIDWidth)
	}
	if c.InsertPosition != InsertAppend && c.InsertPosition != InsertPrepend {
		return fmt.Errorf("invalid insert_position %q: must be %q or %q", c.InsertPosition, InsertAppend, InsertPrepend)
	}
	if c.LengthPolicy != LengthTruncate && c.LengthPolicy != LengthReject {
		return fmt.Errorf("invalid length_policy %q: must be %q or %q", c.LengthPolicy, LengthTruncate, LengthReject)
	}
	if c.Backups < 0 || c.Backups > MaxBackups {
		return fmt.Errorf("invalid backups %d: must be between 0 and %d", c.Backups, MaxBackups)
	}
	valid := false
	for _, l := range validLogLevels {
		if c.LogLevel == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log_level %q: must be one of %s", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	return nil
}

// Encode renders the config as TOML.
func (c Config) Encode() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GenerateSampleConfig returns a commented config file with the default values.
func GenerateSampleConfig() string {
	d := DefaultConfig()
	return fmt.Sprintf(`# devjournal configuration file

# Path of the JSON journal. Relative paths resolve against the working directory.
# Overridden by the JOURNAL_FILE environment variable and the --file flag.
journal_file = %q

# Zero-pad new ids to this many digits (0 = "1", "2", ...; 5 = "00001", "00002", ...)
id_width = %d

# Where new entries go in the file: "append" or "prepend"
insert_position = %q

# Titles over 30 and content over 70 characters: "truncate" (with a warning) or "reject"
length_policy = %q

# Rotating backups (journal.json.bak.1 ...) written before every save; 0 disables them
backups = %d

# Diagnostic log level on stderr: debug, info, warn, error
log_level = %q

# Color theme of 'journal browse' (unknown names fall back to the default)
theme = %q
`, d.JournalFile, d.IDWidth, d.InsertPosition, d.LengthPolicy, d.Backups, d.LogLevel, d.Theme)
}
