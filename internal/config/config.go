package config

import (
	"fmt"
	"os"

	"github.com/Alucard666haku/front-end-ludo-app/internal/engine"
	"github.com/Alucard666haku/front-end-ludo-app/internal/models"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	NumPlayers     int    `yaml:"num_players" env:"LUDO_PLAYERS"`
	PawnsPerPlayer int    `yaml:"pawns_per_player" env:"LUDO_PAWNS"`
	PathLength     int    `yaml:"path_length" env:"LUDO_PATH_LENGTH"`
	RollFrames     int    `yaml:"roll_frames" env:"LUDO_ROLL_FRAMES"`
	Seed           uint64 `yaml:"seed" env:"LUDO_SEED"`

	LogFile  string `yaml:"log_file" env:"LUDO_LOG_FILE"`
	LogLevel string `yaml:"log_level" env:"LUDO_LOG_LEVEL"`

	GeminiAPIKey string `yaml:"-" env:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"gemini_model" env:"LUDO_GEMINI_MODEL"`

	ConfigFile string `yaml:"-" env:"LUDO_CONFIG"`
}

// Default returns the settings of a fresh install: four players with four
// pawns each on five-cell paths.
func Default() *Config {
	return &Config{
		NumPlayers:     4,
		PawnsPerPlayer: 4,
		PathLength:     5,
		RollFrames:     engine.DefaultRollFrames,
		LogFile:        "ludo.log",
		LogLevel:       "info",
		GeminiModel:    "gemini-2.5-flash",
	}
}

// LoadConfig layers the defaults, the YAML file named by LUDO_CONFIG (if
// any) and the environment, later layers winning.
func LoadConfig() (*Config, error) {
	return Load("")
}

// Load is LoadConfig with file taking the place of LUDO_CONFIG when set.
// The environment still overrides whatever the file says.
func Load(file string) (*Config, error) {
	cfg := Default()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if file != "" {
		cfg.ConfigFile = file
	}
	if cfg.ConfigFile != "" {
		if err := cfg.LoadFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
		// the environment overrides the file
		if err := env.Parse(cfg); err != nil {
			return nil, fmt.Errorf("parse env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile merges the YAML file at path into c. Keys missing from the file
// keep their current value.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if err := engine.Validate(c.Game()); err != nil {
		return err
	}
	if c.RollFrames < 1 {
		return fmt.Errorf("roll_frames must be positive, got %d", c.RollFrames)
	}
	return nil
}

// Game is the part of the configuration the engine is built from.
func (c *Config) Game() models.GameConfiguration {
	return models.GameConfiguration{
		NumPlayers:     c.NumPlayers,
		PawnsPerPlayer: c.PawnsPerPlayer,
		PathLength:     c.PathLength,
	}
}

// AdvisorEnabled reports whether a Gemini key is available.
func (c *Config) AdvisorEnabled() bool {
	return c.GeminiAPIKey != ""
}
