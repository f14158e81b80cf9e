package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Alucard666haku/front-end-ludo-app/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LUDO_CONFIG", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.NumPlayers)
	assert.Equal(t, 4, cfg.PawnsPerPlayer)
	assert.Equal(t, 5, cfg.PathLength)
	assert.Equal(t, engine.DefaultRollFrames, cfg.RollFrames)
	assert.False(t, cfg.AdvisorEnabled())
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ludo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_players: 6\npath_length: 9\nlog_level: debug\n"), 0644))

	t.Setenv("LUDO_CONFIG", path)
	t.Setenv("LUDO_PATH_LENGTH", "12")
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.NumPlayers, "from file")
	assert.Equal(t, 4, cfg.PawnsPerPlayer, "default kept")
	assert.Equal(t, 12, cfg.PathLength, "env wins over file")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.AdvisorEnabled())
}

func TestLoadExplicitFileKeepsEnvOnTop(t *testing.T) {
	dir := t.TempDir()
	flagFile := filepath.Join(dir, "flag.yaml")
	envFile := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(flagFile, []byte("num_players: 6\npawns_per_player: 2\n"), 0644))
	require.NoError(t, os.WriteFile(envFile, []byte("num_players: 8\npawns_per_player: 5\n"), 0644))

	t.Setenv("LUDO_CONFIG", envFile)
	t.Setenv("LUDO_PLAYERS", "3")

	cfg, err := Load(flagFile)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.NumPlayers, "env wins over the file")
	assert.Equal(t, 2, cfg.PawnsPerPlayer, "explicit file replaces LUDO_CONFIG")
}

func TestLoadConfigRejectsDegenerate(t *testing.T) {
	t.Setenv("LUDO_CONFIG", "")
	t.Setenv("LUDO_PATH_LENGTH", "0")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, engine.ErrDegenerateConfiguration)
}

func TestLoadConfigBadEnv(t *testing.T) {
	t.Setenv("LUDO_CONFIG", "")
	t.Setenv("LUDO_PLAYERS", "many")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	cfg := Default()
	err := cfg.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRollFrames(t *testing.T) {
	cfg := Default()
	cfg.RollFrames = 0
	assert.Error(t, cfg.Validate())
}
