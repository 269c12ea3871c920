package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func load(t *testing.T, args ...string) *Config {
	t.Helper()
	flags := NewFlagSet("test")
	require.NoError(t, flags.Parse(args))
	c, err := Load(flags)
	require.NoError(t, err)
	return c
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	c := load(t)

	assert.True(t, c.Production())
	assert.Equal(t, "easy", c.Difficulty)
	assert.Equal(t, Custom{Rows: 10, Cols: 10, Mines: 10}, c.Custom)
	assert.Equal(t, 10, c.Log.MaxSize)

	p, err := c.GameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.Easy, p)

	level, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, level)
}

func TestPrecedence(t *testing.T) {
	path := writeConfig(t, "mines.json", `{
		"mode": "development",
		"difficulty": "custom",
		"custom": {"rows": 5, "cols": 7, "mines": 6},
		"seed": 11,
		"log": {"level": "warn", "max_age": 1}
	}`)

	c := load(t, "--config", path)
	assert.True(t, c.Development())
	assert.Equal(t, uint64(11), c.Seed)
	assert.Equal(t, 1, c.Log.MaxAge)
	p, err := c.GameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Rows: 5, Cols: 7, MineCount: 6}, p)

	t.Setenv("MINES_SEED", "12")
	t.Setenv("MINES_LOG_LEVEL", "error")
	c = load(t, "-c", path)
	assert.Equal(t, uint64(12), c.Seed)
	level, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logrus.ErrorLevel, level)

	c = load(t, "-c", path, "--seed", "13", "--log-level", "trace", "-d", "hard")
	assert.Equal(t, uint64(13), c.Seed)
	assert.Equal(t, "trace", c.Log.Level)
	p, err = c.GameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.Hard, p)
}

func TestDevelopmentLogLevel(t *testing.T) {
	c := load(t, "--mode", "development")
	level, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)

	c.Log.Level = "loud"
	_, err = c.LogLevel()
	assert.Error(t, err)
}

func TestGameParams(t *testing.T) {
	tests := []struct {
		name string
		c    Config
		want mines.GameParams
		err  bool
	}{
		{"preset", Config{Difficulty: "Normal"}, mines.Normal, false},
		{"board wins", Config{Difficulty: "hard", Board: "3:4:5"}, mines.GameParams{Rows: 3, Cols: 4, MineCount: 5}, false},
		{"bad board", Config{Board: "3x4"}, mines.GameParams{}, true},
		{"unknown difficulty", Config{Difficulty: "insane"}, mines.GameParams{}, true},
		{"invalid custom", Config{Difficulty: "custom", Custom: Custom{Rows: 2, Cols: 2, Mines: 4}}, mines.GameParams{}, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := test.c.GameParams()
			if test.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, p)
		})
	}

	_, err := Config{Difficulty: "custom", Custom: Custom{Rows: 0, Cols: 2}}.GameParams()
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)
}

func TestRand(t *testing.T) {
	a, b := Config{Seed: 9}.Rand(), Config{Seed: 9}.Rand()
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotNil(t, Config{}.Rand())
}

func TestMissingConfigFile(t *testing.T) {
	flags := NewFlagSet("test")
	require.NoError(t, flags.Parse([]string{"-c", filepath.Join(t.TempDir(), "nope.yaml")}))
	_, err := Load(flags)
	assert.Error(t, err)
}
