package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSettings_Defaults(t *testing.T) {
	cfg, err := FromSettings(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, Config{
		StoriesFile:      "./data/stories.json",
		EchoReplacements: true,
		GenreAttempts:    1,
		Color:            true,
	}, cfg)
}

func TestFromSettings_FileSettings(t *testing.T) {
	cfg, err := FromSettings(map[string]any{
		"madlibs_stories_file":      "stories.yaml",
		"madlibs_seed":              "7",
		"madlibs_echo_replacements": "false",
		"madlibs_genre_attempts":    "3",
		"unrelated":                 "ignored",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "stories.yaml", cfg.StoriesFile)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.False(t, cfg.EchoReplacements)
	assert.Equal(t, 3, cfg.GenreAttempts)
}

func TestFromSettings_EnvironmentWins(t *testing.T) {
	cfg, err := FromSettings(
		map[string]any{"madlibs_seed": "7"},
		[]string{"MADLIBS_SEED=99", "MADLIBS_COLOR=false"},
	)
	require.NoError(t, err)

	assert.Equal(t, uint64(99), cfg.Seed)
	assert.False(t, cfg.Color)
}

func TestFromSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
	}{
		{"zero attempts", []string{"MADLIBS_GENRE_ATTEMPTS=0"}},
		{"empty stories file", []string{"MADLIBS_STORIES_FILE= "}},
		{"bad seed", []string{"MADLIBS_SEED=lots"}},
		{"bad bool", []string{"MADLIBS_VERBOSE=maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSettings(nil, tt.environ)
			assert.Error(t, err)
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte("MADLIBS_SEED=5\n"), 0o644))
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	v := viper.New()
	used, err := ReadFile(v)
	require.NoError(t, err)
	assert.Equal(t, "app.env", filepath.Base(used))

	cfg, err := FromSettings(v.AllSettings(), nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), cfg.Seed)
}

func TestReadFile_Missing(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	used, err := ReadFile(viper.New())
	require.NoError(t, err)
	assert.Empty(t, used)
}
