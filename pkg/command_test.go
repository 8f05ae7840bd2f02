package pkg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andrejsstepanovs/madlibs/pkg/config"
	domainerrors "github.com/andrejsstepanovs/madlibs/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCatalog = `{
  "adventure": ["A hero named <name> climbed <mountain>."],
  "romcom": ["<name> met <name> at <place>."],
  "family": ["The <family> family went to <place>."],
  "fantasy": ["A <creature> guarded the <treasure>."]
}`

func runCommand(t *testing.T, catalog, input string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	fs := afero.NewMemMapFs()
	if catalog != "" {
		require.NoError(t, afero.WriteFile(fs, "data/stories.json", []byte(catalog), 0o644))
	}

	cmd := newRootCommand(&app{
		fs:    fs,
		viper: viper.New(),
		newLogger: func(config.Config) (*zap.Logger, error) {
			return zap.NewNop(), nil
		},
	})

	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestPlay_EndToEnd(t *testing.T) {
	out, err := runCommand(t, testCatalog, "adventure\nLia\nEverest\n")
	require.NoError(t, err)

	assert.Equal(t, "Select a type of story (adventure, romcom, family, fantasy): \n"+
		"Random pick: A hero named <name> climbed <mountain>.\n"+
		"Enter a <name>: \n<name>: Lia\n"+
		"Enter a <mountain>: \n<mountain>: Everest\n"+
		"old word: <name>\nnew word: Lia\n"+
		"old word: <mountain>\nnew word: Everest\n"+
		"Your new story:\nA hero named Lia climbed Everest.\n", out)
}

func TestPlay_DuplicatePlaceholdersAskedOnce(t *testing.T) {
	out, err := runCommand(t, testCatalog, " RomCom \nSam\nthe park\n", "play")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "Enter a <name>"))
	assert.True(t, strings.HasSuffix(out, "Your new story:\nSam met Sam at the park.\n"), out)
}

func TestPlay_JSONSummary(t *testing.T) {
	out, err := runCommand(t, testCatalog, "fantasy\ndragon\ngold\n", "play", "--json", "--seed", "3")
	require.NoError(t, err)

	assert.Contains(t, out, `"story": "A dragon guarded the gold."`)
	assert.Contains(t, out, `"value": "dragon"`)
	assert.Contains(t, out, `"genre": "fantasy"`)
}

func TestPlay_InvalidGenre(t *testing.T) {
	out, err := runCommand(t, testCatalog, "horror\nLia\n")

	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrInvalidGenre))
	assert.NotContains(t, out, "Your new story:")
}

func TestPlay_GenreRetry(t *testing.T) {
	t.Setenv("MADLIBS_GENRE_ATTEMPTS", "2")

	out, err := runCommand(t, testCatalog, "horror\nfamily\nSmith\nthe zoo\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Please enter a valid story genre")
	assert.Contains(t, out, "The Smith family went to the zoo.")
}

func TestPlay_EchoDisabled(t *testing.T) {
	t.Setenv("MADLIBS_ECHO_REPLACEMENTS", "false")

	out, err := runCommand(t, testCatalog, "adventure\nLia\nEverest\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "old word:")
}

func TestPlay_EndOfInput(t *testing.T) {
	out, err := runCommand(t, testCatalog, "adventure\nLia\n")

	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrIOFailure))
	assert.NotContains(t, out, "Your new story:")
}

func TestPlay_MissingCatalog(t *testing.T) {
	out, err := runCommand(t, "", "adventure\n")

	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrDataUnavailable))
	assert.Empty(t, out)
}

func TestPlay_MalformedCatalog(t *testing.T) {
	_, err := runCommand(t, `{"adventure": ["x"]}`, "adventure\n")

	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrMalformedCatalog))
}

func TestGenres(t *testing.T) {
	out, err := runCommand(t, testCatalog, "", "genres")
	require.NoError(t, err)
	assert.Equal(t, "Adventure (1)\nRomcom (1)\nFamily (1)\nFantasy (1)\n", out)

	out, err = runCommand(t, testCatalog, "", "genres", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"romcom": 1`)
}

func TestCheck(t *testing.T) {
	out, err := runCommand(t, testCatalog, "", "check")
	require.NoError(t, err)

	assert.Contains(t, out, "romcom: 1 stories, 2 placeholders\n")
	assert.Contains(t, out, "catalog ok: ./data/stories.json\n")
}

func TestCheck_StoriesFlag(t *testing.T) {
	_, err := runCommand(t, testCatalog, "", "check", "--stories", "other.json")

	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrDataUnavailable))
}
