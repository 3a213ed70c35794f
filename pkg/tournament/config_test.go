package tournament_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/secretary/pkg/envelope"
	"laptudirm.com/x/secretary/pkg/strategy"
	"laptudirm.com/x/secretary/pkg/tournament"
)

func TestLoadConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "tour.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(heredoc.Doc(`
		format: championship
		seed: 12
		groups: 2
		envelopes:
		  count: 5
		  max: 100
		strategies:
		  - type: automatic
		  - type: lookahead
		    n: 4
		  - type: threshold
		    percent: 0.37
		    name: Secretary
	`)), 0644))

	config, err := tournament.LoadConfig(filename)
	require.NoError(t, err)

	assert.Equal(t, "championship", config.Format)
	assert.Equal(t, int64(12), config.Seed)
	assert.Equal(t, 2, config.Groups)
	assert.Equal(t, envelope.Config{Count: 5, Max: 100}, config.Envelopes)
	assert.Equal(t, []strategy.Config{
		{Type: "automatic"},
		{Type: "lookahead", N: 4},
		{Type: "threshold", Percent: 0.37, Name: "Secretary"},
	}, config.Strategies)
}

func TestLoadConfigEnvironment(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "tour.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("format: league\nseed: 3\n"), 0644))

	t.Setenv("SECRETARY_FORMAT", "deathmatch")
	t.Setenv("SECRETARY_WIN_GOAL", "7")
	t.Setenv("SECRETARY_PICKS", "2,1")
	t.Setenv("SECRETARY_ENVELOPES_COUNT", "20")

	config, err := tournament.LoadConfig(filename)
	require.NoError(t, err)

	assert.Equal(t, "deathmatch", config.Format)
	assert.Equal(t, int64(3), config.Seed, "unset variables keep the file's value")
	assert.Equal(t, 7, config.WinGoal)
	assert.Equal(t, []int{2, 1}, config.Picks)
	assert.Equal(t, 20, config.Envelopes.Count)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := tournament.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	filename := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("seed: [1, 2"), 0644))

	_, err = tournament.LoadConfig(filename)
	assert.Error(t, err)

	t.Setenv("SECRETARY_SEED", "soon")
	_, err = tournament.LoadConfig("")
	assert.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	var config tournament.Config
	config.Defaults()

	assert.Equal(t, "round-robin", config.Format)
	assert.Equal(t, tournament.DefaultStrategies, config.Strategies)
	assert.Equal(t, tournament.DefaultWinGoal, config.WinGoal)
	assert.Equal(t, tournament.DefaultRounds, config.Rounds)
	assert.Equal(t, tournament.DefaultGroups, config.Groups)
	assert.Equal(t, envelope.Config{Count: 10, Min: 1, Max: 1000}, config.Envelopes)
	assert.NoError(t, config.Validate())

	config.MaxMatches = -1
	assert.ErrorIs(t, config.Validate(), tournament.ErrInvalidConfig)
}
