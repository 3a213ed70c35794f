package game_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/secretary/pkg/envelope"
	"laptudirm.com/x/secretary/pkg/game"
)

// scripted is a player which opens the envelopes at the given indices and
// then selects the envelope at the select index, if any.
type scripted struct {
	open   []int
	choose int
	err    error
}

func (s *scripted) Name() string { return "Scripted" }

func (s *scripted) Play(set *envelope.Set) (*envelope.Envelope, error) {
	if s.err != nil {
		return nil, s.err
	}

	for _, i := range s.open {
		set.Open(i)
	}

	if s.choose < 0 {
		return nil, nil
	}

	return set.At(s.choose), nil
}

func TestPlaySelection(t *testing.T) {
	set := envelope.NewSet(10, 50, 20)

	result, err := game.Play(&scripted{open: []int{1}, choose: 1}, set)
	require.NoError(t, err)

	assert.Equal(t, "Scripted", result.Player)
	assert.Equal(t, game.Selection, result.Kind)
	assert.Equal(t, 20.0, result.Selected)
	assert.Equal(t, 50.0, result.Max, "opened envelopes count towards the best amount")
	assert.Equal(t, 1, result.Opened)
	assert.False(t, result.Success)
	assert.InDelta(t, 0.4, result.Ratio, 1e-9)
}

func TestPlaySuccess(t *testing.T) {
	result, err := game.Play(&scripted{choose: 1}, envelope.NewSet(10, 50, 20))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1.0, result.Ratio)
	assert.Equal(t, 0, result.Opened)
}

func TestPlayNoSelection(t *testing.T) {
	result, err := game.Play(&scripted{open: []int{0, 0, 0}, choose: -1}, envelope.NewSet(10, 50, 20))
	require.NoError(t, err)

	assert.Equal(t, game.NoSelection, result.Kind)
	assert.Equal(t, 0.0, result.Selected)
	assert.Equal(t, 50.0, result.Max)
	assert.Equal(t, 3, result.Opened)
	assert.False(t, result.Success)
	assert.Equal(t, 0.0, result.Ratio)
}

func TestPlayZeroAmounts(t *testing.T) {
	result, err := game.Play(&scripted{choose: 0}, envelope.NewSet(0, 0))
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Ratio)
	assert.True(t, result.Success)
}

func TestPlayEmptySet(t *testing.T) {
	_, err := game.Play(&scripted{choose: 0}, envelope.NewSet())
	assert.ErrorIs(t, err, game.ErrNoEnvelopes)
}

func TestPlayPlayerError(t *testing.T) {
	boom := errors.New("boom")
	_, err := game.Play(&scripted{err: boom}, envelope.NewSet(1))
	assert.ErrorIs(t, err, boom)
}

func TestRatioBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		amounts := make([]float64, 1+rng.Intn(10))
		for j := range amounts {
			amounts[j] = float64(rng.Intn(5))
		}

		set := envelope.NewSet(amounts...)
		choose := rng.Intn(len(amounts))

		result, err := game.Play(&scripted{choose: choose}, set)
		require.NoError(t, err)

		if result.Max > 0 {
			assert.GreaterOrEqual(t, result.Ratio, 0.0)
			assert.LessOrEqual(t, result.Ratio, 1.0)
		} else {
			assert.Equal(t, 0.0, result.Ratio)
		}

		assert.Equal(t, result.Selected == result.Max, result.Success)
	}
}

func TestCompare(t *testing.T) {
	low := game.Result{Ratio: 0.25}
	high := game.Result{Ratio: 0.5}

	assert.Equal(t, game.Player1Wins, game.Compare(high, low))
	assert.Equal(t, game.Player2Wins, game.Compare(low, high))
	assert.Equal(t, game.Draw, game.Compare(high, high))

	assert.Equal(t, 0, game.Player1Wins.Winner())
	assert.Equal(t, 1, game.Player2Wins.Winner())
	assert.Equal(t, -1, game.Draw.Winner())
	assert.Equal(t, "1/2-1/2", game.Draw.String())
}
