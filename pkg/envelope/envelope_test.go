package envelope_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/secretary/pkg/envelope"
)

func TestSetOpen(t *testing.T) {
	set := envelope.NewSet(10, 50, 20, 5)
	second := set.At(1)

	opened := set.Open(1)
	assert.Same(t, second, opened)
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []float64{10, 20, 5}, set.Amounts())
	assert.False(t, set.Contains(opened))
	assert.Len(t, set.Opened(), 1)

	// the best amount includes opened envelopes
	assert.Equal(t, 50.0, set.Best())
}

func TestSetCloneIsIndependent(t *testing.T) {
	set := envelope.NewSet(1, 2, 3)
	clone := set.Clone()

	clone.Open(0)
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, 2, clone.Len())
	assert.NotSame(t, set.At(1), clone.At(0))
	assert.Equal(t, set.At(1).Amount(), clone.At(0).Amount())
}

func TestEmptySetBest(t *testing.T) {
	assert.Equal(t, 0.0, envelope.NewSet().Best())
}

func TestDealerDefaults(t *testing.T) {
	dealer, err := envelope.NewDealer(envelope.Config{}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		set := dealer.Deal()
		require.Equal(t, envelope.DefaultCount, set.Len())
		for _, amount := range set.Amounts() {
			assert.GreaterOrEqual(t, amount, float64(envelope.DefaultMin))
			assert.LessOrEqual(t, amount, float64(envelope.DefaultMax))
		}
	}
}

func TestDealerInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config envelope.Config
	}{
		{name: "negative count", config: envelope.Config{Count: -1}},
		{name: "negative min", config: envelope.Config{Count: 3, Min: -5, Max: 10}},
		{name: "inverted range", config: envelope.Config{Count: 3, Min: 10, Max: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := envelope.NewDealer(tt.config, rand.New(rand.NewSource(1)))
			assert.ErrorIs(t, err, envelope.ErrInvalidConfig)
		})
	}
}
