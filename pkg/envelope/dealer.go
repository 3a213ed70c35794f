// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package envelope

import (
	"errors"
	"fmt"
)

// Rand is the source of randomness used for dealing and playing. It is
// satisfied by *math/rand.Rand.
type Rand interface {
	// Intn returns a uniformly random integer in [0, n).
	Intn(n int) int
}

const (
	DefaultCount = 10
	DefaultMin   = 1
	DefaultMax   = 1000
)

// Config configures the envelopes dealt for every game.
type Config struct {
	Count int `yaml:"count" env:"COUNT"` // Number of envelopes in a set.
	Min   int `yaml:"min" env:"MIN"`     // Smallest possible amount.
	Max   int `yaml:"max" env:"MAX"`     // Largest possible amount.
}

// Defaults fills in the unset fields of the config.
func (config *Config) Defaults() {
	if config.Count == 0 {
		config.Count = DefaultCount
	}

	if config.Min == 0 && config.Max == 0 {
		config.Min, config.Max = DefaultMin, DefaultMax
	}
}

var ErrInvalidConfig = errors.New("envelope: invalid dealer config")

// Validate checks that sets can be dealt with the config.
func (config Config) Validate() error {
	switch {
	case config.Count < 1:
		return fmt.Errorf("%w: count %d is not positive", ErrInvalidConfig, config.Count)
	case config.Min < 0:
		return fmt.Errorf("%w: min %d is negative", ErrInvalidConfig, config.Min)
	case config.Max < config.Min:
		return fmt.Errorf("%w: max %d is less than min %d", ErrInvalidConfig, config.Max, config.Min)
	}

	return nil
}

// Dealer deals fresh envelope sets with whole amounts drawn uniformly from
// the configured range.
type Dealer struct {
	config Config
	rng    Rand
}

// NewDealer creates a new Dealer from the given config. Unset fields of the
// config are replaced by their defaults.
func NewDealer(config Config, rng Rand) (*Dealer, error) {
	config.Defaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Dealer{config: config, rng: rng}, nil
}

// Deal creates a new set of envelopes.
func (dealer *Dealer) Deal() *Set {
	amounts := make([]float64, dealer.config.Count)
	for i := range amounts {
		spread := dealer.config.Max - dealer.config.Min + 1
		amounts[i] = float64(dealer.config.Min + dealer.rng.Intn(spread))
	}

	return NewSet(amounts...)
}
