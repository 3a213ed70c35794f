// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package tournament

import (
	"fmt"
	"os"
	"slices"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/secretary/pkg/envelope"
	"laptudirm.com/x/secretary/pkg/strategy"
)

// Formats lists the available tournament formats.
var Formats = []string{"deathmatch", "round-robin", "elimination", "league", "championship"}

const (
	DefaultWinGoal = 5
	DefaultRounds  = 1
	DefaultGroups  = 2
)

// EnvPrefix is the prefix of the environment variables read by LoadConfig.
const EnvPrefix = "SECRETARY_"

type Config struct {
	// The tournament format, one of Formats.
	Format string `yaml:"format"`

	// The strategies participating in the tournament.
	Strategies []strategy.Config `yaml:"strategies"`

	// The envelopes dealt for every match.
	Envelopes envelope.Config `yaml:"envelopes"`

	// Seed for every random decision. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`

	WinGoal    int   `yaml:"win-goal"`    // Wins needed to take a death match.
	MaxMatches int   `yaml:"max-matches"` // Death match length limit, 0 for none.
	Picks      []int `yaml:"picks"`       // Death match players, by position.

	Rounds int `yaml:"rounds"` // Rounds of a round robin.
	Groups int `yaml:"groups"` // Groups of a championship.

	// File to store the match history at.
	Log string `yaml:"log"`
}

// environment holds the settings which can be overridden from the
// environment, like SECRETARY_SEED=42.
type environment struct {
	Format     string `env:"FORMAT"`
	Seed       int64  `env:"SEED"`
	WinGoal    int    `env:"WIN_GOAL"`
	MaxMatches int    `env:"MAX_MATCHES"`
	Picks      []int  `env:"PICKS"`
	Rounds     int    `env:"ROUNDS"`
	Groups     int    `env:"GROUPS"`
	Log        string `env:"LOG"`

	Envelopes envelope.Config `envPrefix:"ENVELOPES_"`
}

// LoadConfig reads a yaml config from the named file, if any, and applies
// the overrides found in the environment.
func LoadConfig(filename string) (Config, error) {
	var config Config

	if filename != "" {
		file, err := os.ReadFile(filename)
		if err != nil {
			return Config{}, err
		}

		if err := yaml.Unmarshal(file, &config); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", filename, err)
		}
	}

	var overrides environment
	if err := env.ParseWithOptions(&overrides, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	config.override(overrides)
	return config, nil
}

func (config *Config) override(overrides environment) {
	setString(&config.Format, overrides.Format)
	setString(&config.Log, overrides.Log)

	setInt(&config.WinGoal, overrides.WinGoal)
	setInt(&config.MaxMatches, overrides.MaxMatches)
	setInt(&config.Rounds, overrides.Rounds)
	setInt(&config.Groups, overrides.Groups)

	setInt(&config.Envelopes.Count, overrides.Envelopes.Count)
	setInt(&config.Envelopes.Min, overrides.Envelopes.Min)
	setInt(&config.Envelopes.Max, overrides.Envelopes.Max)

	if overrides.Seed != 0 {
		config.Seed = overrides.Seed
	}

	if len(overrides.Picks) > 0 {
		config.Picks = overrides.Picks
	}
}

func setString(field *string, value string) {
	if value != "" {
		*field = value
	}
}

func setInt(field *int, value int) {
	if value != 0 {
		*field = value
	}
}

// DefaultStrategies are the participants of a tournament whose config has
// none.
var DefaultStrategies = []strategy.Config{
	{Type: "automatic"},
	{Type: "lookahead", N: strategy.DefaultLookahead},
	{Type: "threshold", Percent: strategy.DefaultPercent},
	{Type: "threshold", Percent: 0.37},
}

// Defaults fills in the unset fields of the config.
func (config *Config) Defaults() {
	if config.Format == "" {
		config.Format = "round-robin"
	}

	if len(config.Strategies) == 0 {
		config.Strategies = slices.Clone(DefaultStrategies)
	}

	if config.WinGoal == 0 {
		config.WinGoal = DefaultWinGoal
	}

	if config.Rounds == 0 {
		config.Rounds = DefaultRounds
	}

	if config.Groups == 0 {
		config.Groups = DefaultGroups
	}

	config.Envelopes.Defaults()
}

// Validate checks the settings which don't depend on the format.
func (config Config) Validate() error {
	if !slices.Contains(Formats, config.Format) {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, config.Format)
	}

	if config.MaxMatches < 0 {
		return fmt.Errorf("%w: max-matches %d is negative", ErrInvalidConfig, config.MaxMatches)
	}

	return config.Envelopes.Validate()
}
