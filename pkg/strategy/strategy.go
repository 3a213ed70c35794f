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

// Package strategy implements the decision procedures used to play the
// envelope game.
package strategy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"laptudirm.com/x/secretary/pkg/envelope"
	"laptudirm.com/x/secretary/pkg/game"
	"laptudirm.com/x/secretary/pkg/input"
)

// Strategy opens zero or more envelopes of the set it is given and selects
// at most one of the envelopes which are still in the set.
type Strategy = game.Player

const (
	DefaultLookahead = 3
	DefaultPercent   = 0.25
)

var ErrInvalidParameter = errors.New("strategy: invalid parameter")

// Config describes a strategy and its parameters.
type Config struct {
	Type string `yaml:"type"`
	Name string `yaml:"name,omitempty"` // Overrides the generated name.

	N       int     `yaml:"n,omitempty"`       // Envelopes opened by lookahead.
	Percent float64 `yaml:"percent,omitempty"` // Sample fraction for threshold.
}

// New creates the strategy described by the given config. The input
// provider is only used by the manual strategy and may be nil otherwise.
func New(config Config, rng envelope.Rand, provider input.Provider) (Strategy, error) {
	var strategy Strategy
	var err error

	switch config.Type {
	case "manual":
		if provider == nil {
			return nil, fmt.Errorf("new strategy: manual strategy needs an input provider")
		}
		strategy = NewManual(rng, provider)

	case "automatic", "":
		strategy = NewAutomatic(rng)

	case "lookahead":
		n := config.N
		if n == 0 {
			n = DefaultLookahead
		}
		strategy, err = NewLookahead(rng, n)

	case "threshold":
		percent := config.Percent
		if percent == 0 {
			percent = DefaultPercent
		}
		strategy, err = NewThreshold(rng, percent)

	default:
		return nil, fmt.Errorf("new strategy: invalid strategy type %s", config.Type)
	}

	if err != nil {
		return nil, err
	}

	if config.Name != "" {
		strategy = Named(config.Name, strategy)
	}

	return strategy, nil
}

// ParseConfig parses a strategy description of the form type[:parameter],
// like "lookahead:5" or "threshold:0.37".
func ParseConfig(description string) (Config, error) {
	kind, parameter, found := strings.Cut(strings.TrimSpace(description), ":")
	config := Config{Type: strings.ToLower(kind)}

	if !found {
		return config, nil
	}

	var err error
	switch config.Type {
	case "lookahead":
		config.N, err = strconv.Atoi(parameter)
	case "threshold":
		config.Percent, err = strconv.ParseFloat(parameter, 64)
	default:
		return Config{}, fmt.Errorf("parse strategy: %s takes no parameter", kind)
	}

	if err != nil {
		return Config{}, fmt.Errorf("parse strategy %q: %w", description, err)
	}

	return config, nil
}

// Type documents one of the available strategy types.
type Type struct {
	Name        string
	Parameter   string
	Description string
}

// Types lists the available strategy types.
var Types = []Type{
	{Name: "manual", Description: "A person decides when to stop opening envelopes"},
	{Name: "automatic", Description: "Keeps a random envelope without opening any"},
	{Name: "lookahead", Parameter: "n=3", Description: "Opens n envelopes and keeps a random one of the rest"},
	{Name: "threshold", Parameter: "percent=0.25", Description: "Samples a fraction, then keeps the first envelope beating it"},
}

// Named gives a strategy a different name.
func Named(name string, strategy Strategy) Strategy {
	return &named{Strategy: strategy, name: name}
}

type named struct {
	Strategy
	name string
}

func (n *named) Name() string {
	return n.name
}

// pick returns a uniformly random index into the set.
func pick(rng envelope.Rand, set *envelope.Set) int {
	return rng.Intn(set.Len())
}
