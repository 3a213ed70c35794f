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

// Package tournament implements the tournament formats in which envelope
// game strategies are compared against each other.
package tournament

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/secretary/pkg/envelope"
	"laptudirm.com/x/secretary/pkg/game"
	"laptudirm.com/x/secretary/pkg/input"
	"laptudirm.com/x/secretary/pkg/strategy"
)

// Tournament is one of the tournament formats. A tournament is started
// exactly once, after which its results can be reported.
type Tournament interface {
	Start() error
	Report(w io.Writer)
	History() []Record
}

var (
	ErrAlreadyStarted = errors.New("tournament: already started")
	ErrTooFewPlayers  = errors.New("tournament: too few players")
	ErrDuplicateName  = errors.New("tournament: duplicate player name")
	ErrInvalidConfig  = errors.New("tournament: invalid config")
	ErrUnevenPlayoffs = errors.New("tournament: playoffs can't be paired")
	ErrMatchLimit     = errors.New("tournament: match limit reached")
)

// New creates the tournament described by the given config. The provider
// is used by manual strategies and to pick the death match players.
func New(config Config, provider input.Provider) (Tournament, error) {
	config.Defaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logrus.WithFields(logrus.Fields{
		"format": config.Format,
		"seed":   seed,
	}).Debug("Setting up tournament")

	rng := rand.New(rand.NewSource(seed))

	dealer, err := envelope.NewDealer(config.Envelopes, rng)
	if err != nil {
		return nil, err
	}

	setup := Setup{
		Dealer: dealer,
		Rand:   rng,
		Input:  provider,
	}

	for _, strategyConfig := range config.Strategies {
		player, err := strategy.New(strategyConfig, rng, provider)
		if err != nil {
			return nil, err
		}

		setup.Players = append(setup.Players, player)
	}

	switch config.Format {
	case "deathmatch":
		if len(config.Picks) > 0 {
			setup.Input = &input.Script{Choices: config.Picks}
		}

		tour, err := NewDeathMatch(setup, config.WinGoal)
		if err != nil {
			return nil, err
		}

		tour.MaxMatches = config.MaxMatches
		return tour, nil

	case "round-robin":
		return NewRoundRobin(setup, config.Rounds)
	case "elimination":
		return NewElimination(setup)
	case "league":
		return NewLeague(setup)
	case "championship":
		return NewChampionship(setup, config.Groups)
	default:
		return nil, fmt.Errorf("new tour: invalid format %s", config.Format)
	}
}

// Setup holds everything a tournament needs to play its matches.
type Setup struct {
	// The players participating in the tournament, in seeding order.
	Players []game.Player

	// Dealer deals the envelopes for every match.
	Dealer *envelope.Dealer

	// Rand breaks ties where a format requires a winner.
	Rand envelope.Rand

	// Input picks players where a format requires it. May be nil.
	Input input.Provider
}

// Names returns the names of the players.
func (setup Setup) Names() []string {
	names := make([]string, len(setup.Players))
	for i, player := range setup.Players {
		names[i] = player.Name()
	}

	return names
}

func (setup Setup) validate(least int) error {
	if len(setup.Players) < least {
		return fmt.Errorf("%w: need at least %d, got %d", ErrTooFewPlayers, least, len(setup.Players))
	}

	if setup.Dealer == nil || setup.Rand == nil {
		return fmt.Errorf("%w: missing dealer or rand", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(setup.Players))
	for _, name := range setup.Names() {
		if seen[name] {
			return fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}

		seen[name] = true
	}

	return nil
}

// arena contains the state shared by every tournament format: it plays the
// matches and keeps the history.
type arena struct {
	Setup

	history []Record
	matches int
	started bool
}

// Match is a single match between two players, in which both players play
// the same deal of envelopes.
type Match struct {
	Number  int
	Names   [2]string
	Results [2]game.Result
	Outcome game.Outcome
}

// Winner returns the name of the winner or DrawLabel.
func (match Match) Winner() string {
	if w := match.Outcome.Winner(); w >= 0 {
		return match.Names[w]
	}

	return DrawLabel
}

func (match Match) sides() [2]Side {
	return [2]Side{
		{Name: match.Names[0], Selected: match.Results[0].Selected, Ratio: match.Results[0].Ratio},
		{Name: match.Names[1], Selected: match.Results[1].Selected, Ratio: match.Results[1].Ratio},
	}
}

func (match Match) String() string {
	return fmt.Sprintf("%s vs %s: %s (%.2f-%.2f)",
		match.Names[0], match.Names[1], match.Winner(),
		match.Results[0].Ratio, match.Results[1].Ratio,
	)
}

func (arena *arena) begin() error {
	if arena.started {
		return ErrAlreadyStarted
	}

	arena.started = true
	return nil
}

// play plays a match between the two given players. Each player gets its
// own copy of one freshly dealt set, so neither can see the other's moves.
func (arena *arena) play(player1, player2 game.Player) (Match, error) {
	arena.matches++

	deal := arena.Dealer.Deal()
	match := Match{
		Number: arena.matches,
		Names:  [2]string{player1.Name(), player2.Name()},
	}

	var err error
	if match.Results[0], err = game.Play(player1, deal.Clone()); err != nil {
		return match, err
	}

	if match.Results[1], err = game.Play(player2, deal.Clone()); err != nil {
		return match, err
	}

	match.Outcome = game.Compare(match.Results[0], match.Results[1])
	return match, nil
}

func (arena *arena) record(record Record) {
	arena.history = append(arena.history, record)
}

// History returns the records of every match played so far.
func (arena *arena) History() []Record {
	return append([]Record(nil), arena.history...)
}

func logMatch(prefix string, match Match) {
	logrus.Infof("\x1b[32mFinished\x1b[0m %sMatch #%d: %s", prefix, match.Number, match)
}
