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

package tournament

import (
	"fmt"

	"laptudirm.com/x/secretary/pkg/game"
	"laptudirm.com/x/secretary/pkg/strategy"
)

// NewDeathMatch creates a death match between two of the setup's players,
// which is won by the first player to win goal matches. The two players
// are picked with the setup's input; without one, the setup must have
// exactly two players.
func NewDeathMatch(setup Setup, goal int) (*DeathMatch, error) {
	if err := setup.validate(1); err != nil {
		return nil, err
	}

	if goal < 1 {
		return nil, fmt.Errorf("%w: win goal %d is not positive", ErrInvalidConfig, goal)
	}

	if setup.Input == nil && len(setup.Players) != 2 {
		return nil, fmt.Errorf("%w: death match needs exactly 2 players or an input to pick them", ErrInvalidConfig)
	}

	return &DeathMatch{arena: arena{Setup: setup}, Goal: goal}, nil
}

// DeathMatch is a "first to goal wins" tournament between two players.
// Drawn matches don't count for either player.
type DeathMatch struct {
	arena

	Goal int

	// Number of matches after which the death match is abandoned if
	// nobody has reached the goal. Zero means no limit.
	MaxMatches int

	Players [2]game.Player
	Wins    [2]int
	Winner  string
}

func (dm *DeathMatch) Start() error {
	if err := dm.begin(); err != nil {
		return err
	}

	if err := dm.pick(); err != nil {
		return err
	}

	for max(dm.Wins[0], dm.Wins[1]) < dm.Goal {
		if dm.MaxMatches > 0 && dm.matches >= dm.MaxMatches {
			return fmt.Errorf("%w: %d matches without reaching %d wins", ErrMatchLimit, dm.matches, dm.Goal)
		}

		match, err := dm.play(dm.Players[0], dm.Players[1])
		if err != nil {
			return err
		}

		if w := match.Outcome.Winner(); w >= 0 {
			dm.Wins[w]++
		}

		dm.record(DeathMatchRecord{
			Match:  match.Number,
			Sides:  match.sides(),
			Winner: match.Winner(),
		})

		logMatch("DeathMatch ", match)
	}

	dm.Winner = dm.Players[0].Name()
	if dm.Wins[1] > dm.Wins[0] {
		dm.Winner = dm.Players[1].Name()
	}

	return nil
}

// pick chooses the two players of the death match.
func (dm *DeathMatch) pick() error {
	if dm.Input == nil {
		dm.Players = [2]game.Player{dm.Setup.Players[0], dm.Setup.Players[1]}
		return nil
	}

	names := dm.Names()
	for i := range dm.Players {
		choice, err := dm.Input.Select(fmt.Sprintf("player %d - choose strategy:", i+1), names)
		if err != nil {
			return err
		}

		dm.Players[i] = dm.Setup.Players[choice]
	}

	// The same strategy may play itself, but the sides need telling apart.
	if name := dm.Players[0].Name(); name == dm.Players[1].Name() {
		dm.Players[0] = strategy.Named(name+" #1", dm.Players[0])
		dm.Players[1] = strategy.Named(name+" #2", dm.Players[1])
	}

	return nil
}
