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

// Package game implements a single play of the envelope game and the rule
// used to compare the results of two plays.
package game

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/secretary/pkg/envelope"
)

// Player is a decision procedure which opens zero or more envelopes from a
// set and selects at most one of the envelopes still in it.
type Player interface {
	Name() string
	Play(set *envelope.Set) (*envelope.Envelope, error)
}

var ErrNoEnvelopes = errors.New("game: no envelopes to play with")

// Play runs the given player once on the given set, which it mutates, and
// reduces the state of the set before and after the play into a Result.
func Play(player Player, set *envelope.Set) (Result, error) {
	if set.Len() == 0 {
		return Result{}, fmt.Errorf("%s: %w", player.Name(), ErrNoEnvelopes)
	}

	before := set.Len()

	selected, err := player.Play(set)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", player.Name(), err)
	}

	after := set.Len()

	// The best amount available in this play, including the envelopes
	// which were opened and thrown away.
	best := set.Best()

	result := Result{
		Player: player.Name(),
		Max:    best,
		Opened: before - after,
		Kind:   NoSelection,
	}

	if selected != nil {
		result.Kind = Selection
		result.Selected = selected.Amount()
		result.Max = max(result.Max, result.Selected)
	}

	// Without a selection there is nothing to succeed with, even when
	// every envelope was empty.
	result.Success = result.Kind == Selection && result.Selected == result.Max
	if result.Max > 0 {
		result.Ratio = result.Selected / result.Max
	}

	logrus.WithFields(logrus.Fields{
		"player":   result.Player,
		"selected": result.Selected,
		"max":      result.Max,
		"opened":   result.Opened,
	}).Debug("Game finished")

	return result, nil
}

// Kind tells whether a play ended with a selected envelope.
type Kind int

const (
	NoSelection Kind = iota
	Selection
)

func (kind Kind) String() string {
	if kind == Selection {
		return "selection"
	}

	return "no-selection"
}

// Result is the outcome of a single play.
type Result struct {
	Player string

	Selected float64 // Amount in the selected envelope, 0 if none.
	Max      float64 // Best amount which was available.
	Opened   int     // Number of envelopes opened.

	Success bool    // Whether the best envelope was selected.
	Ratio   float64 // Selected / Max, 0 if Max is 0.

	Kind Kind
}

func (result Result) String() string {
	if result.Kind == NoSelection {
		return fmt.Sprintf(
			"%s: no envelope selected (max=$%g, opened=%d)",
			result.Player, result.Max, result.Opened,
		)
	}

	return fmt.Sprintf(
		"%s: selected $%g (max=$%g, opened=%d, success=%t, ratio=%.2f)",
		result.Player, result.Selected, result.Max, result.Opened, result.Success, result.Ratio,
	)
}
