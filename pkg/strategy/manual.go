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

package strategy

import (
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/secretary/pkg/envelope"
	"laptudirm.com/x/secretary/pkg/input"
)

// NewManual creates a strategy where a person decides, envelope by
// envelope, whether to stop.
func NewManual(rng envelope.Rand, provider input.Provider) *Manual {
	return &Manual{rng: rng, input: provider}
}

// Manual repeatedly draws a random envelope and asks whether to stop. On
// stop the drawn envelope is kept, otherwise it is opened and thrown away.
// If every envelope gets opened nothing is selected.
type Manual struct {
	rng   envelope.Rand
	input input.Provider
}

func (manual *Manual) Name() string {
	return "Manual"
}

func (manual *Manual) Play(set *envelope.Set) (*envelope.Envelope, error) {
	for set.Len() > 0 {
		index := pick(manual.rng, set)

		stop, err := manual.input.Stop(set.Len())
		if err != nil {
			return nil, err
		}

		if stop {
			logrus.Infof("Stopped manually with \x1b[32m%s\x1b[0m", set.At(index))
			return set.At(index), nil
		}

		logrus.Infof("Opened envelope with \x1b[33m%s\x1b[0m", set.Open(index))
	}

	logrus.Info("No envelopes left to select.")
	return nil, nil
}
