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
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/secretary/pkg/envelope"
)

// NewThreshold creates a strategy which samples the given fraction of the
// envelopes before looking for a better one. percent has to be in [0, 1];
// about 0.37 is the classical optimum of the secretary problem.
func NewThreshold(rng envelope.Rand, percent float64) (*Threshold, error) {
	if percent < 0 || percent > 1 || math.IsNaN(percent) {
		return nil, fmt.Errorf("%w: threshold percent=%g is not in [0, 1]", ErrInvalidParameter, percent)
	}

	return &Threshold{rng: rng, percent: percent}, nil
}

// Threshold opens floor(len(set) * percent) random envelopes and remembers
// the best amount among them. It then scans the rest in order and selects
// the first envelope which beats that amount. When there is none, the best
// sampled envelope is kept.
type Threshold struct {
	rng     envelope.Rand
	percent float64
}

func (threshold *Threshold) Name() string {
	return fmt.Sprintf("Threshold(%.4g%%)", threshold.percent*100)
}

// SampleSize returns the number of envelopes sampled from a set of n.
func (threshold *Threshold) SampleSize(n int) int {
	return min(n, int(float64(n)*threshold.percent))
}

func (threshold *Threshold) Play(set *envelope.Set) (*envelope.Envelope, error) {
	// best is nil until some envelope has been sampled, and anything
	// beats an empty sample.
	var best *envelope.Envelope

	for i := threshold.SampleSize(set.Len()); i > 0; i-- {
		opened := set.Open(pick(threshold.rng, set))
		logrus.Debugf("Opened envelope with %s", opened)

		if best == nil || opened.Amount() > best.Amount() {
			best = opened
		}
	}

	for _, candidate := range set.Remaining() {
		logrus.Tracef("Checking envelope with %s", candidate)
		if best == nil || candidate.Amount() > best.Amount() {
			logrus.Debugf("Found better envelope with %s", candidate)
			return candidate, nil
		}
	}

	if best != nil {
		logrus.Debugf("No better envelope found, keeping %s", best)
	}

	return best, nil
}
