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

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/secretary/pkg/envelope"
)

// NewLookahead creates a strategy which opens n envelopes before keeping
// one. n has to be positive.
func NewLookahead(rng envelope.Rand, n int) (*Lookahead, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: lookahead n=%d is not positive", ErrInvalidParameter, n)
	}

	return &Lookahead{rng: rng, n: n}, nil
}

// Lookahead opens min(n, len(set)) random envelopes, discarding them, and
// then selects a random envelope from the rest.
type Lookahead struct {
	rng envelope.Rand
	n   int
}

func (lookahead *Lookahead) Name() string {
	return fmt.Sprintf("Lookahead(%d)", lookahead.n)
}

func (lookahead *Lookahead) Play(set *envelope.Set) (*envelope.Envelope, error) {
	for i := min(lookahead.n, set.Len()); i > 0; i-- {
		opened := set.Open(pick(lookahead.rng, set))
		logrus.Debugf("Opened envelope with %s", opened)
	}

	if set.Len() == 0 {
		logrus.Debug("No envelopes left to select.")
		return nil, nil
	}

	selected := set.At(pick(lookahead.rng, set))
	logrus.Debugf("Selected envelope with %s", selected)
	return selected, nil
}
