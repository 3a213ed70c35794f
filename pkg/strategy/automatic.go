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
)

// NewAutomatic creates a strategy which keeps a random envelope.
func NewAutomatic(rng envelope.Rand) *Automatic {
	return &Automatic{rng: rng}
}

// Automatic selects a uniformly random envelope without opening any.
type Automatic struct {
	rng envelope.Rand
}

func (automatic *Automatic) Name() string {
	return "Automatic"
}

func (automatic *Automatic) Play(set *envelope.Set) (*envelope.Envelope, error) {
	selected := set.At(pick(automatic.rng, set))
	logrus.Debugf("Randomly selected envelope with %s", selected)
	return selected, nil
}
