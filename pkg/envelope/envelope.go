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

// Package envelope implements the envelopes of the secretary game and the
// sets which hold them while a strategy plays.
package envelope

import "fmt"

// Envelope is a container holding one hidden amount of money. The amount
// can't be changed once the envelope has been created.
type Envelope struct {
	amount float64
}

// New creates a new envelope containing the given amount.
func New(amount float64) *Envelope {
	return &Envelope{amount: amount}
}

// Amount returns the amount of money inside the envelope.
func (envelope *Envelope) Amount() float64 {
	return envelope.amount
}

func (envelope *Envelope) String() string {
	return fmt.Sprintf("$%g", envelope.amount)
}

// Set is an ordered collection of envelopes owned by a single player for the
// duration of a game. Opening an envelope removes it from the set.
type Set struct {
	envelopes []*Envelope
	opened    []*Envelope
}

// NewSet creates a new Set with one envelope for each of the given amounts,
// in the same order.
func NewSet(amounts ...float64) *Set {
	set := &Set{envelopes: make([]*Envelope, len(amounts))}
	for i, amount := range amounts {
		set.envelopes[i] = New(amount)
	}

	return set
}

// Len returns the number of unopened envelopes in the set.
func (set *Set) Len() int {
	return len(set.envelopes)
}

// At returns the unopened envelope at the given index.
func (set *Set) At(index int) *Envelope {
	return set.envelopes[index]
}

// Open removes the envelope at the given index from the set and returns it.
// The order of the remaining envelopes is preserved.
func (set *Set) Open(index int) *Envelope {
	opened := set.envelopes[index]
	set.envelopes = append(set.envelopes[:index], set.envelopes[index+1:]...)
	set.opened = append(set.opened, opened)
	return opened
}

// Remaining returns the unopened envelopes in their current order.
func (set *Set) Remaining() []*Envelope {
	return append([]*Envelope(nil), set.envelopes...)
}

// Opened returns the envelopes opened so far, in the order of opening.
func (set *Set) Opened() []*Envelope {
	return append([]*Envelope(nil), set.opened...)
}

// Contains reports whether the given envelope is one of the set's unopened
// envelopes.
func (set *Set) Contains(envelope *Envelope) bool {
	for _, e := range set.envelopes {
		if e == envelope {
			return true
		}
	}

	return false
}

// Best returns the largest amount among every envelope that has been in the
// set, opened or not. An empty set has a best amount of 0.
func (set *Set) Best() float64 {
	best := 0.0
	for _, e := range set.envelopes {
		best = max(best, e.amount)
	}

	for _, e := range set.opened {
		best = max(best, e.amount)
	}

	return best
}

// Amounts returns the amounts of the unopened envelopes in order.
func (set *Set) Amounts() []float64 {
	amounts := make([]float64, len(set.envelopes))
	for i, e := range set.envelopes {
		amounts[i] = e.amount
	}

	return amounts
}

// Clone returns an independent set holding fresh envelopes with the same
// amounts as the unopened envelopes of this set.
func (set *Set) Clone() *Set {
	return NewSet(set.Amounts()...)
}
