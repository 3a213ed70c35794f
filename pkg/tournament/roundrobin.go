package tournament

import (
	"fmt"

	"laptudirm.com/x/secretary/pkg/tournament/schedule"
)

// NewRoundRobin creates a round robin in which every pair of players meets
// once per round.
func NewRoundRobin(setup Setup, rounds int) (*RoundRobin, error) {
	if err := setup.validate(2); err != nil {
		return nil, err
	}

	if rounds < 1 {
		return nil, fmt.Errorf("%w: rounds %d is not positive", ErrInvalidConfig, rounds)
	}

	return &RoundRobin{
		arena:     arena{Setup: setup},
		Rounds:    rounds,
		Scheduler: &schedule.RoundRobin{},
		Table:     NewTable(setup.Names()),
	}, nil
}

// RoundRobin is a tournament where every player plays every other player
// once per round. A win is worth 3 points and a draw 1 point to each.
type RoundRobin struct {
	arena

	Rounds    int
	Scheduler schedule.Scheduler

	Table Table
}

func (rr *RoundRobin) Start() error {
	if err := rr.begin(); err != nil {
		return err
	}

	for round := 1; round <= rr.Rounds; round++ {
		for _, encounter := range schedule.Encounters(rr.Scheduler, len(rr.Players)) {
			p1, p2 := encounter[0], encounter[1]

			match, err := rr.play(rr.Players[p1], rr.Players[p2])
			if err != nil {
				return err
			}

			rr.Table.Record(p1, p2, match.Outcome)
			rr.record(RoundRobinRecord{
				Match:  match.Number,
				Round:  round,
				Sides:  match.sides(),
				Winner: match.Winner(),
			})

			logMatch(fmt.Sprintf("Round #%d ", round), match)
		}
	}

	return nil
}

// Standings returns the points of every player.
func (rr *RoundRobin) Standings() map[string]int {
	return rr.Table.Points()
}
