package tournament

import (
	"laptudirm.com/x/secretary/pkg/stats"
	"laptudirm.com/x/secretary/pkg/tournament/schedule"
)

// Legs of a league fixture. Both are played under the same rules.
var Legs = [2]string{"home", "away"}

// NewLeague creates a league in which every pair of players meets twice.
func NewLeague(setup Setup) (*League, error) {
	if err := setup.validate(2); err != nil {
		return nil, err
	}

	return &League{
		arena: arena{Setup: setup},
		Table: NewTable(setup.Names()),
		Pairs: make([]stats.Penta, len(setup.Players)),
	}, nil
}

// League is a tournament where every pair of players plays a home and an
// away match, and a full record of every player is kept. The two legs of a
// fixture also count as a game pair for the pentanomial elo estimate.
type League struct {
	arena

	Table Table
	Pairs []stats.Penta // By player position.
}

func (league *League) Start() error {
	if err := league.begin(); err != nil {
		return err
	}

	for _, encounter := range schedule.Encounters(&schedule.RoundRobin{}, len(league.Players)) {
		p1, p2 := encounter[0], encounter[1]

		var outcomes [2]int
		for i, leg := range Legs {
			match, err := league.play(league.Players[p1], league.Players[p2])
			if err != nil {
				return err
			}

			outcomes[i] = int(match.Outcome)
			league.Table.Record(p1, p2, match.Outcome)
			league.record(LeagueRecord{
				Match:  match.Number,
				Leg:    leg,
				Sides:  match.sides(),
				Winner: match.Winner(),
			})

			logMatch("League ", match)
		}

		league.Pairs[p1].Add(outcomes[0], outcomes[1])
		league.Pairs[p2].Add(-outcomes[0], -outcomes[1])
	}

	return nil
}
