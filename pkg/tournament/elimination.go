package tournament

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/secretary/pkg/game"
	"laptudirm.com/x/secretary/pkg/tournament/schedule"
)

// NewElimination creates a knockout bracket between the setup's players,
// seeded in their given order.
func NewElimination(setup Setup) (*Elimination, error) {
	if err := setup.validate(2); err != nil {
		return nil, err
	}

	return &Elimination{arena: arena{Setup: setup}}, nil
}

// Elimination is a knockout tournament. In every round the survivors are
// paired in order, 0 vs 1, 2 vs 3, and so on; with an odd number of them the
// first survivor gets a bye instead. Drawn matches are decided at random.
type Elimination struct {
	arena

	Rounds   []BracketRound
	Champion string
}

// BracketRound is a single round of an elimination bracket.
type BracketRound struct {
	Number int
	Bye    string   // Player advancing without a match, if any.
	Losers []string // Players knocked out in this round.

	// Players left after the round, in the order they will be paired.
	Advanced []string
}

func (elim *Elimination) Start() error {
	if err := elim.begin(); err != nil {
		return err
	}

	players := append([]game.Player(nil), elim.Players...)
	for round := 1; len(players) > 1; round++ {
		bracket := BracketRound{Number: round}

		var next []game.Player
		if len(players)%2 == 1 {
			next = append(next, players[0])
			bracket.Bye = players[0].Name()
			players = players[1:]

			logrus.Infof("Round #%d: %s gets a \x1b[33mBYE\x1b[0m to the next round", round, bracket.Bye)
		}

		for _, encounter := range schedule.Encounters(&schedule.Knockout{}, len(players)) {
			match, err := elim.play(players[encounter[0]], players[encounter[1]])
			if err != nil {
				return err
			}

			winner, tieBreak := match.Outcome.Winner(), false
			if winner < 0 {
				winner, tieBreak = elim.Rand.Intn(2), true
			}

			next = append(next, players[encounter[winner]])
			bracket.Losers = append(bracket.Losers, match.Names[1-winner])

			elim.record(EliminationRecord{
				Round:    round,
				Sides:    match.sides(),
				Winner:   match.Names[winner],
				Loser:    match.Names[1-winner],
				TieBreak: tieBreak,
			})

			logrus.Infof(
				"\x1b[32mFinished\x1b[0m Round #%d Match #%d: %s vs %s -> %s",
				round, match.Number, match.Names[0], match.Names[1], match.Names[winner],
			)
		}

		players = next
		for _, player := range players {
			bracket.Advanced = append(bracket.Advanced, player.Name())
		}

		elim.Rounds = append(elim.Rounds, bracket)
	}

	elim.Champion = players[0].Name()
	logrus.Infof("Champion: \x1b[32m%s\x1b[0m", elim.Champion)
	return nil
}

// Bracket returns the players left after every round.
func (elim *Elimination) Bracket() [][]string {
	bracket := make([][]string, len(elim.Rounds))
	for i, round := range elim.Rounds {
		bracket[i] = round.Advanced
	}

	return bracket
}

func (round BracketRound) String() string {
	if round.Bye == "" {
		return fmt.Sprintf("Round %d: %v", round.Number, round.Advanced)
	}

	return fmt.Sprintf("Round %d (bye: %s): %v", round.Number, round.Bye, round.Advanced)
}
