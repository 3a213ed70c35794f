package tournament_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/secretary/pkg/envelope"
	"laptudirm.com/x/secretary/pkg/game"
	"laptudirm.com/x/secretary/pkg/input"
	"laptudirm.com/x/secretary/pkg/stats"
	"laptudirm.com/x/secretary/pkg/strategy"
	"laptudirm.com/x/secretary/pkg/tournament"
)

// sequence is an envelope.Rand which replays the given values, wrapped
// into the requested range.
type sequence struct {
	values []int
	next   int
}

func (s *sequence) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// picker is a player which selects the envelope with the given amount,
// without opening anything. Every deal in these tests is [1, 2, 3], so a
// picker of 3 always succeeds and a picker of 0 never selects.
type picker struct {
	name   string
	amount float64
}

func (p *picker) Name() string { return p.name }

func (p *picker) Play(set *envelope.Set) (*envelope.Envelope, error) {
	for i := 0; i < set.Len(); i++ {
		if set.At(i).Amount() == p.amount {
			return set.At(i), nil
		}
	}

	return nil, nil
}

func players(amounts map[string]float64, order ...string) []game.Player {
	list := make([]game.Player, len(order))
	for i, name := range order {
		list[i] = &picker{name: name, amount: amounts[name]}
	}

	return list
}

func newSetup(t *testing.T, players ...game.Player) tournament.Setup {
	t.Helper()

	dealer, err := envelope.NewDealer(
		envelope.Config{Count: 3, Min: 1, Max: 3},
		&sequence{values: []int{0, 1, 2}},
	)
	require.NoError(t, err)

	return tournament.Setup{
		Players: players,
		Dealer:  dealer,
		Rand:    &sequence{values: []int{0}},
	}
}

func TestSetupValidation(t *testing.T) {
	_, err := tournament.NewRoundRobin(newSetup(t, &picker{name: "A"}), 1)
	assert.ErrorIs(t, err, tournament.ErrTooFewPlayers)

	_, err = tournament.NewLeague(newSetup(t, &picker{name: "A"}, &picker{name: "A"}))
	assert.ErrorIs(t, err, tournament.ErrDuplicateName)

	setup := newSetup(t, &picker{name: "A"}, &picker{name: "B"})
	setup.Dealer = nil
	_, err = tournament.NewElimination(setup)
	assert.ErrorIs(t, err, tournament.ErrInvalidConfig)
}

func TestRoundRobin(t *testing.T) {
	amounts := map[string]float64{"A": 3, "B": 2, "C": 1, "D": 2}
	rr, err := tournament.NewRoundRobin(newSetup(t, players(amounts, "A", "B", "C", "D")...), 2)
	require.NoError(t, err)

	require.NoError(t, rr.Start())

	history := rr.History()
	require.Len(t, history, 2*6)

	assert.Equal(t, map[string]int{"A": 18, "B": 8, "C": 0, "D": 8}, rr.Standings())

	// Encounters are played in order: A-B, A-C, A-D, B-C, B-D, C-D.
	first := history[0].(tournament.RoundRobinRecord)
	assert.Equal(t, 1, first.Match)
	assert.Equal(t, 1, first.Round)
	assert.Equal(t, "A", first.Winner)

	draw := history[4].(tournament.RoundRobinRecord)
	assert.Equal(t, [2]string{"B", "D"}, [2]string{draw.Sides[0].Name, draw.Sides[1].Name})
	assert.Equal(t, tournament.DrawLabel, draw.Winner)

	last := history[len(history)-1].(tournament.RoundRobinRecord)
	assert.Equal(t, 12, last.Match)
	assert.Equal(t, 2, last.Round)

	total := 0
	for _, points := range rr.Standings() {
		total += points
	}

	// 10 decisive matches and 2 draws.
	assert.Equal(t, 10*tournament.WinPoints+2*2*tournament.DrawPoints, total)

	assert.ErrorIs(t, rr.Start(), tournament.ErrAlreadyStarted)
}

func TestRoundRobinInvalidRounds(t *testing.T) {
	amounts := map[string]float64{"A": 3, "B": 2}
	_, err := tournament.NewRoundRobin(newSetup(t, players(amounts, "A", "B")...), 0)
	assert.ErrorIs(t, err, tournament.ErrInvalidConfig)
}

func TestLeague(t *testing.T) {
	amounts := map[string]float64{"A": 3, "B": 1, "C": 0}
	league, err := tournament.NewLeague(newSetup(t, players(amounts, "A", "B", "C")...))
	require.NoError(t, err)

	require.NoError(t, league.Start())

	history := league.History()
	require.Len(t, history, 6)

	for i, record := range history {
		assert.Equal(t, tournament.Legs[i%2], record.(tournament.LeagueRecord).Leg)
	}

	a, ok := league.Table.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, tournament.Standing{Name: "A", Games: 4, Wins: 4, Points: 12}, a)

	c, ok := league.Table.Lookup("C")
	require.True(t, ok)
	assert.Equal(t, tournament.Standing{Name: "C", Games: 4, Losses: 4}, c)

	sorted := league.Table.Sorted()
	assert.Equal(t, []string{"A", "B", "C"}, []string{sorted[0].Name, sorted[1].Name, sorted[2].Name})

	assert.Equal(t, stats.Penta{WW: 2}, league.Pairs[0])
	assert.Equal(t, stats.Penta{WW: 1, LL: 1}, league.Pairs[1])
	assert.Equal(t, stats.Penta{LL: 2}, league.Pairs[2])
}

func TestEliminationByes(t *testing.T) {
	amounts := map[string]float64{"P0": 1, "P1": 3, "P2": 2, "P3": 2, "P4": 1}
	elim, err := tournament.NewElimination(newSetup(t, players(amounts, "P0", "P1", "P2", "P3", "P4")...))
	require.NoError(t, err)

	require.NoError(t, elim.Start())

	require.Len(t, elim.Rounds, 3)
	assert.Equal(t, "P0", elim.Rounds[0].Bye)
	assert.Equal(t, []string{"P2", "P4"}, elim.Rounds[0].Losers)
	assert.Equal(t, [][]string{
		{"P0", "P1", "P3"},
		{"P0", "P1"},
		{"P1"},
	}, elim.Bracket())

	assert.Equal(t, "P1", elim.Champion)

	// Four matches are played between five players.
	history := elim.History()
	require.Len(t, history, 4)
	for _, record := range history {
		assert.False(t, record.(tournament.EliminationRecord).TieBreak)
	}
}

func TestEliminationTieBreak(t *testing.T) {
	amounts := map[string]float64{"A": 2, "B": 2}
	setup := newSetup(t, players(amounts, "A", "B")...)
	setup.Rand = &sequence{values: []int{1}}

	elim, err := tournament.NewElimination(setup)
	require.NoError(t, err)
	require.NoError(t, elim.Start())

	assert.Equal(t, "B", elim.Champion)

	record := elim.History()[0].(tournament.EliminationRecord)
	assert.True(t, record.TieBreak)
	assert.Equal(t, "B", record.Winner)
	assert.Equal(t, "A", record.Loser)
}

func TestChampionship(t *testing.T) {
	amounts := map[string]float64{"A": 3, "B": 2, "C": 1, "D": 2}
	champ, err := tournament.NewChampionship(newSetup(t, players(amounts, "A", "B", "C", "D")...), 2)
	require.NoError(t, err)

	require.NoError(t, champ.Start())

	require.Len(t, champ.Groups, 2)
	assert.Equal(t, "A", champ.Groups[0].Name)
	assert.Equal(t, []int{0, 1}, champ.Groups[0].Players)
	assert.Equal(t, []int{2, 3}, champ.Groups[1].Players)

	assert.Equal(t, []string{"A", "B", "D", "C"}, champ.Qualified)
	assert.Equal(t, []tournament.Playoff{
		{Round: 1, Players: [2]string{"A", "B"}, Winner: "A"},
		{Round: 1, Players: [2]string{"D", "C"}, Winner: "D"},
		{Round: 2, Players: [2]string{"A", "D"}, Winner: "A"},
	}, champ.Playoffs)
	assert.Equal(t, "A", champ.Champion)

	history := champ.History()
	require.Len(t, history, 2+3)

	group := history[0].(tournament.ChampionshipRecord)
	assert.Equal(t, tournament.StageGroup, group.Stage)
	assert.Equal(t, "A", group.Group)

	final := history[4].(tournament.ChampionshipRecord)
	assert.Equal(t, tournament.StagePlayoff, final.Stage)
	assert.Equal(t, 2, final.Round)
	assert.Equal(t, 5, final.Match)
}

func TestChampionshipPlayoffDraw(t *testing.T) {
	amounts := map[string]float64{"A": 2, "B": 2}
	champ, err := tournament.NewChampionship(newSetup(t, players(amounts, "A", "B")...), 1)
	require.NoError(t, err)

	require.NoError(t, champ.Start())
	assert.Equal(t, "A", champ.Champion, "first listed player advances on a draw")
}

func TestChampionshipValidation(t *testing.T) {
	amounts := map[string]float64{}

	_, err := tournament.NewChampionship(newSetup(t, players(amounts, "A", "B", "C")...), 2)
	assert.ErrorIs(t, err, tournament.ErrUnevenPlayoffs)

	_, err = tournament.NewChampionship(newSetup(t, players(amounts, "A", "B")...), 3)
	assert.ErrorIs(t, err, tournament.ErrInvalidConfig)

	_, err = tournament.NewChampionship(newSetup(t, players(amounts, "A", "B")...), 0)
	assert.ErrorIs(t, err, tournament.ErrInvalidConfig)
}

func TestDeathMatch(t *testing.T) {
	amounts := map[string]float64{"A": 3, "B": 2}
	dm, err := tournament.NewDeathMatch(newSetup(t, players(amounts, "A", "B")...), 3)
	require.NoError(t, err)

	require.NoError(t, dm.Start())

	assert.Equal(t, "A", dm.Winner)
	assert.Equal(t, [2]int{3, 0}, dm.Wins)
	assert.Len(t, dm.History(), 3)
}

func TestDeathMatchPicks(t *testing.T) {
	amounts := map[string]float64{"A": 3, "B": 2, "C": 1}
	setup := newSetup(t, players(amounts, "A", "B", "C")...)
	setup.Input = &input.Script{Choices: []int{2, 0}}

	dm, err := tournament.NewDeathMatch(setup, 2)
	require.NoError(t, err)
	require.NoError(t, dm.Start())

	assert.Equal(t, "C", dm.Players[0].Name())
	assert.Equal(t, "A", dm.Players[1].Name())
	assert.Equal(t, "A", dm.Winner)
	assert.Equal(t, [2]int{0, 2}, dm.Wins)
}

func TestDeathMatchMirrorLimit(t *testing.T) {
	amounts := map[string]float64{"A": 3, "B": 2}
	setup := newSetup(t, players(amounts, "A", "B")...)
	setup.Input = &input.Script{Choices: []int{1, 1}}

	dm, err := tournament.NewDeathMatch(setup, 1)
	require.NoError(t, err)
	dm.MaxMatches = 4

	assert.ErrorIs(t, dm.Start(), tournament.ErrMatchLimit)
	assert.Equal(t, "B #1", dm.Players[0].Name())
	assert.Equal(t, "B #2", dm.Players[1].Name())

	history := dm.History()
	require.Len(t, history, 4)
	assert.Equal(t, tournament.DrawLabel, history[0].(tournament.DeathMatchRecord).Winner)
}

func TestDeathMatchValidation(t *testing.T) {
	amounts := map[string]float64{}

	_, err := tournament.NewDeathMatch(newSetup(t, players(amounts, "A", "B")...), 0)
	assert.ErrorIs(t, err, tournament.ErrInvalidConfig)

	_, err = tournament.NewDeathMatch(newSetup(t, players(amounts, "A", "B", "C")...), 1)
	assert.ErrorIs(t, err, tournament.ErrInvalidConfig)

	setup := newSetup(t, players(amounts, "A", "B")...)
	setup.Input = &input.Script{}
	dm, err := tournament.NewDeathMatch(setup, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, dm.Start(), input.ErrScriptExhausted)
}

func TestNew(t *testing.T) {
	tests := []struct {
		format string
		want   any
	}{
		{format: "", want: &tournament.RoundRobin{}},
		{format: "round-robin", want: &tournament.RoundRobin{}},
		{format: "league", want: &tournament.League{}},
		{format: "elimination", want: &tournament.Elimination{}},
		{format: "championship", want: &tournament.Championship{}},
		{format: "deathmatch", want: &tournament.DeathMatch{}},
	}

	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			tour, err := tournament.New(tournament.Config{
				Format: test.format,
				Seed:   7,
				Picks:  []int{0, 1},
			}, nil)
			require.NoError(t, err)

			assert.IsType(t, test.want, tour)
		})
	}
}

func TestNewDeathMatchFromConfig(t *testing.T) {
	tour, err := tournament.New(tournament.Config{
		Format:  "deathmatch",
		Seed:    7,
		WinGoal: 2,
		Picks:   []int{0, 1},
	}, nil)
	require.NoError(t, err)

	require.NoError(t, tour.Start())

	dm := tour.(*tournament.DeathMatch)
	assert.Equal(t, "Automatic", dm.Players[0].Name())
	assert.Equal(t, "Lookahead(3)", dm.Players[1].Name())
	assert.Equal(t, 2, max(dm.Wins[0], dm.Wins[1]))
	assert.NotEmpty(t, dm.Winner)
}

func TestNewErrors(t *testing.T) {
	_, err := tournament.New(tournament.Config{Format: "swiss"}, nil)
	assert.ErrorIs(t, err, tournament.ErrInvalidConfig)

	_, err = tournament.New(tournament.Config{Envelopes: envelope.Config{Count: -1}}, nil)
	assert.ErrorIs(t, err, envelope.ErrInvalidConfig)

	_, err = tournament.New(tournament.Config{
		Strategies: []strategy.Config{{Type: "manual"}},
	}, nil)
	assert.Error(t, err, "manual strategies need an input")

	_, err = tournament.New(tournament.Config{
		Strategies: []strategy.Config{{Type: "automatic"}, {Type: "automatic"}},
	}, nil)
	assert.ErrorIs(t, err, tournament.ErrDuplicateName)
}

func TestMatchSeedIsReproducible(t *testing.T) {
	run := func() []tournament.Record {
		tour, err := tournament.New(tournament.Config{Format: "league", Seed: 99}, nil)
		require.NoError(t, err)
		require.NoError(t, tour.Start())
		return tour.History()
	}

	assert.Equal(t, run(), run())
}
