package schedule

// RoundRobin pairs every player with every later player, in positional
// order: 0-1, 0-2, ..., 1-2, 1-3, ...
type RoundRobin struct {
	player_count int

	player1, player2 int
}

func (rr *RoundRobin) Initialize(n int) {
	rr.player_count = n
	rr.player1, rr.player2 = 0, 0
}

func (rr *RoundRobin) NextEncounter() (int, int) {
	rr.player2++
	if rr.player2 >= rr.player_count {
		rr.player1++
		rr.player2 = rr.player1 + 1
	}

	return rr.player1, rr.player2
}

func (rr *RoundRobin) TotalEncounters() int {
	return rr.player_count * (rr.player_count - 1) / 2
}
