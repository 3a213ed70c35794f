package schedule

// Knockout pairs consecutive players: 0-1, 2-3, ... An odd player out at
// the end is left unpaired.
type Knockout struct {
	player_count int
	pair_number  int
}

func (k *Knockout) Initialize(n int) {
	k.player_count = n
	k.pair_number = 0
}

func (k *Knockout) NextEncounter() (int, int) {
	p1 := 2 * k.pair_number
	k.pair_number++
	return p1, p1 + 1
}

func (k *Knockout) TotalEncounters() int {
	return k.player_count / 2
}
