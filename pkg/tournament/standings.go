package tournament

import (
	"slices"

	"laptudirm.com/x/secretary/pkg/game"
)

const (
	WinPoints  = 3
	DrawPoints = 1
)

// Standing is the record of a single player in a table.
type Standing struct {
	Name string

	Games  int
	Wins   int
	Losses int
	Draws  int
	Points int
}

// Table is a list of standings, in seeding order unless sorted.
type Table []Standing

// NewTable creates an empty table for the given players.
func NewTable(names []string) Table {
	table := make(Table, len(names))
	for i, name := range names {
		table[i].Name = name
	}

	return table
}

// Record updates the standings of players p1 and p2 with the outcome of a
// match between them.
func (table Table) Record(p1, p2 int, outcome game.Outcome) {
	table[p1].Games++
	table[p2].Games++

	switch outcome {
	case game.Player1Wins:
		table[p1].Wins++
		table[p1].Points += WinPoints
		table[p2].Losses++

	case game.Player2Wins:
		table[p2].Wins++
		table[p2].Points += WinPoints
		table[p1].Losses++

	case game.Draw:
		table[p1].Draws++
		table[p2].Draws++
		table[p1].Points += DrawPoints
		table[p2].Points += DrawPoints
	}
}

// Sorted returns a copy of the table sorted by points, most first. Players
// with equal points keep their relative order.
func (table Table) Sorted() Table {
	sorted := slices.Clone(table)
	slices.SortStableFunc(sorted, func(a, b Standing) int {
		return b.Points - a.Points
	})

	return sorted
}

// Points maps every player's name to its points.
func (table Table) Points() map[string]int {
	points := make(map[string]int, len(table))
	for _, standing := range table {
		points[standing.Name] = standing.Points
	}

	return points
}

// Lookup returns the standing of the named player.
func (table Table) Lookup(name string) (Standing, bool) {
	for _, standing := range table {
		if standing.Name == name {
			return standing, true
		}
	}

	return Standing{}, false
}
