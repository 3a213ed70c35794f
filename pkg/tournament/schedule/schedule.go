// Package schedule decides which players meet each other in a round.
package schedule

import (
	"fmt"
)

func New(name string) (Scheduler, error) {
	switch name {
	case "round-robin", "":
		return &RoundRobin{}, nil
	case "knockout":
		return &Knockout{}, nil
	default:
		return nil, fmt.Errorf("new schedule: invalid scheduler %s", name)
	}
}

// Scheduler produces the encounters of a round between n players, which
// are identified by their position.
type Scheduler interface {
	Initialize(int)
	NextEncounter() (int, int)
	TotalEncounters() int
}

// Encounters returns every encounter of a round between n players.
func Encounters(scheduler Scheduler, n int) [][2]int {
	scheduler.Initialize(n)

	encounters := make([][2]int, scheduler.TotalEncounters())
	for i := range encounters {
		p1, p2 := scheduler.NextEncounter()
		encounters[i] = [2]int{p1, p2}
	}

	return encounters
}
