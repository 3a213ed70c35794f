package tournament

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/secretary/pkg/game"
	"laptudirm.com/x/secretary/pkg/tournament/schedule"
)

// Championship stages.
const (
	StageGroup   = "group"
	StagePlayoff = "playoff"
)

// Number of players from every group who reach the playoffs.
const QualifiersPerGroup = 2

// NewChampionship creates a championship which splits the setup's players
// into the given number of groups.
func NewChampionship(setup Setup, groups int) (*Championship, error) {
	if err := setup.validate(2); err != nil {
		return nil, err
	}

	if groups < 1 {
		return nil, fmt.Errorf("%w: groups %d is not positive", ErrInvalidConfig, groups)
	}

	champ := &Championship{arena: arena{Setup: setup}}
	champ.Groups = split(setup.Names(), groups)

	qualifiers := 0
	for _, group := range champ.Groups {
		if len(group.Players) == 0 {
			return nil, fmt.Errorf("%w: group %s is empty with %d players in %d groups",
				ErrInvalidConfig, group.Name, len(setup.Players), groups)
		}

		qualifiers += min(QualifiersPerGroup, len(group.Players))
	}

	// Every playoff round pairs all the remaining players.
	if qualifiers < 2 || qualifiers&(qualifiers-1) != 0 {
		return nil, fmt.Errorf("%w: %d qualifiers is not a power of two", ErrUnevenPlayoffs, qualifiers)
	}

	return champ, nil
}

// Championship is a tournament with a group stage followed by knockout
// playoffs. Every group plays a round robin and its top two players
// qualify. In the playoffs a drawn match is won by the first listed player.
type Championship struct {
	arena

	Groups    []Group
	Qualified []string
	Playoffs  []Playoff
	Champion  string
}

// Group is a group of the group stage.
type Group struct {
	Name    string
	Players []int // Positions of the group's players in the setup.
	Table   Table
}

// Playoff is a single playoff match.
type Playoff struct {
	Round   int
	Players [2]string
	Winner  string
}

// split partitions the players, in order, into groups of ceil(n/groups).
// The last groups may be smaller or even empty.
func split(names []string, groups int) []Group {
	size := (len(names) + groups - 1) / groups

	partition := make([]Group, groups)
	for g := range partition {
		partition[g].Name = string(rune('A' + g))

		var groupNames []string
		for i := g * size; i < min((g+1)*size, len(names)); i++ {
			partition[g].Players = append(partition[g].Players, i)
			groupNames = append(groupNames, names[i])
		}

		partition[g].Table = NewTable(groupNames)
	}

	return partition
}

func (champ *Championship) Start() error {
	if err := champ.begin(); err != nil {
		return err
	}

	var qualified []game.Player
	for g := range champ.Groups {
		group := &champ.Groups[g]

		if err := champ.playGroup(group); err != nil {
			return err
		}

		var top []string
		for _, standing := range group.Table.Sorted()[:min(QualifiersPerGroup, len(group.Players))] {
			top = append(top, standing.Name)
			qualified = append(qualified, champ.player(standing.Name))
		}

		logrus.Infof("Top %d from Group %s: %v", len(top), group.Name, top)
		champ.Qualified = append(champ.Qualified, top...)
	}

	for round := 1; len(qualified) > 1; round++ {
		var next []game.Player

		for _, encounter := range schedule.Encounters(&schedule.Knockout{}, len(qualified)) {
			match, err := champ.play(qualified[encounter[0]], qualified[encounter[1]])
			if err != nil {
				return err
			}

			// The first listed player goes through on a draw.
			winner := 0
			if match.Outcome == game.Player2Wins {
				winner = 1
			}

			next = append(next, qualified[encounter[winner]])
			champ.Playoffs = append(champ.Playoffs, Playoff{
				Round:   round,
				Players: match.Names,
				Winner:  match.Names[winner],
			})

			champ.record(ChampionshipRecord{
				Match:  match.Number,
				Stage:  StagePlayoff,
				Round:  round,
				Sides:  match.sides(),
				Winner: match.Names[winner],
			})

			logMatch(fmt.Sprintf("Playoff Round #%d ", round), match)
		}

		qualified = next
	}

	champ.Champion = qualified[0].Name()
	logrus.Infof("Champion: \x1b[32m%s\x1b[0m", champ.Champion)
	return nil
}

func (champ *Championship) playGroup(group *Group) error {
	for _, encounter := range schedule.Encounters(&schedule.RoundRobin{}, len(group.Players)) {
		p1, p2 := encounter[0], encounter[1]

		match, err := champ.play(champ.Players[group.Players[p1]], champ.Players[group.Players[p2]])
		if err != nil {
			return err
		}

		group.Table.Record(p1, p2, match.Outcome)
		champ.record(ChampionshipRecord{
			Match:  match.Number,
			Stage:  StageGroup,
			Group:  group.Name,
			Sides:  match.sides(),
			Winner: match.Winner(),
		})

		logMatch(fmt.Sprintf("Group %s ", group.Name), match)
	}

	return nil
}

// player finds a player by name. Names are unique within a tournament.
func (champ *Championship) player(name string) game.Player {
	for _, player := range champ.Players {
		if player.Name() == name {
			return player
		}
	}

	return nil
}
