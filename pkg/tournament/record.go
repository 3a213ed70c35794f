package tournament

import (
	"strconv"
)

// DrawLabel is recorded as the winner of a drawn match.
const DrawLabel = "draw"

// Record is the history entry of a single match. Every tournament format
// has its own record type; they are flattened to rows when the history is
// saved.
type Record interface {
	Columns() []string
	Values() []string
}

// Side is one player's part of a match.
type Side struct {
	Name     string
	Selected float64
	Ratio    float64
}

var sideColumns = []string{
	"s1_name", "s2_name",
	"s1_selected_amount", "s2_selected_amount",
	"s1_ratio", "s2_ratio",
}

func sideValues(sides [2]Side) []string {
	return []string{
		sides[0].Name, sides[1].Name,
		formatFloat(sides[0].Selected), formatFloat(sides[1].Selected),
		formatFloat(sides[0].Ratio), formatFloat(sides[1].Ratio),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func columns(leading []string, trailing ...string) []string {
	all := append([]string(nil), leading...)
	all = append(all, sideColumns...)
	return append(all, trailing...)
}

// DeathMatchRecord is a match of a death match.
type DeathMatchRecord struct {
	Match  int
	Sides  [2]Side
	Winner string
}

func (record DeathMatchRecord) Columns() []string {
	return columns([]string{"match"}, "winner")
}

func (record DeathMatchRecord) Values() []string {
	values := append([]string{strconv.Itoa(record.Match)}, sideValues(record.Sides)...)
	return append(values, record.Winner)
}

// RoundRobinRecord is a match of a round robin.
type RoundRobinRecord struct {
	Match  int
	Round  int
	Sides  [2]Side
	Winner string
}

func (record RoundRobinRecord) Columns() []string {
	return columns([]string{"match", "round"}, "winner")
}

func (record RoundRobinRecord) Values() []string {
	values := append([]string{strconv.Itoa(record.Match), strconv.Itoa(record.Round)}, sideValues(record.Sides)...)
	return append(values, record.Winner)
}

// EliminationRecord is a match of an elimination bracket. Matches always
// have a winner; TieBreak is set when it was chosen at random.
type EliminationRecord struct {
	Round    int
	Sides    [2]Side
	Winner   string
	Loser    string
	TieBreak bool
}

func (record EliminationRecord) Columns() []string {
	return columns([]string{"round"}, "winner", "loser", "tie_break")
}

func (record EliminationRecord) Values() []string {
	values := append([]string{strconv.Itoa(record.Round)}, sideValues(record.Sides)...)
	return append(values, record.Winner, record.Loser, strconv.FormatBool(record.TieBreak))
}

// LeagueRecord is a match of a league, played as either leg of a fixture.
type LeagueRecord struct {
	Match  int
	Leg    string
	Sides  [2]Side
	Winner string
}

func (record LeagueRecord) Columns() []string {
	return columns([]string{"match", "leg"}, "winner")
}

func (record LeagueRecord) Values() []string {
	values := append([]string{strconv.Itoa(record.Match), record.Leg}, sideValues(record.Sides)...)
	return append(values, record.Winner)
}

// ChampionshipRecord is a match of a championship, either in a group or
// in the playoffs.
type ChampionshipRecord struct {
	Match  int
	Stage  string // Either StageGroup or StagePlayoff.
	Group  string // Group name, empty in the playoffs.
	Round  int    // Playoff round, 0 in the group stage.
	Sides  [2]Side
	Winner string
}

func (record ChampionshipRecord) Columns() []string {
	return columns([]string{"match", "stage", "group", "round"}, "winner")
}

func (record ChampionshipRecord) Values() []string {
	values := append([]string{
		strconv.Itoa(record.Match), record.Stage, record.Group, strconv.Itoa(record.Round),
	}, sideValues(record.Sides)...)
	return append(values, record.Winner)
}
