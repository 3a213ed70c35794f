// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tournament

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"laptudirm.com/x/secretary/pkg/stats"
)

var (
	highlight = color.New(color.FgGreen, color.Bold)
	faded     = color.New(color.FgYellow)
)

const tableWidth = 67

func (table Table) Report(w io.Writer, title string) {
	border := strings.Repeat("═", tableWidth)

	fmt.Fprintf(w, "╔%s╗\n", border)
	if title != "" {
		fmt.Fprintf(w, "║ %-*s║\n", tableWidth-1, title)
		fmt.Fprintf(w, "╠%s╣\n", border)
	}

	fmt.Fprintf(w, "║ %2s  %-18s %5s %4s   %4s %4s %4s   %5s %6s ║\n",
		"#", "Name", "Elo", "Err", "Wins", "Loss", "Draw", "Games", "Points")
	fmt.Fprintf(w, "╠%s╣\n", border)

	for i, standing := range table.Sorted() {
		elo, err := stats.EloError(standing.Wins, standing.Draws, standing.Losses)
		fmt.Fprintf(w, "║ %2d. %-18s %+5.0f %4.0f   %4d %4d %4d   %5d %6d ║\n",
			i+1, standing.Name,
			elo, err,
			standing.Wins, standing.Losses, standing.Draws,
			standing.Games, standing.Points)
	}

	fmt.Fprintf(w, "╚%s╝\n", border)
}

func (dm *DeathMatch) Report(w io.Writer) {
	fmt.Fprintf(w, "Death Match (first to %d wins) after %d matches:\n", dm.Goal, dm.matches)
	for i, player := range dm.Players {
		if player == nil {
			continue
		}

		fmt.Fprintf(w, "  %-18s %d wins\n", player.Name(), dm.Wins[i])
	}

	if dm.Winner != "" {
		highlight.Fprintf(w, "Winner: %s\n", dm.Winner)
	}
}

func (rr *RoundRobin) Report(w io.Writer) {
	rr.Table.Report(w, fmt.Sprintf("Round Robin (%d rounds)", rr.Rounds))
}

func (league *League) Report(w io.Writer) {
	league.Table.Report(w, "Final League Table")

	fmt.Fprintln(w, "Fixture Elo (home and away as a pair):")
	for i, standing := range league.Table {
		elo, err := league.Pairs[i].EloError()
		fmt.Fprintf(w, "  %-18s %+5.0f ± %.0f (%d pairs)\n", standing.Name, elo, err, league.Pairs[i].Pairs())
	}
}

func (elim *Elimination) Report(w io.Writer) {
	fmt.Fprintln(w, "Elimination Bracket:")
	for _, round := range elim.Rounds {
		fmt.Fprintf(w, "  Round %d: %s\n", round.Number, strings.Join(round.Advanced, ", "))
		if round.Bye != "" {
			faded.Fprintf(w, "    bye: %s\n", round.Bye)
		}
		if len(round.Losers) > 0 {
			faded.Fprintf(w, "    out: %s\n", strings.Join(round.Losers, ", "))
		}
	}

	if elim.Champion != "" {
		highlight.Fprintf(w, "Champion: %s\n", elim.Champion)
	}
}

func (champ *Championship) Report(w io.Writer) {
	for _, group := range champ.Groups {
		group.Table.Report(w, "Group "+group.Name)
	}

	if len(champ.Qualified) > 0 {
		fmt.Fprintf(w, "Qualified: %s\n", strings.Join(champ.Qualified, ", "))
	}

	if len(champ.Playoffs) > 0 {
		fmt.Fprintln(w, "Playoffs:")
		for _, playoff := range champ.Playoffs {
			fmt.Fprintf(w, "  Round %d: %s vs %s -> %s\n",
				playoff.Round, playoff.Players[0], playoff.Players[1], playoff.Winner)
		}
	}

	if champ.Champion != "" {
		highlight.Fprintf(w, "Champion: %s\n", champ.Champion)
	}
}
