// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
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

package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/secretary/pkg/envelope"
	"laptudirm.com/x/secretary/pkg/game"
	"laptudirm.com/x/secretary/pkg/stats"
	"laptudirm.com/x/secretary/pkg/strategy"
	"laptudirm.com/x/secretary/pkg/tournament"
)

const SPIN = 14

func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Measure how often strategies find the best envelope",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`simulate plays many single games with every strategy
			and reports how often each one selected the best envelope,
			with a 95% confidence interval, and how close its selections
			came to the best amount on average.

			Every strategy plays the same sequence of deals.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			games, _ := flags.GetInt("games")
			seed, _ := flags.GetInt64("seed")
			count, _ := flags.GetInt("envelopes")
			descriptions, _ := flags.GetStringArray("strategy")

			if games < 1 {
				return fmt.Errorf("simulate: games %d is not positive", games)
			}

			configs := tournament.DefaultStrategies
			if len(descriptions) > 0 {
				configs = nil
				for _, description := range descriptions {
					config, err := strategy.ParseConfig(description)
					if err != nil {
						return err
					}

					configs = append(configs, config)
				}
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			logrus.WithFields(logrus.Fields{
				"games": games,
				"seed":  seed,
			}).Info("Starting simulation")

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			s.Start()

			summaries, names, err := simulate(configs, games, count, seed)
			s.Stop()

			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-18s %22s %15s %8s\n", "Strategy", "Success (95%)", "Ratio", "No pick")
			for i, summary := range summaries {
				lower, p, upper := summary.SuccessRate()
				mean, deviation := summary.MeanRatio()

				fmt.Fprintf(out, "%-18s %6.2f%% [%5.1f, %5.1f] %7.3f ± %.3f %8d\n",
					names[i], p*100, lower*100, upper*100, mean, deviation, summary.NoPicks)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntP("games", "n", 1000, "Games played by each strategy")
	flags.StringArrayP("strategy", "s", nil, "Simulated strategy as type[:parameter], repeatable")
	flags.Int64("seed", 0, "Seed for the random number generator")
	flags.Int("envelopes", envelope.DefaultCount, "Number of envelopes dealt for each game")

	return cmd
}

// simulate plays the given number of games with every strategy. Each
// strategy is replayed from the same seed so that all of them see the same
// deals.
func simulate(configs []strategy.Config, games, count int, seed int64) ([]stats.Summary, []string, error) {
	summaries := make([]stats.Summary, len(configs))
	names := make([]string, len(configs))

	for i, config := range configs {
		if config.Type == "manual" {
			return nil, nil, errors.New("simulate: manual strategies can't be simulated")
		}

		deals := rand.New(rand.NewSource(seed))
		dealer, err := envelope.NewDealer(envelope.Config{Count: count}, deals)
		if err != nil {
			return nil, nil, err
		}

		player, err := strategy.New(config, rand.New(rand.NewSource(seed+int64(i)+1)), nil)
		if err != nil {
			return nil, nil, err
		}

		names[i] = player.Name()
		for n := 0; n < games; n++ {
			result, err := game.Play(player, dealer.Deal())
			if err != nil {
				return nil, nil, err
			}

			summaries[i].Add(result.Success, result.Kind == game.Selection, result.Ratio)
		}
	}

	return summaries, names, nil
}
