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
	"fmt"
	"math/rand"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/secretary/pkg/envelope"
	"laptudirm.com/x/secretary/pkg/game"
	"laptudirm.com/x/secretary/pkg/input"
	"laptudirm.com/x/secretary/pkg/strategy"
)

func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play strategy",
		Short: "Play a single game with the given strategy",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`play deals a fresh set of envelopes and lets the given
			strategy play a single game with it, printing the result.

			The strategy is given as type[:parameter], like lookahead:4
			or threshold:0.37. With the manual strategy you decide when
			to stop opening envelopes yourself.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := strategy.ParseConfig(args[0])
			if err != nil {
				return err
			}

			seed, _ := cmd.Flags().GetInt64("seed")
			count, _ := cmd.Flags().GetInt("envelopes")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			rng := rand.New(rand.NewSource(seed))

			dealer, err := envelope.NewDealer(envelope.Config{Count: count}, rng)
			if err != nil {
				return err
			}

			console := input.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
			player, err := strategy.New(config, rng, console)
			if err != nil {
				return err
			}

			set := dealer.Deal()
			amounts := set.Amounts()

			result, err := game.Play(player, set)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Envelopes: %v\n", amounts)
			fmt.Fprintln(out, result)
			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Seed for the random number generator")
	cmd.Flags().Int("envelopes", envelope.DefaultCount, "Number of envelopes to deal")

	return cmd
}
