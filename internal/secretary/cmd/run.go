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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/secretary/pkg/common"
	"laptudirm.com/x/secretary/pkg/input"
	"laptudirm.com/x/secretary/pkg/strategy"
	"laptudirm.com/x/secretary/pkg/tournament"
)

func Run() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [config-file]",
		Short: "Run a tournament between strategies",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`run runs a tournament between the configured strategies
			and prints its results.

			The tournament is read from the given yaml config file, or
			from the user's secretary/config.yaml if there is one.
			Settings can be overridden by SECRETARY_* environment
			variables, which are also read from a .env file in the
			current directory, and which are in turn overridden by
			the flags.

			The history of every match is saved as a csv file in the
			secretary data directory, unless --log or --no-log is set.`),
		Example: heredoc.Doc(`
			secretary run --format elimination --strategy automatic --strategy lookahead:2
			secretary run tour.yaml --seed 42 --no-log
			SECRETARY_FORMAT=deathmatch secretary run --pick 1,2 --goal 3`),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := ""
			if len(args) == 1 {
				filename = args[0]
			} else if file, found := common.DefaultConfig(); found {
				filename = file
			}

			// Variables already set in the environment take precedence.
			_ = godotenv.Load()

			config, err := tournament.LoadConfig(filename)
			if err != nil {
				return err
			}

			if err := applyFlags(cmd, &config); err != nil {
				return err
			}

			config.Defaults()

			runID := uuid.NewString()
			log := logrus.WithFields(logrus.Fields{
				"run":    runID,
				"format": config.Format,
			})

			tour, err := tournament.New(config, input.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout()))
			if err != nil {
				return err
			}

			log.Info("Starting tournament")
			startErr := tour.Start()
			if startErr != nil {
				log.Error("Tournament stopped early")
			}

			tour.Report(cmd.OutOrStdout())

			if noLog, _ := cmd.Flags().GetBool("no-log"); !noLog {
				logFile := config.Log
				if logFile == "" {
					common.TryMkdir(common.LogDirectory)
					logFile = common.LogPath(config.Format, runID)
				}

				if err := tournament.SaveLog(logFile, tour.History()); err != nil {
					return err
				}
			}

			return startErr
		},
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", "", "Tournament format")
	flags.StringArrayP("strategy", "s", nil, "Participating strategy as type[:parameter], repeatable")
	flags.Int64("seed", 0, "Seed for the random number generator")
	flags.Int("rounds", 0, "Rounds of a round-robin")
	flags.Int("goal", 0, "Wins needed to take a deathmatch")
	flags.Int("max-matches", 0, "Abandon a deathmatch after this many matches")
	flags.Int("groups", 0, "Groups of a championship")
	flags.IntSlice("pick", nil, "Positions of the deathmatch players")
	flags.Int("envelopes", 0, "Number of envelopes dealt for each match")
	flags.String("log", "", "File to save the match history to")
	flags.Bool("no-log", false, "Don't save the match history")

	return cmd
}

// applyFlags overrides the config with the flags which have been set.
func applyFlags(cmd *cobra.Command, config *tournament.Config) error {
	flags := cmd.Flags()

	if flags.Changed("format") {
		config.Format, _ = flags.GetString("format")
	}

	if flags.Changed("strategy") {
		descriptions, _ := flags.GetStringArray("strategy")

		config.Strategies = nil
		for _, description := range descriptions {
			strategyConfig, err := strategy.ParseConfig(description)
			if err != nil {
				return err
			}

			config.Strategies = append(config.Strategies, strategyConfig)
		}
	}

	if flags.Changed("seed") {
		config.Seed, _ = flags.GetInt64("seed")
	}

	ints := map[string]*int{
		"rounds":      &config.Rounds,
		"goal":        &config.WinGoal,
		"max-matches": &config.MaxMatches,
		"groups":      &config.Groups,
		"envelopes":   &config.Envelopes.Count,
	}

	for name, field := range ints {
		if flags.Changed(name) {
			*field, _ = flags.GetInt(name)
		}
	}

	if flags.Changed("pick") {
		config.Picks, _ = flags.GetIntSlice("pick")
	}

	if flags.Changed("log") {
		config.Log, _ = flags.GetString("log")
	}

	return nil
}
