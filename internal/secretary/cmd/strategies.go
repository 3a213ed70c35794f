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

	"github.com/spf13/cobra"

	"laptudirm.com/x/secretary/pkg/strategy"
	"laptudirm.com/x/secretary/pkg/tournament"
)

func Strategies() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "Lists the available strategies and tournament formats",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "\x1b[32mStrategies\x1b[0m:")
			for _, kind := range strategy.Types {
				name := fmt.Sprintf("\x1b[34m%s\x1b[0m", kind.Name)
				if kind.Parameter != "" {
					name += fmt.Sprintf("[:\x1b[33m%s\x1b[0m]", kind.Parameter)
				}

				// Escape codes take up no space on the terminal.
				width := 34 + len(name) - len(stripped(kind))
				fmt.Fprintf(out, "- %-*s %s\n", width, name, kind.Description)
			}

			fmt.Fprintln(out, "\n\x1b[32mFormats\x1b[0m:")
			for _, format := range tournament.Formats {
				fmt.Fprintf(out, "- %s\n", format)
			}

			return nil
		},
	}
}

func stripped(kind strategy.Type) string {
	if kind.Parameter == "" {
		return kind.Name
	}

	return kind.Name + "[:" + kind.Parameter + "]"
}
