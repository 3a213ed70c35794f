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

// Package input provides the decisions which have to be taken by a person
// during a game or while setting up a tournament.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Provider is a synchronous source of decisions.
type Provider interface {
	// Stop asks whether the player wants to stop with the current
	// envelope, given the number of unopened envelopes left.
	Stop(remaining int) (bool, error)

	// Select asks for one of the given options and returns its index.
	Select(prompt string, options []string) (int, error)
}

// NewConsole creates a Provider which prompts on the given writer and reads
// the answers, one per line, from the given reader.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// Console is a Provider backed by a terminal.
type Console struct {
	reader *bufio.Reader
	writer io.Writer
}

func (console *Console) Stop(remaining int) (bool, error) {
	for {
		fmt.Fprintf(console.writer, "Stop? YES/NO (%d envelopes left): ", remaining)

		line, err := console.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToUpper(line) {
		case "YES", "Y":
			return true, nil
		case "NO", "N":
			return false, nil
		}

		fmt.Fprintf(console.writer, "\x1b[31mInvalid answer\x1b[0m %q, type YES or NO.\n", line)
	}
}

func (console *Console) Select(prompt string, options []string) (int, error) {
	fmt.Fprintln(console.writer, prompt)
	for i, option := range options {
		fmt.Fprintf(console.writer, "%d: %s\n", i, option)
	}

	for {
		fmt.Fprintf(console.writer, "Enter a number (0-%d): ", len(options)-1)

		line, err := console.readLine()
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(line)
		if err == nil && choice >= 0 && choice < len(options) {
			return choice, nil
		}

		fmt.Fprintf(console.writer, "\x1b[31mInvalid choice\x1b[0m %q.\n", line)
	}
}

func (console *Console) readLine() (string, error) {
	line, err := console.reader.ReadString('\n')
	if err != nil {
		// A final line without a newline is still an answer.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}

		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}

		return "", err
	}

	return strings.TrimSpace(line), nil
}

var ErrScriptExhausted = errors.New("input: script exhausted")

// Script is a Provider which replays fixed answers. It is used for
// non-interactive runs.
type Script struct {
	Stops   []bool
	Choices []int
}

func (script *Script) Stop(int) (bool, error) {
	if len(script.Stops) == 0 {
		return false, fmt.Errorf("%w: no stop answers left", ErrScriptExhausted)
	}

	stop := script.Stops[0]
	script.Stops = script.Stops[1:]
	return stop, nil
}

func (script *Script) Select(prompt string, options []string) (int, error) {
	if len(script.Choices) == 0 {
		return 0, fmt.Errorf("%w: no choices left for %q", ErrScriptExhausted, prompt)
	}

	choice := script.Choices[0]
	if choice < 0 || choice >= len(options) {
		return 0, fmt.Errorf("input: choice %d out of range [0, %d)", choice, len(options))
	}

	script.Choices = script.Choices[1:]
	return choice, nil
}
