package game

// Outcome represents the result of comparing two plays.
type Outcome int

const (
	Player1Wins Outcome = +1
	Draw        Outcome = 0
	Player2Wins Outcome = -1
)

// Compare compares the ratios of two plays. The strictly higher ratio wins
// and equal ratios are a draw.
func Compare(result1, result2 Result) Outcome {
	switch {
	case result1.Ratio > result2.Ratio:
		return Player1Wins
	case result2.Ratio > result1.Ratio:
		return Player2Wins
	default:
		return Draw
	}
}

// Winner returns the index (0 or 1) of the winning player, or -1 for a draw.
func (outcome Outcome) Winner() int {
	switch outcome {
	case Player1Wins:
		return 0
	case Player2Wins:
		return 1
	default:
		return -1
	}
}

// String returns a string representation of the given Outcome.
func (outcome Outcome) String() string {
	switch outcome {
	case Player1Wins:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Player2Wins:
		return "0-1"
	default:
		return "?-?"
	}
}
