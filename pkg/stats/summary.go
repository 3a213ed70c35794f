package stats

import "math"

// Summary accumulates the outcomes of repeated games of one strategy.
type Summary struct {
	Games     int
	Successes int
	NoPicks   int // Games which ended without a selection.

	ratioSum   float64
	ratioSqSum float64
}

// Add records the outcome of a single game.
func (summary *Summary) Add(success bool, selected bool, ratio float64) {
	summary.Games++
	if success {
		summary.Successes++
	}

	if !selected {
		summary.NoPicks++
	}

	summary.ratioSum += ratio
	summary.ratioSqSum += ratio * ratio
}

// SuccessRate returns the fraction of games in which the best envelope was
// selected, along with its 95% Wilson score interval.
func (summary *Summary) SuccessRate() (lower float64, p float64, upper float64) {
	if summary.Games == 0 {
		return 0, 0, 0
	}

	n := float64(summary.Games)
	p = float64(summary.Successes) / n
	z := phiInv(0.975)

	center := (p + z*z/(2*n)) / (1 + z*z/n)
	spread := z / (1 + z*z/n) * math.Sqrt(p*(1-p)/n+z*z/(4*n*n))

	return math.Max(0, center-spread), p, math.Min(1, center+spread)
}

// MeanRatio returns the average ratio of the selected amount to the best
// amount, along with its standard deviation.
func (summary *Summary) MeanRatio() (mean float64, deviation float64) {
	if summary.Games == 0 {
		return 0, 0
	}

	n := float64(summary.Games)
	mean = summary.ratioSum / n
	variance := summary.ratioSqSum/n - mean*mean
	return mean, math.Sqrt(math.Max(0, variance))
}
