package stats

import "math"

// Penta counts the results of game pairs from one player's point of view.
// Both games of a pair are played on the same terms, so the pair as a whole
// is a less noisy sample of the players' relative strength than either game.
type Penta struct {
	LL int // Both games lost.
	LD int // One game lost and the other drawn.
	DD int // Both games drawn, or one won and the other lost.
	WD int // One game won and the other drawn.
	WW int // Both games won.
}

// Add records a pair with the given game results, where +1 is a win, 0 is a
// draw, and -1 is a loss.
func (penta *Penta) Add(result1, result2 int) {
	switch result1 + result2 {
	case -2:
		penta.LL++
	case -1:
		penta.LD++
	case 0:
		penta.DD++
	case 1:
		penta.WD++
	case 2:
		penta.WW++
	}
}

// Pairs returns the number of recorded pairs.
func (penta Penta) Pairs() int {
	return penta.LL + penta.LD + penta.DD + penta.WD + penta.WW
}

// Elo calculates the best fit elo for the recorded game pairs using a
// pentanomial model. It also calculates the maximum and minimum values of
// that elo estimate (the error bounds) with p < 0.05.
func (penta Penta) Elo() (muMin float64, mu float64, muMax float64) {
	N := float64(penta.Pairs()) + 2.5 // total number of pairs

	ll := (float64(penta.LL) + 0.5) / N // measured loss-loss probability
	ld := (float64(penta.LD) + 0.5) / N // measured loss-draw probability
	dd := (float64(penta.DD) + 0.5) / N // measured win-loss/draw-draw probability
	wd := (float64(penta.WD) + 0.5) / N // measured win-draw probability
	ww := (float64(penta.WW) + 0.5) / N // measured win-win probability

	// empirical mean of random variable
	mu = ww + 0.75*wd + 0.5*dd + 0.25*ld

	// standard deviation of the random variable
	sigma := math.Sqrt(
		ww*math.Pow(1-mu, 2)+
			wd*math.Pow(0.75-mu, 2)+
			dd*math.Pow(0.50-mu, 2)+
			ld*math.Pow(0.25-mu, 2)+
			ll*math.Pow(0.00-mu, 2),
	) / math.Sqrt(N)

	muMax = mu + phiInv(0.975)*sigma // upper bound
	muMin = mu + phiInv(0.025)*sigma // lower bound

	return clampElo(muMin), clampElo(mu), clampElo(muMax)
}

// EloError returns the pentanomial elo estimate and its error margin.
func (penta Penta) EloError() (elo float64, err float64) {
	lower, elo, upper := penta.Elo()
	return elo, math.Abs(math.Max(upper-elo, elo-lower))
}
