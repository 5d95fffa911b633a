package asteroids

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// dice is the game's only source of randomness. It is seeded from the
// runtime config so a run can be replayed.
type dice struct {
	src  *rand.PCG
	coin distuv.Bernoulli
}

func newDice(seed int64) *dice {
	src := rand.NewPCG(uint64(seed), uint64(seed)>>1|1) //#nosec G115 -- seed bits are reinterpreted, not measured
	return &dice{
		src:  src,
		coin: distuv.Bernoulli{P: 0.5, Src: src},
	}
}

// Uniform draws from [min, max).
func (d *dice) Uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return distuv.Uniform{Min: min, Max: max, Src: d.src}.Rand()
}

// Flip returns true half of the time.
func (d *dice) Flip() bool {
	return d.coin.Rand() == 1
}
