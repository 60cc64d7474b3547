package localize

import "math"

// Resample implements systematic low-variance resampling (spec §4.4): a
// single uniform draw stepped by S/N through the cumulative normalized
// weight array produces exactly N particles with lower variance than
// independent multinomial draws.
//
// If the total weight is zero the call is a no-op (spec §4.4 failure
// semantics: invalid input is silently ignored).
func (f *FilterState) Resample() {
	n := len(f.particles)
	if n == 0 {
		return
	}

	weights := make([]float64, n)
	cumulative := make([]float64, n)
	var sum float64
	for i, p := range f.particles {
		w := math.Exp(p.LogWeight - f.maxLogWeight)
		weights[i] = w
		sum += w
		cumulative[i] = sum
	}
	if sum == 0 {
		return
	}

	step := sum / float64(n)
	u := f.rng.Float64() * step

	resampled := make([]Particle, 0, n)
	i := 0
	for len(resampled) < n {
		for i < n-1 && u >= cumulative[i] {
			i++
		}
		resampled = append(resampled, f.particles[i])
		u += step
	}

	f.particles = resampled
	f.maxLogWeight = 0
}
