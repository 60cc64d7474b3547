package localize

import (
	"math"
	"sync"

	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
)

// ObserveLaser reweights every particle against one laser scan by
// ray-casting a predicted scan from each particle's laser origin and
// comparing it to a lockstep-subsampled measured scan (spec §4.4).
//
// The update only runs if the filter's current pose estimate has moved
// between LaserMinMove and LaserMaxMove since the last successful sensor
// update -- this suppresses both initialization jitter (too little motion)
// and teleports (too much). Every ResampleInterval-th successful update
// triggers Resample.
func (f *FilterState) ObserveLaser(ranges []float64, rangeMin, rangeMax, angleMin, angleMax float64) {
	if len(f.particles) == 0 || len(ranges) == 0 {
		return
	}

	current := f.GetLocation()
	currentPt := geom.Point{X: current.X, Y: current.Y}
	moved := geom.Dist(currentPt, f.lastUpdateLoc)
	if moved < f.Config.LaserMinMove || moved > f.Config.LaserMaxMove {
		return
	}

	divisor := f.Config.RaySubsampleDivisor
	if divisor <= 0 {
		divisor = 10
	}
	m := len(ranges) / divisor
	if m <= 0 {
		return
	}
	stride := len(ranges) / m

	rayAngles := make([]float64, m)
	if m == 1 {
		rayAngles[0] = angleMin
	} else {
		step := (angleMax - angleMin) / float64(m-1)
		for i := 0; i < m; i++ {
			rayAngles[i] = angleMin + float64(i)*step
		}
	}

	update := func(p *Particle) {
		origin := p.LaserOrigin(f.Config.LaserForwardOffset)
		logw := 0.0
		for i, rayAngle := range rayAngles {
			measured := ranges[i*stride]
			if measured > 0.95*rangeMax || measured < 1.05*rangeMin {
				continue
			}

			direction := p.Pose.Theta + rayAngle
			end := geom.Point{
				X: origin.X + rangeMax*math.Cos(direction),
				Y: origin.Y + rangeMax*math.Sin(direction),
			}
			ray := geom.Segment{A: origin, B: end}

			hit, ok := f.vmap.Intersect(ray)
			if !ok || hit.Range <= rangeMin || hit.Range >= rangeMax {
				continue
			}
			predicted := hit.Range

			d := measured - predicted
			if d < -f.Config.DShort {
				d = -f.Config.DShort
			} else if d > f.Config.DLong {
				d = f.Config.DLong
			}
			varObs := f.Config.VarObs
			if varObs <= 0 {
				varObs = 1
			}
			logw += -(d * d) / varObs
		}
		p.LogWeight += logw
	}

	if f.Config.Parallel {
		var wg sync.WaitGroup
		for i := range f.particles {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				update(&f.particles[i])
			}(i)
		}
		wg.Wait()
	} else {
		for i := range f.particles {
			update(&f.particles[i])
		}
	}

	maxW := f.particles[0].LogWeight
	for _, p := range f.particles[1:] {
		if p.LogWeight > maxW {
			maxW = p.LogWeight
		}
	}
	f.maxLogWeight = maxW

	updated := f.GetLocation()
	f.lastUpdateLoc = geom.Point{X: updated.X, Y: updated.Y}

	f.updatesSinceResample++
	interval := f.Config.ResampleInterval
	if interval <= 0 {
		interval = 5
	}
	if f.updatesSinceResample >= interval {
		f.Resample()
		f.updatesSinceResample = 0
	}
}
