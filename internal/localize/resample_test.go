package localize

import (
	"testing"

	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
	"github.com/ConnorCrwf/robot-nav-core/internal/randsrc"
	"github.com/stretchr/testify/require"
)

func newTestFilter(n int) *FilterState {
	cfg := DefaultConfig()
	cfg.NumParticles = n
	f := New(cfg)
	f.rng = randsrc.New(cfg.Seed)
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = Particle{Pose: geom.NewPose2D(float64(i), 0, 0)}
	}
	return f
}

func TestResample_PreservesParticleCount(t *testing.T) {
	f := newTestFilter(50)
	f.particles[0].LogWeight = 0
	for i := 1; i < 50; i++ {
		f.particles[i].LogWeight = -1000
	}
	f.maxLogWeight = 0

	f.Resample()
	require.Len(t, f.particles, 50)
}

func TestResample_HeavyParticleDominates(t *testing.T) {
	f := newTestFilter(50)
	f.particles[0].LogWeight = 0
	heavyPose := f.particles[0].Pose
	for i := 1; i < 50; i++ {
		f.particles[i].LogWeight = -1000
	}
	f.maxLogWeight = 0

	f.Resample()
	for _, p := range f.particles {
		require.Equal(t, heavyPose, p.Pose)
	}
}

func TestResample_ZeroTotalWeightIsNoOp(t *testing.T) {
	f := newTestFilter(10)
	for i := range f.particles {
		f.particles[i].LogWeight = -1e9
	}
	f.maxLogWeight = 0
	before := len(f.particles)

	f.Resample()
	require.Len(t, f.particles, before)
}

func TestResample_EmptyParticleSet(t *testing.T) {
	f := newTestFilter(0)
	f.Resample() // must not panic
	require.Empty(t, f.particles)
}
