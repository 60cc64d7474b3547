package randsrc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministic_SameSeedSameStream(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 50; i++ {
		require.Equal(t, a.Gaussian(0, 1), b.Gaussian(0, 1))
	}
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Uniform(-1, 1), b.Uniform(-1, 1))
	}
}

func TestGaussian_ZeroSigmaIsDegenerate(t *testing.T) {
	s := New(1)
	require.Equal(t, 3.0, s.Gaussian(3.0, 0))
	require.Equal(t, 3.0, s.Gaussian(3.0, -1))
}

func TestUniform_Bounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.Uniform(-2, 2)
		require.GreaterOrEqual(t, v, -2.0)
		require.Less(t, v, 2.0)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	require.NotEqual(t, a.Gaussian(0, 1), b.Gaussian(0, 1))
}
