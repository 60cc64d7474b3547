package viz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
	"github.com/ConnorCrwf/robot-nav-core/internal/localize"
)

func testScene() Scene {
	return Scene{
		Map: &geom.VectorMap{Segments: []geom.Segment{
			{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 0}},
		}},
		Particles: []localize.Particle{
			{Pose: geom.NewPose2D(0.1, 0.1, 0)},
			{Pose: geom.NewPose2D(0.2, -0.1, 0)},
		},
		Path: []geom.Point{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 1, Y: 0}},
	}
}

func TestRenderPNGWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.png")
	require.NoError(t, RenderPNG(testScene(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderHTMLWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.html")
	require.NoError(t, RenderHTML(testScene(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Navigation Scene")
}

func TestBuildEchartsScatterHandlesEmptyScene(t *testing.T) {
	buf, err := buildEchartsScatter(Scene{})
	require.NoError(t, err)
	assert.NotEmpty(t, buf.String())
}
