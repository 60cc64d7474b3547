// Command navcore wires the localizer, global planner, latency
// compensator, and navigation coordinator together and drives them through
// a scripted sequence of synthetic odometry/laser readings, grounded on
// the teacher's single-purpose cmd/*/main.go tools (e.g. cmd/sweep,
// cmd/tools/algo-compare) that process data through the core pipeline
// outside of the live transport. It is not the "simulator entry point"
// spec §1 calls out of scope: it drives the core's public API directly,
// in-process, with no physics/dynamics model of its own.
package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/google/uuid"

	"github.com/ConnorCrwf/robot-nav-core/internal/config"
	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
	"github.com/ConnorCrwf/robot-nav-core/internal/latency"
	"github.com/ConnorCrwf/robot-nav-core/internal/localize"
	"github.com/ConnorCrwf/robot-nav-core/internal/monitoring"
	"github.com/ConnorCrwf/robot-nav-core/internal/nav"
	"github.com/ConnorCrwf/robot-nav-core/internal/planner"
	"github.com/ConnorCrwf/robot-nav-core/internal/store"
	"github.com/ConnorCrwf/robot-nav-core/internal/timeutil"
	"github.com/ConnorCrwf/robot-nav-core/internal/viz"
)

func main() {
	mapsDir := flag.String("maps-dir", "maps", "Directory containing <name>.txt vector map files")
	mapName := flag.String("map", "demo", "Map name (resolves to <maps-dir>/<name>.txt)")
	configPath := flag.String("config", "", "Optional JSON tuning config; falls back to compiled defaults")

	startX := flag.Float64("start-x", 0.5, "Initial pose X (m)")
	startY := flag.Float64("start-y", 0.5, "Initial pose Y (m)")
	startTheta := flag.Float64("start-theta", 0, "Initial heading (rad)")

	goalX := flag.Float64("goal-x", 3.5, "Goal X (m)")
	goalY := flag.Float64("goal-y", 2.5, "Goal Y (m)")

	ticks := flag.Int("ticks", 200, "Number of control ticks to run")

	dbPath := flag.String("db", "", "Optional sqlite path to record ticks and persist the loaded map")
	vizDir := flag.String("viz-dir", "", "Optional directory to render a final PNG/HTML scene into")

	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("navcore: load config: %v", err)
		}
		cfg = loaded
	}

	loc := localize.New(cfg.LocalizeConfig())
	startLoc := geom.Point{X: *startX, Y: *startY}
	if err := loc.Initialize(*mapsDir, *mapName, startLoc, *startTheta); err != nil {
		log.Fatalf("navcore: initialize localizer: %v", err)
	}

	plan := planner.New(cfg.PlannerConfig(), loc.Map())
	clk := timeutil.RealClock{}
	comp := latency.New(cfg.LatencyConfig(), clk)
	local := newSimpleLocalPlanner()
	coord := nav.New(nav.DefaultConfig(), loc, plan, comp, local)
	coord.SetGoal(geom.Point{X: *goalX, Y: *goalY})

	var db *store.Store
	var runID uuid.UUID
	haveRun := false
	if *dbPath != "" {
		var err error
		db, err = store.Open(*dbPath)
		if err != nil {
			log.Fatalf("navcore: open store: %v", err)
		}
		defer db.Close()

		if err := db.SaveMap(*mapName, loc.Map(), clk); err != nil {
			log.Printf("navcore: save map: %v", err)
		}
		id, err := db.StartRun(*mapName, clk)
		if err != nil {
			log.Printf("navcore: start run: %v", err)
		} else {
			runID = id
			haveRun = true
		}
	}

	truePose := geom.NewPose2D(*startX, *startY, *startTheta)

	const deltaT = 0.05
	const rangeMin, rangeMax = 0.05, 8.0
	const angleMin, angleMax = -math.Pi / 2, math.Pi / 2
	const numRanges = 180

	for i := 0; i < *ticks; i++ {
		loc.ObserveOdometry(geom.Point{X: truePose.X, Y: truePose.Y}, truePose.Theta)

		ranges := syntheticScan(loc.Map(), truePose, numRanges, rangeMin, rangeMax, angleMin, angleMax)
		loc.ObserveLaser(ranges, rangeMin, rangeMax, angleMin, angleMax)

		cmd, ok := coord.Tick(nav.LiveScan{})
		est := loc.GetLocation()

		if db != nil && haveRun {
			predicted := comp.PredictedState(geom.Point{X: est.X, Y: est.Y}, est.Theta)
			target := geom.Point{}
			if path := coord.Path(); len(path) > 0 {
				target = path[0]
			}
			tick := store.TickRecord{
				Index:         i,
				EstimatedPose: est,
				PredictedPose: predicted,
				Target:        target,
				CommandVx:     cmd.Vx,
				CommandVy:     cmd.Vy,
				CommandOmega:  cmd.Omega,
			}
			if err := db.RecordTick(runID, tick, clk); err != nil {
				monitoring.Logf("navcore: record tick %d: %v", i, err)
			}
		}

		if !ok {
			log.Printf("tick %d: holding position (no reachable target), est=%+v", i, est)
			continue
		}

		truePose = truePose.Translate(cmd.Vx*deltaT, cmd.Vy*deltaT, cmd.Omega*deltaT)
		log.Printf("tick %d: est=%+v true=%+v cmd=%+v", i, est, truePose, cmd)

		if geom.Dist(geom.Point{X: truePose.X, Y: truePose.Y}, geom.Point{X: *goalX, Y: *goalY}) < 0.1 {
			log.Printf("navcore: reached goal at tick %d", i)
			break
		}
	}

	if *vizDir != "" {
		if err := os.MkdirAll(*vizDir, 0o755); err != nil {
			log.Fatalf("navcore: make viz dir: %v", err)
		}
		scene := viz.Scene{Map: loc.Map(), Particles: loc.Particles(), Path: coord.Path()}
		if err := viz.RenderPNG(scene, *vizDir+"/scene.png"); err != nil {
			log.Printf("navcore: render png: %v", err)
		}
		if err := viz.RenderHTML(scene, *vizDir+"/scene.html"); err != nil {
			log.Printf("navcore: render html: %v", err)
		}
	}
}

// syntheticScan ray-casts numRanges uniform rays against vmap from pose,
// standing in for a live laser scanner so this harness can drive
// ObserveLaser without a real sensor. Rays that miss the map report
// rangeMax, matching a typical LaserScan's out-of-range convention.
func syntheticScan(vmap *geom.VectorMap, pose geom.Pose2D, numRanges int, rangeMin, rangeMax, angleMin, angleMax float64) []float64 {
	ranges := make([]float64, numRanges)
	for i := 0; i < numRanges; i++ {
		angle := angleMin
		if numRanges > 1 {
			angle += float64(i) * (angleMax - angleMin) / float64(numRanges-1)
		}
		direction := pose.Theta + angle
		end := geom.Point{
			X: pose.X + rangeMax*math.Cos(direction),
			Y: pose.Y + rangeMax*math.Sin(direction),
		}
		ray := geom.Segment{A: geom.Point{X: pose.X, Y: pose.Y}, B: end}
		if hit, ok := vmap.Intersect(ray); ok && hit.Range >= rangeMin && hit.Range <= rangeMax {
			ranges[i] = hit.Range
		} else {
			ranges[i] = rangeMax
		}
	}
	return ranges
}
