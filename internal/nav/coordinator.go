package nav

import (
	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
	"github.com/ConnorCrwf/robot-nav-core/internal/latency"
	"github.com/ConnorCrwf/robot-nav-core/internal/localize"
	"github.com/ConnorCrwf/robot-nav-core/internal/monitoring"
	"github.com/ConnorCrwf/robot-nav-core/internal/planner"
)

// Coordinator owns the current goal and the active path (spec §4.7). It
// binds a localizer, a global planner, and a latency compensator -- all
// constructed and owned by the caller -- behind the single per-tick Tick
// call the external control timer drives.
type Coordinator struct {
	Config Config

	Localizer   *localize.FilterState
	Planner     *planner.GlobalPlanner
	Compensator *latency.Compensator
	Local       LocalPlanner

	goal     geom.Point
	haveGoal bool
	path     []geom.Point
}

// New constructs a Coordinator bound to the given components.
func New(cfg Config, loc *localize.FilterState, plan *planner.GlobalPlanner, comp *latency.Compensator, local LocalPlanner) *Coordinator {
	return &Coordinator{Config: cfg, Localizer: loc, Planner: plan, Compensator: comp, Local: local}
}

// SetGoal records a new navigation goal and invalidates the active path --
// but not the filter (spec §5 cancellation: "A new goal invalidates the
// path but not the filter").
func (c *Coordinator) SetGoal(goal geom.Point) {
	c.goal = goal
	c.haveGoal = true
	c.path = nil
}

// Path returns the coordinator's current waypoint sequence, for
// visualization or tests.
func (c *Coordinator) Path() []geom.Point {
	return c.path
}

// Tick runs one control-loop iteration (spec §4.7):
//  1. read the filter's pose estimate;
//  2. query the compensator for the predicted pose;
//  3. replan if triggered;
//  4. select the carrot target and hand it, the predicted pose, and the
//     live scan to the external local planner;
//  5. record the returned command back into the compensator.
//
// If no local target is reachable (no path, or the carrot selection finds
// nothing within radius and clear of obstacles), Tick reports ok=false and
// the caller should hold position (spec §7: "on planning failure the robot
// stops").
func (c *Coordinator) Tick(scan LiveScan) (cmd Command, ok bool) {
	pose := c.Localizer.GetLocation()
	c.Compensator.RecordObservation()
	predicted := c.Compensator.PredictedState(geom.Point{X: pose.X, Y: pose.Y}, pose.Theta)

	if c.needsReplan(predicted, scan) {
		c.replan(predicted)
	}

	target, found := c.selectLocalTarget(predicted, scan)
	if !found {
		c.Compensator.RecordNewInput(0, 0, 0)
		return Command{}, false
	}

	cmd = c.Local.PlanLocal(predicted, target, scan)
	c.Compensator.RecordNewInput(cmd.Vx, cmd.Vy, cmd.Omega)
	return cmd, true
}

// replan invokes the global planner from the predicted pose to the current
// goal and replaces the active path, including the empty-path "no path
// found" result (spec §4.5 failure: empty sequence).
func (c *Coordinator) replan(predicted geom.Pose2D) {
	from := geom.Point{X: predicted.X, Y: predicted.Y}
	path := c.Planner.Plan(from, c.goal)
	if len(path) == 0 {
		monitoring.LogSearchFailure("nav", "replan from %v to %v found no path", from, c.goal)
	}
	c.path = path
}

// needsReplan evaluates the four replan triggers of spec §4.7: no current
// path; predicted pose diverged from the path beyond the threshold; the
// first remaining segment is blocked by a live obstacle. ("Goal changed" is
// handled by SetGoal clearing c.path directly, which the "no current path"
// check then catches.)
func (c *Coordinator) needsReplan(predicted geom.Pose2D, scan LiveScan) bool {
	if !c.haveGoal {
		return false
	}
	if len(c.path) == 0 {
		return true
	}

	predPt := geom.Point{X: predicted.X, Y: predicted.Y}
	if c.distanceToPath(predPt) > c.Config.DivergenceThreshold {
		return true
	}
	if c.firstSegmentBlocked(predPt, scan) {
		return true
	}
	return false
}

// distanceToPath returns the minimum distance from pt to the active path's
// polyline (point-to-segment across consecutive waypoints).
func (c *Coordinator) distanceToPath(pt geom.Point) float64 {
	if len(c.path) == 0 {
		return 0
	}
	best := geom.Dist(pt, c.path[0])
	for i := 0; i+1 < len(c.path); i++ {
		if d := geom.PointToSegmentDistance(pt, c.path[i], c.path[i+1]); d < best {
			best = d
		}
	}
	return best
}

// firstSegmentBlocked reports whether the segment from pt to the first
// remaining waypoint passes within ObstacleClearance of a live-scan point.
func (c *Coordinator) firstSegmentBlocked(pt geom.Point, scan LiveScan) bool {
	if len(c.path) == 0 {
		return false
	}
	return segmentBlocked(pt, c.path[0], scan, c.Config.ObstacleClearance)
}

// selectLocalTarget walks the active path in order, returning the furthest
// waypoint that is both within the carrot radius of predicted and
// reachable by a straight segment clear of live obstacles (spec §4.7 step
// 3). Waypoints are visited in path order, not by raw distance, since the
// path itself may not be star-shaped around predicted.
func (c *Coordinator) selectLocalTarget(predicted geom.Pose2D, scan LiveScan) (geom.Point, bool) {
	predPt := geom.Point{X: predicted.X, Y: predicted.Y}
	var best geom.Point
	found := false
	for _, wp := range c.path {
		if geom.Dist(predPt, wp) > c.Config.CarrotRadius {
			break
		}
		if segmentBlocked(predPt, wp, scan, c.Config.ObstacleClearance) {
			break
		}
		best = wp
		found = true
	}
	return best, found
}

// segmentBlocked reports whether any live-scan point lies within clearance
// of the segment from a to b.
func segmentBlocked(a, b geom.Point, scan LiveScan, clearance float64) bool {
	if clearance <= 0 {
		return false
	}
	for _, obstacle := range scan.Points {
		if geom.PointToSegmentDistance(obstacle, a, b) < clearance {
			return true
		}
	}
	return false
}
