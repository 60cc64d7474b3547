package latency

import (
	"math"

	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
	"github.com/ConnorCrwf/robot-nav-core/internal/monitoring"
	"github.com/ConnorCrwf/robot-nav-core/internal/timeutil"
)

// CommandRecord is a single commanded body-frame velocity stamped with the
// time it was issued (spec §3). The buffer is ordered by insertion; t is
// strictly monotone.
type CommandRecord struct {
	Vx, Vy float64
	Omega  float64
	T      float64 // seconds, monotone clock reading
}

// Compensator owns the chronologically ordered command buffer and the
// timestamp of the most recent observation (spec §4.6). It is constructed
// by the caller and handed to the navigation coordinator.
type Compensator struct {
	Config Config
	clock  timeutil.Clock

	buffer []CommandRecord

	haveObservation   bool
	lastObservationAt float64
}

// New constructs a Compensator using clk as its time source for
// RecordNewInput/RecordObservation timestamps (grounded on the teacher's
// injectable Clock abstraction, internal/timeutil/clock.go).
func New(cfg Config, clk timeutil.Clock) *Compensator {
	if clk == nil {
		clk = timeutil.RealClock{}
	}
	return &Compensator{Config: cfg, clock: clk}
}

// now returns the current time as seconds since the Unix epoch, the clock
// domain CommandRecord.T and lastObservationAt are expressed in.
func (c *Compensator) now() float64 {
	return float64(c.clock.Now().UnixNano()) / 1e9
}

// RecordNewInput appends a command to the buffer, stamped with the current
// time. A non-monotone timestamp (one at or before the last recorded
// command's) is rejected per spec §4.6.
func (c *Compensator) RecordNewInput(vx, vy, omega float64) {
	t := c.now()
	if n := len(c.buffer); n > 0 && t <= c.buffer[n-1].T {
		monitoring.LogTransient("latency", "rejected non-monotone command at t=%.6f (last=%.6f)", t, c.buffer[n-1].T)
		return
	}
	c.buffer = append(c.buffer, CommandRecord{Vx: vx, Vy: vy, Omega: omega, T: t})
}

// RecordObservation stamps the time at which the most recent sensor state
// corresponds to -- the anchor PredictedState integrates forward from.
func (c *Compensator) RecordObservation() {
	c.lastObservationAt = c.now()
	c.haveObservation = true
}

// PredictedState returns the pose predicted Delta_s = Delta_a + Delta_o
// seconds into the future from the observation-stamped pose (loc, theta),
// by forward-integrating the buffered commands still unreflected in that
// observation (spec §4.6).
//
// If the buffer is empty, the input pose is returned unchanged.
func (c *Compensator) PredictedState(loc geom.Point, theta float64) geom.Pose2D {
	pose := geom.NewPose2D(loc.X, loc.Y, theta)
	if len(c.buffer) == 0 {
		return pose
	}

	cutoff := c.lastObservationAt - c.Config.ObservationDelay
	records := c.prune(cutoff)
	if len(records) == 0 {
		return pose
	}

	dt := c.Config.DeltaT
	for _, rec := range records {
		cos, sin := math.Cos(pose.Theta), math.Sin(pose.Theta)
		pose = geom.NewPose2D(
			pose.X+(rec.Vx*cos-rec.Vy*sin)*dt,
			pose.Y+(rec.Vx*sin+rec.Vy*cos)*dt,
			pose.Theta+rec.Omega*dt,
		)
	}
	return pose
}

// prune drops the records with timestamp <= cutoff from the stored buffer
// (they are already reflected in the observation-stamped input pose) and
// returns the remaining ones. Before any observation has been recorded,
// nothing is dropped. Repeated predictions with the same cutoff see the
// same records.
func (c *Compensator) prune(cutoff float64) []CommandRecord {
	if !c.haveObservation {
		return c.buffer
	}
	idx := 0
	for idx < len(c.buffer) && c.buffer[idx].T <= cutoff {
		idx++
	}
	c.buffer = c.buffer[idx:]
	return c.buffer
}
