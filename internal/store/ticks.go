package store

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
	"github.com/ConnorCrwf/robot-nav-core/internal/timeutil"
)

// TickRecord is one control tick's debugging snapshot: the filter's
// estimated pose, the compensator's predicted pose, a path waypoint, and
// the command handed to the external transport, mirroring the teacher's
// per-frame snapshot tables (lidar_bg_snapshot). cmd/navcore fills Target
// with the first waypoint of the coordinator's active path; the carrot the
// coordinator selected is not recorded.
type TickRecord struct {
	Index         int
	EstimatedPose geom.Pose2D
	PredictedPose geom.Pose2D
	Target        geom.Point
	CommandVx     float64
	CommandVy     float64
	CommandOmega  float64
}

// StartRun inserts a new run row and returns its generated id.
func (s *Store) StartRun(mapName string, clk timeutil.Clock) (uuid.UUID, error) {
	runID := uuid.New()
	_, err := s.db.Exec(
		`INSERT INTO nav_runs (run_id, map_name, started_unix_nanos) VALUES (?, ?, ?)`,
		runID.String(), mapName, clk.Now().UnixNano(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("start run: %w", err)
	}
	return runID, nil
}

type commandJSON struct {
	Vx, Vy, Omega float64
}

// RecordTick appends one tick row for runID.
func (s *Store) RecordTick(runID uuid.UUID, tick TickRecord, clk timeutil.Clock) error {
	est, err := json.Marshal(tick.EstimatedPose)
	if err != nil {
		return fmt.Errorf("record tick: %w", err)
	}
	pred, err := json.Marshal(tick.PredictedPose)
	if err != nil {
		return fmt.Errorf("record tick: %w", err)
	}
	target, err := json.Marshal(tick.Target)
	if err != nil {
		return fmt.Errorf("record tick: %w", err)
	}
	cmd, err := json.Marshal(commandJSON{Vx: tick.CommandVx, Vy: tick.CommandVy, Omega: tick.CommandOmega})
	if err != nil {
		return fmt.Errorf("record tick: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO nav_ticks (run_id, tick_index, unix_nanos, estimated_pose_json, predicted_pose_json, target_json, command_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID.String(), tick.Index, clk.Now().UnixNano(), string(est), string(pred), string(target), string(cmd),
	)
	if err != nil {
		return fmt.Errorf("record tick: %w", err)
	}
	return nil
}
