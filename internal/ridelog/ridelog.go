// Package ridelog persists per-ride telemetry so a ride can be reviewed
// after the fact: one sample row per second of riding plus a session summary
// row written at shutdown.
package ridelog

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the ride log database.
type DB struct {
	*sql.DB
}

// Open opens (or creates) the ride log at path. Use ":memory:" for an
// ephemeral log.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ride log: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS samples (
			session_id TEXT,
			heading DOUBLE,
			speed DOUBLE,
			remaining_distance DOUBLE,
			eta DOUBLE,
			battery INTEGER,
			detections INTEGER,
			timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			started_at TIMESTAMP,
			ended_at TIMESTAMP,
			frames BIGINT,
			frames_published BIGINT,
			frames_dropped BIGINT
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("create ride log schema: %w", err)
	}

	return &DB{db}, nil
}

// Sample is one telemetry row. Pointer fields are NULL when unknown.
type Sample struct {
	Heading           float64
	Speed             *float64
	RemainingDistance *float64
	ETA               *float64
	Battery           *int
	Detections        int
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// RecordSample appends one telemetry sample for the session.
func (db *DB) RecordSample(sessionID string, s Sample) error {
	battery := sql.NullInt64{}
	if s.Battery != nil {
		battery = sql.NullInt64{Int64: int64(*s.Battery), Valid: true}
	}
	_, err := db.Exec(
		"INSERT INTO samples (session_id, heading, speed, remaining_distance, eta, battery, detections) VALUES (?, ?, ?, ?, ?, ?, ?)",
		sessionID, s.Heading, nullFloat(s.Speed), nullFloat(s.RemainingDistance), nullFloat(s.ETA), battery, s.Detections,
	)
	if err != nil {
		return fmt.Errorf("record sample: %w", err)
	}
	return nil
}

// Session is the summary row written once at shutdown.
type Session struct {
	ID              string
	StartedAt       time.Time
	EndedAt         time.Time
	Frames          uint64
	FramesPublished uint64
	FramesDropped   uint64
}

// RecordSession writes the session summary.
func (db *DB) RecordSession(s Session) error {
	_, err := db.Exec(
		"INSERT INTO sessions (session_id, started_at, ended_at, frames, frames_published, frames_dropped) VALUES (?, ?, ?, ?, ?, ?)",
		s.ID, s.StartedAt, s.EndedAt, s.Frames, s.FramesPublished, s.FramesDropped,
	)
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

// SampleCount returns the number of samples stored for a session.
func (db *DB) SampleCount(sessionID string) (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM samples WHERE session_id = ?", sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count samples: %w", err)
	}
	return n, nil
}
