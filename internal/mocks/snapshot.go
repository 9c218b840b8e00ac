// Package mocks provides hand-written test doubles.
package mocks

import (
	"errors"

	"github.com/scoop-api/internal/models"
)

// SnapshotRecorder is a snapshot.Gateway that keeps every saved
// snapshot in memory. Set FailSaves to exercise the swallowed-failure
// path, or Stored to seed the next Load.
type SnapshotRecorder struct {
	Stored    *models.Snapshot
	Saved     []*models.Snapshot
	FailSaves bool
	FailLoads bool
}

// NewSnapshotRecorder creates an empty recorder.
func NewSnapshotRecorder() *SnapshotRecorder {
	return &SnapshotRecorder{}
}

// Load returns the seeded snapshot, if any.
func (r *SnapshotRecorder) Load() (*models.Snapshot, error) {
	if r.FailLoads {
		return nil, errors.New("load failed")
	}
	return r.Stored, nil
}

// Save records the snapshot.
func (r *SnapshotRecorder) Save(snap *models.Snapshot) error {
	if r.FailSaves {
		return errors.New("save failed")
	}
	r.Saved = append(r.Saved, snap)
	r.Stored = snap
	return nil
}

// LastSaved returns the most recently recorded snapshot, or nil.
func (r *SnapshotRecorder) LastSaved() *models.Snapshot {
	if len(r.Saved) == 0 {
		return nil
	}
	return r.Saved[len(r.Saved)-1]
}
