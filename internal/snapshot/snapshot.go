// Package snapshot persists the whole board state to a single YAML file
// and loads it back at startup. There is no structured storage engine
// underneath: every save rewrites the complete state.
package snapshot

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/scoop-api/internal/models"
)

// Gateway is the persistence boundary the board writes through.
type Gateway interface {
	// Load reads the snapshot from storage. A missing snapshot is not
	// an error: it returns (nil, nil) and the caller starts empty.
	Load() (*models.Snapshot, error)
	// Save serializes the full state. Failures are non-fatal to the
	// caller's in-memory state.
	Save(snap *models.Snapshot) error
}

// FileGateway stores snapshots in a YAML file at a fixed path.
type FileGateway struct {
	path string
	log  zerolog.Logger
}

// NewFileGateway creates a gateway writing to path.
func NewFileGateway(path string, log zerolog.Logger) *FileGateway {
	return &FileGateway{
		path: path,
		log:  log.With().Str("component", "snapshot").Logger(),
	}
}

// Load reads and decodes the snapshot file.
func (g *FileGateway) Load() (*models.Snapshot, error) {
	data, err := os.ReadFile(g.path)
	if os.IsNotExist(err) {
		g.log.Info().Str("path", g.path).Msg("No snapshot file, starting fresh")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", g.path, err)
	}

	var snap models.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", g.path, err)
	}
	return &snap, nil
}

// Save encodes the snapshot and replaces the file atomically via a
// temp-file rename, so a crash mid-write never corrupts the last good
// snapshot.
func (g *FileGateway) Save(snap *models.Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp := g.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, g.path); err != nil {
		return fmt.Errorf("replace snapshot %s: %w", g.path, err)
	}
	return nil
}

// Disabled is a no-op gateway for test mode and snapshot-less runs.
type Disabled struct{}

// Load always starts fresh.
func (Disabled) Load() (*models.Snapshot, error) { return nil, nil }

// Save discards the snapshot.
func (Disabled) Save(*models.Snapshot) error { return nil }
