package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"BaselExplorer/internal/model"
)

// Snapshot is a finished or in-progress run exported for review. It is a
// report, not a save game: loading one does not resume the simulation.
type Snapshot struct {
	State      model.BankState `json:"state"`
	Summary    Summary         `json:"summary"`
	ExportedAt time.Time       `json:"exported_at"`
}

// SaveSnapshot writes snap as indented JSON.
func SaveSnapshot(filePath string, snap *Snapshot) error {
	snap.ExportedAt = time.Now()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(filePath string) (*Snapshot, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}
