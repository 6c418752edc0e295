package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
)

// SchemaVersion is written into every snapshot. Readers accept any
// snapshot with the same major version.
const SchemaVersion = "1.0.0"

// snapshot is the on-disk envelope for a persisted collection.
type snapshot[T any] struct {
	SchemaVersion string `json:"schema_version"`
	Records       []T    `json:"records"`
}

// readSnapshot loads and decodes a snapshot file. A missing file is not an
// error: it returns (nil, false, nil) so the caller can start empty.
func readSnapshot[T any](path string) ([]T, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	var snap snapshot[T]
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	if err := checkSchemaVersion(snap.SchemaVersion); err != nil {
		return nil, false, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return snap.Records, true, nil
}

// writeSnapshot serializes the full collection and overwrites the snapshot
// file. The write goes through a temp file and rename so readers never see
// a partial snapshot.
func writeSnapshot[T any](path string, records []T) error {
	snap := snapshot[T]{SchemaVersion: SchemaVersion, Records: records}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalizing snapshot %s: %w", path, err)
	}
	return nil
}

// checkSchemaVersion accepts snapshots whose major version matches ours.
// An empty version (pre-versioning snapshot) is treated as compatible.
func checkSchemaVersion(version string) error {
	if version == "" {
		return nil
	}
	sv, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("parsing schema version %q: %w", version, err)
	}
	ours := semver.MustParse(SchemaVersion)
	if sv.Major() != ours.Major() {
		return fmt.Errorf("%w: snapshot has %s, this release reads %s", ErrIncompatibleSnapshot, version, SchemaVersion)
	}
	return nil
}
