package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/evergreen-labs/evergreen/internal/branding"
)

// Directory and file name constants for the userdata convention.
const (
	UserdataDir     = "userdata"
	LibraryDir      = "library"
	ExportsDir      = "exports"
	PreferencesFile = "preferences.yaml"

	ActivitySnapshotFile = "activities.json"
	QuizSnapshotFile     = "quiz.json"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// GetUserdataRoot returns the path to the userdata directory.
// It checks the EVERGREEN_USERDATA environment variable first,
// then falls back to ~/.evergreen/userdata.
func GetUserdataRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("USERDATA")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), UserdataDir), nil
}

// GetLibraryDir returns the path to the library/ directory holding the
// persisted custom-store snapshots.
func GetLibraryDir() (string, error) {
	root, err := GetUserdataRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, LibraryDir), nil
}

// GetExportsDir returns the path to the exports/ directory.
func GetExportsDir() (string, error) {
	root, err := GetUserdataRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, ExportsDir), nil
}

// GetPreferencesPath returns the path to preferences.yaml within userdata.
func GetPreferencesPath() (string, error) {
	root, err := GetUserdataRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, PreferencesFile), nil
}

// GetActivitySnapshotPath returns the path to the custom-activities snapshot.
func GetActivitySnapshotPath() (string, error) {
	dir, err := GetLibraryDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ActivitySnapshotFile), nil
}

// GetQuizSnapshotPath returns the path to the custom quiz/song snapshot.
func GetQuizSnapshotPath() (string, error) {
	dir, err := GetLibraryDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, QuizSnapshotFile), nil
}
