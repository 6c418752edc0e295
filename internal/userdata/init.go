package userdata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Default content for preferences.yaml.
const defaultPreferencesContent = `output_format: table
large_print: false
# trivia_amount: 5
# default_category: games
`

// InitGlobal creates the full userdata directory structure.
// It prints progress messages to w. Existing items are skipped with a message.
func InitGlobal(w io.Writer) error {
	root, err := GetUserdataRoot()
	if err != nil {
		return err
	}

	// Create root userdata directory.
	if err := ensureDir(w, root, DirPermNormal); err != nil {
		return err
	}

	// Create library/ directory for custom-store snapshots.
	if err := ensureDir(w, filepath.Join(root, LibraryDir), DirPermNormal); err != nil {
		return err
	}

	// Create exports/ directory for rendered lists.
	if err := ensureDir(w, filepath.Join(root, ExportsDir), DirPermNormal); err != nil {
		return err
	}

	// Create preferences.yaml.
	prefsPath := filepath.Join(root, PreferencesFile)
	if err := ensureFile(w, prefsPath, defaultPreferencesContent, FilePermNormal); err != nil {
		return err
	}

	return nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureFile creates a file with content if it doesn't exist.
func ensureFile(w io.Writer, path, content string, perm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
