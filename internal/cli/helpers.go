package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/evergreen-labs/evergreen/internal/library"
)

// openLibrary loads both custom stores and returns the merge view over
// them and the seed catalog.
func openLibrary() (*library.Library, error) {
	lib, err := library.Open()
	if err != nil {
		return nil, fmt.Errorf("opening library: %w", err)
	}
	return lib, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// notify prints a non-blocking notice to stderr, keeping stdout clean for
// list output and redirection.
func notify(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
