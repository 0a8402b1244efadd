package output

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// ExpandPath expands a leading "~" to the invoking user's home directory and
// cleans the result. Other paths are returned cleaned but otherwise as given.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("could not expand %q: %w", path, err)
	}

	return filepath.Clean(expanded), nil
}
