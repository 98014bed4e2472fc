package target

import (
	"os"
	"path/filepath"
)

// FindProjectRoot searches upward from start for a directory containing Anchor.toml. It returns
// start itself when no such directory is found.
func FindProjectRoot(start string) string {
	current := start
	for range 10 { // limit search to avoid infinite loops
		if _, err := os.Stat(filepath.Join(current, AnchorFileName)); err == nil {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current { // reached filesystem root
			break
		}
		current = parent
	}

	return start
}
