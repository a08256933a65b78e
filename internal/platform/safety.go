package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDevRun reports whether the binary was built by "go run" or "go test".
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	// go run builds into the system temp dir.
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}

	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolveAppDir returns the application-data directory to use. With forceTemp
// a directory outside the system temp dir is re-rooted under
// <temp>/marsnote-dev so development runs never touch real notes.
func ResolveAppDir(dir string, forceTemp bool) string {
	if !forceTemp {
		return dir
	}

	clean := filepath.Clean(dir)
	rel, err := filepath.Rel(os.TempDir(), clean)
	if err == nil && !strings.HasPrefix(rel, "..") {
		return clean
	}

	name := filepath.Base(clean)
	if dir == "" || name == "." || name == string(os.PathSeparator) {
		name = "default"
	}
	return filepath.Join(os.TempDir(), "marsnote-dev", name)
}
