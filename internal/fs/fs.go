package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

const (
	// Strict permissions (gosec-compliant defaults)
	DirStrict  = 0o750 // rwxr-x---
	FileStrict = 0o600 // rw-------

	// Git-compatible permissions, matching what git itself creates
	DirGit   = 0o755 // rwxr-xr-x
	FileExec = 0o755 // rwxr-xr-x - executable file
	FileGit  = 0o644 // rw-r--r--
)

// DirectoryExists checks if a directory exists
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FileExists checks if path exists and is a file (not a directory)
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// WriteFileAtomic writes data to a file atomically by writing to a temp file then renaming
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmpPath := fmt.Sprintf("%s.tmp.%d.%d", path, os.Getpid(), time.Now().UnixNano())
	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// PathHasPrefix checks if path lies below prefix, accounting for path separators.
// A path is not considered to lie below itself. On Windows, comparison is
// case-insensitive.
func PathHasPrefix(path, prefix string) bool {
	cleanPath := filepath.Clean(path)
	cleanPrefix := filepath.Clean(prefix)
	if cleanPrefix == "." {
		return cleanPath != "."
	}
	cleanPrefix += string(filepath.Separator)

	if runtime.GOOS == "windows" {
		return strings.HasPrefix(strings.ToLower(cleanPath), strings.ToLower(cleanPrefix))
	}
	return strings.HasPrefix(cleanPath, cleanPrefix)
}
