// Package config resolves where the database lives and reads the global config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DBFile is the database file name.
	DBFile = "rclip_db.json"
	// DBPathEnv overrides the database path when set.
	DBPathEnv = "RCLIP_DB"
)

// PathSource records which setting chose the database path.
type PathSource int

const (
	SourceFlag PathSource = iota
	SourceEnv
	SourceGlobalConfig
	SourceExecutable
)

func (s PathSource) String() string {
	switch s {
	case SourceFlag:
		return "flag"
	case SourceEnv:
		return "env"
	case SourceGlobalConfig:
		return "global-config"
	case SourceExecutable:
		return "executable"
	default:
		return "unknown"
	}
}

// DBLocation is a resolved database path and where it came from.
type DBLocation struct {
	Path   string
	Source PathSource
}

// executablePath is replaced in tests.
var executablePath = os.Executable

// ExecutableDir returns the directory containing the running executable,
// with symlinks resolved where possible.
func ExecutableDir() (string, error) {
	exe, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ResolveDBPath picks the database path. Precedence: flagValue, then the
// RCLIP_DB environment variable, then db_path from the global config, then
// rclip_db.json next to the executable.
func ResolveDBPath(flagValue string) (DBLocation, error) {
	if flagValue != "" {
		return DBLocation{Path: ExpandPath(flagValue), Source: SourceFlag}, nil
	}

	if env := os.Getenv(DBPathEnv); env != "" {
		return DBLocation{Path: ExpandPath(env), Source: SourceEnv}, nil
	}

	cfg, err := LoadGlobalConfig()
	if err != nil {
		return DBLocation{}, err
	}
	if cfg.DBPath != "" {
		return DBLocation{Path: cfg.DBPath, Source: SourceGlobalConfig}, nil
	}

	dir, err := ExecutableDir()
	if err != nil {
		return DBLocation{}, err
	}
	return DBLocation{Path: filepath.Join(dir, DBFile), Source: SourceExecutable}, nil
}

// ExpandPath expands a leading ~ or ~/ to the user's home directory.
// Other paths, including ~user forms, are returned unchanged.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
