package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigPaths records where configuration was found. Missing files are
// empty strings.
type ConfigPaths struct {
	// User is the per-user config, e.g. ~/.config/mdast/config.yaml.
	User string

	// Project is the nearest .mdast.yml or .mdast.yaml above the working directory.
	Project string

	// Explicit is the path given with --config.
	Explicit string
}

// ProjectConfigFiles are the project config names, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ProjectConfigFiles = []string{".mdast.yml", ".mdast.yaml"}

//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds the user config and searches upward from workDir
// for a project config.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		User:    findUserConfig(),
		Project: project,
	}, nil
}

// UserConfigDir returns the directory holding the per-user config,
// honouring XDG_CONFIG_HOME.
func UserConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mdast")
}

func findUserConfig() string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		if p := filepath.Join(dir, name); fileExists(p) {
			return p
		}
	}
	return ""
}

// FindProjectConfig searches upward from startDir for a project config.
// The search stops after a directory holding a VCS root marker, at the
// home directory, or at the filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	home, _ := os.UserHomeDir() //nolint:errcheck // no home means no home boundary

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		for _, name := range ProjectConfigFiles {
			if p := filepath.Join(dir, name); fileExists(p) {
				return p, nil
			}
		}

		if isVCSRoot(dir) || (home != "" && dir == home) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
