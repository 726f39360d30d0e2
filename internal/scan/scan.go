package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	kerrors "github.com/envie-dev/envie-host/internal/errors"
)

// Directories never descended into. node_modules alone can hold tens of
// thousands of files and never contains user-owned config.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// FindConfigFiles returns the config files under root matching the given
// patterns. With no patterns, the whole tree is walked and filtered to the
// default targets (.env variants and config.local.yaml).
//
// Results are absolute paths, deduplicated, in discovery order.
func FindConfigFiles(root string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return walkForConfigFiles(root)
	}

	var files []string
	seen := make(map[string]bool) // Deduplicate.

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, root)
		if err != nil {
			return nil, err
		}

		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, kerrors.ErrNoFilesFound
	}

	return files, nil
}

func resolvePattern(pattern string, root string) ([]string, error) {
	// Convert relative patterns to absolute paths based on the scan root.
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(root, pattern)
	}

	// A directory argument scans that subtree.
	info, err := os.Stat(absPattern)
	if err == nil && info.IsDir() {
		return walkForConfigFiles(absPattern)
	}

	// Glob characters go through doublestar for ** support.
	if strings.ContainsAny(pattern, "*?[") {
		return expandGlob(absPattern)
	}

	// Treat as a literal file path.
	if _, err := os.Stat(absPattern); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", pattern)
	}

	if !isConfigFile(absPattern) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrInvalidFileType, pattern)
	}

	return []string{absPattern}, nil
}

func expandGlob(absPattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", absPattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if inSkippedDir(m) {
			continue
		}
		if isConfigFile(m) {
			filtered = append(filtered, m)
		}
	}

	return filtered, nil
}

func walkForConfigFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if isConfigFile(path) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// isConfigFile reports whether path names one of the config files the
// front-end cares about: any .env variant or a config.local.yaml.
func isConfigFile(path string) bool {
	base := filepath.Base(path)
	return strings.Contains(base, ".env") || base == "config.local.yaml"
}

func inSkippedDir(path string) bool {
	parts := strings.Split(filepath.ToSlash(path), "/")
	for _, part := range parts {
		if skipDirs[part] {
			return true
		}
	}
	return false
}
