// Package fileutil provides file and directory utilities for asset output.
package fileutil

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for file utility operations.
var (
	ErrTargetDirExists = errors.New("target directory already exists (use --force to overwrite)")
	ErrOutputExists    = errors.New("output file already exists (use --force to overwrite)")
)

// Directory and file permissions for generated assets.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// PrepareTargetDir creates a fresh directory for generated assets. An
// existing directory is an error unless force is set, in which case it is
// removed and recreated.
func PrepareTargetDir(dir string, force bool) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		if !force {
			return fmt.Errorf("%w: %s", ErrTargetDirExists, dir)
		}
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing target directory %s: %w", dir, err)
		}
	case err == nil:
		return fmt.Errorf("target path %s exists and is not a directory", dir)
	case !os.IsNotExist(err):
		return fmt.Errorf("checking target directory %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("creating target directory %s: %w", dir, err)
	}
	return nil
}

// CheckOutputPath verifies the output file may be written. An existing
// file is an error unless force is set, in which case it is removed.
func CheckOutputPath(path string, force bool) error {
	if !FileExists(path) {
		return nil
	}
	if !force {
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing output file %s: %w", path, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
