// Where: cli/internal/fsutil/safety.go
// What: Target directory safety checks.
// Why: Two independent writers (backend generator, frontend tool) must not collide.
package fsutil

import (
	"fmt"
	"os"
)

// DirectoryNotEmptyError reports a target directory that already has entries.
type DirectoryNotEmptyError struct {
	Path string
}

func (e *DirectoryNotEmptyError) Error() string {
	return fmt.Sprintf("directory %s is not empty: pick an empty directory or a new name", e.Path)
}

// NotADirectoryError reports a target path occupied by a non-directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("%s already exists and is not a directory", e.Path)
}

// DirectoryExistsError reports a frontend target that already exists.
// Scaffolding tools refuse to write into existing directories.
type DirectoryExistsError struct {
	Path string
}

func (e *DirectoryExistsError) Error() string {
	return fmt.Sprintf("directory %s already exists: remove it or choose another location", e.Path)
}

// EnsureUsableProjectDir validates that path can receive a new project.
// A missing path is fine (creation is the generator's job). An existing
// path must be an empty directory. The check never mutates the file system.
func EnsureUsableProjectDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if !info.IsDir() {
		return &NotADirectoryError{Path: path}
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return &DirectoryNotEmptyError{Path: path}
	}
	return nil
}

// EnsureAbsent fails if path exists at all, regardless of content.
// Lstat, not Stat: a dangling symlink still occupies the path and would
// break the scaffolding tool.
func EnsureAbsent(path string) error {
	if _, err := os.Lstat(path); err == nil {
		return &DirectoryExistsError{Path: path}
	} else if !os.IsNotExist(err) {
		return err
	}
	return nil
}
