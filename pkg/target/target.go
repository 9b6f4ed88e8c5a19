// Package target gives scan modules read access to the project being scanned.
// Paths passed to Target are relative to the project root; Path joins them back
// so they can be handed to external tools.
package target

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

type Target struct {
	fs   afero.Fs
	root string
}

func New(fs afero.Fs, root string) *Target {
	return &Target{
		fs:   fs,
		root: filepath.Clean(root),
	}
}

func (t *Target) Root() string {
	return t.root
}

// Path returns the absolute form of a root-relative path.
func (t *Target) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(t.root, rel)
}

func (t *Target) Exists(rel string) bool {
	f, err := afero.Exists(t.fs, t.Path(rel))
	if err != nil {
		return false
	}
	return f
}

func (t *Target) ReadFile(rel string) ([]byte, error) {
	b, err := afero.ReadFile(t.fs, t.Path(rel))
	if err != nil {
		return nil, fmt.Errorf("read a file: %w", err)
	}
	return b, nil
}

// Glob returns root-relative paths matching pattern, sorted.
func (t *Target) Glob(pattern string) ([]string, error) {
	matches, err := afero.Glob(t.fs, t.Path(pattern))
	if err != nil {
		return nil, fmt.Errorf("search files using glob: %w", err)
	}
	rels := make([]string, 0, len(matches))
	for _, m := range matches {
		rel, err := filepath.Rel(t.root, m)
		if err != nil {
			return nil, fmt.Errorf("get a relative path: %w", err)
		}
		rels = append(rels, rel)
	}
	return rels, nil
}

var ignoredDirs = map[string]struct{}{ //nolint:gochecknoglobals
	".git":         {},
	"node_modules": {},
	"vendor":       {},
	".venv":        {},
}

var errFound = errors.New("found")

// HasExtension reports whether any file under the root has one of the given extensions.
// VCS and dependency directories are skipped.
func (t *Target) HasExtension(exts ...string) (bool, error) {
	err := afero.Walk(t.fs, t.root, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return nil //nolint:nilerr
		}
		if info.IsDir() {
			if _, ok := ignoredDirs[info.Name()]; ok && p != t.root {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(p))
		for _, e := range exts {
			if ext == e {
				return errFound
			}
		}
		return nil
	})
	if errors.Is(err, errFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("walk the target directory: %w", err)
	}
	return false, nil
}
