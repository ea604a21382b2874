// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/maruel/natural"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// MatchFunc reports whether file with the given name inside archive should be
// visited.
type MatchFunc func(name string) bool

type walkOptions struct {
	match MatchFunc
}

// WithMatch additionally filters visited files.
func WithMatch(match MatchFunc) func(*walkOptions) {
	return func(o *walkOptions) {
		o.match = match
	}
}

// Walk calls walkFn for every file in the archive whose name starts with
// prefix, in natural name order. Archives with entries that have path
// traversal components ("..") or absolute paths are rejected to prevent Zip
// Slip attacks.
func Walk(archive, prefix string, walkFn WalkFunc, options ...func(*walkOptions)) error {
	var opts walkOptions
	for _, setOpt := range options {
		setOpt(&opts)
	}

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	files := make([]*zip.File, 0, len(r.File))
	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		if opts.match != nil && !opts.match(name) {
			continue
		}
		files = append(files, f)
	}
	slices.SortStableFunc(files, func(a, b *zip.File) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		}
		return 0
	})

	for _, f := range files {
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	return !slices.Contains(strings.Split(name, "/"), "..")
}
