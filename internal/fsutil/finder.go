// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesByExtensions recursively searches the given root path for all
// files ending with one of the specified extensions and returns their full
// paths in deterministic (sorted) order.
func FindFilesByExtensions(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension must be given")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range extensions {
			if strings.HasSuffix(d.Name(), ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// FindSpecFile locates exactly one spec file under root. Zero or multiple
// candidates are errors; a directory with several specs is ambiguous and the
// caller must name one explicitly.
func FindSpecFile(root string, extensions ...string) (string, error) {
	files, err := FindFilesByExtensions(root, extensions...)
	if err != nil {
		return "", err
	}
	switch len(files) {
	case 0:
		return "", fmt.Errorf("no spec file (%s) found under %s", strings.Join(extensions, ", "), root)
	case 1:
		return files[0], nil
	default:
		return "", fmt.Errorf("found %d spec files under %s, name one explicitly", len(files), root)
	}
}
