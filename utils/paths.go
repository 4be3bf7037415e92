package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Stem returns the file name of path without its directory and extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// UniquePath returns path if nothing exists there yet. Otherwise a numeric
// suffix is inserted before the extension: name(1).ext, name(2).ext and so
// on, until a free path is found.
func UniquePath(path string) (string, error) {
	ext := filepath.Ext(path)
	name := strings.TrimSuffix(path, ext)

	candidate := path
	for suffix := 1; ; suffix++ {
		exists, err := pathExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s(%d)%s", name, suffix, ext)
	}
}

func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
