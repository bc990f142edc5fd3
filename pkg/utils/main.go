package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// PathExist ..
func PathExist(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	return true
}

// FileExist reports whether path exists and is a regular file.
func FileExist(path string) bool {
	st, err := os.Stat(path)
	if err != nil {
		return false
	}
	return st.Mode().IsRegular()
}

func EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil && !os.IsExist(err) {
		return errors.WithStack(err)
	}
	return nil
}

// BaseName returns the file name of path without directory and without
// any of the trailing extensions in exts (".csv.gz" -> "").
func BaseName(path string, exts ...string) string {
	name := filepath.Base(path)
	for {
		trimmed := false
		for _, ext := range exts {
			if ext != "" && strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
				name = name[:len(name)-len(ext)]
				trimmed = true
			}
		}
		if !trimmed {
			return name
		}
	}
}

// FileExt returns the lower-cased extension of path, looking through a
// trailing .gz/.gzip so "a.csv.gz" gives ".csv".
func FileExt(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".gz" || ext == ".gzip" {
		return strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}
	return ext
}

// IsGzip ..
func IsGzip(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".gz" || ext == ".gzip"
}
