package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

func GetGotExpErr(title string, got interface{}, exp interface{}) error {
	if got == exp {
		return nil
	}
	return errors.New(fmt.Sprintf("%s got=%v expected=%v", title, got, exp))
}

// InitTestDir returns an empty directory named testname under the system
// temp dir, removing whatever a previous run left there.
func InitTestDir(testname string) (string, error) {
	rootDir := filepath.Join(os.TempDir(), "mergeschool", testname)
	if _, err := os.Stat(rootDir); err == nil {
		os.RemoveAll(rootDir)
	}
	if err := EnsureDir(rootDir); err != nil {
		return "", err
	}

	return rootDir, nil
}

// WriteTestFile writes content to dir/name and returns the full path.
func WriteTestFile(dir, name, content string) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.WithStack(err)
	}
	return path, nil
}
