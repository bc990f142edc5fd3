package mergeschool

import (
	"kkokgoMerge/pkg/csvdb"
	"kkokgoMerge/pkg/utils"

	"github.com/sirupsen/logrus"
)

func checkInput(role, path string) error {
	if !utils.FileExist(path) {
		return &MissingFileError{Role: role, Path: path}
	}
	return nil
}

// loadFrame reads one input and makes sure both key columns are present.
func loadFrame(role, path string, opts Options) (*csvdb.Frame, error) {
	if err := checkInput(role, path); err != nil {
		return nil, err
	}
	f, err := csvdb.ReadFrame(path, csvdb.ReadOptions{
		Delimiter: opts.Delimiter,
		Encoding:  opts.Encoding,
		Sheet:     opts.Sheet,
	})
	if err != nil {
		return nil, &ParseError{Role: role, Path: path, Err: err}
	}
	keys := opts.Keys()
	if err := f.HasColumns(keys.Code, keys.Office); err != nil {
		return nil, &ParseError{Role: role, Path: path, Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"role":    role,
		"path":    path,
		"rows":    f.Len(),
		"columns": len(f.Columns()),
	}).Debug("input loaded")
	return f, nil
}
