package mergeschool

import (
	"kkokgoMerge/pkg/csvdb"

	"github.com/sirupsen/logrus"
)

// writeOutput saves the joined frame and, when enabled, its manifest.
// It returns the manifest path, empty when no manifest was written. On
// failure neither file is left at its destination.
func writeOutput(path string, f *csvdb.Frame, opts Options, sources []string) (string, error) {
	wopts := csvdb.WriteOptions{
		Delimiter: opts.Delimiter,
		BOM:       opts.WriteBOM,
	}
	if !opts.Manifest {
		if err := csvdb.WriteFrame(path, f, wopts); err != nil {
			return "", &WriteError{Path: path, Err: err}
		}
		return "", nil
	}

	iniPath := csvdb.ManifestPath(path)
	m := csvdb.NewManifest(f)
	m.Keys = []string{opts.CodeColumn, opts.OfficeColumn}
	m.Suffix = opts.Suffix
	m.Sources = sources
	if err := csvdb.WriteFrameWithManifest(path, f, iniPath, m, wopts); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	logrus.WithField("path", iniPath).Debug("manifest written")
	return iniPath, nil
}
