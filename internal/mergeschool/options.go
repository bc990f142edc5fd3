package mergeschool

import (
	"path/filepath"
)

// KeyColumns names the two columns forming the join key.
type KeyColumns struct {
	Code   string
	Office string
}

// Options configures one merge run.
type Options struct {
	DataDir    string
	SchoolFile string
	MajorFile  string
	OutputFile string

	CodeColumn   string
	OfficeColumn string

	// Suffix renames school columns whose name is already used by a
	// major column.
	Suffix string

	Delimiter rune
	Encoding  string
	Sheet     string
	WriteBOM  bool

	// RequireAllKeys drops rows with a blank office code too, not only
	// rows with a blank administrative code.
	RequireAllKeys bool
	NullValues     []string
	SampleSize     int
	Manifest       bool
}

func DefaultOptions() Options {
	nulls := make([]string, len(defaultNullValues))
	copy(nulls, defaultNullValues)
	return Options{
		DataDir:        CDefaultDataDir,
		SchoolFile:     CDefaultSchoolFile,
		MajorFile:      CDefaultMajorFile,
		OutputFile:     CDefaultOutputFile,
		CodeColumn:     CCodeColumn,
		OfficeColumn:   COfficeColumn,
		Suffix:         CDefaultSuffix,
		Encoding:       CDefaultEncoding,
		WriteBOM:       true,
		RequireAllKeys: true,
		NullValues:     nulls,
		SampleSize:     CDefaultSampleSize,
		Manifest:       true,
	}
}

func (o Options) Keys() KeyColumns {
	return KeyColumns{Code: o.CodeColumn, Office: o.OfficeColumn}
}

func (o Options) SchoolPath() string {
	return o.resolve(o.SchoolFile)
}

func (o Options) MajorPath() string {
	return o.resolve(o.MajorFile)
}

func (o Options) OutputPath() string {
	return o.resolve(o.OutputFile)
}

// file names are relative to DataDir unless absolute
func (o Options) resolve(name string) string {
	if filepath.IsAbs(name) || o.DataDir == "" {
		return name
	}
	return filepath.Join(o.DataDir, name)
}
