package mergeschool

import (
	"kkokgoMerge/pkg/csvdb"
	"kkokgoMerge/pkg/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Result summarizes a successful merge.
type Result struct {
	OutputPath   string
	ManifestPath string
	Columns      []string
	Rows         int

	SchoolRows    int
	MajorRows     int
	SchoolDropped int
	MajorDropped  int
}

// Merger runs preflight, load, clean, join and write in that order. The
// first failure stops the run and is returned as is.
type Merger struct {
	opts    Options
	rep     Reporter
	cleaner *Cleaner
	joiner  *Joiner
}

func NewMerger(opts Options, rep Reporter) *Merger {
	m := new(Merger)
	m.opts = opts
	if rep == nil {
		rep = nopReporter{}
	}
	m.rep = rep
	m.cleaner = NewCleaner(opts.Keys(), opts.NullValues, opts.RequireAllKeys)
	m.joiner = NewJoiner(utils.BaseName(opts.OutputFile, ".gz", ".gzip", ".csv", ".tsv", ".txt"),
		opts.Keys(), opts.Suffix)
	return m
}

func (m *Merger) Run() (*Result, error) {
	m.rep.Started(m.opts)
	if err := CheckDependencies(m.opts); err != nil {
		return nil, err
	}

	schoolPath, majorPath := m.opts.SchoolPath(), m.opts.MajorPath()
	if err := checkInput(cRoleSchool, schoolPath); err != nil {
		return nil, err
	}
	if err := checkInput(cRoleMajor, majorPath); err != nil {
		return nil, err
	}
	m.rep.InputsFound(schoolPath, majorPath)

	school, err := loadFrame(cRoleSchool, schoolPath, m.opts)
	if err != nil {
		return nil, err
	}
	major, err := loadFrame(cRoleMajor, majorPath, m.opts)
	if err != nil {
		return nil, err
	}
	res := new(Result)
	res.SchoolRows, res.MajorRows = school.Len(), major.Len()
	m.rep.Loaded(res.SchoolRows, res.MajorRows)

	res.MajorDropped = m.cleaner.Clean(major)
	res.SchoolDropped = m.cleaner.Clean(school)
	logrus.WithFields(logrus.Fields{
		"majorDropped":  res.MajorDropped,
		"schoolDropped": res.SchoolDropped,
	}).Debug("rows cleaned")
	m.rep.Cleaned(school.Len(), major.Len())
	m.rep.Samples(m.sample(major), m.sample(school))

	joined, err := m.joiner.Join(major, school)
	if err != nil {
		var joinErr *EmptyJoinError
		if errors.As(err, &joinErr) {
			m.rep.EmptyJoin(joinErr.Diagnostics)
		}
		return nil, err
	}
	m.rep.Joined(joined.Len())

	outputPath := m.opts.OutputPath()
	iniPath, err := writeOutput(outputPath, joined, m.opts, []string{majorPath, schoolPath})
	if err != nil {
		return nil, err
	}
	m.rep.Saved(outputPath)

	res.OutputPath = outputPath
	res.ManifestPath = iniPath
	res.Columns = joined.Columns()
	res.Rows = joined.Len()
	m.rep.Finished(res)
	return res, nil
}

// sample returns the first SampleSize administrative codes of f.
func (m *Merger) sample(f *csvdb.Frame) []string {
	codes, err := f.Values(m.opts.CodeColumn)
	if err != nil {
		return nil
	}
	n := m.opts.SampleSize
	if n < 0 {
		n = 0
	}
	if len(codes) > n {
		codes = codes[:n]
	}
	return codes
}
