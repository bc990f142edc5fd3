package mergeschool

import (
	"kkokgoMerge/pkg/csvdb"
	"kkokgoMerge/pkg/utils"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CheckResult is the outcome of one preflight check.
type CheckResult struct {
	Name   string
	Passed bool
	Detail string
}

// Preflight runs every dependency check and returns them all, failed or not.
func Preflight(opts Options) []CheckResult {
	results := []CheckResult{checkEncoding(opts.Encoding)}
	results = append(results, checkReader(cRoleSchool, opts.SchoolPath()))
	results = append(results, checkReader(cRoleMajor, opts.MajorPath()))
	results = append(results, checkWriter(opts.OutputPath()))
	return results
}

// CheckDependencies returns a MissingDependencyError for the first failed
// preflight check.
func CheckDependencies(opts Options) error {
	for _, r := range Preflight(opts) {
		logrus.WithFields(logrus.Fields{
			"check":  r.Name,
			"passed": r.Passed,
		}).Debug(r.Detail)
		if !r.Passed {
			return &MissingDependencyError{
				Name: r.Name,
				Hint: hintFor(r.Name),
				Err:  errors.New(r.Detail),
			}
		}
	}
	return nil
}

func checkEncoding(label string) CheckResult {
	name := "decoder " + label
	if _, err := csvdb.LookupEncoding(label); err != nil {
		return CheckResult{Name: name, Detail: err.Error()}
	}
	return CheckResult{Name: name, Passed: true, Detail: "available"}
}

func checkReader(role, path string) CheckResult {
	name := role + " reader"
	if !csvdb.SupportedExt(path) {
		return CheckResult{Name: name, Detail: "no reader for " + path}
	}
	return CheckResult{Name: name, Passed: true, Detail: utils.FileExt(path)}
}

func checkWriter(path string) CheckResult {
	name := "output writer"
	if !writableExts[utils.FileExt(path)] {
		return CheckResult{Name: name, Detail: "no writer for " + path}
	}
	return CheckResult{Name: name, Passed: true, Detail: utils.FileExt(path)}
}

func hintFor(check string) string {
	switch {
	case strings.HasPrefix(check, "decoder"):
		return "set encoding to utf-8, euc-kr, cp949 or another WHATWG label"
	case strings.HasSuffix(check, "reader"):
		return "convert the input to one of " + strings.Join(readableExts, ", ")
	default:
		return "write the output as .csv, .tsv or .txt (optionally .gz)"
	}
}
