package mergeschool

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Reporter receives progress of a merge run. It is a presentation
// concern; Merger works the same with any implementation.
type Reporter interface {
	Started(opts Options)
	InputsFound(schoolPath, majorPath string)
	Loaded(schoolRows, majorRows int)
	Cleaned(schoolRows, majorRows int)
	Samples(majorCodes, schoolCodes []string)
	Joined(rows int)
	EmptyJoin(d Diagnostics)
	Saved(path string)
	Finished(res *Result)
	Failed(err error)
}

type nopReporter struct{}

func (nopReporter) Started(Options) {}
func (nopReporter) InputsFound(string, string) {}
func (nopReporter) Loaded(int, int) {}
func (nopReporter) Cleaned(int, int) {}
func (nopReporter) Samples([]string, []string) {}
func (nopReporter) Joined(int) {}
func (nopReporter) EmptyJoin(Diagnostics) {}
func (nopReporter) Saved(string) {}
func (nopReporter) Finished(*Result) {}
func (nopReporter) Failed(error) {}

// ConsoleReporter prints human readable progress with section markers.
type ConsoleReporter struct {
	out      io.Writer
	colorize bool
}

// NewConsoleReporter writes to out. Marks are colored only when out is a
// terminal.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	r := new(ConsoleReporter)
	r.out = out
	if f, ok := out.(*os.File); ok {
		r.colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return r
}

func (r *ConsoleReporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *ConsoleReporter) rule() {
	r.printf("%s\n", strings.Repeat("=", cLineWidth))
}

func (r *ConsoleReporter) ok(format string, args ...interface{}) {
	mark := "✓"
	if r.colorize {
		mark = text.FgGreen.Sprint(mark)
	}
	r.printf("%s %s\n", mark, fmt.Sprintf(format, args...))
}

func (r *ConsoleReporter) warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if r.colorize {
		msg = text.FgYellow.Sprint(msg)
	}
	r.printf("%s\n", msg)
}

func (r *ConsoleReporter) Started(opts Options) {
	wd, _ := os.Getwd()
	r.rule()
	r.printf("School data merge started\n")
	r.rule()
	r.printf("Working directory: %s\n", wd)
	r.printf("Go version: %s\n", runtime.Version())
	r.printf("Data directory: %s\n", opts.DataDir)
	r.rule()
}

func (r *ConsoleReporter) InputsFound(schoolPath, majorPath string) {
	r.ok("school file: %s", schoolPath)
	r.ok("major file: %s", majorPath)
}

func (r *ConsoleReporter) Loaded(schoolRows, majorRows int) {
	r.printf("\nLoading files...\n")
	r.ok("schools: %s rows", humanize.Comma(int64(schoolRows)))
	r.ok("majors: %s rows", humanize.Comma(int64(majorRows)))
}

func (r *ConsoleReporter) Cleaned(schoolRows, majorRows int) {
	r.printf("\nCleaning rows...\n")
	r.ok("majors after cleaning: %s rows", humanize.Comma(int64(majorRows)))
	r.ok("schools after cleaning: %s rows", humanize.Comma(int64(schoolRows)))
}

func (r *ConsoleReporter) Samples(majorCodes, schoolCodes []string) {
	r.printf("\nChecking keys before merge...\n")
	r.printf("Major code sample: %s\n", quoteAll(majorCodes))
	r.printf("School code sample: %s\n", quoteAll(schoolCodes))
}

func (r *ConsoleReporter) Joined(rows int) {
	r.printf("\nMerging...\n")
	r.ok("merged: %s rows", humanize.Comma(int64(rows)))
}

func (r *ConsoleReporter) EmptyJoin(d Diagnostics) {
	r.printf("\nMerging...\n")
	r.warn("WARNING: the merge result is empty!")
	r.warn("No rows share an administrative code and an office code.")
	r.printf("\nDebug info:\n")
	r.printf("- distinct administrative codes in majors: %d\n", d.MajorCodes)
	r.printf("- distinct administrative codes in schools: %d\n", d.SchoolCodes)
	r.printf("- administrative codes in common: %d\n", d.CommonCodes)
	r.printf("- distinct (code, office) keys in majors: %d\n", d.MajorKeys)
	r.printf("- distinct (code, office) keys in schools: %d\n", d.SchoolKeys)
	r.printf("- (code, office) keys in common: %d\n", d.CommonKeys)
}

func (r *ConsoleReporter) Saved(path string) {
	r.printf("\nSaving result: %s\n", path)
	r.ok("saved")
}

func (r *ConsoleReporter) Finished(res *Result) {
	r.printf("\n")
	r.rule()
	r.printf("Result\n")
	r.rule()
	r.printf("Output file: %s\n", res.OutputPath)
	if res.ManifestPath != "" {
		r.printf("Manifest: %s\n", res.ManifestPath)
	}
	r.printf("Rows: %s\n", humanize.Comma(int64(res.Rows)))
	r.printf("Columns: %d\n", len(res.Columns))
	r.printf("\nColumn list:\n%s\n", renderColumns(res.Columns))
	r.rule()
}

// Failed prints err under an error section. Load and join failures also
// get the stack of their cause.
func (r *ConsoleReporter) Failed(err error) {
	var depErr *MissingDependencyError
	var fileErr *MissingFileError
	var parseErr *ParseError
	var joinErr *EmptyJoinError
	var writeErr *WriteError

	title := "ERROR"
	detail := ""
	switch {
	case errors.As(err, &depErr):
		title = "ERROR: missing dependency " + depErr.Name
		detail = depErr.Hint
	case errors.As(err, &fileErr):
		title = "ERROR: input file not found: " + fileErr.Path
	case errors.As(err, &parseErr):
		title = "ERROR: failed to load " + parseErr.Path
		detail = fmt.Sprintf("%+v", parseErr.Err)
	case errors.As(err, &joinErr):
		title = "ERROR: merge produced no rows"
		detail = fmt.Sprintf("%+v", err)
	case errors.As(err, &writeErr):
		title = "ERROR: failed to save " + writeErr.Path
		detail = writeErr.Err.Error()
	}

	r.printf("\n")
	r.rule()
	if r.colorize {
		title = text.FgRed.Sprint(title)
	}
	r.printf("%s\n", title)
	r.rule()
	r.printf("Details: %v\n", err)
	if detail != "" {
		r.printf("%s\n", detail)
	}
}

func renderColumns(columns []string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Column"})
	for i, col := range columns {
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), col})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
