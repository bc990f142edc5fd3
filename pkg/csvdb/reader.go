package csvdb

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"kkokgoMerge/pkg/utils"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/transform"
)

// ReadOptions controls how a file is decoded into a Frame.
type ReadOptions struct {
	// Delimiter separates fields. Zero means ',' or '\t' for .tsv files.
	Delimiter rune
	// Encoding is the text encoding label of csv input, default utf-8.
	Encoding string
	// Sheet is the xlsx sheet to read, default the first one.
	Sheet string
}

var readerExts = map[string]string{
	".csv":  cRModePlain,
	".tsv":  cRModePlain,
	".txt":  cRModePlain,
	".xlsx": cRModeXlsx,
}

// SupportedExt reports whether a reader is registered for path.
func SupportedExt(path string) bool {
	mode, ok := readerExts[utils.FileExt(path)]
	if !ok {
		return false
	}
	if mode == cRModeXlsx && utils.IsGzip(path) {
		return false
	}
	return true
}

type Reader struct {
	fr       *os.File
	zr       *gzip.Reader
	reader   *csv.Reader
	values   []string
	err      error
	filename string
	mode     string
	record   int
	readBuff *readBuff
}

func newReader(filename string, opts ReadOptions) (*Reader, error) {
	c := new(Reader)
	c.filename = filename
	if err := c.open(opts); err != nil {
		c.close()
		return nil, err
	}
	return c, nil
}

func (c *Reader) open(opts ReadOptions) error {
	if !utils.PathExist(c.filename) {
		return errors.New(fmt.Sprintf("%s: %s", cErrPathNotExists, c.filename))
	}
	if !SupportedExt(c.filename) {
		return errors.Errorf("no reader for %s", c.filename)
	}

	if readerExts[utils.FileExt(c.filename)] == cRModeXlsx {
		c.mode = cRModeXlsx
		return c.loadSheet(opts.Sheet)
	}

	fr, err := os.Open(c.filename)
	if err != nil {
		return errors.WithStack(err)
	}
	c.fr = fr

	var src io.Reader = fr
	c.mode = cRModePlain
	if utils.IsGzip(c.filename) {
		zr, err := gzip.NewReader(fr)
		if err != nil {
			return errors.WithStack(err)
		}
		c.zr = zr
		src = zr
		c.mode = cRModeGZip
	}

	dec, err := newDecoder(opts.Encoding)
	if err != nil {
		return err
	}

	r := csv.NewReader(transform.NewReader(src, dec))
	r.Comma = delimiterFor(c.filename, opts.Delimiter)
	r.FieldsPerRecord = -1
	c.reader = r
	return nil
}

func (c *Reader) loadSheet(sheet string) error {
	f, err := excelize.OpenFile(c.filename)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return errors.Wrapf(err, "sheet %q", sheet)
	}
	logrus.WithFields(logrus.Fields{
		"file":  c.filename,
		"sheet": sheet,
		"rows":  len(rows),
	}).Debug("xlsx sheet loaded")

	c.readBuff = newReadBuffer(rows)
	return nil
}

func (c *Reader) next() bool {
	var values []string
	var err error
	if c.readBuff == nil {
		if c.reader == nil {
			err = io.EOF
		} else {
			values, err = c.reader.Read()
		}
	} else {
		if c.readBuff.next() {
			values = c.readBuff.values
		} else {
			err = io.EOF
		}
	}
	c.err = err
	if err != nil {
		return false
	}
	c.record++
	c.values = values
	return true
}

func (c *Reader) close() {
	if c.zr != nil {
		c.zr.Close()
		c.zr = nil
	}
	if c.fr != nil {
		c.fr.Close()
		c.fr = nil
	}
}

// ReadFrame loads path into a Frame. The first record is the header.
// Short records are padded with empty cells; longer ones are an error.
func ReadFrame(path string, opts ReadOptions) (*Frame, error) {
	c, err := newReader(path, opts)
	if err != nil {
		return nil, err
	}
	defer c.close()

	if !c.next() {
		if c.err != nil && c.err != io.EOF {
			return nil, errors.Wrapf(c.err, "%s: reading header", path)
		}
		return nil, errors.Errorf("%s: no header row", path)
	}
	header := dedupeColumns(c.values)
	f := NewFrame(utils.BaseName(path, ".gz", ".gzip", ".csv", ".tsv", ".txt", ".xlsx"), header)

	for c.next() {
		row := c.values
		if len(row) > len(header) {
			return nil, errors.Errorf("%s: record %d has %d fields, header has %d",
				path, c.record, len(row), len(header))
		}
		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		}
		f.rows = append(f.rows, row)
	}
	if c.err != nil && c.err != io.EOF {
		return nil, errors.Wrapf(c.err, "%s", path)
	}

	logrus.WithFields(logrus.Fields{
		"file":    path,
		"mode":    c.mode,
		"columns": len(header),
		"rows":    f.Len(),
	}).Debug("frame loaded")
	return f, nil
}

func delimiterFor(path string, delimiter rune) rune {
	if delimiter != 0 {
		return delimiter
	}
	if utils.FileExt(path) == ".tsv" {
		return '\t'
	}
	return CDefaultDelimiter
}

// dedupeColumns renames repeated header names to name.1, name.2, ...
func dedupeColumns(header []string) []string {
	cols := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[h] = true
	}
	counts := make(map[string]int, len(header))
	for i, h := range header {
		name := h
		if counts[h] > 0 {
			for {
				name = fmt.Sprintf("%s.%d", h, counts[h])
				counts[h]++
				if !seen[name] {
					break
				}
			}
			seen[name] = true
		} else {
			counts[h]++
		}
		cols[i] = name
	}
	return cols
}
