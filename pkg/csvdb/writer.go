package csvdb

import (
	"compress/gzip"
	"encoding/csv"
	"io"
	"kkokgoMerge/pkg/utils"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// WriteOptions controls how a Frame is serialized.
type WriteOptions struct {
	// Delimiter separates fields. Zero means ',' or '\t' for .tsv files.
	Delimiter rune
	// BOM prefixes the output with a UTF-8 byte order mark.
	BOM bool
}

// Writer writes records to a temp file next to path and moves it over
// path on commit, so readers never see a half written file.
type Writer struct {
	fw      *os.File
	zw      *gzip.Writer
	tw      *transform.Writer
	writer  *csv.Writer
	path    string
	tmpPath string
	mode    string
}

func newWriter(path string, opts WriteOptions) (*Writer, error) {
	fw, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	c := new(Writer)
	c.path = path
	c.tmpPath = fw.Name()
	c.fw = fw

	var w io.Writer = fw
	c.mode = cRModePlain
	if utils.IsGzip(path) {
		c.zw = gzip.NewWriter(w)
		w = c.zw
		c.mode = cRModeGZip
	}
	if opts.BOM {
		c.tw = transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
		w = c.tw
	}

	c.writer = csv.NewWriter(w)
	c.writer.Comma = delimiterFor(path, opts.Delimiter)
	return c, nil
}

func (c *Writer) write(record []string) error {
	return errors.WithStack(c.writer.Write(record))
}

// finish flushes and closes every layer. The data stays in the temp file.
func (c *Writer) finish() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		return errors.WithStack(err)
	}
	if c.tw != nil {
		if err := c.tw.Close(); err != nil {
			return errors.WithStack(err)
		}
	}
	if c.zw != nil {
		if err := c.zw.Close(); err != nil {
			return errors.WithStack(err)
		}
		c.zw = nil
	}
	if err := c.fw.Chmod(0644); err != nil {
		return errors.WithStack(err)
	}
	if err := c.fw.Close(); err != nil {
		return errors.WithStack(err)
	}
	c.fw = nil
	return nil
}

// commit finishes the temp file and renames it to its final path.
func (c *Writer) commit() error {
	if err := c.finish(); err != nil {
		return err
	}
	if err := os.Rename(c.tmpPath, c.path); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// abort drops the temp file. Safe to call after commit.
func (c *Writer) abort() {
	if c.zw != nil {
		c.zw.Close()
		c.zw = nil
	}
	if c.fw != nil {
		c.fw.Close()
		c.fw = nil
	}
	if utils.PathExist(c.tmpPath) {
		os.Remove(c.tmpPath)
	}
}

func (c *Writer) writeFrame(f *Frame) error {
	if err := c.write(f.columns); err != nil {
		return err
	}
	for _, row := range f.rows {
		if err := c.write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteFrame writes the header and every row of f to path, replacing any
// existing file. No index column is added.
func WriteFrame(path string, f *Frame, opts WriteOptions) error {
	writer, err := newWriter(path, opts)
	if err != nil {
		return err
	}
	defer writer.abort()

	if err := writer.writeFrame(f); err != nil {
		return err
	}
	if err := writer.commit(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"file": path,
		"mode": writer.mode,
		"rows": f.Len(),
		"bom":  opts.BOM,
	}).Debug("frame written")
	return nil
}

// WriteFrameWithManifest writes f to path and m to iniFile. Both go to temp
// files first and are moved into place only when both were written, so a
// failure leaves neither file behind.
func WriteFrameWithManifest(path string, f *Frame, iniFile string, m *Manifest, opts WriteOptions) error {
	writer, err := newWriter(path, opts)
	if err != nil {
		return err
	}
	defer writer.abort()

	if err := writer.writeFrame(f); err != nil {
		return err
	}
	if err := writer.finish(); err != nil {
		return err
	}

	iniTmp, err := m.stage(iniFile)
	if err != nil {
		return err
	}
	defer func() {
		if utils.PathExist(iniTmp) {
			os.Remove(iniTmp)
		}
	}()

	if err := os.Rename(iniTmp, iniFile); err != nil {
		return errors.WithStack(err)
	}
	if err := os.Rename(writer.tmpPath, path); err != nil {
		os.Remove(iniFile)
		return errors.WithStack(err)
	}

	logrus.WithFields(logrus.Fields{
		"file":     path,
		"manifest": iniFile,
		"mode":     writer.mode,
		"rows":     f.Len(),
		"bom":      opts.BOM,
	}).Debug("frame written")
	return nil
}
