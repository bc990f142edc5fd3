package csvdb

import (
	"fmt"
	"kkokgoMerge/pkg/utils"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"
)

// Manifest describes a written frame: its columns, row count and where it
// came from. It is stored as <name>.tbl.ini next to the data file.
type Manifest struct {
	Name    string
	Columns []string
	Rows    int
	Keys    []string
	Suffix  string
	Sources []string
}

// ManifestPath returns the manifest file of the data file at path.
func ManifestPath(path string) string {
	name := utils.BaseName(path, ".gz", ".gzip", ".csv", ".tsv", ".txt")
	return filepath.Join(filepath.Dir(path), fmt.Sprintf("%s.%s", name, cTblIniExt))
}

func NewManifest(f *Frame) *Manifest {
	m := new(Manifest)
	m.Name = f.name
	m.Columns = f.Columns()
	m.Rows = f.Len()
	return m
}

func (m *Manifest) iniFile() *ini.File {
	cfg := ini.Empty()
	conf := cfg.Section(cManifestSection)
	conf.Key("name").SetValue(m.Name)
	conf.Key("rows").SetValue(strconv.Itoa(m.Rows))
	conf.Key("columnCount").SetValue(strconv.Itoa(len(m.Columns)))
	conf.Key("suffix").SetValue(m.Suffix)
	for i, k := range m.Keys {
		conf.Key(fmt.Sprintf("key%d", i+1)).SetValue(k)
	}
	saveList(cfg.Section(cColumnsSection), m.Columns)
	saveList(cfg.Section(cSourcesSection), m.Sources)
	return cfg
}

// Save writes the manifest. The content only depends on the manifest
// fields, so saving the same manifest twice gives identical files.
func (m *Manifest) Save(iniFile string) error {
	if err := m.iniFile().SaveTo(iniFile); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// stage writes the manifest to a temp file next to iniFile and returns
// its path. The caller renames or removes it.
func (m *Manifest) stage(iniFile string) (string, error) {
	fw, err := os.CreateTemp(filepath.Dir(iniFile), "."+filepath.Base(iniFile)+".*.tmp")
	if err != nil {
		return "", errors.WithStack(err)
	}
	tmpPath := fw.Name()
	if _, err := m.iniFile().WriteTo(fw); err != nil {
		fw.Close()
		os.Remove(tmpPath)
		return "", errors.WithStack(err)
	}
	if err := fw.Chmod(0644); err != nil {
		fw.Close()
		os.Remove(tmpPath)
		return "", errors.WithStack(err)
	}
	if err := fw.Close(); err != nil {
		os.Remove(tmpPath)
		return "", errors.WithStack(err)
	}
	return tmpPath, nil
}

func LoadManifest(iniFile string) (*Manifest, error) {
	cfg, err := ini.Load(iniFile)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	m := new(Manifest)
	conf := cfg.Section(cManifestSection)
	m.Name = conf.Key("name").String()
	m.Rows = conf.Key("rows").MustInt(0)
	m.Suffix = conf.Key("suffix").String()
	for i := 1; conf.HasKey(fmt.Sprintf("key%d", i)); i++ {
		m.Keys = append(m.Keys, conf.Key(fmt.Sprintf("key%d", i)).String())
	}
	m.Columns = loadList(cfg.Section(cColumnsSection))
	m.Sources = loadList(cfg.Section(cSourcesSection))

	if n := conf.Key("columnCount").MustInt(-1); n >= 0 && n != len(m.Columns) {
		return nil, errors.Errorf("%s: columnCount=%d but %d columns listed",
			iniFile, n, len(m.Columns))
	}
	return m, nil
}

// column names may contain commas, so lists are stored one key per item
func saveList(sec *ini.Section, values []string) {
	for i, v := range values {
		sec.Key(strconv.Itoa(i + 1)).SetValue(v)
	}
}

func loadList(sec *ini.Section) []string {
	keys := sec.Keys()
	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, k.Value())
	}
	return values
}
