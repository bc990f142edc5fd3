package main

import (
	"kkokgoMerge/internal/mergeschool"
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Booleans are pointers so that "false" in the file can override a true
// default.
type config struct {
	DataDir        string   `yaml:"dataDir"`
	SchoolFile     string   `yaml:"schoolFile"`
	MajorFile      string   `yaml:"majorFile"`
	OutputFile     string   `yaml:"outputFile"`
	CodeColumn     string   `yaml:"codeColumn"`
	OfficeColumn   string   `yaml:"officeColumn"`
	Suffix         *string  `yaml:"suffix"`
	Delimiter      string   `yaml:"delimiter"`
	Encoding       string   `yaml:"encoding"`
	Sheet          string   `yaml:"sheet"`
	WriteBOM       *bool    `yaml:"writeBOM"`
	RequireAllKeys *bool    `yaml:"requireAllKeys"`
	NullValues     []string `yaml:"nullValues"`
	SampleSize     *int     `yaml:"sampleSize"`
	Manifest       *bool    `yaml:"manifest"`
}

var placeholderRe = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// replaceEnvVars substitutes {{ VAR }} with the environment value of VAR.
func replaceEnvVars(content string) string {
	return placeholderRe.ReplaceAllStringFunc(content, func(placeholder string) string {
		varName := placeholderRe.FindStringSubmatch(placeholder)[1]
		return os.Getenv(varName)
	})
}

// loadEnvFile loads .env from the working directory when there is one.
// Variables already set in the environment are kept.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return errors.Wrap(err, ".env")
	}
	return nil
}

/*
---
dataDir: app/data
schoolFile: highschoolinfo.csv
majorFile: all_major_info_merged.csv
outputFile: kkokgo_master_db.csv
encoding: "{{ MERGE_ENCODING }}"
suffix: _school
writeBOM: true
*/
func loadConfig(path string) (*config, error) {
	logrus.WithField("path", path).Info("Loading configuration")

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	yamlContent := replaceEnvVars(string(yamlFile))

	c := new(config)
	if err := yaml.Unmarshal([]byte(yamlContent), c); err != nil {
		return nil, errors.Wrapf(err, "unmarshalling %s", path)
	}
	if utf8.RuneCountInString(c.Delimiter) > 1 {
		return nil, errors.Errorf("%s: delimiter must be a single character, got %q", path, c.Delimiter)
	}
	return c, nil
}

// apply copies every value set in the file over opts.
func (c *config) apply(opts *mergeschool.Options) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&opts.DataDir, c.DataDir)
	setString(&opts.SchoolFile, c.SchoolFile)
	setString(&opts.MajorFile, c.MajorFile)
	setString(&opts.OutputFile, c.OutputFile)
	setString(&opts.CodeColumn, c.CodeColumn)
	setString(&opts.OfficeColumn, c.OfficeColumn)
	setString(&opts.Encoding, c.Encoding)
	setString(&opts.Sheet, c.Sheet)

	if c.Suffix != nil {
		opts.Suffix = *c.Suffix
	}
	if c.Delimiter != "" {
		r, _ := utf8.DecodeRuneInString(c.Delimiter)
		opts.Delimiter = r
	}
	if c.WriteBOM != nil {
		opts.WriteBOM = *c.WriteBOM
	}
	if c.RequireAllKeys != nil {
		opts.RequireAllKeys = *c.RequireAllKeys
	}
	if c.NullValues != nil {
		opts.NullValues = c.NullValues
	}
	if c.SampleSize != nil {
		opts.SampleSize = *c.SampleSize
	}
	if c.Manifest != nil {
		opts.Manifest = *c.Manifest
	}
}
