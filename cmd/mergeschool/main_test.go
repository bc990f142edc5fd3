package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kkokgoMerge/internal/mergeschool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

func writeInputs(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, dir, mergeschool.CDefaultSchoolFile,
		"행정표준코드,시도교육청코드,학교명",
		"7010057,B10,서울공업고등학교",
		"7010058,B10,수도전기공업고등학교",
	)
	writeFile(t, dir, mergeschool.CDefaultMajorFile,
		"행정표준코드,시도교육청코드,학과명,학교명",
		"7010057,B10,전기과,서울공고",
		"7010058,B10,전자과,수도전기공고",
	)
}

func Test_runMain(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)

	var out, errOut bytes.Buffer
	code := runMain([]string{"-silent", "-d", dir}, &out, &errOut)
	require.Equal(t, 0, code, out.String())

	b, err := os.ReadFile(filepath.Join(dir, mergeschool.CDefaultOutputFile))
	require.NoError(t, err)
	assert.Equal(t, "\ufeff행정표준코드,시도교육청코드,학과명,학교명,학교명_school\n"+
		"7010057,B10,전기과,서울공고,서울공업고등학교\n"+
		"7010058,B10,전자과,수도전기공고,수도전기공업고등학교\n", string(b))
	assert.Contains(t, out.String(), "Rows: 2")
	assert.FileExists(t, filepath.Join(dir, "kkokgo_master_db.tbl.ini"))
}

func Test_runMain_outputFlag(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)

	var out, errOut bytes.Buffer
	code := runMain([]string{"-silent", "-d", dir, "-o", "master.tsv"}, &out, &errOut)
	require.Equal(t, 0, code, out.String())

	b, err := os.ReadFile(filepath.Join(dir, "master.tsv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "\ufeff행정표준코드\t시도교육청코드\t"))
}

func Test_runMain_failures(t *testing.T) {
	dir := t.TempDir()

	var out, errOut bytes.Buffer
	assert.Equal(t, 1, runMain([]string{"-silent", "-d", dir}, &out, &errOut))
	assert.Contains(t, out.String(), "ERROR: input file not found")

	writeInputs(t, dir)
	writeFile(t, dir, mergeschool.CDefaultMajorFile,
		"행정표준코드,시도교육청코드,학과명",
		"9999999,B10,전기과",
	)
	out.Reset()
	assert.Equal(t, 1, runMain([]string{"-silent", "-d", dir}, &out, &errOut))
	assert.Contains(t, out.String(), "ERROR: merge produced no rows")
	assert.NoFileExists(t, filepath.Join(dir, mergeschool.CDefaultOutputFile))

	out.Reset()
	assert.Equal(t, 1, runMain([]string{"-no-such-flag"}, &out, &errOut))
	assert.Equal(t, 1, runMain([]string{"-silent", "-c", filepath.Join(dir, "missing.yaml")}, &out, &errOut))
}

func Test_runMain_config(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)
	t.Setenv("MERGE_TEST_DATA_DIR", dir)

	conf := writeFile(t, dir, "config.yaml",
		"dataDir: \"{{ MERGE_TEST_DATA_DIR }}\"",
		"outputFile: master_hs.csv",
		"suffix: _hs",
		"writeBOM: false",
		"manifest: false",
	)

	var out, errOut bytes.Buffer
	code := runMain([]string{"-silent", "-c", conf}, &out, &errOut)
	require.Equal(t, 0, code, out.String())

	b, err := os.ReadFile(filepath.Join(dir, "master_hs.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "행정표준코드,시도교육청코드,학과명,학교명,학교명_hs\n"))
	assert.NoFileExists(t, filepath.Join(dir, "master_hs.tbl.ini"))

	// flags win over the file
	code = runMain([]string{"-silent", "-c", conf, "-o", "master_flag.csv"}, &out, &errOut)
	require.Equal(t, 0, code, out.String())
	assert.FileExists(t, filepath.Join(dir, "master_flag.csv"))
}

func Test_loadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MERGE_TEST_ENCODING", "euc-kr")
	conf := writeFile(t, dir, "config.yaml",
		"encoding: \"{{ MERGE_TEST_ENCODING }}\"",
		"delimiter: \";\"",
		"requireAllKeys: false",
		"sampleSize: 3",
		"nullValues: [\"\", \"-\"]",
		"suffix: \"\"",
	)

	c, err := loadConfig(conf)
	require.NoError(t, err)

	opts := mergeschool.DefaultOptions()
	c.apply(&opts)
	assert.Equal(t, "euc-kr", opts.Encoding)
	assert.Equal(t, ';', opts.Delimiter)
	assert.False(t, opts.RequireAllKeys)
	assert.True(t, opts.WriteBOM)
	assert.Equal(t, 3, opts.SampleSize)
	assert.Equal(t, []string{"", "-"}, opts.NullValues)
	assert.Equal(t, "", opts.Suffix)
	assert.Equal(t, mergeschool.CDefaultDataDir, opts.DataDir)

	bad := writeFile(t, dir, "bad.yaml", "delimiter: \";;\"")
	_, err = loadConfig(bad)
	assert.Error(t, err)
}

func Test_loadEnvFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "MERGE_TEST_FROM_DOTENV=cp949")
	conf := writeFile(t, dir, "config.yaml", "encoding: \"{{ MERGE_TEST_FROM_DOTENV }}\"")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Cleanup(func() { os.Unsetenv("MERGE_TEST_FROM_DOTENV") })

	opts, err := buildOptions(&cmdArgs{configPath: conf})
	require.NoError(t, err)
	assert.Equal(t, "cp949", opts.Encoding)
}

func Test_replaceEnvVars(t *testing.T) {
	t.Setenv("MERGE_TEST_VAR", "value")
	assert.Equal(t, "a: value\nb: \n", replaceEnvVars("a: {{ MERGE_TEST_VAR }}\nb: {{MERGE_TEST_UNSET}}\n"))
}
