package utils

import (
	"path/filepath"
	"testing"
)

func TestBaseName(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"app/data/kkokgo_master_db.csv", "kkokgo_master_db"},
		{"out/master.csv.gz", "master"},
		{"master", "master"},
		{"MASTER.CSV", "MASTER"},
	}
	for _, c := range cases {
		if err := GetGotExpErr(c.path, BaseName(c.path, ".gz", ".csv"), c.want); err != nil {
			t.Errorf("%v", err)
		}
	}
}

func TestFileExt(t *testing.T) {
	cases := map[string]string{
		"a.csv":      ".csv",
		"a.CSV.gz":   ".csv",
		"a.tsv.gzip": ".tsv",
		"a.xlsx":     ".xlsx",
		"a":          "",
	}
	for path, want := range cases {
		if err := GetGotExpErr(path, FileExt(path), want); err != nil {
			t.Errorf("%v", err)
		}
	}
	if err := GetGotExpErr("gz", IsGzip("a.csv.gz"), true); err != nil {
		t.Errorf("%v", err)
	}
	if err := GetGotExpErr("plain", IsGzip("a.csv"), false); err != nil {
		t.Errorf("%v", err)
	}
}

func TestFileExist(t *testing.T) {
	testDir, err := InitTestDir("TestFileExist")
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	path, err := WriteTestFile(testDir, "a.csv", "x\n1\n")
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := GetGotExpErr("file", FileExist(path), true); err != nil {
		t.Errorf("%v", err)
	}
	if err := GetGotExpErr("dir is not a file", FileExist(testDir), false); err != nil {
		t.Errorf("%v", err)
	}
	if err := GetGotExpErr("dir exists", PathExist(testDir), true); err != nil {
		t.Errorf("%v", err)
	}
	if err := GetGotExpErr("missing", FileExist(filepath.Join(testDir, "b.csv")), false); err != nil {
		t.Errorf("%v", err)
	}

}
