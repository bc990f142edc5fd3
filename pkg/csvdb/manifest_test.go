package csvdb

import (
	"bytes"
	"kkokgoMerge/pkg/utils"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestManifest(t *testing.T) {
	testDir, err := utils.InitTestDir("TestManifest")
	if err != nil {
		t.Errorf("%v", err)
		return
	}

	dataPath := filepath.Join(testDir, "kkokgo_master_db.csv")
	iniPath := ManifestPath(dataPath)
	if err := utils.GetGotExpErr("path", filepath.Base(iniPath), "kkokgo_master_db.tbl.ini"); err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("gz path",
		filepath.Base(ManifestPath(dataPath+".gz")), "kkokgo_master_db.tbl.ini"); err != nil {
		t.Errorf("%v", err)
		return
	}

	f := sampleMasterFrame()
	m := NewManifest(f)
	m.Keys = []string{"행정표준코드", "시도교육청코드"}
	m.Suffix = "_school"
	m.Sources = []string{"app/data/all_major_info_merged.csv", "app/data/highschoolinfo.csv"}
	if err := m.Save(iniPath); err != nil {
		t.Errorf("%+v", err)
		return
	}
	first, _ := os.ReadFile(iniPath)

	got, err := LoadManifest(iniPath)
	if err != nil {
		t.Errorf("%+v", err)
		return
	}
	if err := utils.GetGotExpErr("rows", got.Rows, 3); err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("columns",
		strings.Join(got.Columns, "|"), "행정표준코드|시도교육청코드|학과명|학교명"); err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("keys", strings.Join(got.Keys, "|"), "행정표준코드|시도교육청코드"); err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("suffix", got.Suffix, "_school"); err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("sources", len(got.Sources), 2); err != nil {
		t.Errorf("%v", err)
		return
	}

	if err := got.Save(iniPath); err != nil {
		t.Errorf("%+v", err)
		return
	}
	second, _ := os.ReadFile(iniPath)
	if err := utils.GetGotExpErr("stable", bytes.Equal(first, second), true); err != nil {
		t.Errorf("%v", err)
		return
	}
}
