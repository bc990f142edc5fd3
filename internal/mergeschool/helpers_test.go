package mergeschool

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kkokgoMerge/pkg/csvdb"

	"github.com/stretchr/testify/require"
)

func newFrame(t *testing.T, name string, columns []string, rows ...[]interface{}) *csvdb.Frame {
	t.Helper()
	f := csvdb.NewFrame(name, columns)
	for _, row := range rows {
		require.NoError(t, f.InsertRow(nil, row...))
	}
	return f
}

func writeCsv(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

func testOptions(dir string) Options {
	opts := DefaultOptions()
	opts.DataDir = dir
	return opts
}
