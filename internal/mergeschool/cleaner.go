package mergeschool

import (
	"kkokgoMerge/pkg/csvdb"
	"strings"
)

// Cleaner drops rows with unusable join keys, trims the key cells of the
// rows it keeps and empties null markers in the other cells.
type Cleaner struct {
	keys       KeyColumns
	nulls      map[string]bool
	requireAll bool
}

func NewCleaner(keys KeyColumns, nullValues []string, requireAll bool) *Cleaner {
	c := new(Cleaner)
	c.keys = keys
	c.nulls = make(map[string]bool, len(nullValues))
	for _, v := range nullValues {
		c.nulls[strings.TrimSpace(v)] = true
	}
	c.requireAll = requireAll
	return c
}

// IsBlank reports whether v is missing: empty, whitespace only or a null
// marker.
func (c *Cleaner) IsBlank(v string) bool {
	t := strings.TrimSpace(v)
	return t == "" || c.nulls[t]
}

// Clean rewrites f in place and returns the number of dropped rows.
func (c *Cleaner) Clean(f *csvdb.Frame) int {
	code := f.GetColIdx(c.keys.Code)
	office := f.GetColIdx(c.keys.Office)
	if code < 0 {
		return 0
	}

	dropped := f.Delete(func(v []string) bool {
		if c.IsBlank(v[code]) {
			return true
		}
		return c.requireAll && office >= 0 && c.IsBlank(v[office])
	})

	f.Update(c.keys.Code, strings.TrimSpace)
	if office >= 0 {
		f.Update(c.keys.Office, strings.TrimSpace)
	}
	for _, col := range f.Columns() {
		if col == c.keys.Code || col == c.keys.Office {
			continue
		}
		f.Update(col, c.blankNull)
	}
	return dropped
}

// blankNull empties a non key cell holding exactly a null marker, so a
// missing value is written as an empty cell.
func (c *Cleaner) blankNull(v string) string {
	if c.nulls[v] {
		return ""
	}
	return v
}
