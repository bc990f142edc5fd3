package csvdb

import (
	"fmt"

	"github.com/pkg/errors"
)

// Frame is an in-memory table: ordered column names and ordered rows of
// text cells. Every row has exactly len(columns) cells.
type Frame struct {
	name    string
	columns []string
	colMap  map[string]int
	rows    [][]string
}

func NewFrame(name string, columns []string) *Frame {
	f := new(Frame)
	f.name = name
	f.columns = columns
	colMap := make(map[string]int)
	for i, col := range columns {
		colMap[col] = i
	}
	f.colMap = colMap
	f.rows = make([][]string, 0)
	return f
}

func (f *Frame) Name() string {
	return f.name
}

func (f *Frame) Columns() []string {
	cols := make([]string, len(f.columns))
	copy(cols, f.columns)
	return cols
}

func (f *Frame) Len() int {
	return len(f.rows)
}

func (f *Frame) Row(i int) []string {
	return f.rows[i]
}

func (f *Frame) GetColIdx(colName string) int {
	i, ok := f.colMap[colName]
	if ok {
		return i
	}
	return -1
}

func (f *Frame) HasColumns(colNames ...string) error {
	for _, col := range colNames {
		if _, ok := f.colMap[col]; !ok {
			return errors.Errorf("column %q does not exist in %s", col, f.name)
		}
	}
	return nil
}

// AppendRow adds row as is. The frame keeps the slice.
func (f *Frame) AppendRow(row []string) error {
	if len(row) != len(f.columns) {
		return errors.Errorf("row has %d cells while %s has %d columns",
			len(row), f.name, len(f.columns))
	}
	f.rows = append(f.rows, row)
	return nil
}

// InsertRow converts args to text and appends them. With columns == nil
// args must cover every column; otherwise missing columns stay empty.
func (f *Frame) InsertRow(columns []string, args ...interface{}) error {
	if columns == nil && len(args) != len(f.columns) {
		return errors.New("len of args do not match to table columns")
	}
	if columns != nil && len(columns) != len(args) {
		return errors.New("len of columns and args do not match")
	}

	row := make([]string, len(f.columns))
	if columns == nil {
		for i, v := range args {
			row[i] = asString(v)
		}
	} else {
		for i, col := range columns {
			j, ok := f.colMap[col]
			if !ok {
				return errors.New(fmt.Sprintf("column %s does not exist", col))
			}
			row[j] = asString(args[i])
		}
	}
	f.rows = append(f.rows, row)
	return nil
}

// Delete removes the rows matching conditionCheckFunc, keeping the order
// of the others, and returns how many were removed.
func (f *Frame) Delete(conditionCheckFunc func([]string) bool) int {
	if conditionCheckFunc == nil {
		n := len(f.rows)
		f.rows = f.rows[:0]
		return n
	}
	kept := f.rows[:0]
	for _, v := range f.rows {
		if !conditionCheckFunc(v) {
			kept = append(kept, v)
		}
	}
	deleted := len(f.rows) - len(kept)
	for i := len(kept); i < len(f.rows); i++ {
		f.rows[i] = nil
	}
	f.rows = kept
	return deleted
}

// Update rewrites every cell of column with fn(cell).
func (f *Frame) Update(column string, fn func(string) string) error {
	idx, ok := f.colMap[column]
	if !ok {
		return errors.New(fmt.Sprintf("Column %s does not exist", column))
	}
	for _, v := range f.rows {
		v[idx] = fn(v[idx])
	}
	return nil
}

// Values returns the cells of column in row order.
func (f *Frame) Values(column string) ([]string, error) {
	idx, ok := f.colMap[column]
	if !ok {
		return nil, errors.New(fmt.Sprintf("Column %s does not exist", column))
	}
	vals := make([]string, len(f.rows))
	for i, v := range f.rows {
		vals[i] = v[idx]
	}
	return vals, nil
}
