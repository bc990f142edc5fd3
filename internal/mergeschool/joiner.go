package mergeschool

import (
	"kkokgoMerge/pkg/csvdb"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Key is one composite join key value.
type Key struct {
	Code   string
	Office string
}

// Diagnostics describes why a join came out empty.
type Diagnostics struct {
	MajorCodes  int
	SchoolCodes int
	CommonCodes int
	MajorKeys   int
	SchoolKeys  int
	CommonKeys  int
}

// Joiner inner joins the major frame (left) with the school frame (right).
type Joiner struct {
	name   string
	keys   KeyColumns
	suffix string
}

func NewJoiner(name string, keys KeyColumns, suffix string) *Joiner {
	j := new(Joiner)
	j.name = name
	j.keys = keys
	j.suffix = suffix
	return j
}

// Join returns every pair of left and right rows with equal keys, in left
// order and then right order. The output holds all left columns followed
// by the non key right columns; a right column whose name is taken gets
// the suffix. An empty result is an EmptyJoinError.
func (j *Joiner) Join(left, right *csvdb.Frame) (*csvdb.Frame, error) {
	if err := left.HasColumns(j.keys.Code, j.keys.Office); err != nil {
		return nil, err
	}
	if err := right.HasColumns(j.keys.Code, j.keys.Office); err != nil {
		return nil, err
	}
	cols, rightIdxs, err := j.outputColumns(left, right)
	if err != nil {
		return nil, err
	}

	index := j.index(right)
	logrus.WithFields(logrus.Fields{
		"rightRows": right.Len(),
		"rightKeys": len(index),
	}).Debug("join index built")

	lc, lo := left.GetColIdx(j.keys.Code), left.GetColIdx(j.keys.Office)
	out := csvdb.NewFrame(j.name, cols)
	for i := 0; i < left.Len(); i++ {
		l := left.Row(i)
		for _, ri := range index[Key{Code: l[lc], Office: l[lo]}] {
			r := right.Row(ri)
			row := make([]string, 0, len(cols))
			row = append(row, l...)
			for _, idx := range rightIdxs {
				row = append(row, r[idx])
			}
			if err := out.AppendRow(row); err != nil {
				return nil, err
			}
		}
	}

	if out.Len() == 0 {
		return nil, errors.WithStack(&EmptyJoinError{Diagnostics: j.Diagnose(left, right)})
	}
	return out, nil
}

func (j *Joiner) index(f *csvdb.Frame) map[Key][]int {
	fc, fo := f.GetColIdx(j.keys.Code), f.GetColIdx(j.keys.Office)
	index := make(map[Key][]int)
	for i := 0; i < f.Len(); i++ {
		v := f.Row(i)
		k := Key{Code: v[fc], Office: v[fo]}
		index[k] = append(index[k], i)
	}
	return index
}

func (j *Joiner) outputColumns(left, right *csvdb.Frame) ([]string, []int, error) {
	leftCols := left.Columns()
	used := make(map[string]bool, len(leftCols))
	for _, col := range leftCols {
		used[col] = true
	}

	cols := leftCols
	rightIdxs := make([]int, 0)
	for i, col := range right.Columns() {
		if col == j.keys.Code || col == j.keys.Office {
			continue
		}
		name := col
		if used[name] {
			name = col + j.suffix
			if j.suffix == "" || used[name] {
				return nil, nil, errors.Errorf("column %q of %s collides with %q, change the suffix",
					col, right.Name(), name)
			}
		}
		used[name] = true
		cols = append(cols, name)
		rightIdxs = append(rightIdxs, i)
	}
	return cols, rightIdxs, nil
}

// Diagnose counts distinct administrative codes and distinct composite
// keys on both sides and how many of each the sides share.
func (j *Joiner) Diagnose(left, right *csvdb.Frame) Diagnostics {
	lCodes, lKeys := j.distinct(left)
	rCodes, rKeys := j.distinct(right)

	d := Diagnostics{
		MajorCodes:  len(lCodes),
		SchoolCodes: len(rCodes),
		MajorKeys:   len(lKeys),
		SchoolKeys:  len(rKeys),
	}
	for code := range lCodes {
		if rCodes[code] {
			d.CommonCodes++
		}
	}
	for k := range lKeys {
		if rKeys[k] {
			d.CommonKeys++
		}
	}
	return d
}

func (j *Joiner) distinct(f *csvdb.Frame) (map[string]bool, map[Key]bool) {
	fc, fo := f.GetColIdx(j.keys.Code), f.GetColIdx(j.keys.Office)
	codes := make(map[string]bool)
	keys := make(map[Key]bool)
	for i := 0; i < f.Len(); i++ {
		v := f.Row(i)
		codes[v[fc]] = true
		keys[Key{Code: v[fc], Office: v[fo]}] = true
	}
	return codes, keys
}
