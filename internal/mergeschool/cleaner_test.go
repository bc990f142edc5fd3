package mergeschool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaner_Clean(t *testing.T) {
	f := newFrame(t, "majors", []string{CCodeColumn, COfficeColumn, "학과명"},
		[]interface{}{" 7010057 ", "B10 ", "전기과"},
		[]interface{}{"", "B10", "빈코드"},
		[]interface{}{"   ", "B10", "공백코드"},
		[]interface{}{"nan", "B10", "nan코드"},
		[]interface{}{17, "C10", "숫자코드"},
		[]interface{}{"7010058", "", "빈교육청"},
	)

	c := NewCleaner(KeyColumns{Code: CCodeColumn, Office: COfficeColumn}, defaultNullValues, true)
	dropped := c.Clean(f)

	assert.Equal(t, 4, dropped)
	require.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"7010057", "B10", "전기과"}, f.Row(0))
	assert.Equal(t, []string{"17", "C10", "숫자코드"}, f.Row(1))
}

func TestCleaner_primaryKeyOnly(t *testing.T) {
	f := newFrame(t, "schools", []string{CCodeColumn, COfficeColumn},
		[]interface{}{"7010058", " "},
		[]interface{}{"NULL", "B10"},
	)

	c := NewCleaner(KeyColumns{Code: CCodeColumn, Office: COfficeColumn}, defaultNullValues, false)
	assert.Equal(t, 1, c.Clean(f))
	require.Equal(t, 1, f.Len())
	assert.Equal(t, []string{"7010058", ""}, f.Row(0))
}

func TestCleaner_IsBlank(t *testing.T) {
	c := NewCleaner(KeyColumns{Code: CCodeColumn, Office: COfficeColumn}, []string{"undefined"}, true)

	assert.True(t, c.IsBlank(""))
	assert.True(t, c.IsBlank(" \t "))
	assert.True(t, c.IsBlank(" undefined "))
	assert.False(t, c.IsBlank("nan"))
	assert.False(t, c.IsBlank("0"))
}

func TestCleaner_missingColumn(t *testing.T) {
	f := newFrame(t, "other", []string{"a"}, []interface{}{""})
	c := NewCleaner(KeyColumns{Code: CCodeColumn, Office: COfficeColumn}, nil, true)
	assert.Equal(t, 0, c.Clean(f))
	assert.Equal(t, 1, f.Len())
}

func TestCleaner_nullCells(t *testing.T) {
	f := newFrame(t, "majors", []string{CCodeColumn, COfficeColumn, "학과명", "정원", "비고"},
		[]interface{}{"1", "B10", "N/A", "NaN", " NA "},
		[]interface{}{"2", "B10", "전기과", "30", "undefined"},
	)

	c := NewCleaner(KeyColumns{Code: CCodeColumn, Office: COfficeColumn}, defaultNullValues, true)
	assert.Equal(t, 0, c.Clean(f))
	require.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"1", "B10", "", "", " NA "}, f.Row(0))
	assert.Equal(t, []string{"2", "B10", "전기과", "30", ""}, f.Row(1))
}
