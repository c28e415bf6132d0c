// Package subset implements the sampling-and-cascade engine that extracts
// a referentially consistent slice of a relational clinical dataset.
// The package is pure: it never touches the file system, all I/O happens
// behind the Archive interface.
package subset

import (
	"slices"
	"strings"
)

// KeySet holds key values as they appear in CSV cells.
type KeySet map[string]struct{}

// NewKeySet builds a KeySet from the given values.
func NewKeySet(vals ...string) KeySet {
	res := make(KeySet, len(vals))
	for _, v := range vals {
		res[v] = struct{}{}
	}
	return res
}

// Has reports whether v is a member of the set.
func (ks KeySet) Has(v string) bool {
	_, ok := ks[v]
	return ok
}

// Add inserts v into the set.
func (ks KeySet) Add(v string) {
	ks[v] = struct{}{}
}

// Sorted returns the members in lexicographic order. Randomness
// primitives are order-sensitive, so every iteration that has to be
// reproducible goes through this canonical sequence.
func (ks KeySet) Sorted() []string {
	res := make([]string, 0, len(ks))
	for v := range ks {
		res = append(res, v)
	}
	slices.Sort(res)
	return res
}

// Table is an immutable in-memory relational table. Rows keep the
// source order and the source column order.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// ColumnIndex finds the position of a column by name. The match is
// case-insensitive because MIMIC distributions differ in header casing.
func ColumnIndex(columns []string, name string) (int, bool) {
	for i, col := range columns {
		if strings.EqualFold(col, name) {
			return i, true
		}
	}
	return 0, false
}

// ColumnIndex finds the position of a column of the table by name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	return ColumnIndex(t.Columns, name)
}

// FilterByKey returns a new table with the subsequence of rows whose
// value in column is a member of allowed. Row order and all columns are
// preserved; neither the receiver nor allowed is mutated. An empty
// result is a normal outcome, not an error.
func (t *Table) FilterByKey(column string, allowed KeySet) (*Table, error) {
	idx, ok := t.ColumnIndex(column)
	if !ok {
		return nil, KeyColumnMissingError(t.Name, column)
	}

	res := &Table{Name: t.Name, Columns: t.Columns}
	for _, row := range t.Rows {
		if idx < len(row) && allowed.Has(row[idx]) {
			res.Rows = append(res.Rows, row)
		}
	}
	return res, nil
}

// ProjectDistinct collects the distinct values of a column. It derives
// the key set of the next cascade tier, e.g. the patient keys referenced
// by the sampled admissions.
func (t *Table) ProjectDistinct(column string) (KeySet, error) {
	idx, ok := t.ColumnIndex(column)
	if !ok {
		return nil, KeyColumnMissingError(t.Name, column)
	}

	res := make(KeySet)
	for _, row := range t.Rows {
		if idx < len(row) {
			res.Add(row[idx])
		}
	}
	return res, nil
}

// UniqueCount returns the number of distinct values in a column, or 0
// when the column does not exist.
func (t *Table) UniqueCount(column string) int {
	ks, err := t.ProjectDistinct(column)
	if err != nil {
		return 0
	}
	return len(ks)
}
