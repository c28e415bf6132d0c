package ioarchive_test

import (
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/clindata/clinsub/internal/ioarchive"
	"github.com/clindata/clinsub/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeArchive builds a zip archive in the style of a MIMIC-III
// download: a single root directory containing gzipped CSV tables.
func writeArchive(
	t *testing.T,
	rootDir string,
	tables map[string]string,
) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mimic.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, csvData := range tables {
		w, err := zw.Create(rootDir + "/" + name + ".csv.gz")
		require.NoError(t, err)

		gz := gzip.NewWriter(w)
		_, err = gz.Write([]byte(csvData))
		require.NoError(t, err)
		require.NoError(t, gz.Close())
	}
	require.NoError(t, zw.Close())

	return path
}

func coreTables() map[string]string {
	return map[string]string{
		"ADMISSIONS": "ROW_ID,SUBJECT_ID,HADM_ID\n" +
			"1,P1,A1\n2,P2,A2\n3,P3,A3\n",
		"PATIENTS": "ROW_ID,SUBJECT_ID,GENDER\n" +
			"1,P1,F\n2,P2,M\n3,P3,F\n",
		"ICUSTAYS": "ROW_ID,SUBJECT_ID,HADM_ID,ICUSTAY_ID\n" +
			"1,P1,A1,S1\n2,P2,A2,S2\n",
	}
}

func TestNew(t *testing.T) {
	path := writeArchive(t, "mimic-iii-1.4", coreTables())

	archive, err := ioarchive.New(path)
	require.NoError(t, err)
	defer archive.Close()

	assert.Equal(t, "mimic-iii-1.4", archive.RootDir())
	assert.Equal(
		t,
		[]string{"ADMISSIONS", "ICUSTAYS", "PATIENTS"},
		archive.TableNames(),
	)
	assert.True(t, archive.HasTable("PATIENTS"))
	assert.False(t, archive.HasTable("LABEVENTS"))
	assert.Greater(t, archive.EntrySize("ADMISSIONS"), uint64(0))
	assert.Equal(t, uint64(0), archive.EntrySize("LABEVENTS"))
}

func TestNew_MissingRequiredTables(t *testing.T) {
	tables := coreTables()
	delete(tables, "ICUSTAYS")
	path := writeArchive(t, "mimic-iii-1.4", tables)

	_, err := ioarchive.New(path)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "error should be of type *gn.Error")
	assert.Equal(t, errcode.ArchiveMissingTablesError, gnErr.Code)
	assert.Contains(t, gnErr.Vars, "ICUSTAYS")
}

func TestNew_NotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.zip")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))

	_, err := ioarchive.New(path)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "error should be of type *gn.Error")
	assert.Equal(t, errcode.ArchiveOpenError, gnErr.Code)
}

func TestReadTable(t *testing.T) {
	path := writeArchive(t, "mimic-iii-1.4", coreTables())

	archive, err := ioarchive.New(path)
	require.NoError(t, err)
	defer archive.Close()

	table, err := archive.ReadTable("ADMISSIONS")
	require.NoError(t, err)

	assert.Equal(t, "ADMISSIONS", table.Name)
	assert.Equal(t, []string{"ROW_ID", "SUBJECT_ID", "HADM_ID"}, table.Columns)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"1", "P1", "A1"}, table.Rows[0])
}

func TestReadTable_StripsBOM(t *testing.T) {
	tables := coreTables()
	tables["ADMISSIONS"] = "\ufeff" + tables["ADMISSIONS"]
	path := writeArchive(t, "mimic-iii-1.4", tables)

	archive, err := ioarchive.New(path)
	require.NoError(t, err)
	defer archive.Close()

	table, err := archive.ReadTable("ADMISSIONS")
	require.NoError(t, err)
	assert.Equal(t, "ROW_ID", table.Columns[0])
}

func TestReadTable_NotFound(t *testing.T) {
	path := writeArchive(t, "mimic-iii-1.4", coreTables())

	archive, err := ioarchive.New(path)
	require.NoError(t, err)
	defer archive.Close()

	_, err = archive.ReadTable("LABEVENTS")
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "error should be of type *gn.Error")
	assert.Equal(t, errcode.ArchiveTableNotFoundError, gnErr.Code)
}

func TestStreamTable_ChunkSizeInvariance(t *testing.T) {
	tables := coreTables()
	tables["LABEVENTS"] = "ROW_ID,SUBJECT_ID,ITEMID\n" +
		"1,P1,50868\n2,P1,50882\n3,P2,50868\n4,P2,50882\n5,P3,50868\n"
	path := writeArchive(t, "mimic-iii-1.4", tables)

	archive, err := ioarchive.New(path)
	require.NoError(t, err)
	defer archive.Close()

	collect := func(chunkSize int) [][]string {
		var rows [][]string
		err := archive.StreamTable(
			"LABEVENTS", chunkSize,
			func(columns []string, chunk [][]string) (bool, error) {
				assert.LessOrEqual(t, len(chunk), chunkSize)
				assert.Equal(
					t, []string{"ROW_ID", "SUBJECT_ID", "ITEMID"}, columns,
				)
				rows = append(rows, chunk...)
				return false, nil
			},
		)
		require.NoError(t, err)
		return rows
	}

	baseline := collect(1000)
	require.Len(t, baseline, 5)

	for _, chunkSize := range []int{1, 2, 3, 5} {
		assert.Equal(t, baseline, collect(chunkSize),
			"chunk size must not change the scan result")
	}
}

func TestStreamTable_EarlyStop(t *testing.T) {
	tables := coreTables()
	tables["LABEVENTS"] = "ROW_ID,SUBJECT_ID,ITEMID\n" +
		"1,P1,50868\n2,P1,50882\n3,P2,50868\n4,P2,50882\n"
	path := writeArchive(t, "mimic-iii-1.4", tables)

	archive, err := ioarchive.New(path)
	require.NoError(t, err)
	defer archive.Close()

	var calls int
	err = archive.StreamTable(
		"LABEVENTS", 2,
		func(columns []string, chunk [][]string) (bool, error) {
			calls++
			return true, nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "done=true must stop the scan")
}

func TestStreamTable_EmptyTable(t *testing.T) {
	tables := coreTables()
	tables["LABEVENTS"] = "ROW_ID,SUBJECT_ID,ITEMID\n"
	path := writeArchive(t, "mimic-iii-1.4", tables)

	archive, err := ioarchive.New(path)
	require.NoError(t, err)
	defer archive.Close()

	var calls int
	var header []string
	err = archive.StreamTable(
		"LABEVENTS", 100,
		func(columns []string, chunk [][]string) (bool, error) {
			calls++
			header = columns
			assert.Empty(t, chunk)
			return false, nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, calls,
		"a table with no data rows still reports its header")
	assert.Equal(t, []string{"ROW_ID", "SUBJECT_ID", "ITEMID"}, header)
}
