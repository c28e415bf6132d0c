// Package ioarchive reads gzipped CSV tables out of a MIMIC-style zip
// archive. This is an impure I/O package; it implements subset.Archive.
package ioarchive

import (
	"archive/zip"
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/clindata/clinsub/pkg/subset"
)

const tableSuffix = ".csv.gz"

type archive struct {
	path    string
	zr      *zip.ReadCloser
	rootDir string
	entries map[string]*zip.File
}

// New opens a zip archive and validates that the required tables are
// present before any processing starts. The root directory prefix is
// taken from the first entry; it is not assumed to match the archive
// file name.
func New(archivePath string) (subset.Archive, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, OpenError(archivePath, err)
	}
	if len(zr.File) == 0 {
		zr.Close()
		return nil, OpenError(archivePath, errors.New("archive is empty"))
	}

	rootDir, _, _ := strings.Cut(zr.File[0].Name, "/")

	a := &archive{
		path:    archivePath,
		zr:      zr,
		rootDir: rootDir,
		entries: make(map[string]*zip.File),
	}
	for _, f := range zr.File {
		base := path.Base(f.Name)
		if !strings.HasSuffix(base, tableSuffix) {
			continue
		}
		name := strings.TrimSuffix(base, tableSuffix)
		a.entries[name] = f
	}

	var missing []string
	for _, name := range subset.RequiredTables() {
		if !a.HasTable(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		zr.Close()
		return nil, MissingTablesError(archivePath, missing)
	}

	return a, nil
}

func (a *archive) RootDir() string {
	return a.rootDir
}

func (a *archive) TableNames() []string {
	res := make([]string, 0, len(a.entries))
	for name := range a.entries {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

func (a *archive) HasTable(name string) bool {
	_, ok := a.entries[name]
	return ok
}

// EntrySize returns the compressed size of a table entry in bytes,
// or 0 when the table does not exist. Used by the inspect command.
func (a *archive) EntrySize(name string) uint64 {
	f, ok := a.entries[name]
	if !ok {
		return 0
	}
	return f.CompressedSize64
}

// ReadTable decompresses a named table fully into memory. Only small
// tables go through here; the event tables use StreamTable.
func (a *archive) ReadTable(name string) (*subset.Table, error) {
	r, closer, err := a.openTable(name)
	if err != nil {
		return nil, err
	}
	defer closer()

	columns, err := readHeader(r)
	if err != nil {
		return nil, ParseError(name, err)
	}

	res := &subset.Table{Name: name, Columns: columns}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ParseError(name, err)
		}
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}

// StreamTable reads a named table in chunks of at most chunkSize rows,
// calling fn for each chunk in source order. A done=true return from fn
// stops the scan after the current chunk.
func (a *archive) StreamTable(
	name string,
	chunkSize int,
	fn subset.ChunkFunc,
) error {
	r, closer, err := a.openTable(name)
	if err != nil {
		return err
	}
	defer closer()

	columns, err := readHeader(r)
	if err != nil {
		return ParseError(name, err)
	}

	var called bool
	chunk := make([][]string, 0, chunkSize)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ParseError(name, err)
		}

		chunk = append(chunk, row)
		if len(chunk) < chunkSize {
			continue
		}

		done, err := fn(columns, chunk)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		called = true
		chunk = make([][]string, 0, chunkSize)
	}

	// A table with no data rows still yields one call, so the caller
	// always learns the header.
	if len(chunk) > 0 || !called {
		if _, err := fn(columns, chunk); err != nil {
			return err
		}
	}
	return nil
}

func (a *archive) Close() error {
	return a.zr.Close()
}

// openTable sets up the zip entry -> gzip -> csv reader pipeline.
// The returned closer releases both the gzip and the entry readers.
func (a *archive) openTable(name string) (*csv.Reader, func(), error) {
	f, ok := a.entries[name]
	if !ok {
		return nil, nil, TableNotFoundError(a.path, name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, nil, DecompressError(name, err)
	}

	gz, err := gzip.NewReader(bufio.NewReaderSize(rc, 256*1024))
	if err != nil {
		rc.Close()
		return nil, nil, DecompressError(name, err)
	}

	r := csv.NewReader(gz)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	closer := func() {
		gz.Close()
		rc.Close()
	}
	return r, closer, nil
}

// readHeader reads the first record and strips a UTF-8 BOM if present.
func readHeader(r *csv.Reader) ([]string, error) {
	columns, err := r.Read()
	if err != nil {
		return nil, err
	}
	if len(columns) > 0 {
		columns[0] = strings.TrimPrefix(columns[0], "\ufeff")
	}
	return columns, nil
}
