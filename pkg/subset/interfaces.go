package subset

import (
	"context"
)

// ChunkFunc receives the table header and one chunk of rows during a
// streaming scan. Returning done=true stops the scan after the current
// chunk; any error aborts it.
type ChunkFunc func(columns []string, rows [][]string) (done bool, err error)

// Archive provides read access to the compressed source dataset. The
// required tables are validated when the archive opens, so ReadTable and
// StreamTable may assume a well-formed archive for those.
type Archive interface {
	// RootDir returns the directory prefix shared by all archive entries.
	RootDir() string

	// TableNames lists the tables found in the archive.
	TableNames() []string

	// HasTable reports whether a named table exists in the archive.
	HasTable(name string) bool

	// EntrySize returns the compressed size of a table in bytes, or 0
	// when the table does not exist.
	EntrySize(name string) uint64

	// ReadTable decompresses a named table fully into memory.
	ReadTable(name string) (*Table, error)

	// StreamTable reads a named table in chunks of at most chunkSize
	// rows (the last chunk may be smaller), calling fn for each chunk
	// in source order.
	StreamTable(name string, chunkSize int, fn ChunkFunc) error

	// Close releases the underlying archive handle.
	Close() error
}

// Subsetter runs the full pipeline: sample admissions, cascade the key
// sets through the dependent tables, stream-filter the large event
// tables, and persist the output atomically.
type Subsetter interface {
	// Create produces the subset and returns its statistics. Any fatal
	// condition aborts the run before the output directory is touched.
	Create(ctx context.Context) (*Stats, error)
}
