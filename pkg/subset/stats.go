package subset

import (
	"time"
)

// TableStats reports the shape of one output table.
type TableStats struct {
	Name string
	Rows int
	Cols int
}

// Stats summarizes a finished subset run. It carries everything the
// README manifest needs.
type Stats struct {
	// SubsetID is a deterministic UUID v5 fingerprint of
	// archive|size|seed. Identical runs carry an identical ID.
	SubsetID string

	SampleSize int
	Seed       int64
	CreatedAt  time.Time

	// LabEventCap is the per-patient cap applied to LABEVENTS.
	LabEventCap int

	// Tables keeps the output order: filtered entities first, then
	// dictionary tables.
	Tables []TableStats

	// Dictionary marks how many trailing entries of Tables are
	// unfiltered lookup tables.
	Dictionary int

	UniquePatients   int
	UniqueAdmissions int
	UniqueStays      int
}

// Table returns the stats entry for a named table, or nil.
func (s *Stats) Table(name string) *TableStats {
	for i := range s.Tables {
		if s.Tables[i].Name == name {
			return &s.Tables[i]
		}
	}
	return nil
}
