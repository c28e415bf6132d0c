// Package iosubset orchestrates the sampling-and-cascade pipeline and
// persists the resulting subset. This is an impure I/O package; the
// filtering semantics live in pkg/subset.
package iosubset

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/clindata/clinsub/pkg/config"
	"github.com/clindata/clinsub/pkg/subset"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
)

// subsetter implements the subset.Subsetter interface.
type subsetter struct {
	cfg     *config.Config
	archive subset.Archive
}

// New creates a new Subsetter over an already-validated archive.
func New(cfg *config.Config, archive subset.Archive) subset.Subsetter {
	return &subsetter{cfg: cfg, archive: archive}
}

// Create runs all phases: sample admissions, cascade the key sets
// through the dependent tables, stream-filter the event tables, copy
// the dictionary tables, and write everything atomically.
func (s *subsetter) Create(ctx context.Context) (*subset.Stats, error) {
	startTime := time.Now()
	slog.Info("Starting subset creation",
		"archive", s.cfg.Create.ArchivePath,
		"output", s.cfg.Create.OutputDir,
		"sample_size", s.cfg.Sample.Size,
		"seed", s.cfg.Sample.Seed,
	)

	gn.Info("(1/6) Loading core tables...")
	admissions, err := s.archive.ReadTable(subset.TableAdmissions)
	if err != nil {
		return nil, err
	}
	patients, err := s.archive.ReadTable(subset.TablePatients)
	if err != nil {
		return nil, err
	}
	icustays, err := s.archive.ReadTable(subset.TableICUStays)
	if err != nil {
		return nil, err
	}

	if err = checkCancelled(ctx); err != nil {
		return nil, err
	}

	gn.Info("(2/6) Sampling <em>%s</em> admissions...",
		humanize.Comma(int64(s.cfg.Sample.Size)))
	admissionIDs, err := admissions.ProjectDistinct(subset.ColAdmissionID)
	if err != nil {
		return nil, err
	}
	sampledAdmissions, err := subset.SampleKeys(
		admissionIDs, s.cfg.Sample.Size, s.cfg.Sample.Seed,
	)
	if err != nil {
		return nil, err
	}
	slog.Info("Sampled admissions",
		"population", len(admissionIDs),
		"sampled", len(sampledAdmissions),
	)

	gn.Info("(3/6) Cascading key sets through dependent tables...")
	tier, err := s.cascade(admissions, patients, icustays, sampledAdmissions)
	if err != nil {
		return nil, err
	}

	if err = checkCancelled(ctx); err != nil {
		return nil, err
	}

	gn.Info("(4/6) Filtering admission-linked tables...")
	byAdmission := make(map[string]*subset.Table)
	for _, name := range []string{
		subset.TableDiagnoses,
		subset.TablePrescriptions,
		subset.TableProcedures,
	} {
		table, err := s.archive.ReadTable(name)
		if err != nil {
			return nil, err
		}
		filtered, err := table.FilterByKey(
			subset.ColAdmissionID, sampledAdmissions,
		)
		if err != nil {
			return nil, err
		}
		byAdmission[name] = filtered
		slog.Info("Filtered table",
			"table", name,
			"rows", len(filtered.Rows),
		)
	}

	if err = checkCancelled(ctx); err != nil {
		return nil, err
	}

	gn.Info("(5/6) Scanning event tables...")
	chartEvents, err := s.streamChartEvents(ctx, tier.stayIDs)
	if err != nil {
		return nil, err
	}
	labEvents, err := s.streamLabEvents(ctx, tier.patientIDs)
	if err != nil {
		return nil, err
	}

	gn.Info("(6/6) Copying dictionary tables...")
	var dicts []*subset.Table
	for _, name := range subset.DictionaryTables() {
		if !s.archive.HasTable(name) {
			slog.Warn("Dictionary table absent, skipping", "table", name)
			continue
		}
		table, err := s.archive.ReadTable(name)
		if err != nil {
			return nil, err
		}
		dicts = append(dicts, table)
	}

	tables := []*subset.Table{
		tier.admissions,
		tier.patients,
		tier.icustays,
		byAdmission[subset.TableDiagnoses],
		byAdmission[subset.TableProcedures],
		byAdmission[subset.TablePrescriptions],
		chartEvents,
		labEvents,
	}
	tables = append(tables, dicts...)

	stats := s.buildStats(tier, tables, len(dicts))

	if err = s.write(ctx, tables, stats); err != nil {
		return nil, err
	}

	duration := time.Since(startTime)
	slog.Info("Subset creation complete",
		"subset_id", stats.SubsetID,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info("Completed in <em>%s</em>", gnfmt.TimeString(duration.Seconds()))

	return stats, nil
}

// tierTables holds the cascade results of the in-memory tier.
type tierTables struct {
	admissions *subset.Table
	patients   *subset.Table
	icustays   *subset.Table
	patientIDs subset.KeySet
	stayIDs    subset.KeySet
}

// cascade derives the patient and ICU-stay key sets from the sampled
// admissions and filters the three core tables. Empty derived sets are
// normal outcomes; downstream tables then contribute zero rows.
func (s *subsetter) cascade(
	admissions, patients, icustays *subset.Table,
	sampled subset.KeySet,
) (*tierTables, error) {
	admSubset, err := admissions.FilterByKey(subset.ColAdmissionID, sampled)
	if err != nil {
		return nil, err
	}

	patientIDs, err := admSubset.ProjectDistinct(subset.ColSubjectID)
	if err != nil {
		return nil, err
	}
	patSubset, err := patients.FilterByKey(subset.ColSubjectID, patientIDs)
	if err != nil {
		return nil, err
	}

	staySubset, err := icustays.FilterByKey(subset.ColAdmissionID, sampled)
	if err != nil {
		return nil, err
	}
	stayIDs, err := staySubset.ProjectDistinct(subset.ColICUStayID)
	if err != nil {
		return nil, err
	}

	slog.Info("Cascade complete",
		"patients", len(patientIDs),
		"icu_stays", len(stayIDs),
	)

	return &tierTables{
		admissions: admSubset,
		patients:   patSubset,
		icustays:   staySubset,
		patientIDs: patientIDs,
		stayIDs:    stayIDs,
	}, nil
}

func (s *subsetter) buildStats(
	tier *tierTables,
	tables []*subset.Table,
	dicts int,
) *subset.Stats {
	fingerprint := fmt.Sprintf("%s|%d|%d",
		filepath.Base(s.cfg.Create.ArchivePath),
		s.cfg.Sample.Size,
		s.cfg.Sample.Seed,
	)

	stats := &subset.Stats{
		SubsetID:    gnuuid.New(fingerprint).String(),
		SampleSize:  s.cfg.Sample.Size,
		Seed:        s.cfg.Sample.Seed,
		CreatedAt:   time.Now(),
		LabEventCap: s.cfg.Stream.LabEventsPerPatient,
		Dictionary:  dicts,

		UniquePatients:   tier.patients.UniqueCount(subset.ColSubjectID),
		UniqueAdmissions: tier.admissions.UniqueCount(subset.ColAdmissionID),
		UniqueStays:      tier.icustays.UniqueCount(subset.ColICUStayID),
	}
	for _, t := range tables {
		stats.Tables = append(stats.Tables, subset.TableStats{
			Name: outputName(t.Name),
			Rows: len(t.Rows),
			Cols: len(t.Columns),
		})
	}
	return stats
}

func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return CancelledError(ctx.Err())
	default:
		return nil
	}
}
