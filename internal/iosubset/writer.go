package iosubset

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/clindata/clinsub/pkg/subset"
	"github.com/gnames/gnsys"
)

// outputName maps an archive table name to the name of its output
// artifact. The filtered event tables are renamed the way the published
// subsets name them.
func outputName(table string) string {
	switch table {
	case subset.TableChartEvents:
		return "CHARTEVENTS_VITALS"
	case subset.TableLabEvents:
		return "LABEVENTS_SAMPLE"
	default:
		return table
	}
}

// write persists all tables plus the README manifest. Everything goes
// into a sibling staging directory first; files appear at the final
// location only after every artifact has been fully written, so an
// aborted run leaves no partial output.
func (s *subsetter) write(
	ctx context.Context,
	tables []*subset.Table,
	stats *subset.Stats,
) error {
	outDir := s.cfg.Create.OutputDir
	tmpDir := outDir + ".partial"

	if err := gnsys.MakeDir(tmpDir); err != nil {
		return OutputDirError(tmpDir, err)
	}
	defer os.RemoveAll(tmpDir)

	bar := pb.Full.Start(len(tables) + 1)
	bar.Set("prefix", "Writing tables: ")
	bar.Set(pb.CleanOnFinish, true)

	for _, t := range tables {
		if err := writeCSV(tmpDir, t); err != nil {
			bar.Finish()
			return err
		}
		bar.Add(1)
	}

	if err := writeReadme(tmpDir, stats); err != nil {
		bar.Finish()
		return err
	}
	bar.Add(1)
	bar.Finish()

	if err := checkCancelled(ctx); err != nil {
		return err
	}

	return commit(tmpDir, outDir)
}

// writeCSV writes one table as a CSV artifact: header row first, then
// one row per record, source column order preserved.
func writeCSV(dir string, t *subset.Table) error {
	path := filepath.Join(dir, outputName(t.Name)+".csv")

	f, err := os.Create(path)
	if err != nil {
		return WriteTableError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(t.Columns); err != nil {
		return WriteTableError(path, err)
	}
	for _, row := range t.Rows {
		if err = w.Write(row); err != nil {
			return WriteTableError(path, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return WriteTableError(path, err)
	}
	return f.Close()
}

// commit moves fully-written artifacts from the staging directory into
// the output directory. Every file is complete before the first rename
// happens.
func commit(tmpDir, outDir string) error {
	if err := gnsys.MakeDir(outDir); err != nil {
		return OutputDirError(outDir, err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return CommitOutputError(outDir, err)
	}
	for _, e := range entries {
		src := filepath.Join(tmpDir, e.Name())
		dst := filepath.Join(outDir, e.Name())
		if err = os.Rename(src, dst); err != nil {
			return CommitOutputError(dst, err)
		}
	}
	return nil
}
