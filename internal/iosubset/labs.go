package iosubset

import (
	"context"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/clindata/clinsub/pkg/subset"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
)

// streamLabEvents scans LABEVENTS once in chunks, keeping up to the
// configured cap of rows per sampled patient, first-seen-first-kept in
// source order. The scan stops after a chunk once every patient's
// budget is spent; the rest of the table cannot contribute rows. A
// patient with fewer events than the cap simply receives fewer rows.
func (s *subsetter) streamLabEvents(
	ctx context.Context,
	patientIDs subset.KeySet,
) (*subset.Table, error) {
	maxPerPatient := s.cfg.Stream.LabEventsPerPatient
	quota := subset.NewQuota(patientIDs, maxPerPatient)

	// The bar tracks budget filled, not rows scanned; early termination
	// shows as a completed bar.
	bar := pb.Full.Start(len(patientIDs) * maxPerPatient)
	bar.Set("prefix", "Lab events: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	res := &subset.Table{Name: subset.TableLabEvents}
	var scanned int

	err := s.archive.StreamTable(
		subset.TableLabEvents,
		s.cfg.Stream.ChunkSize,
		func(columns []string, rows [][]string) (bool, error) {
			if res.Columns == nil {
				res.Columns = columns
			}
			subjIdx, ok := subset.ColumnIndex(columns, subset.ColSubjectID)
			if !ok {
				return false, subset.KeyColumnMissingError(
					subset.TableLabEvents, subset.ColSubjectID,
				)
			}

			var kept int
			for _, row := range rows {
				if subjIdx >= len(row) {
					continue
				}
				if quota.Take(row[subjIdx]) {
					res.Rows = append(res.Rows, row)
					kept++
				}
			}
			bar.Add(kept)

			scanned += len(rows)
			slog.Debug("Lab events chunk processed",
				"scanned", scanned,
				"matched", len(res.Rows),
			)

			if err := checkCancelled(ctx); err != nil {
				return false, err
			}
			return quota.Exhausted(), nil
		},
	)
	if err != nil {
		return nil, err
	}

	slog.Info("Lab events scan complete",
		"scanned", scanned,
		"matched", len(res.Rows),
		"all_budgets_spent", quota.Exhausted(),
	)
	gn.Message("<em>Kept %s lab-event rows (up to %d per patient)</em>",
		humanize.Comma(int64(len(res.Rows))),
		maxPerPatient,
	)

	return res, nil
}
