package iosubset

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/clindata/clinsub/pkg/subset"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
)

// streamChartEvents scans CHARTEVENTS once in chunks, keeping rows that
// belong to a sampled ICU stay AND carry a vital-sign ITEMID. Matches
// may appear anywhere, so the whole table is scanned; chunk size has no
// effect on the result.
func (s *subsetter) streamChartEvents(
	ctx context.Context,
	stayIDs subset.KeySet,
) (*subset.Table, error) {
	itemIDs := make(subset.KeySet, len(s.cfg.Stream.VitalItemIDs))
	for _, id := range s.cfg.Stream.VitalItemIDs {
		itemIDs.Add(strconv.Itoa(id))
	}

	res := &subset.Table{Name: subset.TableChartEvents}
	var scanned int

	err := s.archive.StreamTable(
		subset.TableChartEvents,
		s.cfg.Stream.ChunkSize,
		func(columns []string, rows [][]string) (bool, error) {
			if res.Columns == nil {
				res.Columns = columns
			}
			stayIdx, ok := subset.ColumnIndex(columns, subset.ColICUStayID)
			if !ok {
				return false, subset.KeyColumnMissingError(
					subset.TableChartEvents, subset.ColICUStayID,
				)
			}
			itemIdx, ok := subset.ColumnIndex(columns, subset.ColItemID)
			if !ok {
				return false, subset.KeyColumnMissingError(
					subset.TableChartEvents, subset.ColItemID,
				)
			}

			for _, row := range rows {
				if stayIdx >= len(row) || itemIdx >= len(row) {
					continue
				}
				if stayIDs.Has(row[stayIdx]) && itemIDs.Has(row[itemIdx]) {
					res.Rows = append(res.Rows, row)
				}
			}

			scanned += len(rows)
			slog.Debug("Chart events chunk processed",
				"scanned", scanned,
				"matched", len(res.Rows),
			)

			if err := checkCancelled(ctx); err != nil {
				return false, err
			}
			return false, nil
		},
	)
	if err != nil {
		return nil, err
	}

	slog.Info("Chart events scan complete",
		"scanned", scanned,
		"matched", len(res.Rows),
	)
	gn.Message("<em>Kept %s vital-sign rows from %s chart events</em>",
		humanize.Comma(int64(len(res.Rows))),
		humanize.Comma(int64(scanned)),
	)

	return res, nil
}
