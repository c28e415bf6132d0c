package iosubset

import (
	"os"
	"path/filepath"
	"text/template"

	"github.com/clindata/clinsub/pkg/subset"
)

// readmeTmpl mirrors the manifest the published educational subsets
// ship with: dataset info, per-table shapes, and unique-entity counts.
const readmeTmpl = `# MIMIC-III Subset

This directory contains a subset of the MIMIC-III database created for
educational purposes.

## Dataset Information

- **Subset ID**: {{.SubsetID}}
- **Subset Creation Date**: {{.Date}}
- **Sample Size**: {{.SampleSize}} randomly selected hospital admissions
- **Random Seed**: {{.Seed}}

## Contents

{{range $i, $t := .Filtered}}{{inc $i}}. **{{$t.Name}}.csv**: {{$t.Rows}} rows, {{$t.Cols}} columns
{{end}}
## Dictionary Tables

{{range $i, $t := .Dicts}}{{inc $i}}. **{{$t.Name}}.csv**: {{$t.Rows}} rows, {{$t.Cols}} columns
{{end}}
## Statistics

- Number of unique patients: {{.UniquePatients}}
- Number of unique hospital admissions: {{.UniqueAdmissions}}
- Number of unique ICU stays: {{.UniqueStays}}

## Notes

- This subset maintains the same structure and relationships as the
  original MIMIC-III database
- CHARTEVENTS has been filtered to include only vital signs
- LABEVENTS includes up to {{.LabCap}} lab tests per patient
- Rerunning with the same archive, sample size and seed reproduces this
  subset byte for byte
`

// readmeData is the view the template renders.
type readmeData struct {
	SubsetID         string
	Date             string
	SampleSize       int
	Seed             int64
	Filtered         []subset.TableStats
	Dicts            []subset.TableStats
	UniquePatients   int
	UniqueAdmissions int
	UniqueStays      int
	LabCap           int
}

// writeReadme renders the human-readable manifest into dir.
func writeReadme(dir string, stats *subset.Stats) error {
	path := filepath.Join(dir, "README.md")

	split := len(stats.Tables) - stats.Dictionary
	data := readmeData{
		SubsetID:         stats.SubsetID,
		Date:             stats.CreatedAt.Format("2006-01-02"),
		SampleSize:       stats.SampleSize,
		Seed:             stats.Seed,
		Filtered:         stats.Tables[:split],
		Dicts:            stats.Tables[split:],
		UniquePatients:   stats.UniquePatients,
		UniqueAdmissions: stats.UniqueAdmissions,
		UniqueStays:      stats.UniqueStays,
		LabCap:           stats.LabEventCap,
	}

	tmpl, err := template.New("readme").
		Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
		Parse(readmeTmpl)
	if err != nil {
		return WriteReportError(path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return WriteReportError(path, err)
	}
	defer f.Close()

	if err = tmpl.Execute(f, data); err != nil {
		return WriteReportError(path, err)
	}
	return f.Close()
}
