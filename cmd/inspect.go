/*
Copyright © 2025 clindata

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/clindata/clinsub/internal/ioarchive"
	"github.com/clindata/clinsub/pkg/subset"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getInspectCmd returns the inspect command.
func getInspectCmd() *cobra.Command {
	var archivePath string

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Validate an archive and list its tables",
		Long: `Validate a MIMIC-III archive and list the tables it contains.

The archive must contain ADMISSIONS, PATIENTS and ICUSTAYS; a missing
required table is reported before any processing would start.

Examples:
  clinsub inspect -a mimic-iii-clinical-database-1.4.zip`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runInspect(archivePath)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	inspectCmd.Flags().StringVarP(
		&archivePath, "archive", "a", "",
		"path to the MIMIC-III zip archive",
	)
	inspectCmd.MarkFlagRequired("archive")

	return inspectCmd
}

func runInspect(archivePath string) error {
	archive, err := ioarchive.New(archivePath)
	if err != nil {
		return err
	}
	defer archive.Close()

	required := subset.NewKeySet(subset.RequiredTables()...)

	gn.Info("Archive <em>%s</em> is valid", archivePath)
	fmt.Printf("Root directory: %s\n\n", archive.RootDir())

	for _, name := range archive.TableNames() {
		mark := " "
		if required.Has(name) {
			mark = "*"
		}
		fmt.Printf("%s %-24s %10s\n",
			mark, name, humanize.Bytes(archive.EntrySize(name)))
	}
	fmt.Println("\n* required table")

	return nil
}
