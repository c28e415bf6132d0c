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
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/clindata/clinsub/internal/ioarchive"
	"github.com/clindata/clinsub/internal/iosubset"
	"github.com/clindata/clinsub/pkg/config"
	"github.com/clindata/clinsub/pkg/errcode"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	var (
		archivePath    string
		outputDir      string
		sampleSize     int
		seed           int64
		chunkSize      int
		labsPerPatient int
		force          bool
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subset from a MIMIC-III archive",
		Long: `Create a referentially consistent subset of a MIMIC-III archive.

This command:
  1. Validates the archive (ADMISSIONS, PATIENTS, ICUSTAYS must exist)
  2. Samples hospital admissions with a fixed seed
  3. Cascades the selection through all dependent tables
  4. Scans CHARTEVENTS and LABEVENTS once each, in chunks
  5. Writes CSV files and a README manifest atomically

Examples:
  # Default sample of 3000 admissions
  clinsub create -a mimic-iii-clinical-database-1.4.zip -o ./subset

  # Smaller sample with a custom seed
  clinsub create -a mimic.zip -o ./subset -n 500 --seed 7

  # Reuse a non-empty output directory without a prompt
  clinsub create -a mimic.zip -o ./subset --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCreate(
				cmd, archivePath, outputDir,
				sampleSize, seed, chunkSize, labsPerPatient, force,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	createCmd.Flags().StringVarP(
		&archivePath, "archive", "a", "",
		"path to the MIMIC-III zip archive",
	)
	createCmd.Flags().StringVarP(
		&outputDir, "output", "o", "",
		"directory receiving the subset files",
	)
	createCmd.Flags().IntVarP(
		&sampleSize, "sample-size", "n", 0,
		"number of admissions to include (default from config)",
	)
	createCmd.Flags().Int64Var(
		&seed, "seed", 0,
		"random seed for reproducible sampling",
	)
	createCmd.Flags().IntVar(
		&chunkSize, "chunk-size", 0,
		"rows per chunk when scanning event tables",
	)
	createCmd.Flags().IntVar(
		&labsPerPatient, "labs-per-patient", 0,
		"cap on lab-event rows kept per patient",
	)
	createCmd.Flags().BoolVarP(
		&force, "force", "f", false,
		"write into a non-empty output directory without a prompt",
	)
	createCmd.MarkFlagRequired("archive")
	createCmd.MarkFlagRequired("output")

	return createCmd
}

func runCreate(
	cmd *cobra.Command,
	archivePath, outputDir string,
	sampleSize int,
	seed int64,
	chunkSize, labsPerPatient int,
	force bool,
) error {
	ctx := context.Background()

	// Build options from explicitly set flags
	createOpts := []config.Option{
		config.OptCreateArchivePath(archivePath),
		config.OptCreateOutputDir(outputDir),
		config.OptCreateForce(force),
	}

	if cmd.Flags().Changed("sample-size") {
		createOpts = append(createOpts, config.OptSampleSize(sampleSize))
	}
	if cmd.Flags().Changed("seed") {
		createOpts = append(createOpts, config.OptSampleSeed(seed))
	}
	if cmd.Flags().Changed("chunk-size") {
		createOpts = append(createOpts, config.OptStreamChunkSize(chunkSize))
	}
	if cmd.Flags().Changed("labs-per-patient") {
		createOpts = append(
			createOpts,
			config.OptStreamLabEventsPerPatient(labsPerPatient),
		)
	}

	cfg.Update(createOpts)

	if err := confirmOutputDir(cfg.Create.OutputDir, cfg.Create.Force); err != nil {
		return err
	}

	archive, err := ioarchive.New(cfg.Create.ArchivePath)
	if err != nil {
		return err
	}
	defer archive.Close()

	gn.Info("Archive validated: <em>%s</em> (root directory <em>%s</em>)",
		cfg.Create.ArchivePath, archive.RootDir())

	sub := iosubset.New(cfg, archive)

	gn.Info("Starting subset creation...")
	stats, err := sub.Create(ctx)
	if err != nil {
		return err
	}

	gn.Info(`Subset <em>%s</em> is ready.
   Admissions: %s, patients: %s, ICU stays: %s
   Output directory: <em>%s</em>
`,
		stats.SubsetID,
		humanize.Comma(int64(stats.UniqueAdmissions)),
		humanize.Comma(int64(stats.UniquePatients)),
		humanize.Comma(int64(stats.UniqueStays)),
		cfg.Create.OutputDir,
	)

	return nil
}

// confirmOutputDir prompts before reusing a non-empty output directory.
// The prompt is skipped with --force. A missing directory is fine; it
// is created during the atomic commit.
func confirmOutputDir(dir string, force bool) error {
	info, err := os.Stat(dir)
	if err != nil {
		return nil
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 || force {
		return nil
	}

	fmt.Printf("\nWarning: %s is not empty.\n", dir)
	fmt.Print("Existing files with the same names will be replaced. Continue? (yes/no): ")

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read user input: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	if response != "yes" && response != "y" {
		return &gn.Error{
			Code: errcode.OutputNotEmptyError,
			Msg: `<err>Output directory is not empty.</err>
   Use <em>--force</em> to reuse it, or point <em>--output</em> at a fresh directory.`,
			Err: fmt.Errorf("output directory %s is not empty", dir),
		}
	}
	return nil
}
