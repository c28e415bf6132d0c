package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCmd_Exists verifies the root command is
// properly set up.
func TestRootCmd_Exists(t *testing.T) {
	require.NotNil(t, rootCmd, "Root command should exist")
	assert.Equal(t, "clinsub", rootCmd.Use,
		"Command name should be clinsub")
}

// TestRootCmd_ShortDescription verifies short
// description.
func TestRootCmd_ShortDescription(t *testing.T) {
	assert.NotEmpty(t, rootCmd.Short,
		"Short description should not be empty")
	assert.Contains(t, rootCmd.Short, "MIMIC-III",
		"Short description should mention MIMIC-III")
	assert.Contains(t, rootCmd.Short, "subsets",
		"Short description should mention subsets")
}

// TestRootCmd_LongDescription verifies long
// description.
func TestRootCmd_LongDescription(t *testing.T) {
	assert.NotEmpty(t, rootCmd.Long,
		"Long description should not be empty")
	assert.Contains(t, rootCmd.Long, "CHARTEVENTS",
		"Long description should mention the event tables")
	assert.Contains(t, rootCmd.Long, "reproducible",
		"Long description should mention reproducibility")
}

// TestRootCmd_HasPreRun verifies bootstrap function
// is set.
func TestRootCmd_HasPreRun(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentPreRunE,
		"PersistentPreRunE should be set for bootstrap")
}

// TestRootCmd_HasSubcommands verifies create and
// inspect are registered.
func TestRootCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "create")
	assert.Contains(t, names, "inspect")
}

// TestRootCmd_VersionFormat verifies version output
// format. Cobra resolves the version flag before the
// bootstrap hook runs, so no config or log files are
// touched here.
func TestRootCmd_VersionFormat(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--version"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "version:",
		"Version output should contain version")
	assert.Contains(t, output, "build:",
		"Version output should contain build")
}
