package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetCreateCmd_Exists verifies getCreateCmd returns
// a valid command.
func TestGetCreateCmd_Exists(t *testing.T) {
	cmd := getCreateCmd()
	require.NotNil(t, cmd, "Create command should exist")
	assert.Equal(t, "create", cmd.Use,
		"Command name should be create")
}

// TestGetCreateCmd_HasRunE verifies run function is set.
func TestGetCreateCmd_HasRunE(t *testing.T) {
	cmd := getCreateCmd()

	assert.NotNil(t, cmd.RunE,
		"RunE should be set")
}

// TestGetCreateCmd_ArchiveFlag verifies --archive flag
// exists and is required.
func TestGetCreateCmd_ArchiveFlag(t *testing.T) {
	cmd := getCreateCmd()

	flag := cmd.Flags().Lookup("archive")
	require.NotNil(t, flag,
		"--archive flag should exist")

	assert.Equal(t, "a", flag.Shorthand,
		"Short form should be -a")
	assert.Contains(t, flag.Usage, "zip",
		"Usage should mention the zip archive")
}

// TestGetCreateCmd_OutputFlag verifies --output flag.
func TestGetCreateCmd_OutputFlag(t *testing.T) {
	cmd := getCreateCmd()

	flag := cmd.Flags().Lookup("output")
	require.NotNil(t, flag,
		"--output flag should exist")

	assert.Equal(t, "o", flag.Shorthand,
		"Short form should be -o")
}

// TestGetCreateCmd_SamplingFlags verifies the sampling
// flags exist with proper defaults.
func TestGetCreateCmd_SamplingFlags(t *testing.T) {
	cmd := getCreateCmd()

	size := cmd.Flags().Lookup("sample-size")
	require.NotNil(t, size,
		"--sample-size flag should exist")
	assert.Equal(t, "n", size.Shorthand,
		"Short form should be -n")

	seed := cmd.Flags().Lookup("seed")
	require.NotNil(t, seed,
		"--seed flag should exist")
	assert.Contains(t, seed.Usage, "reproducible",
		"Usage should mention reproducibility")
}

// TestGetCreateCmd_StreamFlags verifies the streaming
// flags exist.
func TestGetCreateCmd_StreamFlags(t *testing.T) {
	cmd := getCreateCmd()

	chunk := cmd.Flags().Lookup("chunk-size")
	require.NotNil(t, chunk,
		"--chunk-size flag should exist")

	labs := cmd.Flags().Lookup("labs-per-patient")
	require.NotNil(t, labs,
		"--labs-per-patient flag should exist")
	assert.Contains(t, labs.Usage, "per patient",
		"Usage should mention the per-patient cap")
}

// TestGetCreateCmd_ForceFlag verifies --force flag exists.
func TestGetCreateCmd_ForceFlag(t *testing.T) {
	cmd := getCreateCmd()

	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag,
		"--force flag should exist")

	assert.Equal(t, "f", forceFlag.Shorthand,
		"Short form should be -f")
	assert.Equal(t, "false", forceFlag.DefValue,
		"Default should be false")
	assert.Contains(t, forceFlag.Usage, "prompt",
		"Usage should mention the prompt")
}

// TestGetCreateCmd_HelpText verifies help text content.
func TestGetCreateCmd_HelpText(t *testing.T) {
	cmd := getCreateCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "ADMISSIONS",
		"Help should mention the required tables")
	assert.Contains(t, helpText, "seed",
		"Help should mention the seed")
}

// TestGetInspectCmd_Exists verifies getInspectCmd returns
// a valid command.
func TestGetInspectCmd_Exists(t *testing.T) {
	cmd := getInspectCmd()
	require.NotNil(t, cmd, "Inspect command should exist")
	assert.Equal(t, "inspect", cmd.Use,
		"Command name should be inspect")

	flag := cmd.Flags().Lookup("archive")
	require.NotNil(t, flag,
		"--archive flag should exist")
	assert.Equal(t, "a", flag.Shorthand,
		"Short form should be -a")
}
