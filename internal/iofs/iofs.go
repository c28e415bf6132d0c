package iofs

import (
	"os"

	"github.com/clindata/clinsub/pkg/config"
	"github.com/gnames/gnsys"
	"gopkg.in/yaml.v3"
)

const configHeader = `# clinsub configuration file.
# This file was auto-generated on first run. Edit as needed.
#
# Configuration precedence (highest to lowest):
#   1. CLI flags (--sample-size, --seed, etc.)
#   2. Environment variables (CLINSUB_*)
#   3. This config file
#   4. Built-in defaults

`

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := gnsys.MakeDir(v); err != nil {
			return CreateDirError(v, err)
		}
	}
	return nil
}

// EnsureConfigFile writes the default config.yaml on first run. An
// existing file is never overwritten.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	body, err := yaml.Marshal(config.New())
	if err != nil {
		return CopyFileError(configPath, err)
	}

	content := append([]byte(configHeader), body...)
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}
