package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "clinsub"
)

// DefaultVitalItemIDs returns the ITEMID codes of clinically relevant
// vital-sign measurements. Both CareVue and MetaVision item codes are
// included for each vital.
func DefaultVitalItemIDs() []int {
	return []int{
		211, 220045, // Heart rate
		51, 442, 455, 6701, 220179, 220050, // Systolic BP
		8368, 8440, 8441, 8555, 220180, 220051, // Diastolic BP
		223761, 678, 679, 223762, // Temperature
		615, 618, 220210, 224690, // Respiratory rate
	}
}

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/clinsub by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/clinsub/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/clinsub/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
