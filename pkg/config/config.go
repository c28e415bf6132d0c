// Package config provides configuration management for clinsub.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Sample: size, seed
//   - Stream: chunk_size, lab_events_per_patient, vital_item_ids
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Create.ArchivePath, Create.OutputDir, Create.Force (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use CLINSUB_ prefix with underscores for nesting:
//
//	CLINSUB_SAMPLE_SIZE=3000
//	CLINSUB_SAMPLE_SEED=42
//	CLINSUB_STREAM_CHUNK_SIZE=100000
//	CLINSUB_LOG_LEVEL=info
package config

// Config represents the complete clinsub configuration.
type Config struct {
	// Sample controls how many admissions are drawn and with what seed.
	Sample SampleConfig `mapstructure:"sample" yaml:"sample"`

	// Stream controls the chunked scans of the large event tables.
	Stream StreamConfig `mapstructure:"stream" yaml:"stream"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Create contains runtime settings of the create command.
	// They come from CLI flags only and never persist to config.yaml.
	Create CreateConfig `mapstructure:"-" yaml:"-"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// SampleConfig controls the root-entity sample.
type SampleConfig struct {
	// Size is the number of hospital admissions to draw.
	Size int `mapstructure:"size" yaml:"size"`

	// Seed feeds the random source. A fixed seed makes runs reproducible:
	// the same archive, size and seed always produce the same subset.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// StreamConfig controls the single-pass chunked scans of tables that are
// too large to load whole (CHARTEVENTS, LABEVENTS).
type StreamConfig struct {
	// ChunkSize is the number of rows read per chunk. It is a
	// memory/throughput trade-off with no effect on results.
	ChunkSize int `mapstructure:"chunk_size" yaml:"chunk_size"`

	// LabEventsPerPatient caps how many lab-event rows are kept per
	// patient. Rows are kept in source order until the cap fills.
	LabEventsPerPatient int `mapstructure:"lab_events_per_patient" yaml:"lab_events_per_patient"`

	// VitalItemIDs is the allow-list of ITEMID codes kept from
	// CHARTEVENTS (heart rate, blood pressure, temperature,
	// respiratory rate).
	VitalItemIDs []int `mapstructure:"vital_item_ids" yaml:"vital_item_ids"`
}

// CreateConfig contains runtime settings of the create command.
type CreateConfig struct {
	// ArchivePath points at the source zip archive.
	ArchivePath string

	// OutputDir is the directory receiving the subset CSV files.
	OutputDir string

	// Force skips the confirmation prompt for a non-empty output directory.
	Force bool
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Sample: SampleConfig{
			Size: 3000,
			Seed: 42,
		},
		Stream: StreamConfig{
			ChunkSize:           100_000,
			LabEventsPerPatient: 20,
			VitalItemIDs:        DefaultVitalItemIDs(),
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
