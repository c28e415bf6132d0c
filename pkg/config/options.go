package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptSampleSize sets the number of admissions to draw from the archive.
func OptSampleSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Sample Size", i) {
			c.Sample.Size = i
		}
	}
}

// OptSampleSeed sets the seed of the random source. Any value is valid,
// including zero and negative numbers.
func OptSampleSeed(i int64) Option {
	return func(c *Config) {
		c.Sample.Seed = i
	}
}

// OptStreamChunkSize sets the number of rows read per chunk when
// scanning large event tables.
func OptStreamChunkSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Chunk Size", i) {
			c.Stream.ChunkSize = i
		}
	}
}

// OptStreamLabEventsPerPatient sets the per-patient cap on kept
// lab-event rows.
func OptStreamLabEventsPerPatient(i int) Option {
	return func(c *Config) {
		if isValidInt("Lab Events Per Patient", i) {
			c.Stream.LabEventsPerPatient = i
		}
	}
}

// OptStreamVitalItemIDs sets the ITEMID allow-list used to filter
// CHARTEVENTS. An empty list is rejected.
func OptStreamVitalItemIDs(ii []int) Option {
	return func(c *Config) {
		if isValidIntSlice("Vital Item IDs", ii) {
			c.Stream.VitalItemIDs = ii
		}
	}
}

// OptCreateArchivePath sets the path of the source zip archive.
// Runtime-only field - not in ToOptions().
func OptCreateArchivePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Archive Path", s) {
			c.Create.ArchivePath = s
		}
	}
}

// OptCreateOutputDir sets the directory receiving the subset files.
// Runtime-only field - not in ToOptions().
func OptCreateOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Directory", s) {
			c.Create.OutputDir = s
		}
	}
}

// OptCreateForce sets whether a non-empty output directory is reused
// without a confirmation prompt.
// Runtime-only field - not in ToOptions().
func OptCreateForce(b bool) Option {
	return func(c *Config) {
		c.Create.Force = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
