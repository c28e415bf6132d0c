package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Create.*).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var i int
	if i = c.Sample.Size; i > 0 {
		res = append(res, OptSampleSize(i))
	}
	res = append(res, OptSampleSeed(c.Sample.Seed))

	if i = c.Stream.ChunkSize; i > 0 {
		res = append(res, OptStreamChunkSize(i))
	}
	if i = c.Stream.LabEventsPerPatient; i > 0 {
		res = append(res, OptStreamLabEventsPerPatient(i))
	}
	if len(c.Stream.VitalItemIDs) > 0 {
		res = append(res, OptStreamVitalItemIDs(c.Stream.VitalItemIDs))
	}

	var s string
	if s = c.Log.Format; s != "" {
		res = append(res, OptLogFormat(s))
	}
	if s = c.Log.Level; s != "" {
		res = append(res, OptLogLevel(s))
	}
	if s = c.Log.Destination; s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidIntSlice(name string, ii []int) bool {
	res := len(ii) > 0
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
