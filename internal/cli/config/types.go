// Package config provides configuration management for the vertab CLI.
//
// Values are layered with koanf: built-in defaults, then the vertab.yaml
// config file, then VERTAB_ environment variables, then explicitly set
// command line flags.
package config

import (
	"github.com/leapstack-labs/vertab/internal/report"
	"github.com/leapstack-labs/vertab/pkg/latex"
	"github.com/leapstack-labs/vertab/pkg/resolve"
)

// Config holds all CLI configuration options.
type Config struct {
	Output      string        `koanf:"output"`
	Caption     string        `koanf:"caption"`
	Label       string        `koanf:"label"`
	NoTableStar bool          `koanf:"no_table_star"`
	Top         int           `koanf:"top"`
	Verbose     bool          `koanf:"verbose"`
	LogFormat   string        `koanf:"log_format"`
	Columns     ColumnsConfig `koanf:"columns"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// ColumnsConfig lists extra header names to try per logical field. They are
// tried before the built-in names.
type ColumnsConfig struct {
	ClientName   []string `koanf:"client_name"`
	LibraryOld   []string `koanf:"library_old"`
	LibraryNew   []string `koanf:"library_new"`
	NumCallsites []string `koanf:"num_callsites"`
	Reachable    []string `koanf:"reachable"`
}

// Default configuration values.
const (
	DefaultOutput    = "table.tex"
	DefaultCaption   = latex.DefaultCaption
	DefaultLabel     = latex.DefaultLabel
	DefaultTop       = report.DefaultTop
	DefaultLogFormat = "text"
)

// Config file names searched in the working directory.
const (
	ConfigFileName    = "vertab.yaml"
	ConfigFileNameAlt = "vertab.yml"
)

// EnvPrefix prefixes every environment variable read by the loader.
const EnvPrefix = "VERTAB_"

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Output:    DefaultOutput,
		Caption:   DefaultCaption,
		Label:     DefaultLabel,
		Top:       DefaultTop,
		LogFormat: DefaultLogFormat,
	}
}

// Candidates returns the built-in candidates with the configured names
// tried first.
func (c *Config) Candidates() resolve.Candidates {
	return resolve.DefaultCandidates().Prepend(resolve.Candidates{
		resolve.ClientName:   c.Columns.ClientName,
		resolve.LibraryOld:   c.Columns.LibraryOld,
		resolve.LibraryNew:   c.Columns.LibraryNew,
		resolve.NumCallsites: c.Columns.NumCallsites,
		resolve.Reachable:    c.Columns.Reachable,
	})
}

// ReportOptions converts the configuration into pipeline options.
func (c *Config) ReportOptions() report.Options {
	return report.Options{
		Top:        c.Top,
		Candidates: c.Candidates(),
		Table: latex.Options{
			Caption: c.Caption,
			Label:   c.Label,
			Wide:    !c.NoTableStar,
		},
	}
}
