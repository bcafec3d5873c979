package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"packlunch/internal/output"
)

const (
	DefaultSubjectName  = "Child"
	DefaultLocation     = "School/Preschool"
	DefaultTimezone     = "America/New_York"
	DefaultUIDNamespace = "school-lunch"
	DefaultProductID    = "-//School Lunch Tracker//EN"
)

// Config holds the display defaults and document identifiers used when a run
// does not override them on the command line.
type Config struct {
	// SubjectName is whose lunch is being packed (used in SUMMARY and calendar name).
	SubjectName string `yaml:"subject_name" json:"subject_name"`

	// Location is the school or classroom named in each DESCRIPTION.
	Location string `yaml:"location" json:"location"`

	// Timezone is passed through as X-WR-TIMEZONE. It is not validated.
	Timezone string `yaml:"timezone" json:"timezone"`

	// UIDNamespace is the part of every UID after the "@".
	UIDNamespace string `yaml:"uid_namespace" json:"uid_namespace"`

	// ProductID is written as the calendar PRODID.
	ProductID string `yaml:"product_id" json:"product_id"`

	// OutputDir, if set, is prepended to derived output file names.
	OutputDir string `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		SubjectName:  DefaultSubjectName,
		Location:     DefaultLocation,
		Timezone:     DefaultTimezone,
		UIDNamespace: DefaultUIDNamespace,
		ProductID:    DefaultProductID,
	}
}

// Normalize fills in missing/zero values with defaults so that partially
// filled config files still behave correctly.
func (c *Config) Normalize() {
	if c.SubjectName == "" {
		c.SubjectName = DefaultSubjectName
	}
	if c.Location == "" {
		c.Location = DefaultLocation
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.UIDNamespace == "" {
		c.UIDNamespace = DefaultUIDNamespace
	}
	if c.ProductID == "" {
		c.ProductID = DefaultProductID
	}
}

// Load loads configuration from the given YAML path.
//
// An empty path yields DefaultConfig. A path that does not exist is an
// error; "init-config" writes a starting file.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg to path as YAML with 0600 permissions, atomically.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return output.WriteFile(path, data, 0o600)
}

// Save is a convenience method on Config that delegates to the package-level
// Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
