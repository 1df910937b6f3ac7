// Package yaml loads emitter configuration from YAML files using
// gopkg.in/yaml.v3.
//
// A configuration file looks like:
//
//	lookup: Bukkit
//	indent: "  "
//	skipUnnamedMethods: true
//	types:
//	  Object: any
//	  boolean: boolean
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/javadts"
	"gopkg.in/yaml.v3"
)

// Config holds emitter settings. Unset fields leave the emitter's
// defaults in place.
type Config struct {
	LookupName         string            `yaml:"lookup"`
	Indent             string            `yaml:"indent"`
	SkipUnnamedMethods *bool             `yaml:"skipUnnamedMethods"`
	Types              map[string]string `yaml:"types"`
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a configuration document from r. Unknown keys are EINVALID.
// An empty document yields an empty Config.
func Decode(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, javadts.Errorf(javadts.EINVALID, "invalid configuration: %v", err)
	}

	for java, ts := range cfg.Types {
		if java == "" || ts == "" {
			return nil, javadts.Errorf(javadts.EINVALID, "type mapping %q: %q must name both types", java, ts)
		}
	}

	return &cfg, nil
}

// Apply copies the configured settings onto e. Type overrides are layered
// over e's current type map.
func (c *Config) Apply(e *javadts.Emitter) {
	if c.LookupName != "" {
		e.LookupName = c.LookupName
	}
	if c.Indent != "" {
		e.Indent = c.Indent
	}
	if c.SkipUnnamedMethods != nil {
		e.SkipUnnamedMethods = *c.SkipUnnamedMethods
	}
	if len(c.Types) > 0 {
		base := e.Types
		if base == nil {
			base = javadts.DefaultTypeMap()
		}
		e.Types = base.With(c.Types)
	}
}
