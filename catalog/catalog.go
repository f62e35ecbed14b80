// Package catalog loads the embedded pattern catalog that drives the menu,
// the tips screen, and the list subcommand.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

// Entry describes one pattern as shown in the menu and list output.
type Entry struct {
	Slug    string `yaml:"slug"`
	Title   string `yaml:"title"`
	Label   string `yaml:"label"`
	Summary string `yaml:"summary"`
}

// Tips holds the interview-tips screen content.
type Tips struct {
	Advice    []string `yaml:"advice"`
	FollowUps []string `yaml:"follow_ups"`
}

// Catalog represents the full catalog.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Catalog struct {
	Version  string  `yaml:"version"`
	Patterns []Entry `yaml:"patterns"`
	Tips     Tips    `yaml:"tips"`
}

// Load parses the embedded catalog with strict field checking so that typos
// in catalog.yaml fail loudly instead of decoding to zero values.
func Load() (*Catalog, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(rawCatalog))
	decoder.KnownFields(true)

	var c Catalog
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	if len(c.Patterns) == 0 {
		return nil, fmt.Errorf("embedded catalog has no patterns")
	}
	for i, e := range c.Patterns {
		if e.Slug == "" || e.Label == "" || e.Summary == "" {
			return nil, fmt.Errorf("catalog entry %d is incomplete (slug=%q)", i, e.Slug)
		}
	}
	return &c, nil
}

// Entry returns the catalog entry for a slug.
func (c *Catalog) Entry(slug string) (Entry, bool) {
	for _, e := range c.Patterns {
		if e.Slug == slug {
			return e, true
		}
	}
	return Entry{}, false
}
