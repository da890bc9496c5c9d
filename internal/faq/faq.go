// Package faq holds FAQ content and the accordion open/close state rule.
package faq

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Entry is one question/answer pair. Entries are immutable once supplied to a
// page; the rendering layer never edits them.
type Entry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// None means no entry is expanded.
const None = -1

// Toggle applies the accordion rule: activating the open entry collapses it,
// activating any other entry opens that one and closes the rest.
func Toggle(open, activated int) int {
	if open == activated {
		return None
	}
	return activated
}

// Clamp normalizes an open index against a list of n entries. Anything outside
// [0, n) collapses to None, so query-supplied state can never go out of range.
func Clamp(open, n int) int {
	if open < 0 || open >= n {
		return None
	}
	return open
}

// Store resolves FAQ entry sets by key: a calculator slug or "site" for the
// home page. Built-in defaults can be overridden per key by YAML files.
type Store struct {
	sets map[string][]Entry
}

// SiteKey selects the home-page FAQ set.
const SiteKey = "site"

// NewStore returns a store seeded with the compiled-in entry sets.
func NewStore() *Store {
	s := &Store{sets: make(map[string][]Entry, len(defaultSets))}
	for k, v := range defaultSets {
		s.sets[k] = v
	}
	return s
}

// LoadDir overlays entry sets from <key>.yaml files under dir. A missing
// directory is logged and skipped; the compiled-in defaults keep serving.
func (s *Store) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.WithField("dir", dir).Info("faq: no override directory, using built-in sets")
			return nil
		}
		return fmt.Errorf("faq: read dir %s: %w", dir, err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		key := strings.TrimSuffix(name, ".yaml")
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("faq: read %s: %w", name, err)
		}
		var doc struct {
			Entries []Entry `yaml:"entries"`
		}
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("faq: parse %s: %w", name, err)
		}
		if len(doc.Entries) == 0 {
			log.WithField("file", name).Warn("faq: override file has no entries, ignoring")
			continue
		}
		s.sets[key] = doc.Entries
	}
	return nil
}

// For returns the entry set for key, falling back to the site-wide set when
// no dedicated set exists. The returned slice must not be mutated.
func (s *Store) For(key string) []Entry {
	if set, ok := s.sets[key]; ok {
		return set
	}
	return s.sets[SiteKey]
}

var defaultSets = map[string][]Entry{
	SiteKey: {
		{
			Question: "Are the calculators free to use?",
			Answer:   "Yes. Every calculator on FloorCalc Hub is free, with no sign-up required.",
		},
		{
			Question: "How accurate are the estimates?",
			Answer:   "Estimates follow standard industry waste allowances, but always confirm final quantities with your installer before ordering.",
		},
		{
			Question: "Do the calculators work in metric units?",
			Answer:   "Enter dimensions in feet or meters; results show square footage alongside square meters.",
		},
	},
	"flooring-cost": {
		{
			Question: "What does the cost estimate include?",
			Answer:   "Material cost plus your waste allowance. Installation labor varies by region, so add your installer's quote separately.",
		},
		{
			Question: "How much waste should I allow?",
			Answer:   "5-10% for straight layouts, 15% for diagonal patterns or rooms with many corners.",
		},
	},
	"tile": {
		{
			Question: "How many extra tiles should I buy?",
			Answer:   "Add 10% for straight lay and 15% for diagonal or herringbone patterns, plus a few spares for future repairs.",
		},
		{
			Question: "Does the calculator account for grout lines?",
			Answer:   "Yes. Tile counts use the nominal tile size, which already includes the standard grout joint.",
		},
	},
	"carpet": {
		{
			Question: "Why is carpet sold in 12-foot widths?",
			Answer:   "Most broadloom ships on 12-foot rolls, so rooms wider than 12 feet need a seam. The calculator plans cuts around that.",
		},
	},
	"hardwood": {
		{
			Question: "What is a board foot?",
			Answer:   "One square foot of coverage at nominal thickness. Hardwood boxes list coverage in square feet, which the calculator uses directly.",
		},
		{
			Question: "Should hardwood acclimate before installation?",
			Answer:   "Yes, leave boxes in the room for at least 72 hours so the wood adjusts to local humidity.",
		},
	},
}
