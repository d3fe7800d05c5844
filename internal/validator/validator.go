// Package validator checks a catalog file written by curriculum-gen.
package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/curriculum-gen/internal/generator"
	"gopkg.in/yaml.v3"
)

// Report lists what ValidateFile checked.
type Report struct {
	Version generator.FormatVersion
	Topics  int
	Checks  []string
	Notes   []string
}

// Print writes one line per passed check followed by the notes.
func (r *Report) Print(w io.Writer) {
	for _, c := range r.Checks {
		fmt.Fprintf(w, "✓ %s\n", c)
	}
	for _, n := range r.Notes {
		fmt.Fprintf(w, "  note: %s\n", n)
	}
}

// ValidateFile reads a JSON or YAML catalog and checks it.
func ValidateFile(filename string) (*Report, error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ValidateBytes(data)
}

// ValidateBytes checks an encoded catalog.
func ValidateBytes(data []byte) (*Report, error) {
	catalog, err := decode(data)
	if err != nil {
		return nil, err
	}

	report := &Report{Version: catalog.Version, Topics: len(catalog.Topics)}

	if err := catalog.Version.Compatible(); err != nil {
		return report, err
	}
	report.Checks = append(report.Checks, fmt.Sprintf("Catalog version %s is supported", catalog.Version))

	if err := generator.Validate(catalog); err != nil {
		return report, err
	}
	report.Checks = append(report.Checks, fmt.Sprintf("All %d topics are well-formed", len(catalog.Topics)))

	if err := generator.CheckUnique(catalog); err != nil {
		return report, err
	}
	report.Checks = append(report.Checks, "Topic ids are unique")

	report.Notes = missingParents(catalog)
	return report, nil
}

// decode accepts YAML and, failing that, JSON.
func decode(data []byte) (*generator.Catalog, error) {
	var catalog generator.Catalog
	if err := yaml.Unmarshal(data, &catalog); err == nil {
		return &catalog, nil
	}

	var fromJSON generator.Catalog
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		return nil, fmt.Errorf("failed to parse file as YAML or JSON: %w", err)
	}
	return &fromJSON, nil
}

// missingParents lists topics whose enclosing numbering has no topic.
func missingParents(c *generator.Catalog) []string {
	index := c.Index()
	var notes []string
	for _, t := range c.Topics {
		i := strings.LastIndex(t.Numbering, ".")
		if i <= 0 {
			continue
		}
		parent := t.Numbering[:i]
		if _, ok := index[parent]; !ok {
			notes = append(notes, fmt.Sprintf("topic %s (%s) has no parent topic %s", t.ID, t.Numbering, parent))
		}
	}
	return notes
}
