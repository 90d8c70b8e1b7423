// Package registry holds the static calendar configuration: which
// calendars exist, who owns them, what category they hint at, and their
// scheduling priority. Loaded once at process start and never mutated.
package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"clashcal/internal/calendar"
)

// CalendarConfig describes one known source calendar.
type CalendarConfig struct {
	ID       string            `yaml:"id" json:"id"`
	Owner    string            `yaml:"owner" json:"owner"`
	Category calendar.Category `yaml:"category" json:"category"`
	// Priority is informational for now; reserved for future
	// tie-breaking, not consumed by severity logic.
	Priority int `yaml:"priority" json:"priority"`
}

// Registry is the immutable set of configured calendars plus the
// categorizer hints that cannot be derived from calendar ids alone.
type Registry struct {
	byID          map[string]CalendarConfig
	familyMembers []string
	workDomains   []string
}

// registryFile is the YAML shape of a registry file.
type registryFile struct {
	Calendars     []CalendarConfig `yaml:"calendars"`
	FamilyMembers []string         `yaml:"family_members"`
	WorkDomains   []string         `yaml:"work_domains"`
}

// New builds a registry directly from configuration values, without a
// file. Categories left empty default to personal.
func New(calendars []CalendarConfig, familyMembers, workDomains []string) *Registry {
	return build(registryFile{
		Calendars:     calendars,
		FamilyMembers: familyMembers,
		WorkDomains:   workDomains,
	})
}

// Default returns the compiled-in registry used when no file is
// configured.
func Default() *Registry {
	return build(registryFile{
		Calendars: []CalendarConfig{
			{ID: "primary", Owner: "shared", Category: calendar.CategoryPersonal, Priority: 3},
			{ID: "work", Owner: "shared", Category: calendar.CategoryWork, Priority: 1},
			{ID: "family", Owner: "shared", Category: calendar.CategoryFamily, Priority: 2},
			{ID: "school", Owner: "shared", Category: calendar.CategorySchool, Priority: 2},
			{ID: "appointments", Owner: "shared", Category: calendar.CategoryHealth, Priority: 1},
		},
	})
}

// Load reads a registry YAML file. A missing path falls back to the
// compiled-in defaults so first runs work without configuration.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse registry file: %w", err)
	}

	for _, cal := range file.Calendars {
		if cal.ID == "" {
			return nil, fmt.Errorf("registry entry missing id")
		}
		if cal.Category != "" && !cal.Category.Valid() {
			return nil, fmt.Errorf("registry entry %q: unknown category %q", cal.ID, cal.Category)
		}
	}

	return build(file), nil
}

func build(file registryFile) *Registry {
	byID := make(map[string]CalendarConfig, len(file.Calendars))
	for _, cal := range file.Calendars {
		if cal.Category == "" {
			cal.Category = calendar.CategoryPersonal
		}
		byID[cal.ID] = cal
	}
	return &Registry{
		byID:          byID,
		familyMembers: file.FamilyMembers,
		workDomains:   file.WorkDomains,
	}
}

// Lookup returns the configuration for an exact calendar id.
func (r *Registry) Lookup(id string) (CalendarConfig, bool) {
	cfg, ok := r.byID[id]
	return cfg, ok
}

// FamilyMembers returns configured family-member first names, used as
// extra family keywords by the categorizer.
func (r *Registry) FamilyMembers() []string {
	return r.familyMembers
}

// WorkDomains returns configured employer-domain fragments, used as
// extra work signals when matching calendar ids.
func (r *Registry) WorkDomains() []string {
	return r.workDomains
}

// Calendars returns all configured entries.
func (r *Registry) Calendars() []CalendarConfig {
	out := make([]CalendarConfig, 0, len(r.byID))
	for _, cfg := range r.byID {
		out = append(out, cfg)
	}
	return out
}
