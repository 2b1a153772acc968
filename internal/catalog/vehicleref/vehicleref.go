package vehicleref

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Model is one vehicle model row of the reference catalog. YearEnd is nil for
// models still in production.
type Model struct {
	Name      string `json:"name"                 yaml:"name"`
	YearStart int    `json:"year_start"           yaml:"year_start"`
	YearEnd   *int   `json:"year_end,omitempty"   yaml:"year_end,omitempty"`
	BodyType  string `json:"body_type,omitempty"  yaml:"body_type,omitempty"`
	Country   string `json:"country,omitempty"    yaml:"country,omitempty"`
}

// InProduction reports whether year falls inside the model's production run.
func (m *Model) InProduction(year int) bool {
	if year < m.YearStart {
		return false
	}
	return m.YearEnd == nil || year <= *m.YearEnd
}

// Snapshot is an immutable, versioned vehicle make/model reference catalog.
// The validator normalizes submitted make and model names against it and
// derives body type and country from the matched row, never from the client.
type Snapshot struct {
	version string
	makes   map[string][]Model
	labels  map[string]string
}

// NewSnapshot builds a snapshot from makes keyed by display name.
func NewSnapshot(version string, makes map[string][]Model) *Snapshot {
	s := &Snapshot{
		version: version,
		makes:   make(map[string][]Model, len(makes)),
		labels:  make(map[string]string, len(makes)),
	}
	for name, models := range makes {
		key := normalize(name)
		s.makes[key] = models
		s.labels[key] = name
	}
	return s
}

// Default returns the built-in reference snapshot.
func Default() *Snapshot {
	return NewSnapshot(seedVersion, seedMakes())
}

// LoadFile reads a snapshot from a YAML overlay file.
func LoadFile(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vehicle catalog: %w", err)
	}
	var doc struct {
		Version string             `yaml:"version"`
		Makes   map[string][]Model `yaml:"makes"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse vehicle catalog: %w", err)
	}
	if doc.Version == "" || len(doc.Makes) == 0 {
		return nil, fmt.Errorf("vehicle catalog %s: version and makes are required", path)
	}
	return NewSnapshot(doc.Version, doc.Makes), nil
}

// Version identifies the catalog revision a validation ran against.
func (s *Snapshot) Version() string { return s.version }

// Makes returns the canonical make names, sorted.
func (s *Snapshot) Makes() []string {
	names := make([]string, 0, len(s.labels))
	for _, name := range s.labels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasMake reports whether the make exists, matching case-insensitively.
func (s *Snapshot) HasMake(makeName string) bool {
	_, ok := s.makes[normalize(makeName)]
	return ok
}

// CanonicalMake returns the catalog spelling of a make.
func (s *Snapshot) CanonicalMake(makeName string) (string, bool) {
	label, ok := s.labels[normalize(makeName)]
	return label, ok
}

// Models returns the models of a make in catalog order.
func (s *Snapshot) Models(makeName string) []Model {
	return s.makes[normalize(makeName)]
}

// FindModel resolves a make/model pair case-insensitively.
func (s *Snapshot) FindModel(makeName, modelName string) (*Model, bool) {
	want := normalize(modelName)
	for i := range s.makes[normalize(makeName)] {
		m := &s.makes[normalize(makeName)][i]
		if normalize(m.Name) == want {
			return m, true
		}
	}
	return nil, false
}

func normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
