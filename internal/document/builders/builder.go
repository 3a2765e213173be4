// Package builders holds the imperative path for templates whose fields do
// not fit a declarative descriptor.
package builders

import (
	"fmt"
	"sort"

	"document-workers/internal/document/tabs"
	"document-workers/internal/models"
)

// Entry is one named value produced by a builder.
type Entry struct {
	Name     string
	Value    tabs.Value
	Currency bool
}

// Record is an ordered field set. Output order is the order of Add calls.
type Record []Entry

func (r *Record) Add(name string, v tabs.Value) {
	*r = append(*r, Entry{Name: name, Value: v})
}

// AddCurrency adds a value rendered with two decimals.
func (r *Record) AddCurrency(name string, v tabs.Value) {
	*r = append(*r, Entry{Name: name, Value: v, Currency: true})
}

// FieldMap renders the record. A repeated name keeps its first position and
// its last value. Absent values and numbers that cannot be rendered become ""
// and are reported as fallbacks.
func (r Record) FieldMap() (*tabs.FieldMap, []tabs.Fallback) {
	m := tabs.NewFieldMap(len(r))
	var fallbacks []tabs.Fallback
	for _, e := range r {
		if e.Value.IsAbsent() {
			fallbacks = append(fallbacks, tabs.Fallback{Field: e.Name, Reason: tabs.ReasonAbsent})
			m.Set(e.Name, "")
			continue
		}
		s, err := e.Value.Render(e.Currency)
		if err != nil {
			fallbacks = append(fallbacks, tabs.Fallback{Field: e.Name, Reason: tabs.ReasonFault, Detail: err.Error()})
		}
		m.Set(e.Name, s)
	}
	return m, fallbacks
}

// BuildFunc constructs a template's fields directly from the generic object.
// Missing sections or signer roles must produce tabs.Absent, not a panic.
type BuildFunc func(g *models.GenericObject) Record

type Builder struct {
	Name    string
	TabKind tabs.TabKind
	Build   BuildFunc
}

// Registry maps external template ids to builders. Builders are not
// environment specific: each environment's template id is registered to the
// same builder.
type Registry struct {
	builders map[string]*Builder
}

func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]*Builder)}
}

func (r *Registry) Register(templateID string, b *Builder) error {
	if templateID == "" {
		return fmt.Errorf("%w: empty template id", tabs.ErrConfiguration)
	}
	if b == nil || b.Build == nil || b.Name == "" {
		return fmt.Errorf("%w: builder for %s is incomplete", tabs.ErrConfiguration, templateID)
	}
	if existing, ok := r.builders[templateID]; ok {
		if existing == b {
			return nil
		}
		return fmt.Errorf("%w: template id %s already built by %s, cannot register %s",
			tabs.ErrConfiguration, templateID, existing.Name, b.Name)
	}
	r.builders[templateID] = b
	return nil
}

func (r *Registry) Lookup(templateID string) (*Builder, bool) {
	b, ok := r.builders[templateID]
	return b, ok
}

func (r *Registry) TemplateIDs() []string {
	ids := make([]string, 0, len(r.builders))
	for id := range r.builders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
