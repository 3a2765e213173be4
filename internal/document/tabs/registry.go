package tabs

import (
	"fmt"
	"sort"
)

// TemplateKey identifies a template as deployed in one environment.
type TemplateKey struct {
	Environment string `json:"environment"`
	TemplateID  string `json:"templateId"`
}

func (k TemplateKey) String() string {
	return k.Environment + "/" + k.TemplateID
}

// Registry maps template keys to descriptors. It is populated during startup
// and only read afterwards, so lookups take no lock. Register must not be
// called once resolutions are running.
type Registry struct {
	descriptors map[TemplateKey]*Descriptor
}

func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[TemplateKey]*Descriptor)}
}

// Register validates d and stores it under key. Registering the same
// *Descriptor pointer again under the same key is a no-op. Any other
// descriptor under an occupied key is a configuration error, even one that is
// structurally equal: templates share one descriptor value across
// environments and must register that pointer.
func (r *Registry) Register(key TemplateKey, d *Descriptor) error {
	if key.Environment == "" || key.TemplateID == "" {
		return fmt.Errorf("%w: incomplete template key %q", ErrConfiguration, key.String())
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if existing, ok := r.descriptors[key]; ok {
		if existing == d {
			return nil
		}
		return fmt.Errorf("%w: %s already registered to %s, cannot register %s",
			ErrConfiguration, key, existing.Name, d.Name)
	}
	r.descriptors[key] = d
	return nil
}

// Lookup returns the descriptor for the key. The boolean is false when
// nothing is registered, which callers must treat differently from a
// descriptor with no data behind it.
func (r *Registry) Lookup(environment, templateID string) (*Descriptor, bool) {
	d, ok := r.descriptors[TemplateKey{Environment: environment, TemplateID: templateID}]
	return d, ok
}

func (r *Registry) Len() int {
	return len(r.descriptors)
}

// Keys returns the registered keys sorted by environment, then template id.
func (r *Registry) Keys() []TemplateKey {
	keys := make([]TemplateKey, 0, len(r.descriptors))
	for k := range r.descriptors {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Environment != keys[j].Environment {
			return keys[i].Environment < keys[j].Environment
		}
		return keys[i].TemplateID < keys[j].TemplateID
	})
	return keys
}
