package tabs

import (
	"errors"
	"fmt"

	"document-workers/internal/document/naming"
)

// ErrConfiguration marks template declarations that can never resolve
// correctly. It is returned at registration, never at resolution.
var ErrConfiguration = errors.New("template configuration error")

// TabKind is the e-signature tab collection a template's fields belong to.
type TabKind string

const (
	TabKindPrefill TabKind = "prefillTabs"
	TabKindText    TabKind = "textTabs"
)

// Descriptor is the static declaration of one logical template. The same
// descriptor value is registered once per environment and is never modified
// after registration.
type Descriptor struct {
	Name    string
	TabKind TabKind
	Naming  naming.Strategy
	Fields  []FieldDescriptor
}

// WireName returns the override when present, otherwise the strategy applied
// to the property name.
func (d *Descriptor) WireName(f FieldDescriptor) string {
	if f.WireName != "" {
		return f.WireName
	}
	return d.Naming.Apply(f.Property)
}

// WireNames lists the output keys in declaration order.
func (d *Descriptor) WireNames() []string {
	out := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		out = append(out, d.WireName(f))
	}
	return out
}

func (d *Descriptor) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil descriptor", ErrConfiguration)
	}
	if d.Name == "" {
		return fmt.Errorf("%w: descriptor name is required", ErrConfiguration)
	}
	switch d.TabKind {
	case TabKindPrefill, TabKindText:
	default:
		return fmt.Errorf("%w: %s: unknown tab kind %q", ErrConfiguration, d.Name, d.TabKind)
	}
	if err := d.Naming.Valid(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfiguration, d.Name, err)
	}
	if len(d.Fields) == 0 {
		return fmt.Errorf("%w: %s: no fields declared", ErrConfiguration, d.Name)
	}

	seen := make(map[string]string, len(d.Fields))
	for i, f := range d.Fields {
		if f.Property == "" {
			return fmt.Errorf("%w: %s: field %d has no property name", ErrConfiguration, d.Name, i)
		}
		if f.Extract == nil && f.Path == "" {
			return fmt.Errorf("%w: %s: field %s has neither extractor nor path", ErrConfiguration, d.Name, f.Property)
		}
		wire := d.WireName(f)
		if prev, ok := seen[wire]; ok {
			return fmt.Errorf("%w: %s: fields %s and %s both resolve to %q",
				ErrConfiguration, d.Name, prev, f.Property, wire)
		}
		seen[wire] = f.Property
	}
	return nil
}
