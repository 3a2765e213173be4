// Package dispatch chooses between declarative descriptors and imperative
// builders for a template and returns a uniform result.
package dispatch

import (
	"errors"
	"fmt"

	"document-workers/internal/common/logger"
	"document-workers/internal/common/metrics"
	"document-workers/internal/document/builders"
	"document-workers/internal/document/tabs"
	"document-workers/internal/models"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrBuildFailed      = errors.New("template build failed")
)

type Mode string

const (
	ModeDeclarative Mode = "declarative"
	ModeImperative  Mode = "imperative"
)

// Template is either descriptor backed or builder backed; exactly one of
// Descriptor and Builder is set.
type Template struct {
	Mode       Mode
	Descriptor *tabs.Descriptor
	Builder    *builders.Builder
}

func (t Template) Name() string {
	if t.Descriptor != nil {
		return t.Descriptor.Name
	}
	return t.Builder.Name
}

func (t Template) TabKind() tabs.TabKind {
	if t.Descriptor != nil {
		return t.Descriptor.TabKind
	}
	return t.Builder.TabKind
}

// Result is the field map for one template and generic object.
type Result struct {
	Environment string
	TemplateID  string
	Template    string
	Mode        Mode
	TabKind     tabs.TabKind
	Fields      *tabs.FieldMap
	Fallbacks   []tabs.Fallback
}

// Tabs renders the fields as e-signature tabs of the template's kind.
func (r *Result) Tabs() []tabs.Tab {
	return r.Fields.Tabs(r.TabKind)
}

type Dispatcher struct {
	descriptors *tabs.Registry
	builders    *builders.Registry
	logger      logger.Logger
}

func New(descriptors *tabs.Registry, builderRegistry *builders.Registry, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		descriptors: descriptors,
		builders:    builderRegistry,
		logger:      log.WithFields(map[string]interface{}{"component": "dispatcher"}),
	}
}

// Find returns the template registered for the key. Descriptors take
// precedence over builders.
func (d *Dispatcher) Find(environment, templateID string) (Template, error) {
	if desc, ok := d.descriptors.Lookup(environment, templateID); ok {
		return Template{Mode: ModeDeclarative, Descriptor: desc}, nil
	}
	if b, ok := d.builders.Lookup(templateID); ok {
		return Template{Mode: ModeImperative, Builder: b}, nil
	}
	return Template{}, fmt.Errorf("%w: environment=%s templateId=%s", ErrTemplateNotFound, environment, templateID)
}

// GetFieldMap resolves the template identified by environment and templateID
// against g. It fails only when no template is registered or a builder
// panics; missing source data degrades individual fields.
func (d *Dispatcher) GetFieldMap(environment, templateID string, g *models.GenericObject) (*Result, error) {
	tmpl, err := d.Find(environment, templateID)
	if err != nil {
		metrics.DocumentTemplateNotFound.WithLabelValues(environment).Inc()
		d.logger.Warn("no template registered", map[string]interface{}{
			"environment": environment,
			"templateId":  templateID,
		})
		return nil, err
	}

	result := &Result{
		Environment: environment,
		TemplateID:  templateID,
		Template:    tmpl.Name(),
		Mode:        tmpl.Mode,
		TabKind:     tmpl.TabKind(),
	}

	switch tmpl.Mode {
	case ModeDeclarative:
		res := tabs.Resolve(tmpl.Descriptor, g)
		result.Fields, result.Fallbacks = res.Fields, res.Fallbacks
	case ModeImperative:
		fields, fallbacks, err := build(tmpl.Builder, g)
		if err != nil {
			d.logger.Error("builder failed", map[string]interface{}{
				"template":   tmpl.Name(),
				"templateId": templateID,
				"error":      err,
			})
			return nil, err
		}
		result.Fields, result.Fallbacks = fields, fallbacks
	}

	d.record(result)
	return result, nil
}

func build(b *builders.Builder, g *models.GenericObject) (fields *tabs.FieldMap, fallbacks []tabs.Fallback, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrBuildFailed, b.Name, r)
		}
	}()
	fields, fallbacks = b.Build(g).FieldMap()
	return fields, fallbacks, nil
}

func (d *Dispatcher) record(r *Result) {
	metrics.DocumentFieldsResolved.WithLabelValues(r.Template, string(r.Mode)).Add(float64(r.Fields.Len()))
	for _, fb := range r.Fallbacks {
		metrics.DocumentFieldFallbacks.WithLabelValues(r.Template, string(fb.Reason)).Inc()
	}

	if len(r.Fallbacks) == 0 {
		return
	}
	names := make([]string, 0, len(r.Fallbacks))
	for _, fb := range r.Fallbacks {
		names = append(names, fb.Field)
	}
	d.logger.Debug("fields fell back to empty values", map[string]interface{}{
		"template":   r.Template,
		"templateId": r.TemplateID,
		"fields":     names,
	})
}
