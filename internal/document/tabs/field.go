package tabs

import "document-workers/internal/models"

// Extractor computes one field's value from the generic object. It must not
// modify g. Returning Absent is how an extractor reports missing data.
type Extractor func(g *models.GenericObject) Value

// FieldDescriptor declares one document field.
type FieldDescriptor struct {
	Property string
	// WireName overrides the descriptor's naming strategy when set.
	WireName string
	// Extract is optional; without it the field is looked up by Path in the
	// JSON form of the generic object.
	Extract  Extractor
	Path     string
	Currency bool
	// Optional fields are left out of the result when their value is absent.
	Optional bool
}

type FieldOption func(*FieldDescriptor)

// Field declares a field backed by an extractor.
func Field(property string, extract Extractor, opts ...FieldOption) FieldDescriptor {
	f := FieldDescriptor{Property: property, Extract: extract}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Lookup declares a field read from a dotted path such as
// "utilityUsageDetails.lseName". The path defaults to the property name.
func Lookup(property string, opts ...FieldOption) FieldDescriptor {
	f := FieldDescriptor{Property: property, Path: property}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func WireName(name string) FieldOption {
	return func(f *FieldDescriptor) { f.WireName = name }
}

func Path(path string) FieldOption {
	return func(f *FieldDescriptor) { f.Path = path }
}

func Currency() FieldOption {
	return func(f *FieldDescriptor) { f.Currency = true }
}

func Optional() FieldOption {
	return func(f *FieldDescriptor) { f.Optional = true }
}
