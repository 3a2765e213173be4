package tabs

import (
	"fmt"
	"reflect"
	"strings"

	"document-workers/internal/models"
)

type FallbackReason string

const (
	ReasonAbsent FallbackReason = "absent"
	ReasonFault  FallbackReason = "extractor_fault"
)

// Fallback records a field that rendered as "" because its data was
// missing or its extractor failed.
type Fallback struct {
	Field  string         `json:"field"`
	Reason FallbackReason `json:"reason"`
	Detail string         `json:"detail,omitempty"`
}

// Resolution is the outcome of resolving one descriptor.
type Resolution struct {
	Template  string
	TabKind   TabKind
	Fields    *FieldMap
	Fallbacks []Fallback
}

// Resolve renders every declared field of d against g in declaration order.
// Missing data, panicking extractors and numbers that cannot be rendered
// never abort resolution; the affected field becomes "" and is listed in
// Fallbacks. Optional fields that resolve to Absent are left out.
func Resolve(d *Descriptor, g *models.GenericObject) *Resolution {
	res := &Resolution{
		Template: d.Name,
		TabKind:  d.TabKind,
		Fields:   NewFieldMap(len(d.Fields)),
	}

	for _, f := range d.Fields {
		wire := d.WireName(f)
		v, fault := evaluate(f, g)

		switch {
		case fault != "":
			res.Fallbacks = append(res.Fallbacks, Fallback{Field: wire, Reason: ReasonFault, Detail: fault})
			res.Fields.Set(wire, "")
		case v.IsAbsent() && f.Optional:
			continue
		case v.IsAbsent():
			res.Fallbacks = append(res.Fallbacks, Fallback{Field: wire, Reason: ReasonAbsent})
			res.Fields.Set(wire, "")
		default:
			rendered, err := v.Render(f.Currency)
			if err != nil {
				res.Fallbacks = append(res.Fallbacks, Fallback{Field: wire, Reason: ReasonFault, Detail: err.Error()})
			}
			res.Fields.Set(wire, rendered)
		}
	}
	return res
}

// evaluate runs one field's extractor, converting a panic into a fault
// description.
func evaluate(f FieldDescriptor, g *models.GenericObject) (v Value, fault string) {
	defer func() {
		if r := recover(); r != nil {
			v, fault = Absent, fmt.Sprint(r)
		}
	}()

	if f.Extract != nil {
		return f.Extract(g), ""
	}
	return lookupPath(g, f.Path)
}

// lookupPath walks g along a dotted path of json field names. Only the
// fields on the path are read, so a bad value elsewhere in the object cannot
// affect the lookup. Fields that encoding/json would omit resolve as Absent.
func lookupPath(g *models.GenericObject, path string) (Value, string) {
	if g == nil {
		return Absent, ""
	}

	current := reflect.ValueOf(g)
	for _, part := range strings.Split(path, ".") {
		current = indirect(current)
		if !current.IsValid() {
			return Absent, ""
		}

		switch current.Kind() {
		case reflect.Struct:
			field, ok := fieldByJSONName(current, part)
			if !ok {
				return Absent, ""
			}
			current = field
		case reflect.Map:
			if current.Type().Key().Kind() != reflect.String {
				return Absent, ""
			}
			current = current.MapIndex(reflect.ValueOf(part).Convert(current.Type().Key()))
			if !current.IsValid() {
				return Absent, ""
			}
		default:
			return Absent, ""
		}
	}

	current = indirect(current)
	if !current.IsValid() {
		return Absent, ""
	}
	switch current.Kind() {
	case reflect.String:
		return Str(current.String()), ""
	case reflect.Bool:
		return Bool(current.Bool()), ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Num(float64(current.Int())), ""
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Num(float64(current.Uint())), ""
	case reflect.Float32, reflect.Float64:
		return Num(current.Float()), ""
	case reflect.Slice, reflect.Map:
		if current.IsNil() {
			return Absent, ""
		}
	}
	return Absent, fmt.Sprintf("path %s does not hold a scalar", path)
}

// indirect follows pointers and interfaces. A nil one yields the zero Value.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// fieldByJSONName finds the exported field encoded under name. An omitempty
// field holding an empty value is reported as missing.
func fieldByJSONName(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		tagName, opts, _ := strings.Cut(tag, ",")
		if tagName == "" {
			tagName = sf.Name
		}
		if tagName != name {
			continue
		}

		field := v.Field(i)
		if hasOption(opts, "omitempty") && isEmptyValue(field) {
			return reflect.Value{}, false
		}
		return field, true
	}
	return reflect.Value{}, false
}

func hasOption(opts, option string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == option {
			return true
		}
	}
	return false
}

// isEmptyValue mirrors the emptiness rule encoding/json applies to omitempty.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
