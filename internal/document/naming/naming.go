// Package naming derives wire field names from property names.
package naming

import (
	"fmt"

	"github.com/stoewer/go-strcase"
)

// Strategy is a template-wide convention for turning a property name such as
// "installationOrgUserEmployeeId" into the field name a document expects.
type Strategy string

const (
	SnakeCase      Strategy = "snake_case"
	UpperSnakeCase Strategy = "upper_snake_case"
	PascalCase     Strategy = "pascal_case"
)

// Apply converts name according to the strategy. Unknown strategies return
// name unchanged; descriptors are validated with Valid before use.
func (s Strategy) Apply(name string) string {
	switch s {
	case SnakeCase:
		return strcase.SnakeCase(name)
	case UpperSnakeCase:
		return strcase.UpperSnakeCase(name)
	case PascalCase:
		return strcase.UpperCamelCase(name)
	default:
		return name
	}
}

// Valid reports an error for strategies Apply does not know.
func (s Strategy) Valid() error {
	switch s {
	case SnakeCase, UpperSnakeCase, PascalCase:
		return nil
	default:
		return fmt.Errorf("unknown naming strategy %q", string(s))
	}
}

func (s Strategy) String() string {
	return string(s)
}
