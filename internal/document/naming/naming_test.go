package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrategy_Apply(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		input    string
		expected string
	}{
		{"snake simple", SnakeCase, "utilityName", "utility_name"},
		{"snake long", SnakeCase, "installationOrgUserEmployeeId", "installation_org_user_employee_id"},
		{"snake already snake", SnakeCase, "primary_owner_email", "primary_owner_email"},
		{"upper snake", UpperSnakeCase, "lseName", "LSE_NAME"},
		{"upper snake long", UpperSnakeCase, "primaryOwnerFullName", "PRIMARY_OWNER_FULL_NAME"},
		{"pascal", PascalCase, "netCost", "NetCost"},
		{"pascal from snake", PascalCase, "co_owner_email", "CoOwnerEmail"},
		{"unknown passes through", Strategy("kebab"), "netCost", "netCost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.strategy.Apply(tt.input))
		})
	}
}

func TestStrategy_UpperSnakeIsUpperOfSnake(t *testing.T) {
	for _, name := range []string{"lseName", "utilityName", "installationOrgUserEmployeeId", "a"} {
		assert.Equal(t, UpperSnakeCase.Apply(name), strings.ToUpper(SnakeCase.Apply(name)), name)
	}
}

func TestStrategy_Deterministic(t *testing.T) {
	for _, s := range []Strategy{SnakeCase, UpperSnakeCase, PascalCase} {
		assert.Equal(t, s.Apply("coOwnerFullName"), s.Apply("coOwnerFullName"))
	}
}

func TestStrategy_Valid(t *testing.T) {
	assert.NoError(t, SnakeCase.Valid())
	assert.NoError(t, UpperSnakeCase.Valid())
	assert.NoError(t, PascalCase.Valid())
	assert.Error(t, Strategy("").Valid())
	assert.Error(t, Strategy("camel").Valid())
}

