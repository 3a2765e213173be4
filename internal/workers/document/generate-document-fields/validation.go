package generatedocumentfields

import (
	"document-workers/internal/common/validation"
	"document-workers/internal/document/templates"
)

// inputVariables are the process variables the worker fetches.
var inputVariables = []string{"contractId", "opportunityId", "quoteId", "templateId", "environment"}

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"contractId", "templateId"},
		Properties: map[string]validation.Property{
			"contractId": {
				Type:        "string",
				Description: "Contract the document is generated for",
				MinLength:   validation.IntPtr(1),
				MaxLength:   validation.IntPtr(64),
			},
			"opportunityId": {
				Type:        "string",
				Description: "Opportunity override; defaults to the contract's opportunity",
				MaxLength:   validation.IntPtr(64),
			},
			"quoteId": {
				Type:        "string",
				Description: "Quote override; defaults to the contract's quote",
				MaxLength:   validation.IntPtr(64),
			},
			"templateId": {
				Type:        "string",
				Description: "External e-signature template id",
				MinLength:   validation.IntPtr(1),
				MaxLength:   validation.IntPtr(64),
			},
			"environment": {
				Type:        "string",
				Description: "Deployment environment the template id belongs to",
				Enum:        templates.Environments,
			},
		},
		// Jobs may carry unrelated process variables.
		AdditionalProperties: true,
	}
}
