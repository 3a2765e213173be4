package generatedocumentfields

import "document-workers/internal/document/tabs"

type Input struct {
	ContractID    string `json:"contractId"`
	OpportunityID string `json:"opportunityId,omitempty"`
	QuoteID       string `json:"quoteId,omitempty"`
	TemplateID    string `json:"templateId"`
	Environment   string `json:"environment,omitempty"`
}

// Output is the job's completion payload. Fields keeps template order when
// serialized.
type Output struct {
	ResolutionID   string          `json:"resolutionId"`
	TemplateID     string          `json:"templateId"`
	Environment    string          `json:"environment"`
	Template       string          `json:"template"`
	Mode           string          `json:"mode"`
	Fields         *tabs.FieldMap  `json:"fields"`
	Tabs           []tabs.Tab      `json:"tabs"`
	FallbackFields []tabs.Fallback `json:"fallbackFields"`
}
