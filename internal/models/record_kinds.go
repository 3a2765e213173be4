// internal/models/record_kinds.go
package models

// RecordKind names a source record collection read by the assembler.
type RecordKind string

const (
	RecordKindContact      RecordKind = "contact"
	RecordKindContract     RecordKind = "contract"
	RecordKindOpportunity  RecordKind = "opportunity"
	RecordKindQuote        RecordKind = "quote"
	RecordKindUtilityUsage RecordKind = "utility_usage"
)
