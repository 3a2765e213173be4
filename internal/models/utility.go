// internal/models/utility.go
package models

type UtilityUsageDetails struct {
	OpportunityID  string  `json:"opportunityId"`
	UtilityName    string  `json:"utilityName"`
	LseName        string  `json:"lseName,omitempty"`
	TariffCode     string  `json:"tariffCode,omitempty"`
	AccountNumber  string  `json:"accountNumber,omitempty"`
	MeterNumber    string  `json:"meterNumber,omitempty"`
	AnnualUsageKwh float64 `json:"annualUsageKwh"`
	ServiceAddress Address `json:"serviceAddress"`
}
