// internal/models/quote.go
package models

type Quote struct {
	ID                  string            `json:"id"`
	OpportunityID       string            `json:"opportunityId"`
	SystemSizeKw        float64           `json:"systemSizeKw"`
	BatteryCount        int               `json:"batteryCount"`
	BatteryCapacityKwh  float64           `json:"batteryCapacityKwh"`
	AnnualProductionKwh float64           `json:"annualProductionKwh"`
	QuoteCostBuildup    *QuoteCostBuildup `json:"quoteCostBuildup,omitempty"`
	FinanceProduct      *FinanceProduct   `json:"financeProduct,omitempty"`
}

type QuoteCostBuildup struct {
	ProjectGrandTotal *ProjectGrandTotal `json:"projectGrandTotal,omitempty"`
	Incentives        []Incentive        `json:"incentives,omitempty"`
}

type ProjectGrandTotal struct {
	GrossCost float64 `json:"grossCost"`
	NetCost   float64 `json:"netCost"`
}

type Incentive struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type FinanceProduct struct {
	Lender         string  `json:"lender"`
	ProductName    string  `json:"productName"`
	TermMonths     int     `json:"termMonths"`
	AprPercent     float64 `json:"aprPercent"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	DownPayment    float64 `json:"downPayment"`
}
