// internal/models/contract.go
package models

type Contract struct {
	ID                            string         `json:"id"`
	ContractNumber                string         `json:"contractNumber"`
	ContactID                     string         `json:"contactId"`
	OpportunityID                 string         `json:"opportunityId"`
	QuoteID                       string         `json:"quoteId"`
	Status                        string         `json:"status"`
	SignedDate                    string         `json:"signedDate,omitempty"`
	InstallationOrgUserEmployeeID string         `json:"installationOrgUserEmployeeId,omitempty"`
	SalesRepName                  string         `json:"salesRepName,omitempty"`
	SalesRepEmail                 string         `json:"salesRepEmail,omitempty"`
	SalesRepLicenseNumber         string         `json:"salesRepLicenseNumber,omitempty"`
	ContractorLicenseNumber       string         `json:"contractorLicenseNumber,omitempty"`
	ChangeOrder                   *ChangeOrder   `json:"changeOrder,omitempty"`
	SignerDetails                 []SignerDetail `json:"signerDetails,omitempty"`
}

// ChangeOrder describes an amendment to a signed contract.
type ChangeOrder struct {
	Number      int     `json:"number"`
	Reason      string  `json:"reason"`
	PriceChange float64 `json:"priceChange"`
}

type Opportunity struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Stage              string  `json:"stage"`
	ContactID          string  `json:"contactId"`
	InstallAddress     Address `json:"installAddress"`
	UtilityName        string  `json:"utilityName,omitempty"`
	SgipBudgetCategory string  `json:"sgipBudgetCategory,omitempty"`
}
