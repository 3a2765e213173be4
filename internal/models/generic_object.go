// internal/models/generic_object.go
package models

// GenericObject aggregates the records a document template reads from. It
// holds the records fetched for one document generation and is discarded
// afterwards. Any section may be nil.
type GenericObject struct {
	Contact             *Contact             `json:"contact,omitempty"`
	Contract            *Contract            `json:"contract,omitempty"`
	Opportunity         *Opportunity         `json:"opportunity,omitempty"`
	Quote               *Quote               `json:"quote,omitempty"`
	SignerDetails       []SignerDetail       `json:"signerDetails,omitempty"`
	UtilityUsageDetails *UtilityUsageDetails `json:"utilityUsageDetails,omitempty"`
}

// Signer returns the first signer with the given role, or nil.
func (g *GenericObject) Signer(role string) *SignerDetail {
	if g == nil {
		return nil
	}
	for i := range g.SignerDetails {
		if g.SignerDetails[i].Role == role {
			return &g.SignerDetails[i]
		}
	}
	return nil
}

func (g *GenericObject) PrimaryOwner() *SignerDetail {
	return g.Signer(SignerRolePrimaryOwner)
}

func (g *GenericObject) CoOwner() *SignerDetail {
	return g.Signer(SignerRoleCoOwner)
}

// ProjectGrandTotal returns quote.quoteCostBuildup.projectGrandTotal or nil
// when any step of the path is missing.
func (g *GenericObject) ProjectGrandTotal() *ProjectGrandTotal {
	if g == nil || g.Quote == nil || g.Quote.QuoteCostBuildup == nil {
		return nil
	}
	return g.Quote.QuoteCostBuildup.ProjectGrandTotal
}

func (g *GenericObject) FinanceProduct() *FinanceProduct {
	if g == nil || g.Quote == nil {
		return nil
	}
	return g.Quote.FinanceProduct
}

// InstallAddress prefers the opportunity's install address and falls back to
// the contact's mailing address.
func (g *GenericObject) InstallAddress() *Address {
	if g == nil {
		return nil
	}
	if g.Opportunity != nil && g.Opportunity.InstallAddress.Street != "" {
		return &g.Opportunity.InstallAddress
	}
	if g.Contact != nil && g.Contact.Address.Street != "" {
		return &g.Contact.Address
	}
	return nil
}
