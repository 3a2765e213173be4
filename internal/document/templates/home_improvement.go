package templates

import (
	"document-workers/internal/document/builders"
	"document-workers/internal/document/tabs"
	"document-workers/internal/models"
)

var homeImprovementContract = &builders.Builder{
	Name:    "Home Improvement Contract",
	TabKind: tabs.TabKindText,
	Build:   buildHomeImprovementContract,
}

func buildHomeImprovementContract(g *models.GenericObject) builders.Record {
	var r builders.Record

	r.Add("Buyer Names", builders.SignerNames(g))
	r.Add("Buyer Mailing Address", mailingAddress(g))
	r.Add("Installation Address", builders.AddressValue(g.InstallAddress()))
	r.Add("Buyer Email", builders.SignerValue(g, models.SignerRolePrimaryOwner, signerEmail))
	r.Add("Buyer Phone", builders.SignerValue(g, models.SignerRolePrimaryOwner, signerPhone))

	// Co-owner lines are printed only on the co-owner signature block.
	if co := g.CoOwner(); co != nil {
		r.Add("Co-Buyer Name", tabs.Str(co.FullName))
		r.Add("Co-Buyer Email", tabs.Str(co.Email))
	} else {
		r.Add("Co-Buyer Name", tabs.Absent)
		r.Add("Co-Buyer Email", tabs.Absent)
	}

	r.AddCurrency("Contract Price", grossCost(g))
	r.AddCurrency("Incentives", incentiveTotal(g))
	r.AddCurrency("Net Contract Price", netCost(g))

	var rep, repLicense, contractorLicense tabs.Value = tabs.Absent, tabs.Absent, tabs.Absent
	if g.Contract != nil {
		rep = tabs.StrOrAbsent(g.Contract.SalesRepName)
		repLicense = tabs.StrOrAbsent(g.Contract.SalesRepLicenseNumber)
		contractorLicense = tabs.StrOrAbsent(g.Contract.ContractorLicenseNumber)
	}
	r.Add("Salesperson", rep)
	r.Add("Salesperson HIS Number", repLicense)
	r.Add("Contractor License", contractorLicense)

	return r
}

func mailingAddress(g *models.GenericObject) tabs.Value {
	if g.Contact == nil {
		return tabs.Absent
	}
	return builders.AddressValue(&g.Contact.Address)
}

func incentiveTotal(g *models.GenericObject) tabs.Value {
	if g.Quote == nil || g.Quote.QuoteCostBuildup == nil || len(g.Quote.QuoteCostBuildup.Incentives) == 0 {
		return tabs.Absent
	}
	var total float64
	for _, inc := range g.Quote.QuoteCostBuildup.Incentives {
		total += inc.Amount
	}
	return tabs.Num(total)
}
