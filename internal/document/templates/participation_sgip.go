package templates

import (
	"document-workers/internal/document/naming"
	"document-workers/internal/document/tabs"
)

var participationSgipHic = &tabs.Descriptor{
	Name:    "Participation SGIP HIC",
	TabKind: tabs.TabKindPrefill,
	Naming:  naming.UpperSnakeCase,
	Fields: []tabs.FieldDescriptor{
		tabs.Field("customerName", customerName),
		tabs.Lookup("customerEmail", tabs.Path("contact.email")),
		tabs.Lookup("utilityName", tabs.Path("utilityUsageDetails.utilityName")),
		tabs.Lookup("lseName", tabs.Path("utilityUsageDetails.lseName")),
		tabs.Lookup("sgipBudgetCategory", tabs.Path("opportunity.sgipBudgetCategory")),
		tabs.Lookup("systemSizeKw", tabs.Path("quote.systemSizeKw")),
		tabs.Lookup("batteryCapacityKwh", tabs.Path("quote.batteryCapacityKwh")),
		tabs.Field("netCost", netCost, tabs.Currency()),
		tabs.Lookup("installationOrgUserEmployeeId", tabs.Path("contract.installationOrgUserEmployeeId")),
		tabs.Lookup("contractorLicenseNumber", tabs.Path("contract.contractorLicenseNumber"), tabs.WireName("CSLB_LICENSE_NUMBER")),
		tabs.Field("coOwnerName", coOwner(signerFullName), tabs.Optional()),
		tabs.Lookup("signedDate", tabs.Path("contract.signedDate")),
	},
}
