package templates

import (
	"document-workers/internal/document/builders"
	"document-workers/internal/document/naming"
	"document-workers/internal/document/tabs"
	"document-workers/internal/models"
)

var utilityBillAuthorization = &tabs.Descriptor{
	Name:    "Utility Bill Authorization",
	TabKind: tabs.TabKindText,
	Naming:  naming.PascalCase,
	Fields: []tabs.FieldDescriptor{
		tabs.Field("customerName", customerName),
		tabs.Lookup("utilityName", tabs.Path("utilityUsageDetails.utilityName")),
		tabs.Lookup("accountNumber", tabs.Path("utilityUsageDetails.accountNumber")),
		tabs.Lookup("meterNumber", tabs.Path("utilityUsageDetails.meterNumber")),
		tabs.Lookup("tariffCode", tabs.Path("utilityUsageDetails.tariffCode")),
		tabs.Field("serviceAddress", func(g *models.GenericObject) tabs.Value {
			if g.UtilityUsageDetails == nil {
				return tabs.Absent
			}
			return builders.AddressValue(&g.UtilityUsageDetails.ServiceAddress)
		}),
		tabs.Lookup("annualUsageKwh", tabs.Path("utilityUsageDetails.annualUsageKwh")),
		tabs.Lookup("customerEmail", tabs.Path("contact.email")),
	},
}
