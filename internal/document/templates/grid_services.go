package templates

import (
	"document-workers/internal/document/naming"
	"document-workers/internal/document/tabs"
	"document-workers/internal/models"
)

var gridServicesAgreement = &tabs.Descriptor{
	Name:    "Grid Services Agreement",
	TabKind: tabs.TabKindPrefill,
	Naming:  naming.SnakeCase,
	Fields: []tabs.FieldDescriptor{
		tabs.Field("primaryOwnerFullName", primaryOwner(signerFullName)),
		tabs.Field("primaryOwnerEmail", primaryOwner(signerEmail)),
		tabs.Field("primaryOwnerPhone", primaryOwner(signerPhone)),
		tabs.Field("coOwnerFullName", coOwner(signerFullName)),
		tabs.Field("coOwnerEmail", coOwner(signerEmail)),
		tabs.Field("coOwnerPhone", coOwner(signerPhone)),
		tabs.Field("installStreet", installAddress(func(a *models.Address) string { return a.Street })),
		tabs.Field("installCity", installAddress(func(a *models.Address) string { return a.City })),
		tabs.Field("installState", installAddress(func(a *models.Address) string { return a.State })),
		tabs.Field("installZip", installAddress(func(a *models.Address) string { return a.PostalCode })),
		tabs.Lookup("utilityName", tabs.Path("utilityUsageDetails.utilityName")),
		tabs.Lookup("utilityAccountNumber", tabs.Path("utilityUsageDetails.accountNumber")),
		tabs.Lookup("batteryCount", tabs.Path("quote.batteryCount")),
		tabs.Lookup("batteryCapacityKwh", tabs.Path("quote.batteryCapacityKwh")),
		tabs.Lookup("contractNumber", tabs.Path("contract.contractNumber")),
	},
}
