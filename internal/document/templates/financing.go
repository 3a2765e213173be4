package templates

import (
	"document-workers/internal/document/naming"
	"document-workers/internal/document/tabs"
	"document-workers/internal/models"
)

func financeProduct(get func(*models.FinanceProduct) tabs.Value) tabs.Extractor {
	return func(g *models.GenericObject) tabs.Value {
		fp := g.FinanceProduct()
		if fp == nil {
			return tabs.Absent
		}
		return get(fp)
	}
}

var financingDisclosure = &tabs.Descriptor{
	Name:    "Financing Disclosure",
	TabKind: tabs.TabKindPrefill,
	Naming:  naming.SnakeCase,
	Fields: []tabs.FieldDescriptor{
		tabs.Field("borrowerName", customerName),
		tabs.Field("coBorrowerName", coOwner(signerFullName)),
		tabs.Field("lender", financeProduct(func(fp *models.FinanceProduct) tabs.Value { return tabs.Str(fp.Lender) })),
		tabs.Field("productName", financeProduct(func(fp *models.FinanceProduct) tabs.Value { return tabs.Str(fp.ProductName) })),
		tabs.Field("termMonths", financeProduct(func(fp *models.FinanceProduct) tabs.Value { return tabs.Int(fp.TermMonths) })),
		tabs.Field("aprPercent", financeProduct(func(fp *models.FinanceProduct) tabs.Value { return tabs.Num(fp.AprPercent) }), tabs.WireName("apr")),
		tabs.Field("monthlyPayment", financeProduct(func(fp *models.FinanceProduct) tabs.Value { return tabs.Num(fp.MonthlyPayment) }), tabs.Currency()),
		tabs.Field("downPayment", financeProduct(func(fp *models.FinanceProduct) tabs.Value { return tabs.Num(fp.DownPayment) }), tabs.Currency()),
		tabs.Field("grossCost", grossCost, tabs.Currency()),
		tabs.Field("amountFinanced", func(g *models.GenericObject) tabs.Value {
			total, fp := g.ProjectGrandTotal(), g.FinanceProduct()
			if total == nil || fp == nil {
				return tabs.Absent
			}
			return tabs.Num(total.NetCost - fp.DownPayment)
		}, tabs.Currency()),
	},
}
