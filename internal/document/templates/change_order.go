package templates

import (
	"document-workers/internal/document/builders"
	"document-workers/internal/document/tabs"
	"document-workers/internal/models"
)

var changeOrder = &builders.Builder{
	Name:    "Change Order",
	TabKind: tabs.TabKindText,
	Build:   buildChangeOrder,
}

func buildChangeOrder(g *models.GenericObject) builders.Record {
	var r builders.Record

	var contractNumber tabs.Value = tabs.Absent
	var co *models.ChangeOrder
	if g.Contract != nil {
		contractNumber = tabs.StrOrAbsent(g.Contract.ContractNumber)
		co = g.Contract.ChangeOrder
	}

	r.Add("Contract Number", contractNumber)
	r.Add("Owner Names", builders.SignerNames(g))
	r.Add("Installation Address", builders.AddressValue(g.InstallAddress()))

	if co == nil {
		r.Add("Change Order Number", tabs.Absent)
		r.Add("Reason For Change", tabs.Absent)
		r.AddCurrency("Price Change", tabs.Absent)
		r.AddCurrency("Revised Contract Price", tabs.Absent)
		return r
	}

	r.Add("Change Order Number", tabs.Int(co.Number))
	r.Add("Reason For Change", tabs.StrOrAbsent(co.Reason))
	r.AddCurrency("Price Change", tabs.Num(co.PriceChange))

	revised := tabs.Absent
	if total := g.ProjectGrandTotal(); total != nil {
		revised = tabs.Num(total.GrossCost + co.PriceChange)
	}
	r.AddCurrency("Revised Contract Price", revised)
	return r
}
