package templates

import (
	"document-workers/internal/document/builders"
	"document-workers/internal/document/tabs"
	"document-workers/internal/models"
)

func signerFullName(s *models.SignerDetail) string { return s.FullName }
func signerEmail(s *models.SignerDetail) string    { return s.Email }
func signerPhone(s *models.SignerDetail) string    { return s.Phone }

func primaryOwner(get func(*models.SignerDetail) string) tabs.Extractor {
	return func(g *models.GenericObject) tabs.Value {
		return builders.SignerValue(g, models.SignerRolePrimaryOwner, get)
	}
}

func coOwner(get func(*models.SignerDetail) string) tabs.Extractor {
	return func(g *models.GenericObject) tabs.Value {
		return builders.SignerValue(g, models.SignerRoleCoOwner, get)
	}
}

// customerName prefers the primary owner's signing name over the contact.
func customerName(g *models.GenericObject) tabs.Value {
	if v := builders.SignerValue(g, models.SignerRolePrimaryOwner, signerFullName); !v.IsAbsent() {
		return v
	}
	return tabs.StrOrAbsent(g.Contact.FullName())
}

func netCost(g *models.GenericObject) tabs.Value {
	total := g.ProjectGrandTotal()
	if total == nil {
		return tabs.Absent
	}
	return tabs.Num(total.NetCost)
}

func grossCost(g *models.GenericObject) tabs.Value {
	total := g.ProjectGrandTotal()
	if total == nil {
		return tabs.Absent
	}
	return tabs.Num(total.GrossCost)
}

func installAddress(get func(*models.Address) string) tabs.Extractor {
	return func(g *models.GenericObject) tabs.Value {
		a := g.InstallAddress()
		if a == nil {
			return tabs.Absent
		}
		return tabs.StrOrAbsent(get(a))
	}
}
