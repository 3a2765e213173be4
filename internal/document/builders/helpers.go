package builders

import (
	"strings"

	"document-workers/internal/document/tabs"
	"document-workers/internal/models"
)

// SignerValue reads a field of the signer holding role, or Absent when no
// signer has that role.
func SignerValue(g *models.GenericObject, role string, get func(*models.SignerDetail) string) tabs.Value {
	s := g.Signer(role)
	if s == nil {
		return tabs.Absent
	}
	return tabs.Str(get(s))
}

// FormatAddress renders a two-line postal address:
//
//	123 Main St Apt 4
//	Fresno, CA 93650
func FormatAddress(a *models.Address) string {
	if a == nil {
		return ""
	}
	line1 := joinNonEmpty(" ", a.Street, a.Unit)
	line2 := joinNonEmpty(" ", joinNonEmpty(", ", a.City, a.State), a.PostalCode)
	return joinNonEmpty("\n", line1, line2)
}

// AddressValue is FormatAddress as a field value.
func AddressValue(a *models.Address) tabs.Value {
	return tabs.StrOrAbsent(FormatAddress(a))
}

// SignerNames joins the full names of every signer in order, e.g.
// "Jane Doe & John Doe".
func SignerNames(g *models.GenericObject) tabs.Value {
	if g == nil {
		return tabs.Absent
	}
	names := make([]string, 0, len(g.SignerDetails))
	for _, s := range g.SignerDetails {
		if s.FullName != "" {
			names = append(names, s.FullName)
		}
	}
	return tabs.StrOrAbsent(strings.Join(names, " & "))
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
