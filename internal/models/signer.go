// internal/models/signer.go
package models

// Signer roles as recorded on contract signer details.
const (
	SignerRolePrimaryOwner = "Primary Owner"
	SignerRoleCoOwner      = "Co Owner"
)

type SignerDetail struct {
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}
