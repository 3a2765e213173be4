package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericObject_Signer(t *testing.T) {
	g := &GenericObject{
		SignerDetails: []SignerDetail{
			{Role: SignerRolePrimaryOwner, FullName: "Jane Doe", Email: "jane@x.com"},
		},
	}

	primary := g.PrimaryOwner()
	require.NotNil(t, primary)
	assert.Equal(t, "Jane Doe", primary.FullName)
	assert.Nil(t, g.CoOwner())
	assert.Nil(t, g.Signer("Witness"))
}

func TestGenericObject_NilSafeAccessors(t *testing.T) {
	var g *GenericObject

	assert.Nil(t, g.PrimaryOwner())
	assert.Nil(t, g.ProjectGrandTotal())
	assert.Nil(t, g.FinanceProduct())
	assert.Nil(t, g.InstallAddress())

	g = &GenericObject{Quote: &Quote{ID: "q-1"}}
	assert.Nil(t, g.ProjectGrandTotal())

	g.Quote.QuoteCostBuildup = &QuoteCostBuildup{ProjectGrandTotal: &ProjectGrandTotal{NetCost: 12345.678}}
	require.NotNil(t, g.ProjectGrandTotal())
	assert.Equal(t, 12345.678, g.ProjectGrandTotal().NetCost)
}

func TestGenericObject_InstallAddress(t *testing.T) {
	g := &GenericObject{
		Contact: &Contact{Address: Address{Street: "1 Mail St", City: "Fresno"}},
	}
	assert.Equal(t, "1 Mail St", g.InstallAddress().Street)

	g.Opportunity = &Opportunity{InstallAddress: Address{Street: "9 Site Rd", City: "Clovis"}}
	assert.Equal(t, "9 Site Rd", g.InstallAddress().Street)
}

func TestContact_FullName(t *testing.T) {
	var nilContact *Contact
	assert.Equal(t, "", nilContact.FullName())
	assert.Equal(t, "Jane Doe", (&Contact{FirstName: "Jane", LastName: "Doe"}).FullName())
	assert.Equal(t, "Doe", (&Contact{LastName: "Doe"}).FullName())
	assert.Equal(t, "Jane", (&Contact{FirstName: "Jane"}).FullName())
}
