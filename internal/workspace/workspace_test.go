package workspace_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/internal/catalog"
	"github.com/dmitrymomot/salesdesk/internal/workspace"
	"github.com/dmitrymomot/salesdesk/pkg/form"
)

func TestNew(t *testing.T) {
	t.Parallel()

	ws := workspace.New()
	assert.False(t, ws.SaleForm.Open)
	assert.False(t, ws.CustomerForm.Open)
	assert.Equal(t, form.SaleSchema().Defaults(), ws.SaleForm.Values)
	assert.Equal(t, 1, ws.Sales.Page)
	assert.Equal(t, catalog.DefaultPageSize, ws.Customers.Size)
	assert.Zero(t, ws.Sales.Selection.Selected)
}

func TestWorkspace_Form(t *testing.T) {
	t.Parallel()

	ws := workspace.New()

	s, err := ws.Form(form.SaleFormID)
	require.NoError(t, err)
	s.Open = true
	assert.True(t, ws.SaleForm.Open)

	c, err := ws.Form(form.CustomerFormID)
	require.NoError(t, err)
	c.Values["email"] = "a@b.co"
	assert.Equal(t, "a@b.co", ws.CustomerForm.Values["email"])

	_, err = ws.Form("invoice")
	assert.ErrorIs(t, err, form.ErrUnknownForm)
}

func TestWorkspace_Table(t *testing.T) {
	t.Parallel()

	ws := workspace.New()

	tbl, err := ws.Table(workspace.CustomersTable)
	require.NoError(t, err)
	tbl.Page = 3
	assert.Equal(t, 3, ws.Customers.Page)

	_, err = ws.Table("orders")
	assert.ErrorIs(t, err, workspace.ErrUnknownTable)
}

func TestWorkspace_CloneIsDeep(t *testing.T) {
	t.Parallel()

	ws := workspace.New()
	ws.SaleForm.Values["companyName"] = "Acme"
	ws.SaleForm.Errors["sale"] = "Please enter a valid amount"

	cp := ws.Clone()
	assert.Empty(t, cmp.Diff(ws, cp))

	cp.SaleForm.Values["companyName"] = "Globex"
	delete(cp.SaleForm.Errors, "sale")

	assert.Equal(t, "Acme", ws.SaleForm.Values["companyName"])
	assert.Contains(t, ws.SaleForm.Errors, "sale")
}
