package workspace

import (
	"github.com/dmitrymomot/salesdesk/internal/catalog"
	"github.com/dmitrymomot/salesdesk/pkg/form"
	"github.com/dmitrymomot/salesdesk/pkg/selection"
)

// Table names.
const (
	SalesTable     = "sales"
	CustomersTable = "customers"
)

// TableState is the view state of one data table.
type TableState struct {
	Page      int             `json:"page"`
	Size      int             `json:"size"`
	Selection selection.State `json:"selection"`
}

// Workspace is everything the dashboard remembers about one visitor.
type Workspace struct {
	SaleForm     form.State `json:"sale_form"`
	CustomerForm form.State `json:"customer_form"`
	Sales        TableState `json:"sales"`
	Customers    TableState `json:"customers"`
}

// New returns a workspace with both modals closed and both tables on their
// first page.
func New() Workspace {
	return Workspace{
		SaleForm:     closedForm(form.SaleSchema()),
		CustomerForm: closedForm(form.CustomerSchema()),
		Sales:        TableState{Page: 1, Size: catalog.DefaultPageSize},
		Customers:    TableState{Page: 1, Size: catalog.DefaultPageSize},
	}
}

func closedForm(s form.Schema) form.State {
	return form.State{Values: s.Defaults(), Errors: form.Errors{}}
}

// Form returns the state of the modal with the given form ID.
func (w *Workspace) Form(id string) (*form.State, error) {
	switch id {
	case form.SaleFormID:
		return &w.SaleForm, nil
	case form.CustomerFormID:
		return &w.CustomerForm, nil
	}
	return nil, form.ErrUnknownForm
}

// Table returns the view state of the named table.
func (w *Workspace) Table(name string) (*TableState, error) {
	switch name {
	case SalesTable:
		return &w.Sales, nil
	case CustomersTable:
		return &w.Customers, nil
	}
	return nil, ErrUnknownTable
}

// Clone returns a deep copy of w.
func (w Workspace) Clone() Workspace {
	w.SaleForm = cloneForm(w.SaleForm)
	w.CustomerForm = cloneForm(w.CustomerForm)
	return w
}

func cloneForm(s form.State) form.State {
	s.Values = s.Values.Clone()
	s.Errors = s.Errors.Clone()
	return s
}
