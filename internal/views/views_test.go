package views_test

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/handler"
	"github.com/dmitrymomot/salesdesk/internal/catalog"
	"github.com/dmitrymomot/salesdesk/internal/views"
	"github.com/dmitrymomot/salesdesk/pkg/environment"
	"github.com/dmitrymomot/salesdesk/pkg/form"
	"github.com/dmitrymomot/salesdesk/pkg/selection"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func fixture(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c
}

func TestSalesPage(t *testing.T) {
	t.Parallel()

	c := fixture(t)
	html := render(t, views.SalesPage(views.SalesPageParams{
		Layout: views.LayoutParams{CustomerCount: 7, Env: environment.Development},
		Stats:  c.SalesCards,
		Table: views.SalesTableParams{
			Page:      catalog.Paginate(c.SalesRows, 1, 10),
			Selection: selection.New(7),
		},
		Form: views.FormParams{Schema: form.SaleSchema(), State: form.State{}},
	}))

	assert.Contains(t, html, "<h1 class=\"text-2xl font-bold text-gray-900\">Sales Dashboard</h1>")
	assert.Contains(t, html, "Add New Sale")
	assert.Contains(t, html, "Monthly Target")
	assert.Contains(t, html, "Microsoft")
	assert.Contains(t, html, `id="sales-table"`)
	assert.Contains(t, html, `id="sales-action-bar"></div>`)
	assert.Contains(t, html, `id="sale-modal"></div>`)
	assert.Contains(t, html, `id="toast-container"`)
	assert.Contains(t, html, `<span class="nav-badge bg-indigo-600 text-white text-xs rounded-full px-2 py-0.5">7</span>`)
	assert.Contains(t, html, "development")
	assert.Equal(t, 7, strings.Count(html, `class="select-row`))
}

func TestLayout_ActiveItemAndProductionBadge(t *testing.T) {
	t.Parallel()

	html := render(t, views.CustomersPage(views.CustomersPageParams{
		Layout: views.LayoutParams{Env: environment.Production},
		Form:   views.FormParams{Schema: form.CustomerSchema()},
	}))

	assert.Contains(t, html, `href="/customers" class="flex items-center justify-between px-4 py-2 rounded-lg bg-indigo-50 text-indigo-600 font-medium" aria-current="page"`)
	assert.NotContains(t, html, "env-badge")
	assert.Contains(t, html, "No records")
}

func TestCustomerTable_EscapesAndBadges(t *testing.T) {
	t.Parallel()

	rows := []catalog.Customer{{ID: 1, Company: "<b>Acme</b>", Status: "Pending"}}
	html := render(t, views.CustomerTable(views.CustomerTableParams{
		Page:      catalog.Paginate(rows, 1, 10),
		Selection: selection.Reduce(selection.New(1), selection.SelectAll{Total: 1}),
	}))

	assert.Contains(t, html, "&lt;b&gt;Acme&lt;/b&gt;")
	assert.NotContains(t, html, "<b>Acme</b>")
	assert.Contains(t, html, views.CustomerStatusClass("Pending"))
	assert.Equal(t, 2, strings.Count(html, " checked"))
}

func TestActionBar(t *testing.T) {
	t.Parallel()

	hidden := render(t, views.SalesActionBar(selection.New(7)))
	assert.Equal(t, `<div id="sales-action-bar"></div>`, hidden)

	sel := selection.Reduce(selection.New(7), selection.SelectOne{})
	sel = selection.Reduce(sel, selection.SelectOne{})
	shown := render(t, views.SalesActionBar(sel))
	assert.Contains(t, shown, "2 Selected")
	assert.Contains(t, shown, "Apply Code")
	assert.Contains(t, shown, "Edit Info")
	assert.Contains(t, shown, `action="/sales/selection?action=none"`)

	customers := render(t, views.CustomersActionBar(selection.Reduce(selection.New(3), selection.SelectAll{Total: 3})))
	assert.Contains(t, customers, "3 Selected")
	assert.Contains(t, customers, "Send Email")
	assert.Contains(t, customers, "Export Data")
}

func TestModal(t *testing.T) {
	t.Parallel()

	schema := form.CustomerSchema()
	state := form.Reduce(schema, form.State{}, form.Opened{}).State
	state = form.Reduce(schema, state, form.Submitted{}).State

	html := render(t, views.Modal(views.FormParams{Schema: schema, State: state}))

	assert.Contains(t, html, `id="customer-modal"`)
	assert.Contains(t, html, `data-signals="`)
	assert.Contains(t, html, "Company name is required")
	assert.Contains(t, html, "Email is required")
	assert.Contains(t, html, `name="fields[email]"`)
	assert.Contains(t, html, `data-bind="fields.email"`)
	assert.Contains(t, html, `action="/forms/customer/submit"`)
	assert.Contains(t, html, `formaction="/forms/customer/close"`)
	assert.Contains(t, html, "<textarea")
	assert.Contains(t, html, "<select")
	assert.Equal(t, 7, strings.Count(html, `aria-invalid="true"`))
}

func TestModal_Closed(t *testing.T) {
	t.Parallel()

	html := render(t, views.Modal(views.FormParams{Schema: form.SaleSchema()}))
	assert.Equal(t, `<div id="sale-modal"></div>`, html)
}

func TestFieldError(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		`<p class="field-error mt-1 text-sm text-red-600" id="sale-sale-error"></p>`,
		render(t, views.FieldError(form.SaleFormID, "sale", "")),
	)
	assert.Contains(t, render(t, views.FieldError("sale", "sale", "Please enter a valid amount")), "Please enter a valid amount")
}

func TestToastAndErrorViews(t *testing.T) {
	t.Parallel()

	toast := render(t, views.ErrorToast(handler.ErrorToastParams{Message: "Bad request", Type: "warning", RequestID: "r1"}))
	assert.Contains(t, toast, "toast-warning")
	assert.Contains(t, toast, "Bad request (request r1)")

	page := render(t, views.ErrorPage(handler.ErrorPageParams{Error: "Not found", StatusCode: 404, RequestID: "r2"}))
	assert.Contains(t, page, "<h1 class=\"text-4xl font-bold text-gray-900\">404</h1>")
	assert.Contains(t, page, "Request ID: r2")
	assert.Contains(t, page, `href="/"`)
}

func TestCustomerTable_Pagination(t *testing.T) {
	t.Parallel()

	rows := make([]catalog.Customer, 25)
	tests := []struct {
		name     string
		page     int
		prev     bool
		next     bool
		pageLink string
	}{
		{"first page", 1, false, true, `href="/customers?page=2&amp;size=10"`},
		{"middle page", 2, true, true, `href="/customers?page=3&amp;size=10"`},
		{"last page", 3, true, false, `href="/customers?page=2&amp;size=10"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			html := render(t, views.CustomerTable(views.CustomerTableParams{
				Page:      catalog.Paginate(rows, tt.page, 10),
				Selection: selection.New(len(rows)),
			}))

			assert.Equal(t, tt.prev, strings.Contains(html, "‹"))
			assert.Equal(t, tt.next, strings.Contains(html, "›"))
			assert.Contains(t, html, tt.pageLink)
			assert.Contains(t, html, "25 records")
			assert.Contains(t, html, `max="3"`)
		})
	}
}

func TestErrorPage_RetryLink(t *testing.T) {
	t.Parallel()

	page := render(t, views.ErrorPage(handler.ErrorPageParams{Error: "Unavailable", StatusCode: 503, RetryURL: "/customers"}))
	assert.Contains(t, page, `class="retry text-indigo-600 hover:underline" href="/customers"`)
	assert.NotContains(t, page, "Request ID")

	page = render(t, views.ErrorPage(handler.ErrorPageParams{Error: "Not found", StatusCode: 404}))
	assert.NotContains(t, page, "Try again")
}

func TestToast_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind, class string
	}{
		{"success", "bg-green-50"},
		{"warning", "bg-yellow-50"},
		{"error", "bg-red-50"},
		{"info", "bg-blue-50"},
		{"unknown", "bg-blue-50"},
	}

	for _, tt := range tests {
		html := render(t, views.Toast(tt.kind, "saved <now>"))
		assert.Contains(t, html, "toast-"+tt.kind, tt.kind)
		assert.Contains(t, html, tt.class, tt.kind)
		assert.Contains(t, html, "saved &lt;now&gt;", tt.kind)
	}
}

func TestPageNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current, count int
		want           []int
	}{
		{1, 1, []int{1}},
		{1, 3, []int{1, 2, 3}},
		{1, 10, []int{1, 2, 0, 10}},
		{5, 10, []int{1, 0, 4, 5, 6, 0, 10}},
		{10, 10, []int{1, 0, 9, 10}},
		{1, 0, nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, views.PageNumbers(tt.current, tt.count), "current=%d count=%d", tt.current, tt.count)
	}
}

func TestStatusClasses(t *testing.T) {
	t.Parallel()

	assert.Contains(t, views.SaleStatusClass("Successful"), "blue")
	assert.Contains(t, views.SaleStatusClass("Cancel"), "red")
	assert.Contains(t, views.SaleStatusClass("Hold"), "yellow")
	assert.Contains(t, views.SaleStatusClass("Unknown"), "gray")
	assert.Contains(t, views.CustomerStatusClass("Active"), "green")
	assert.Contains(t, views.CustomerStatusClass("Inactive"), "red")
}
