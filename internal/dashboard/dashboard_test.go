package dashboard_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/internal/catalog"
	"github.com/dmitrymomot/salesdesk/internal/dashboard"
	"github.com/dmitrymomot/salesdesk/internal/workspace"
	"github.com/dmitrymomot/salesdesk/pkg/cookie"
	"github.com/dmitrymomot/salesdesk/pkg/environment"
	"github.com/dmitrymomot/salesdesk/pkg/logger"
)

type testApp struct {
	router  http.Handler
	store   *workspace.MemoryStore
	visitor string
	cookie  *http.Cookie
	logs    *bytes.Buffer
}

func newApp(t *testing.T) *testApp {
	t.Helper()

	source, err := catalog.Load()
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(logs), logger.WithTextFormatter(), logger.WithLevel(slog.LevelDebug))
	store := workspace.NewMemoryStore(16, 0)
	svc := dashboard.NewService(source, store, log)
	cookies, err := cookie.New([]string{"dashboard-test-secret-0123456789abcdef"})
	require.NoError(t, err)

	visitor := uuid.NewString()
	rec := httptest.NewRecorder()
	cookies.SetSigned(rec, workspace.DefaultCookieName, visitor)

	return &testApp{
		router: dashboard.Router(svc, dashboard.RouterOptions{
			Env:     environment.Development,
			Cookies: cookies,
			Logger:  log,
		}),
		store:   store,
		visitor: visitor,
		cookie:  rec.Result().Cookies()[0],
		logs:    logs,
	}
}

func (a *testApp) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	req.AddCookie(a.cookie)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// ds issues a DataStar request with signals as the JSON body.
func (a *testApp) ds(t *testing.T, method, target, signals string) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if signals != "" {
		body = strings.NewReader(signals)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Datastar-Request", "true")
	req.Header.Set("Content-Type", "application/json")
	return a.do(t, req)
}

func (a *testApp) workspace(t *testing.T) workspace.Workspace {
	t.Helper()
	ws, err := a.store.Load(context.Background(), a.visitor)
	require.NoError(t, err)
	return ws
}

func TestPages(t *testing.T) {
	t.Parallel()

	app := newApp(t)

	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Sales Dashboard")
	assert.Contains(t, body, "Add New Sale")
	assert.Contains(t, body, "Avg. Monthly Sales")
	assert.Contains(t, body, "Microsoft")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = app.do(t, httptest.NewRequest(http.MethodGet, "/customers", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "Add New Customer")
	assert.Contains(t, body, "Customer Value")
	assert.Contains(t, body, "rtaylor@netflix.com")
}

func TestPage_IssuesVisitorCookie(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, workspace.DefaultCookieName, cookies[0].Name)
}

func TestPage_UnsignedCookieCannotReachWorkspace(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	app.ds(t, http.MethodPost, "/sales/selection?action=all", "{}")
	require.Equal(t, 7, app.workspace(t).Sales.Selection.Selected)

	req := httptest.NewRequest(http.MethodPost, "/sales/selection?action=none", strings.NewReader("{}"))
	req.Header.Set("Datastar-Request", "true")
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: workspace.DefaultCookieName, Value: app.visitor})
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, app.cookie.Value, cookies[0].Value)
	assert.Equal(t, 7, app.workspace(t).Sales.Selection.Selected)
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/orders", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")
}

func TestHealth(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, "ALIVE", rec.Body.String())

	rec = app.do(t, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, "READY", rec.Body.String())
}

func TestSelection(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	app.do(t, httptest.NewRequest(http.MethodGet, "/", nil))

	rec := app.ds(t, http.MethodPost, "/sales/selection?action=all", "{}")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "datastar-patch-elements")
	assert.Contains(t, rec.Body.String(), "7 Selected")
	assert.Contains(t, rec.Body.String(), `id="sales-table"`)
	assert.Equal(t, 7, app.workspace(t).Sales.Selection.Selected)

	rec = app.ds(t, http.MethodPost, "/sales/selection?action=one", "{}")
	assert.Contains(t, rec.Body.String(), "7 Selected")
	assert.NotContains(t, rec.Body.String(), `id="sales-table"`)

	app.ds(t, http.MethodPost, "/sales/selection?action=unone", "{}")
	app.ds(t, http.MethodPost, "/sales/selection?action=unone", "{}")
	assert.Equal(t, 5, app.workspace(t).Sales.Selection.Selected)

	rec = app.ds(t, http.MethodPost, "/sales/selection?action=none", "{}")
	assert.Contains(t, rec.Body.String(), `<div id="sales-action-bar"></div>`)

	app.ds(t, http.MethodPost, "/sales/selection?action=unone", "{}")
	assert.Zero(t, app.workspace(t).Sales.Selection.Selected)
	assert.Zero(t, app.workspace(t).Customers.Selection.Selected)
}

func TestSelection_UnknownAction(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	rec := app.ds(t, http.MethodPost, "/customers/selection?action=invert", "{}")
	assert.Contains(t, rec.Body.String(), "bad_request")
}

func TestSelection_WithoutJavaScriptRedirects(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	rec := app.do(t, httptest.NewRequest(http.MethodPost, "/customers/selection?action=all", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/customers", rec.Header().Get("Location"))
	assert.Equal(t, 7, app.workspace(t).Customers.Selection.Selected)
}

func TestRepageResetsSelection(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	app.ds(t, http.MethodPost, "/sales/selection?action=one", "{}")
	app.ds(t, http.MethodPost, "/sales/selection?action=one", "{}")
	require.Equal(t, 2, app.workspace(t).Sales.Selection.Selected)

	rec := app.ds(t, http.MethodGet, "/sales/table?page=1&size=25", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="sales-table"`)
	assert.Contains(t, rec.Body.String(), `<div id="sales-action-bar"></div>`)

	ws := app.workspace(t)
	assert.Zero(t, ws.Sales.Selection.Selected)
	assert.Equal(t, 7, ws.Sales.Selection.Total)
	assert.Equal(t, 25, ws.Sales.Size)
}

func TestRepage_ClampsAndFallsBack(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/customers/table?page=9&size=13", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Add New Customer")

	ws := app.workspace(t)
	assert.Equal(t, 1, ws.Customers.Page)
	assert.Equal(t, catalog.DefaultPageSize, ws.Customers.Size)
}

func TestForm_OpenEditCloseDiscards(t *testing.T) {
	t.Parallel()

	app := newApp(t)

	rec := app.ds(t, http.MethodPost, "/forms/sale/open", "{}")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="sale-modal"`)
	assert.Contains(t, rec.Body.String(), "Save Sale")
	assert.True(t, app.workspace(t).SaleForm.Open)

	rec = app.ds(t, http.MethodPost, "/forms/sale/field?name=sale", `{"fields":{"sale":"12000"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "datastar-patch-signals")
	assert.Contains(t, rec.Body.String(), "$12,000")
	assert.Contains(t, rec.Body.String(), `id="sale-sale-error"`)
	assert.Equal(t, "$12,000", app.workspace(t).SaleForm.Values["sale"])

	rec = app.ds(t, http.MethodPost, "/forms/sale/close", "{}")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<div id="sale-modal"></div>`)
	assert.Contains(t, rec.Body.String(), "datastar-patch-signals")

	app.ds(t, http.MethodPost, "/forms/sale/open", "{}")
	ws := app.workspace(t)
	assert.True(t, ws.SaleForm.Open)
	assert.Empty(t, ws.SaleForm.Values["sale"])
}

func TestForm_FieldChangeClearsError(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	app.ds(t, http.MethodPost, "/forms/customer/open", "{}")
	app.ds(t, http.MethodPost, "/forms/customer/submit", `{"fields":{}}`)
	require.Contains(t, app.workspace(t).CustomerForm.Errors, "email")

	rec := app.ds(t, http.MethodPost, "/forms/customer/field?name=email", `{"fields":{"email":"not-an-email"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "datastar-patch-signals")

	ws := app.workspace(t)
	assert.NotContains(t, ws.CustomerForm.Errors, "email")
	assert.Len(t, ws.CustomerForm.Errors, 6)
}

func TestForm_SubmitEmptyCustomer(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	app.ds(t, http.MethodPost, "/forms/customer/open", "{}")

	rec := app.ds(t, http.MethodPost, "/forms/customer/submit", `{"fields":{}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Company name is required")
	assert.Contains(t, body, "Join date is required")

	ws := app.workspace(t)
	assert.True(t, ws.CustomerForm.Open)
	assert.Len(t, ws.CustomerForm.Errors, 7)
	assert.NotContains(t, app.logs.String(), "customer submitted")
}

func TestForm_SubmitValidSale(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	app.ds(t, http.MethodPost, "/forms/sale/open", "{}")

	rec := app.ds(t, http.MethodPost, "/forms/sale/submit", `{"fields":{
		"companyName":"Acme","customerName":"Jane Doe","sale":"12000",
		"meetingStatus":"Hold","meetingTime":"2025-05-12T10:00","remark":"<b>call back</b>"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<div id="sale-modal"></div>`)
	assert.Contains(t, body, "Sale added successfully")
	assert.Contains(t, body, "datastar-patch-signals")

	ws := app.workspace(t)
	assert.False(t, ws.SaleForm.Open)
	assert.Empty(t, ws.SaleForm.Errors)
	assert.Empty(t, ws.SaleForm.Values["companyName"])

	logs := app.logs.String()
	assert.Equal(t, 1, strings.Count(logs, "sale submitted"))
	assert.Equal(t, 1, strings.Count(logs, "modal closed"))
	assert.Contains(t, logs, "$12,000")
	assert.NotContains(t, logs, "<b>")
}

func TestForm_ValuesKeepMarkupCharacters(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	app.ds(t, http.MethodPost, "/forms/customer/open", "{}")

	rec := app.ds(t, http.MethodPost, "/forms/customer/submit", `{"fields":{
		"companyName":"<b></b>","customerName":"A<B Corp","contactNumber":"+1 555 0100",
		"email":"a<b@c.de","status":"Active","address":"1 Main St"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "A&lt;B Corp")
	assert.NotContains(t, rec.Body.String(), "A<B Corp")

	ws := app.workspace(t)
	assert.True(t, ws.CustomerForm.Open)
	assert.Equal(t, map[string]string{"joinDate": "Join date is required"}, map[string]string(ws.CustomerForm.Errors))
	assert.Equal(t, "<b></b>", ws.CustomerForm.Values["companyName"])
	assert.Equal(t, "A<B Corp", ws.CustomerForm.Values["customerName"])
	assert.Equal(t, "a<b@c.de", ws.CustomerForm.Values["email"])

	rec = app.ds(t, http.MethodPost, "/forms/customer/field?name=customerName", `{"fields":{"customerName":"A<B Corp"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "datastar-patch-signals")

	rec = app.ds(t, http.MethodPost, "/forms/customer/submit", `{"fields":{"joinDate":"2025-05-12"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Customer added successfully")
	assert.Contains(t, app.logs.String(), "customer submitted")
	assert.Contains(t, app.logs.String(), "A<B Corp")
}

func TestForm_SubmitWithoutJavaScript(t *testing.T) {
	t.Parallel()

	app := newApp(t)

	rec := app.do(t, httptest.NewRequest(http.MethodPost, "/forms/customer/open", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	values := url.Values{}
	values.Set("fields[companyName]", "Acme")
	req := httptest.NewRequest(http.MethodPost, "/forms/customer/submit", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = app.do(t, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/customers", rec.Header().Get("Location"))

	ws := app.workspace(t)
	assert.True(t, ws.CustomerForm.Open)
	assert.Equal(t, "Acme", ws.CustomerForm.Values["companyName"])
	assert.Len(t, ws.CustomerForm.Errors, 6)

	rec = app.do(t, httptest.NewRequest(http.MethodGet, "/customers", nil))
	assert.Contains(t, rec.Body.String(), "Customer name is required")
	assert.Contains(t, rec.Body.String(), `value="Acme"`)
}

func TestForm_Errors(t *testing.T) {
	t.Parallel()

	app := newApp(t)

	rec := app.ds(t, http.MethodPost, "/forms/invoice/open", "{}")
	assert.Contains(t, rec.Body.String(), "not_found")

	rec = app.ds(t, http.MethodPost, "/forms/sale/field?name=discount", `{"fields":{"discount":"5"}}`)
	assert.Contains(t, rec.Body.String(), "bad_request")

	rec = app.do(t, httptest.NewRequest(http.MethodPost, "/forms/sale/field?name=sale", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForm_FieldChangeOnClosedFormIsIgnored(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	rec := app.ds(t, http.MethodPost, "/forms/sale/field?name=companyName", `{"fields":{"companyName":"Acme"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	ws := app.workspace(t)
	assert.False(t, ws.SaleForm.Open)
	assert.Empty(t, ws.SaleForm.Values["companyName"])
}
