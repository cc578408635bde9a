package views

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrymomot/salesdesk/handler"
	"github.com/dmitrymomot/salesdesk/internal/catalog"
	"github.com/dmitrymomot/salesdesk/pkg/form"
)

func itoa(n int) string { return strconv.Itoa(n) }

// post and get build datastar action expressions.
func post(url string) string { return "@post('" + url + "')" }
func get(url string) string  { return "@get('" + url + "')" }

// ModalID is the element ID of a form's modal.
func ModalID(formID string) string { return formID + "-modal" }

// FieldErrorID is the element ID of a field's error message.
func FieldErrorID(formID, field string) string { return formID + "-" + field + "-error" }

func formURL(formID, action string) string { return "/forms/" + formID + "/" + action }

func fieldURL(formID, name string) string {
	return formURL(formID, "field") + "?name=" + url.QueryEscape(name)
}

func inputID(formID, name string) string { return formID + "-" + name }

// fieldName is the form key of a field; fieldSignal is its DataStar binding.
func fieldName(name string) string   { return "fields[" + name + "]" }
func fieldSignal(name string) string { return "fields." + name }

// fieldSignals seeds the modal's DataStar signals with the current values.
func fieldSignals(values form.Values) map[string]form.Values {
	return map[string]form.Values{"fields": values}
}

func inputClass(errMsg string) string {
	if errMsg != "" {
		return "w-full rounded-lg border text-sm px-3 py-2 border-red-500"
	}
	return "w-full rounded-lg border text-sm px-3 py-2 border-gray-300"
}

type navItem struct {
	name  string
	href  string
	badge int
}

func navItems(customerCount int) []navItem {
	return []navItem{
		{name: NavDashboard, href: "/"},
		{name: NavCustomer, href: "/customers", badge: customerCount},
	}
}

func accentClass(accent string) string {
	switch accent {
	case "blue":
		return "from-blue-500 to-indigo-600"
	case "purple":
		return "from-purple-500 to-pink-600"
	case "emerald":
		return "from-emerald-500 to-teal-600"
	case "amber":
		return "from-amber-500 to-orange-600"
	}
	return "from-gray-400 to-gray-500"
}

func toastClass(kind string) string {
	switch kind {
	case "success":
		return "bg-green-50 text-green-800 border-green-200"
	case "warning":
		return "bg-yellow-50 text-yellow-800 border-yellow-200"
	case "error":
		return "bg-red-50 text-red-800 border-red-200"
	}
	return "bg-blue-50 text-blue-800 border-blue-200"
}

func errorToastMessage(p handler.ErrorToastParams) string {
	if p.RequestID == "" {
		return p.Message
	}
	return p.Message + " (request " + p.RequestID + ")"
}

func rating(r float64) string { return "★ " + strconv.FormatFloat(r, 'f', 1, 64) }

// tableMeta holds what differs between the sales and customer tables.
type tableMeta struct {
	id          string
	actionBarID string
	endpoint    string // prefix of the table and selection endpoints
	pageURL     string
	columns     []string
}

var (
	salesMeta = tableMeta{
		id:          SalesTableID,
		actionBarID: SalesActionBarID,
		endpoint:    "/sales",
		pageURL:     "/",
		columns:     []string{"Company", "Client Name", "Shipment", "Sale", "Meeting Date", "Meeting Status", "Rating"},
	}
	customersMeta = tableMeta{
		id:          CustomersTableID,
		actionBarID: CustomersActionBarID,
		endpoint:    "/customers",
		pageURL:     "/customers",
		columns:     []string{"Company", "Customer Name", "Contact", "Email", "Address", "Status", "Join Date"},
	}
)

func selectionURL(m tableMeta, action string) string {
	return m.endpoint + "/selection?action=" + action
}

func selectAllAction(m tableMeta) string {
	return "@post('" + selectionURL(m, "") + "' + (el.checked ? 'all' : 'none'))"
}

func selectRowAction(m tableMeta) string {
	return "@post('" + selectionURL(m, "") + "' + (el.checked ? 'one' : 'unone'))"
}

func sizeAction(m tableMeta) string {
	return "@get('" + m.endpoint + "/table?page=1&size=' + el.value)"
}

func jumpAction(m tableMeta) string {
	return "@get('" + m.endpoint + "/table', {contentType: 'form'})"
}

func pageQuery(page, size int) string {
	q := url.Values{}
	q.Set("page", itoa(page))
	q.Set("size", itoa(size))
	return q.Encode()
}

func pageHref(m tableMeta, page, size int) string { return m.pageURL + "?" + pageQuery(page, size) }

func pageAction(m tableMeta, page, size int) string {
	return get(m.endpoint + "/table?" + pageQuery(page, size))
}

func recordsLabel(total int) string { return fmt.Sprintf("%d records", total) }

// pager is the row-type independent part of a table page.
type pager struct {
	number  int
	size    int
	count   int
	total   int
	hasPrev bool
	hasNext bool
	numbers []int
}

func newPager[T any](p catalog.Page[T]) pager {
	return pager{
		number:  p.Number,
		size:    p.Size,
		count:   p.Count,
		total:   p.Total,
		hasPrev: p.HasPrev(),
		hasNext: p.HasNext(),
		numbers: PageNumbers(p.Number, p.Count),
	}
}

// PageNumbers lists the page buttons to show: the first and last page, the
// current page and its neighbours. Zero marks an elided gap.
func PageNumbers(current, count int) []int {
	if count <= 0 {
		return nil
	}
	var out []int
	last := 0
	for n := 1; n <= count; n++ {
		if n != 1 && n != count && (n < current-1 || n > current+1) {
			continue
		}
		if last != 0 && n > last+1 {
			out = append(out, 0)
		}
		out = append(out, n)
		last = n
	}
	return out
}

// SaleStatusClass maps a meeting status to its badge colours.
func SaleStatusClass(status string) string {
	switch status {
	case "Successful":
		return "bg-blue-50 text-blue-800 border border-blue-200"
	case "Cancel":
		return "bg-red-50 text-red-800 border border-red-200"
	case "Hold":
		return "bg-yellow-50 text-yellow-800 border border-yellow-200"
	}
	return "bg-gray-100 text-gray-800"
}

// CustomerStatusClass maps a customer status to its badge colours.
func CustomerStatusClass(status string) string {
	switch status {
	case "Active":
		return "bg-green-50 text-green-800 border border-green-200"
	case "Inactive":
		return "bg-red-50 text-red-800 border border-red-200"
	case "Pending", "Hold":
		return "bg-yellow-50 text-yellow-800 border border-yellow-200"
	}
	return "bg-gray-100 text-gray-800"
}
