// Package form holds the modal form machinery shared by the sale and customer
// dialogs: field schemas, validation, currency input formatting and a pure
// reducer driving a form from open to submitted or closed.
//
// A Schema lists fields in render order. Validate maps raw values to one
// message per failing field; an empty Errors value means the form is valid.
//
//	errs := form.Validate(form.CustomerSchema(), values)
//	if errs.Valid() {
//	    // persist values
//	}
//
// State changes go through Reduce, which never mutates its input and reports
// whether the step produced a submission or closed the modal. Controller
// wraps Reduce and invokes the OnSubmit and OnClose callbacks.
package form
