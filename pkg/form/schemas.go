package form

import (
	"github.com/dmitrymomot/salesdesk/pkg/sanitizer"
)

const (
	SaleFormID     = "sale"
	CustomerFormID = "customer"
)

// cleanText folds the value onto one line. Markup characters are kept: a
// company may well be called "A<B Corp".
var cleanText = sanitizer.SingleLine

// cleanNote drops markup but keeps line breaks.
var cleanNote = sanitizer.Compose(sanitizer.StripHTML, sanitizer.Trim)

// SaleSchema is the "New Sale" dialog.
func SaleSchema() Schema {
	return Schema{
		ID:          SaleFormID,
		Title:       "New Sale",
		SubmitLabel: "Save Sale",
		Fields: []Field{
			{
				Name: "companyName", Label: "Company", ErrorLabel: "Company name",
				Requirement: Required, Input: InputText, Placeholder: "Company name",
				Clean: cleanText,
			},
			{
				Name: "customerName", Label: "Customer", ErrorLabel: "Customer name",
				Requirement: Required, Input: InputText, Placeholder: "Customer name",
				Clean: cleanText,
			},
			{
				Name: "sale", Label: "Sale Amount", ErrorLabel: "Sale amount",
				Requirement: RequiredAmount, Input: InputText, Placeholder: "$10,000",
				Format: FormatCurrencyInput,
			},
			{
				Name: "meetingStatus", Label: "Status", ErrorLabel: "Meeting status",
				Requirement: Required, Input: InputSelect,
				Options: []Option{
					{Value: "", Label: "Select Status"},
					{Value: "Hold", Label: "Hold"},
					{Value: "Successful", Label: "Success"},
					{Value: "Cancel", Label: "Cancel"},
				},
			},
			{
				Name: "meetingTime", Label: "Meeting Time", ErrorLabel: "Meeting time",
				Requirement: Required, Input: InputDateTimeLocal, Wide: true,
			},
			{
				Name: "remark", Label: "Remark (Optional)", ErrorLabel: "Remark",
				Requirement: Optional, Input: InputTextarea, Placeholder: "Additional notes...", Wide: true,
				Clean: cleanNote,
			},
		},
	}
}

// CustomerSchema is the "New Customer" dialog.
func CustomerSchema() Schema {
	return Schema{
		ID:          CustomerFormID,
		Title:       "New Customer",
		SubmitLabel: "Save Customer",
		Fields: []Field{
			{
				Name: "companyName", Label: "Company", ErrorLabel: "Company name",
				Requirement: Required, Input: InputText, Placeholder: "Company name",
				Clean: cleanText,
			},
			{
				Name: "customerName", Label: "Customer", ErrorLabel: "Customer name",
				Requirement: Required, Input: InputText, Placeholder: "Customer name",
				Clean: cleanText,
			},
			{
				Name: "contactNumber", Label: "Contact", ErrorLabel: "Contact number",
				Requirement: Required, Input: InputTel, Placeholder: "Phone number",
				Clean: cleanText,
			},
			{
				Name: "email", Label: "Email", ErrorLabel: "Email",
				Requirement: RequiredEmail, Input: InputEmail, Placeholder: "Email address",
				Clean: sanitizer.Trim,
			},
			{
				Name: "status", Label: "Status", ErrorLabel: "Status",
				Requirement: Required, Input: InputSelect,
				Options: []Option{
					{Value: "", Label: "Select Status"},
					{Value: "Active", Label: "Active"},
					{Value: "Hold", Label: "Hold"},
					{Value: "Inactive", Label: "Inactive"},
				},
			},
			{
				Name: "joinDate", Label: "Join Date", ErrorLabel: "Join date",
				Requirement: Required, Input: InputDate,
			},
			{
				Name: "address", Label: "Address", ErrorLabel: "Address",
				Requirement: Required, Input: InputTextarea, Placeholder: "Full address", Wide: true,
				Clean: cleanText,
			},
		},
	}
}

// Lookup returns the schema registered under id.
func Lookup(id string) (Schema, error) {
	switch id {
	case SaleFormID:
		return SaleSchema(), nil
	case CustomerFormID:
		return CustomerSchema(), nil
	default:
		return Schema{}, ErrUnknownForm
	}
}
