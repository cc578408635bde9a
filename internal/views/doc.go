// Package views renders the dashboard's HTML as templ components.
//
// Every element that the server patches after the first render carries a
// stable ID (ModalID, SalesTableID, SalesActionBarID and so on) so that
// DataStar can morph it in place. Interactive elements post to the
// dashboard endpoints through data-on attributes and also work as plain
// forms and links when JavaScript is disabled.
//
// Components are written in the .templ files; the *_templ.go files are
// generated by the templ CLI at the version pinned in go.mod and committed.
package views

//go:generate templ generate -path .
