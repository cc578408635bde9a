// Package catalog serves the dashboard's sample sales and customers from an
// embedded YAML fixture, and pages them for the tables.
package catalog
