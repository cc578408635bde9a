// Package environment names the deployment stage and carries it through
// request contexts. Views use it to show a development badge and the logger
// factory uses it to pick text or JSON output.
package environment
