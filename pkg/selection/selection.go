// Package selection counts the checked rows of a displayed table.
//
// State is updated through Reduce with one of the Action values below. The
// count never leaves the range [0, Total]: transitions that would overshoot
// are clamped instead of failing.
package selection

import "github.com/dmitrymomot/salesdesk/pkg/sanitizer"

// State is the selection of one table.
type State struct {
	Selected int `json:"selected"`
	Total    int `json:"total"`
}

// Active reports whether the floating action bar should be shown.
func (s State) Active() bool {
	return s.Selected > 0
}

// AllSelected reports whether every displayed row is checked.
func (s State) AllSelected() bool {
	return s.Total > 0 && s.Selected == s.Total
}

// Action is an input event applied by Reduce.
type Action interface {
	action()
}

type (
	// SelectAll checks every row; Total is the number of rows displayed.
	SelectAll struct{ Total int }
	// DeselectAll unchecks every row.
	DeselectAll struct{}
	SelectOne   struct{}
	DeselectOne struct{}
	// RowsReplaced resets the count when a new page of rows is shown.
	RowsReplaced struct{ Total int }
)

func (SelectAll) action()    {}
func (DeselectAll) action()  {}
func (SelectOne) action()    {}
func (DeselectOne) action()  {}
func (RowsReplaced) action() {}

// New returns an empty selection over total rows.
func New(total int) State {
	return State{Total: sanitizer.ClampMin(total, 0)}
}

// Reduce applies a to s.
func Reduce(s State, a Action) State {
	s.Total = sanitizer.ClampMin(s.Total, 0)

	switch a := a.(type) {
	case SelectAll:
		s.Total = sanitizer.ClampMin(a.Total, 0)
		s.Selected = s.Total
	case DeselectAll:
		s.Selected = 0
	case SelectOne:
		s.Selected++
	case DeselectOne:
		s.Selected--
	case RowsReplaced:
		return New(a.Total)
	}

	s.Selected = sanitizer.Clamp(s.Selected, 0, s.Total)
	return s
}
