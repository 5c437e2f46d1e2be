package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoUser is the SelectedUserID value that disables the owner filter.
const NoUser = 0

// State is the transient view state. Every combination is valid.
type State struct {
	SelectedUserID int    `json:"selectedUserId"`
	Query          string `json:"query"`
}

// Filter keeps the rows matching s, in their original order.
// The result is never nil.
func Filter(rows []Row, s State) []Row {
	m := newMatcher(s)
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if m.match(row) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

type matcher struct {
	userID int
	query  string
	lower  cases.Caser
}

func newMatcher(s State) *matcher {
	lower := cases.Lower(language.Und)
	return &matcher{
		userID: s.SelectedUserID,
		query:  lower.String(s.Query),
		lower:  lower,
	}
}

func (m *matcher) match(row Row) bool {
	if m.userID != NoUser && (row.User == nil || row.User.ID != m.userID) {
		return false
	}
	if m.query == "" {
		return true
	}
	return strings.Contains(m.lower.String(row.Name), m.query)
}
