package storage

import (
	"fmt"
	"strings"
)

// Filter restricts entry and habit reads. Zero-valued fields do not filter;
// set fields combine with AND. Start and End are inclusive YYYY-MM-DD dates.
type Filter struct {
	User  string
	Start string
	End   string
	// Last keeps only the most recent n rows (after filtering) when positive
	Last int
}

// Placeholder renders the n-th (1-based) bind parameter for a dialect
type Placeholder func(n int) string

// QuestionMark is the SQLite placeholder style
func QuestionMark(int) string { return "?" }

// Dollar is the PostgreSQL placeholder style
func Dollar(n int) string { return fmt.Sprintf("$%d", n) }

// Where builds a WHERE clause (including the keyword, or empty) and its args
func (f Filter) Where(ph Placeholder) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, ph(len(args))))
	}

	if f.User != "" {
		add("user_name = %s", f.User)
	}
	if f.Start != "" {
		add("entry_date >= %s", f.Start)
	}
	if f.End != "" {
		add("entry_date <= %s", f.End)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// TailOf trims rows to the filter's Last limit
func TailOf[T any](rows []T, f Filter) []T {
	if f.Last <= 0 || len(rows) <= f.Last {
		return rows
	}
	return rows[len(rows)-f.Last:]
}
