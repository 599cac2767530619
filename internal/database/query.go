package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Query assembles a SELECT statement whose filters and limits are
// always sent as positional parameters ($1, $2, ...).
//
// Values never end up in the SQL text. Each Where clause carries a
// single "?" slot that is replaced with the next placeholder number,
// so the placeholder count and the argument list cannot drift apart.
//
//	q := NewQuery("SELECT * FROM properties")
//	q.Where("city ILIKE ?", "%Vancouver%")
//	q.Limit(10)
//	sql, args := q.SQL()
//	// SELECT * FROM properties WHERE city ILIKE $1 LIMIT $2
type Query struct {
	base       string
	conditions []string
	groupBy    []string
	orderBy    string
	limit      string
	args       []any
}

func NewQuery(base string) *Query {
	return &Query{base: strings.TrimSpace(base)}
}

// Arg appends value to the argument list and returns its placeholder.
func (q *Query) Arg(value any) string {
	q.args = append(q.args, value)
	return "$" + strconv.Itoa(len(q.args))
}

// Where adds a condition joined to the others with AND. clause must
// contain exactly one "?" which is bound to value.
func (q *Query) Where(clause string, value any) *Query {
	if strings.Count(clause, "?") != 1 {
		panic(fmt.Sprintf("database: where clause %q must contain exactly one ? slot", clause))
	}
	q.conditions = append(q.conditions, strings.Replace(clause, "?", q.Arg(value), 1))
	return q
}

func (q *Query) GroupBy(columns ...string) *Query {
	q.groupBy = append(q.groupBy, columns...)
	return q
}

func (q *Query) OrderBy(expr string) *Query {
	q.orderBy = expr
	return q
}

// Limit caps the row count. The limit itself is parameterized.
func (q *Query) Limit(n int) *Query {
	q.limit = q.Arg(n)
	return q
}

// SQL renders the statement and returns it with its arguments.
func (q *Query) SQL() (string, []any) {
	var b strings.Builder
	b.WriteString(q.base)

	if len(q.conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(q.conditions, " AND "))
	}
	if len(q.groupBy) > 0 {
		b.WriteString(" GROUP BY ")
		b.WriteString(strings.Join(q.groupBy, ", "))
	}
	if q.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.orderBy)
	}
	if q.limit != "" {
		b.WriteString(" LIMIT ")
		b.WriteString(q.limit)
	}

	args := make([]any, len(q.args))
	copy(args, q.args)
	return b.String(), args
}
