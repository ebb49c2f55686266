// Package listing implements the cross-cutting list behavior shared by all
// collection endpoints: limit/offset pagination, whitelisted ordering and a
// simple ILIKE search, applied to a caller-supplied SQL query.
package listing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type Params struct {
	Limit    int
	Offset   int
	Ordering string // column name, "-" prefix for descending
	Search   string
}

// Options describes how a particular query may be searched and ordered.
type Options struct {
	// SearchColumns are matched against Params.Search with ILIKE.
	SearchColumns []string
	// OrderColumns whitelists query-string names to SQL expressions.
	OrderColumns map[string]string
	// DefaultOrder is the ORDER BY clause used when no (valid) ordering is
	// requested, e.g. "id DESC".
	DefaultOrder string
	// HasWhere must be set when the base query already carries a WHERE
	// clause, so search conditions are appended with AND.
	HasWhere bool
}

func FromContext(c *gin.Context) Params {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	return Params{
		Limit:    limit,
		Offset:   offset,
		Ordering: c.Query("ordering"),
		Search:   c.Query("search"),
	}
}

// Apply appends search, ordering and pagination to query and returns the
// extended query and argument list. The base query must not end with ORDER
// BY, LIMIT or OFFSET clauses of its own.
func (p Params) Apply(query string, args []interface{}, opts Options) (string, []interface{}) {
	if p.Search != "" && len(opts.SearchColumns) > 0 {
		args = append(args, "%"+p.Search+"%")
		placeholder := fmt.Sprintf("$%d", len(args))

		conds := make([]string, 0, len(opts.SearchColumns))
		for _, col := range opts.SearchColumns {
			conds = append(conds, col+" ILIKE "+placeholder)
		}

		connector := " WHERE ("
		if opts.HasWhere {
			connector = " AND ("
		}
		query += connector + strings.Join(conds, " OR ") + ")"
	}

	query += " ORDER BY " + p.orderClause(opts)

	limit := p.Limit
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	return query, args
}

func (p Params) orderClause(opts Options) string {
	name := p.Ordering
	desc := strings.HasPrefix(name, "-")
	name = strings.TrimPrefix(name, "-")

	col, ok := opts.OrderColumns[name]
	if name == "" || !ok {
		if opts.DefaultOrder != "" {
			return opts.DefaultOrder
		}
		return "id DESC"
	}

	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}
