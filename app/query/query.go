// Package query turns raw URL query parameters into a filter/sort/projection/
// pagination plan and executes it against a named GORM collection. The plan is
// a list of tagged predicates rather than spliced query fragments, so only the
// Apply step knows about SQL.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 25
	defaultSort  = "created_at DESC"
)

// Reserved control keys stripped before filter translation.
var reserved = map[string]bool{"select": true, "sort": true, "page": true, "limit": true, "expand": true}

type Op string

const (
	OpEq  Op = "eq"
	OpGt  Op = "gt"
	OpGte Op = "gte"
	OpLt  Op = "lt"
	OpLte Op = "lte"
	OpIn  Op = "in"
)

var comparisons = map[Op]string{OpGt: ">", OpGte: ">=", OpLt: "<", OpLte: "<="}

type Predicate struct {
	Column string
	Op     Op
	Value  any
	Values []any // OpIn only
}

type SortKey struct {
	Column string
	Desc   bool
}

// Resource describes a queryable collection: the model to count against and
// the map from exposed field names to database columns. Fields missing from
// the map are silently ignored, which is also what keeps column names out of
// attacker control.
type Resource struct {
	Model   any
	Columns map[string]string
}

type Plan struct {
	Predicates []Predicate
	Select     []string
	Sort       []SortKey
	Page       int
	Limit      int
	Expand     []string
}

type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type Pagination struct {
	Prev *Page `json:"prev,omitempty"`
	Next *Page `json:"next,omitempty"`
}

type Result struct {
	Count      int64
	Pagination Pagination
}

// Parse builds a Plan from raw query values. Keys use either plain form
// (careers=Web, equality) or bracket form (averageCost[lte]=10000); in
// operators take a comma-separated list. Unknown fields and operators are
// dropped rather than rejected.
func Parse(values url.Values, res Resource) Plan {
	p := Plan{Page: 1, Limit: DefaultLimit}

	for key, vals := range values {
		if reserved[key] {
			continue
		}
		field, op := splitKey(key)
		col, ok := res.Columns[field]
		if !ok {
			continue
		}
		for _, raw := range vals {
			switch op {
			case OpIn:
				parts := strings.Split(raw, ",")
				in := make([]any, 0, len(parts))
				for _, part := range parts {
					in = append(in, coerce(part))
				}
				p.Predicates = append(p.Predicates, Predicate{Column: col, Op: OpIn, Values: in})
			default:
				p.Predicates = append(p.Predicates, Predicate{Column: col, Op: op, Value: coerce(raw)})
			}
		}
	}

	if sel := values.Get("select"); sel != "" {
		seen := map[string]bool{"id": true}
		p.Select = []string{"id"}
		for _, field := range strings.Split(sel, ",") {
			col, ok := res.Columns[strings.TrimSpace(field)]
			if ok && !seen[col] {
				p.Select = append(p.Select, col)
				seen[col] = true
			}
		}
	}

	for _, field := range strings.Split(values.Get("sort"), ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		desc := strings.HasPrefix(field, "-")
		col, ok := res.Columns[strings.TrimPrefix(field, "-")]
		if ok {
			p.Sort = append(p.Sort, SortKey{Column: col, Desc: desc})
		}
	}

	if n, err := strconv.Atoi(values.Get("page")); err == nil && n > 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(values.Get("limit")); err == nil && n > 0 {
		p.Limit = n
	}

	for _, rel := range strings.Split(values.Get("expand"), ",") {
		if rel = strings.TrimSpace(rel); rel != "" {
			p.Expand = append(p.Expand, rel)
		}
	}
	return p
}

// splitKey separates "field[op]" into its parts; plain keys are equality.
func splitKey(key string) (string, Op) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return key, OpEq
	}
	op := Op(key[open+1 : len(key)-1])
	switch op {
	case OpGt, OpGte, OpLt, OpLte, OpIn:
		return key[:open], op
	}
	return key, OpEq
}

// coerce picks a typed value so numeric comparisons bind as numbers rather
// than strings.
func coerce(raw string) any {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

// Filter applies only the predicate part of the plan, for callers that need
// the pre-pagination match set (the count round trip).
func (p Plan) Filter(db *gorm.DB) *gorm.DB {
	for _, pred := range p.Predicates {
		switch pred.Op {
		case OpIn:
			db = db.Where(fmt.Sprintf("%s IN ?", pred.Column), pred.Values)
		case OpEq:
			db = db.Where(fmt.Sprintf("%s = ?", pred.Column), pred.Value)
		default:
			db = db.Where(fmt.Sprintf("%s %s ?", pred.Column, comparisons[pred.Op]), pred.Value)
		}
	}
	return db
}

// Apply extends Filter with projection, ordering and the pagination window.
// Ordering is always made deterministic by an id tiebreak.
func (p Plan) Apply(db *gorm.DB) *gorm.DB {
	db = p.Filter(db)
	if len(p.Select) > 0 {
		db = db.Select(p.Select)
	}
	for _, key := range p.Sort {
		dir := "ASC"
		if key.Desc {
			dir = "DESC"
		}
		db = db.Order(fmt.Sprintf("%s %s", key.Column, dir))
	}
	if len(p.Sort) == 0 {
		db = db.Order(defaultSort)
	}
	db = db.Order("id ASC")
	return db.Offset((p.Page - 1) * p.Limit).Limit(p.Limit)
}

// Execute runs the plan: one count over the filtered set, then the paged
// fetch into dest. expandable maps exposed relation names to GORM preloads
// for the optional inline expansion.
func Execute(db *gorm.DB, res Resource, values url.Values, dest any, expandable map[string]string) (*Result, error) {
	plan := Parse(values, res)

	var total int64
	if err := plan.Filter(db.Model(res.Model)).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}

	q := plan.Apply(db.Model(res.Model))
	for _, rel := range plan.Expand {
		if preload, ok := expandable[rel]; ok {
			q = q.Preload(preload)
		}
	}
	if err := q.Find(dest).Error; err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}

	result := &Result{Count: total}
	if plan.Page > 1 {
		result.Pagination.Prev = &Page{Page: plan.Page - 1, Limit: plan.Limit}
	}
	if int64(plan.Page*plan.Limit) < total {
		result.Pagination.Next = &Page{Page: plan.Page + 1, Limit: plan.Limit}
	}
	return result, nil
}
