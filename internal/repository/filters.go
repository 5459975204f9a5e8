package repository

import (
	"fmt"

	"github.com/hrsight/employees-api/internal/repository/builder"
)

// MatchMode selects how a filter value is compared against its column.
type MatchMode int

const (
	// MatchExact compares with equality.
	MatchExact MatchMode = iota
	// MatchSubstring compares with a case-sensitive LIKE %value% pattern.
	MatchSubstring
	// MatchRangeMin compares with an inclusive lower bound (column >= value).
	MatchRangeMin
	// MatchRangeMax compares with an inclusive upper bound (column <= value).
	MatchRangeMax
)

// FilterField binds a caller-facing field name to a column expression and
// a match mode. The column side is fixed at definition time; only values
// travel as bound arguments.
type FilterField struct {
	Name   string
	Column string
	Mode   MatchMode
}

// FilterSpec is the closed, ordered table of fields a list operation
// accepts. Conditions are emitted in declaration order so generated SQL is
// deterministic.
type FilterSpec []FilterField

// Apply appends one AND condition per present value to the builder.
// A value under an undeclared name is an error: filters are
// never constructed from untrusted field names.
func (s FilterSpec) Apply(b *builder.SQLBuilder, values map[string]interface{}) error {
	applied := 0
	for _, f := range s {
		v, ok := values[f.Name]
		if !ok || v == nil {
			continue
		}
		switch f.Mode {
		case MatchExact:
			b.Where(f.Column+" = ?", v)
		case MatchSubstring:
			b.Where(f.Column+" LIKE ?", fmt.Sprintf("%%%v%%", v))
		case MatchRangeMin:
			b.Where(f.Column+" >= ?", v)
		case MatchRangeMax:
			b.Where(f.Column+" <= ?", v)
		}
		applied++
	}
	if applied != presentCount(values) {
		return fmt.Errorf("filter values contain an undeclared field")
	}
	return nil
}

func presentCount(values map[string]interface{}) int {
	n := 0
	for _, v := range values {
		if v != nil {
			n++
		}
	}
	return n
}
