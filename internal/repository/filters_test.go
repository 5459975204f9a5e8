package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsight/employees-api/internal/repository/builder"
)

func TestFilterSpecApply(t *testing.T) {
	spec := FilterSpec{
		{Name: "employee_id", Column: "emp_no", Mode: MatchExact},
		{Name: "title", Column: "title", Mode: MatchSubstring},
		{Name: "min_salary", Column: "salary", Mode: MatchRangeMin},
		{Name: "max_salary", Column: "salary", Mode: MatchRangeMax},
	}

	t.Run("emits conditions in declaration order", func(t *testing.T) {
		b := builder.NewSQLBuilder().Select("*").From("titles")
		err := spec.Apply(b, map[string]interface{}{
			"max_salary":  90000,
			"employee_id": 10001,
			"title":       "Engineer",
		})
		require.NoError(t, err)

		sql, args := b.Build()
		assert.Equal(t, "SELECT * FROM titles WHERE emp_no = $1 AND title LIKE $2 AND salary <= $3", sql)
		assert.Equal(t, []interface{}{10001, "%Engineer%", 90000}, args)
	})

	t.Run("nil values are skipped", func(t *testing.T) {
		b := builder.NewSQLBuilder().Select("*").From("titles")
		err := spec.Apply(b, map[string]interface{}{
			"employee_id": nil,
			"min_salary":  60000,
		})
		require.NoError(t, err)

		sql, args := b.Build()
		assert.Equal(t, "SELECT * FROM titles WHERE salary >= $1", sql)
		assert.Equal(t, []interface{}{60000}, args)
	})

	t.Run("undeclared field is rejected", func(t *testing.T) {
		b := builder.NewSQLBuilder().Select("*").From("titles")
		err := spec.Apply(b, map[string]interface{}{"department": "d005"})
		assert.Error(t, err)
	})
}
