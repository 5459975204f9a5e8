package builder

import (
	"testing"
)

func TestSQLBuilder(t *testing.T) {
	t.Run("Select", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Select("dept_no", "dept_name").From("departments").Where("dept_no = ?", "d005").Build()
		expected := "SELECT dept_no, dept_name FROM departments WHERE dept_no = $1"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 1 || args[0] != "d005" {
			t.Errorf("expected args [d005], got %v", args)
		}
	})

	t.Run("Insert", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Insert("titles", "emp_no", "title", "from_date", "to_date").
			Values(10001, "Engineer", "2020-01-01", "9999-01-01").
			Build()
		expected := "INSERT INTO titles (emp_no, title, from_date, to_date) VALUES ($1, $2, $3, $4)"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 4 || args[0] != 10001 || args[3] != "9999-01-01" {
			t.Errorf("unexpected args %v", args)
		}
	})

	t.Run("Update numbers set then where", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Update("titles").
			Set("to_date", "2022-06-01").
			Where("emp_no = ?", 10001).
			Where("title = ?", "Engineer").
			Where("from_date = ?", "2020-01-01").
			Build()
		expected := "UPDATE titles SET to_date = $1 WHERE emp_no = $2 AND title = $3 AND from_date = $4"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 4 || args[0] != "2022-06-01" || args[1] != 10001 {
			t.Errorf("unexpected args %v", args)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Delete("titles").Where("emp_no = ?", 10001).Where("title = ?", "Engineer").Build()
		expected := "DELETE FROM titles WHERE emp_no = $1 AND title = $2"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 2 {
			t.Errorf("unexpected args %v", args)
		}
	})

	t.Run("Where conditions are AND combined", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Select("*").
			From("salaries").
			Where("emp_no = ?", 10001).
			Where("salary >= ?", 60000).
			Where("salary <= ?", 90000).
			Build()
		expected := "SELECT * FROM salaries WHERE emp_no = $1 AND salary >= $2 AND salary <= $3"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 3 {
			t.Errorf("unexpected args %v", args)
		}
	})

	t.Run("Join with limit and offset", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Select("e.emp_no", "e.first_name", "d.dept_name").
			From("employees e").
			Join("INNER", "dept_emp de", "e.emp_no = de.emp_no").
			Join("INNER", "departments d", "de.dept_no = d.dept_no").
			Where("de.to_date = ?", "9999-01-01").
			OrderBy("e.emp_no ASC").
			Limit(10).
			Offset(20).
			Build()
		expected := "SELECT e.emp_no, e.first_name, d.dept_name FROM employees e " +
			"INNER JOIN dept_emp de ON e.emp_no = de.emp_no " +
			"INNER JOIN departments d ON de.dept_no = d.dept_no " +
			"WHERE de.to_date = $1 ORDER BY e.emp_no ASC LIMIT 10 OFFSET 20"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 1 {
			t.Errorf("unexpected args %v", args)
		}
	})

	t.Run("GroupBy and Having", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Select("emp_no", "MAX(from_date) AS last_from").
			From("titles").
			GroupBy("emp_no").
			Having("MAX(from_date) <= ?", "2021-01-01").
			Build()
		expected := "SELECT emp_no, MAX(from_date) AS last_from FROM titles GROUP BY emp_no HAVING MAX(from_date) <= $1"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 1 {
			t.Errorf("unexpected args %v", args)
		}
	})

	t.Run("Subquery condition keeps numbering", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Select("dm.*").
			From("dept_manager dm").
			Where("(SELECT MAX(m2.to_date) FROM dept_manager m2 WHERE m2.emp_no = dm.emp_no AND m2.dept_no = dm.dept_no) = ?", "9999-01-01").
			Where("dm.dept_no = ?", "d003").
			Build()
		expected := "SELECT dm.* FROM dept_manager dm WHERE " +
			"(SELECT MAX(m2.to_date) FROM dept_manager m2 WHERE m2.emp_no = dm.emp_no AND m2.dept_no = dm.dept_no) = $1 " +
			"AND dm.dept_no = $2"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 2 {
			t.Errorf("unexpected args %v", args)
		}
	})
}
