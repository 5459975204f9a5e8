package analytics

import (
	"context"
	"time"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository"
	"github.com/hrsight/employees-api/internal/repository/builder"
	"github.com/hrsight/employees-api/internal/temporal"
)

// profileSource is the point-in-time profile history: one row per
// (employee, salary interval), joined to the title, department and manager
// that were simultaneously in effect on the salary row's from_date. It is a
// fixed derived table, never DDL.
const profileSource = `(SELECT e.emp_no, e.first_name AS employee_first_name, e.last_name AS employee_last_name, t.title, s.salary, d.dept_no, d.dept_name, m.first_name AS manager_first_name, m.last_name AS manager_last_name, s.from_date AS effective_date, s.to_date AS end_date FROM employees e JOIN salaries s ON e.emp_no = s.emp_no JOIN titles t ON e.emp_no = t.emp_no AND s.from_date BETWEEN t.from_date AND t.to_date JOIN dept_emp de ON e.emp_no = de.emp_no AND s.from_date BETWEEN de.from_date AND de.to_date JOIN departments d ON de.dept_no = d.dept_no JOIN dept_manager dm ON de.dept_no = dm.dept_no AND s.from_date <= dm.to_date AND dm.from_date <= s.to_date JOIN employees m ON dm.emp_no = m.emp_no) AS p`

var profileFilterSpec = repository.FilterSpec{
	{Name: "employee_id", Column: "emp_no", Mode: repository.MatchExact},
	{Name: "employee_id_min", Column: "emp_no", Mode: repository.MatchRangeMin},
	{Name: "employee_id_max", Column: "emp_no", Mode: repository.MatchRangeMax},
	{Name: "employee_name", Column: "employee_first_name || ' ' || employee_last_name", Mode: repository.MatchSubstring},
	{Name: "title", Column: "title", Mode: repository.MatchSubstring},
	{Name: "salary", Column: "salary", Mode: repository.MatchExact},
	{Name: "salary_min", Column: "salary", Mode: repository.MatchRangeMin},
	{Name: "salary_max", Column: "salary", Mode: repository.MatchRangeMax},
	{Name: "dept_no", Column: "dept_no", Mode: repository.MatchExact},
	{Name: "dept_name", Column: "dept_name", Mode: repository.MatchSubstring},
	{Name: "manager_name", Column: "manager_first_name || ' ' || manager_last_name", Mode: repository.MatchSubstring},
	{Name: "effective_date", Column: "effective_date", Mode: repository.MatchExact},
	{Name: "effective_date_min", Column: "effective_date", Mode: repository.MatchRangeMin},
	{Name: "effective_date_max", Column: "effective_date", Mode: repository.MatchRangeMax},
	{Name: "end_date", Column: "end_date", Mode: repository.MatchExact},
}

func (e *joinEngine) EmployeeProfile(ctx context.Context, page domain.PageRequest, filter domain.ProfileFilter) ([]domain.ProfileRow, error) {
	pageNo, pageSize := repository.NormalizePage(page.Page, page.Size)

	values, err := profileFilterValues(filter)
	if err != nil {
		return nil, err
	}

	b := builder.NewSQLBuilder().
		Select("emp_no", "employee_first_name", "employee_last_name", "title", "salary",
			"dept_no", "dept_name", "manager_first_name", "manager_last_name",
			"effective_date", "end_date").
		From(profileSource)
	if err := profileFilterSpec.Apply(b, values); err != nil {
		return nil, err
	}
	query, args := b.OrderBy("emp_no, effective_date").
		Limit(pageSize).
		Offset(repository.PageOffset(pageNo, pageSize)).
		Build()

	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, repository.ClassifyStoreError(err)
	}
	defer rows.Close()

	var out []domain.ProfileRow
	for rows.Next() {
		var r domain.ProfileRow
		var effective, end time.Time
		if err := rows.Scan(&r.EmpNo, &r.EmployeeFirstName, &r.EmployeeLastName, &r.Title,
			&r.Salary, &r.DeptNo, &r.DeptName, &r.ManagerFirstName, &r.ManagerLastName,
			&effective, &end); err != nil {
			return nil, repository.ClassifyStoreError(err)
		}
		r.EffectiveDate = temporal.FormatDate(effective)
		r.EndDate = temporal.FormatDate(end)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ClassifyStoreError(err)
	}
	return out, nil
}

func profileFilterValues(filter domain.ProfileFilter) (map[string]interface{}, error) {
	values := map[string]interface{}{}
	if filter.EmpNo != nil {
		values["employee_id"] = *filter.EmpNo
	}
	if filter.EmpNoMin != nil {
		values["employee_id_min"] = *filter.EmpNoMin
	}
	if filter.EmpNoMax != nil {
		values["employee_id_max"] = *filter.EmpNoMax
	}
	if filter.EmployeeName != nil {
		values["employee_name"] = *filter.EmployeeName
	}
	if filter.Title != nil {
		values["title"] = *filter.Title
	}
	if filter.Salary != nil {
		values["salary"] = *filter.Salary
	}
	if filter.SalaryMin != nil {
		values["salary_min"] = *filter.SalaryMin
	}
	if filter.SalaryMax != nil {
		values["salary_max"] = *filter.SalaryMax
	}
	if filter.DeptNo != nil {
		values["dept_no"] = *filter.DeptNo
	}
	if filter.DeptName != nil {
		values["dept_name"] = *filter.DeptName
	}
	if filter.ManagerName != nil {
		values["manager_name"] = *filter.ManagerName
	}

	dates := []struct {
		name string
		in   *string
	}{
		{"effective_date", filter.EffectiveDate},
		{"effective_date_min", filter.EffectiveDateMin},
		{"effective_date_max", filter.EffectiveDateMax},
		{"end_date", filter.EndDate},
	}
	for _, d := range dates {
		if d.in == nil {
			continue
		}
		normalized, err := temporal.NormalizeDate(*d.in)
		if err != nil {
			return nil, err
		}
		values[d.name] = normalized
	}
	return values, nil
}
