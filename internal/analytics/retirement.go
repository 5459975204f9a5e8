package analytics

import (
	"context"
	"time"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository"
	"github.com/hrsight/employees-api/internal/temporal"
)

const retirementCountQuery = `SELECT COUNT(DISTINCT e.emp_no) FROM employees e JOIN dept_emp d ON e.emp_no = d.emp_no WHERE EXTRACT(YEAR FROM e.birth_date) <= $1 AND d.to_date = $2 AND ($3::text IS NULL OR d.dept_no = $3)`

const retirementDataQuery = `SELECT e.emp_no, e.first_name, e.last_name, e.birth_date, e.gender, e.hire_date, d.dept_no, dp.dept_name, COALESCE(t.title, '') FROM employees e JOIN dept_emp d ON e.emp_no = d.emp_no JOIN departments dp ON d.dept_no = dp.dept_no LEFT JOIN titles t ON e.emp_no = t.emp_no AND t.to_date = $2 WHERE EXTRACT(YEAR FROM e.birth_date) <= $1 AND d.to_date = $2 AND ($3::text IS NULL OR d.dept_no = $3) ORDER BY e.birth_date ASC LIMIT $4 OFFSET $5`

// RetirementCandidates lists currently-employed people whose birth year is
// at or below current_year - retirementAge, oldest first. The total is the
// true match count, not capped: this report feeds planning, not browsing.
func (e *joinEngine) RetirementCandidates(ctx context.Context, deptNo *string, retirementAge int, page domain.PageRequest) ([]domain.RetirementCandidate, int, error) {
	pageNo, pageSize := repository.NormalizePage(page.Page, page.Size)
	threshold := e.now().Year() - retirementAge

	var total int
	err := e.db.QueryRowContext(ctx, retirementCountQuery, threshold, temporal.SentinelMax, deptNo).Scan(&total)
	if err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	rows, err := e.db.QueryContext(ctx, retirementDataQuery,
		threshold, temporal.SentinelMax, deptNo, pageSize, repository.PageOffset(pageNo, pageSize))
	if err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}
	defer rows.Close()

	var out []domain.RetirementCandidate
	for rows.Next() {
		var c domain.RetirementCandidate
		var birth, hire time.Time
		if err := rows.Scan(&c.EmpNo, &c.FirstName, &c.LastName, &birth, &c.Gender,
			&hire, &c.DeptNo, &c.DeptName, &c.Title); err != nil {
			return nil, 0, repository.ClassifyStoreError(err)
		}
		c.BirthDate = temporal.FormatDate(birth)
		c.HireDate = temporal.FormatDate(hire)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}
	return out, total, nil
}
