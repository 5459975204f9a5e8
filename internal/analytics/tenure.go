package analytics

import (
	"context"
	"time"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository"
	"github.com/hrsight/employees-api/internal/temporal"
)

// defaultMinTenureDays is roughly three years in the same role.
const defaultMinTenureDays = 1095

const tenureCountQuery = `SELECT COUNT(*) FROM (SELECT emp_no FROM titles GROUP BY emp_no HAVING $1::date - MAX(from_date) >= $2) AS sub`

const tenureDataQuery = `SELECT t_latest.emp_no, e.first_name, e.last_name, t_latest.title AS current_title, t_latest.from_date AS title_start_date, $1::date - t_latest.from_date AS days_in_role FROM (SELECT t.emp_no, t.title, t.from_date FROM titles t WHERE (t.emp_no, t.from_date) IN (SELECT emp_no, MAX(from_date) FROM titles GROUP BY emp_no)) AS t_latest JOIN employees e ON e.emp_no = t_latest.emp_no WHERE $1::date - t_latest.from_date >= $2 ORDER BY days_in_role DESC LIMIT $3 OFFSET $4`

// LongTenureInRole flags employees whose most recent title row started at
// least minDays before asOfDate, longest tenure first.
func (e *joinEngine) LongTenureInRole(ctx context.Context, minDays int, asOfDate *string, page domain.PageRequest) ([]domain.TenureRow, int, error) {
	pageNo, pageSize := repository.NormalizePage(page.Page, page.Size)
	if minDays <= 0 {
		minDays = defaultMinTenureDays
	}

	asOf := e.today()
	if asOfDate != nil {
		normalized, err := temporal.NormalizeDate(*asOfDate)
		if err != nil {
			return nil, 0, err
		}
		asOf = normalized
	}

	plan, err := e.countCapped(ctx, tenureCountQuery, []interface{}{asOf, minDays}, pageNo, pageSize)
	if err != nil {
		return nil, 0, err
	}
	if plan.Empty {
		return nil, plan.Total, nil
	}

	rows, err := e.db.QueryContext(ctx, tenureDataQuery, asOf, minDays, plan.Limit, plan.Offset)
	if err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}
	defer rows.Close()

	var out []domain.TenureRow
	for rows.Next() {
		var t domain.TenureRow
		var started time.Time
		if err := rows.Scan(&t.EmpNo, &t.FirstName, &t.LastName, &t.CurrentTitle, &started, &t.DaysInRole); err != nil {
			return nil, 0, repository.ClassifyStoreError(err)
		}
		t.TitleStartDate = temporal.FormatDate(started)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}
	return out, plan.Total, nil
}
