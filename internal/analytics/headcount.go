package analytics

import (
	"context"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository"
	"github.com/hrsight/employees-api/internal/temporal"
)

// A year appears if it saw either hires or departures. The turnover
// denominator has a floor of 1 so a year with departures and zero hires
// still yields a finite rate.
const headcountQuery = `WITH hires AS (SELECT EXTRACT(YEAR FROM hire_date)::int AS year, COUNT(*) AS new_hires FROM employees WHERE ($1::int IS NULL OR EXTRACT(YEAR FROM hire_date) >= $1) AND ($2::int IS NULL OR EXTRACT(YEAR FROM hire_date) <= $2) GROUP BY EXTRACT(YEAR FROM hire_date)), departures AS (SELECT EXTRACT(YEAR FROM de.to_date)::int AS year, COUNT(DISTINCT de.emp_no) AS departures FROM dept_emp de WHERE de.to_date <> $3 AND ($1::int IS NULL OR EXTRACT(YEAR FROM de.to_date) >= $1) AND ($2::int IS NULL OR EXTRACT(YEAR FROM de.to_date) <= $2) GROUP BY EXTRACT(YEAR FROM de.to_date)), all_years AS (SELECT year FROM hires UNION SELECT year FROM departures) SELECT ay.year, COALESCE(h.new_hires, 0), COALESCE(d.departures, 0), COALESCE(h.new_hires, 0) - COALESCE(d.departures, 0), ROUND(COALESCE(d.departures, 0) * 100.0 / GREATEST(COALESCE(h.new_hires, 0), 1), 2) FROM all_years ay LEFT JOIN hires h ON ay.year = h.year LEFT JOIN departures d ON ay.year = d.year ORDER BY ay.year`

func (e *joinEngine) HeadcountChangesByYear(ctx context.Context, startYear, endYear *int) ([]domain.HeadcountChange, error) {
	rows, err := e.db.QueryContext(ctx, headcountQuery, startYear, endYear, temporal.SentinelMax)
	if err != nil {
		return nil, repository.ClassifyStoreError(err)
	}
	defer rows.Close()

	var out []domain.HeadcountChange
	for rows.Next() {
		var h domain.HeadcountChange
		if err := rows.Scan(&h.Year, &h.NewHires, &h.Departures, &h.NetChange, &h.TurnoverRatePercent); err != nil {
			return nil, repository.ClassifyStoreError(err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ClassifyStoreError(err)
	}
	return out, nil
}
