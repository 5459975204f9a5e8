package analytics

import (
	"context"
	"time"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository"
	"github.com/hrsight/employees-api/internal/temporal"
)

// defaultWindowDays is the lookback applied when a change-event query gets
// no explicit date bounds.
const defaultWindowDays = 90

const mobilityCountQuery = `SELECT COUNT(*) FROM (SELECT d_new.emp_no FROM dept_emp d_new JOIN dept_emp d_old ON d_old.emp_no = d_new.emp_no AND d_old.from_date = (SELECT MAX(from_date) FROM dept_emp de2 WHERE de2.emp_no = d_new.emp_no AND de2.from_date < d_new.from_date) WHERE d_new.from_date BETWEEN $1 AND $2 AND d_old.dept_no <> d_new.dept_no) AS sub`

const mobilityDataQuery = `SELECT d_new.emp_no, e.first_name, e.last_name, d_old.dept_no AS from_dept, d_new.dept_no AS to_dept, d_new.from_date AS move_date FROM dept_emp d_new JOIN employees e ON e.emp_no = d_new.emp_no JOIN dept_emp d_old ON d_old.emp_no = d_new.emp_no AND d_old.from_date = (SELECT MAX(from_date) FROM dept_emp de2 WHERE de2.emp_no = d_new.emp_no AND de2.from_date < d_new.from_date) WHERE d_new.from_date BETWEEN $1 AND $2 AND d_old.dept_no <> d_new.dept_no ORDER BY d_new.from_date DESC LIMIT $3 OFFSET $4`

const transferDataQuery = `SELECT d_new.emp_no, e.first_name, e.last_name, d_old.dept_no AS from_dept, d_new.dept_no AS to_dept, do.dept_name AS from_dept_name, dn.dept_name AS to_dept_name, d_new.from_date AS transfer_date FROM dept_emp d_new JOIN employees e ON e.emp_no = d_new.emp_no JOIN dept_emp d_old ON d_old.emp_no = d_new.emp_no AND d_old.from_date = (SELECT MAX(from_date) FROM dept_emp de2 WHERE de2.emp_no = d_new.emp_no AND de2.from_date < d_new.from_date) LEFT JOIN departments do ON do.dept_no = d_old.dept_no LEFT JOIN departments dn ON dn.dept_no = d_new.dept_no WHERE d_new.from_date BETWEEN $1 AND $2 AND d_old.dept_no <> d_new.dept_no ORDER BY d_new.from_date DESC LIMIT $3 OFFSET $4`

const promotionCountQuery = `SELECT COUNT(*) FROM (SELECT t_new.emp_no FROM titles t_new JOIN titles t_old ON t_old.emp_no = t_new.emp_no AND t_old.from_date = (SELECT MAX(from_date) FROM titles t2 WHERE t2.emp_no = t_new.emp_no AND t2.from_date < t_new.from_date) WHERE t_new.from_date >= $1 AND t_old.title <> t_new.title) AS sub`

const promotionDataQuery = `SELECT t_new.emp_no, e.first_name, e.last_name, t_old.title AS old_title, t_new.title AS new_title, t_new.from_date AS promotion_date FROM titles t_new JOIN employees e ON e.emp_no = t_new.emp_no JOIN titles t_old ON t_old.emp_no = t_new.emp_no AND t_old.from_date = (SELECT MAX(from_date) FROM titles t2 WHERE t2.emp_no = t_new.emp_no AND t2.from_date < t_new.from_date) WHERE t_new.from_date >= $1 AND t_old.title <> t_new.title ORDER BY t_new.from_date DESC LIMIT $2 OFFSET $3`

// InternalMobility reports department-change events inside the window: an
// employee's dept_emp row paired with the immediately preceding one, kept
// when the departments differ.
func (e *joinEngine) InternalMobility(ctx context.Context, startDate, endDate *string, page domain.PageRequest) ([]domain.MobilityRow, int, error) {
	pageNo, pageSize := repository.NormalizePage(page.Page, page.Size)
	start, end, err := e.resolveWindow(startDate, endDate)
	if err != nil {
		return nil, 0, err
	}

	plan, err := e.countCapped(ctx, mobilityCountQuery, []interface{}{start, end}, pageNo, pageSize)
	if err != nil {
		return nil, 0, err
	}
	if plan.Empty {
		return nil, plan.Total, nil
	}

	rows, err := e.db.QueryContext(ctx, mobilityDataQuery, start, end, plan.Limit, plan.Offset)
	if err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}
	defer rows.Close()

	var out []domain.MobilityRow
	for rows.Next() {
		var m domain.MobilityRow
		var moved time.Time
		if err := rows.Scan(&m.EmpNo, &m.FirstName, &m.LastName, &m.FromDept, &m.ToDept, &moved); err != nil {
			return nil, 0, repository.ClassifyStoreError(err)
		}
		m.MoveDate = temporal.FormatDate(moved)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}
	return out, plan.Total, nil
}

// Transfers is the mobility report enriched with department names.
func (e *joinEngine) Transfers(ctx context.Context, startDate, endDate *string, page domain.PageRequest) ([]domain.TransferRow, int, error) {
	pageNo, pageSize := repository.NormalizePage(page.Page, page.Size)
	start, end, err := e.resolveWindow(startDate, endDate)
	if err != nil {
		return nil, 0, err
	}

	plan, err := e.countCapped(ctx, mobilityCountQuery, []interface{}{start, end}, pageNo, pageSize)
	if err != nil {
		return nil, 0, err
	}
	if plan.Empty {
		return nil, plan.Total, nil
	}

	rows, err := e.db.QueryContext(ctx, transferDataQuery, start, end, plan.Limit, plan.Offset)
	if err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}
	defer rows.Close()

	var out []domain.TransferRow
	for rows.Next() {
		var t domain.TransferRow
		var moved time.Time
		if err := rows.Scan(&t.EmpNo, &t.FirstName, &t.LastName, &t.FromDept, &t.ToDept,
			&t.FromDeptName, &t.ToDeptName, &moved); err != nil {
			return nil, 0, repository.ClassifyStoreError(err)
		}
		t.TransferDate = temporal.FormatDate(moved)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}
	return out, plan.Total, nil
}

// RecentPromotions reports title-change events whose from_date falls within
// the last windowDays days.
func (e *joinEngine) RecentPromotions(ctx context.Context, windowDays int, page domain.PageRequest) ([]domain.PromotionRow, int, error) {
	pageNo, pageSize := repository.NormalizePage(page.Page, page.Size)
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	cutoff := e.now().AddDate(0, 0, -windowDays).Format(temporal.DateLayout)

	plan, err := e.countCapped(ctx, promotionCountQuery, []interface{}{cutoff}, pageNo, pageSize)
	if err != nil {
		return nil, 0, err
	}
	if plan.Empty {
		return nil, plan.Total, nil
	}

	rows, err := e.db.QueryContext(ctx, promotionDataQuery, cutoff, plan.Limit, plan.Offset)
	if err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}
	defer rows.Close()

	var out []domain.PromotionRow
	for rows.Next() {
		var p domain.PromotionRow
		var promoted time.Time
		if err := rows.Scan(&p.EmpNo, &p.FirstName, &p.LastName, &p.OldTitle, &p.NewTitle, &promoted); err != nil {
			return nil, 0, repository.ClassifyStoreError(err)
		}
		p.PromotionDate = temporal.FormatDate(promoted)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}
	return out, plan.Total, nil
}

// resolveWindow fills missing date bounds: end defaults to today, start to
// end minus the default lookback.
func (e *joinEngine) resolveWindow(startDate, endDate *string) (string, string, error) {
	end := e.today()
	if endDate != nil {
		normalized, err := temporal.NormalizeDate(*endDate)
		if err != nil {
			return "", "", err
		}
		end = normalized
	}

	if startDate != nil {
		start, err := temporal.NormalizeDate(*startDate)
		if err != nil {
			return "", "", err
		}
		return start, end, nil
	}

	endDay, err := time.Parse(temporal.DateLayout, end)
	if err != nil {
		return "", "", err
	}
	start := endDay.AddDate(0, 0, -defaultWindowDays).Format(temporal.DateLayout)
	return start, end, nil
}

// countCapped runs a count query and turns the result into a capped page
// plan.
func (e *joinEngine) countCapped(ctx context.Context, query string, args []interface{}, pageNo, pageSize int) (repository.CappedPlan, error) {
	var total int
	if err := e.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return repository.CappedPlan{}, repository.ClassifyStoreError(err)
	}
	return repository.PlanCapped(total, pageNo, pageSize), nil
}
