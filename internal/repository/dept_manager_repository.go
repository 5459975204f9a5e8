package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository/builder"
	"github.com/hrsight/employees-api/internal/temporal"
)

type deptManagerRepository struct {
	db *sql.DB
}

// NewDeptManagerRepository creates a new instance of DeptManagerRepository
func NewDeptManagerRepository(db *sql.DB) domain.DeptManagerRepository {
	return &deptManagerRepository{db: db}
}

var deptManagerFilterSpec = FilterSpec{
	{Name: "dept_no", Column: "dm.dept_no", Mode: MatchExact},
	{Name: "employee_id", Column: "dm.emp_no", Mode: MatchExact},
	{Name: "from_date", Column: "dm.from_date", Mode: MatchExact},
	{Name: "to_date", Column: "dm.to_date", Mode: MatchExact},
}

// currentPairCondition keeps only rows whose (emp_no, dept_no) pair still
// has an open interval. A per-pair MAX(to_date) subquery is required here:
// the same pair can have several historical rows, so filtering each row by
// its own to_date would drop pairs whose newest row happens to be listed
// after an older one.
const currentPairCondition = "(SELECT MAX(m2.to_date) FROM dept_manager m2 " +
	"WHERE m2.emp_no = dm.emp_no AND m2.dept_no = dm.dept_no) = ?"

// ListCurrent returns only current department managers.
func (r *deptManagerRepository) ListCurrent(ctx context.Context, page domain.PageRequest, filter domain.TemporalFilter) ([]domain.DeptManager, error) {
	return r.list(ctx, page, filter, true)
}

// ListAll returns every manager row including historical ones, for
// audit/history views.
func (r *deptManagerRepository) ListAll(ctx context.Context, page domain.PageRequest, filter domain.TemporalFilter) ([]domain.DeptManager, error) {
	return r.list(ctx, page, filter, false)
}

func (r *deptManagerRepository) list(ctx context.Context, page domain.PageRequest, filter domain.TemporalFilter, currentOnly bool) ([]domain.DeptManager, error) {
	pageNo, pageSize := NormalizePage(page.Page, page.Size)

	values, err := temporalFilterValues(filter)
	if err != nil {
		return nil, err
	}

	b := builder.NewSQLBuilder().
		Select("dm.emp_no", "dm.dept_no", "dm.from_date", "dm.to_date").
		From("dept_manager dm")
	if currentOnly {
		b.Where(currentPairCondition, temporal.SentinelMax)
	}
	if err := deptManagerFilterSpec.Apply(b, values); err != nil {
		return nil, err
	}
	query, args := b.OrderBy("dm.dept_no, dm.emp_no, dm.from_date").
		Limit(pageSize).
		Offset(PageOffset(pageNo, pageSize)).
		Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ClassifyStoreError(err)
	}
	defer rows.Close()

	var managers []domain.DeptManager
	for rows.Next() {
		var m domain.DeptManager
		var from, to time.Time
		if err := rows.Scan(&m.EmpNo, &m.DeptNo, &from, &to); err != nil {
			return nil, ClassifyStoreError(err)
		}
		m.FromDate = temporal.FormatDate(from)
		m.ToDate = temporal.FormatDate(to)
		managers = append(managers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, ClassifyStoreError(err)
	}
	return managers, nil
}

func (r *deptManagerRepository) Add(ctx context.Context, empNo int, deptNo, fromDate, toDate string) (domain.OperationResult, error) {
	rec, err := temporal.OpenInterval(fromDate, toDate)
	if err != nil {
		return invalidInputResult(err)
	}

	query, args := builder.NewSQLBuilder().
		Insert("dept_manager", "emp_no", "dept_no", "from_date", "to_date").
		Values(empNo, deptNo, rec.FromDate, rec.ToDate).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	return successResult(n), nil
}

func (r *deptManagerRepository) Update(ctx context.Context, empNo int, deptNo, fromDate, toDate string) (domain.OperationResult, error) {
	rec, err := temporal.OpenInterval(fromDate, "")
	if err != nil {
		return invalidInputResult(err)
	}
	if err := temporal.CloseInterval(&rec, toDate); err != nil {
		return invalidInputResult(err)
	}

	query, args := builder.NewSQLBuilder().
		Update("dept_manager").
		Set("to_date", rec.ToDate).
		Where("emp_no = ?", empNo).
		Where("dept_no = ?", deptNo).
		Where("from_date = ?", rec.FromDate).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notFoundResult("no matching department manager record found to update"), nil
	}
	return successResult(n), nil
}

func (r *deptManagerRepository) Delete(ctx context.Context, empNo int, deptNo string) (domain.OperationResult, error) {
	query, args := builder.NewSQLBuilder().
		Delete("dept_manager").
		Where("emp_no = ?", empNo).
		Where("dept_no = ?", deptNo).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notFoundResult("no department manager record found to delete"), nil
	}
	return successResult(n), nil
}

// Reassign hands the department to newEmpNo: the incumbent's open interval
// is closed at fromDate and a new open row inserted, atomically. The row
// being closed is located by department, since a department has at most
// one current manager.
func (r *deptManagerRepository) Reassign(ctx context.Context, deptNo string, newEmpNo int, fromDate string) (domain.OperationResult, error) {
	boundary, err := temporal.NormalizeDate(fromDate)
	if err != nil {
		return invalidInputResult(err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mutationError(err)
	}

	var affected int64
	var curEmpNo int
	var curFrom time.Time
	err = tx.QueryRowContext(ctx,
		"SELECT emp_no, from_date FROM dept_manager WHERE dept_no = $1 AND to_date = $2 FOR UPDATE",
		deptNo, temporal.SentinelMax).Scan(&curEmpNo, &curFrom)
	switch {
	case err == nil:
		current := temporal.Record{FromDate: temporal.FormatDate(curFrom), ToDate: temporal.SentinelMax}
		if err := temporal.CloseInterval(&current, boundary); err != nil {
			tx.Rollback()
			return invalidInputResult(err)
		}
		res, err := tx.ExecContext(ctx,
			"UPDATE dept_manager SET to_date = $1 WHERE dept_no = $2 AND emp_no = $3 AND from_date = $4",
			current.ToDate, deptNo, curEmpNo, current.FromDate)
		if err != nil {
			tx.Rollback()
			return mutationError(err)
		}
		n, _ := res.RowsAffected()
		affected += n
	case errors.Is(err, sql.ErrNoRows):
		// nothing to close
	default:
		tx.Rollback()
		return mutationError(err)
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO dept_manager (emp_no, dept_no, from_date, to_date) VALUES ($1, $2, $3, $4)",
		newEmpNo, deptNo, boundary, temporal.SentinelMax)
	if err != nil {
		tx.Rollback()
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	affected += n

	if err := tx.Commit(); err != nil {
		return mutationError(err)
	}
	return successResult(affected), nil
}
