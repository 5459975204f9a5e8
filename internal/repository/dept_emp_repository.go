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

type deptEmpRepository struct {
	db *sql.DB
}

// NewDeptEmpRepository creates a new instance of DeptEmpRepository
func NewDeptEmpRepository(db *sql.DB) domain.DeptEmpRepository {
	return &deptEmpRepository{db: db}
}

var deptEmpFilterSpec = FilterSpec{
	{Name: "dept_no", Column: "dept_no", Mode: MatchExact},
	{Name: "employee_id", Column: "emp_no", Mode: MatchExact},
	{Name: "from_date", Column: "from_date", Mode: MatchExact},
	{Name: "to_date", Column: "to_date", Mode: MatchExact},
}

func (r *deptEmpRepository) List(ctx context.Context, page domain.PageRequest, filter domain.TemporalFilter) ([]domain.DeptEmp, error) {
	pageNo, pageSize := NormalizePage(page.Page, page.Size)

	values, err := temporalFilterValues(filter)
	if err != nil {
		return nil, err
	}

	b := builder.NewSQLBuilder().
		Select("emp_no", "dept_no", "from_date", "to_date").
		From("dept_emp")
	if err := deptEmpFilterSpec.Apply(b, values); err != nil {
		return nil, err
	}
	query, args := b.OrderBy("emp_no, from_date").
		Limit(pageSize).
		Offset(PageOffset(pageNo, pageSize)).
		Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ClassifyStoreError(err)
	}
	defer rows.Close()

	var records []domain.DeptEmp
	for rows.Next() {
		var d domain.DeptEmp
		var from, to time.Time
		if err := rows.Scan(&d.EmpNo, &d.DeptNo, &from, &to); err != nil {
			return nil, ClassifyStoreError(err)
		}
		d.FromDate = temporal.FormatDate(from)
		d.ToDate = temporal.FormatDate(to)
		records = append(records, d)
	}
	if err := rows.Err(); err != nil {
		return nil, ClassifyStoreError(err)
	}
	return records, nil
}

func (r *deptEmpRepository) Add(ctx context.Context, empNo int, deptNo, fromDate, toDate string) (domain.OperationResult, error) {
	rec, err := temporal.OpenInterval(fromDate, toDate)
	if err != nil {
		return invalidInputResult(err)
	}

	query, args := builder.NewSQLBuilder().
		Insert("dept_emp", "emp_no", "dept_no", "from_date", "to_date").
		Values(empNo, deptNo, rec.FromDate, rec.ToDate).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	return successResult(n), nil
}

func (r *deptEmpRepository) Update(ctx context.Context, empNo int, deptNo, fromDate, toDate string) (domain.OperationResult, error) {
	rec, err := temporal.OpenInterval(fromDate, "")
	if err != nil {
		return invalidInputResult(err)
	}
	if err := temporal.CloseInterval(&rec, toDate); err != nil {
		return invalidInputResult(err)
	}

	query, args := builder.NewSQLBuilder().
		Update("dept_emp").
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
		return notFoundResult("no matching department employee record found to update"), nil
	}
	return successResult(n), nil
}

func (r *deptEmpRepository) Delete(ctx context.Context, empNo int, deptNo string) (domain.OperationResult, error) {
	query, args := builder.NewSQLBuilder().
		Delete("dept_emp").
		Where("emp_no = ?", empNo).
		Where("dept_no = ?", deptNo).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notFoundResult("no department employee record found to delete"), nil
	}
	return successResult(n), nil
}

// Reassign moves the employee to newDeptNo: the current membership is
// closed at fromDate and a new open membership inserted, atomically.
func (r *deptEmpRepository) Reassign(ctx context.Context, empNo int, newDeptNo, fromDate string) (domain.OperationResult, error) {
	boundary, err := temporal.NormalizeDate(fromDate)
	if err != nil {
		return invalidInputResult(err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mutationError(err)
	}

	var affected int64
	var curDept string
	var curFrom time.Time
	err = tx.QueryRowContext(ctx,
		"SELECT dept_no, from_date FROM dept_emp WHERE emp_no = $1 AND to_date = $2 FOR UPDATE",
		empNo, temporal.SentinelMax).Scan(&curDept, &curFrom)
	switch {
	case err == nil:
		current := temporal.Record{FromDate: temporal.FormatDate(curFrom), ToDate: temporal.SentinelMax}
		if err := temporal.CloseInterval(&current, boundary); err != nil {
			tx.Rollback()
			return invalidInputResult(err)
		}
		res, err := tx.ExecContext(ctx,
			"UPDATE dept_emp SET to_date = $1 WHERE emp_no = $2 AND dept_no = $3 AND from_date = $4",
			current.ToDate, empNo, curDept, current.FromDate)
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
		"INSERT INTO dept_emp (emp_no, dept_no, from_date, to_date) VALUES ($1, $2, $3, $4)",
		empNo, newDeptNo, boundary, temporal.SentinelMax)
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
