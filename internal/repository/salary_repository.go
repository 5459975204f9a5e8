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

type salaryRepository struct {
	db *sql.DB
}

// NewSalaryRepository creates a new instance of SalaryRepository
func NewSalaryRepository(db *sql.DB) domain.SalaryRepository {
	return &salaryRepository{db: db}
}

var salaryFilterSpec = FilterSpec{
	{Name: "employee_id", Column: "emp_no", Mode: MatchExact},
	{Name: "salary", Column: "salary", Mode: MatchExact},
	{Name: "from_date", Column: "from_date", Mode: MatchExact},
	{Name: "to_date", Column: "to_date", Mode: MatchExact},
}

func (r *salaryRepository) List(ctx context.Context, page domain.PageRequest, filter domain.TemporalFilter) ([]domain.Salary, error) {
	pageNo, pageSize := NormalizePage(page.Page, page.Size)

	values, err := temporalFilterValues(filter)
	if err != nil {
		return nil, err
	}

	b := builder.NewSQLBuilder().
		Select("emp_no", "salary", "from_date", "to_date").
		From("salaries")
	if err := salaryFilterSpec.Apply(b, values); err != nil {
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

	var salaries []domain.Salary
	for rows.Next() {
		var s domain.Salary
		var from, to time.Time
		if err := rows.Scan(&s.EmpNo, &s.Salary, &from, &to); err != nil {
			return nil, ClassifyStoreError(err)
		}
		s.FromDate = temporal.FormatDate(from)
		s.ToDate = temporal.FormatDate(to)
		salaries = append(salaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, ClassifyStoreError(err)
	}
	return salaries, nil
}

func (r *salaryRepository) Add(ctx context.Context, empNo, salary int, fromDate, toDate string) (domain.OperationResult, error) {
	rec, err := temporal.OpenInterval(fromDate, toDate)
	if err != nil {
		return invalidInputResult(err)
	}

	query, args := builder.NewSQLBuilder().
		Insert("salaries", "emp_no", "salary", "from_date", "to_date").
		Values(empNo, salary, rec.FromDate, rec.ToDate).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	return successResult(n), nil
}

func (r *salaryRepository) Update(ctx context.Context, empNo, salary int, fromDate, toDate string) (domain.OperationResult, error) {
	rec, err := temporal.OpenInterval(fromDate, "")
	if err != nil {
		return invalidInputResult(err)
	}
	if err := temporal.CloseInterval(&rec, toDate); err != nil {
		return invalidInputResult(err)
	}

	query, args := builder.NewSQLBuilder().
		Update("salaries").
		Set("to_date", rec.ToDate).
		Where("emp_no = ?", empNo).
		Where("salary = ?", salary).
		Where("from_date = ?", rec.FromDate).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notFoundResult("no matching salary record found to update"), nil
	}
	return successResult(n), nil
}

func (r *salaryRepository) Delete(ctx context.Context, empNo, salary int) (domain.OperationResult, error) {
	query, args := builder.NewSQLBuilder().
		Delete("salaries").
		Where("emp_no = ?", empNo).
		Where("salary = ?", salary).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notFoundResult("no salary record found for that employee to delete"), nil
	}
	return successResult(n), nil
}

// Reassign closes the employee's current salary at fromDate and opens the
// new amount from the same boundary, in one transaction.
func (r *salaryRepository) Reassign(ctx context.Context, empNo, newSalary int, fromDate string) (domain.OperationResult, error) {
	boundary, err := temporal.NormalizeDate(fromDate)
	if err != nil {
		return invalidInputResult(err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mutationError(err)
	}

	var affected int64
	var curSalary int
	var curFrom time.Time
	err = tx.QueryRowContext(ctx,
		"SELECT salary, from_date FROM salaries WHERE emp_no = $1 AND to_date = $2 FOR UPDATE",
		empNo, temporal.SentinelMax).Scan(&curSalary, &curFrom)
	switch {
	case err == nil:
		current := temporal.Record{FromDate: temporal.FormatDate(curFrom), ToDate: temporal.SentinelMax}
		if err := temporal.CloseInterval(&current, boundary); err != nil {
			tx.Rollback()
			return invalidInputResult(err)
		}
		res, err := tx.ExecContext(ctx,
			"UPDATE salaries SET to_date = $1 WHERE emp_no = $2 AND salary = $3 AND from_date = $4",
			current.ToDate, empNo, curSalary, current.FromDate)
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
		"INSERT INTO salaries (emp_no, salary, from_date, to_date) VALUES ($1, $2, $3, $4)",
		empNo, newSalary, boundary, temporal.SentinelMax)
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
