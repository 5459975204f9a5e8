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

type titleRepository struct {
	db *sql.DB
}

// NewTitleRepository creates a new instance of TitleRepository
func NewTitleRepository(db *sql.DB) domain.TitleRepository {
	return &titleRepository{db: db}
}

// Closed filter table: field names from the API surface bound to columns
// at definition time, never built from request input.
var titleFilterSpec = FilterSpec{
	{Name: "employee_id", Column: "emp_no", Mode: MatchExact},
	{Name: "title", Column: "title", Mode: MatchSubstring},
	{Name: "from_date", Column: "from_date", Mode: MatchExact},
	{Name: "to_date", Column: "to_date", Mode: MatchExact},
}

func (r *titleRepository) List(ctx context.Context, page domain.PageRequest, filter domain.TemporalFilter) ([]domain.Title, error) {
	pageNo, pageSize := NormalizePage(page.Page, page.Size)

	values, err := temporalFilterValues(filter)
	if err != nil {
		return nil, err
	}

	b := builder.NewSQLBuilder().
		Select("emp_no", "title", "from_date", "to_date").
		From("titles")
	if err := titleFilterSpec.Apply(b, values); err != nil {
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

	var titles []domain.Title
	for rows.Next() {
		var t domain.Title
		var from, to time.Time
		if err := rows.Scan(&t.EmpNo, &t.Title, &from, &to); err != nil {
			return nil, ClassifyStoreError(err)
		}
		t.FromDate = temporal.FormatDate(from)
		t.ToDate = temporal.FormatDate(to)
		titles = append(titles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, ClassifyStoreError(err)
	}
	return titles, nil
}

func (r *titleRepository) Add(ctx context.Context, empNo int, title, fromDate, toDate string) (domain.OperationResult, error) {
	rec, err := temporal.OpenInterval(fromDate, toDate)
	if err != nil {
		return invalidInputResult(err)
	}

	query, args := builder.NewSQLBuilder().
		Insert("titles", "emp_no", "title", "from_date", "to_date").
		Values(empNo, title, rec.FromDate, rec.ToDate).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	return successResult(n), nil
}

func (r *titleRepository) Update(ctx context.Context, empNo int, title, fromDate, toDate string) (domain.OperationResult, error) {
	rec, err := temporal.OpenInterval(fromDate, "")
	if err != nil {
		return invalidInputResult(err)
	}
	if err := temporal.CloseInterval(&rec, toDate); err != nil {
		return invalidInputResult(err)
	}

	query, args := builder.NewSQLBuilder().
		Update("titles").
		Set("to_date", rec.ToDate).
		Where("emp_no = ?", empNo).
		Where("title = ?", title).
		Where("from_date = ?", rec.FromDate).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notFoundResult("no matching title record found to update"), nil
	}
	return successResult(n), nil
}

func (r *titleRepository) Delete(ctx context.Context, empNo int, title string) (domain.OperationResult, error) {
	query, args := builder.NewSQLBuilder().
		Delete("titles").
		Where("emp_no = ?", empNo).
		Where("title = ?", title).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notFoundResult("no title record found for that employee to delete"), nil
	}
	return successResult(n), nil
}

// Reassign closes the employee's current title at fromDate and opens
// newTitle from the same boundary, in one transaction. With no current row
// it degenerates to a plain open.
func (r *titleRepository) Reassign(ctx context.Context, empNo int, newTitle, fromDate string) (domain.OperationResult, error) {
	boundary, err := temporal.NormalizeDate(fromDate)
	if err != nil {
		return invalidInputResult(err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mutationError(err)
	}

	var affected int64
	var curTitle string
	var curFrom time.Time
	err = tx.QueryRowContext(ctx,
		"SELECT title, from_date FROM titles WHERE emp_no = $1 AND to_date = $2 FOR UPDATE",
		empNo, temporal.SentinelMax).Scan(&curTitle, &curFrom)
	switch {
	case err == nil:
		current := temporal.Record{FromDate: temporal.FormatDate(curFrom), ToDate: temporal.SentinelMax}
		if err := temporal.CloseInterval(&current, boundary); err != nil {
			tx.Rollback()
			return invalidInputResult(err)
		}
		res, err := tx.ExecContext(ctx,
			"UPDATE titles SET to_date = $1 WHERE emp_no = $2 AND title = $3 AND from_date = $4",
			current.ToDate, empNo, curTitle, current.FromDate)
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
		"INSERT INTO titles (emp_no, title, from_date, to_date) VALUES ($1, $2, $3, $4)",
		empNo, newTitle, boundary, temporal.SentinelMax)
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

// temporalFilterValues converts the typed filter into the value map the
// filter spec consumes, normalizing date inputs up front.
func temporalFilterValues(filter domain.TemporalFilter) (map[string]interface{}, error) {
	values := map[string]interface{}{}
	if filter.EmpNo != nil {
		values["employee_id"] = *filter.EmpNo
	}
	if filter.Title != nil {
		values["title"] = *filter.Title
	}
	if filter.Salary != nil {
		values["salary"] = *filter.Salary
	}
	if filter.DeptNo != nil {
		values["dept_no"] = *filter.DeptNo
	}
	if filter.FromDate != nil {
		normalized, err := temporal.NormalizeDate(*filter.FromDate)
		if err != nil {
			return nil, err
		}
		values["from_date"] = normalized
	}
	if filter.ToDate != nil {
		normalized, err := temporal.NormalizeDate(*filter.ToDate)
		if err != nil {
			return nil, err
		}
		values["to_date"] = normalized
	}
	return values, nil
}
