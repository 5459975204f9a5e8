package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository/builder"
	"github.com/hrsight/employees-api/internal/temporal"
)

type employeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new instance of EmployeeRepository
func NewEmployeeRepository(db *sql.DB) domain.EmployeeRepository {
	return &employeeRepository{db: db}
}

var employeeFilterSpec = FilterSpec{
	{Name: "name", Column: "first_name || ' ' || last_name", Mode: MatchSubstring},
	{Name: "gender", Column: "gender", Mode: MatchExact},
	{Name: "employee_id", Column: "emp_no", Mode: MatchExact},
	{Name: "birth_date", Column: "birth_date", Mode: MatchExact},
	{Name: "hire_date", Column: "hire_date", Mode: MatchExact},
}

func (r *employeeRepository) List(ctx context.Context, page domain.PageRequest, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	pageNo, pageSize := NormalizePage(page.Page, page.Size)

	values := map[string]interface{}{}
	if filter.EmpNo != nil {
		values["employee_id"] = *filter.EmpNo
	}
	if filter.Name != nil {
		values["name"] = *filter.Name
	}
	if filter.Gender != nil {
		values["gender"] = *filter.Gender
	}
	if filter.BirthDate != nil {
		normalized, err := temporal.NormalizeDate(*filter.BirthDate)
		if err != nil {
			return nil, err
		}
		values["birth_date"] = normalized
	}
	if filter.HireDate != nil {
		normalized, err := temporal.NormalizeDate(*filter.HireDate)
		if err != nil {
			return nil, err
		}
		values["hire_date"] = normalized
	}

	b := builder.NewSQLBuilder().
		Select("emp_no", "birth_date", "first_name", "last_name", "gender", "hire_date").
		From("employees")
	if err := employeeFilterSpec.Apply(b, values); err != nil {
		return nil, err
	}
	query, args := b.OrderBy("emp_no ASC").
		Limit(pageSize).
		Offset(PageOffset(pageNo, pageSize)).
		Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ClassifyStoreError(err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		var birth, hire time.Time
		if err := rows.Scan(&e.EmpNo, &birth, &e.FirstName, &e.LastName, &e.Gender, &hire); err != nil {
			return nil, ClassifyStoreError(err)
		}
		e.BirthDate = temporal.FormatDate(birth)
		e.HireDate = temporal.FormatDate(hire)
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, ClassifyStoreError(err)
	}
	return employees, nil
}

func (r *employeeRepository) Add(ctx context.Context, e domain.Employee) (domain.OperationResult, error) {
	birth, err := temporal.NormalizeDate(e.BirthDate)
	if err != nil {
		return invalidInputResult(err)
	}
	hire, err := temporal.NormalizeDate(e.HireDate)
	if err != nil {
		return invalidInputResult(err)
	}

	query, args := builder.NewSQLBuilder().
		Insert("employees", "emp_no", "birth_date", "first_name", "last_name", "gender", "hire_date").
		Values(e.EmpNo, birth, e.FirstName, e.LastName, e.Gender, hire).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	return successResult(n), nil
}

// Update rewrites the mutable demographic fields of one employee row.
func (r *employeeRepository) Update(ctx context.Context, e domain.Employee) (domain.OperationResult, error) {
	hire, err := temporal.NormalizeDate(e.HireDate)
	if err != nil {
		return invalidInputResult(err)
	}

	query, args := builder.NewSQLBuilder().
		Update("employees").
		Set("first_name", e.FirstName).
		Set("last_name", e.LastName).
		Set("gender", e.Gender).
		Set("hire_date", hire).
		Where("emp_no = ?", e.EmpNo).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notFoundResult("no employee found with that emp_no to update"), nil
	}
	return successResult(n), nil
}

func (r *employeeRepository) Delete(ctx context.Context, empNo int) (domain.OperationResult, error) {
	query, args := builder.NewSQLBuilder().
		Delete("employees").
		Where("emp_no = ?", empNo).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notFoundResult("no employee found with that emp_no to delete"), nil
	}
	return successResult(n), nil
}
