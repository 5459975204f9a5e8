package repository

import (
	"context"
	"database/sql"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository/builder"
)

type departmentRepository struct {
	db *sql.DB
}

// NewDepartmentRepository creates a new instance of DepartmentRepository
func NewDepartmentRepository(db *sql.DB) domain.DepartmentRepository {
	return &departmentRepository{db: db}
}

var departmentFilterSpec = FilterSpec{
	{Name: "dept_name", Column: "dept_name", Mode: MatchSubstring},
	{Name: "dept_id", Column: "dept_no", Mode: MatchExact},
}

func (r *departmentRepository) List(ctx context.Context, page domain.PageRequest, filter domain.DepartmentFilter) ([]domain.Department, error) {
	pageNo, pageSize := NormalizePage(page.Page, page.Size)

	values := map[string]interface{}{}
	if filter.DeptNo != nil {
		values["dept_id"] = *filter.DeptNo
	}
	if filter.DeptName != nil {
		values["dept_name"] = *filter.DeptName
	}

	b := builder.NewSQLBuilder().
		Select("dept_no", "dept_name").
		From("departments")
	if err := departmentFilterSpec.Apply(b, values); err != nil {
		return nil, err
	}
	query, args := b.OrderBy("dept_no").
		Limit(pageSize).
		Offset(PageOffset(pageNo, pageSize)).
		Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ClassifyStoreError(err)
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.DeptNo, &d.DeptName); err != nil {
			return nil, ClassifyStoreError(err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, ClassifyStoreError(err)
	}
	return departments, nil
}

func (r *departmentRepository) Add(ctx context.Context, d domain.Department) (domain.OperationResult, error) {
	query, args := builder.NewSQLBuilder().
		Insert("departments", "dept_no", "dept_name").
		Values(d.DeptNo, d.DeptName).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	return successResult(n), nil
}

func (r *departmentRepository) Update(ctx context.Context, d domain.Department) (domain.OperationResult, error) {
	query, args := builder.NewSQLBuilder().
		Update("departments").
		Set("dept_name", d.DeptName).
		Where("dept_no = ?", d.DeptNo).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notFoundResult("no department found with that dept_no to update"), nil
	}
	return successResult(n), nil
}

// Delete removes a department outright. When dept_emp or dept_manager rows
// still reference it the foreign key rejects the delete and the result
// carries the constraint message.
func (r *departmentRepository) Delete(ctx context.Context, deptNo string) (domain.OperationResult, error) {
	query, args := builder.NewSQLBuilder().
		Delete("departments").
		Where("dept_no = ?", deptNo).
		Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mutationError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notFoundResult("no department found with that dept_no to delete"), nil
	}
	return successResult(n), nil
}
