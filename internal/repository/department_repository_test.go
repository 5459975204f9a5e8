package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsight/employees-api/internal/domain"
)

func TestDepartmentRepositoryList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDepartmentRepository(db)

	name := "Dev"
	mock.ExpectQuery("SELECT dept_no, dept_name FROM departments WHERE dept_name LIKE $1 ORDER BY dept_no LIMIT 10").
		WithArgs("%Dev%").
		WillReturnRows(sqlmock.NewRows([]string{"dept_no", "dept_name"}).
			AddRow("d005", "Development"))

	departments, err := repo.List(context.Background(), domain.PageRequest{}, domain.DepartmentFilter{DeptName: &name})
	require.NoError(t, err)
	require.Len(t, departments, 1)
	assert.Equal(t, "d005", departments[0].DeptNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepositoryAdd(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDepartmentRepository(db)

	mock.ExpectExec("INSERT INTO departments (dept_no, dept_name) VALUES ($1, $2)").
		WithArgs("d010", "Research").
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := repo.Add(context.Background(), domain.Department{DeptNo: "d010", DeptName: "Research"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, res.Status)
	assert.EqualValues(t, 1, res.Rowcount)
}

func TestDepartmentRepositoryDeleteBlockedByForeignKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDepartmentRepository(db)

	fkErr := &pq.Error{
		Code:    "23503",
		Message: `update or delete on table "departments" violates foreign key constraint "dept_emp_dept_no_fkey" on table "dept_emp"`,
	}
	mock.ExpectExec("DELETE FROM departments WHERE dept_no = $1").
		WithArgs("d005").
		WillReturnError(fkErr)

	res, err := repo.Delete(context.Background(), "d005")
	require.Error(t, err)
	assert.Equal(t, domain.KindIntegrity, domain.KindOf(err))
	assert.Equal(t, domain.StatusError, res.Status)
	assert.EqualValues(t, 0, res.Rowcount)
	assert.Contains(t, res.Message, "foreign key constraint")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepositoryUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDepartmentRepository(db)

	mock.ExpectExec("UPDATE departments SET dept_name = $1 WHERE dept_no = $2").
		WithArgs("Quality", "d999").
		WillReturnResult(sqlmock.NewResult(0, 0))

	res, err := repo.Update(context.Background(), domain.Department{DeptNo: "d999", DeptName: "Quality"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotFound, res.Status)
}
