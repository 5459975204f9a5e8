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

func TestSalaryRepositoryAddIntegrityViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSalaryRepository(db)

	mock.ExpectExec("INSERT INTO salaries (emp_no, salary, from_date, to_date) VALUES ($1, $2, $3, $4)").
		WithArgs(99999, 60000, "2020-01-01", "9999-01-01").
		WillReturnError(&pq.Error{Code: "23503", Message: `insert or update on table "salaries" violates foreign key constraint`})

	res, err := repo.Add(context.Background(), 99999, 60000, "2020-01-01", "")
	require.Error(t, err)
	assert.Equal(t, domain.KindIntegrity, domain.KindOf(err))
	assert.Equal(t, domain.StatusError, res.Status)
	assert.EqualValues(t, 0, res.Rowcount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryRepositoryAddTransientFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSalaryRepository(db)

	mock.ExpectExec("INSERT INTO salaries (emp_no, salary, from_date, to_date) VALUES ($1, $2, $3, $4)").
		WithArgs(10001, 60000, "2020-01-01", "9999-01-01").
		WillReturnError(&pq.Error{Code: "57014", Message: "canceling statement due to statement timeout"})

	_, err := repo.Add(context.Background(), 10001, 60000, "2020-01-01", "")
	require.Error(t, err)
	assert.Equal(t, domain.KindTransient, domain.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryRepositoryReassign(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSalaryRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT salary, from_date FROM salaries WHERE emp_no = $1 AND to_date = $2 FOR UPDATE").
		WithArgs(10001, "9999-01-01").
		WillReturnRows(sqlmock.NewRows([]string{"salary", "from_date"}).
			AddRow(60000, date(2020, 1, 1)))
	mock.ExpectExec("UPDATE salaries SET to_date = $1 WHERE emp_no = $2 AND salary = $3 AND from_date = $4").
		WithArgs("2023-01-01", 10001, 60000, "2020-01-01").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO salaries (emp_no, salary, from_date, to_date) VALUES ($1, $2, $3, $4)").
		WithArgs(10001, 72000, "2023-01-01", "9999-01-01").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := repo.Reassign(context.Background(), 10001, 72000, "2023-01-01")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, res.Status)
	assert.EqualValues(t, 2, res.Rowcount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryRepositoryDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSalaryRepository(db)

	mock.ExpectExec("DELETE FROM salaries WHERE emp_no = $1 AND salary = $2").
		WithArgs(10001, 12345).
		WillReturnResult(sqlmock.NewResult(0, 0))

	res, err := repo.Delete(context.Background(), 10001, 12345)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotFound, res.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
