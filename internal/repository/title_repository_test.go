package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsight/employees-api/internal/domain"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var sentinelDate = date(9999, time.January, 1)

func TestTitleRepositoryList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTitleRepository(db)

	empNo := 10001
	mock.ExpectQuery("SELECT emp_no, title, from_date, to_date FROM titles WHERE emp_no = $1 ORDER BY emp_no, from_date LIMIT 10").
		WithArgs(empNo).
		WillReturnRows(sqlmock.NewRows([]string{"emp_no", "title", "from_date", "to_date"}).
			AddRow(10001, "Engineer", date(2020, 1, 1), date(2022, 6, 1)).
			AddRow(10001, "Senior Engineer", date(2022, 6, 1), sentinelDate))

	titles, err := repo.List(context.Background(), domain.PageRequest{}, domain.TemporalFilter{EmpNo: &empNo})
	require.NoError(t, err)
	require.Len(t, titles, 2)

	assert.Equal(t, "2020-01-01", titles[0].FromDate)
	assert.Equal(t, "2022-06-01", titles[0].ToDate)
	assert.Equal(t, "9999-01-01", titles[1].ToDate)

	// exactly one current row per employee in the dataset
	current := 0
	for _, title := range titles {
		if title.ToDate == "9999-01-01" {
			current++
		}
	}
	assert.Equal(t, 1, current)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTitleRepositoryListSubstringFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTitleRepository(db)

	value := "Engineer"
	mock.ExpectQuery("SELECT emp_no, title, from_date, to_date FROM titles WHERE title LIKE $1 ORDER BY emp_no, from_date LIMIT 5 OFFSET 5").
		WithArgs("%Engineer%").
		WillReturnRows(sqlmock.NewRows([]string{"emp_no", "title", "from_date", "to_date"}))

	_, err := repo.List(context.Background(), domain.PageRequest{Page: 2, Size: 5}, domain.TemporalFilter{Title: &value})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTitleRepositoryAdd(t *testing.T) {
	t.Run("defaults to sentinel and normalizes", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTitleRepository(db)

		mock.ExpectExec("INSERT INTO titles (emp_no, title, from_date, to_date) VALUES ($1, $2, $3, $4)").
			WithArgs(10001, "Engineer", "2020-01-01", "9999-01-01").
			WillReturnResult(sqlmock.NewResult(0, 1))

		res, err := repo.Add(context.Background(), 10001, "Engineer", "01/01/2020", "")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSuccess, res.Status)
		assert.EqualValues(t, 1, res.Rowcount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects malformed from_date without touching the store", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTitleRepository(db)

		res, err := repo.Add(context.Background(), 10001, "Engineer", "not-a-date", "")
		require.Error(t, err)
		assert.Equal(t, domain.KindInvalidDate, domain.KindOf(err))
		assert.Equal(t, domain.StatusError, res.Status)
		assert.EqualValues(t, 0, res.Rowcount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTitleRepositoryUpdate(t *testing.T) {
	t.Run("closes interval by natural key", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTitleRepository(db)

		mock.ExpectExec("UPDATE titles SET to_date = $1 WHERE emp_no = $2 AND title = $3 AND from_date = $4").
			WithArgs("2022-06-01", 10001, "Engineer", "2020-01-01").
			WillReturnResult(sqlmock.NewResult(0, 1))

		res, err := repo.Update(context.Background(), 10001, "Engineer", "2020-01-01", "2022-06-01")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSuccess, res.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows is not_found, not an error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTitleRepository(db)

		mock.ExpectExec("UPDATE titles SET to_date = $1 WHERE emp_no = $2 AND title = $3 AND from_date = $4").
			WithArgs("2022-06-01", 99999, "Engineer", "2020-01-01").
			WillReturnResult(sqlmock.NewResult(0, 0))

		res, err := repo.Update(context.Background(), 99999, "Engineer", "2020-01-01", "2022-06-01")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusNotFound, res.Status)
		assert.EqualValues(t, 0, res.Rowcount)
	})

	t.Run("boundary before interval start is a policy violation", func(t *testing.T) {
		db, _ := newMockDB(t)
		repo := NewTitleRepository(db)

		res, err := repo.Update(context.Background(), 10001, "Engineer", "2020-01-01", "2019-12-31")
		require.Error(t, err)
		assert.Equal(t, domain.KindPolicy, domain.KindOf(err))
		assert.Equal(t, domain.StatusError, res.Status)
	})
}

func TestTitleRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTitleRepository(db)

	mock.ExpectExec("DELETE FROM titles WHERE emp_no = $1 AND title = $2").
		WithArgs(10001, "Engineer").
		WillReturnResult(sqlmock.NewResult(0, 0))

	res, err := repo.Delete(context.Background(), 10001, "Engineer")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotFound, res.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTitleRepositoryReassign(t *testing.T) {
	t.Run("closes current and opens replacement in one transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTitleRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT title, from_date FROM titles WHERE emp_no = $1 AND to_date = $2 FOR UPDATE").
			WithArgs(10001, "9999-01-01").
			WillReturnRows(sqlmock.NewRows([]string{"title", "from_date"}).
				AddRow("Engineer", date(2020, 1, 1)))
		mock.ExpectExec("UPDATE titles SET to_date = $1 WHERE emp_no = $2 AND title = $3 AND from_date = $4").
			WithArgs("2022-06-01", 10001, "Engineer", "2020-01-01").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO titles (emp_no, title, from_date, to_date) VALUES ($1, $2, $3, $4)").
			WithArgs(10001, "Senior Engineer", "2022-06-01", "9999-01-01").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		res, err := repo.Reassign(context.Background(), 10001, "Senior Engineer", "2022-06-01")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSuccess, res.Status)
		assert.EqualValues(t, 2, res.Rowcount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no current row degenerates to open", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTitleRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT title, from_date FROM titles WHERE emp_no = $1 AND to_date = $2 FOR UPDATE").
			WithArgs(10001, "9999-01-01").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec("INSERT INTO titles (emp_no, title, from_date, to_date) VALUES ($1, $2, $3, $4)").
			WithArgs(10001, "Engineer", "2020-01-01", "9999-01-01").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		res, err := repo.Reassign(context.Background(), 10001, "Engineer", "2020-01-01")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSuccess, res.Status)
		assert.EqualValues(t, 1, res.Rowcount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("boundary before current start rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTitleRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT title, from_date FROM titles WHERE emp_no = $1 AND to_date = $2 FOR UPDATE").
			WithArgs(10001, "9999-01-01").
			WillReturnRows(sqlmock.NewRows([]string{"title", "from_date"}).
				AddRow("Engineer", date(2020, 1, 1)))
		mock.ExpectRollback()

		res, err := repo.Reassign(context.Background(), 10001, "Senior Engineer", "2019-06-01")
		require.Error(t, err)
		assert.Equal(t, domain.KindPolicy, domain.KindOf(err))
		assert.Equal(t, domain.StatusError, res.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
