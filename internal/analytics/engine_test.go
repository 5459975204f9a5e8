package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsight/employees-api/internal/domain"
)

// Reports that depend on "today" are pinned to a fixed clock so windows and
// thresholds are stable.
var testToday = time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*joinEngine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &joinEngine{db: db, now: func() time.Time { return testToday }}, mock
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEmployeeProfile(t *testing.T) {
	engine, mock := newTestEngine(t)

	name := "Georgi"
	minSalary := 60000
	query := "SELECT emp_no, employee_first_name, employee_last_name, title, salary, dept_no, dept_name, manager_first_name, manager_last_name, effective_date, end_date FROM " +
		profileSource +
		" WHERE employee_first_name || ' ' || employee_last_name LIKE $1 AND salary >= $2 ORDER BY emp_no, effective_date LIMIT 10"
	mock.ExpectQuery(query).
		WithArgs("%Georgi%", minSalary).
		WillReturnRows(sqlmock.NewRows([]string{
			"emp_no", "employee_first_name", "employee_last_name", "title", "salary",
			"dept_no", "dept_name", "manager_first_name", "manager_last_name",
			"effective_date", "end_date",
		}).AddRow(10001, "Georgi", "Facello", "Senior Engineer", 66074,
			"d005", "Development", "Leon", "DasSarma", date(2020, 6, 26), date(2021, 6, 26)))

	rows, err := engine.EmployeeProfile(context.Background(), domain.PageRequest{},
		domain.ProfileFilter{EmployeeName: &name, SalaryMin: &minSalary})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 10001, rows[0].EmpNo)
	assert.Equal(t, "Development", rows[0].DeptName)
	assert.Equal(t, "2020-06-26", rows[0].EffectiveDate)
	assert.Equal(t, "2021-06-26", rows[0].EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeProfileTitleAndDeptNameSubstring(t *testing.T) {
	engine, mock := newTestEngine(t)

	title := "Engineer"
	deptName := "Dev"
	query := "SELECT emp_no, employee_first_name, employee_last_name, title, salary, dept_no, dept_name, manager_first_name, manager_last_name, effective_date, end_date FROM " +
		profileSource +
		" WHERE title LIKE $1 AND dept_name LIKE $2 ORDER BY emp_no, effective_date LIMIT 10"
	mock.ExpectQuery(query).
		WithArgs("%Engineer%", "%Dev%").
		WillReturnRows(sqlmock.NewRows([]string{
			"emp_no", "employee_first_name", "employee_last_name", "title", "salary",
			"dept_no", "dept_name", "manager_first_name", "manager_last_name",
			"effective_date", "end_date",
		}).AddRow(10001, "Georgi", "Facello", "Senior Engineer", 66074,
			"d005", "Development", "Leon", "DasSarma", date(2020, 6, 26), date(2021, 6, 26)))

	rows, err := engine.EmployeeProfile(context.Background(), domain.PageRequest{},
		domain.ProfileFilter{Title: &title, DeptName: &deptName})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Senior Engineer", rows[0].Title)
	assert.Equal(t, "Development", rows[0].DeptName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeProfileRejectsBadDateFilter(t *testing.T) {
	engine, _ := newTestEngine(t)

	bad := "yesterday"
	_, err := engine.EmployeeProfile(context.Background(), domain.PageRequest{},
		domain.ProfileFilter{EffectiveDateMin: &bad})
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidDate, domain.KindOf(err))
}

func TestOrganizationalChart(t *testing.T) {
	engine, mock := newTestEngine(t)

	mock.ExpectQuery(chartManagersQuery).
		WithArgs("9999-01-01", nil).
		WillReturnRows(sqlmock.NewRows([]string{"emp_no", "title", "dept_no", "dept_name"}).
			AddRow(110022, "Manager", "d001", "Marketing").
			AddRow(110085, "Manager", "d002", "Finance"))
	mock.ExpectQuery(chartMembersQuery).
		WithArgs("9999-01-01", pq.Array([]string{"d001", "d002"})).
		WillReturnRows(sqlmock.NewRows([]string{"emp_no", "title", "dept_no", "dept_name"}).
			AddRow(10001, "Senior Engineer", "d001", "Marketing").
			AddRow(110022, "Manager", "d001", "Marketing").
			AddRow(10002, "Staff", "d002", "Finance"))

	chart, total, err := engine.OrganizationalChart(context.Background(), nil, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, chart, 4)

	// dept_no then level ordering, manager first
	assert.Equal(t, []int{110022, 10001, 110085, 10002},
		[]int{chart[0].EmpNo, chart[1].EmpNo, chart[2].EmpNo, chart[3].EmpNo})
	assert.Equal(t, domain.RoleManager, chart[0].RoleType)
	assert.Nil(t, chart[0].ManagerEmpNo)

	for _, row := range chart {
		if row.RoleType != domain.RoleEmployee {
			continue
		}
		require.NotNil(t, row.ManagerEmpNo)
		// a manager never appears as their own subordinate
		assert.NotEqual(t, row.EmpNo, *row.ManagerEmpNo)
		assert.Equal(t, 2, row.Level)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationalChartDeptFilter(t *testing.T) {
	engine, mock := newTestEngine(t)

	dept := "d001"
	mock.ExpectQuery(chartManagersQuery).
		WithArgs("9999-01-01", &dept).
		WillReturnRows(sqlmock.NewRows([]string{"emp_no", "title", "dept_no", "dept_name"}))

	chart, total, err := engine.OrganizationalChart(context.Background(), &dept, domain.PageRequest{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, chart)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRetirementCandidates(t *testing.T) {
	engine, mock := newTestEngine(t)

	// fixed today is 2026, so age 65 means born in or before 1961
	mock.ExpectQuery(retirementCountQuery).
		WithArgs(1961, "9999-01-01", nil).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(retirementDataQuery).
		WithArgs(1961, "9999-01-01", nil, 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"emp_no", "first_name", "last_name", "birth_date", "gender", "hire_date",
			"dept_no", "dept_name", "title",
		}).
			AddRow(10006, "Anneke", "Preusig", date(1953, 4, 20), "F", date(1989, 6, 2), "d005", "Development", "Senior Engineer").
			AddRow(10009, "Sumant", "Peac", date(1952, 4, 19), "F", date(1985, 2, 18), "d006", "Quality Management", "Senior Engineer"))

	candidates, total, err := engine.RetirementCandidates(context.Background(), nil, 65, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, candidates, 2)
	assert.Equal(t, "1953-04-20", candidates[0].BirthDate)
	assert.Equal(t, "1989-06-02", candidates[0].HireDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRetirementCandidatesNoMatches(t *testing.T) {
	engine, mock := newTestEngine(t)

	dept := "d009"
	mock.ExpectQuery(retirementCountQuery).
		WithArgs(1966, "9999-01-01", &dept).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	candidates, total, err := engine.RetirementCandidates(context.Background(), &dept, 60, domain.PageRequest{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, candidates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHeadcountChangesByYear(t *testing.T) {
	engine, mock := newTestEngine(t)

	year := 2020
	mock.ExpectQuery(headcountQuery).
		WithArgs(&year, &year, "9999-01-01").
		WillReturnRows(sqlmock.NewRows([]string{"year", "new_hires", "departures", "net_change", "turnover_rate_percent"}).
			AddRow(2020, 5, 2, 3, 40.0))

	changes, err := engine.HeadcountChangesByYear(context.Background(), &year, &year)
	require.NoError(t, err)
	require.Len(t, changes, 1)

	assert.Equal(t, domain.HeadcountChange{
		Year:                2020,
		NewHires:            5,
		Departures:          2,
		NetChange:           3,
		TurnoverRatePercent: 40.0,
	}, changes[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInternalMobilityDefaultWindow(t *testing.T) {
	engine, mock := newTestEngine(t)

	// 90 days back from the fixed today
	mock.ExpectQuery(mobilityCountQuery).
		WithArgs("2026-06-02", "2026-08-31").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(mobilityDataQuery).
		WithArgs("2026-06-02", "2026-08-31", 1, 0).
		WillReturnRows(sqlmock.NewRows([]string{"emp_no", "first_name", "last_name", "from_dept", "to_dept", "move_date"}).
			AddRow(10050, "Yinghua", "Dredge", "d002", "d005", date(2026, 7, 15)))

	moves, total, err := engine.InternalMobility(context.Background(), nil, nil, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, moves, 1)
	assert.Equal(t, "d002", moves[0].FromDept)
	assert.Equal(t, "d005", moves[0].ToDept)
	assert.Equal(t, "2026-07-15", moves[0].MoveDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInternalMobilityRejectsBadDate(t *testing.T) {
	engine, _ := newTestEngine(t)

	bad := "31-31-2020"
	_, _, err := engine.InternalMobility(context.Background(), &bad, nil, domain.PageRequest{})
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidDate, domain.KindOf(err))
}

func TestTransfersPageBeyondCap(t *testing.T) {
	engine, mock := newTestEngine(t)

	start, end := "2026-01-01", "2026-08-01"
	mock.ExpectQuery(mobilityCountQuery).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(450))

	// offset 100 is already past the capped total, no data query runs
	rows, total, err := engine.Transfers(context.Background(), &start, &end, domain.PageRequest{Page: 11, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 100, total)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransfers(t *testing.T) {
	engine, mock := newTestEngine(t)

	start, end := "2026-01-01", "2026-08-01"
	mock.ExpectQuery(mobilityCountQuery).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(transferDataQuery).
		WithArgs(start, end, 1, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"emp_no", "first_name", "last_name", "from_dept", "to_dept",
			"from_dept_name", "to_dept_name", "transfer_date",
		}).AddRow(10050, "Yinghua", "Dredge", "d002", "d005", "Finance", "Development", date(2026, 3, 1)))

	transfers, total, err := engine.Transfers(context.Background(), &start, &end, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, transfers, 1)
	assert.Equal(t, "Finance", transfers[0].FromDeptName)
	assert.Equal(t, "Development", transfers[0].ToDeptName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentPromotionsCapsTotal(t *testing.T) {
	engine, mock := newTestEngine(t)

	// 30-day window back from the fixed today
	mock.ExpectQuery(promotionCountQuery).
		WithArgs("2026-08-01").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(150))
	mock.ExpectQuery(promotionDataQuery).
		WithArgs("2026-08-01", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"emp_no", "first_name", "last_name", "old_title", "new_title", "promotion_date"}).
			AddRow(10001, "Georgi", "Facello", "Engineer", "Senior Engineer", date(2026, 8, 15)))

	promotions, total, err := engine.RecentPromotions(context.Background(), 30, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 100, total)
	require.Len(t, promotions, 1)
	assert.Equal(t, "Engineer", promotions[0].OldTitle)
	assert.Equal(t, "Senior Engineer", promotions[0].NewTitle)
	assert.Equal(t, "2026-08-15", promotions[0].PromotionDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLongTenureInRole(t *testing.T) {
	engine, mock := newTestEngine(t)

	asOf := "2026-01-01"
	mock.ExpectQuery(tenureCountQuery).
		WithArgs(asOf, 1095).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	// count of 1 clamps the fetch limit to the single remaining row
	mock.ExpectQuery(tenureDataQuery).
		WithArgs(asOf, 1095, 1, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"emp_no", "first_name", "last_name", "current_title", "title_start_date", "days_in_role",
		}).AddRow(10004, "Chirstian", "Koblick", "Engineer", date(2020, 5, 1), 2071))

	// zero minDays falls back to the three-year default
	rows, total, err := engine.LongTenureInRole(context.Background(), 0, &asOf, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "2020-05-01", rows[0].TitleStartDate)
	assert.Equal(t, 2071, rows[0].DaysInRole)
	assert.NoError(t, mock.ExpectationsWereMet())
}
