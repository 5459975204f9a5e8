package analytics

import (
	"context"

	"github.com/lib/pq"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository"
	"github.com/hrsight/employees-api/internal/temporal"
)

const chartManagersQuery = `SELECT dm.emp_no, COALESCE(t.title, ''), d.dept_no, d.dept_name FROM dept_manager dm JOIN departments d ON dm.dept_no = d.dept_no LEFT JOIN titles t ON dm.emp_no = t.emp_no AND t.to_date = $1 WHERE dm.to_date = $1 AND ($2::text IS NULL OR d.dept_no = $2) ORDER BY d.dept_no`

const chartMembersQuery = `SELECT de.emp_no, COALESCE(t.title, ''), de.dept_no, d.dept_name FROM dept_emp de JOIN departments d ON de.dept_no = d.dept_no LEFT JOIN titles t ON de.emp_no = t.emp_no AND t.to_date = $1 WHERE de.to_date = $1 AND de.dept_no = ANY($2) ORDER BY de.dept_no, de.emp_no`

// OrganizationalChart builds a two-level hierarchy from current rows only:
// level 1 is each department's current manager, level 2 the department's
// current members minus the manager themself. Totals are capped.
func (e *joinEngine) OrganizationalChart(ctx context.Context, deptNo *string, page domain.PageRequest) ([]domain.ChartRow, int, error) {
	pageNo, pageSize := repository.NormalizePage(page.Page, page.Size)

	rows, err := e.db.QueryContext(ctx, chartManagersQuery, temporal.SentinelMax, deptNo)
	if err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}
	defer rows.Close()

	managers := make(map[string]domain.ChartRow)
	var deptOrder []string
	for rows.Next() {
		var m domain.ChartRow
		if err := rows.Scan(&m.EmpNo, &m.Title, &m.DeptNo, &m.DeptName); err != nil {
			return nil, 0, repository.ClassifyStoreError(err)
		}
		m.RoleType = domain.RoleManager
		m.Level = 1
		managers[m.DeptNo] = m
		deptOrder = append(deptOrder, m.DeptNo)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}
	if len(managers) == 0 {
		return nil, 0, nil
	}

	memberRows, err := e.db.QueryContext(ctx, chartMembersQuery, temporal.SentinelMax, pq.Array(deptOrder))
	if err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}
	defer memberRows.Close()

	membersByDept := make(map[string][]domain.ChartRow)
	for memberRows.Next() {
		var m domain.ChartRow
		if err := memberRows.Scan(&m.EmpNo, &m.Title, &m.DeptNo, &m.DeptName); err != nil {
			return nil, 0, repository.ClassifyStoreError(err)
		}
		mgr := managers[m.DeptNo]
		if m.EmpNo == mgr.EmpNo {
			// the manager's own dept_emp row is not a subordinate
			continue
		}
		mgrNo := mgr.EmpNo
		m.ManagerEmpNo = &mgrNo
		m.RoleType = domain.RoleEmployee
		m.Level = 2
		membersByDept[m.DeptNo] = append(membersByDept[m.DeptNo], m)
	}
	if err := memberRows.Err(); err != nil {
		return nil, 0, repository.ClassifyStoreError(err)
	}

	var chart []domain.ChartRow
	for _, dept := range deptOrder {
		chart = append(chart, managers[dept])
		chart = append(chart, membersByDept[dept]...)
		if len(chart) >= repository.AnalyticsTotalCap {
			chart = chart[:repository.AnalyticsTotalCap]
			break
		}
	}

	plan := repository.PlanCapped(len(chart), pageNo, pageSize)
	if plan.Empty {
		return nil, plan.Total, nil
	}
	return chart[plan.Offset : plan.Offset+plan.Limit], plan.Total, nil
}
