package domain

import "context"

// PageRequest carries the caller's pagination intent. Non-positive values
// fall back to page 1 / size 10 inside the repositories.
type PageRequest struct {
	Page int
	Size int
}

// ==================== LIST FILTERS ====================

// EmployeeFilter defines criteria for listing employees
type EmployeeFilter struct {
	EmpNo     *int
	Name      *string
	Gender    *string
	BirthDate *string
	HireDate  *string
}

// DepartmentFilter defines criteria for listing departments
type DepartmentFilter struct {
	DeptNo   *string
	DeptName *string
}

// TemporalFilter defines the shared criteria for listing temporal
// assignment rows (titles, salaries, dept_emp, dept_manager).
type TemporalFilter struct {
	EmpNo    *int
	Title    *string
	Salary   *int
	DeptNo   *string
	FromDate *string
	ToDate   *string
}

// ProfileFilter defines criteria for the point-in-time profile view.
// Range bounds are inclusive and each side is independently optional.
type ProfileFilter struct {
	EmpNo            *int
	EmpNoMin         *int
	EmpNoMax         *int
	EmployeeName     *string
	Title            *string
	Salary           *int
	SalaryMin        *int
	SalaryMax        *int
	DeptNo           *string
	DeptName         *string
	ManagerName      *string
	EffectiveDate    *string
	EffectiveDateMin *string
	EffectiveDateMax *string
	EndDate          *string
}

// ==================== REPOSITORY CONTRACTS ====================

// EmployeeRepository defines data access for employee demographics.
type EmployeeRepository interface {
	List(ctx context.Context, page PageRequest, filter EmployeeFilter) ([]Employee, error)
	Add(ctx context.Context, e Employee) (OperationResult, error)
	Update(ctx context.Context, e Employee) (OperationResult, error)
	Delete(ctx context.Context, empNo int) (OperationResult, error)
}

// DepartmentRepository defines data access for the departments table.
type DepartmentRepository interface {
	List(ctx context.Context, page PageRequest, filter DepartmentFilter) ([]Department, error)
	Add(ctx context.Context, d Department) (OperationResult, error)
	Update(ctx context.Context, d Department) (OperationResult, error)
	Delete(ctx context.Context, deptNo string) (OperationResult, error)
}

// TitleRepository manages the titles temporal stream.
type TitleRepository interface {
	List(ctx context.Context, page PageRequest, filter TemporalFilter) ([]Title, error)
	Add(ctx context.Context, empNo int, title, fromDate, toDate string) (OperationResult, error)
	// Update closes (or corrects) the row identified by its full natural key.
	Update(ctx context.Context, empNo int, title, fromDate, toDate string) (OperationResult, error)
	Delete(ctx context.Context, empNo int, title string) (OperationResult, error)
	// Reassign closes the current title at fromDate and opens newTitle in a
	// single transaction.
	Reassign(ctx context.Context, empNo int, newTitle, fromDate string) (OperationResult, error)
}

// SalaryRepository manages the salaries temporal stream.
type SalaryRepository interface {
	List(ctx context.Context, page PageRequest, filter TemporalFilter) ([]Salary, error)
	Add(ctx context.Context, empNo, salary int, fromDate, toDate string) (OperationResult, error)
	Update(ctx context.Context, empNo, salary int, fromDate, toDate string) (OperationResult, error)
	Delete(ctx context.Context, empNo, salary int) (OperationResult, error)
	Reassign(ctx context.Context, empNo, newSalary int, fromDate string) (OperationResult, error)
}

// DeptEmpRepository manages department membership over time.
type DeptEmpRepository interface {
	List(ctx context.Context, page PageRequest, filter TemporalFilter) ([]DeptEmp, error)
	Add(ctx context.Context, empNo int, deptNo, fromDate, toDate string) (OperationResult, error)
	Update(ctx context.Context, empNo int, deptNo, fromDate, toDate string) (OperationResult, error)
	Delete(ctx context.Context, empNo int, deptNo string) (OperationResult, error)
	Reassign(ctx context.Context, empNo int, newDeptNo, fromDate string) (OperationResult, error)
}

// DeptManagerRepository manages department management roles over time.
// ListCurrent returns only rows whose (emp_no, dept_no) pair has an open
// interval; ListAll is the unfiltered audit view.
type DeptManagerRepository interface {
	ListCurrent(ctx context.Context, page PageRequest, filter TemporalFilter) ([]DeptManager, error)
	ListAll(ctx context.Context, page PageRequest, filter TemporalFilter) ([]DeptManager, error)
	Add(ctx context.Context, empNo int, deptNo, fromDate, toDate string) (OperationResult, error)
	Update(ctx context.Context, empNo int, deptNo, fromDate, toDate string) (OperationResult, error)
	Delete(ctx context.Context, empNo int, deptNo string) (OperationResult, error)
	Reassign(ctx context.Context, deptNo string, newEmpNo int, fromDate string) (OperationResult, error)
}

// ==================== POINT-IN-TIME JOIN ENGINE ====================

// JoinEngine answers composite questions that require joining multiple
// temporal streams at a consistent point in time. Capped operations return
// the clamped total alongside the page of rows.
type JoinEngine interface {
	EmployeeProfile(ctx context.Context, page PageRequest, filter ProfileFilter) ([]ProfileRow, error)
	OrganizationalChart(ctx context.Context, deptNo *string, page PageRequest) ([]ChartRow, int, error)
	RetirementCandidates(ctx context.Context, deptNo *string, retirementAge int, page PageRequest) ([]RetirementCandidate, int, error)
	HeadcountChangesByYear(ctx context.Context, startYear, endYear *int) ([]HeadcountChange, error)
	InternalMobility(ctx context.Context, startDate, endDate *string, page PageRequest) ([]MobilityRow, int, error)
	RecentPromotions(ctx context.Context, windowDays int, page PageRequest) ([]PromotionRow, int, error)
	Transfers(ctx context.Context, startDate, endDate *string, page PageRequest) ([]TransferRow, int, error)
	LongTenureInRole(ctx context.Context, minDays int, asOfDate *string, page PageRequest) ([]TenureRow, int, error)
}
