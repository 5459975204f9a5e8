package domain

// ==================== CORE ENTITIES ====================

// Employee represents the employees table. Demographic fields are mutable;
// the row itself is never time-versioned.
type Employee struct {
	EmpNo     int    `json:"emp_no" db:"emp_no"`
	BirthDate string `json:"birth_date" db:"birth_date"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Gender    string `json:"gender" db:"gender"`
	HireDate  string `json:"hire_date" db:"hire_date"`
}

// Department represents the departments table
type Department struct {
	DeptNo   string `json:"dept_no" db:"dept_no"`
	DeptName string `json:"dept_name" db:"dept_name"`
}

// Title represents the titles table. A row with ToDate equal to the
// sentinel date '9999-01-01' is the employee's current title.
type Title struct {
	EmpNo    int    `json:"emp_no" db:"emp_no"`
	Title    string `json:"title" db:"title"`
	FromDate string `json:"from_date" db:"from_date"`
	ToDate   string `json:"to_date" db:"to_date"`
}

// Salary represents the salaries table
type Salary struct {
	EmpNo    int    `json:"emp_no" db:"emp_no"`
	Salary   int    `json:"salary" db:"salary"`
	FromDate string `json:"from_date" db:"from_date"`
	ToDate   string `json:"to_date" db:"to_date"`
}

// DeptEmp represents the dept_emp table (department membership over time)
type DeptEmp struct {
	EmpNo    int    `json:"emp_no" db:"emp_no"`
	DeptNo   string `json:"dept_no" db:"dept_no"`
	FromDate string `json:"from_date" db:"from_date"`
	ToDate   string `json:"to_date" db:"to_date"`
}

// DeptManager represents the dept_manager table (management role over time)
type DeptManager struct {
	EmpNo    int    `json:"emp_no" db:"emp_no"`
	DeptNo   string `json:"dept_no" db:"dept_no"`
	FromDate string `json:"from_date" db:"from_date"`
	ToDate   string `json:"to_date" db:"to_date"`
}

// ==================== MUTATION RESULTS ====================

// Status values reported by repository mutations.
const (
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

// OperationResult is the envelope every mutation returns. Rowcount is the
// number of rows actually touched; a zero-row update or delete is reported
// as not_found, never as an error.
type OperationResult struct {
	Rowcount int64  `json:"rowcount"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
}

// ==================== POINT-IN-TIME VIEWS ====================

// ProfileRow is one (employee, effective-date) slice of the employee
// profile history: the title, salary, department and manager that were
// simultaneously in effect on the salary record's from_date.
type ProfileRow struct {
	EmpNo             int    `json:"emp_no"`
	EmployeeFirstName string `json:"employee_first_name"`
	EmployeeLastName  string `json:"employee_last_name"`
	Title             string `json:"title"`
	Salary            int    `json:"salary"`
	DeptNo            string `json:"dept_no"`
	DeptName          string `json:"dept_name"`
	ManagerFirstName  string `json:"manager_first_name"`
	ManagerLastName   string `json:"manager_last_name"`
	EffectiveDate     string `json:"effective_date"`
	EndDate           string `json:"end_date"`
}

// Org chart role types.
const (
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

// ChartRow is one node of the two-level organizational chart.
// ManagerEmpNo is nil for level-1 (manager) rows.
type ChartRow struct {
	EmpNo        int    `json:"emp_no"`
	Title        string `json:"title"`
	DeptNo       string `json:"dept_no"`
	DeptName     string `json:"dept_name"`
	ManagerEmpNo *int   `json:"manager_emp_no"`
	RoleType     string `json:"role_type"`
	Level        int    `json:"level"`
}

// RetirementCandidate is a currently-employed employee whose birth year is
// at or below the retirement threshold.
type RetirementCandidate struct {
	EmpNo     int    `json:"emp_no"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
	HireDate  string `json:"hire_date"`
	DeptNo    string `json:"dept_no"`
	DeptName  string `json:"dept_name"`
	Title     string `json:"title"`
}

// HeadcountChange aggregates hires and departures for one calendar year.
type HeadcountChange struct {
	Year                int     `json:"year"`
	NewHires            int     `json:"new_hires"`
	Departures          int     `json:"departures"`
	NetChange           int     `json:"net_change"`
	TurnoverRatePercent float64 `json:"turnover_rate_percent"`
}

// MobilityRow is a department change event: the employee's newest dept_emp
// row paired with the immediately preceding one.
type MobilityRow struct {
	EmpNo     int    `json:"emp_no"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FromDept  string `json:"from_dept"`
	ToDept    string `json:"to_dept"`
	MoveDate  string `json:"move_date"`
}

// TransferRow is a MobilityRow enriched with department names.
type TransferRow struct {
	EmpNo        int    `json:"emp_no"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FromDept     string `json:"from_dept"`
	ToDept       string `json:"to_dept"`
	FromDeptName string `json:"from_dept_name"`
	ToDeptName   string `json:"to_dept_name"`
	TransferDate string `json:"transfer_date"`
}

// PromotionRow is a title change event within the lookback window.
type PromotionRow struct {
	EmpNo         int    `json:"emp_no"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	OldTitle      string `json:"old_title"`
	NewTitle      string `json:"new_title"`
	PromotionDate string `json:"promotion_date"`
}

// TenureRow flags an employee who has held their most recent title for at
// least the requested number of days.
type TenureRow struct {
	EmpNo          int    `json:"emp_no"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	CurrentTitle   string `json:"current_title"`
	TitleStartDate string `json:"title_start_date"`
	DaysInRole     int    `json:"days_in_role"`
}
