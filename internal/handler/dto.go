package handler

// Query-parameter DTOs. The frontend sends Capitalized_Snake names on the
// entity endpoints and lowercase names on the report endpoints; both are
// preserved here.

type PageQuery struct {
	PageNumber int `query:"Page_Number"`
	RowCount   int `query:"Row_Count"`
}

// ==================== DEPARTMENTS ====================

type DeptListQuery struct {
	PageQuery
	DeptID   *string `query:"Dept_ID"`
	DeptName *string `query:"Dept_Name"`
}

type DeptMutationQuery struct {
	DeptID   string `query:"Dept_ID" validate:"required"`
	DeptName string `query:"Dept_Name" validate:"required"`
}

type DeptDeleteQuery struct {
	DeptID string `query:"Dept_ID" validate:"required"`
}

// ==================== TITLES ====================

type TitleListQuery struct {
	PageQuery
	EmployeeID *int    `query:"Employee_ID"`
	Title      *string `query:"Title"`
	FromDate   *string `query:"From_Date"`
	ToDate     *string `query:"To_Date"`
}

type TitleAddQuery struct {
	EmployeeID int    `query:"Employee_ID" validate:"required"`
	Title      string `query:"Title" validate:"required"`
	FromDate   string `query:"From_Date" validate:"required"`
	ToDate     string `query:"To_Date"`
}

type TitleUpdateQuery struct {
	EmployeeID int    `query:"Employee_ID" validate:"required"`
	Title      string `query:"Title" validate:"required"`
	FromDate   string `query:"From_Date" validate:"required"`
	ToDate     string `query:"To_Date" validate:"required"`
}

type TitleDeleteQuery struct {
	EmployeeID int    `query:"Employee_ID" validate:"required"`
	Title      string `query:"Title" validate:"required"`
}

type TitleReassignQuery struct {
	EmployeeID int    `query:"Employee_ID" validate:"required"`
	NewTitle   string `query:"New_Title" validate:"required"`
	FromDate   string `query:"From_Date" validate:"required"`
}

// ==================== SALARIES ====================

type SalaryListQuery struct {
	PageQuery
	EmployeeID *int    `query:"Employee_ID"`
	Salary     *int    `query:"Salary"`
	FromDate   *string `query:"From_Date"`
	ToDate     *string `query:"To_Date"`
}

type SalaryAddQuery struct {
	EmployeeID int    `query:"Employee_ID" validate:"required"`
	Salary     int    `query:"Salary" validate:"required"`
	FromDate   string `query:"From_Date" validate:"required"`
	ToDate     string `query:"To_Date"`
}

type SalaryUpdateQuery struct {
	EmployeeID int    `query:"Employee_ID" validate:"required"`
	Salary     int    `query:"Salary" validate:"required"`
	FromDate   string `query:"From_Date" validate:"required"`
	ToDate     string `query:"To_Date" validate:"required"`
}

type SalaryDeleteQuery struct {
	EmployeeID int `query:"Employee_ID" validate:"required"`
	Salary     int `query:"Salary" validate:"required"`
}

type SalaryReassignQuery struct {
	EmployeeID int    `query:"Employee_ID" validate:"required"`
	NewSalary  int    `query:"New_Salary" validate:"required"`
	FromDate   string `query:"From_Date" validate:"required"`
}

// ==================== DEPT_EMP / DEPT_MANAGER ====================

type DeptAssignListQuery struct {
	PageQuery
	EmployeeID *int    `query:"Employee_ID"`
	DeptNumber *string `query:"Dept_Number"`
	FromDate   *string `query:"From_Date"`
	ToDate     *string `query:"To_Date"`
	// Include_History widens dept_manager listing to closed intervals too
	History bool `query:"Include_History"`
}

type DeptAssignAddQuery struct {
	EmployeeID int    `query:"Employee_ID" validate:"required"`
	DeptNumber string `query:"Dept_Number" validate:"required"`
	FromDate   string `query:"From_Date" validate:"required"`
	ToDate     string `query:"To_Date"`
}

type DeptAssignUpdateQuery struct {
	EmployeeID int    `query:"Employee_ID" validate:"required"`
	DeptNumber string `query:"Dept_Number" validate:"required"`
	FromDate   string `query:"From_Date" validate:"required"`
	ToDate     string `query:"To_Date" validate:"required"`
}

type DeptAssignDeleteQuery struct {
	EmployeeID int    `query:"Employee_ID" validate:"required"`
	DeptNumber string `query:"Dept_Number" validate:"required"`
}

type DeptEmpReassignQuery struct {
	EmployeeID int    `query:"Employee_ID" validate:"required"`
	NewDept    string `query:"New_Dept_Number" validate:"required"`
	FromDate   string `query:"From_Date" validate:"required"`
}

type DeptManagerReassignQuery struct {
	DeptNumber string `query:"Dept_Number" validate:"required"`
	NewEmpNo   int    `query:"New_Employee_ID" validate:"required"`
	FromDate   string `query:"From_Date" validate:"required"`
}

// ==================== EMPLOYEES ====================

type EmployeeListQuery struct {
	PageNo    int     `query:"pageNo"`
	PageSize  int     `query:"pageSize"`
	EmpNo     *int    `query:"emp_no"`
	BirthDate *string `query:"birth_date"`
	HireDate  *string `query:"hire_date"`
	Name      *string `query:"name"`
	Gender    *string `query:"gender"`
}

type EmployeeAddQuery struct {
	EmpNo     int    `query:"emp_no" validate:"required"`
	BirthDate string `query:"birth_date" validate:"required"`
	FirstName string `query:"first_name" validate:"required"`
	LastName  string `query:"last_name" validate:"required"`
	Gender    string `query:"gender" validate:"required,oneof=M F"`
	HireDate  string `query:"hire_date" validate:"required"`
}

type EmployeeUpdateQuery struct {
	EmpNo     int    `query:"emp_no" validate:"required"`
	FirstName string `query:"first_name" validate:"required"`
	LastName  string `query:"last_name" validate:"required"`
	Gender    string `query:"gender" validate:"required,oneof=M F"`
	HireDate  string `query:"hire_date" validate:"required"`
}

type EmployeeDeleteQuery struct {
	EmpNo int `query:"emp_no" validate:"required"`
}

// ==================== PROFILE VIEW ====================

type ProfileViewQuery struct {
	PageQuery
	EmployeeID       *int    `query:"Employee_ID"`
	EmployeeIDMin    *int    `query:"Employee_ID_Min"`
	EmployeeIDMax    *int    `query:"Employee_ID_Max"`
	EmployeeName     *string `query:"Employee_Name"`
	Title            *string `query:"Title"`
	Salary           *int    `query:"Salary"`
	SalaryMin        *int    `query:"Salary_Min"`
	SalaryMax        *int    `query:"Salary_Max"`
	DepartmentNumber *string `query:"Department_Number"`
	Department       *string `query:"Department"`
	ManagerName      *string `query:"Manager_Name"`
	EffectiveDate    *string `query:"Effective_Date"`
	EffectiveDateMin *string `query:"Effective_Date_Min"`
	EffectiveDateMax *string `query:"Effective_Date_Max"`
	EndDate          *string `query:"End_Date"`
}

// ==================== REPORTS ====================

type OrgChartQuery struct {
	DeptNo   *string `query:"dept_no"`
	Page     int     `query:"page"`
	PageSize int     `query:"page_size" validate:"omitempty,lte=100"`
}

type RetirementQuery struct {
	DeptNo        *string `query:"dept_no"`
	RetirementAge int     `query:"retirement_age" validate:"omitempty,gte=60,lte=70"`
	Page          int     `query:"page"`
	PageSize      int     `query:"page_size" validate:"omitempty,lte=100"`
}

type HeadcountQuery struct {
	StartYear *int `query:"start_year"`
	EndYear   *int `query:"end_year"`
}

type WindowQuery struct {
	Page      int     `query:"page"`
	PageSize  int     `query:"page_size" validate:"omitempty,lte=100"`
	StartDate *string `query:"start_date"`
	EndDate   *string `query:"end_date"`
}

type PromotionQuery struct {
	Page       int `query:"page"`
	PageSize   int `query:"page_size" validate:"omitempty,lte=100"`
	WindowDays int `query:"window_days" validate:"omitempty,gte=1"`
}

type TenureQuery struct {
	Page     int     `query:"page"`
	PageSize int     `query:"page_size" validate:"omitempty,lte=100"`
	MinDays  int     `query:"min_days" validate:"omitempty,gte=1"`
	AsOfDate *string `query:"as_of_date"`
}
