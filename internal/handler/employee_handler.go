package handler

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/export"
	"github.com/hrsight/employees-api/internal/repository"
)

type EmployeeHandler struct {
	repo   domain.EmployeeRepository
	engine domain.JoinEngine
}

func NewEmployeeHandler(repo domain.EmployeeRepository, engine domain.JoinEngine) *EmployeeHandler {
	return &EmployeeHandler{repo: repo, engine: engine}
}

func (h *EmployeeHandler) ListHandler(c echo.Context) error {
	var q EmployeeListQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "invalid query parameters")
	}

	employees, err := h.repo.List(c.Request().Context(),
		domain.PageRequest{Page: q.PageNo, Size: q.PageSize},
		domain.EmployeeFilter{EmpNo: q.EmpNo, Name: q.Name, Gender: q.Gender, BirthDate: q.BirthDate, HireDate: q.HireDate})
	if err != nil {
		return respondError(c, err)
	}

	page, size := repository.NormalizePage(q.PageNo, q.PageSize)
	return c.JSON(http.StatusOK, ListResponse{Data: employees, Page: page, PageSize: size})
}

func (h *EmployeeHandler) AddHandler(c echo.Context) error {
	var q EmployeeAddQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "emp_no, birth_date, first_name, last_name, gender and hire_date are required")
	}

	result, err := h.repo.Add(c.Request().Context(), domain.Employee{
		EmpNo:     q.EmpNo,
		BirthDate: q.BirthDate,
		FirstName: q.FirstName,
		LastName:  q.LastName,
		Gender:    q.Gender,
		HireDate:  q.HireDate,
	})
	return respondMutation(c, result, err)
}

func (h *EmployeeHandler) UpdateHandler(c echo.Context) error {
	var q EmployeeUpdateQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "emp_no, first_name, last_name, gender and hire_date are required")
	}

	result, err := h.repo.Update(c.Request().Context(), domain.Employee{
		EmpNo:     q.EmpNo,
		FirstName: q.FirstName,
		LastName:  q.LastName,
		Gender:    q.Gender,
		HireDate:  q.HireDate,
	})
	return respondMutation(c, result, err)
}

func (h *EmployeeHandler) DeleteHandler(c echo.Context) error {
	var q EmployeeDeleteQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "emp_no is required")
	}

	result, err := h.repo.Delete(c.Request().Context(), q.EmpNo)
	return respondMutation(c, result, err)
}

// ViewHandler serves the point-in-time profile history.
func (h *EmployeeHandler) ViewHandler(c echo.Context) error {
	var q ProfileViewQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "invalid query parameters")
	}

	rows, err := h.engine.EmployeeProfile(c.Request().Context(),
		domain.PageRequest{Page: q.PageNumber, Size: q.RowCount}, profileFilterOf(q))
	if err != nil {
		return respondError(c, err)
	}

	page, size := repository.NormalizePage(q.PageNumber, q.RowCount)
	return c.JSON(http.StatusOK, ListResponse{Data: rows, Page: page, PageSize: size})
}

// ViewExportHandler streams the same view as an xlsx workbook.
func (h *EmployeeHandler) ViewExportHandler(c echo.Context) error {
	var q ProfileViewQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "invalid query parameters")
	}

	rows, err := h.engine.EmployeeProfile(c.Request().Context(),
		domain.PageRequest{Page: q.PageNumber, Size: q.RowCount}, profileFilterOf(q))
	if err != nil {
		return respondError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteProfileWorkbook(rows, &buf); err != nil {
		return respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="employee_profiles.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func profileFilterOf(q ProfileViewQuery) domain.ProfileFilter {
	return domain.ProfileFilter{
		EmpNo:            q.EmployeeID,
		EmpNoMin:         q.EmployeeIDMin,
		EmpNoMax:         q.EmployeeIDMax,
		EmployeeName:     q.EmployeeName,
		Title:            q.Title,
		Salary:           q.Salary,
		SalaryMin:        q.SalaryMin,
		SalaryMax:        q.SalaryMax,
		DeptNo:           q.DepartmentNumber,
		DeptName:         q.Department,
		ManagerName:      q.ManagerName,
		EffectiveDate:    q.EffectiveDate,
		EffectiveDateMin: q.EffectiveDateMin,
		EffectiveDateMax: q.EffectiveDateMax,
		EndDate:          q.EndDate,
	}
}
