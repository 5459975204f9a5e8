package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository"
)

type SalaryHandler struct {
	repo domain.SalaryRepository
}

func NewSalaryHandler(repo domain.SalaryRepository) *SalaryHandler {
	return &SalaryHandler{repo: repo}
}

func (h *SalaryHandler) ListHandler(c echo.Context) error {
	var q SalaryListQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "invalid query parameters")
	}

	salaries, err := h.repo.List(c.Request().Context(),
		domain.PageRequest{Page: q.PageNumber, Size: q.RowCount},
		domain.TemporalFilter{EmpNo: q.EmployeeID, Salary: q.Salary, FromDate: q.FromDate, ToDate: q.ToDate})
	if err != nil {
		return respondError(c, err)
	}

	page, size := repository.NormalizePage(q.PageNumber, q.RowCount)
	return c.JSON(http.StatusOK, ListResponse{Data: salaries, Page: page, PageSize: size})
}

func (h *SalaryHandler) AddHandler(c echo.Context) error {
	var q SalaryAddQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID, Salary and From_Date are required")
	}

	result, err := h.repo.Add(c.Request().Context(), q.EmployeeID, q.Salary, q.FromDate, q.ToDate)
	return respondMutation(c, result, err)
}

func (h *SalaryHandler) UpdateHandler(c echo.Context) error {
	var q SalaryUpdateQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID, Salary, From_Date and To_Date are required")
	}

	result, err := h.repo.Update(c.Request().Context(), q.EmployeeID, q.Salary, q.FromDate, q.ToDate)
	return respondMutation(c, result, err)
}

func (h *SalaryHandler) DeleteHandler(c echo.Context) error {
	var q SalaryDeleteQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID and Salary are required")
	}

	result, err := h.repo.Delete(c.Request().Context(), q.EmployeeID, q.Salary)
	return respondMutation(c, result, err)
}

func (h *SalaryHandler) ReassignHandler(c echo.Context) error {
	var q SalaryReassignQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID, New_Salary and From_Date are required")
	}

	result, err := h.repo.Reassign(c.Request().Context(), q.EmployeeID, q.NewSalary, q.FromDate)
	return respondMutation(c, result, err)
}
