package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository"
)

type DeptEmpHandler struct {
	repo domain.DeptEmpRepository
}

func NewDeptEmpHandler(repo domain.DeptEmpRepository) *DeptEmpHandler {
	return &DeptEmpHandler{repo: repo}
}

func (h *DeptEmpHandler) ListHandler(c echo.Context) error {
	var q DeptAssignListQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "invalid query parameters")
	}

	assignments, err := h.repo.List(c.Request().Context(),
		domain.PageRequest{Page: q.PageNumber, Size: q.RowCount},
		domain.TemporalFilter{EmpNo: q.EmployeeID, DeptNo: q.DeptNumber, FromDate: q.FromDate, ToDate: q.ToDate})
	if err != nil {
		return respondError(c, err)
	}

	page, size := repository.NormalizePage(q.PageNumber, q.RowCount)
	return c.JSON(http.StatusOK, ListResponse{Data: assignments, Page: page, PageSize: size})
}

func (h *DeptEmpHandler) AddHandler(c echo.Context) error {
	var q DeptAssignAddQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID, Dept_Number and From_Date are required")
	}

	result, err := h.repo.Add(c.Request().Context(), q.EmployeeID, q.DeptNumber, q.FromDate, q.ToDate)
	return respondMutation(c, result, err)
}

func (h *DeptEmpHandler) UpdateHandler(c echo.Context) error {
	var q DeptAssignUpdateQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID, Dept_Number, From_Date and To_Date are required")
	}

	result, err := h.repo.Update(c.Request().Context(), q.EmployeeID, q.DeptNumber, q.FromDate, q.ToDate)
	return respondMutation(c, result, err)
}

func (h *DeptEmpHandler) DeleteHandler(c echo.Context) error {
	var q DeptAssignDeleteQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID and Dept_Number are required")
	}

	result, err := h.repo.Delete(c.Request().Context(), q.EmployeeID, q.DeptNumber)
	return respondMutation(c, result, err)
}

func (h *DeptEmpHandler) ReassignHandler(c echo.Context) error {
	var q DeptEmpReassignQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID, New_Dept_Number and From_Date are required")
	}

	result, err := h.repo.Reassign(c.Request().Context(), q.EmployeeID, q.NewDept, q.FromDate)
	return respondMutation(c, result, err)
}
