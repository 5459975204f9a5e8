package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository"
)

type DeptManagerHandler struct {
	repo domain.DeptManagerRepository
}

func NewDeptManagerHandler(repo domain.DeptManagerRepository) *DeptManagerHandler {
	return &DeptManagerHandler{repo: repo}
}

// ListHandler returns current management assignments by default;
// Include_History=true widens it to the full audit trail.
func (h *DeptManagerHandler) ListHandler(c echo.Context) error {
	var q DeptAssignListQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "invalid query parameters")
	}

	pageReq := domain.PageRequest{Page: q.PageNumber, Size: q.RowCount}
	filter := domain.TemporalFilter{EmpNo: q.EmployeeID, DeptNo: q.DeptNumber, FromDate: q.FromDate, ToDate: q.ToDate}

	var (
		managers []domain.DeptManager
		err      error
	)
	if q.History {
		managers, err = h.repo.ListAll(c.Request().Context(), pageReq, filter)
	} else {
		managers, err = h.repo.ListCurrent(c.Request().Context(), pageReq, filter)
	}
	if err != nil {
		return respondError(c, err)
	}

	page, size := repository.NormalizePage(q.PageNumber, q.RowCount)
	return c.JSON(http.StatusOK, ListResponse{Data: managers, Page: page, PageSize: size})
}

func (h *DeptManagerHandler) AddHandler(c echo.Context) error {
	var q DeptAssignAddQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID, Dept_Number and From_Date are required")
	}

	result, err := h.repo.Add(c.Request().Context(), q.EmployeeID, q.DeptNumber, q.FromDate, q.ToDate)
	return respondMutation(c, result, err)
}

func (h *DeptManagerHandler) UpdateHandler(c echo.Context) error {
	var q DeptAssignUpdateQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID, Dept_Number, From_Date and To_Date are required")
	}

	result, err := h.repo.Update(c.Request().Context(), q.EmployeeID, q.DeptNumber, q.FromDate, q.ToDate)
	return respondMutation(c, result, err)
}

func (h *DeptManagerHandler) DeleteHandler(c echo.Context) error {
	var q DeptAssignDeleteQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID and Dept_Number are required")
	}

	result, err := h.repo.Delete(c.Request().Context(), q.EmployeeID, q.DeptNumber)
	return respondMutation(c, result, err)
}

// ReassignHandler hands a department to a new manager: the incumbent's
// interval closes at From_Date and the successor's opens there.
func (h *DeptManagerHandler) ReassignHandler(c echo.Context) error {
	var q DeptManagerReassignQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Dept_Number, New_Employee_ID and From_Date are required")
	}

	result, err := h.repo.Reassign(c.Request().Context(), q.DeptNumber, q.NewEmpNo, q.FromDate)
	return respondMutation(c, result, err)
}
