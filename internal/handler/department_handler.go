package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository"
)

type DepartmentHandler struct {
	repo domain.DepartmentRepository
}

func NewDepartmentHandler(repo domain.DepartmentRepository) *DepartmentHandler {
	return &DepartmentHandler{repo: repo}
}

func (h *DepartmentHandler) ListHandler(c echo.Context) error {
	var q DeptListQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "invalid query parameters")
	}

	departments, err := h.repo.List(c.Request().Context(),
		domain.PageRequest{Page: q.PageNumber, Size: q.RowCount},
		domain.DepartmentFilter{DeptNo: q.DeptID, DeptName: q.DeptName})
	if err != nil {
		return respondError(c, err)
	}

	page, size := repository.NormalizePage(q.PageNumber, q.RowCount)
	return c.JSON(http.StatusOK, ListResponse{Data: departments, Page: page, PageSize: size})
}

func (h *DepartmentHandler) AddHandler(c echo.Context) error {
	var q DeptMutationQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Dept_ID and Dept_Name are required")
	}

	result, err := h.repo.Add(c.Request().Context(), domain.Department{DeptNo: q.DeptID, DeptName: q.DeptName})
	return respondMutation(c, result, err)
}

func (h *DepartmentHandler) UpdateHandler(c echo.Context) error {
	var q DeptMutationQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Dept_ID and Dept_Name are required")
	}

	result, err := h.repo.Update(c.Request().Context(), domain.Department{DeptNo: q.DeptID, DeptName: q.DeptName})
	return respondMutation(c, result, err)
}

func (h *DepartmentHandler) DeleteHandler(c echo.Context) error {
	var q DeptDeleteQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Dept_ID is required")
	}

	result, err := h.repo.Delete(c.Request().Context(), q.DeptID)
	return respondMutation(c, result, err)
}
