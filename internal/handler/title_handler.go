package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository"
)

type TitleHandler struct {
	repo domain.TitleRepository
}

func NewTitleHandler(repo domain.TitleRepository) *TitleHandler {
	return &TitleHandler{repo: repo}
}

func (h *TitleHandler) ListHandler(c echo.Context) error {
	var q TitleListQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "invalid query parameters")
	}

	titles, err := h.repo.List(c.Request().Context(),
		domain.PageRequest{Page: q.PageNumber, Size: q.RowCount},
		domain.TemporalFilter{EmpNo: q.EmployeeID, Title: q.Title, FromDate: q.FromDate, ToDate: q.ToDate})
	if err != nil {
		return respondError(c, err)
	}

	page, size := repository.NormalizePage(q.PageNumber, q.RowCount)
	return c.JSON(http.StatusOK, ListResponse{Data: titles, Page: page, PageSize: size})
}

func (h *TitleHandler) AddHandler(c echo.Context) error {
	var q TitleAddQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID, Title and From_Date are required")
	}

	result, err := h.repo.Add(c.Request().Context(), q.EmployeeID, q.Title, q.FromDate, q.ToDate)
	return respondMutation(c, result, err)
}

func (h *TitleHandler) UpdateHandler(c echo.Context) error {
	var q TitleUpdateQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID, Title, From_Date and To_Date are required")
	}

	result, err := h.repo.Update(c.Request().Context(), q.EmployeeID, q.Title, q.FromDate, q.ToDate)
	return respondMutation(c, result, err)
}

func (h *TitleHandler) DeleteHandler(c echo.Context) error {
	var q TitleDeleteQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID and Title are required")
	}

	result, err := h.repo.Delete(c.Request().Context(), q.EmployeeID, q.Title)
	return respondMutation(c, result, err)
}

func (h *TitleHandler) ReassignHandler(c echo.Context) error {
	var q TitleReassignQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "Employee_ID, New_Title and From_Date are required")
	}

	result, err := h.repo.Reassign(c.Request().Context(), q.EmployeeID, q.NewTitle, q.FromDate)
	return respondMutation(c, result, err)
}
