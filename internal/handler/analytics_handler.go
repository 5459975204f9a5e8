package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/repository"
)

// AnalyticsHandler serves the reporting endpoints backed by the join
// engine.
type AnalyticsHandler struct {
	engine domain.JoinEngine
}

func NewAnalyticsHandler(engine domain.JoinEngine) *AnalyticsHandler {
	return &AnalyticsHandler{engine: engine}
}

const defaultRetirementAge = 65

func (h *AnalyticsHandler) OrgChartHandler(c echo.Context) error {
	var q OrgChartQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "invalid query parameters")
	}

	chart, total, err := h.engine.OrganizationalChart(c.Request().Context(), q.DeptNo,
		domain.PageRequest{Page: q.Page, Size: q.PageSize})
	if err != nil {
		return respondError(c, err)
	}

	page, size := repository.NormalizePage(q.Page, q.PageSize)
	return c.JSON(http.StatusOK, CappedResponse{Data: chart, Page: page, PageSize: size, Total: total})
}

func (h *AnalyticsHandler) RetirementHandler(c echo.Context) error {
	var q RetirementQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "retirement_age must be between 60 and 70")
	}
	if q.RetirementAge == 0 {
		q.RetirementAge = defaultRetirementAge
	}

	candidates, total, err := h.engine.RetirementCandidates(c.Request().Context(), q.DeptNo,
		q.RetirementAge, domain.PageRequest{Page: q.Page, Size: q.PageSize})
	if err != nil {
		return respondError(c, err)
	}

	page, size := repository.NormalizePage(q.Page, q.PageSize)
	totalPages := 0
	if total > 0 {
		totalPages = (total + size - 1) / size
	}
	return c.JSON(http.StatusOK, RetirementResponse{
		Data: candidates, Page: page, PageSize: size, TotalCount: total, TotalPages: totalPages,
	})
}

func (h *AnalyticsHandler) HeadcountHandler(c echo.Context) error {
	var q HeadcountQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "invalid query parameters")
	}

	changes, err := h.engine.HeadcountChangesByYear(c.Request().Context(), q.StartYear, q.EndYear)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": changes})
}

func (h *AnalyticsHandler) MobilityHandler(c echo.Context) error {
	var q WindowQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "invalid query parameters")
	}

	moves, total, err := h.engine.InternalMobility(c.Request().Context(), q.StartDate, q.EndDate,
		domain.PageRequest{Page: q.Page, Size: q.PageSize})
	if err != nil {
		return respondError(c, err)
	}

	page, size := repository.NormalizePage(q.Page, q.PageSize)
	return c.JSON(http.StatusOK, CappedResponse{Data: moves, Page: page, PageSize: size, Total: total})
}

func (h *AnalyticsHandler) PromotionsHandler(c echo.Context) error {
	var q PromotionQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "invalid query parameters")
	}

	promotions, total, err := h.engine.RecentPromotions(c.Request().Context(), q.WindowDays,
		domain.PageRequest{Page: q.Page, Size: q.PageSize})
	if err != nil {
		return respondError(c, err)
	}

	page, size := repository.NormalizePage(q.Page, q.PageSize)
	return c.JSON(http.StatusOK, CappedResponse{Data: promotions, Page: page, PageSize: size, Total: total})
}

func (h *AnalyticsHandler) TransfersHandler(c echo.Context) error {
	var q WindowQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "invalid query parameters")
	}

	transfers, total, err := h.engine.Transfers(c.Request().Context(), q.StartDate, q.EndDate,
		domain.PageRequest{Page: q.Page, Size: q.PageSize})
	if err != nil {
		return respondError(c, err)
	}

	page, size := repository.NormalizePage(q.Page, q.PageSize)
	return c.JSON(http.StatusOK, CappedResponse{Data: transfers, Page: page, PageSize: size, Total: total})
}

func (h *AnalyticsHandler) TenureHandler(c echo.Context) error {
	var q TenureQuery
	if err := bindQuery(c, &q); err != nil {
		return respondBadRequest(c, "invalid query parameters")
	}

	rows, total, err := h.engine.LongTenureInRole(c.Request().Context(), q.MinDays, q.AsOfDate,
		domain.PageRequest{Page: q.Page, Size: q.PageSize})
	if err != nil {
		return respondError(c, err)
	}

	page, size := repository.NormalizePage(q.Page, q.PageSize)
	return c.JSON(http.StatusOK, CappedResponse{Data: rows, Page: page, PageSize: size, Total: total})
}
