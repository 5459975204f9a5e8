package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/hrsight/employees-api/internal/domain"
	"github.com/hrsight/employees-api/internal/logger"
)

// ListResponse is the uniform list envelope.
type ListResponse struct {
	Data     interface{} `json:"data"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// CappedResponse is the envelope for analytics whose totals are clamped.
type CappedResponse struct {
	Data     interface{} `json:"data"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Total    int         `json:"total"`
}

// RetirementResponse keeps the original report contract: a true match
// count plus derived page arithmetic.
type RetirementResponse struct {
	Data       interface{} `json:"data"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalCount int         `json:"total_count"`
	TotalPages int         `json:"total_pages"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// httpStatusFor maps an error kind to a response code. Invalid input and
// policy breaches are the caller's fault; integrity clashes are conflicts;
// transient store trouble asks for a retry.
func httpStatusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalidDate, domain.KindPolicy:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindIntegrity:
		return http.StatusConflict
	case domain.KindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c echo.Context, err error) error {
	status := httpStatusFor(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorLog(c.Request().Context(), "request failed: %v", err)
	}
	return c.JSON(status, errorResponse{Status: domain.StatusError, Message: err.Error()})
}

// respondMutation writes the uniform {rowcount, status, message} envelope.
// The envelope travels even on failure; only the HTTP code changes.
func respondMutation(c echo.Context, result domain.OperationResult, err error) error {
	if err != nil {
		status := httpStatusFor(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorLog(c.Request().Context(), "mutation failed: %v", err)
		}
		return c.JSON(status, result)
	}
	return c.JSON(http.StatusOK, result)
}

func respondBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Status: domain.StatusError, Message: message})
}

// RequestValidator adapts go-playground/validator to echo's Validator
// interface.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// bindQuery binds and validates a query-parameter DTO. The API carries all
// inputs in the query string, mutations included.
func bindQuery(c echo.Context, dto interface{}) error {
	binder := echo.DefaultBinder{}
	if err := binder.BindQueryParams(c, dto); err != nil {
		return err
	}
	return c.Validate(dto)
}
