package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/hrsight/employees-api/internal/domain"
)

// ClassifyStoreError translates a driver-level failure into one of the
// domain error kinds. SQLSTATE class 23 is an integrity violation; classes
// 08 (connection), 53 (insufficient resources) and 57 (operator
// intervention, including statement timeout) are transient. Nothing below
// the driver escapes uncategorized.
func ClassifyStoreError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		class := string(pqErr.Code.Class())
		switch class {
		case "23":
			return domain.WrapError(domain.KindIntegrity, pqErr.Message, err)
		case "08", "53", "57":
			return domain.WrapError(domain.KindTransient, pqErr.Message, err)
		}
		return domain.WrapError(domain.KindInternal, pqErr.Message, err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, sql.ErrConnDone) {
		return domain.WrapError(domain.KindTransient, "database unavailable", err)
	}
	// lib/pq surfaces some pool/network failures as plain errors.
	if msg := err.Error(); strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") {
		return domain.WrapError(domain.KindTransient, "database unavailable", err)
	}

	return domain.WrapError(domain.KindInternal, "database operation failed", err)
}

// mutationError shapes the uniform failure envelope for Add/Update/Delete
// and hands back the categorized error alongside it.
func mutationError(err error) (domain.OperationResult, error) {
	categorized := ClassifyStoreError(err)
	return domain.OperationResult{
		Rowcount: 0,
		Status:   domain.StatusError,
		Message:  categorized.Error(),
	}, categorized
}

// notFoundResult is the zero-effect mutation outcome; by contract it is a
// normal result, not an error.
func notFoundResult(message string) domain.OperationResult {
	return domain.OperationResult{
		Rowcount: 0,
		Status:   domain.StatusNotFound,
		Message:  message,
	}
}

func successResult(rowcount int64) domain.OperationResult {
	return domain.OperationResult{Rowcount: rowcount, Status: domain.StatusSuccess}
}

// invalidInputResult shapes the envelope for pre-execution validation
// failures (date parsing, policy violations).
func invalidInputResult(err error) (domain.OperationResult, error) {
	return domain.OperationResult{
		Rowcount: 0,
		Status:   domain.StatusError,
		Message:  err.Error(),
	}, err
}
