package repository

const (
	// DefaultPage and DefaultPageSize back absent or non-positive inputs.
	DefaultPage     = 1
	DefaultPageSize = 10

	// AnalyticsTotalCap bounds the total reported by capped analytic
	// queries so no request fans out over the whole history.
	AnalyticsTotalCap = 100
)

// NormalizePage maps absent or non-positive pagination inputs to the
// defaults and returns (page, size).
func NormalizePage(page, size int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return page, size
}

// PageOffset computes the row offset for a normalized (page, size) pair.
func PageOffset(page, size int) int {
	return (page - 1) * size
}

// CappedPlan is the fetch plan for a capped analytic query: the clamped
// total, the offset, and a limit that never reads past the cap. Empty is
// set when the requested page lies entirely beyond the capped total.
type CappedPlan struct {
	Total  int
	Offset int
	Limit  int
	Empty  bool
}

// PlanCapped clamps totalMatches to the cap and derives the fetch window
// for the requested page.
func PlanCapped(totalMatches, page, size int) CappedPlan {
	page, size = NormalizePage(page, size)

	total := totalMatches
	if total > AnalyticsTotalCap {
		total = AnalyticsTotalCap
	}

	offset := PageOffset(page, size)
	if offset >= total {
		return CappedPlan{Total: total, Offset: offset, Empty: true}
	}

	limit := size
	if remaining := total - offset; limit > remaining {
		limit = remaining
	}
	return CappedPlan{Total: total, Offset: offset, Limit: limit}
}
