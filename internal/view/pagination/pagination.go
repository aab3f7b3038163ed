package pagination

import "fmt"

// DefaultMultiplier is how many pages a full page is assumed to represent when the service
// does not report a total.
const DefaultMultiplier = 10

var PageSizes = []int{10, 25, 50, 100}

const DefaultPageSize = 25

type Input struct {
	PageSize      int
	Returned      int
	Authoritative *int
}

type Estimate struct {
	Total int
	Pages int
	Exact bool
}

// Estimator derives listing totals from one fetched page.
type Estimator interface {
	Estimate(in Input) Estimate
}

// Heuristic guesses Multiplier pages whenever a page comes back full. An authoritative
// count always wins.
type Heuristic struct {
	Multiplier int
}

func NewHeuristic() Heuristic {
	return Heuristic{Multiplier: DefaultMultiplier}
}

func (h Heuristic) Estimate(in Input) Estimate {
	if in.Authoritative != nil && *in.Authoritative >= 0 {
		total := *in.Authoritative
		return Estimate{Total: total, Pages: Pages(total, in.PageSize), Exact: true}
	}

	multiplier := h.Multiplier
	if multiplier < 1 {
		multiplier = DefaultMultiplier
	}

	total := in.Returned
	if in.PageSize > 0 && in.Returned >= in.PageSize {
		total = in.PageSize * multiplier
	}
	return Estimate{Total: total, Pages: Pages(total, in.PageSize)}
}

// Pages is ceil(total/pageSize), or 0 for an empty listing.
func Pages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

func ValidPageSize(n int) bool {
	for _, size := range PageSizes {
		if size == n {
			return true
		}
	}
	return false
}

func CheckPageSize(n int) error {
	if !ValidPageSize(n) {
		return fmt.Errorf("page size must be one of %v, got %d", PageSizes, n)
	}
	return nil
}

// Offset is the zero-based row offset of a 1-based page.
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// Clamp keeps page within [1, pages]. An unknown page count only enforces the lower bound.
func Clamp(page, pages int) int {
	if page < 1 {
		return 1
	}
	if pages > 0 && page > pages {
		return pages
	}
	return page
}
