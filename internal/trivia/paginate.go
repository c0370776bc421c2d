package trivia

// PageSize is the fixed number of items per page. It is not configurable
// per-request.
const PageSize = 10

// Paginate returns the 1-indexed page of items. Pages beyond the end of the
// sequence yield an empty (never nil) slice; pagination itself never fails.
// Non-positive pages are treated as page 1, matching the query-parameter
// default.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}
	// Any page past the last is empty; checking before the multiplication
	// keeps huge page values from overflowing into a negative index.
	if page > len(items)/PageSize+1 {
		return items[len(items):]
	}
	start := (page - 1) * PageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
