package store

// Paginate returns the 1-based page window [(page-1)*size, page*size)
// clipped to the bounds of items. Out-of-range pages yield an empty
// slice, never an error.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages computes the page count by ceiling division.
func TotalPages(count, size int) int {
	if size < 1 || count < 1 {
		return 0
	}
	return (count + size - 1) / size
}

// ClampPage keeps a requested page inside [1, total]. Navigating below
// the first or beyond the last page is a no-op on the history screen,
// so callers clamp instead of erroring.
func ClampPage(page, total int) int {
	if total < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
