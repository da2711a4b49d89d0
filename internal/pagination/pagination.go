// Package pagination slices an ordered in-memory sequence into numbered pages.
//
// Pages are stable for a fixed input slice. The feed recomputes its sequence
// from live data on every request, so items may drift between pages across
// requests separated by writes; callers are expected to tolerate that.
package pagination

// Page is one slice of a paginated sequence.
type Page[T any] struct {
	Items   []T
	Number  int
	Size    int
	Total   int
	HasNext bool
}

// Paginate returns the 1-based page of items with the given size. size is
// clamped to maxSize rather than rejected; a page number past the end of the
// sequence yields an empty page, not an error.
func Paginate[T any](items []T, page, size, maxSize int) Page[T] {
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	if size < 1 {
		size = 1
	}
	if page < 1 {
		page = 1
	}

	p := Page[T]{
		Items:  []T{},
		Number: page,
		Size:   size,
		Total:  len(items),
	}

	start := (page - 1) * size
	if start >= len(items) {
		return p
	}

	end := start + size
	if end > len(items) {
		end = len(items)
	}

	p.Items = items[start:end]
	p.HasNext = end < len(items)
	return p
}
