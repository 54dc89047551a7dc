package shared

// Filter carries ordering and column constraints for list queries.
// Repositories decide which columns and orderings they honor.
type Filter struct {
	OrderBy  string
	OrderDir string
	Filters  map[string]interface{}
}

// DefaultFilter orders by creation time, newest first
func DefaultFilter() Filter {
	return Filter{
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
}

// With adds a column constraint and returns the filter for chaining
func (f Filter) With(column string, value interface{}) Filter {
	if f.Filters == nil {
		f.Filters = make(map[string]interface{})
	}
	f.Filters[column] = value
	return f
}
