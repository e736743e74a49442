package cashbuddy

// Update is an optional replacement value: either "keep the current value" or
// a new value. Its zero value keeps.
type Update[T any] struct {
	value T
	set   bool
}

// Keep returns an Update that leaves the current value unchanged.
func Keep[T any]() Update[T] { return Update[T]{} }

// Set returns an Update that replaces the current value with v.
func Set[T any](v T) Update[T] { return Update[T]{value: v, set: true} }

// IsSet reports whether the Update carries a new value.
func (u Update[T]) IsSet() bool { return u.set }

// Value returns the new value, or T's zero value when unset.
func (u Update[T]) Value() T { return u.value }

// Or returns the new value if set, current otherwise.
func (u Update[T]) Or(current T) T {
	if u.set {
		return u.value
	}
	return current
}

// EditRequest lists the replacement fields of an edit.
type EditRequest struct {
	Amount      Update[Amount]
	Description Update[string]
	Category    Update[string]
}

// IsEmpty reports whether no field is replaced.
func (r EditRequest) IsEmpty() bool {
	return !r.Amount.IsSet() && !r.Description.IsSet() && !r.Category.IsSet()
}
