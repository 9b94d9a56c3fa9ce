package common

// Ptr returns a pointer to v. Used to populate optional message fields
// where nil means "not present in source".
func Ptr[T any](v T) *T {
	return &v
}

// Value dereferences p, returning the zero value when p is nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}

	return *p
}

// PtrNonEmpty returns a pointer to s, or nil when s is empty. Extraction
// helpers use it so that blank scalars collapse to "absent".
func PtrNonEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
