package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// IntFromPtrWithDefault returns the first non-nil *int value, or the fallback.
func IntFromPtrWithDefault(fallback int, ptrs ...*int) int {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// IntPtr returns a pointer to a copy of n.
func IntPtr(n int) *int {
	return &n
}

// CopyIntPtr returns an independent copy of p, or nil.
func CopyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	return IntPtr(*p)
}
