package common

// NearlyEqual reports whether a and b differ by at most tol.
func NearlyEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
