package utils

// CeilDiv returns ceil(a / b) for a >= 0, b > 0
func CeilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// FloorDiv returns floor(a / b) for b > 0, rounding toward negative infinity
func FloorDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// RoundHalfUp rounds the fraction num/den to the nearest integer, halves away from zero.
// den must be positive.
func RoundHalfUp(num, den int) int {
	if den <= 0 {
		return 0
	}
	if num < 0 {
		return -RoundHalfUp(-num, den)
	}
	return (2*num + den) / (2 * den)
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ScaleCeil returns ceil(x * num / den) for non-negative x
func ScaleCeil(x, num, den int) int {
	return CeilDiv(x*num, den)
}
