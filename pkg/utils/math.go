// pkg/utils/math.go
package utils

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SaturatingSub returns a - b, or 0 when b > a.
func SaturatingSub(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}

// SaturatingAdd returns a + b, clamped to the largest uint32.
func SaturatingAdd(a, b uint32) uint32 {
	if s := a + b; s >= a {
		return s
	}
	return ^uint32(0)
}
