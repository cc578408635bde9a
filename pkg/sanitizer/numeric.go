package sanitizer

// Numeric represents numeric types that support ordering.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp constrains value to the inclusive range [min, max].
// When min > max the result is min.
func Clamp[T Numeric](value T, min T, max T) T {
	if value > max {
		value = max
	}
	if value < min {
		value = min
	}
	return value
}

// ClampMin ensures value is not less than min.
func ClampMin[T Numeric](value T, min T) T {
	if value < min {
		return min
	}
	return value
}
