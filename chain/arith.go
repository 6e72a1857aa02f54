package chain

// CheckedAdd returns a+b and whether the addition stayed within range.
// On overflow the returned value is zero and must be discarded.
func CheckedAdd[T Unsigned](a, b T) (T, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// CheckedSub returns a-b and whether the subtraction stayed non-negative.
// On underflow the returned value is zero and must be discarded.
func CheckedSub[T Unsigned](a, b T) (T, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}
