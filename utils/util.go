package utils

// Filter returns the elements of arr for which f holds, in order. The result
// is never nil.
func Filter[A any](arr []A, f func(A) bool) []A {
	res := make([]A, 0, len(arr))
	for _, v := range arr {
		if f(v) {
			res = append(res, v)
		}
	}
	return res
}
