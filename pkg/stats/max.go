package stats

// Max returns the largest non-NaN entry of values.
//
// It returns NaN when values is empty or holds only NaN entries. When equal
// values compare the same (for example +0 and -0), either may be returned.
func Max[F Float](values []F) F {
	acc := NaN[F]()
	for _, value := range values {
		acc = maxNum(acc, value)
	}

	return acc
}

// maxNum follows IEEE 754 maxNum: a NaN operand loses to any number.
func maxNum[F Float](a, b F) F {
	switch {
	case IsNaN(a):
		return b
	case IsNaN(b):
		return a
	case b > a:
		return b
	default:
		return a
	}
}
