package stats

// Min returns the smallest non-NaN entry of values.
//
// It returns NaN when values is empty or holds only NaN entries. When equal
// values compare the same (for example +0 and -0), either may be returned.
func Min[F Float](values []F) F {
	acc := NaN[F]()
	for _, value := range values {
		acc = minNum(acc, value)
	}

	return acc
}

// minNum follows IEEE 754 minNum: a NaN operand loses to any number.
func minNum[F Float](a, b F) F {
	switch {
	case IsNaN(a):
		return b
	case IsNaN(b):
		return a
	case b < a:
		return b
	default:
		return a
	}
}
