package anomalyfree

// Reduce computes the greatest common divisor of a charge vector and
// the vector in lowest terms.
//
// The GCD is taken over absolute values and is always non-negative.
// Convention for the degenerate all-zero vector: gcd == 0 and
// simplified is a copy of the input (no division is performed when
// gcd ≤ 1). Because both anomaly constraints are homogeneous, the
// simplified vector satisfies them whenever the input does.
//
// Reduction is order-independent: the GCD of a multiset is
// well-defined regardless of the pairwise reduction order.
func Reduce(charges []int64) (gcd int64, simplified []int64) {
	for _, c := range charges {
		gcd = gcd64(gcd, abs64(c))
		if gcd == 1 {
			break // Already primitive
		}
	}

	simplified = make([]int64, len(charges))
	if gcd <= 1 {
		copy(simplified, charges)
		return gcd, simplified
	}

	for i, c := range charges {
		simplified[i] = c / gcd
	}
	return gcd, simplified
}

// gcd64 is the Euclidean algorithm on non-negative inputs.
// gcd64(0, b) == b, so a zero entry never masks the others.
func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
