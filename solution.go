package anomalyfree

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for caller-contract violations. All are detected
// before any charge is computed.
var (
	// ErrArity reports a Solve call whose parameter vectors are not
	// exactly two elements each.
	ErrArity = errors.New("parameter vector must have exactly 2 elements")

	// ErrDimension reports a SolveN call with incompatible parameter
	// dimensions: l and k must be non-empty with len(k) == len(l) or
	// len(k) == len(l)+1.
	ErrDimension = errors.New("incompatible parameter dimensions")
)

// Solution is the complete result of one solver invocation: the raw
// charge vector together with its GCD and primitive representative.
//
// Invariants (hold for every Solution produced by Solve/SolveN):
//   - sum(Charges) == 0 and sum(Charges³) == 0
//   - GCD >= 0, and GCD == 0 iff every charge is 0
//   - GCD·Simplified[i] == Charges[i] for all i (identity when GCD ≤ 1)
type Solution struct {
	Charges    []int64 // Raw solution vector, order-significant
	GCD        int64   // Greatest common divisor of the charges
	Simplified []int64 // Charges in lowest terms
}

// SolveConfig controls the ordering of the returned charge vector.
type SolveConfig struct {
	// Sort orders charges by ascending magnitude (stable, so
	// equal-magnitude charges keep construction order).
	Sort bool

	// Reverse flips the sort to descending magnitude. Ignored when
	// Sort is false.
	Reverse bool
}

// DefaultSolveConfig returns the canonical ordering: stable sort by
// ascending magnitude.
func DefaultSolveConfig() SolveConfig {
	return SolveConfig{Sort: true}
}

// Solve computes the six-charge anomaly-free assignment for the
// two-parameter family.
//
// Both l and k must have exactly two elements; any other length is a
// usage error (ErrArity) and nothing is computed. The returned
// Solution carries the raw charges, their GCD, and the simplified
// (coprime) vector from the single invocation.
//
// Mathematical properties of the output:
//
//	Σ Charges  = 0
//	Σ Charges³ = 0
//
// Solve is pure and deterministic: identical inputs yield identical
// results.
func Solve(l, k []int64, cfg SolveConfig) (*Solution, error) {
	if len(l) != 2 {
		return nil, errors.Wrapf(ErrArity, "l has %d", len(l))
	}
	if len(k) != 2 {
		return nil, errors.Wrapf(ErrArity, "k has %d", len(k))
	}
	return SolveN(l, k, cfg)
}

// SolveN computes the general-N anomaly-free assignment of
// arXiv:1905.13729.
//
// Valid dimensions: l and k non-empty with len(k) == len(l)
// (N = 2·len(l)+2 charges) or len(k) == len(l)+1 (N = 2·len(k)+1).
// Anything else is a usage error (ErrDimension).
func SolveN(l, k []int64, cfg SolveConfig) (*Solution, error) {
	x, y, err := buildVectorLike(l, k)
	if err != nil {
		return nil, err
	}

	charges := combine(x, y)
	if cfg.Sort {
		sortByMagnitude(charges, cfg.Reverse)
	}

	gcd, simplified := Reduce(charges)
	return &Solution{Charges: charges, GCD: gcd, Simplified: simplified}, nil
}

// buildVectorLike constructs the two vector-like solutions x and y.
// Each has pairwise-cancelling entries, so both satisfy the linear
// and cubic constraints trivially; only their combination is chiral.
func buildVectorLike(l, k []int64) (x, y []int64, err error) {
	if len(l) == 0 || len(k) == 0 {
		return nil, nil, errors.Wrapf(ErrDimension, "l has %d, k has %d", len(l), len(k))
	}

	switch {
	case len(k) == len(l):
		// N even: x = (l₀, k, -l₀, -k), y = (0, 0, l, -l)
		n := 2*len(l) + 2
		x = make([]int64, 0, n)
		y = make([]int64, 0, n)

		x = append(x, l[0])
		x = append(x, k...)
		x = append(x, -l[0])
		x = appendNegated(x, k)

		y = append(y, 0, 0)
		y = append(y, l...)
		y = appendNegated(y, l)

	case len(k) == len(l)+1:
		// N odd: x = (0, k, -k), y = (l, k₀, 0, -l, -k₀)
		n := 2*len(k) + 1
		x = make([]int64, 0, n)
		y = make([]int64, 0, n)

		x = append(x, 0)
		x = append(x, k...)
		x = appendNegated(x, k)

		y = append(y, l...)
		y = append(y, k[0], 0)
		y = appendNegated(y, l)
		y = append(y, -k[0])

	default:
		return nil, nil, errors.Wrapf(ErrDimension, "l has %d, k has %d", len(l), len(k))
	}

	return x, y, nil
}

// combine merges the vector-like solutions into a chiral one:
//
//	z = (Σ xᵢyᵢ²)·x − (Σ xᵢ²yᵢ)·y
//
// Substituting z into Σz and Σz³ and expanding shows both vanish
// identically for any x, y that separately satisfy the constraints.
func combine(x, y []int64) []int64 {
	var s1, s2 int64
	for i := range x {
		s1 += x[i] * y[i] * y[i]
		s2 += x[i] * x[i] * y[i]
	}

	z := make([]int64, len(x))
	for i := range z {
		z[i] = s1*x[i] - s2*y[i]
	}
	return z
}

func appendNegated(dst, src []int64) []int64 {
	for _, v := range src {
		dst = append(dst, -v)
	}
	return dst
}

func sortByMagnitude(charges []int64, reverse bool) {
	sort.SliceStable(charges, func(i, j int) bool {
		a, b := abs64(charges[i]), abs64(charges[j])
		if reverse {
			return a > b
		}
		return a < b
	})
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
