// Package anomalyfree computes anomaly-free charge assignments for a
// U(1) extension of the Standard Model gauge group.
//
// # Overview
//
// Adding an extra abelian symmetry to the Standard Model is only
// consistent if the new charges cancel the gauge anomalies. For a set
// of N integer charges n_α this reduces to two Diophantine equations:
//
//	Σ n_α  = 0    (gravitational/mixed anomaly)
//	Σ n_α³ = 0    (cubic anomaly)
//
// anomalyfree evaluates the closed-form parametrization of
// arXiv:1905.13729, which maps two free integer vectors l and k to a
// charge vector satisfying both identities exactly, and reduces the
// result to its primitive (coprime) representative by dividing out
// the greatest common divisor.
//
// # Quick Start
//
// Solve for the six charges of the two-parameter family:
//
//	sol, err := anomalyfree.Solve(
//	    []int64{-1, 1},
//	    []int64{4, -2},
//	    anomalyfree.DefaultSolveConfig(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(sol.Charges)    // [3 3 3 -12 -12 15]
//	fmt.Println(sol.GCD)        // 3
//	fmt.Println(sol.Simplified) // [1 1 1 -4 -4 5]
//
// All three results come from the same invocation; nothing is
// recomputed to read GCD or Simplified.
//
// # The Parametrization
//
// The construction builds two vector-like (trivially anomaly-free)
// helper vectors x and y from l and k, then combines them into a
// chiral solution:
//
//	z = (Σ xᵢyᵢ²)·x − (Σ xᵢ²yᵢ)·y
//
// Both constraints hold for z as algebraic identities, so every
// integer input yields a valid solution. Scaling z by any integer
// preserves both constraints (they are homogeneous of degree 1 and
// 3), which is why solutions form rays and the GCD-reduced vector is
// the canonical representative.
//
// Solve fixes the dimensions to the six-charge family (two parameters
// in each of l and k). SolveN accepts the general construction:
// len(k) == len(l) gives N = 2·len(l)+2 charges, len(k) == len(l)+1
// gives N = 2·len(k)+1.
//
// # Ordering
//
// By default charges are sorted by ascending magnitude with a stable
// sort, so repeated calls are reproducible and equal-magnitude
// charges keep their construction order. SolveConfig exposes the
// switches:
//
//	cfg := anomalyfree.SolveConfig{Sort: false} // construction order
//	cfg := anomalyfree.SolveConfig{Sort: true, Reverse: true}
//
// # Exactness
//
// Everything is exact integer arithmetic; there is no floating point
// anywhere. The cubic identity is Σz³ == 0, not ≈ 0. CheckAnomalyFree
// verifies both identities with math/big accumulation so the check
// itself cannot overflow.
//
// # Testing
//
// Assertion helpers validate the algebraic properties directly:
//
//	func TestMyCharges(t *testing.T) {
//	    sol, _ := anomalyfree.Solve(l, k, anomalyfree.DefaultSolveConfig())
//
//	    anomalyfree.AssertAnomalyFree(t, sol.Charges)
//	    anomalyfree.AssertPrimitive(t, sol.Simplified)
//	    anomalyfree.AssertSolutionConsistent(t, sol)
//	}
//
// # Degenerate Inputs
//
// All-zero parameters produce the all-zero charge vector, which
// satisfies both identities trivially. Its GCD is reported as 0 and
// Simplified equals Charges; no division happens when GCD ≤ 1.
package anomalyfree
