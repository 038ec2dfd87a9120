package anomalyfree

import (
	"testing"
)

// AssertAnomalyFree verifies both cancellation identities hold
// exactly for the given charge vector.
//
// Mathematical property:
//
//	Σ cᵢ = 0  and  Σ cᵢ³ = 0
func AssertAnomalyFree(t *testing.T, charges []int64) {
	t.Helper()

	if err := CheckAnomalyFree(charges); err != nil {
		t.Errorf("Charge vector %v is not anomaly free: %v\n"+
			"Both the linear and the cubic sum must vanish exactly.",
			charges, err)
		return
	}

	t.Logf("✓ Anomaly free: %v (Σc = 0, Σc³ = 0)", charges)
}

// AssertPrimitive verifies the charge vector is in lowest terms
// (GCD 1, or 0 for the all-zero vector).
func AssertPrimitive(t *testing.T, charges []int64) {
	t.Helper()

	if err := CheckPrimitive(charges); err != nil {
		t.Errorf("Charge vector %v is not primitive: %v\n"+
			"A reduced solution must have no common divisor left.",
			charges, err)
		return
	}

	t.Logf("✓ Primitive: %v", charges)
}

// AssertSolutionConsistent verifies the internal consistency of a
// Solution: the simplified vector scaled by the GCD reproduces the
// raw charges, the GCD is non-negative, and both vectors are anomaly
// free and the simplified one primitive.
func AssertSolutionConsistent(t *testing.T, sol *Solution) {
	t.Helper()

	if sol == nil {
		t.Fatalf("Solution is nil")
	}

	if sol.GCD < 0 {
		t.Errorf("GCD must be non-negative, got %d", sol.GCD)
	}

	if len(sol.Simplified) != len(sol.Charges) {
		t.Fatalf("Length mismatch: %d charges vs %d simplified",
			len(sol.Charges), len(sol.Simplified))
	}

	scale := sol.GCD
	if scale == 0 {
		scale = 1 // All-zero vector: simplified equals raw
	}
	for i := range sol.Charges {
		if sol.Simplified[i]*scale != sol.Charges[i] {
			t.Errorf("Simplified[%d]·GCD = %d·%d ≠ Charges[%d] = %d",
				i, sol.Simplified[i], sol.GCD, i, sol.Charges[i])
		}
	}

	AssertAnomalyFree(t, sol.Charges)
	AssertAnomalyFree(t, sol.Simplified)
	AssertPrimitive(t, sol.Simplified)

	t.Logf("✓ Solution consistent: gcd=%d, %d charges", sol.GCD, len(sol.Charges))
}
