package anomalyfree

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// CheckAnomalyFree verifies that a charge vector satisfies both
// anomaly-cancellation identities exactly:
//
//	Σ cᵢ  = 0
//	Σ cᵢ³ = 0
//
// Sums are accumulated with math/big, so the check is exact even for
// charges whose cubes exceed the int64 range. A nil error means the
// vector is anomaly free.
func CheckAnomalyFree(charges []int64) error {
	linear := new(big.Int)
	cubic := new(big.Int)
	cube := new(big.Int)

	for _, c := range charges {
		v := big.NewInt(c)
		linear.Add(linear, v)
		cube.Mul(v, v)
		cube.Mul(cube, v)
		cubic.Add(cubic, cube)
	}

	if linear.Sign() != 0 {
		return errors.Newf("linear anomaly not cancelled: Σc = %s", linear)
	}
	if cubic.Sign() != 0 {
		return errors.Newf("cubic anomaly not cancelled: Σc³ = %s", cubic)
	}
	return nil
}

// CheckPrimitive verifies that a charge vector is in lowest terms:
// its GCD is 1, or 0 for the degenerate all-zero vector.
func CheckPrimitive(charges []int64) error {
	gcd, _ := Reduce(charges)
	if gcd > 1 {
		return errors.Newf("vector not primitive: gcd = %d", gcd)
	}
	return nil
}
