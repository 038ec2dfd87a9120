package anomalyfree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name           string
		charges        []int64
		wantGCD        int64
		wantSimplified []int64
	}{
		{
			name:           "family solution",
			charges:        []int64{3, 3, 3, -12, -12, 15},
			wantGCD:        3,
			wantSimplified: []int64{1, 1, 1, -4, -4, 5},
		},
		{
			name:           "already primitive",
			charges:        []int64{1, 1, 1, -4, -4, 5},
			wantGCD:        1,
			wantSimplified: []int64{1, 1, 1, -4, -4, 5},
		},
		{
			name:           "all zeros",
			charges:        []int64{0, 0, 0, 0, 0, 0},
			wantGCD:        0,
			wantSimplified: []int64{0, 0, 0, 0, 0, 0},
		},
		{
			name:           "zeros do not mask divisor",
			charges:        []int64{0, 0, 10, -10, 20, -20},
			wantGCD:        10,
			wantSimplified: []int64{0, 0, 1, -1, 2, -2},
		},
		{
			name:           "all negative entries",
			charges:        []int64{-6, -9, -12},
			wantGCD:        3,
			wantSimplified: []int64{-2, -3, -4},
		},
		{
			name:           "single entry",
			charges:        []int64{-7},
			wantGCD:        7,
			wantSimplified: []int64{-1},
		},
		{
			name:           "empty vector",
			charges:        nil,
			wantGCD:        0,
			wantSimplified: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gcd, simplified := Reduce(tt.charges)
			assert.Equal(t, tt.wantGCD, gcd)
			assert.Equal(t, tt.wantSimplified, simplified)
		})
	}
}

// TestReduce_OrderIndependent verifies the GCD of a multiset does not
// depend on the reduction order.
func TestReduce_OrderIndependent(t *testing.T) {
	forward := []int64{3, 3, 3, -12, -12, 15}
	backward := []int64{15, -12, -12, 3, 3, 3}

	gcdF, _ := Reduce(forward)
	gcdB, _ := Reduce(backward)

	assert.Equal(t, gcdF, gcdB)
}

// TestReduce_ScaleCanonical verifies reduction is homogeneous:
// scaling a vector by any positive integer yields the same
// simplified representative.
func TestReduce_ScaleCanonical(t *testing.T) {
	base := []int64{1, 1, 1, -4, -4, 5}

	for _, scale := range []int64{1, 2, 3, 7, 60} {
		scaled := make([]int64, len(base))
		for i, c := range base {
			scaled[i] = c * scale
		}

		gcd, simplified := Reduce(scaled)
		require.Equal(t, scale, gcd, "scale %d", scale)
		assert.Equal(t, base, simplified, "scale %d", scale)
	}
}

// TestReduce_DoesNotMutateInput verifies the input vector survives
// reduction untouched.
func TestReduce_DoesNotMutateInput(t *testing.T) {
	charges := []int64{6, -6, 12, -12, 18, -18}
	_, _ = Reduce(charges)
	assert.Equal(t, []int64{6, -6, 12, -12, 18, -18}, charges)
}

func TestGCD64(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{0, 0, 0},
		{0, 5, 5},
		{5, 0, 5},
		{12, 18, 6},
		{18, 12, 6},
		{1, 999, 1},
		{17, 13, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, gcd64(tt.a, tt.b), "gcd64(%d, %d)", tt.a, tt.b)
	}
}
