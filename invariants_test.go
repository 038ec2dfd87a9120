package anomalyfree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAnomalyFree(t *testing.T) {
	tests := []struct {
		name    string
		charges []int64
		wantErr string
	}{
		{
			name:    "family solution",
			charges: []int64{1, 1, 1, -4, -4, 5},
		},
		{
			name:    "all zeros",
			charges: []int64{0, 0, 0, 0, 0, 0},
		},
		{
			name:    "empty vector",
			charges: nil,
		},
		{
			name:    "vector-like pairs",
			charges: []int64{1, -1, 2, -2, 3, -3},
		},
		{
			name:    "linear violation",
			charges: []int64{1, 1, 1},
			wantErr: "linear anomaly",
		},
		{
			name:    "cubic violation",
			charges: []int64{1, 2, -3},
			wantErr: "cubic anomaly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAnomalyFree(tt.charges)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestCheckAnomalyFree_LargeCharges verifies the check stays exact
// where an int64 accumulation of cubes would overflow.
func TestCheckAnomalyFree_LargeCharges(t *testing.T) {
	// Each cube is ≈ 2.7·10¹⁹, beyond the int64 range.
	c := int64(3_000_000)
	assert.NoError(t, CheckAnomalyFree([]int64{c, -c, 2 * c, -2 * c}))

	// Perturbing one entry must be detected, not lost to wraparound.
	err := CheckAnomalyFree([]int64{c, -c, 2 * c, -2*c + 1})
	require.Error(t, err)
}

func TestCheckPrimitive(t *testing.T) {
	assert.NoError(t, CheckPrimitive([]int64{1, 1, 1, -4, -4, 5}))
	assert.NoError(t, CheckPrimitive([]int64{0, 0, 0}))

	err := CheckPrimitive([]int64{3, 3, 3, -12, -12, 15})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gcd = 3")
}
