package cashcount_test

import (
	"testing"

	"github.com/cargoplus/collections_backend/internal/apperrors"
	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/cargoplus/collections_backend/internal/utils/cashcount"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet(t *testing.T) domain.DenominationSet {
	t.Helper()
	set, err := cashcount.ParseSet([]string{"50", "20", "10", "5", "1", "0.50", "0.10"}, 2)
	require.NoError(t, err)
	return set
}

func TestTotal(t *testing.T) {
	set := testSet(t)

	tests := []struct {
		name    string
		count   domain.DenominationCount
		want    string
		wantErr error
	}{
		{
			name:  "empty count is zero",
			count: domain.DenominationCount{},
			want:  "0",
		},
		{
			name:  "notes only",
			count: domain.DenominationCount{"20": 2, "10": 1},
			want:  "50",
		},
		{
			name:  "notes and coins",
			count: domain.DenominationCount{"50": 3, "0.50": 3, "0.10": 4},
			want:  "151.9",
		},
		{
			name:  "non-canonical key resolves",
			count: domain.DenominationCount{"0.5": 2},
			want:  "1",
		},
		{
			name:  "zero quantities contribute nothing",
			count: domain.DenominationCount{"20": 0, "5": 0},
			want:  "0",
		},
		{
			name:    "unknown denomination",
			count:   domain.DenominationCount{"3": 1},
			wantErr: apperrors.ErrUnknownDenomination,
		},
		{
			name:    "negative quantity",
			count:   domain.DenominationCount{"20": -1},
			wantErr: apperrors.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cashcount.Total(set, tt.count, 2)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestTotal_NoDriftOverManyLines(t *testing.T) {
	set := testSet(t)

	// 1000 line items of 0.10 must sum to exactly 100, which naive float64
	// accumulation does not guarantee.
	count := domain.DenominationCount{"0.10": 1000}
	got, err := cashcount.Total(set, count, 2)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(100)), "got %s", got)
}

func TestParseSet(t *testing.T) {
	t.Run("rejects non-positive face value", func(t *testing.T) {
		_, err := cashcount.ParseSet([]string{"0"}, 2)
		assert.Error(t, err)
	})

	t.Run("rejects sub-minor face value", func(t *testing.T) {
		_, err := cashcount.ParseSet([]string{"0.005"}, 2)
		assert.Error(t, err)
	})

	t.Run("rejects duplicates after canonicalization", func(t *testing.T) {
		_, err := cashcount.ParseSet([]string{"0.50", "0.5"}, 2)
		assert.Error(t, err)
	})

	t.Run("stores minor units", func(t *testing.T) {
		set, err := cashcount.ParseSet([]string{"20", "0.50"}, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2000), set["20"])
		assert.Equal(t, int64(50), set["0.5"])
	})
}
