package cashcount

import (
	"fmt"

	"github.com/cargoplus/collections_backend/internal/apperrors"
	"github.com/cargoplus/collections_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Total converts a count-per-denomination map into a monetary total.
// The sum is accumulated entirely in integer minor currency units and only
// converted to a major-unit decimal at the end, so repeated calls over dozens
// of line items never accumulate floating-point drift.
//
// Keys not present in the configured set are rejected with
// apperrors.ErrUnknownDenomination; negative quantities with
// apperrors.ErrInvalidQuantity.
func Total(set domain.DenominationSet, count domain.DenominationCount, exponent int32) (decimal.Decimal, error) {
	var totalMinor int64
	for key, qty := range count {
		faceMinor, ok := set[CanonicalKey(key)]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrUnknownDenomination, key)
		}
		if qty < 0 {
			return decimal.Zero, fmt.Errorf("%w: %d of denomination %q", apperrors.ErrInvalidQuantity, qty, key)
		}
		totalMinor += qty * faceMinor
	}
	return decimal.New(totalMinor, -exponent), nil
}

// CanonicalKey normalizes a face-value key so "0.50", "0.5" and " 0.5 " all
// address the same denomination. Non-numeric keys pass through unchanged and
// fail the set lookup instead.
func CanonicalKey(key string) string {
	d, err := decimal.NewFromString(key)
	if err != nil {
		return key
	}
	return d.String()
}

// ParseSet builds a DenominationSet from face values expressed in major units
// (the form they take in configuration, e.g. "200", "0.50"). Face values must
// be positive and representable exactly in minor units at the given exponent.
func ParseSet(faceValues []string, exponent int32) (domain.DenominationSet, error) {
	set := make(domain.DenominationSet, len(faceValues))
	for _, fv := range faceValues {
		d, err := decimal.NewFromString(fv)
		if err != nil {
			return nil, fmt.Errorf("invalid denomination face value %q: %w", fv, err)
		}
		if d.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("denomination face value %q must be positive", fv)
		}
		minor := d.Shift(exponent)
		if !minor.IsInteger() {
			return nil, fmt.Errorf("denomination face value %q is not representable in minor units (exponent %d)", fv, exponent)
		}
		// Canonical key: trim trailing zeros so "0.50" and "0.5" collide.
		key := CanonicalKey(fv)
		if _, dup := set[key]; dup {
			return nil, fmt.Errorf("duplicate denomination face value %q", fv)
		}
		set[key] = minor.IntPart()
	}
	return set, nil
}
