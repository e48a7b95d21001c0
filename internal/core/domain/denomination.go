package domain

// DenominationSet maps a face-value key (the canonical major-unit string, e.g.
// "200" or "0.50") to its value in integer minor currency units. The set is
// fixed at configuration time; breakdowns may only reference keys in the set.
type DenominationSet map[string]int64

// DenominationCount maps a face-value key to a non-negative quantity counted
// during a cash closure.
type DenominationCount map[string]int64

// IsZero reports whether every quantity in the count is zero (or the count is empty).
func (c DenominationCount) IsZero() bool {
	for _, qty := range c {
		if qty != 0 {
			return false
		}
	}
	return true
}
