package domain

import "time"

// GuardStatus is the sequencing guard's answer for one collector. It is
// derived from closure history on demand, never stored.
//
// Allow == false means the collector has at least one day strictly before
// today with payments and no closed closure; RequiredClosureDate is the
// earliest such day. Creating the missing closure is the only way to unlock.
type GuardStatus struct {
	Allow               bool       `json:"allow"`
	RequiredClosureDate *time.Time `json:"requiredClosureDate,omitempty"`
}
