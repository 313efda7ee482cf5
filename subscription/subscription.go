package subscription

import "time"

// StatusActive is the only status that can be renewed.
const StatusActive = "active"

// Subscription carries the flags consulted by the renewal gate.
type Subscription struct {
	Status         string `json:"status" yaml:"status"`
	EndDate        string `json:"endDate" yaml:"endDate"`
	HasBeenRenewed bool   `json:"hasBeenRenewed" yaml:"hasBeenRenewed"`
	UnpaidDebt     bool   `json:"unpaidDebt" yaml:"unpaidDebt"`
	IsTrial        bool   `json:"isTrial" yaml:"isTrial"`
}

// Reason names the gate that decided a renewal.
type Reason string

const (
	ReasonEligible       Reason = "eligible"
	ReasonAlreadyRenewed Reason = "already_renewed"
	ReasonUnpaidDebt     Reason = "unpaid_debt"
	ReasonTrial          Reason = "trial"
	ReasonInactive       Reason = "inactive"
	ReasonExpired        Reason = "expired"
)

// Decision is the outcome of Check.
type Decision struct {
	CanRenew bool   `json:"canRenew"`
	Reason   Reason `json:"reason"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate accepts RFC 3339 timestamps, zone-less timestamps and plain
// dates. Zone-less values are read as UTC.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Check evaluates the gates in order and reports the first one that fails.
func Check(s Subscription, now time.Time) Decision {
	deny := func(r Reason) Decision { return Decision{Reason: r} }

	switch {
	case s.HasBeenRenewed:
		return deny(ReasonAlreadyRenewed)
	case s.UnpaidDebt:
		return deny(ReasonUnpaidDebt)
	case s.IsTrial:
		return deny(ReasonTrial)
	case s.Status != StatusActive:
		return deny(ReasonInactive)
	}

	// A missing or unreadable end date never counts as expired.
	if end, ok := ParseDate(s.EndDate); ok && end.Before(now) {
		return deny(ReasonExpired)
	}
	return Decision{CanRenew: true, Reason: ReasonEligible}
}

// CanRenew reports whether the subscription may be renewed at now.
func CanRenew(s Subscription, now time.Time) bool {
	return Check(s, now).CanRenew
}
