package services

import (
	"maintenance/internal/pkg/errs"
)

const (
	DefaultMinActiveOrders = 2
	DefaultMaxActiveOrders = 6
)

// QuotaPolicy bounds the max_active_orders a technician may be registered with.
type QuotaPolicy struct {
	min int
	max int
}

// NewQuotaPolicy returns the plant-wide policy of 2 to 6 active work orders.
func NewQuotaPolicy() QuotaPolicy {
	return QuotaPolicy{min: DefaultMinActiveOrders, max: DefaultMaxActiveOrders}
}

// Min is the smallest limit a technician may be registered with.
func (p QuotaPolicy) Min() int {
	return p.min
}

// Max is the largest limit a technician may be registered with.
func (p QuotaPolicy) Max() int {
	return p.max
}

// ValidateLimit rejects a limit outside [Min, Max].
func (p QuotaPolicy) ValidateLimit(limit int) error {
	if limit < p.min || limit > p.max {
		return errs.NewValueIsOutOfRangeError("max active orders", limit, p.min, p.max)
	}
	return nil
}
