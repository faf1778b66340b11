package enums

import "fmt"

// OfferStatus tracks a reseller submission through its review workflow.
type OfferStatus string

const (
	OfferStatusPendingApproval OfferStatus = "pending_approval"
	OfferStatusApproved        OfferStatus = "approved"
	OfferStatusRejected        OfferStatus = "rejected"
	OfferStatusPaid            OfferStatus = "paid"
	OfferStatusReceived        OfferStatus = "received"
)

var validOfferStatuses = []OfferStatus{
	OfferStatusPendingApproval,
	OfferStatusApproved,
	OfferStatusRejected,
	OfferStatusPaid,
	OfferStatusReceived,
}

// IsValid reports whether the value matches the canonical offer status enum.
func (o OfferStatus) IsValid() bool {
	for _, candidate := range validOfferStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOfferStatus converts the raw string to OfferStatus.
func ParseOfferStatus(value string) (OfferStatus, error) {
	for _, candidate := range validOfferStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid offer status %q", value)
}
