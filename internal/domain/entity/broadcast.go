package entity

// BroadcastTarget selects the audience of an admin broadcast.
type BroadcastTarget string

const (
	BroadcastTargetCustomer BroadcastTarget = "customer"
	BroadcastTargetMerchant BroadcastTarget = "merchant"
	BroadcastTargetAll      BroadcastTarget = "all"
)

// IsValid checks if the BroadcastTarget is a known value.
func (t BroadcastTarget) IsValid() bool {
	switch t {
	case BroadcastTargetCustomer, BroadcastTargetMerchant, BroadcastTargetAll:
		return true
	default:
		return false
	}
}

// Broadcast is an admin-authored push to a whole audience.
type Broadcast struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Body   string          `json:"body"`
	Target BroadcastTarget `json:"target"`
}

// AudienceTarget returns the target, defaulting to customers.
func (b *Broadcast) AudienceTarget() BroadcastTarget {
	if b.Target == "" {
		return BroadcastTargetCustomer
	}

	return b.Target
}
