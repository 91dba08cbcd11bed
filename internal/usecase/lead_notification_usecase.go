package usecase

import (
	"context"

	"geolead/internal/domain/entity"

	"github.com/google/uuid"
)

// LeadChange describes a lead write. Before is nil when the prior state is unknown.
type LeadChange struct {
	LeadID uuid.UUID
	Before *entity.LeadSnapshot
	After  entity.LeadSnapshot
}

// BecameConfirmed reports whether the write moved the lead to confirmed without notifying it.
func (c *LeadChange) BecameConfirmed() bool {
	if c.Before != nil && c.Before.Confirmed {
		return false
	}

	return c.After.Confirmed && !c.After.Notified
}

// LeadNotificationUsecase pushes a confirmed lead to its merchant exactly once.
type LeadNotificationUsecase interface {
	NotifyLeadConfirmed(ctx context.Context, change *LeadChange) Result
}
