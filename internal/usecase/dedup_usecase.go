package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DeduplicationUsecase confirms the first lead per dedupe key and window and deletes the rest.
type DeduplicationUsecase interface {
	// DeduplicateLead runs when a lead is created.
	DeduplicateLead(ctx context.Context, leadID uuid.UUID) Result
}
