package impl

import (
	"context"
	"log/slog"
	"time"

	"geolead/config"
	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
	"geolead/internal/domain/repository"
	"geolead/internal/domain/service"
	"geolead/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const opLeadDedupe = "lead.dedupe"

type dedupOutcome int

const (
	dedupConfirmed dedupOutcome = iota
	dedupDuplicate
	dedupAlreadyResolved
)

type deduplicationService struct {
	logger    *slog.Logger
	txManager repository.TransactionManager
	leadRepo  repository.LeadRepository
	publisher service.EventPublisher
	clock     service.Clock
	window    time.Duration
}

// NewDeduplicationService creates the lead deduplication engine. publisher may
// be nil when lead updates reach the worker through pg_notify only.
func NewDeduplicationService(
	logger *slog.Logger,
	txManager repository.TransactionManager,
	leadRepo repository.LeadRepository,
	publisher service.EventPublisher,
	clock service.Clock,
	cfg *config.EngineConfig,
) usecase.DeduplicationUsecase {
	if cfg == nil {
		cfg = &config.EngineConfig{}
	}
	cfg.WithDefaults()

	return &deduplicationService{
		logger:    logger,
		txManager: txManager,
		leadRepo:  leadRepo,
		publisher: publisher,
		clock:     clock,
		window:    cfg.DedupWindow,
	}
}

// DeduplicateLead confirms the lead unless another lead with the same dedupe
// key within the window around it was confirmed already or was created
// earlier, in which case the lead is deleted. Leads missing required fields
// are deleted outright.
//
// Resolution for one key is serialised by a transaction-scoped lock, so the
// earliest lead wins whatever order the handlers run in and at most one lead
// per window is ever confirmed. Running it again for a lead that was already
// resolved is a no-op.
func (s *deduplicationService) DeduplicateLead(ctx context.Context, leadID uuid.UUID) usecase.Result {
	lead, err := s.leadRepo.FindLeadByID(ctx, leadID)
	if errors.Is(err, repository.ErrLeadNotFound) {
		return usecase.Failed(opLeadDedupe, domainerrors.ErrLeadNotFound.WithDetails(leadID.String()))
	}
	if err != nil {
		return usecase.Failed(opLeadDedupe, domainerrors.NewDatabaseExecuteError(err, "find lead"))
	}

	if lead.Confirmed || !lead.Status.CanTransition(entity.LeadStatusConfirmed) {
		return usecase.Skipped(opLeadDedupe, "lead already resolved")
	}

	if !lead.IsValid() {
		if err := s.leadRepo.DeleteLead(ctx, lead.ID); err != nil {
			return usecase.Failed(opLeadDedupe, domainerrors.NewDatabaseExecuteError(err, "delete invalid lead"))
		}

		return usecase.Failed(opLeadDedupe, domainerrors.ErrLeadInvalid.WithDetails(lead.ID.String()))
	}

	now := s.clock.Now()
	anchor := lead.CreatedAt
	if anchor.IsZero() || anchor.After(now) {
		anchor = now
	}

	var outcome dedupOutcome
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		leadRepo := factory.NewLeadRepository()

		if err := leadRepo.LockDedupeKey(ctx, lead.DedupeKey()); err != nil {
			return errors.Wrap(err, "lock dedupe key")
		}

		neighbours, err := leadRepo.FindLeadsByDedupeKey(ctx, lead.DedupeKey(), anchor.Add(-s.window), anchor.Add(s.window))
		if err != nil {
			return errors.Wrap(err, "find leads in window")
		}

		if winner := supersededBy(lead, neighbours); winner != nil {
			outcome = dedupDuplicate
			s.logger.DebugContext(ctx, "[Dedup] Lead superseded",
				slog.String("leadID", lead.ID.String()),
				slog.String("winnerID", winner.ID.String()),
			)

			return errors.Wrap(leadRepo.DeleteLead(ctx, lead.ID), "delete duplicate lead")
		}

		confirmed, err := leadRepo.ConfirmLead(ctx, lead.ID, now)
		if err != nil {
			return errors.Wrap(err, "confirm lead")
		}
		if !confirmed {
			outcome = dedupAlreadyResolved

			return nil
		}

		outcome = dedupConfirmed

		return nil
	})
	if err != nil {
		return usecase.Failed(opLeadDedupe, domainerrors.NewDatabaseExecuteError(err, "deduplicate lead"))
	}

	switch outcome {
	case dedupDuplicate:
		return usecase.Failed(opLeadDedupe, domainerrors.ErrLeadDuplicate.WithDetails(lead.DedupeKey()))
	case dedupAlreadyResolved:
		return usecase.Skipped(opLeadDedupe, "lead resolved concurrently")
	}

	before := lead.Snapshot()
	lead.Confirmed = true
	lead.Status = entity.LeadStatusConfirmed
	lead.ConfirmedAt = &now
	s.publishUpdate(ctx, lead, before)

	return usecase.Done(opLeadDedupe, 1)
}

// supersededBy returns the neighbour that keeps lead from being confirmed: one
// already confirmed, or a valid pending lead created earlier.
func supersededBy(lead *entity.Lead, neighbours []*entity.Lead) *entity.Lead {
	for _, other := range neighbours {
		if other.ID == lead.ID {
			continue
		}
		if other.Confirmed {
			return other
		}
		if other.Status == entity.LeadStatusPending && other.IsValid() && other.Precedes(lead) {
			return other
		}
	}

	return nil
}

func (s *deduplicationService) publishUpdate(ctx context.Context, lead *entity.Lead, before entity.LeadSnapshot) {
	if s.publisher == nil {
		return
	}

	event, err := service.NewEvent(uuid.NewString(), service.EventLeadUpdated, service.LeadUpdatedPayload{
		LeadID: lead.ID.String(),
		Before: &before,
		After:  lead.Snapshot(),
	}, s.clock.Now())
	if err == nil {
		err = s.publisher.Publish(ctx, event)
	}
	if err != nil {
		// The store trigger emits the same update, so a failed publish only delays the push.
		s.logger.WarnContext(ctx, "Failed to publish lead update",
			slog.String("leadID", lead.ID.String()),
			slog.Any("error", err),
		)
	}
}
