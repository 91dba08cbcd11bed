package impl

import (
	"context"
	"log/slog"

	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
	"geolead/internal/domain/repository"
	"geolead/internal/domain/service"
	"geolead/internal/usecase"

	"github.com/pkg/errors"
)

const opLeadNotify = "lead.notify"

type leadNotificationService struct {
	logger       *slog.Logger
	leadRepo     repository.LeadRepository
	merchantRepo repository.MerchantRepository
	dispatcher   usecase.DispatchUsecase
	clock        service.Clock
}

// NewLeadNotificationService creates the confirmed-lead notifier.
func NewLeadNotificationService(
	logger *slog.Logger,
	leadRepo repository.LeadRepository,
	merchantRepo repository.MerchantRepository,
	dispatcher usecase.DispatchUsecase,
	clock service.Clock,
) usecase.LeadNotificationUsecase {
	return &leadNotificationService{
		logger:       logger,
		leadRepo:     leadRepo,
		merchantRepo: merchantRepo,
		dispatcher:   dispatcher,
		clock:        clock,
	}
}

// NotifyLeadConfirmed pushes the lead to its merchant when the change moved it
// to confirmed. The notified flag is claimed in the store before the push, so
// redelivered or concurrent updates notify at most once. A push that fails
// after the claim is dead-lettered by the dispatcher and not retried here.
func (s *leadNotificationService) NotifyLeadConfirmed(ctx context.Context, change *usecase.LeadChange) usecase.Result {
	if !change.BecameConfirmed() {
		return usecase.Skipped(opLeadNotify, "not a confirm transition")
	}

	lead, err := s.leadRepo.FindLeadByID(ctx, change.LeadID)
	if errors.Is(err, repository.ErrLeadNotFound) {
		return usecase.Failed(opLeadNotify, domainerrors.ErrLeadNotFound.WithDetails(change.LeadID.String()))
	}
	if err != nil {
		return usecase.Failed(opLeadNotify, domainerrors.NewDatabaseExecuteError(err, "find lead"))
	}

	if !lead.Confirmed || lead.Notified || !lead.Status.CanTransition(entity.LeadStatusNotified) {
		return usecase.Skipped(opLeadNotify, "lead not awaiting notification")
	}

	merchant, err := s.merchantRepo.FindMerchantByID(ctx, lead.MerchantID)
	if errors.Is(err, repository.ErrMerchantNotFound) {
		return usecase.Failed(opLeadNotify, domainerrors.ErrMerchantNotFound.WithDetails(lead.MerchantID))
	}
	if err != nil {
		return usecase.Failed(opLeadNotify, domainerrors.NewDatabaseExecuteError(err, "find merchant"))
	}

	if !merchant.HasToken() {
		return usecase.Failed(opLeadNotify, domainerrors.ErrMerchantNoToken.WithDetails(merchant.ID))
	}

	if !merchant.AcceptsLeadType(lead.Type) {
		return usecase.Skipped(opLeadNotify, "merchant muted "+lead.Type.String())
	}

	claimed, err := s.leadRepo.MarkLeadNotified(ctx, lead.ID, s.clock.Now())
	if err != nil {
		return usecase.Failed(opLeadNotify, domainerrors.NewDatabaseExecuteError(err, "mark lead notified"))
	}
	if !claimed {
		return usecase.Skipped(opLeadNotify, "lead notified concurrently")
	}

	delivery := s.dispatcher.NotifyMerchant(ctx, merchant, BuildLeadMessage(lead))
	if !delivery.Delivered {
		s.logger.InfoContext(ctx, "Lead notification not delivered",
			slog.String("leadID", lead.ID.String()),
			slog.String("merchantID", merchant.ID),
			slog.Any("error", delivery.Err),
		)

		return usecase.Done(opLeadNotify, 0)
	}

	return usecase.Done(opLeadNotify, 1)
}
