package impl

import (
	"context"
	"log/slog"

	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
	"geolead/internal/domain/repository"
	"geolead/internal/usecase"
)

const opBroadcast = "broadcast.send"

type broadcastService struct {
	logger       *slog.Logger
	merchantRepo repository.MerchantRepository
	customerRepo repository.CustomerRepository
	dispatcher   usecase.DispatchUsecase
}

// NewBroadcastService creates the admin broadcast sender.
func NewBroadcastService(
	logger *slog.Logger,
	merchantRepo repository.MerchantRepository,
	customerRepo repository.CustomerRepository,
	dispatcher usecase.DispatchUsecase,
) usecase.BroadcastUsecase {
	return &broadcastService{
		logger:       logger,
		merchantRepo: merchantRepo,
		customerRepo: customerRepo,
		dispatcher:   dispatcher,
	}
}

// SendBroadcast multicasts the broadcast to its audience.
func (s *broadcastService) SendBroadcast(ctx context.Context, broadcast *entity.Broadcast) usecase.Result {
	target := broadcast.AudienceTarget()

	var targets []entity.PushTarget
	if target == entity.BroadcastTargetCustomer || target == entity.BroadcastTargetAll {
		customers, err := s.customerRepo.FindCustomerPushTargets(ctx)
		if err != nil {
			return usecase.Failed(opBroadcast, domainerrors.NewDatabaseExecuteError(err, "find customer tokens"))
		}
		targets = append(targets, customers...)
	}
	if target == entity.BroadcastTargetMerchant || target == entity.BroadcastTargetAll {
		merchants, err := s.merchantRepo.FindMerchantPushTargets(ctx)
		if err != nil {
			return usecase.Failed(opBroadcast, domainerrors.NewDatabaseExecuteError(err, "find merchant tokens"))
		}
		targets = append(targets, merchants...)
	}

	if len(targets) == 0 {
		return usecase.Skipped(opBroadcast, "no audience tokens")
	}

	result := s.dispatcher.SendMulticast(ctx, targets, BuildBroadcastMessage(broadcast))

	s.logger.InfoContext(ctx, "Broadcast sent",
		slog.String("broadcastID", broadcast.ID),
		slog.String("target", string(target)),
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
		slog.Int("invalidTokens", len(result.InvalidTokens)),
	)

	return usecase.Done(opBroadcast, result.SuccessCount)
}
