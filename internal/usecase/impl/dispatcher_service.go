package impl

import (
	"context"
	"log/slog"

	"geolead/config"
	"geolead/internal/domain/constants"
	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
	"geolead/internal/domain/repository"
	"geolead/internal/domain/service"
	"geolead/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	opPushSend      = "push.send"
	opPushMulticast = "push.multicast"
)

type dispatcherService struct {
	logger       *slog.Logger
	pushSvc      service.NotificationService
	merchantRepo repository.MerchantRepository
	customerRepo repository.CustomerRepository
	supervisor   usecase.Supervisor
	clock        service.Clock
	limiter      *rate.Limiter
	batchSize    int
}

// NewDispatcherService creates the push dispatcher. pushSvc may be nil when
// push is not configured; sends are then dropped with a log line.
func NewDispatcherService(
	logger *slog.Logger,
	pushSvc service.NotificationService,
	merchantRepo repository.MerchantRepository,
	customerRepo repository.CustomerRepository,
	supervisor usecase.Supervisor,
	clock service.Clock,
	cfg *config.PushConfig,
) usecase.DispatchUsecase {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg != nil && cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}

	return &dispatcherService{
		logger:       logger,
		pushSvc:      pushSvc,
		merchantRepo: merchantRepo,
		customerRepo: customerRepo,
		supervisor:   supervisor,
		clock:        clock,
		limiter:      limiter,
		batchSize:    constants.MaxMulticastTokens,
	}
}

// Send pushes msg to one target. A rejected token is removed from its owner
// and reported as not delivered; transient failures are dead-lettered.
func (s *dispatcherService) Send(ctx context.Context, target entity.PushTarget, msg *entity.PushMessage) usecase.Delivery {
	if s.pushSvc == nil {
		s.logger.WarnContext(ctx, "Push disabled, dropping notification",
			slog.String("owner", target.Owner.String()),
			slog.String("ownerID", target.OwnerID),
		)

		return usecase.Delivery{Err: domainerrors.ErrPushUnavailable.WithDetails("push provider not configured")}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return usecase.Delivery{Err: domainerrors.ErrPushUnavailable.WrapMessage(err.Error())}
	}

	err := s.pushSvc.SendSingleNotification(ctx, msg.ForToken(target.Token))
	if err == nil {
		return usecase.Delivery{Delivered: true}
	}

	if domainerrors.KindOf(err) == domainerrors.KindTokenInvalid {
		s.removeToken(ctx, target)
		s.supervisor.Resolve(ctx, usecase.Failed(opPushSend, err))

		return usecase.Delivery{Err: err}
	}

	s.supervisor.Resolve(ctx, usecase.Result{
		Operation:   opPushSend,
		Outcome:     usecase.OutcomeFailed,
		Err:         err,
		Undelivered: s.undelivered(target.Owner, target.OwnerID, []string{target.Token}, msg, err),
	})

	return usecase.Delivery{Err: err}
}

// SendMulticast pushes msg to every target in batches the provider accepts.
func (s *dispatcherService) SendMulticast(ctx context.Context, targets []entity.PushTarget, msg *entity.PushMessage) *entity.MulticastResult {
	result := &entity.MulticastResult{}
	if len(targets) == 0 {
		return result
	}

	if s.pushSvc == nil {
		s.logger.WarnContext(ctx, "Push disabled, dropping multicast", slog.Int("targets", len(targets)))
		result.FailureCount = len(targets)

		return result
	}

	for start := 0; start < len(targets); start += s.batchSize {
		end := min(start+s.batchSize, len(targets))
		batch := targets[start:end]
		s.sendBatch(ctx, batch, msg, result)
	}

	return result
}

func (s *dispatcherService) sendBatch(ctx context.Context, batch []entity.PushTarget, msg *entity.PushMessage, result *entity.MulticastResult) {
	tokens := make([]string, 0, len(batch))
	owners := make(map[string][]entity.PushTarget, len(batch))
	for _, target := range batch {
		if _, seen := owners[target.Token]; !seen {
			tokens = append(tokens, target.Token)
		}
		owners[target.Token] = append(owners[target.Token], target)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		result.FailureCount += len(tokens)

		return
	}

	batchResult, err := s.pushSvc.SendBatchNotification(ctx, msg.ForTokens(tokens))
	if err != nil {
		result.FailureCount += len(tokens)
		owner, ownerID := batch[0].Owner, ""
		if len(batch) == 1 {
			ownerID = batch[0].OwnerID
		}
		s.supervisor.Resolve(ctx, usecase.Result{
			Operation:   opPushMulticast,
			Outcome:     usecase.OutcomeFailed,
			Err:         err,
			Undelivered: s.undelivered(owner, ownerID, tokens, msg, err),
		})

		return
	}

	result.SuccessCount += batchResult.SuccessCount
	result.FailureCount += batchResult.FailureCount
	result.InvalidTokens = append(result.InvalidTokens, batchResult.InvalidTokens...)

	for _, token := range batchResult.InvalidTokens {
		for _, target := range owners[token] {
			s.removeToken(ctx, target)
		}
	}
}

// NotifyMerchant pushes msg to every token the merchant has.
func (s *dispatcherService) NotifyMerchant(ctx context.Context, merchant *entity.Merchant, msg *entity.PushMessage) usecase.Delivery {
	targets := merchant.PushTargets()

	switch len(targets) {
	case 0:
		return usecase.Delivery{Err: domainerrors.ErrMerchantNoToken.WithDetails(merchant.ID)}
	case 1:
		return s.Send(ctx, targets[0], msg)
	}

	result := s.SendMulticast(ctx, targets, msg)
	if result.SuccessCount > 0 {
		return usecase.Delivery{Delivered: true}
	}
	if len(result.InvalidTokens) == len(targets) {
		return usecase.Delivery{Err: domainerrors.ErrTokenUnregistered.WithDetails(merchant.ID)}
	}

	return usecase.Delivery{Err: domainerrors.ErrPushUnavailable.WithDetails(merchant.ID)}
}

// removeToken drops a rejected token from its owner. Failures are logged and
// swallowed; the next rejected send retries the cleanup.
func (s *dispatcherService) removeToken(ctx context.Context, target entity.PushTarget) {
	var err error
	switch target.Owner {
	case entity.OwnerKindMerchant:
		err = s.merchantRepo.RemoveMerchantToken(ctx, target.OwnerID, target.Token)
	case entity.OwnerKindCustomer:
		err = s.customerRepo.ClearCustomerToken(ctx, target.OwnerID, target.Token)
	default:
		return
	}

	if err != nil {
		s.logger.WarnContext(ctx, "Failed to remove invalid push token",
			slog.String("owner", target.Owner.String()),
			slog.String("ownerID", target.OwnerID),
			slog.Any("error", err),
		)

		return
	}

	s.logger.InfoContext(ctx, "Removed invalid push token",
		slog.String("owner", target.Owner.String()),
		slog.String("ownerID", target.OwnerID),
	)
}

func (s *dispatcherService) undelivered(owner entity.OwnerKind, ownerID string, tokens []string, msg *entity.PushMessage, err error) *entity.UndeliveredNotification {
	return &entity.UndeliveredNotification{
		ID:        uuid.New(),
		Owner:     owner,
		OwnerID:   ownerID,
		Tokens:    tokens,
		Message:   *msg,
		ErrorCode: domainerrors.CodeOf(err),
		Error:     err.Error(),
		CreatedAt: s.clock.Now(),
	}
}
