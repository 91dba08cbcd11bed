package impl

import (
	"context"
	"log/slog"

	domainerrors "geolead/internal/domain/errors"
	"geolead/internal/domain/repository"
	"geolead/internal/usecase"
)

type supervisor struct {
	logger          *slog.Logger
	undeliveredRepo repository.UndeliveredRepository
}

// NewSupervisor creates the result supervisor. undeliveredRepo may be nil, in which case dead letters are only logged.
func NewSupervisor(logger *slog.Logger, undeliveredRepo repository.UndeliveredRepository) usecase.Supervisor {
	return &supervisor{
		logger:          logger,
		undeliveredRepo: undeliveredRepo,
	}
}

// VerdictFor maps a failure class to what the transport should do with the event.
func VerdictFor(kind domainerrors.Kind) usecase.Verdict {
	switch kind {
	case domainerrors.KindNone, domainerrors.KindNotFound, domainerrors.KindTokenInvalid:
		return usecase.VerdictAck
	case domainerrors.KindValidation, domainerrors.KindDuplicate:
		return usecase.VerdictDiscard
	case domainerrors.KindTransientDelivery:
		return usecase.VerdictDeadLetter
	default:
		return usecase.VerdictRetry
	}
}

// Resolve logs the result at the level its class deserves and returns the verdict.
func (s *supervisor) Resolve(ctx context.Context, result usecase.Result) usecase.Verdict {
	kind := result.Kind()
	verdict := VerdictFor(kind)

	attrs := []slog.Attr{
		slog.String("operation", result.Operation),
		slog.String("outcome", string(result.Outcome)),
		slog.String("verdict", string(verdict)),
	}
	if result.Reason != "" {
		attrs = append(attrs, slog.String("reason", result.Reason))
	}
	if result.Count > 0 {
		attrs = append(attrs, slog.Int("count", result.Count))
	}
	if result.Err != nil {
		attrs = append(attrs,
			slog.String("kind", string(kind)),
			slog.String("code", domainerrors.CodeOf(result.Err)),
			slog.Any("error", result.Err),
		)
	}

	switch kind {
	case domainerrors.KindNone:
		s.logger.LogAttrs(ctx, slog.LevelDebug, "Operation finished", attrs...)
	case domainerrors.KindNotFound, domainerrors.KindValidation, domainerrors.KindDuplicate:
		s.logger.LogAttrs(ctx, slog.LevelInfo, "Operation dropped", attrs...)
	case domainerrors.KindTokenInvalid, domainerrors.KindTransientDelivery:
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Push not delivered", attrs...)
	case domainerrors.KindInProgress:
		s.logger.LogAttrs(ctx, slog.LevelInfo, "Operation deferred", attrs...)
	default:
		s.logger.LogAttrs(ctx, slog.LevelError, "Operation failed", attrs...)
	}

	if verdict == usecase.VerdictDeadLetter {
		s.deadLetter(ctx, result)
	}

	return verdict
}

func (s *supervisor) deadLetter(ctx context.Context, result usecase.Result) {
	if result.Undelivered == nil || s.undeliveredRepo == nil {
		return
	}

	if err := s.undeliveredRepo.CreateUndelivered(ctx, result.Undelivered); err != nil {
		s.logger.ErrorContext(ctx, "Failed to store undelivered notification",
			slog.String("operation", result.Operation),
			slog.Any("error", err),
		)
	}
}
