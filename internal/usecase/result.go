package usecase

import (
	"context"

	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
)

// Outcome summarises how an operation ended.
type Outcome string

const (
	OutcomeDone    Outcome = "done"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Result is returned by every engine operation instead of a bare error.
type Result struct {
	Operation string  // Operation name, e.g. "lead.dedupe".
	Outcome   Outcome // How the operation ended.
	Reason    string  // Why the operation was skipped.
	Count     int     // Notifications sent or rows removed.
	Err       error   // Classified failure.

	// Undelivered is set when a push failed and should be kept for replay.
	Undelivered *entity.UndeliveredNotification
}

// Done reports a completed operation.
func Done(operation string, count int) Result {
	return Result{Operation: operation, Outcome: OutcomeDone, Count: count}
}

// Skipped reports an operation that had nothing to do.
func Skipped(operation, reason string) Result {
	return Result{Operation: operation, Outcome: OutcomeSkipped, Reason: reason}
}

// Failed reports an operation that failed with err.
func Failed(operation string, err error) Result {
	return Result{Operation: operation, Outcome: OutcomeFailed, Err: err}
}

// OK reports whether the operation did not fail.
func (r Result) OK() bool {
	return r.Err == nil
}

// Kind returns the failure class, empty on success.
func (r Result) Kind() domainerrors.Kind {
	return domainerrors.KindOf(r.Err)
}

// Verdict is the supervisor's decision for a result.
type Verdict string

const (
	// VerdictAck acknowledges the triggering event.
	VerdictAck Verdict = "ack"
	// VerdictDiscard acknowledges an event that can never succeed.
	VerdictDiscard Verdict = "discard"
	// VerdictRetry asks the transport to redeliver the event.
	VerdictRetry Verdict = "retry"
	// VerdictDeadLetter acknowledges the event and keeps the failed push for replay.
	VerdictDeadLetter Verdict = "dead_letter"
)

// Supervisor turns results into verdicts and records them.
type Supervisor interface {
	Resolve(ctx context.Context, result Result) Verdict
}
