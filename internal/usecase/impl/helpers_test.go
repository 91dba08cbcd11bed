package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"geolead/internal/domain/entity"
	"geolead/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// fakeClock is a settable clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memoryLeadStore is an in-memory lead table whose transactions are
// serialised, standing in for the advisory lock.
type memoryLeadStore struct {
	txMu  sync.Mutex
	mu    sync.Mutex
	leads map[uuid.UUID]*entity.Lead
}

func newMemoryLeadStore(leads ...*entity.Lead) *memoryLeadStore {
	store := &memoryLeadStore{leads: make(map[uuid.UUID]*entity.Lead)}
	for _, lead := range leads {
		store.leads[lead.ID] = lead
	}

	return store
}

func (s *memoryLeadStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	return fn(s)
}

func (s *memoryLeadStore) NewLeadRepository() repository.LeadRepository {
	return s
}

func (s *memoryLeadStore) NewAlertRepository() repository.AlertRepository {
	return nil
}

func (s *memoryLeadStore) FindLeadByID(_ context.Context, id uuid.UUID) (*entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok {
		return nil, repository.ErrLeadNotFound
	}
	clone := *lead

	return &clone, nil
}

func (s *memoryLeadStore) FindLeadsByDedupeKey(_ context.Context, dedupeKey string, from, to time.Time) ([]*entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var leads []*entity.Lead
	for _, lead := range s.leads {
		if lead.DedupeKey() == dedupeKey && lead.CreatedAt.After(from) && lead.CreatedAt.Before(to) {
			clone := *lead
			leads = append(leads, &clone)
		}
	}
	sort.Slice(leads, func(i, j int) bool { return leads[i].CreatedAt.Before(leads[j].CreatedAt) })

	return leads, nil
}

func (s *memoryLeadStore) LockDedupeKey(context.Context, string) error {
	return nil
}

func (s *memoryLeadStore) ConfirmLead(_ context.Context, id uuid.UUID, confirmedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok || lead.Status != entity.LeadStatusPending {
		return false, nil
	}
	lead.Status = entity.LeadStatusConfirmed
	lead.Confirmed = true
	lead.ConfirmedAt = &confirmedAt

	return true, nil
}

func (s *memoryLeadStore) MarkLeadNotified(_ context.Context, id uuid.UUID, notifiedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok || !lead.Confirmed || lead.Notified {
		return false, nil
	}
	lead.Status = entity.LeadStatusNotified
	lead.Notified = true
	lead.NotifiedAt = &notifiedAt

	return true, nil
}

func (s *memoryLeadStore) DeleteLead(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.leads, id)

	return nil
}

func (s *memoryLeadStore) confirmed() []*entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	var leads []*entity.Lead
	for _, lead := range s.leads {
		if lead.Confirmed {
			leads = append(leads, lead)
		}
	}

	return leads
}

func (s *memoryLeadStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.leads)
}

// memoryAlertStore is an in-memory merchant_alerts table with the same
// conditional upsert the SQL store performs.
type memoryAlertStore struct {
	mu     sync.Mutex
	alerts map[string]entity.MerchantAlert
	claims int
}

func newMemoryAlertStore(alerts ...entity.MerchantAlert) *memoryAlertStore {
	store := &memoryAlertStore{alerts: make(map[string]entity.MerchantAlert)}
	for _, alert := range alerts {
		store.alerts[alert.ID()] = alert
	}

	return store
}

func (s *memoryAlertStore) FindAlert(_ context.Context, merchantID, customerID string) (*entity.MerchantAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alert, ok := s.alerts[entity.AlertID(merchantID, customerID)]
	if !ok {
		return nil, repository.ErrAlertNotFound
	}

	return &alert, nil
}

func (s *memoryAlertStore) ClaimAlert(_ context.Context, alert *entity.MerchantAlert, cooldownCutoff time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.claims++
	existing, ok := s.alerts[alert.ID()]
	if ok && existing.LastSent.After(cooldownCutoff) {
		return false, nil
	}
	s.alerts[alert.ID()] = *alert

	return true, nil
}

func (s *memoryAlertStore) DeleteAlertsSentBefore(_ context.Context, cutoff time.Time, limit int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, alert := range s.alerts {
		if int(deleted) == limit {
			break
		}
		if !alert.LastSent.After(cutoff) {
			delete(s.alerts, id)
			deleted++
		}
	}

	return deleted, nil
}

func (s *memoryAlertStore) claimCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.claims
}

func (s *memoryAlertStore) has(merchantID, customerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.alerts[entity.AlertID(merchantID, customerID)]

	return ok
}

func ptr[T any](v T) *T {
	return &v
}
