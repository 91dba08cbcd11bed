// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"geolead/internal/domain/entity"
	"geolead/internal/domain/repository"
	"geolead/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// leadRepository implements the repository.LeadRepository interface.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository is the constructor for leadRepository.
func NewLeadRepository(db *gorm.DB) repository.LeadRepository {
	return &leadRepository{
		db: db,
	}
}

// FindLeadByID retrieves a lead by its unique ID.
// Reads go to the primary so a lead written a moment ago is visible.
func (repo *leadRepository) FindLeadByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var leadM model.LeadModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&leadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead by ID")
	}

	return toLeadDomain(&leadM), nil
}

// FindLeadsByDedupeKey retrieves leads sharing a dedupe key created strictly inside (from, to).
func (repo *leadRepository) FindLeadsByDedupeKey(ctx context.Context, dedupeKey string, from, to time.Time) ([]*entity.Lead, error) {
	var leadModels []*model.LeadModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("dedupe_key = ? AND created_at > ? AND created_at < ?", dedupeKey, from, to).
		Order("created_at ASC, id ASC").
		Find(&leadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find leads by dedupe key")
	}

	leads := make([]*entity.Lead, 0, len(leadModels))
	for _, leadM := range leadModels {
		leads = append(leads, toLeadDomain(leadM))
	}

	return leads, nil
}

// LockDedupeKey takes a transaction-scoped advisory lock on the key.
// Outside a transaction the lock is released as soon as the statement ends.
func (repo *leadRepository) LockDedupeKey(ctx context.Context, dedupeKey string) error {
	if err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", dedupeKey).Error; err != nil {
		return errors.Wrap(err, "failed to lock dedupe key")
	}

	return nil
}

// ConfirmLead moves a pending lead to confirmed.
func (repo *leadRepository) ConfirmLead(ctx context.Context, id uuid.UUID, confirmedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("id = ? AND confirmed = ?", id, false).
		UpdateColumns(map[string]any{
			"confirmed":    true,
			"confirmed_at": confirmedAt,
			"status":       string(entity.LeadStatusConfirmed),
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to confirm lead")
	}

	return result.RowsAffected == 1, nil
}

// MarkLeadNotified flips notified on a confirmed lead exactly once.
func (repo *leadRepository) MarkLeadNotified(ctx context.Context, id uuid.UUID, notifiedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("id = ? AND confirmed = ? AND notified = ?", id, true, false).
		UpdateColumns(map[string]any{
			"notified":    true,
			"notified_at": notifiedAt,
			"status":      string(entity.LeadStatusNotified),
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark lead notified")
	}

	return result.RowsAffected == 1, nil
}

// DeleteLead removes a lead by its ID.
func (repo *leadRepository) DeleteLead(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LeadModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete lead")
	}

	return nil
}

// --- Mapper Functions ---

// toLeadDomain converts a GORM LeadModel to a domain Lead entity.
func toLeadDomain(data *model.LeadModel) *entity.Lead {
	if data == nil {
		return nil
	}

	return &entity.Lead{
		ID:             data.ID,
		MerchantID:     data.MerchantID,
		CustomerMobile: data.CustomerMobile,
		CustomerID:     data.CustomerID,
		CustomerName:   data.CustomerName,
		OfferID:        data.OfferID,
		Type:           entity.LeadType(data.Type),
		Distance:       data.Distance,
		Status:         entity.LeadStatus(data.Status),
		Confirmed:      data.Confirmed,
		ConfirmedAt:    data.ConfirmedAt,
		Notified:       data.Notified,
		NotifiedAt:     data.NotifiedAt,
		CreatedAt:      data.CreatedAt,
	}
}
