package postgres

import (
	"context"
	"time"

	"geolead/internal/domain/entity"
	"geolead/internal/domain/repository"
	"geolead/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const deleteExpiredAlertsSQL = `DELETE FROM merchant_alerts
WHERE id IN (
	SELECT id FROM merchant_alerts
	WHERE last_sent <= ?
	ORDER BY last_sent
	LIMIT ?
)`

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// FindAlert retrieves the alert for a merchant/customer pair.
func (repo *alertRepository) FindAlert(ctx context.Context, merchantID, customerID string) (*entity.MerchantAlert, error) {
	var alertM model.MerchantAlertModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", entity.AlertID(merchantID, customerID)).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant alert")
	}

	return toAlertDomain(&alertM), nil
}

// ClaimAlert inserts the alert, or overwrites it when the stored last_sent is
// at or before cooldownCutoff. Zero affected rows means the pair is cooling down.
func (repo *alertRepository) ClaimAlert(ctx context.Context, alert *entity.MerchantAlert, cooldownCutoff time.Time) (bool, error) {
	alertM := fromAlertDomain(alert)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_sent", "distance_meters"}),
			Where: clause.Where{Exprs: []clause.Expression{
				gorm.Expr("merchant_alerts.last_sent <= ?", cooldownCutoff),
			}},
		}).
		Create(alertM)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to claim merchant alert")
	}

	return result.RowsAffected == 1, nil
}

// DeleteAlertsSentBefore deletes up to limit alerts with last_sent at or before cutoff.
func (repo *alertRepository) DeleteAlertsSentBefore(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	result := repo.db.WithContext(ctx).Exec(deleteExpiredAlertsSQL, cutoff, limit)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired merchant alerts")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM MerchantAlertModel to a domain MerchantAlert entity.
func toAlertDomain(data *model.MerchantAlertModel) *entity.MerchantAlert {
	if data == nil {
		return nil
	}

	return &entity.MerchantAlert{
		MerchantID:     data.MerchantID,
		CustomerID:     data.CustomerID,
		LastSent:       data.LastSent,
		DistanceMeters: data.DistanceMeters,
	}
}

// fromAlertDomain converts a domain MerchantAlert entity to a GORM MerchantAlertModel.
func fromAlertDomain(data *entity.MerchantAlert) *model.MerchantAlertModel {
	if data == nil {
		return nil
	}

	return &model.MerchantAlertModel{
		ID:             data.ID(),
		MerchantID:     data.MerchantID,
		CustomerID:     data.CustomerID,
		LastSent:       data.LastSent,
		DistanceMeters: data.DistanceMeters,
	}
}
