package postgres

import (
	"context"

	"geolead/internal/domain/entity"
	"geolead/internal/domain/repository"
	"geolead/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// merchantRepository implements the repository.MerchantRepository interface.
type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository is the constructor for merchantRepository.
func NewMerchantRepository(db *gorm.DB) repository.MerchantRepository {
	return &merchantRepository{
		db: db,
	}
}

// FindMerchantByID retrieves a merchant by its ID.
func (repo *merchantRepository) FindMerchantByID(ctx context.Context, id string) (*entity.Merchant, error) {
	var merchantM model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by ID")
	}

	return toMerchantDomain(&merchantM), nil
}

// FindMerchantsByIDs retrieves the merchants with the given IDs.
func (repo *merchantRepository) FindMerchantsByIDs(ctx context.Context, ids []string) ([]*entity.Merchant, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var merchantModels []*model.MerchantModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&merchantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find merchants by IDs")
	}

	return toMerchantDomains(merchantModels), nil
}

// FindAlertableMerchants retrieves approved merchants with a location and at least one token.
func (repo *merchantRepository) FindAlertableMerchants(ctx context.Context) ([]*entity.Merchant, error) {
	var merchantModels []*model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Scopes(alertableMerchants).
		Find(&merchantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alertable merchants")
	}

	return toMerchantDomains(merchantModels), nil
}

// FindAlertableMerchantsInBound is FindAlertableMerchants restricted to a bounding box.
func (repo *merchantRepository) FindAlertableMerchantsInBound(ctx context.Context, bound orb.Bound) ([]*entity.Merchant, error) {
	var merchantModels []*model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Scopes(alertableMerchants, insideBound(bound)).
		Find(&merchantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alertable merchants in bound")
	}

	return toMerchantDomains(merchantModels), nil
}

// FindMerchantPushTargets retrieves every merchant token.
func (repo *merchantRepository) FindMerchantPushTargets(ctx context.Context) ([]entity.PushTarget, error) {
	var merchantModels []*model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Select("id", "fcm_token", "fcm_tokens").
		Where("fcm_token <> '' OR cardinality(fcm_tokens) > 0").
		Find(&merchantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find merchant push targets")
	}

	var targets []entity.PushTarget
	for _, merchantM := range merchantModels {
		targets = append(targets, toMerchantDomain(merchantM).PushTargets()...)
	}

	return targets, nil
}

// RemoveMerchantToken drops token from fcm_token and fcm_tokens in one statement.
// updated_at and every other column are left as they are.
func (repo *merchantRepository) RemoveMerchantToken(ctx context.Context, merchantID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MerchantModel{}).
		Where("id = ?", merchantID).
		UpdateColumns(map[string]any{
			"fcm_tokens": gorm.Expr("array_remove(fcm_tokens, ?)", token),
			"fcm_token":  gorm.Expr("CASE WHEN fcm_token = ? THEN '' ELSE fcm_token END", token),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove merchant token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMerchantNotFound
	}

	return nil
}

func alertableMerchants(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", string(entity.MerchantStatusApproved)).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("fcm_token <> '' OR cardinality(fcm_tokens) > 0")
}

func insideBound(bound orb.Bound) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?",
			bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon())
	}
}

// --- Mapper Functions ---

func toMerchantDomains(merchantModels []*model.MerchantModel) []*entity.Merchant {
	merchants := make([]*entity.Merchant, 0, len(merchantModels))
	for _, merchantM := range merchantModels {
		merchants = append(merchants, toMerchantDomain(merchantM))
	}

	return merchants
}

// toMerchantDomain converts a GORM MerchantModel to a domain Merchant entity.
func toMerchantDomain(data *model.MerchantModel) *entity.Merchant {
	if data == nil {
		return nil
	}

	merchant := &entity.Merchant{
		ID:                data.ID,
		Name:              data.Name,
		Status:            entity.MerchantStatus(data.Status),
		FCMToken:          data.FCMToken,
		FCMTokens:         []string(data.FCMTokens),
		NotificationPrefs: data.NotificationPrefs.Data(),
		UpdatedAt:         data.UpdatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		merchant.Location = &entity.GeoPoint{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	return merchant
}
