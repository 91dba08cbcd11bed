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

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindCustomersWithTokenInBound retrieves customers with a token and a location inside bound.
func (repo *customerRepository) FindCustomersWithTokenInBound(ctx context.Context, bound orb.Bound) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("fcm_token <> ''").
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Scopes(insideBound(bound)).
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find customers in bound")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// FindCustomerPushTargets retrieves every customer token.
func (repo *customerRepository) FindCustomerPushTargets(ctx context.Context) ([]entity.PushTarget, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Select("id", "fcm_token").
		Where("fcm_token <> ''").
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find customer push targets")
	}

	targets := make([]entity.PushTarget, 0, len(customerModels))
	for _, customerM := range customerModels {
		targets = append(targets, toCustomerDomain(customerM).PushTarget())
	}

	return targets, nil
}

// ClearCustomerToken clears the customer's token if it still equals token.
// A token replaced in the meantime is left alone.
func (repo *customerRepository) ClearCustomerToken(ctx context.Context, customerID, token string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ? AND fcm_token = ?", customerID, token).
		UpdateColumn("fcm_token", "").Error; err != nil {
		return errors.Wrap(err, "failed to clear customer token")
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	customer := &entity.Customer{
		ID:                 data.ID,
		Mobile:             data.Mobile,
		FCMToken:           data.FCMToken,
		SelectedDistanceKm: data.SelectedDistanceKm,
		UpdatedAt:          data.UpdatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		customer.Location = &entity.GeoPoint{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	return customer
}
