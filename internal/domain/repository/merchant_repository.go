package repository

import (
	"context"

	"geolead/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Domain-specific errors for merchant persistence.
var (
	// ErrMerchantNotFound is returned when a merchant is not found.
	ErrMerchantNotFound = errors.New("merchant not found")
)

// MerchantRepository defines the interface for merchant-related database operations.
type MerchantRepository interface {
	// FindMerchantByID retrieves a merchant by its ID.
	FindMerchantByID(ctx context.Context, id string) (*entity.Merchant, error)

	// FindMerchantsByIDs retrieves the merchants with the given IDs. Unknown IDs are skipped.
	FindMerchantsByIDs(ctx context.Context, ids []string) ([]*entity.Merchant, error)

	// FindAlertableMerchants retrieves approved merchants with a location and at least one token.
	FindAlertableMerchants(ctx context.Context) ([]*entity.Merchant, error)

	// FindAlertableMerchantsInBound is FindAlertableMerchants restricted to a bounding box.
	FindAlertableMerchantsInBound(ctx context.Context, bound orb.Bound) ([]*entity.Merchant, error)

	// FindMerchantPushTargets retrieves every merchant token for broadcasts.
	FindMerchantPushTargets(ctx context.Context) ([]entity.PushTarget, error)

	// RemoveMerchantToken drops token from the merchant's fcmToken and fcmTokens, leaving other fields untouched.
	RemoveMerchantToken(ctx context.Context, merchantID, token string) error
}
