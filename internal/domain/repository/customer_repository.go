package repository

import (
	"context"

	"geolead/internal/domain/entity"

	"github.com/paulmach/orb"
)

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	// FindCustomersWithTokenInBound retrieves customers with a token and a location inside bound.
	FindCustomersWithTokenInBound(ctx context.Context, bound orb.Bound) ([]*entity.Customer, error)

	// FindCustomerPushTargets retrieves every customer token for broadcasts.
	FindCustomerPushTargets(ctx context.Context) ([]entity.PushTarget, error)

	// ClearCustomerToken clears the customer's token if it still equals token.
	ClearCustomerToken(ctx context.Context, customerID, token string) error
}
