// Package geoindex finds merchants near a customer position.
package geoindex

import (
	"context"
	"log/slog"
	"sync"

	"geolead/internal/domain/entity"
	"geolead/internal/domain/geo"
	"geolead/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
	"github.com/pkg/errors"
)

var worldBound = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// merchantPoint puts a merchant into the quadtree.
type merchantPoint struct {
	merchant *entity.Merchant
}

func (p merchantPoint) Point() orb.Point {
	return geo.Point(p.merchant.Location.Latitude, p.merchant.Location.Longitude)
}

// QuadtreeLocator keeps alertable merchant positions in memory and rebuilds
// the tree on Refresh. The tree only picks candidates; their rows are read
// fresh, so token and status changes apply before the next refresh.
// Until the first successful refresh it answers from the repository.
type QuadtreeLocator struct {
	logger       *slog.Logger
	merchantRepo repository.MerchantRepository

	mu   sync.RWMutex
	tree *quadtree.Quadtree
}

// NewQuadtreeLocator creates an empty quadtree locator.
func NewQuadtreeLocator(logger *slog.Logger, merchantRepo repository.MerchantRepository) *QuadtreeLocator {
	return &QuadtreeLocator{
		logger:       logger,
		merchantRepo: merchantRepo,
	}
}

// Refresh reloads alertable merchants and swaps in a new tree.
func (l *QuadtreeLocator) Refresh(ctx context.Context) error {
	merchants, err := l.merchantRepo.FindAlertableMerchants(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load alertable merchants")
	}

	tree := quadtree.New(worldBound)
	size := 0
	for _, merchant := range merchants {
		if merchant.Location == nil {
			continue
		}
		if err := tree.Add(merchantPoint{merchant: merchant}); err != nil {
			l.logger.WarnContext(ctx, "[GeoIndex] Skipping merchant outside world bound",
				slog.String("merchantID", merchant.ID),
				slog.Any("error", err),
			)

			continue
		}
		size++
	}

	l.mu.Lock()
	l.tree = tree
	l.mu.Unlock()

	l.logger.DebugContext(ctx, "[GeoIndex] Merchant index refreshed", slog.Int("merchants", size))

	return nil
}

// FindNearby returns merchants indexed inside the bound around the point.
func (l *QuadtreeLocator) FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]*entity.Merchant, error) {
	bound := geo.BoundAround(lat, lng, radiusMeters)

	l.mu.RLock()
	tree := l.tree
	l.mu.RUnlock()

	if tree == nil {
		return l.merchantRepo.FindAlertableMerchantsInBound(ctx, bound)
	}

	points := tree.InBound(nil, bound)
	if len(points) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(points))
	for _, point := range points {
		ids = append(ids, point.(merchantPoint).merchant.ID)
	}

	merchants, err := l.merchantRepo.FindMerchantsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load indexed merchants")
	}

	return merchants, nil
}
