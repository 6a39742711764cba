// Package cartstore keeps session carts in the in-memory cache. Carts expire
// after the configured TTL; nothing survives a restart, by contract.
package cartstore

import (
	"context"
	"time"

	"shopcart-backend/internal/domain"
	"shopcart-backend/pkg/cache"
)

const keyPrefix = "cart:"

type cartStore struct {
	cache cache.CacheService
	ttl   time.Duration
}

func NewCartStore(c cache.CacheService, ttl time.Duration) domain.CartStore {
	return &cartStore{cache: c, ttl: ttl}
}

func (s *cartStore) Get(ctx context.Context, id string) (*domain.Cart, error) {
	val, found := s.cache.Get(keyPrefix + id)
	if !found {
		return nil, domain.ErrCartNotFound
	}
	cart, ok := val.(*domain.Cart)
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	return cart, nil
}

// Put stores the cart and refreshes its TTL.
func (s *cartStore) Put(ctx context.Context, cart *domain.Cart) error {
	s.cache.Set(keyPrefix+cart.ID, cart, s.ttl)
	return nil
}

func (s *cartStore) Delete(ctx context.Context, id string) error {
	s.cache.Delete(keyPrefix + id)
	return nil
}
