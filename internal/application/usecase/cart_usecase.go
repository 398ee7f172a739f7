// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cartdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/cart"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/infra/logger"
)

// DefaultCartMaxAttempts bounds the optimistic read-merge-write loop.
const DefaultCartMaxAttempts = 5

// CartUsecase coordinates cart operations.
type CartUsecase struct {
	repo        cartdom.Repository
	clock       Clock
	maxAttempts int
	log         *logger.Logger
}

func NewCartUsecase(repo cartdom.Repository, maxAttempts int, log *logger.Logger) *CartUsecase {
	return NewCartUsecaseWithClock(repo, maxAttempts, log, nil)
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(repo cartdom.Repository, maxAttempts int, log *logger.Logger, clock Clock) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultCartMaxAttempts
	}
	return &CartUsecase{
		repo:        repo,
		clock:       clock,
		maxAttempts: maxAttempts,
		log:         logger.OrNop(log).Named("cart_uc"),
	}
}

// Get returns the user's cart. A missing cart reads as an empty one (not persisted).
func (uc *CartUsecase) Get(ctx context.Context, userID string) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, invalidArgumentf("userId is required")
	}

	c, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return cartdom.NewCart(uid)
	}
	return c, nil
}

// ApplyMutation merges (productID, quantity) into the user's cart.
//
// The read-merge-write runs as a compare-and-swap on the cart version and is
// retried up to maxAttempts times when another writer got in between.
func (uc *CartUsecase) ApplyMutation(ctx context.Context, userID, productID string, quantity common.Decimal) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" {
		return nil, invalidArgumentf("userId is required")
	}
	if pid == "" {
		return nil, invalidArgumentf("productId is required")
	}

	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		c, err := uc.repo.GetByUserID(ctx, uid)
		if err != nil {
			return nil, err
		}
		if c == nil {
			if c, err = cartdom.NewCart(uid); err != nil {
				return nil, invalidArgument(err)
			}
		}

		expected := c.Version
		if err := c.Apply(pid, quantity, uc.clock.Now()); err != nil {
			return nil, invalidArgument(err)
		}

		err = uc.repo.Save(ctx, c, common.IfMatch(expected))
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, cartdom.ErrConflict) {
			return nil, err
		}
		uc.log.Warn("[cart_uc] version conflict, retrying", "userId", uid, "attempt", attempt, "expectedVersion", expected)
	}

	return nil, fmt.Errorf("%w: cart %s was modified concurrently (%d attempts)", ErrConflict, uid, uc.maxAttempts)
}

// Clear deletes the cart document. Missing carts are fine.
func (uc *CartUsecase) Clear(ctx context.Context, userID string) error {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return invalidArgumentf("userId is required")
	}
	return uc.repo.DeleteByUserID(ctx, uid)
}
