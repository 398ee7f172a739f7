// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	archivedom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/archive"
	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
)

// CheckoutUsecase is the archival recorder: it copies a finalized order into
// the checkout history store. Re-archiving the same orderId overwrites.
type CheckoutUsecase struct {
	repo   archivedom.Repository
	orders orderdom.Repository
	clock  Clock
}

func NewCheckoutUsecase(repo archivedom.Repository) *CheckoutUsecase {
	return &CheckoutUsecase{repo: repo, clock: systemClock{}}
}

// WithOrders enables ArchiveOrder.
func (u *CheckoutUsecase) WithOrders(orders orderdom.Repository) *CheckoutUsecase {
	u.orders = orders
	return u
}

// Archive stores a and returns the archived order id.
func (u *CheckoutUsecase) Archive(ctx context.Context, a archivedom.ArchivedOrder) (string, error) {
	a.Normalize()
	if err := a.Validate(); err != nil {
		return "", invalidArgument(err)
	}
	a.ArchivedAt = u.clock.Now().UTC()

	if err := u.repo.Put(ctx, a); err != nil {
		return "", err
	}
	return a.OrderID, nil
}

// ArchiveOrder archives the stored order with the given id.
func (u *CheckoutUsecase) ArchiveOrder(ctx context.Context, orderID string) (string, error) {
	id := strings.TrimSpace(orderID)
	if id == "" {
		return "", invalidArgumentf("orderId is required")
	}
	if u.orders == nil {
		return "", errors.New("checkout_usecase: order repository not configured")
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderdom.ErrNotFound) {
			return "", notFoundf("order %s", id)
		}
		return "", err
	}
	return u.Archive(ctx, archivedom.FromOrder(o, u.clock.Now()))
}

func (u *CheckoutUsecase) Get(ctx context.Context, orderID string) (archivedom.ArchivedOrder, error) {
	id := strings.TrimSpace(orderID)
	if id == "" {
		return archivedom.ArchivedOrder{}, invalidArgumentf("orderId is required")
	}
	a, err := u.repo.GetByOrderID(ctx, id)
	if err != nil {
		if errors.Is(err, archivedom.ErrNotFound) {
			return archivedom.ArchivedOrder{}, notFoundf("archived order %s", id)
		}
		return archivedom.ArchivedOrder{}, err
	}
	return a, nil
}
