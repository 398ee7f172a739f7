// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
)

// CreateOrderInput is the app-level input for order creation.
// Items == nil means "not supplied"; an empty slice is a valid zero-total order.
type CreateOrderInput struct {
	UserID   string
	Items    []orderdom.LineItem
	Customer orderdom.CustomerInfo
}

// ListOrdersInput selects orders. Status nil = every order; Limit 0 = unbounded.
type ListOrdersInput struct {
	Status *string
	Limit  int
}

// OrderUsecase is the order engine.
type OrderUsecase struct {
	repo   orderdom.Repository
	policy orderdom.TransitionPolicy
	clock  Clock
	newID  IDGenerator
}

func NewOrderUsecase(repo orderdom.Repository, policy orderdom.TransitionPolicy) *OrderUsecase {
	if policy == nil {
		policy = orderdom.PermissivePolicy{}
	}
	return &OrderUsecase{
		repo:   repo,
		policy: policy,
		clock:  systemClock{},
		newID:  newUUID,
	}
}

// =======================
// Commands
// =======================

// Create computes the total, assigns id/createdAt and stores the order once.
func (u *OrderUsecase) Create(ctx context.Context, in CreateOrderInput) (orderdom.Order, error) {
	uid := strings.TrimSpace(in.UserID)
	if uid == "" {
		return orderdom.Order{}, invalidArgumentf("userId is required")
	}
	if in.Items == nil {
		return orderdom.Order{}, invalidArgumentf("items are required")
	}

	o, err := orderdom.New(u.newID(), uid, in.Items, in.Customer, u.clock.Now())
	if err != nil {
		return orderdom.Order{}, invalidArgument(err)
	}

	return u.repo.Create(ctx, o)
}

// SetStatus overwrites only the status field after the transition policy agrees.
func (u *OrderUsecase) SetStatus(ctx context.Context, id, status string) (orderdom.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.Order{}, invalidArgumentf("orderId is required")
	}
	to := orderdom.Status(status)
	if strings.TrimSpace(status) == "" {
		return orderdom.Order{}, invalidArgument(orderdom.ErrInvalidStatus)
	}

	o, err := u.repo.UpdateStatus(ctx, id, to, func(from orderdom.Status) error {
		return u.policy.Allow(from, to)
	})
	switch {
	case err == nil:
		return o, nil
	case errors.Is(err, orderdom.ErrNotFound):
		return orderdom.Order{}, notFoundf("order %s", id)
	case errors.Is(err, orderdom.ErrTransitionNotAllowed):
		return orderdom.Order{}, fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, orderdom.ErrInvalidStatus):
		return orderdom.Order{}, invalidArgument(err)
	default:
		return orderdom.Order{}, err
	}
}

// =======================
// Queries
// =======================

func (u *OrderUsecase) Get(ctx context.Context, id string) (orderdom.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return orderdom.Order{}, invalidArgumentf("orderId is required")
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderdom.ErrNotFound) {
			return orderdom.Order{}, notFoundf("order %s", id)
		}
		return orderdom.Order{}, err
	}
	return o, nil
}

// List returns every order, or only those whose status equals in.Status exactly.
func (u *OrderUsecase) List(ctx context.Context, in ListOrdersInput) ([]orderdom.Order, error) {
	if in.Limit < 0 {
		return nil, invalidArgumentf("limit must be positive")
	}
	f := orderdom.Filter{Limit: in.Limit}
	if in.Status != nil {
		s := orderdom.Status(*in.Status)
		f.Status = &s
	}

	orders, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []orderdom.Order{}
	}
	return orders, nil
}
