package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/adapters/out/memory"
	archivedom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/archive"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
)

func TestCheckoutUsecase_ArchiveOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCheckoutHistoryRepositoryMem()
	uc := NewCheckoutUsecase(repo)
	uc.clock = ClockFunc(func() time.Time { return fixedNow })

	in := archivedom.ArchivedOrder{
		OrderID:    "o1",
		UserID:     "u1",
		Items:      []orderdom.LineItem{{ProductID: "A", Price: common.DecimalFromInt(3), Quantity: common.DecimalFromInt(1)}},
		TotalPrice: common.DecimalFromInt(3),
		CreatedAt:  "2024-05-01T10:00:00Z",
	}

	id, err := uc.Archive(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "o1", id)

	in.PaymentMethod = "transfer"
	_, err = uc.Archive(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Len())

	got, err := uc.Get(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "transfer", got.PaymentMethod)
	assert.Equal(t, orderdom.NotAvailable, got.CustomerName)
	assert.Equal(t, "2024-05-01T10:00:00Z", got.CreatedAt)
	assert.Equal(t, fixedNow, got.ArchivedAt)
}

func TestCheckoutUsecase_Validation(t *testing.T) {
	uc := NewCheckoutUsecase(memory.NewCheckoutHistoryRepositoryMem())

	_, err := uc.Archive(context.Background(), archivedom.ArchivedOrder{UserID: "u1", Items: []orderdom.LineItem{}, CreatedAt: "x"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = uc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckoutUsecase_ArchiveOrder(t *testing.T) {
	ctx := context.Background()
	orders := memory.NewOrderRepositoryMem()
	history := memory.NewCheckoutHistoryRepositoryMem()

	ouc := NewOrderUsecase(orders, nil)
	o, err := ouc.Create(ctx, CreateOrderInput{
		UserID: "u1",
		Items:  []orderdom.LineItem{{ProductID: "A", Price: common.MustDecimal("2.5"), Quantity: common.DecimalFromInt(4)}},
	})
	require.NoError(t, err)

	uc := NewCheckoutUsecase(history).WithOrders(orders)
	id, err := uc.ArchiveOrder(ctx, o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, o.OrderID, id)

	got, err := uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "10", got.TotalPrice.WireString())
	assert.Equal(t, orderdom.NotAvailable, got.PaymentMethod)

	_, err = uc.ArchiveOrder(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NewCheckoutUsecase(history).ArchiveOrder(ctx, o.OrderID)
	assert.Error(t, err)
}
