package archive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
)

func TestFromOrderCopiesFields(t *testing.T) {
	created := time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC)
	o := orderdom.Order{
		OrderID:         "o-1",
		UserID:          "u-1",
		Items:           []orderdom.LineItem{{ProductID: "p-1", Price: common.DecimalFromInt(4), Quantity: common.DecimalFromInt(2)}},
		TotalPrice:      common.DecimalFromInt(8),
		Status:          orderdom.StatusPaid,
		CreatedAt:       created,
		CustomerName:    "Ana",
		ShippingAddress: "Jl. Mawar 1",
		PaymentMethod:   "COD",
	}

	a := FromOrder(o, created.Add(time.Hour))

	assert.Equal(t, "o-1", a.OrderID)
	assert.Equal(t, "2026-10-01T08:30:00Z", a.CreatedAt)
	assert.Equal(t, "8", a.TotalPrice.WireString())
	assert.Equal(t, o.Items, a.Items)
	assert.NoError(t, a.Validate())

	a.Items[0].ProductID = "changed"
	assert.Equal(t, "p-1", o.Items[0].ProductID, "archive must not alias order items")
}

func TestNormalizeAndValidate(t *testing.T) {
	a := ArchivedOrder{OrderID: " o-1 ", UserID: "u-1", Items: []orderdom.LineItem{}, CreatedAt: "2026-10-01T08:30:00"}
	a.Normalize()
	assert.Equal(t, "o-1", a.OrderID)
	assert.Equal(t, orderdom.NotAvailable, a.CustomerName)
	assert.Equal(t, orderdom.NotAvailable, a.ShippingAddress)
	assert.Equal(t, orderdom.NotAvailable, a.PaymentMethod)
	assert.NoError(t, a.Validate())

	assert.ErrorIs(t, ArchivedOrder{UserID: "u", Items: []orderdom.LineItem{}, CreatedAt: "x"}.Validate(), ErrInvalidOrderID)
	assert.ErrorIs(t, ArchivedOrder{OrderID: "o", UserID: "u", CreatedAt: "x"}.Validate(), ErrInvalidItems)
	assert.ErrorIs(t, ArchivedOrder{OrderID: "o", UserID: "u", Items: []orderdom.LineItem{}}.Validate(), ErrInvalidCreatedAt)
}
