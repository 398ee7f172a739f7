package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
)

// fakeRow feeds fixed values into Scan like *sql.Row would.
type fakeRow []any

func (f fakeRow) Scan(dest ...any) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f[i].(string)
		case *[]byte:
			*p = f[i].([]byte)
		case *time.Time:
			*p = f[i].(time.Time)
		}
	}
	return nil
}

func TestScanOrder(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	row := fakeRow{
		"o1", "u1",
		[]byte(`[{"productId":"A","price":10.5,"quantity":2}]`),
		"21.00", "PAID", created,
		"Budi", "Jl. Merdeka 1", "transfer",
	}

	o, err := scanOrder(row)
	require.NoError(t, err)
	assert.Equal(t, "o1", o.OrderID)
	assert.Equal(t, orderdom.StatusPaid, o.Status)
	assert.Equal(t, time.UTC, o.CreatedAt.Location())
	require.Len(t, o.Items, 1)
	assert.True(t, o.Items[0].Price.Equal(common.MustDecimal("10.5")))
	assert.Equal(t, "21", o.TotalPrice.WireString())
}

func TestScanProduct(t *testing.T) {
	p, err := scanProduct(fakeRow{"p1", "Kopi", "", "15000.00", ""})
	require.NoError(t, err)
	assert.Equal(t, "15000", p.Price.WireString())

	_, err = scanProduct(fakeRow{"p1", "Kopi", "", "NaN?", ""})
	assert.Error(t, err)
}

func TestMarshalLineItems(t *testing.T) {
	s, err := marshalLineItems(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", s)

	s, err = marshalLineItems([]orderdom.LineItem{{ProductID: "A", Price: common.MustDecimal("24.00"), Quantity: common.DecimalFromInt(1)}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"productId":"A","price":24,"quantity":1}]`, s)
}
