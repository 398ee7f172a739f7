package firestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
)

func TestAsDecimal(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"10.50", "10.5"},
		{int64(3), "3"},
		{float64(2.5), "2.5"},
		{nil, "0"},
		{"", "0"},
	}
	for _, tc := range cases {
		d, err := asDecimal(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, d.WireString())
	}

	_, err := asDecimal("abc")
	assert.ErrorIs(t, err, common.ErrInvalidDecimal)
	_, err = asDecimal(true)
	assert.ErrorIs(t, err, common.ErrInvalidDecimal)
}

func TestLineItemsRoundTrip(t *testing.T) {
	in := []orderdom.LineItem{
		{ProductID: "A", Name: "Kopi", Price: common.MustDecimal("10.50"), Quantity: common.DecimalFromInt(2)},
		{ProductID: "B", Price: common.DecimalFromInt(3), Quantity: common.MustDecimal("0.5")},
	}

	docs := lineItemsToDoc(in)
	raw := make([]any, 0, len(docs))
	for _, m := range docs {
		raw = append(raw, m)
	}
	assert.Equal(t, "10.5", docs[0]["price"])
	_, hasName := docs[1]["name"]
	assert.False(t, hasName)

	out, err := decodeLineItems(raw)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Kopi", out[0].Name)
	assert.True(t, out[0].Price.Equal(in[0].Price))
	assert.True(t, out[1].Quantity.Equal(in[1].Quantity))
}

func TestAsTime(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("WIB", 7*3600))
	got, ok := asTime(now)
	assert.True(t, ok)
	assert.Equal(t, time.UTC, got.Location())

	_, ok = asTime("2024-01-02")
	assert.False(t, ok)
}
