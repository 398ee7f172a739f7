package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
)

func items(pairs ...string) []CartItem {
	out := make([]CartItem, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, CartItem{ProductID: pairs[i], Quantity: common.MustDecimal(pairs[i+1])})
	}
	return out
}

func ids(xs []CartItem) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, x.ProductID)
	}
	return out
}

func TestMergeZeroRemovesOnlyThatItem(t *testing.T) {
	in := items("a", "1", "b", "2", "c", "3")

	got := Merge(in, "b", common.Zero)

	assert.Equal(t, []string{"a", "c"}, ids(got))
	assert.Equal(t, "1", got[0].Quantity.WireString())
	assert.Equal(t, "3", got[1].Quantity.WireString())
	assert.Len(t, in, 3, "input must not be modified")
}

func TestMergeNegativeBehavesLikeZero(t *testing.T) {
	got := Merge(items("a", "1", "b", "2"), "a", common.MustDecimal("-4"))
	assert.Equal(t, []string{"b"}, ids(got))
}

func TestMergeAppendsNewItem(t *testing.T) {
	in := items("a", "1")

	got := Merge(in, "z", common.DecimalFromInt(5))

	require.Len(t, got, len(in)+1)
	last := got[len(got)-1]
	assert.Equal(t, "z", last.ProductID)
	assert.Equal(t, "5", last.Quantity.WireString())
}

func TestMergeReplacesInPlace(t *testing.T) {
	got := Merge(items("a", "1", "b", "2", "c", "3"), "b", common.DecimalFromInt(7))
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
	assert.Equal(t, "7", got[1].Quantity.WireString())
}

func TestMergeIsLastWriteWins(t *testing.T) {
	got := Merge(nil, "a", common.DecimalFromInt(2))
	got = Merge(got, "a", common.DecimalFromInt(3))

	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].Quantity.WireString())
}

func TestMergeDeleteOfMissingIsNoop(t *testing.T) {
	in := items("a", "1")
	got := Merge(in, "zzz", common.Zero)
	assert.Equal(t, in, got)

	assert.Empty(t, Merge(nil, "a", common.Zero))
}

func TestMergeAcceptsFractionalQuantity(t *testing.T) {
	got := Merge(nil, "a", common.MustDecimal("0.5"))
	require.Len(t, got, 1)
	assert.Equal(t, "0.5", got[0].Quantity.WireString())
}

func TestCartApply(t *testing.T) {
	c, err := NewCart(" u-1 ")
	require.NoError(t, err)
	assert.Equal(t, "u-1", c.UserID)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, c.Apply("p-1", common.DecimalFromInt(2), now))
	assert.Equal(t, now, c.UpdatedAt)
	assert.Len(t, c.Items, 1)

	assert.ErrorIs(t, c.Apply(" ", common.DecimalFromInt(1), now), ErrInvalidProductID)

	_, err = NewCart("")
	assert.ErrorIs(t, err, ErrInvalidCart)
}
