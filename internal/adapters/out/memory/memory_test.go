package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/cart"
	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
	orderdom "github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/order"
)

func TestCartRepositoryMem_SaveCAS(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepositoryMem()

	c, err := cartdom.NewCart("u1")
	require.NoError(t, err)
	require.NoError(t, c.Apply("p1", common.DecimalFromInt(1), time.Now()))

	require.NoError(t, repo.Save(ctx, c, common.IfMatch(0)))
	assert.Equal(t, int64(1), c.Version)

	// a second writer that read before the first save loses
	stale := &cartdom.Cart{UserID: "u1", Items: []cartdom.CartItem{}}
	assert.ErrorIs(t, repo.Save(ctx, stale, common.IfMatch(0)), cartdom.ErrConflict)

	got, err := repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Items, 1)

	// unguarded save always wins
	require.NoError(t, repo.Save(ctx, stale, nil))
	assert.Equal(t, int64(2), stale.Version)
}

func TestCartRepositoryMem_MissingCart(t *testing.T) {
	repo := NewCartRepositoryMem()
	c, err := repo.GetByUserID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, repo.DeleteByUserID(context.Background(), "nobody"))
}

func TestOrderRepositoryMem_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepositoryMem()

	_, err := repo.UpdateStatus(ctx, "missing", orderdom.StatusPaid, nil)
	assert.ErrorIs(t, err, orderdom.ErrNotFound)
	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, orderdom.ErrNotFound, "status update must not upsert")

	o, err := orderdom.New("o1", "u1", []orderdom.LineItem{}, orderdom.CustomerInfo{}, time.Now())
	require.NoError(t, err)
	_, err = repo.Create(ctx, o)
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, "o1", orderdom.StatusPaid, nil)
	require.NoError(t, err)
	assert.Equal(t, orderdom.StatusPaid, updated.Status)
	assert.Equal(t, o.CreatedAt, updated.CreatedAt)

	paid := orderdom.StatusPaid
	list, err := repo.List(ctx, orderdom.Filter{Status: &paid})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
