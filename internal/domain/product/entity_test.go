package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louxer-crakers/Seleksi-lkscc-2027/internal/domain/common"
)

func TestNew(t *testing.T) {
	p, err := New(" p-1 ", " Mug ", "", common.MustDecimal("12.5"), "")
	require.NoError(t, err)
	assert.Equal(t, "p-1", p.ProductID)
	assert.Equal(t, "Mug", p.Name)
	assert.Equal(t, "", p.Description)

	_, err = New("p-1", "  ", "", common.Zero, "")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = New("p-1", "Mug", "", common.MustDecimal("-1"), "")
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = New("", "Mug", "", common.Zero, "")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestReplaceKeepsImageAndDropsOldDescription(t *testing.T) {
	p, err := New("p-1", "Mug", "ceramic", common.MustDecimal("12.5"), "https://img/1.png")
	require.NoError(t, err)

	require.NoError(t, p.Replace("Big Mug", "", common.DecimalFromInt(15)))
	assert.Equal(t, "Big Mug", p.Name)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, "15", p.Price.WireString())
	assert.Equal(t, "https://img/1.png", p.ImageURL)

	err = p.Replace("", "x", common.Zero)
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, "Big Mug", p.Name, "failed replace must not mutate")
}
