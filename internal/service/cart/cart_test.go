package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshu-atelier/storefront/internal/kvstore"
	"github.com/dshu-atelier/storefront/internal/models"
)

var (
	ring = models.Product{
		ID:       "1",
		Name:     "Кольцо «Лунный свет»",
		Price:    4900,
		Category: models.CategoryRings,
	}
	earrings = models.Product{
		ID:       "3",
		Name:     "Серьги «Капли»",
		Price:    3500,
		Category: models.CategoryEarrings,
	}
)

func newTestService(t *testing.T) (*Service, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	return NewService(store), store
}

func TestAddItem_MergesSameKey(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, ring, 1, "17"))
	require.NoError(t, svc.AddItem(ctx, ring, 2, "17"))
	require.NoError(t, svc.AddItem(ctx, ring, 3, "17"))

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 6, items[0].Quantity)
	assert.Equal(t, "17", items[0].SelectedSize)
}

func TestAddItem_SizeVariantsAreSeparateLines(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, ring, 1, "16"))
	require.NoError(t, svc.AddItem(ctx, ring, 1, "17"))
	require.NoError(t, svc.AddItem(ctx, ring, 1, ""))

	require.Len(t, svc.Items(), 3)
	assert.Equal(t, 3, svc.ItemCount())
}

func TestAddItem_DefaultsQuantityToOne(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	require.NoError(t, svc.AddItem(context.Background(), ring, 0, ""))

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, earrings, 1, ""))
	require.NoError(t, svc.AddItem(ctx, ring, 1, "16"))
	require.NoError(t, svc.AddItem(ctx, earrings, 2, ""))

	items := svc.Items()
	require.Len(t, items, 2)
	assert.Equal(t, earrings.ID, items[0].Product.ID)
	assert.Equal(t, ring.ID, items[1].Product.ID)
}

func TestRemoveItem_DropsAllSizeVariants(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, ring, 1, "16"))
	require.NoError(t, svc.AddItem(ctx, ring, 1, "17"))
	require.NoError(t, svc.AddItem(ctx, earrings, 1, ""))

	require.NoError(t, svc.RemoveItem(ctx, ring.ID))

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, earrings.ID, items[0].Product.ID)
}

func TestUpdateQuantity(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, ring, 1, ""))
	require.NoError(t, svc.UpdateQuantity(ctx, ring.ID, 5))

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantity_NonPositiveRemoves(t *testing.T) {
	t.Parallel()

	for _, q := range []int{0, -1, -10} {
		q := q
		t.Run(map[bool]string{true: "zero", false: "negative"}[q == 0], func(t *testing.T) {
			svc, _ := newTestService(t)
			ctx := context.Background()

			require.NoError(t, svc.AddItem(ctx, ring, 3, ""))
			require.NoError(t, svc.UpdateQuantity(ctx, ring.ID, q))

			assert.Empty(t, svc.Items())
		})
	}
}

func TestTotalAndItemCount(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.Equal(t, 0, svc.Total())
	assert.Equal(t, 0, svc.ItemCount())

	require.NoError(t, svc.AddItem(ctx, ring, 2, ""))
	require.NoError(t, svc.AddItem(ctx, earrings, 3, ""))

	assert.Equal(t, ring.Price*2+earrings.Price*3, svc.Total())
	assert.Equal(t, 5, svc.ItemCount())
}

func TestClear_RemovesPersistedRecord(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, ring, 1, ""))
	require.NoError(t, svc.Clear(ctx))

	assert.Empty(t, svc.Items())
	_, err := store.Get(ctx, kvstore.CartItemsKey)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestLoad_RestoresSnapshot(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, ring, 2, "17"))
	require.NoError(t, svc.AddItem(ctx, earrings, 1, ""))

	fresh := NewService(store)
	fresh.Load(ctx)

	assert.Equal(t, svc.Items(), fresh.Items())
	assert.Equal(t, svc.Total(), fresh.Total())
}

func TestLoad_AfterClearYieldsEmptyCart(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, ring, 1, ""))
	require.NoError(t, svc.Clear(ctx))

	fresh := NewService(store)
	fresh.Load(ctx)

	assert.Empty(t, fresh.Items())
}

func TestLoad_DiscardsCorruptRecord(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, kvstore.CartItemsKey, []byte("[broken")))

	svc.Load(ctx)

	assert.Empty(t, svc.Items())
	_, err := store.Get(ctx, kvstore.CartItemsKey)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestToggle(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t)

	assert.False(t, svc.IsOpen())
	assert.True(t, svc.Toggle())
	assert.True(t, svc.IsOpen())
	assert.False(t, svc.Toggle())

	// visibility is transient, nothing is written
	_, err := store.Get(context.Background(), kvstore.CartItemsKey)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestEveryMutationPersistsSnapshot(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, ring, 2, ""))

	var snapshot []models.CartItem
	require.NoError(t, kvstore.GetJSON(ctx, store, kvstore.CartItemsKey, &snapshot))
	assert.Equal(t, svc.Items(), snapshot)

	require.NoError(t, svc.UpdateQuantity(ctx, ring.ID, 7))
	require.NoError(t, kvstore.GetJSON(ctx, store, kvstore.CartItemsKey, &snapshot))
	assert.Equal(t, svc.Items(), snapshot)

	require.NoError(t, svc.RemoveItem(ctx, ring.ID))
	require.NoError(t, kvstore.GetJSON(ctx, store, kvstore.CartItemsKey, &snapshot))
	assert.Empty(t, snapshot)
}
