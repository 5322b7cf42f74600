package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webshop/internal/models"
)

func TestBasketStoreCreateEmpty(t *testing.T) {
	db := testDB(t)
	s := NewBasketStore(db)
	ctx := context.Background()

	b, err := s.Create(ctx, nil)
	require.NoError(t, err)

	got, lines, err := s.Find(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Empty(t, lines)
}

func TestBasketStoreCreateWithItems(t *testing.T) {
	db := testDB(t)
	s := NewBasketStore(db)
	ctx := context.Background()

	p1 := mustProduct(t, db, models.Product{Name: "P1", Price: 999})
	p2 := mustProduct(t, db, models.Product{Name: "P2", Price: 50})

	b, err := s.Create(ctx, []models.BasketItemInput{
		{ProductID: p1.ID, Price: ptr(100), Amount: ptr(2)},
		{ProductID: p2.ID},
		{ProductID: p1.ID, Price: ptr(300), Amount: ptr(3)},
	})
	require.NoError(t, err)

	_, lines, err := s.Find(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2, "repeated product collapses into one item")

	assert.Equal(t, p1.ID, *lines[0].Item.ProductID)
	assert.Equal(t, 100, lines[0].Item.Price, "seed price kept verbatim, first one wins")
	assert.Equal(t, 5, lines[0].Item.Amount)

	assert.Equal(t, p2.ID, *lines[1].Item.ProductID)
	assert.Equal(t, 0, lines[1].Item.Price, "seed price defaults to zero")
	assert.Equal(t, 1, lines[1].Item.Amount)
}

func TestBasketStoreCreateUnknownProduct(t *testing.T) {
	db := testDB(t)

	_, err := NewBasketStore(db).Create(context.Background(), []models.BasketItemInput{{ProductID: uuid.New()}})
	assert.True(t, errors.Is(err, ErrUnknownProduct))

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM shopping_baskets`))
	assert.Zero(t, count, "failed creation leaves no basket behind")
}

func TestBasketStoreFindJoinsProductAndCategory(t *testing.T) {
	db := testDB(t)
	s := NewBasketStore(db)
	ctx := context.Background()

	cat := mustCategory(t, db, "Keuken")
	p := mustProduct(t, db, models.Product{
		Name: "P1", Description: ptr("P1.desc"), ImageURL: ptr("https://img/p1.png"),
		CategoryID: &cat.ID, Price: 100,
	})
	b, err := s.Create(ctx, []models.BasketItemInput{{ProductID: p.ID, Price: ptr(100)}})
	require.NoError(t, err)

	_, lines, err := s.Find(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.NotNil(t, lines[0].Product)
	assert.Equal(t, "P1", lines[0].Product.Name)
	assert.Equal(t, "https://img/p1.png", *lines[0].Product.ImageURL)
	require.NotNil(t, lines[0].Category)
	assert.Equal(t, "Keuken", lines[0].Category.Name)

	_, _, err = s.Find(ctx, uuid.New())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBasketStoreAddItem(t *testing.T) {
	db := testDB(t)
	s := NewBasketStore(db)
	products := NewProductStore(db)
	ctx := context.Background()

	p := mustProduct(t, db, models.Product{Name: "P1", Price: 100})
	b, err := s.Create(ctx, nil)
	require.NoError(t, err)

	inserted, err := s.AddItem(ctx, b.ID, p.ID)
	require.NoError(t, err)
	assert.True(t, inserted)

	_, err = products.Update(ctx, p.ID, models.ProductPatch{Price: models.Some(150)})
	require.NoError(t, err)

	inserted, err = s.AddItem(ctx, b.ID, p.ID)
	require.NoError(t, err)
	assert.False(t, inserted)

	_, lines, err := s.Find(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Item.Amount)
	assert.Equal(t, 100, lines[0].Item.Price, "snapshot price does not follow the product")
	assert.Equal(t, 150, lines[0].Product.Price)
}

func TestBasketStoreAddItemNewProductSnapshotsCurrentPrice(t *testing.T) {
	db := testDB(t)
	s := NewBasketStore(db)
	ctx := context.Background()

	p := mustProduct(t, db, models.Product{Name: "P1", Price: 100})
	_, err := NewProductStore(db).Update(ctx, p.ID, models.ProductPatch{Price: models.Some(150)})
	require.NoError(t, err)

	b, err := s.Create(ctx, nil)
	require.NoError(t, err)
	_, err = s.AddItem(ctx, b.ID, p.ID)
	require.NoError(t, err)

	_, lines, err := s.Find(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 150, lines[0].Item.Price)
	assert.Equal(t, 1, lines[0].Item.Amount)
}

func TestBasketStoreAddItemErrors(t *testing.T) {
	db := testDB(t)
	s := NewBasketStore(db)
	ctx := context.Background()

	p := mustProduct(t, db, models.Product{Name: "P1"})
	_, err := s.AddItem(ctx, uuid.New(), p.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	b, err := s.Create(ctx, nil)
	require.NoError(t, err)
	_, err = s.AddItem(ctx, b.ID, uuid.New())
	assert.True(t, errors.Is(err, ErrUnknownProduct))
}

func TestBasketStoreAddItemConcurrent(t *testing.T) {
	db := testDB(t)
	s := NewBasketStore(db)
	ctx := context.Background()

	p := mustProduct(t, db, models.Product{Name: "P1", Price: 10})
	b, err := s.Create(ctx, nil)
	require.NoError(t, err)

	const n = 8
	errs := make(chan error, n)
	for range n {
		go func() {
			_, err := s.AddItem(ctx, b.ID, p.ID)
			errs <- err
		}()
	}
	for range n {
		require.NoError(t, <-errs)
	}

	_, lines, err := s.Find(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, n, lines[0].Item.Amount)
}

func TestBasketStoreRemoveItem(t *testing.T) {
	db := testDB(t)
	s := NewBasketStore(db)
	ctx := context.Background()

	p1 := mustProduct(t, db, models.Product{Name: "P1"})
	p2 := mustProduct(t, db, models.Product{Name: "P2"})
	b, err := s.Create(ctx, []models.BasketItemInput{{ProductID: p1.ID}, {ProductID: p2.ID}})
	require.NoError(t, err)

	_, lines, err := s.Find(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	require.NoError(t, s.RemoveItem(ctx, lines[0].Item.ID))
	require.NoError(t, s.RemoveItem(ctx, lines[0].Item.ID), "second remove is a no-op")
	require.NoError(t, s.RemoveItem(ctx, uuid.New()))

	_, lines, err = s.Find(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, p2.ID, *lines[0].Item.ProductID)
}

func TestBasketStoreDeletedProductKeepsSnapshot(t *testing.T) {
	db := testDB(t)
	s := NewBasketStore(db)
	ctx := context.Background()

	p := mustProduct(t, db, models.Product{Name: "P1", Price: 100})
	b, err := s.Create(ctx, []models.BasketItemInput{{ProductID: p.ID, Price: ptr(100)}})
	require.NoError(t, err)

	require.NoError(t, NewProductStore(db).Delete(ctx, p.ID))

	_, lines, err := s.Find(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Nil(t, lines[0].Item.ProductID)
	assert.Nil(t, lines[0].Product)
	assert.Equal(t, 100, lines[0].Item.Price)
}
