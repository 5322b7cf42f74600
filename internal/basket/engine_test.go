package basket

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"webshop/internal/mocks"
	"webshop/internal/models"
	"webshop/internal/store"
)

func ptr[T any](v T) *T { return &v }

func line(price, amount int, p *models.Product) models.BasketLine {
	l := models.BasketLine{Item: models.BasketItem{ID: uuid.New(), Price: price, Amount: amount}}
	if p != nil {
		l.Item.ProductID = &p.ID
		l.Product = p
	}
	return l
}

func TestGetAssemblesBasket(t *testing.T) {
	ctx := context.Background()
	st := new(mocks.BasketStore)
	names := new(mocks.Overlay)

	b := &models.Basket{ID: uuid.New()}
	p1 := &models.Product{ID: uuid.New(), Name: "P1", Description: ptr("P1.desc"), ImageURL: ptr("img1"), Price: 120}
	p2 := &models.Product{ID: uuid.New(), Name: "P2", Price: 50}
	lines := []models.BasketLine{line(100, 2, p1), line(50, 1, p2), line(7, 1, nil)}

	st.On("Find", ctx, b.ID).Return(b, lines, nil)
	names.On("ResolveMany", ctx, []string{"P1", "P2"}).
		Return(map[string]string{"P1": "Widget", "P2": "P2"}, nil).Once()

	got, err := NewEngine(st, names).Get(ctx, b.ID)

	require.NoError(t, err)
	require.Len(t, got.Items, 3)

	assert.Equal(t, "Widget", *got.Items[0].Name)
	assert.Equal(t, "img1", *got.Items[0].ImageURL)
	assert.Equal(t, 100, got.Items[0].Price)
	assert.Equal(t, "P1.desc", *got.Items[0].Product.Description)
	assert.Equal(t, "P2", *got.Items[1].Name)
	assert.Nil(t, got.Items[2].Name)

	assert.InDelta(t, 257.0, got.TotalPriceInclusive, 1e-9)
	assert.InDelta(t, 212.40, got.TotalPriceExclusive, 1e-9)
	assert.InDelta(t, 44.60, got.Tax, 1e-9)

	assert.Equal(t, "P1", p1.Name, "stored product must not be renamed")
	names.AssertExpectations(t)
}

func TestGetEmptyBasket(t *testing.T) {
	ctx := context.Background()
	st := new(mocks.BasketStore)
	names := new(mocks.Overlay)

	b := &models.Basket{ID: uuid.New()}
	st.On("Find", ctx, b.ID).Return(b, []models.BasketLine{}, nil)
	names.On("ResolveMany", ctx, []string{}).Return(map[string]string{}, nil)

	got, err := NewEngine(st, names).Get(ctx, b.ID)

	require.NoError(t, err)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
	assert.Zero(t, got.TotalPriceInclusive)
	assert.Zero(t, got.TotalPriceExclusive)
	assert.Zero(t, got.Tax)
}

func TestGetNotFound(t *testing.T) {
	ctx := context.Background()
	st := new(mocks.BasketStore)
	id := uuid.New()
	st.On("Find", ctx, id).Return(nil, nil, store.ErrNotFound)

	_, err := NewEngine(st, new(mocks.Overlay)).Get(ctx, id)

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetNameResolutionError(t *testing.T) {
	ctx := context.Background()
	st := new(mocks.BasketStore)
	names := new(mocks.Overlay)

	b := &models.Basket{ID: uuid.New()}
	p := &models.Product{ID: uuid.New(), Name: "P1"}
	st.On("Find", ctx, b.ID).Return(b, []models.BasketLine{line(1, 1, p)}, nil)
	names.On("ResolveMany", ctx, []string{"P1"}).Return(nil, errors.New("db down"))

	_, err := NewEngine(st, names).Get(ctx, b.ID)

	assert.Error(t, err)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	st := new(mocks.BasketStore)
	names := new(mocks.Overlay)

	b := &models.Basket{ID: uuid.New()}
	items := []models.BasketItemInput{{ProductID: uuid.New(), Price: ptr(250)}}
	st.On("Create", ctx, items).Return(b, nil)
	st.On("Find", ctx, b.ID).Return(b, []models.BasketLine{}, nil)
	names.On("ResolveMany", ctx, mock.Anything).Return(map[string]string{}, nil)

	got, err := NewEngine(st, names).Create(ctx, items)

	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	st.AssertExpectations(t)
}

func TestCreateUnknownProduct(t *testing.T) {
	ctx := context.Background()
	st := new(mocks.BasketStore)
	st.On("Create", ctx, mock.Anything).Return(nil, store.ErrUnknownProduct)

	_, err := NewEngine(st, new(mocks.Overlay)).Create(ctx, []models.BasketItemInput{{ProductID: uuid.New()}})

	assert.ErrorIs(t, err, store.ErrUnknownProduct)
	st.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	st := new(mocks.BasketStore)
	names := new(mocks.Overlay)

	b := &models.Basket{ID: uuid.New()}
	p := &models.Product{ID: uuid.New(), Name: "P1", Price: 100}
	st.On("AddItem", ctx, b.ID, p.ID).Return(false, nil)
	st.On("Find", ctx, b.ID).Return(b, []models.BasketLine{line(100, 2, p)}, nil)
	names.On("ResolveMany", ctx, []string{"P1"}).Return(map[string]string{"P1": "Widget"}, nil)

	got, err := NewEngine(st, names).AddItem(ctx, b.ID, p.ID)

	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Amount)
	assert.Equal(t, "Widget", *got.Items[0].Name)
}

func TestAddItemErrors(t *testing.T) {
	ctx := context.Background()

	for _, want := range []error{store.ErrNotFound, store.ErrUnknownProduct} {
		t.Run(want.Error(), func(t *testing.T) {
			st := new(mocks.BasketStore)
			st.On("AddItem", ctx, mock.Anything, mock.Anything).Return(false, want)

			_, err := NewEngine(st, new(mocks.Overlay)).AddItem(ctx, uuid.New(), uuid.New())

			assert.ErrorIs(t, err, want)
			st.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
		})
	}
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	st := new(mocks.BasketStore)
	id := uuid.New()
	st.On("RemoveItem", ctx, id).Return(nil).Twice()

	e := NewEngine(st, new(mocks.Overlay))
	require.NoError(t, e.RemoveItem(ctx, id))
	require.NoError(t, e.RemoveItem(ctx, id))

	st.AssertExpectations(t)
}
