// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// vatFactor is the inclusive-to-exclusive divisor (21% VAT).
var vatFactor = decimal.RequireFromString("1.21")

// Basket is a row of the shopping_baskets table.
type Basket struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BasketItem is a row of the basket_items table. Price is the unit price
// captured when the product was first added; it does not follow later
// product price changes. ProductID is nil once the product is deleted.
type BasketItem struct {
	ID        uuid.UUID  `db:"id"`
	BasketID  uuid.UUID  `db:"basket_id"`
	ProductID *uuid.UUID `db:"product_id"`
	Price     int        `db:"price"`
	Amount    int        `db:"amount"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// BasketLine is an item joined with its product and the product's category,
// as loaded by the basket read path.
type BasketLine struct {
	Item     BasketItem
	Product  *Product
	Category *CategorySummary
}

// BasketItemView is the display form of a basket item. Name and ImageURL
// are read through from the product.
type BasketItemView struct {
	ID        uuid.UUID    `json:"id"`
	ProductID *uuid.UUID   `json:"productId"`
	Amount    int          `json:"amount"`
	Price     int          `json:"price"`
	Name      *string      `json:"name"`
	ImageURL  *string      `json:"imageUrl"`
	Product   *ProductView `json:"product,omitempty"`
}

// BasketView is the display form of a basket with derived totals.
type BasketView struct {
	ID                  uuid.UUID        `json:"id"`
	Items               []BasketItemView `json:"items"`
	TotalPriceExclusive float64          `json:"totalPriceExclusive"`
	TotalPriceInclusive float64          `json:"totalPriceInclusive"`
	Tax                 float64          `json:"tax"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// Totals holds the derived money fields of a basket, in minor units.
type Totals struct {
	Inclusive decimal.Decimal
	Exclusive decimal.Decimal
	Tax       decimal.Decimal
}

// ComputeTotals sums price × amount over the items. The exclusive amount is
// rounded to two decimals and tax is the remainder, so the two always add
// up to the inclusive total.
func ComputeTotals(items []BasketItemView) Totals {
	inclusive := decimal.Zero
	for _, it := range items {
		inclusive = inclusive.Add(decimal.NewFromInt(int64(it.Price)).Mul(decimal.NewFromInt(int64(it.Amount))))
	}
	exclusive := inclusive.DivRound(vatFactor, 2)
	return Totals{
		Inclusive: inclusive,
		Exclusive: exclusive,
		Tax:       inclusive.Sub(exclusive),
	}
}

// NewBasketView assembles a basket view and fills in its totals.
func NewBasketView(b Basket, items []BasketItemView) BasketView {
	if items == nil {
		items = []BasketItemView{}
	}
	t := ComputeTotals(items)
	return BasketView{
		ID:                  b.ID,
		Items:               items,
		TotalPriceInclusive: t.Inclusive.InexactFloat64(),
		TotalPriceExclusive: t.Exclusive.InexactFloat64(),
		Tax:                 t.Tax.InexactFloat64(),
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

// ItemView builds the display form of a basket line. name is the resolved
// product name; empty falls back to the product's stored code. Only the
// name is translated at this level.
func (l BasketLine) ItemView(name string) BasketItemView {
	v := BasketItemView{
		ID:        l.Item.ID,
		ProductID: l.Item.ProductID,
		Amount:    l.Item.Amount,
		Price:     l.Item.Price,
	}
	if l.Product == nil {
		return v
	}
	pv := l.Product.View(ProductText{Name: name}, l.Category)
	v.Name = &pv.Name
	v.ImageURL = pv.ImageURL
	v.Product = &pv
	return v
}

// BasketItemInput seeds an item at basket creation. Price and amount are
// taken as given; defaults are 0 and 1.
type BasketItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Price     *int      `json:"price" validate:"omitempty,gte=0"`
	Amount    *int      `json:"amount" validate:"omitempty,gte=1"`
}

// PriceOrDefault returns the seeded price, or 0.
func (in BasketItemInput) PriceOrDefault() int {
	if in.Price == nil {
		return 0
	}
	return *in.Price
}

// AmountOrDefault returns the seeded amount, or 1.
func (in BasketItemInput) AmountOrDefault() int {
	if in.Amount == nil {
		return 1
	}
	return *in.Amount
}

// BasketInput is the payload for creating a basket.
type BasketInput struct {
	Items []BasketItemInput `json:"items" validate:"dive"`
}

// AddItemInput is the payload for adding a product to a basket.
type AddItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
}
