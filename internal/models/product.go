// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a row of the products table. Name and Description hold
// translation codes, not display text; they must only ever be written from
// client input, never from a ProductView.
type Product struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	Brand       *string    `db:"brand"`
	Code        *string    `db:"code"`
	Stock       int        `db:"stock"`
	ImageURL    *string    `db:"image_url"`
	CategoryID  *uuid.UUID `db:"category_id"`
	Price       int        `db:"price"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// ProductText carries resolved display strings for a product. An empty
// field means no translation was found and the stored code is shown.
type ProductText struct {
	Name        string
	Description string
}

// ProductView is the display form of a product, with translated text and
// its category summary.
type ProductView struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Brand       *string          `json:"brand"`
	Code        *string          `json:"code"`
	Stock       int              `json:"stock"`
	ImageURL    *string          `json:"imageUrl"`
	CategoryID  *uuid.UUID       `json:"categoryId"`
	Category    *CategorySummary `json:"category"`
	Price       int              `json:"price"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// View builds a display view of the row. The row itself is left untouched.
func (p Product) View(text ProductText, category *CategorySummary) ProductView {
	v := ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		Code:        p.Code,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
		Category:    category,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if text.Name != "" {
		v.Name = text.Name
	}
	if p.Description != nil && text.Description != "" {
		d := text.Description
		v.Description = &d
	}
	return v
}

// ProductInput is the payload for creating a product. Stock and price
// default to zero when omitted or null.
type ProductInput struct {
	Name        string     `json:"name" validate:"required"`
	Description *string    `json:"description"`
	Brand       *string    `json:"brand"`
	Code        *string    `json:"code"`
	Stock       *int       `json:"stock" validate:"omitempty,gte=0"`
	ImageURL    *string    `json:"imageUrl"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	Price       *int       `json:"price" validate:"omitempty,gte=0"`
}

// Row converts the input to a product row with defaults applied.
func (in ProductInput) Row() Product {
	p := Product{
		Name:        in.Name,
		Description: in.Description,
		Brand:       in.Brand,
		Code:        in.Code,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	return p
}

// ProductPatch is a partial product update. Absent keys are left as they
// are; an explicit null clears a nullable column.
type ProductPatch struct {
	Name        Optional[string]    `json:"name"`
	Description Optional[string]    `json:"description"`
	Brand       Optional[string]    `json:"brand"`
	Code        Optional[string]    `json:"code"`
	Stock       Optional[int]       `json:"stock"`
	ImageURL    Optional[string]    `json:"imageUrl"`
	CategoryID  Optional[uuid.UUID] `json:"categoryId"`
	Price       Optional[int]       `json:"price"`
}

// Apply returns a copy of the stored row with the patch merged in. It must
// be given the raw row, never a translated view.
func (p ProductPatch) Apply(row Product) Product {
	if p.Name.Present() {
		row.Name = *p.Name.Value
	}
	if p.Description.Set {
		row.Description = p.Description.Value
	}
	if p.Brand.Set {
		row.Brand = p.Brand.Value
	}
	if p.Code.Set {
		row.Code = p.Code.Value
	}
	if p.Stock.Present() {
		row.Stock = *p.Stock.Value
	}
	if p.ImageURL.Set {
		row.ImageURL = p.ImageURL.Value
	}
	if p.CategoryID.Set {
		row.CategoryID = p.CategoryID.Value
	}
	if p.Price.Present() {
		row.Price = *p.Price.Value
	}
	return row
}
