// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a row of the categories table. Parent/child links live in the
// category_children join table and are not part of the row.
type Category struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// CategoryView is a category with its direct children loaded. Children are
// not expanded further.
type CategoryView struct {
	Category
	Children []Category `json:"children"`
}

// CategorySummary is the short form embedded in product views.
type CategorySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CategoryInput is the payload for creating a category.
type CategoryInput struct {
	Name        string      `json:"name" validate:"required"`
	ChildrenIDs []uuid.UUID `json:"childrenIds"`
}

// CategoryPatch is a partial category update. A missing or null
// childrenIds leaves the children alone; an empty list clears them.
type CategoryPatch struct {
	Name        Optional[string]      `json:"name"`
	ChildrenIDs Optional[[]uuid.UUID] `json:"childrenIds"`
}

// ReplacesChildren reports whether the patch carries a new children set.
func (p CategoryPatch) ReplacesChildren() bool {
	return p.ChildrenIDs.Present()
}
