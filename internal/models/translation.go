// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Translation maps a (code, language) key to a localized string. Several
// entries may share the same key; lookups use the oldest one.
type Translation struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	Value     string    `db:"value" json:"value"`
	Language  string    `db:"language" json:"language"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// TranslationInput is the payload for creating a translation entry.
type TranslationInput struct {
	Code     string `json:"code" validate:"required"`
	Value    string `json:"value"`
	Language string `json:"language" validate:"required"`
}
