// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Category classifies a vault entry and decides which of its fields are
// secret.
type Category string

const (
	CategoryLogin    Category = "login"
	CategorySocial   Category = "social"
	CategoryCard     Category = "card"
	CategoryVoucher  Category = "voucher"
	CategoryGiftCard Category = "giftcard"
	CategoryAddress  Category = "address"
	CategoryOther    Category = "other"
)

// categoryFields lists the recognised fields per category. Fields marked
// true are secrets and are stored encrypted under the owner's private key.
var categoryFields = map[Category]map[string]bool{
	CategoryLogin: {
		"username": false,
		"password": true,
		"website":  false,
	},
	CategorySocial: {
		"username":   false,
		"password":   true,
		"platform":   false,
		"profileUrl": false,
	},
	CategoryCard: {
		"cardType":       false,
		"cardNumber":     true,
		"cardholderName": false,
		"expiryDate":     false,
		"cvv":            true,
	},
	CategoryVoucher: {
		"store":      false,
		"code":       true,
		"value":      false,
		"expiryDate": false,
	},
	CategoryGiftCard: {
		"store":      false,
		"cardNumber": true,
		"pin":        true,
		"balance":    false,
		"expiryDate": false,
	},
	CategoryAddress: {
		"fullName":      false,
		"streetAddress": false,
		"city":          false,
		"state":         false,
		"zipCode":       false,
		"country":       false,
		"phoneNumber":   false,
		"email":         false,
	},
	CategoryOther: {},
}

// ParseCategory normalises raw into a known category, defaulting to login.
func ParseCategory(raw string) Category {
	c := Category(raw)
	if _, ok := categoryFields[c]; ok {
		return c
	}
	return CategoryLogin
}

// Fields returns the recognised field names of the category with their
// secret flag.
func (c Category) Fields() map[string]bool {
	return categoryFields[c]
}

// IsSecretField reports whether field holds a secret in category c.
func (c Category) IsSecretField(field string) bool {
	return categoryFields[c][field]
}

// CustomField is a user-defined label/value pair of an "other" entry.
// Secret values are stored encrypted.
type CustomField struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	IsSecret bool   `json:"isSecret"`
}

// VaultEntry is one credential of a user's vault. Entries are unique per
// (UserID, Title, Category).
type VaultEntry struct {
	ID       string   `json:"id"`
	UserID   int64    `json:"userId"`
	Title    string   `json:"title"`
	Category Category `json:"category"`

	// Fields holds non-secret attributes in clear text.
	Fields map[string]string `json:"fields,omitempty"`

	// Secrets holds AES ciphertexts keyed by field name.
	Secrets map[string]string `json:"secrets,omitempty"`

	CustomFields []CustomField `json:"customFields,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Key returns the merge key of the entry.
func (v VaultEntry) Key() VaultKey {
	return VaultKey{Title: v.Title, Category: v.Category}
}

// VaultKey is the merge key of vault entries of one user.
type VaultKey struct {
	Title    string
	Category Category
}

// MergeFrom overwrites the fields, secrets and custom fields present in src
// and bumps UpdatedAt. CreatedAt and ID are preserved.
func (v *VaultEntry) MergeFrom(src VaultEntry, now time.Time) {
	if v.Fields == nil {
		v.Fields = make(map[string]string, len(src.Fields))
	}
	for k, val := range src.Fields {
		v.Fields[k] = val
	}

	if v.Secrets == nil {
		v.Secrets = make(map[string]string, len(src.Secrets))
	}
	for k, val := range src.Secrets {
		v.Secrets[k] = val
	}

	if len(src.CustomFields) > 0 {
		v.CustomFields = src.CustomFields
	}

	v.UpdatedAt = now
}
