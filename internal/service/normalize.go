package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pass-bridge/internal/crypto"
	"github.com/MKhiriev/go-pass-bridge/models"
)

// fieldAliases lists alternative keys clients use for a category field.
var fieldAliases = map[string][]string{
	"username": {"loginUsername"},
}

// normalizeCredential turns a decoded pending item into a vault entry whose
// secrets are AES ciphertexts under privateKey.
//
// A plaintext holding a JSON object is read as a structured credential of
// its category; anything else is the password of a login-like entry.
func normalizeCredential(item models.PendingCredential, plaintext, privateKey string, cipher crypto.SymmetricCipher) (models.VaultEntry, error) {
	entry := models.VaultEntry{
		Title:    item.Title,
		Category: item.Category,
		Fields:   map[string]string{},
		Secrets:  map[string]string{},
	}
	if entry.Category == "" {
		entry.Category = models.CategoryLogin
	}

	obj, structured := parseStructured(plaintext)
	if !structured {
		sealed, err := cipher.Seal(models.SchemeAES, plaintext, privateKey)
		if err != nil {
			return models.VaultEntry{}, fmt.Errorf("error encrypting password: %w", err)
		}
		entry.Secrets["password"] = sealed
		return entry, nil
	}

	if raw, ok := obj["category"].(string); ok && raw != "" {
		entry.Category = models.ParseCategory(raw)
	}
	if entry.Title == "" {
		entry.Title = stringValue(obj["title"])
	}

	for field, secret := range entry.Category.Fields() {
		value := lookupField(obj, field)
		if value == "" {
			continue
		}
		if !secret {
			entry.Fields[field] = value
			continue
		}
		sealed, err := cipher.Seal(models.SchemeAES, value, privateKey)
		if err != nil {
			return models.VaultEntry{}, fmt.Errorf("error encrypting %s: %w", field, err)
		}
		entry.Secrets[field] = sealed
	}

	if notes := stringValue(obj["notes"]); notes != "" {
		entry.Fields["notes"] = notes
	}

	if entry.Category == models.CategoryOther {
		custom, err := sealCustomFields(obj["customFields"], privateKey, cipher)
		if err != nil {
			return models.VaultEntry{}, err
		}
		entry.CustomFields = custom
	}

	return entry, nil
}

func parseStructured(plaintext string) (map[string]any, bool) {
	trimmed := strings.TrimSpace(plaintext)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

func lookupField(obj map[string]any, field string) string {
	if value := stringValue(obj[field]); value != "" {
		return value
	}
	for _, alias := range fieldAliases[field] {
		if value := stringValue(obj[alias]); value != "" {
			return value
		}
	}
	return ""
}

func sealCustomFields(raw any, privateKey string, cipher crypto.SymmetricCipher) ([]models.CustomField, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, nil
	}

	fields := make([]models.CustomField, 0, len(list))
	for _, element := range list {
		obj, ok := element.(map[string]any)
		if !ok {
			continue
		}

		field := models.CustomField{
			Label: stringValue(obj["label"]),
			Value: stringValue(obj["value"]),
		}
		field.IsSecret, _ = obj["isSecret"].(bool)

		if field.IsSecret && field.Value != "" {
			sealed, err := cipher.Seal(models.SchemeAES, field.Value, privateKey)
			if err != nil {
				return nil, fmt.Errorf("error encrypting custom field %q: %w", field.Label, err)
			}
			field.Value = sealed
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// stringValue renders a decoded JSON scalar as text.
func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
