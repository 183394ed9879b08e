// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-bridge/internal/crypto"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
	"github.com/MKhiriev/go-pass-bridge/internal/utils"
	"github.com/MKhiriev/go-pass-bridge/models"
)

// reconciliationEngine is the concrete implementation of ReconciliationEngine.
//
// A run works on a snapshot of the queue: items appended while it is running
// are neither migrated nor removed. The vault write always happens before the
// queue is touched, so a failed run can be replayed; replays converge through
// the (title, category) merge key.
type reconciliationEngine struct {
	pendingRepository store.PendingCredentialRepository
	vaultRepository   store.VaultRepository

	cipher crypto.SymmetricCipher
	policy models.UndecryptablePolicy

	now   func() time.Time
	newID func() string

	logger *logger.Logger
}

// NewReconciliationEngine constructs a ReconciliationEngine applying policy
// to items that cannot be decoded under any session secret.
func NewReconciliationEngine(
	pendingRepository store.PendingCredentialRepository,
	vaultRepository store.VaultRepository,
	cipher crypto.SymmetricCipher,
	policy models.UndecryptablePolicy,
	logger *logger.Logger,
) ReconciliationEngine {
	return &reconciliationEngine{
		pendingRepository: pendingRepository,
		vaultRepository:   vaultRepository,
		cipher:            cipher,
		policy:            policy,
		now:               time.Now,
		newID:             utils.NewUUIDGenerator().Generate,
		logger:            logger,
	}
}

func (e *reconciliationEngine) Reconcile(ctx context.Context, sessionID string, user models.User, privateKey string, keys models.SessionKeys) (models.BatchReport, error) {
	log := logger.FromContext(ctx).With().
		Str("session_id", sessionID).
		Int64("user_id", user.UserID).
		Logger()

	report := models.BatchReport{SessionID: sessionID, Items: []models.ItemResult{}}

	if privateKey == "" {
		return report, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoKey)
	}

	snapshot, err := e.pendingRepository.ListPending(ctx, sessionID)
	if err != nil {
		log.Err(err).Str("func", "*reconciliationEngine.Reconcile").Msg("error listing pending items")
		return report, fmt.Errorf("%w: %w", ErrReconciliationFailed, err)
	}
	if len(snapshot) == 0 {
		return report, nil
	}

	entries, err := e.vaultRepository.ListEntries(ctx, user.UserID)
	if err != nil {
		log.Err(err).Str("func", "*reconciliationEngine.Reconcile").Msg("error loading vault")
		return report, fmt.Errorf("%w: %w", ErrReconciliationFailed, err)
	}

	vault := newVaultIndex(entries)
	now := e.now().UTC()

	for _, item := range snapshot {
		if item.Status == models.PendingStatusQuarantined {
			continue
		}

		result := models.ItemResult{ID: item.ID, Title: item.Title, Category: item.Category}

		plaintext, decodeErr := e.decode(item, keys)
		fallback := false
		if decodeErr != nil {
			log.Warn().Err(decodeErr).
				Str("item_id", item.ID).
				Str("policy", string(e.policy)).
				Msg("pending item could not be decoded")

			switch e.policy {
			case models.PolicyDrop:
				result.Outcome = models.OutcomeDropped
				result.Error = decodeErr.Error()
				report.Add(result)
				continue
			case models.PolicyQuarantine:
				result.Outcome = models.OutcomeQuarantined
				result.Error = decodeErr.Error()
				report.Add(result)
				continue
			default:
				plaintext = item.Secret.Payload
				fallback = true
			}
		}

		entry, err := normalizeCredential(item, plaintext, privateKey, e.cipher)
		if err != nil {
			log.Err(err).Str("item_id", item.ID).Msg("pending item could not be re-encrypted")
			result.Outcome = models.OutcomeFailed
			result.Error = err.Error()
			report.Add(result)
			continue
		}
		entry.UserID = user.UserID

		updated := vault.merge(entry, now, e.newID)
		result.Title, result.Category = entry.Title, entry.Category

		switch {
		case fallback:
			result.Outcome = models.OutcomeFallback
		case updated:
			result.Outcome = models.OutcomeUpdated
		default:
			result.Outcome = models.OutcomeMerged
		}
		report.Add(result)
	}

	if touched := vault.touchedEntries(); len(touched) > 0 {
		if err = e.vaultRepository.SaveEntries(ctx, touched); err != nil {
			log.Err(err).Str("func", "*reconciliationEngine.Reconcile").Msg("error saving vault entries")
			return models.BatchReport{SessionID: sessionID, Items: []models.ItemResult{}}, fmt.Errorf("%w: %w", ErrReconciliationFailed, err)
		}
	}

	if removed := report.RemovedIDs(); len(removed) > 0 {
		if _, err = e.pendingRepository.RemovePending(ctx, sessionID, removed); err != nil {
			log.Err(err).Str("func", "*reconciliationEngine.Reconcile").Msg("error removing processed items")
			return report, fmt.Errorf("%w: %w", ErrReconciliationFailed, err)
		}
	}

	if quarantined := report.QuarantinedIDs(); len(quarantined) > 0 {
		if _, err = e.pendingRepository.MarkPendingQuarantined(ctx, sessionID, quarantined); err != nil {
			log.Err(err).Str("func", "*reconciliationEngine.Reconcile").Msg("error quarantining items")
			return report, fmt.Errorf("%w: %w", ErrReconciliationFailed, err)
		}
	}

	log.Info().
		Int("total", report.Total).
		Int("processed", report.Processed()).
		Int("dropped", report.Dropped).
		Int("quarantined", report.Quarantined).
		Int("failed", report.Failed).
		Msg("pending queue reconciled")

	return report, nil
}

// decode opens the secret of item with the session secret named by its tag.
// Untagged payloads are sniffed and tried under every candidate secret.
func (e *reconciliationEngine) decode(item models.PendingCredential, keys models.SessionKeys) (string, error) {
	return decodeSecret(e.cipher, item.Secret, keys)
}

func decodeSecret(cipher crypto.SymmetricCipher, secret models.Ciphertext, keys models.SessionKeys) (string, error) {
	if secret.IsTagged() {
		switch secret.KeySource {
		case "":
			return openWithCandidates(cipher, secret.Scheme, secret.Payload, keys.Candidates())
		case models.KeySourceToken:
			return openWithCandidates(cipher, secret.Scheme, secret.Payload, keys.TokenCandidates())
		}
		key := keys.For(secret.KeySource)
		if key == "" {
			return "", fmt.Errorf("%w: no %s secret available", crypto.ErrCryptoDecrypt, secret.KeySource)
		}
		return cipher.Open(secret.Scheme, secret.Payload, key)
	}

	scheme, err := crypto.DetectScheme(secret.Payload)
	if err != nil {
		return "", err
	}
	return openWithCandidates(cipher, scheme, secret.Payload, keys.Candidates())
}

func openWithCandidates(cipher crypto.SymmetricCipher, scheme models.Scheme, payload string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no session secret available", crypto.ErrCryptoDecrypt)
	}

	var errs []error
	for _, key := range candidates {
		plaintext, err := cipher.Open(scheme, payload, key)
		if err == nil {
			return plaintext, nil
		}
		errs = append(errs, err)
	}
	return "", errors.Join(errs...)
}

// vaultIndex tracks a user's vault during one run by merge key.
type vaultIndex struct {
	entries []models.VaultEntry
	byKey   map[models.VaultKey]int
	touched map[int]struct{}
	order   []int
}

func newVaultIndex(entries []models.VaultEntry) *vaultIndex {
	idx := &vaultIndex{
		entries: entries,
		byKey:   make(map[models.VaultKey]int, len(entries)),
		touched: make(map[int]struct{}),
	}
	for i, entry := range entries {
		idx.byKey[entry.Key()] = i
	}
	return idx
}

// merge folds entry into the vault and reports whether an existing entry
// was updated.
func (v *vaultIndex) merge(entry models.VaultEntry, now time.Time, newID func() string) bool {
	i, exists := v.byKey[entry.Key()]
	if exists {
		v.entries[i].MergeFrom(entry, now)
	} else {
		entry.ID = newID()
		entry.CreatedAt = now
		entry.UpdatedAt = now
		v.entries = append(v.entries, entry)
		i = len(v.entries) - 1
		v.byKey[entry.Key()] = i
	}

	if _, seen := v.touched[i]; !seen {
		v.touched[i] = struct{}{}
		v.order = append(v.order, i)
	}
	return exists
}

func (v *vaultIndex) touchedEntries() []models.VaultEntry {
	out := make([]models.VaultEntry, 0, len(v.order))
	for _, i := range v.order {
		out = append(out, v.entries[i])
	}
	return out
}
