package models

import (
	"fmt"
	"time"
)

// PendingStatus is the per-item status of a queued credential.
type PendingStatus string

const (
	// PendingStatusPending is the status of a freshly enqueued item.
	PendingStatusPending PendingStatus = "pending"

	// PendingStatusSaved marks an item the edge device has acknowledged.
	// Reconciliation still migrates and purges it.
	PendingStatusSaved PendingStatus = "saved"

	// PendingStatusQuarantined marks an item reconciliation could not decode
	// under the quarantine policy. It stays in the queue untouched.
	PendingStatusQuarantined PendingStatus = "quarantined"
)

// PendingCredential is a credential captured by the edge device and waiting
// to be migrated into the owner's vault.
type PendingCredential struct {
	ID        string        `json:"id"`
	SessionID string        `json:"sessionId"`
	Title     string        `json:"title"`
	Category  Category      `json:"category"`
	Secret    Ciphertext    `json:"secret"`
	Status    PendingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// IsSaved reports whether the edge device has acknowledged the item.
func (p PendingCredential) IsSaved() bool {
	return p.Status == PendingStatusSaved
}

// MarkSaved moves a pending item to saved. Saved items stay saved.
func (p *PendingCredential) MarkSaved() error {
	switch p.Status {
	case PendingStatusPending, PendingStatusSaved:
		p.Status = PendingStatusSaved
		return nil
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidItemTransition, p.Status, PendingStatusSaved)
	}
}

// Quarantine moves an undecodable item out of the pending set.
func (p *PendingCredential) Quarantine() error {
	switch p.Status {
	case PendingStatusPending, PendingStatusSaved, PendingStatusQuarantined:
		p.Status = PendingStatusQuarantined
		return nil
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidItemTransition, p.Status, PendingStatusQuarantined)
	}
}
