package models

import "fmt"

// UndecryptablePolicy decides what reconciliation does with a pending item
// that cannot be decoded under any session secret.
type UndecryptablePolicy string

const (
	// PolicyStoreRaw stores the raw payload as the secret value.
	PolicyStoreRaw UndecryptablePolicy = "raw"

	// PolicyDrop removes the item from the queue without a vault write.
	PolicyDrop UndecryptablePolicy = "drop"

	// PolicyQuarantine keeps the item in the queue, marked quarantined.
	PolicyQuarantine UndecryptablePolicy = "quarantine"
)

// ParseUndecryptablePolicy validates raw. An empty value selects PolicyStoreRaw.
func ParseUndecryptablePolicy(raw string) (UndecryptablePolicy, error) {
	switch p := UndecryptablePolicy(raw); p {
	case "":
		return PolicyStoreRaw, nil
	case PolicyStoreRaw, PolicyDrop, PolicyQuarantine:
		return p, nil
	default:
		return "", fmt.Errorf("unknown undecryptable policy %q", raw)
	}
}

// ItemOutcome is what reconciliation did with one pending item.
type ItemOutcome string

const (
	OutcomeMerged      ItemOutcome = "merged"
	OutcomeUpdated     ItemOutcome = "updated"
	OutcomeFallback    ItemOutcome = "fallback"
	OutcomeDropped     ItemOutcome = "dropped"
	OutcomeQuarantined ItemOutcome = "quarantined"
	OutcomeFailed      ItemOutcome = "failed"
)

// ItemResult is the per-item entry of a [BatchReport].
type ItemResult struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Category Category    `json:"category"`
	Outcome  ItemOutcome `json:"outcome"`
	Error    string      `json:"error,omitempty"`
}

// Removed reports whether the item leaves the pending queue.
func (r ItemResult) Removed() bool {
	switch r.Outcome {
	case OutcomeMerged, OutcomeUpdated, OutcomeFallback, OutcomeDropped:
		return true
	default:
		return false
	}
}

// BatchReport summarises one reconciliation run.
type BatchReport struct {
	SessionID   string       `json:"sessionId"`
	Total       int          `json:"total"`
	Merged      int          `json:"merged"`
	Updated     int          `json:"updated"`
	Fallback    int          `json:"fallback"`
	Dropped     int          `json:"dropped"`
	Quarantined int          `json:"quarantined"`
	Failed      int          `json:"failed"`
	Items       []ItemResult `json:"items"`
}

// Add records r and updates the counters.
func (b *BatchReport) Add(r ItemResult) {
	b.Items = append(b.Items, r)
	b.Total++
	switch r.Outcome {
	case OutcomeMerged:
		b.Merged++
	case OutcomeUpdated:
		b.Updated++
	case OutcomeFallback:
		b.Fallback++
	case OutcomeDropped:
		b.Dropped++
	case OutcomeQuarantined:
		b.Quarantined++
	case OutcomeFailed:
		b.Failed++
	}
}

// Merge appends the items of other to b.
func (b *BatchReport) Merge(other BatchReport) {
	for _, item := range other.Items {
		b.Add(item)
	}
}

// Processed returns the number of items written to the vault.
func (b BatchReport) Processed() int {
	return b.Merged + b.Updated + b.Fallback
}

// RemovedIDs returns the ids that leave the pending queue, in report order.
func (b BatchReport) RemovedIDs() []string {
	ids := make([]string, 0, len(b.Items))
	for _, item := range b.Items {
		if item.Removed() {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// QuarantinedIDs returns the ids kept in the queue as quarantined.
func (b BatchReport) QuarantinedIDs() []string {
	ids := make([]string, 0, b.Quarantined)
	for _, item := range b.Items {
		if item.Outcome == OutcomeQuarantined {
			ids = append(ids, item.ID)
		}
	}
	return ids
}
