package service

import (
	"context"
	"slices"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-bridge/internal/store"
	"github.com/MKhiriev/go-pass-bridge/models"
)

// ─────────────────────────────────────────────
// In-memory repositories
// ─────────────────────────────────────────────

// memStore implements every SQL-backed repository over maps. The *Fn hooks
// run before the corresponding operation and may inject errors or
// concurrent writes.
type memStore struct {
	mu sync.Mutex

	sessions   map[string]models.Session
	pending    []models.PendingCredential
	users      map[int64]models.User
	nextUserID int64
	vault      map[int64][]models.VaultEntry

	listPendingFn   func() error
	saveEntriesFn   func(entries []models.VaultEntry) error
	removePendingFn func(ids []string) error
	updateSessionFn func(session models.Session) error
	sweepCutoffFn   func(cutoff time.Time)
}

func newMemStore() *memStore {
	return &memStore{
		sessions: map[string]models.Session{},
		users:    map[int64]models.User{},
		vault:    map[int64][]models.VaultEntry{},
	}
}

func (m *memStore) storages() *store.Storages {
	return &store.Storages{
		SessionRepository:           m,
		PendingCredentialRepository: m,
		UserRepository:              m,
		VaultRepository:             m,
		PrivateKeyCache:             store.NewMemoryKeyCache(0),
	}
}

// sessions

func (m *memStore) CreateSession(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[session.SessionID]; ok {
		return store.ErrSessionAlreadyExists
	}
	m.sessions[session.SessionID] = session
	return nil
}

func (m *memStore) GetSession(_ context.Context, sessionID string) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return models.Session{}, store.ErrSessionNotFound
	}
	return session, nil
}

func (m *memStore) UpdateSession(_ context.Context, session models.Session) error {
	if m.updateSessionFn != nil {
		if err := m.updateSessionFn(session); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[session.SessionID]; !ok {
		return store.ErrSessionNotFound
	}
	m.sessions[session.SessionID] = session
	return nil
}

func (m *memStore) DeleteSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return store.ErrSessionNotFound
	}
	m.deleteSessionsLocked(sessionID)
	return nil
}

func (m *memStore) DeleteSessionsCreatedBefore(_ context.Context, cutoff time.Time) ([]string, error) {
	if m.sweepCutoffFn != nil {
		m.sweepCutoffFn(cutoff)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for id, session := range m.sessions {
		if session.CreatedAt.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	m.deleteSessionsLocked(ids...)
	return ids, nil
}

func (m *memStore) deleteSessionsLocked(ids ...string) {
	for _, id := range ids {
		delete(m.sessions, id)
	}
	m.pending = slices.DeleteFunc(m.pending, func(p models.PendingCredential) bool {
		return slices.Contains(ids, p.SessionID)
	})
}

func (m *memStore) ListUserSessions(_ context.Context, userID int64) ([]models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Session
	for _, session := range m.sessions {
		if session.UserID == userID {
			out = append(out, session)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// pending queue

func (m *memStore) AppendPending(_ context.Context, item models.PendingCredential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, item)
	return nil
}

func (m *memStore) ListPending(_ context.Context, sessionID string) ([]models.PendingCredential, error) {
	if m.listPendingFn != nil {
		if err := m.listPendingFn(); err != nil {
			return nil, err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.PendingCredential
	for _, p := range m.pending {
		if p.SessionID == sessionID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) setStatus(sessionID string, ids []string, status models.PendingStatus, from ...models.PendingStatus) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for i, p := range m.pending {
		if p.SessionID != sessionID || !slices.Contains(ids, p.ID) {
			continue
		}
		if len(from) > 0 && !slices.Contains(from, p.Status) {
			continue
		}
		m.pending[i].Status = status
		n++
	}
	return n
}

func (m *memStore) MarkPendingSaved(_ context.Context, sessionID string, ids []string) (int64, error) {
	return m.setStatus(sessionID, ids, models.PendingStatusSaved, models.PendingStatusPending), nil
}

func (m *memStore) MarkPendingQuarantined(_ context.Context, sessionID string, ids []string) (int64, error) {
	return m.setStatus(sessionID, ids, models.PendingStatusQuarantined), nil
}

func (m *memStore) RemovePending(_ context.Context, sessionID string, ids []string) (int64, error) {
	if m.removePendingFn != nil {
		if err := m.removePendingFn(ids); err != nil {
			return 0, err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	before := len(m.pending)
	m.pending = slices.DeleteFunc(m.pending, func(p models.PendingCredential) bool {
		return p.SessionID == sessionID && slices.Contains(ids, p.ID)
	})
	return int64(before - len(m.pending)), nil
}

func (m *memStore) HasUnsavedPending(_ context.Context, sessionID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.pending {
		if p.SessionID == sessionID && p.Status == models.PendingStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) pendingIDs(sessionID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for _, p := range m.pending {
		if p.SessionID == sessionID {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// users

func (m *memStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username {
			return models.User{}, store.ErrUsernameAlreadyExists
		}
	}
	m.nextUserID++
	user.UserID = m.nextUserID
	m.users[user.UserID] = user
	return user, nil
}

func (m *memStore) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memStore) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return u, nil
}

// vault

func (m *memStore) ListEntries(_ context.Context, userID int64) ([]models.VaultEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneEntries(m.vault[userID]), nil
}

func (m *memStore) SaveEntries(_ context.Context, entries []models.VaultEntry) error {
	if m.saveEntriesFn != nil {
		if err := m.saveEntriesFn(entries); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, entry := range cloneEntries(entries) {
		list := m.vault[entry.UserID]
		idx := slices.IndexFunc(list, func(e models.VaultEntry) bool { return e.Key() == entry.Key() })
		if idx >= 0 {
			entry.ID = list[idx].ID
			entry.CreatedAt = list[idx].CreatedAt
			list[idx] = entry
		} else {
			list = append(list, entry)
		}
		m.vault[entry.UserID] = list
	}
	return nil
}

func (m *memStore) entries(userID int64) []models.VaultEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneEntries(m.vault[userID])
}

func cloneEntries(entries []models.VaultEntry) []models.VaultEntry {
	out := make([]models.VaultEntry, 0, len(entries))
	for _, e := range entries {
		c := e
		c.Fields = cloneMap(e.Fields)
		c.Secrets = cloneMap(e.Secrets)
		c.CustomFields = slices.Clone(e.CustomFields)
		out = append(out, c)
	}
	return out
}

func cloneMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// ─────────────────────────────────────────────
// Clock
// ─────────────────────────────────────────────

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{now: testNow} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// sequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
