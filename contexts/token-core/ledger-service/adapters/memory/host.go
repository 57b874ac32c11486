package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"stablecoin/internal/shared/events"
)

// Host stands in for the execution environment around the ledger: caller
// authorization, account resolution, notification delivery, and time. It
// keeps everything deterministic so service behavior can be tested without
// a live host.
type Host struct {
	mu            sync.RWMutex
	grants        map[string]map[string]bool
	accounts      map[string]bool
	notifications []RecordedNotification
	now           time.Time
}

type RecordedNotification struct {
	Account string
	Event   events.Envelope
}

func NewHost() *Host {
	return &Host{
		grants:   make(map[string]map[string]bool),
		accounts: make(map[string]bool),
	}
}

// RegisterAccount makes accounts resolvable. A registered account always
// holds its own authority.
func (h *Host) RegisterAccount(accounts ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, account := range accounts {
		h.accounts[strings.TrimSpace(account)] = true
	}
}

// GrantAuthority lets caller act with principal's authority, on top of the
// implicit self-authority.
func (h *Host) GrantAuthority(caller string, principals ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	caller = strings.TrimSpace(caller)
	if h.grants[caller] == nil {
		h.grants[caller] = make(map[string]bool)
	}
	for _, principal := range principals {
		h.grants[caller][strings.TrimSpace(principal)] = true
	}
}

// RevokeAuthority removes a previously granted authority.
func (h *Host) RevokeAuthority(caller string, principal string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.grants[strings.TrimSpace(caller)], strings.TrimSpace(principal))
}

func (h *Host) HoldsAuthority(_ context.Context, caller string, principal string) (bool, error) {
	caller = strings.TrimSpace(caller)
	principal = strings.TrimSpace(principal)
	if caller == "" || principal == "" {
		return false, nil
	}
	if caller == principal {
		return true, nil
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.grants[caller][principal], nil
}

func (h *Host) Exists(_ context.Context, account string) (bool, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.accounts[strings.TrimSpace(account)], nil
}

func (h *Host) Notify(_ context.Context, account string, event events.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notifications = append(h.notifications, RecordedNotification{Account: account, Event: event})
}

// Notifications returns a snapshot of everything delivered so far.
func (h *Host) Notifications() []RecordedNotification {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]RecordedNotification(nil), h.notifications...)
}

// SetNow pins the host clock for deterministic timestamps.
func (h *Host) SetNow(now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.now = now
}

func (h *Host) Now() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.now.IsZero() {
		return time.Now().UTC()
	}
	return h.now
}
