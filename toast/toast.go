// Package toast stores short-lived notifications and tells subscribers about them.
package toast

import (
	"sync"
	"time"

	"golang.org/x/exp/slices"
)

// DefaultLimit is the number of toasts a Store keeps if its Limit is zero.
const DefaultLimit = 3

type Kind uint8

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

type ID uint64

type Toast struct {
	ID      ID
	Message string
	Kind    Kind
	Created time.Time
	// Expires is the time after which the toast is removed. A zero Expires means the toast stays until dismissed.
	Expires time.Time
}

func (t Toast) expired(now time.Time) bool {
	return !t.Expires.IsZero() && !now.Before(t.Expires)
}

type EventKind uint8

const (
	Added EventKind = iota
	Removed
)

type Event struct {
	Kind  EventKind
	Toast Toast
}

type subscriber struct {
	id uint64
	fn func(Event)
}

// Store holds the active toasts. It is safe for concurrent use. The zero value is ready to use.
type Store struct {
	// Limit is the maximum number of active toasts. Pushing a toast beyond the limit removes the oldest one.
	Limit int

	mu      sync.Mutex
	toasts  []Toast
	subs    []subscriber
	nextID  ID
	nextSub uint64
}

// Subscription is returned by Store.Subscribe.
type Subscription struct {
	store *Store
	id    uint64
}

// Unsubscribe stops the subscriber from receiving further events. It is safe to call more than once, and on the zero
// Subscription.
func (sub Subscription) Unsubscribe() {
	if sub.store == nil {
		return
	}
	s := sub.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = slices.DeleteFunc(s.subs, func(o subscriber) bool { return o.id == sub.id })
}

// Subscribe registers fn to be called for every added and removed toast. Subscribers are called in the order they
// subscribed, without the store's lock held, so they may call back into the store.
func (s *Store) Subscribe(fn func(Event)) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: s.nextSub, fn: fn})
	return Subscription{store: s, id: s.nextSub}
}

// Push adds a toast that expires after ttl. A ttl of zero or less makes the toast stay until it is dismissed.
func (s *Store) Push(now time.Time, msg string, kind Kind, ttl time.Duration) ID {
	s.mu.Lock()
	s.nextID++
	t := Toast{
		ID:      s.nextID,
		Message: msg,
		Kind:    kind,
		Created: now,
	}
	if ttl > 0 {
		t.Expires = now.Add(ttl)
	}

	limit := s.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	var events []Event
	for len(s.toasts) >= limit {
		events = append(events, Event{Kind: Removed, Toast: s.toasts[0]})
		s.toasts = slices.Delete(s.toasts, 0, 1)
	}
	s.toasts = append(s.toasts, t)
	events = append(events, Event{Kind: Added, Toast: t})
	s.unlockAndNotify(events)
	return t.ID
}

// Dismiss removes a toast and reports whether it was active.
func (s *Store) Dismiss(id ID) bool {
	s.mu.Lock()
	idx := slices.IndexFunc(s.toasts, func(t Toast) bool { return t.ID == id })
	if idx == -1 {
		s.mu.Unlock()
		return false
	}
	t := s.toasts[idx]
	s.toasts = slices.Delete(s.toasts, idx, idx+1)
	s.unlockAndNotify([]Event{{Kind: Removed, Toast: t}})
	return true
}

// Expire removes all toasts that have expired at now and returns how many it removed.
func (s *Store) Expire(now time.Time) int {
	s.mu.Lock()
	var events []Event
	s.toasts = slices.DeleteFunc(s.toasts, func(t Toast) bool {
		if t.expired(now) {
			events = append(events, Event{Kind: Removed, Toast: t})
			return true
		}
		return false
	})
	s.unlockAndNotify(events)
	return len(events)
}

// Active returns the toasts that haven't expired at now, oldest first.
func (s *Store) Active(now time.Time) []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Toast, 0, len(s.toasts))
	for _, t := range s.toasts {
		if !t.expired(now) {
			out = append(out, t)
		}
	}
	return out
}

// NextExpiry returns the earliest expiry time of all active toasts.
func (s *Store) NextExpiry() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var next time.Time
	for _, t := range s.toasts {
		if t.Expires.IsZero() {
			continue
		}
		if next.IsZero() || t.Expires.Before(next) {
			next = t.Expires
		}
	}
	return next, !next.IsZero()
}

func (s *Store) unlockAndNotify(events []Event) {
	subs := slices.Clone(s.subs)
	s.mu.Unlock()
	for _, ev := range events {
		for _, sub := range subs {
			sub.fn(ev)
		}
	}
}
