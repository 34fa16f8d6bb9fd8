package store

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/scrapline-dev/scrapline/internal/log"
	"github.com/scrapline-dev/scrapline/internal/storage"
)

// sessionKey is the durability-service key under which the session record
// is serialized.
const sessionKey = "userSession"

// DefaultRecentCount is how many orders RecentOrders returns when asked
// for zero or fewer.
const DefaultRecentCount = 3

// Observer is notified with the new snapshot after every committed mutation.
// Observers are called synchronously, before the mutating operation returns.
type Observer func(State)

// Store owns the session and the pickup order collection. Every mutation is
// dispatched through the reducer under a single mutex, so intents are
// serialized: each commits its snapshot before the next observes state.
type Store struct {
	mu        sync.RWMutex
	state     State
	kv        storage.KV
	logger    *log.Logger
	observers []Observer
}

// New creates a Store backed by the given durability service.
// The logger is optional; logging is best-effort and never fails an intent.
func New(kv storage.KV, logger *log.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
	}
}

// Subscribe registers an observer for snapshot changes. Observers run with
// the store's mutex held and must not call back into the store.
func (s *Store) Subscribe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Snapshot returns the current state. The orders slice is copied so callers
// can never mutate the store through it.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Session returns the current session, or nil when logged out.
func (s *Store) Session() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// dispatch runs the reducer and notifies observers with the new snapshot.
// Callers must hold s.mu.
func (s *Store) dispatch(a action) {
	s.state = reduce(s.state, a)
	snap := s.state.clone()
	for _, fn := range s.observers {
		fn(snap)
	}
}

// RestoreSession reads the durability service for a previously saved session
// and installs it if it records a logged-in user. Absent or malformed
// records — including ones written with isLoggedIn false — are treated as
// "no session"; a corrupt local record never blocks startup.
// Call once at process start.
func (s *Store) RestoreSession() error {
	data, ok, err := s.kv.Get(sessionKey)
	if err != nil || !ok {
		// Read failures are swallowed like malformed data: start logged out.
		return nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.PhoneNumber == "" || !sess.IsLoggedIn {
		return nil
	}

	s.mu.Lock()
	s.dispatch(setUser{user: &sess})
	s.mu.Unlock()

	s.logEvent(log.LogEvent{Event: log.EventSessionRestored, Phone: sess.PhoneNumber})
	return nil
}

// Login persists Session{phone, true} and then installs it. Persistence is
// write-through: if the durability write fails the in-memory session is not
// installed, so a "logged in" state always survives a restart.
func (s *Store) Login(phoneNumber string) error {
	sess := Session{PhoneNumber: phoneNumber, IsLoggedIn: true}

	data, err := json.Marshal(sess)
	if err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	if err := s.kv.Set(sessionKey, data); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}

	s.mu.Lock()
	s.dispatch(setUser{user: &sess})
	s.mu.Unlock()

	s.logEvent(log.LogEvent{Event: log.EventLogin, Phone: phoneNumber})
	return nil
}

// Logout deletes the persisted record and clears the session. The in-memory
// session is cleared even when the delete fails; a storage fault must never
// leave the user logged in. The returned error is informational.
func (s *Store) Logout() error {
	delErr := s.kv.Delete(sessionKey)

	s.mu.Lock()
	s.dispatch(clearUser{})
	s.mu.Unlock()

	s.logEvent(log.LogEvent{Event: log.EventLogout})

	if delErr != nil {
		return &PersistenceError{Op: "delete", Err: delErr}
	}
	return nil
}

// ScheduleOrder validates the draft, assigns a fresh id and Pending status,
// and prepends the new order to the collection. Returns the created order.
func (s *Store) ScheduleOrder(draft OrderDraft) (PickupOrder, error) {
	switch {
	case strings.TrimSpace(draft.Date) == "":
		return PickupOrder{}, &ValidationError{Field: "date"}
	case strings.TrimSpace(draft.TimeSlot) == "":
		return PickupOrder{}, &ValidationError{Field: "timeSlot"}
	case strings.TrimSpace(draft.Address) == "":
		return PickupOrder{}, &ValidationError{Field: "address"}
	}

	items := draft.Items
	if items == nil {
		items = []OrderItem{}
	}

	order := PickupOrder{
		ID:           uuid.New().String(),
		Date:         draft.Date,
		TimeSlot:     draft.TimeSlot,
		Address:      draft.Address,
		LocationLink: draft.LocationLink,
		Status:       StatusPending,
		Items:        items,
		TotalAmount:  draft.TotalAmount,
	}

	s.mu.Lock()
	s.dispatch(addOrder{order: order})
	s.mu.Unlock()

	s.logEvent(log.LogEvent{
		Event:    log.EventPickupScheduled,
		OrderID:  order.ID,
		Date:     order.Date,
		TimeSlot: order.TimeSlot,
	})
	return order, nil
}

// TransitionStatus replaces the status of the order with the given id,
// leaving every other field and the order's position untouched. Any status
// may be set from any status; the happy-path chain is not enforced.
func (s *Store) TransitionStatus(orderID string, status OrderStatus) error {
	s.mu.Lock()

	var prev OrderStatus
	found := false
	for i := range s.state.Orders {
		if s.state.Orders[i].ID == orderID {
			prev = s.state.Orders[i].Status
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return &NotFoundError{ID: orderID}
	}

	s.dispatch(setOrderStatus{id: orderID, status: status})
	s.mu.Unlock()

	s.logEvent(log.LogEvent{
		Event:      log.EventStatusChanged,
		OrderID:    orderID,
		Status:     string(status),
		PrevStatus: string(prev),
	})
	return nil
}

// RecentOrders returns the first n orders, most recent first.
// n <= 0 means DefaultRecentCount.
func (s *Store) RecentOrders(n int) []PickupOrder {
	if n <= 0 {
		n = DefaultRecentCount
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.state.Orders) {
		n = len(s.state.Orders)
	}
	out := make([]PickupOrder, n)
	copy(out, s.state.Orders[:n])
	return out
}

// FindOrder returns the order with the given id, or a NotFoundError.
func (s *Store) FindOrder(id string) (PickupOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.state.Orders {
		if o.ID == id {
			return o, nil
		}
	}
	return PickupOrder{}, &NotFoundError{ID: id}
}

// Seed prepends the given orders without validation. Used for demo data.
func (s *Store) Seed(orders []PickupOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(orders) - 1; i >= 0; i-- {
		s.dispatch(addOrder{order: orders[i]})
	}
}

func (s *Store) logEvent(ev log.LogEvent) {
	if s.logger == nil {
		return
	}
	_ = s.logger.Append(ev)
}

// clone copies the snapshot deeply enough that callers cannot reach the
// store's own slices.
func (s State) clone() State {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	out.Orders = make([]PickupOrder, len(s.Orders))
	copy(out.Orders, s.Orders)
	return out
}
