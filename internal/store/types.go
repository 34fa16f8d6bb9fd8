// Package store is the single source of truth for the logged-in session and
// the pickup order collection. All mutation goes through a reducer over typed
// actions; callers observe immutable snapshots.
package store

// OrderStatus represents the current progress of a pickup order.
type OrderStatus string

const (
	StatusPending            OrderStatus = "Pending"
	StatusAccepted           OrderStatus = "Accepted"
	StatusInProcess          OrderStatus = "In-Process"
	StatusPendingForApproval OrderStatus = "Pending for Approval"
	StatusCompleted          OrderStatus = "Completed"
)

// statusChain is the happy-path ordering. The store does not enforce it;
// NextStatus exposes it so callers can walk an order forward.
var statusChain = []OrderStatus{
	StatusPending,
	StatusAccepted,
	StatusInProcess,
	StatusPendingForApproval,
	StatusCompleted,
}

// NextStatus returns the status that follows s on the happy path.
// Completed has no successor; unknown statuses map to themselves.
func NextStatus(s OrderStatus) OrderStatus {
	for i, cur := range statusChain {
		if cur == s && i < len(statusChain)-1 {
			return statusChain[i+1]
		}
	}
	return s
}

// AllStatuses returns the happy-path ordering of order statuses.
func AllStatuses() []OrderStatus {
	out := make([]OrderStatus, len(statusChain))
	copy(out, statusChain)
	return out
}

// Session represents the authenticated identity.
type Session struct {
	PhoneNumber string `json:"phoneNumber"`
	IsLoggedIn  bool   `json:"isLoggedIn"`
}

// OrderItem is one line of scrap within a pickup order.
type OrderItem struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// PickupOrder represents one scrap-collection request.
// PickupCode and LocationLink are pointers so "not yet assigned" stays
// distinguishable from an empty value.
type PickupOrder struct {
	ID           string      `json:"id"`
	Date         string      `json:"date"`
	TimeSlot     string      `json:"timeSlot"`
	Address      string      `json:"address"`
	LocationLink *string     `json:"locationLink,omitempty"`
	Status       OrderStatus `json:"status"`
	PickupCode   *string     `json:"pickupCode,omitempty"`
	Items        []OrderItem `json:"items"`
	TotalAmount  float64     `json:"totalAmount"`
}

// OrderDraft carries the caller-supplied fields of a new pickup request.
// ID and Status are assigned by the store.
type OrderDraft struct {
	Date         string
	TimeSlot     string
	Address      string
	LocationLink *string
	Items        []OrderItem
	TotalAmount  float64
}

// State is the complete snapshot owned by the store. Orders are kept
// most-recent-first; consumers rely on that ordering for recent views.
type State struct {
	User   *Session
	Orders []PickupOrder
}
