package store

// Actions are the only way state changes. reduce is pure: it never mutates
// its input and always returns a fresh snapshot, so observers holding an old
// State never see a torn read.

type action interface {
	isAction()
}

type setUser struct {
	user *Session
}

type clearUser struct{}

type addOrder struct {
	order PickupOrder
}

type setOrderStatus struct {
	id     string
	status OrderStatus
}

func (setUser) isAction()        {}
func (clearUser) isAction()      {}
func (addOrder) isAction()       {}
func (setOrderStatus) isAction() {}

func reduce(s State, a action) State {
	switch a := a.(type) {
	case setUser:
		next := s
		next.User = a.user
		return next

	case clearUser:
		next := s
		next.User = nil
		return next

	case addOrder:
		next := s
		// Most recent first.
		orders := make([]PickupOrder, 0, len(s.Orders)+1)
		orders = append(orders, a.order)
		orders = append(orders, s.Orders...)
		next.Orders = orders
		return next

	case setOrderStatus:
		next := s
		orders := make([]PickupOrder, len(s.Orders))
		copy(orders, s.Orders)
		for i := range orders {
			if orders[i].ID == a.id {
				orders[i].Status = a.status
				break
			}
		}
		next.Orders = orders
		return next
	}

	return s
}
