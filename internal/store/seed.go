package store

// DemoOrders returns the sample pickups shown on a fresh install so the
// dashboard and history screens are not empty before the first real order.
func DemoOrders() []PickupOrder {
	link1 := "https://maps.google.com/?q=123+Main+Street"
	link2 := "https://maps.google.com/?q=456+Oak+Avenue"
	link3 := "https://maps.google.com/?q=789+Pine+Road"
	code1 := "XYZ123"
	code2 := "ABC456"

	return []PickupOrder{
		{
			ID:           "demo-1",
			Date:         "2025-01-15",
			TimeSlot:     "10-11 AM",
			Address:      "123 Main Street, City",
			LocationLink: &link1,
			Status:       StatusCompleted,
			PickupCode:   &code1,
			Items: []OrderItem{
				{Name: "Iron", Qty: 5, Price: 100},
				{Name: "Aluminum", Qty: 3, Price: 80},
				{Name: "Copper", Qty: 2, Price: 150},
			},
			TotalAmount: 790,
		},
		{
			ID:           "demo-2",
			Date:         "2025-01-20",
			TimeSlot:     "2-3 PM",
			Address:      "456 Oak Avenue, Town",
			LocationLink: &link2,
			Status:       StatusAccepted,
			PickupCode:   &code2,
			Items: []OrderItem{
				{Name: "Steel", Qty: 4, Price: 90},
				{Name: "Plastic", Qty: 6, Price: 30},
			},
			TotalAmount: 480,
		},
		{
			ID:           "demo-3",
			Date:         "2025-01-25",
			TimeSlot:     "11-12 PM",
			Address:      "789 Pine Road, Village",
			LocationLink: &link3,
			Status:       StatusPending,
			Items: []OrderItem{
				{Name: "Paper", Qty: 10, Price: 20},
				{Name: "Cardboard", Qty: 8, Price: 25},
			},
			TotalAmount: 400,
		},
	}
}
