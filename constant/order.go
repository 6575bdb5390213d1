package constant

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatusTransitions lists the allowed next states per status.
var OrderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// CanTransitionOrder reports whether an order may move from one status to another.
func CanTransitionOrder(from, to OrderStatus) bool {
	for _, next := range OrderStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
