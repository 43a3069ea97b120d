package domain

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// List of possible order statuses, in lifecycle order.
const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderPicked    OrderStatus = "picked"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var allowedOrderStatuses = [...]OrderStatus{
	OrderPending, OrderConfirmed, OrderPreparing, OrderReady,
	OrderPicked, OrderDelivered, OrderCancelled,
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	for _, v := range allowedOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// restaurantTransitions maps a target status to the statuses a restaurant may move from.
var restaurantTransitions = map[OrderStatus][]OrderStatus{
	OrderConfirmed: {OrderPending},
	OrderPreparing: {OrderConfirmed},
	OrderReady:     {OrderPreparing},
	OrderCancelled: {OrderPending, OrderConfirmed, OrderPreparing},
}

// courierTransitions is the same for the courier assigned to an order.
// Picking up (ready → picked) goes through assignment, not this table.
var courierTransitions = map[OrderStatus][]OrderStatus{
	OrderDelivered: {OrderPicked},
}

// RestaurantSources returns the statuses from which a restaurant may set to.
// An empty result means the restaurant may never set to.
func RestaurantSources(to OrderStatus) []OrderStatus {
	return restaurantTransitions[to]
}

// CourierSources returns the statuses from which the assigned courier may set to.
func CourierSources(to OrderStatus) []OrderStatus {
	return courierTransitions[to]
}

// CanRestaurantMove reports whether a restaurant may move an order from → to.
func CanRestaurantMove(from, to OrderStatus) bool {
	return contains(restaurantTransitions[to], from)
}

// CanCourierMove reports whether the assigned courier may move an order from → to.
func CanCourierMove(from, to OrderStatus) bool {
	return contains(courierTransitions[to], from)
}

func contains(list []OrderStatus, s OrderStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
