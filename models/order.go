package models

// OrderItem is one line of an order.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order mirrors the upstream order resource.
type Order struct {
	ID       string      `json:"id"`
	Customer string      `json:"customer"`
	Email    string      `json:"email"`
	Date     string      `json:"date"`
	Total    float64     `json:"total"`
	Status   string      `json:"status"`
	Items    []OrderItem `json:"items"`
}

// OrderStatuses is the closed set of states the UI offers for an order.
var OrderStatuses = []string{"pending", "processing", "shipped", "delivered", "cancelled"}

// orderTransitions is the explicit allowed-transition table. The backend never
// enforced a transition graph, so every enumerated target is reachable from
// every source; unknown statuses are rejected outright.
var orderTransitions = buildPermissiveTransitions(OrderStatuses)

// CanTransitionOrder reports whether an order may move from one status to
// another.
func CanTransitionOrder(from, to string) bool {
	targets, ok := orderTransitions[normalizeStatus(from)]
	if !ok {
		return false
	}
	return targets[normalizeStatus(to)]
}

// IsOrderStatus reports whether the value is a member of the order enum.
func IsOrderStatus(status string) bool {
	_, ok := orderTransitions[normalizeStatus(status)]
	return ok
}
