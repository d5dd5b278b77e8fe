package http

// Error is the uniform error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewReputationRequest initializes reputation counters for a customer.
type NewReputationRequest struct {
	CustomerID string `json:"customer_id"`
}

// NewOrderRequest places a new order for a customer. OrderID is optional:
// when the client supplies one it is used as-is (a duplicate is rejected),
// otherwise the server generates it.
type NewOrderRequest struct {
	OrderID    string `json:"order_id,omitempty"`
	CustomerID string `json:"customer_id"`
}

// NewOrderResponse carries the identifier of a placed order.
type NewOrderResponse struct {
	OrderID string `json:"order_id"`
}

// StatusUpdateRequest asks for a transition to the named status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the read-side view of a single order.
type OrderResponse struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
	Status     string `json:"status"`
	UpdatedAt  uint64 `json:"updated_at"`
}

// TransitionRecordResponse is one row of an order's transition ledger.
type TransitionRecordResponse struct {
	Seq       int    `json:"seq"`
	Status    string `json:"status"`
	Timestamp uint64 `json:"timestamp"`
}

// HistoryResponse is the full transition ledger of an order, oldest first.
type HistoryResponse struct {
	OrderID string                     `json:"order_id"`
	Records []TransitionRecordResponse `json:"records"`
}

// ReputationResponse is the read-side view of a customer's counters.
type ReputationResponse struct {
	CustomerID string `json:"customer_id"`
	Delivered  uint64 `json:"delivered"`
	Cancelled  uint64 `json:"cancelled"`
}
