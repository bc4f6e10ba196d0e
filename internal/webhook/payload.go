package webhook

// OrderEvent is the payment processor's order notification payload.
type OrderEvent struct {
	EventID  string      `json:"event_id"`
	OrderID  string      `json:"order_id" binding:"required"`
	Status   string      `json:"status" binding:"required"`
	Total    float64     `json:"total"`
	Customer Customer    `json:"customer"`
	Items    []OrderLine `json:"items"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderLine struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Processable reports whether the event status represents a completed
// payment. Everything else is acknowledged and dropped.
func (e *OrderEvent) Processable() bool {
	return e.Status == "paid" || e.Status == "approved"
}
